// Package format provides output formatting utilities for CLI display.
//
// Centralises formatting logic so that command implementations focus on
// the lookup while this package handles presentation concerns like column
// alignment and empty-field placeholders. JSON output bypasses this
// package entirely.
package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/jpl-au/chtools/internal/companieshouse"
)

// dash substitutes "-" for an empty field so columns stay aligned.
func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// Address joins the populated address lines with ", ".
func Address(a *companieshouse.Address) string {
	if a == nil {
		return ""
	}
	var parts []string
	for _, p := range []string{a.CareOf, a.POBox, a.Premises, a.AddressLine1, a.AddressLine2, a.Locality, a.Region, a.PostalCode, a.Country} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// SearchResults prints one company per line: number, status, name.
func SearchResults(w io.Writer, r *companieshouse.SearchResult) error {
	if len(r.Items) == 0 {
		fmt.Fprintln(w, "no matches")
		return nil
	}

	maxStatus := 6 // minimum "STATUS"
	for _, it := range r.Items {
		maxStatus = max(maxStatus, len(it.CompanyStatus))
	}

	fmt.Fprintf(w, "%-8s  %-*s  %s\n", "NUMBER", maxStatus, "STATUS", "NAME")
	for _, it := range r.Items {
		fmt.Fprintf(w, "%-8s  %-*s  %s\n", it.CompanyNumber, maxStatus, dash(it.CompanyStatus), it.Title)
	}
	if r.TotalResults > len(r.Items) {
		fmt.Fprintf(w, "(%d of %d, from %d)\n", len(r.Items), r.TotalResults, r.StartIndex)
	}
	return nil
}

// Profile prints the company record as aligned key/value lines.
func Profile(w io.Writer, p *companieshouse.Profile) error {
	rows := [][2]string{
		{"Number", p.CompanyNumber},
		{"Name", p.CompanyName},
		{"Status", p.CompanyStatus},
		{"Type", p.Type},
		{"Jurisdiction", p.Jurisdiction},
		{"Incorporated", p.DateOfCreation},
		{"Dissolved", p.DateOfCessation},
		{"Address", Address(p.RegisteredOfficeAddress)},
		{"SIC", strings.Join(p.SICCodes, ", ")},
	}
	if p.Accounts != nil {
		rows = append(rows, [2]string{"Accounts due", overdue(p.Accounts)})
	}
	if p.ConfirmationStatement != nil {
		rows = append(rows, [2]string{"Confirmation due", overdue(p.ConfirmationStatement)})
	}
	for _, pn := range p.PreviousCompanyNames {
		rows = append(rows, [2]string{"Previously", fmt.Sprintf("%s (until %s)", pn.Name, dash(pn.CeasedOn))})
	}
	return keyValues(w, rows)
}

func overdue(d *companieshouse.Deadline) string {
	if d.Overdue {
		return dash(d.NextDue) + " (overdue)"
	}
	return d.NextDue
}

// keyValues prints non-empty rows with keys padded to the longest key.
func keyValues(w io.Writer, rows [][2]string) error {
	width := 0
	for _, r := range rows {
		width = max(width, len(r[0]))
	}
	for _, r := range rows {
		if r[1] == "" {
			continue
		}
		fmt.Fprintf(w, "%-*s  %s\n", width, r[0], r[1])
	}
	return nil
}

// Officers prints officers with role, appointment and resignation dates.
func Officers(w io.Writer, l *companieshouse.OfficerList) error {
	if len(l.Items) == 0 {
		fmt.Fprintln(w, "no officers")
		return nil
	}

	maxRole := 4 // minimum "ROLE"
	for _, o := range l.Items {
		maxRole = max(maxRole, len(o.OfficerRole))
	}

	fmt.Fprintf(w, "%-*s  %-10s  %-10s  %s\n", maxRole, "ROLE", "APPOINTED", "RESIGNED", "NAME")
	for _, o := range l.Items {
		fmt.Fprintf(w, "%-*s  %-10s  %-10s  %s\n", maxRole, o.OfficerRole, dash(o.AppointedOn), dash(o.ResignedOn), o.Name)
	}
	return nil
}

// Filings prints filings newest first as returned: date, category, type,
// description.
func Filings(w io.Writer, h *companieshouse.FilingHistory) error {
	if len(h.Items) == 0 {
		fmt.Fprintln(w, "no filings")
		return nil
	}
	for _, f := range h.Items {
		fmt.Fprintf(w, "%-10s  %-24s  %-6s  %s\n", dash(f.Date), dash(f.Category), dash(f.Type), dash(f.Description))
	}
	return nil
}

// Charges prints each charge with its status and chargeholders.
func Charges(w io.Writer, c *companieshouse.ChargeList) error {
	if len(c.Items) == 0 {
		fmt.Fprintln(w, "no charges")
		return nil
	}
	for _, ch := range c.Items {
		var holders []string
		for _, p := range ch.PersonsEntitled {
			holders = append(holders, p.Name)
		}
		fmt.Fprintf(w, "%-10s  %-16s  %s  %s\n", dash(ch.CreatedOn), ch.Status, dash(ch.Classification.Description), strings.Join(holders, "; "))
	}
	return nil
}

// Insolvency prints each case with its dates and practitioners.
func Insolvency(w io.Writer, in *companieshouse.Insolvency) error {
	if len(in.Cases) == 0 {
		fmt.Fprintln(w, "no insolvency cases")
		return nil
	}
	for _, c := range in.Cases {
		fmt.Fprintf(w, "case %s: %s\n", dash(c.Number), c.Type)
		for _, d := range c.Dates {
			fmt.Fprintf(w, "  %-10s  %s\n", d.Date, d.Type)
		}
		for _, p := range c.Practitioners {
			fmt.Fprintf(w, "  %s (%s)\n", p.Name, dash(p.Role))
		}
	}
	return nil
}

// PSCs prints persons with significant control and their natures of control.
func PSCs(w io.Writer, l *companieshouse.PSCList) error {
	if len(l.Items) == 0 {
		fmt.Fprintln(w, "no persons with significant control")
		return nil
	}
	for _, p := range l.Items {
		ceased := ""
		if !p.Active() {
			ceased = " [ceased " + p.CeasedOn + "]"
		}
		fmt.Fprintf(w, "%s%s\n", p.Name, ceased)
		for _, n := range p.NaturesOfControl {
			fmt.Fprintf(w, "  %s\n", n)
		}
	}
	return nil
}
