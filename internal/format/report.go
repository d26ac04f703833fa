package format

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/jpl-au/chtools/internal/report"
)

// Report writes r as markdown, suitable for glamour rendering or piping
// to an LLM.
func Report(w io.Writer, r *report.Report) error {
	fmt.Fprintf(w, "# %s (%s)\n\n", r.CompanyName, r.CompanyNumber)

	rows := [][2]string{
		{"Status", r.Status},
		{"Type", r.Type},
		{"Incorporated", r.IncorporationDate},
		{"Registered office", Address(r.RegisteredAddress)},
	}
	for _, row := range rows {
		if row[1] != "" {
			fmt.Fprintf(w, "- **%s:** %s\n", row[0], row[1])
		}
	}

	fmt.Fprintf(w, "\n## Officers (%d active of %d)\n\n", len(r.ActiveOfficers), r.OfficersCount)
	if len(r.ActiveOfficers) > 0 {
		fmt.Fprintln(w, "| Name | Role | Appointed | Ownership |")
		fmt.Fprintln(w, "|---|---|---|---|")
		for _, o := range r.ActiveOfficers {
			fmt.Fprintf(w, "| %s | %s | %s | %s |\n", cell(o.Name), cell(o.Role), cell(o.AppointedOn), cell(o.Ownership))
		}
	}

	fmt.Fprintf(w, "\n## Beneficial owners (%d)\n\n", len(r.BeneficialOwners))
	if len(r.BeneficialOwners) > 0 {
		fmt.Fprintln(w, "| Name | Ownership | Estimate | Notified |")
		fmt.Fprintln(w, "|---|---|---|---|")
		for _, o := range r.BeneficialOwners {
			fmt.Fprintf(w, "| %s | %s | %s | %s |\n", cell(o.Name), cell(o.Ownership), estimate(r.OwnershipSummary[o.Name]), cell(o.NotifiedOn))
		}
	}

	fmt.Fprintln(w, "\n## Charges")
	fmt.Fprintln(w)
	if r.ChargesSummary.Available {
		fmt.Fprintf(w, "%d total, %d outstanding, %d satisfied\n", r.ChargesSummary.Total, r.ChargesSummary.Outstanding, r.ChargesSummary.Satisfied)
	} else {
		fmt.Fprintln(w, "unavailable")
	}

	fmt.Fprintln(w, "\n## Insolvency")
	fmt.Fprintln(w)
	if r.Insolvency == nil || len(r.Insolvency.Cases) == 0 {
		fmt.Fprintln(w, "no cases")
	} else {
		for _, c := range r.Insolvency.Cases {
			fmt.Fprintf(w, "- %s %s\n", c.Type, c.Number)
		}
	}

	fmt.Fprintf(w, "\n## Recent filings (%d)\n\n", len(r.RecentFilings))
	for _, f := range r.RecentFilings {
		fmt.Fprintf(w, "- %s %s: %s\n", dash(f.Date), dash(f.Category), dash(f.Description))
	}

	if len(r.Unavailable) > 0 {
		fmt.Fprintln(w, "\n## Unavailable sections")
		fmt.Fprintln(w)
		names := make([]string, 0, len(r.Unavailable))
		for n := range r.Unavailable {
			names = append(names, n)
		}
		slices.Sort(names)
		for _, n := range names {
			fmt.Fprintf(w, "- %s: %s\n", n, r.Unavailable[n])
		}
	}
	return nil
}

// cell escapes pipes for markdown tables.
func cell(s string) string {
	return strings.ReplaceAll(dash(s), "|", `\|`)
}

func estimate(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64) + "%"
}
