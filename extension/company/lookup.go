// lookup.go implements the single-section commands: profile, charges,
// insolvency, psc and address.

package company

import (
	"io"

	"github.com/jpl-au/chtools/internal/companieshouse"
	"github.com/jpl-au/chtools/internal/format"
	"github.com/jpl-au/chtools/internal/log"
	"github.com/spf13/cobra"
)

func (e *Extension) newProfileCmd() *cobra.Command {
	return companyCmd("profile", "Show a company profile",
		`Show the company record: name, status, type, dates, registered office,
SIC codes and filing deadlines. Leading zeros may be omitted.`,
		func(c *cobra.Command, n string) error {
			return lookup(c.Context(), "profile", n, e.svc.Profile, format.Profile,
				log.Event("company:profile", "profile").Company(n))
		})
}

func (e *Extension) newChargesCmd() *cobra.Command {
	return companyCmd("charges", "List charges registered against a company",
		`List mortgages and other charges. Companies House answers NOT_FOUND when
the register is empty.`,
		func(c *cobra.Command, n string) error {
			return lookup(c.Context(), "charges", n, e.svc.Charges, format.Charges,
				log.Event("company:charges", "charges").Company(n))
		})
}

func (e *Extension) newInsolvencyCmd() *cobra.Command {
	return companyCmd("insolvency", "List insolvency cases",
		`List insolvency proceedings with their dates and practitioners.
Companies House answers NOT_FOUND when there is no insolvency history.`,
		func(c *cobra.Command, n string) error {
			return lookup(c.Context(), "insolvency", n, e.svc.Insolvency, format.Insolvency,
				log.Event("company:insolvency", "insolvency").Company(n))
		})
}

func (e *Extension) newPSCCmd() *cobra.Command {
	return companyCmd("psc", "List persons with significant control",
		`List persons with significant control and their natures of control.
See 'chtools guide ownership' for how natures map to ownership bands.`,
		func(c *cobra.Command, n string) error {
			return lookup(c.Context(), "psc", n, e.svc.PersonsWithSignificantControl, format.PSCs,
				log.Event("company:psc", "psc").Company(n))
		})
}

func (e *Extension) newAddressCmd() *cobra.Command {
	return companyCmd("address", "Show the registered office address",
		`Show the current registered office address.`,
		func(c *cobra.Command, n string) error {
			return lookup(c.Context(), "address", n, e.svc.RegisteredOffice, printAddress,
				log.Event("company:address", "address").Company(n))
		})
}

func printAddress(w io.Writer, a *companieshouse.Address) error {
	_, err := io.WriteString(w, format.Address(a)+"\n")
	return err
}
