// report.go implements the "chtools report" command.

package company

import (
	"bytes"
	"fmt"

	"github.com/jpl-au/chtools/cmd"
	"github.com/jpl-au/chtools/extension"
	"github.com/jpl-au/chtools/internal/format"
	"github.com/jpl-au/chtools/internal/log"
	"github.com/jpl-au/chtools/internal/progress"
	"github.com/jpl-au/chtools/internal/report"
	"github.com/jpl-au/chtools/internal/service"
	"github.com/spf13/cobra"
)

func (e *Extension) newReportCmd() *cobra.Command {
	c := companyCmd("report", "Build a comprehensive company report",
		`Fetch profile, officers, persons with significant control, charges,
insolvency and recent filings, and merge them into one report with an
ownership estimate per beneficial owner.

Sections that fail upstream are listed under "Unavailable sections"; the
rest of the report is still returned. See 'chtools guide report'.`,
		e.runReport)
	c.Flags().Bool(extension.FlagRaw, false, "Print markdown without terminal rendering")
	return c
}

func (e *Extension) runReport(c *cobra.Command, n string) error {
	ctx := c.Context()
	var p *progress.Progress
	if !cmd.JSON() {
		p = progress.New("Building report", report.SectionCount)
		ctx = report.WithProgress(ctx, func(section string, _ error) { p.Step(section) })
	}

	l := log.Event("company:report", "report").Company(n)
	r, err := e.svc.Report(ctx, cmd.APIKey(), n)
	if p != nil {
		p.Done()
	}
	if err != nil {
		l.Code(service.ErrorCode(err)).Write(err)
		return cmd.PrintJSONError(fmt.Errorf("report %s: %w", n, err))
	}
	l.Detail("officers", len(r.ActiveOfficers)).Detail("owners", len(r.BeneficialOwners))
	if len(r.Unavailable) > 0 {
		l.Detail("unavailable", len(r.Unavailable))
	}
	l.Write(nil)

	if cmd.JSON() {
		return cmd.PrintJSON(r)
	}

	var buf bytes.Buffer
	if err := format.Report(&buf, r); err != nil {
		return err
	}
	raw, _ := c.Flags().GetBool(extension.FlagRaw)
	cmd.PrintMarkdown(buf.String(), raw)
	return nil
}
