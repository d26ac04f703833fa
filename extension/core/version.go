// version.go implements "chtools version".

package core

import (
	"fmt"

	"github.com/jpl-au/chtools/cmd"
	"github.com/jpl-au/chtools/internal/version"
	"github.com/spf13/cobra"
)

const flagShort = "short"

func newVersionCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long: `Print the build tag, commit, Go version, platform and the User-Agent
sent to Companies House.`,
		Args: cobra.NoArgs,
		Run: func(c *cobra.Command, _ []string) {
			if short, _ := c.Flags().GetBool(flagShort); short {
				fmt.Fprintln(cmd.Out(), version.Short())
				return
			}
			info := version.Get()
			if cmd.JSON() {
				_ = cmd.PrintJSON(info)
				return
			}
			fmt.Fprint(cmd.Out(), info.String())
		},
	}
	c.Flags().Bool(flagShort, false, "Print only the build tag")
	return c
}
