// render.go prints markdown for humans and machines.
//
// Terminal output gets glamour rendering for readability; pipe/redirect
// gets raw markdown for machine consumption and LLM context loading.

package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

// PrintMarkdown writes content to the output writer, rendered with glamour
// when stdout is a terminal and raw is false.
func PrintMarkdown(content string, raw bool) {
	if !raw && out == os.Stdout && term.IsTerminal(int(os.Stdout.Fd())) {
		rendered, err := glamour.Render(content, "dark")
		if err == nil {
			fmt.Fprint(out, rendered)
			return
		}
	}
	fmt.Fprint(out, content)
}
