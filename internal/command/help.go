package command

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
)

// renderHelp builds the `:help [name]` markdown (spec §6) and renders it
// to ANSI with glamour, falling back to the raw markdown if rendering
// fails (e.g. no terminal profile detected).
func renderHelp(name string) string {
	md := helpMarkdown(name)
	out, err := glamour.Render(md, "dark")
	if err != nil {
		return md
	}
	return out
}

func helpMarkdown(name string) string {
	if name == "" {
		var b strings.Builder
		b.WriteString("# Commands\n\n")
		for _, c := range Table {
			b.WriteString(fmt.Sprintf("- **%s** -- %s\n", c.Name, c.Help))
		}
		return b.String()
	}

	cmd, ok := lookup(name)
	if !ok {
		return fmt.Sprintf("Command '%s' not found", name)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n%s\n", cmd.Name, cmd.Help)
	if len(cmd.Aliases) > 0 {
		fmt.Fprintf(&b, "\nAliases: %s\n", strings.Join(cmd.Aliases, ", "))
	}
	return b.String()
}
