package ui

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/punter/pkg/types"
	"github.com/arthur-debert/punter/pkg/ui/styles"
)

// terminalRenderer provides rich terminal output
type terminalRenderer struct {
	output io.Writer
}

func (r *terminalRenderer) RenderEntry(entry types.Entry) error {
	name := entry.Path
	if entry.Kind == types.EntryDir {
		name += "/"
	}
	_, err := fmt.Fprintf(r.output, "  %s %s\n",
		styles.GetStyle("Muted").Render(string(entry.Kind)),
		styles.GetStyle("FilePath").Render(name))
	return err
}

func (r *terminalRenderer) RenderSummary(summary Summary) error {
	_, err := fmt.Fprintf(r.output, "%s %s\n",
		pterm.Bold.Sprint(summary.Command),
		styles.GetStyle("Success").Render(fmt.Sprintf("%d action(s) executed", len(summary.Executed))))
	return err
}

func (r *terminalRenderer) RenderError(err error) error {
	_, werr := fmt.Fprintln(r.output, styles.GetStyle("Error").Render(fmt.Sprintf("Error: %v", err)))
	return werr
}

func (r *terminalRenderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, styles.GetStyle("Info").Render(msg))
	return err
}
