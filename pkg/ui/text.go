package ui

import (
	"fmt"
	"io"

	"github.com/arthur-debert/punter/pkg/types"
)

// textRenderer provides plain text output without colors or styling
type textRenderer struct {
	output io.Writer
}

func (r *textRenderer) RenderEntry(entry types.Entry) error {
	_, err := fmt.Fprintln(r.output, entry.Path)
	return err
}

func (r *textRenderer) RenderSummary(summary Summary) error {
	_, err := fmt.Fprintf(r.output, "%s: %d action(s) executed\n", summary.Command, len(summary.Executed))
	return err
}

func (r *textRenderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.output, "Error: %v\n", err)
	return werr
}

func (r *textRenderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}
