// Package ui renders command output in different formats.
// It supports terminal (rich), text (plain), and JSON output formats.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/arthur-debert/punter/pkg/types"
)

// Summary describes a finished command run
type Summary struct {
	Command  string   `json:"command"`
	Executed []string `json:"executed"`
}

// Renderer is the common interface for all output renderers
type Renderer interface {
	// RenderEntry renders one source directory entry
	RenderEntry(entry types.Entry) error

	// RenderSummary renders the outcome of a command
	RenderSummary(summary Summary) error

	// RenderError renders an error with appropriate formatting
	RenderError(err error) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// NewRenderer creates a new renderer based on the specified format.
// It detects terminal capabilities when format is Auto.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		if file, ok := output.(*os.File); ok {
			return NewRenderer(DetectFormat(file), output)
		}
		return NewRenderer(FormatText, output)
	case FormatTerminal:
		return &terminalRenderer{output: output}, nil
	case FormatText:
		return &textRenderer{output: output}, nil
	case FormatJSON:
		return newJSONRenderer(output), nil
	default:
		return nil, fmt.Errorf("unknown format: %v", format)
	}
}
