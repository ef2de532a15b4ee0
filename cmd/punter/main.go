package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/punter/internal/cli"
	"github.com/arthur-debert/punter/pkg/ui"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		renderer, rerr := ui.NewRenderer(ui.FormatAuto, os.Stderr)
		if rerr != nil || renderer.RenderError(err) != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
