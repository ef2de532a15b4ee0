package types

import (
	"github.com/arthur-debert/punter/pkg/config"
)

// Context is the merged, read-only configuration of one invocation
type Context struct {
	// BasePath is the directory holding punter.toml and the dotfiles
	BasePath string
	// Args is the command line merged over the file configuration
	Args config.CliConfig
	// File is the file configuration, empty when no file was found
	File config.FileConfig
}

// NewContext merges cli over file and bundles the result
func NewContext(basePath string, cli config.CliConfig, file *config.FileConfig) Context {
	ctx := Context{
		BasePath: basePath,
		Args:     config.Merge(cli, file),
		File:     config.Empty(),
	}
	if file != nil {
		ctx.File = *file
	}
	return ctx
}
