package genconfig

import (
	"path/filepath"

	"github.com/arthur-debert/punter/pkg/config"
	"github.com/arthur-debert/punter/pkg/errors"
	"github.com/arthur-debert/punter/pkg/filesystem"
	"github.com/arthur-debert/punter/pkg/logging"
)

// GenConfigOptions holds options for the gen-config command
type GenConfigOptions struct {
	BasePath   string
	Write      bool
	FileSystem filesystem.FS
}

// GenConfigResult is the outcome of GenConfig
type GenConfigResult struct {
	ConfigContent string
	// FileWritten is the path written, empty when nothing was written
	FileWritten string
	// Skipped is set when Write was requested but the file already existed
	Skipped bool
}

// GenConfig outputs or writes the commented punter.toml template
func GenConfig(opts GenConfigOptions) (*GenConfigResult, error) {
	logger := logging.GetLogger("commands.genconfig")

	result := &GenConfigResult{ConfigContent: config.GetTemplateContent()}

	if !opts.Write {
		logger.Debug().Msg("Outputting config to stdout")
		return result, nil
	}

	fsys := opts.FileSystem
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	basePath := opts.BasePath
	if basePath == "" {
		basePath = "."
	}
	targetPath := filepath.Join(basePath, config.DefaultConfigFile)

	if _, err := fsys.Lstat(targetPath); err == nil {
		logger.Warn().Str("path", targetPath).Msg("Config file already exists, skipping")
		result.Skipped = true
		return result, nil
	}

	if err := fsys.MkdirAll(basePath, 0755); err != nil {
		return result, errors.Wrapf(err, errors.ErrFileWrite, "failed to create directory %s", basePath)
	}
	if err := fsys.WriteFile(targetPath, []byte(result.ConfigContent), 0644); err != nil {
		return result, errors.Wrapf(err, errors.ErrFileWrite, "failed to write config to %s", targetPath)
	}

	logger.Info().Str("path", targetPath).Msg("Written config file")
	result.FileWritten = targetPath
	return result, nil
}
