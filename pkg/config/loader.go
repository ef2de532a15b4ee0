package config

import (
	stderrors "errors"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/punter/pkg/errors"
	"github.com/arthur-debert/punter/pkg/filesystem"
	"github.com/arthur-debert/punter/pkg/logging"
)

const (
	// DefaultConfigFile is looked up in the base directory when no explicit
	// config path is given
	DefaultConfigFile = "punter.toml"

	// EnvPrefix is the prefix of environment variables overriding file values
	EnvPrefix = "PUNTER_"

	// keyDelim separates nested koanf keys. [files] keys are file names that
	// routinely contain dots, so "." cannot be used.
	keyDelim = "::"
)

// envKeys maps the supported PUNTER_* variables to config keys
var envKeys = map[string]string{
	"PUNTER_VERBOSITY": "verbosity",
	"PUNTER_SYNC_SRC":  "sync" + keyDelim + "src",
	"PUNTER_SYNC_DEST": "sync" + keyDelim + "dest",
}

// Load returns the file-level configuration for basePath.
// An explicit path must point at a regular file. Without one, punter.toml is
// looked up in basePath; when it is absent and no PUNTER_* overrides are set the
// result is nil, meaning "use defaults".
func Load(fsys filesystem.FS, basePath, explicitPath string) (*FileConfig, error) {
	if explicitPath != "" {
		return LoadFile(fsys, explicitPath)
	}

	path := filepath.Join(basePath, DefaultConfigFile)
	if filesystem.IsRegularFile(fsys, path) {
		return LoadFile(fsys, path)
	}

	logger := logging.GetLogger("config")
	logger.Debug().Str("path", path).Msg("No config file found, using defaults")
	return load(nil, basePath)
}

// LoadFile reads and parses the TOML config at path
func LoadFile(fsys filesystem.FS, path string) (*FileConfig, error) {
	if !filesystem.IsRegularFile(fsys, path) {
		return nil, errors.Newf(errors.ErrConfigPath, "invalid config path %q", path).
			WithDetail("path", path)
	}

	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to read config %q", path)
	}

	raw := map[string]interface{}{}
	if err := toml.Unmarshal(data, &raw); err != nil {
		invalid := errors.Wrapf(err, errors.ErrConfigInvalid, "invalid config %q", path).
			WithDetail("path", path)
		var decodeErr *toml.DecodeError
		if stderrors.As(err, &decodeErr) {
			row, col := decodeErr.Position()
			invalid.WithDetail("line", row).
				WithDetail("column", col).
				WithDetail("diagnostic", decodeErr.String())
		}
		return nil, invalid
	}

	cfg, err := load(raw, filepath.Dir(path))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigInvalid, "invalid config %q", path).
			WithDetail("path", path)
	}

	logger := logging.GetLogger("config")
	logger.Debug().
		Str("path", path).
		Int("files", len(cfg.Files)).
		Msg("Config loaded")

	return cfg, nil
}

// load layers the parsed file (may be nil) and the environment, then decodes
// the result. Relative sync paths are resolved against dir.
func load(raw map[string]interface{}, dir string) (*FileConfig, error) {
	k := koanf.New(keyDelim)

	if raw != nil {
		// raw is already nested, so no delimiter: keys are taken verbatim
		if err := k.Load(confmap.Provider(raw, ""), nil); err != nil {
			return nil, err
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, keyDelim, envKey), nil); err != nil {
		return nil, err
	}

	if raw == nil && len(k.Keys()) == 0 {
		return nil, nil
	}

	cfg := Empty()
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook:       linkSpecHookFunc(),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		if raw == nil {
			return nil, errors.Wrap(err, errors.ErrConfigInvalid, "invalid PUNTER_* environment")
		}
		return nil, err
	}

	cfg.Sync.Source = resolveAgainst(dir, cfg.Sync.Source)
	cfg.Sync.Destination = resolveAgainst(dir, cfg.Sync.Destination)

	return &cfg, nil
}

// envKey maps an environment variable to its config key; unknown variables
// are dropped
func envKey(s string) string {
	return envKeys[strings.ToUpper(s)]
}

// resolveAgainst makes a relative path absolute against dir. Empty paths and
// home-relative paths are left for path resolution.
func resolveAgainst(dir, path string) string {
	if path == "" || filepath.IsAbs(path) || strings.HasPrefix(path, "~") || dir == "" {
		return path
	}
	return filepath.Join(dir, path)
}
