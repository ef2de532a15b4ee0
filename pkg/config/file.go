package config

// FileConfig is the typed content of a punter.toml file
type FileConfig struct {
	Verbosity *int                `koanf:"verbosity"`
	Sync      SyncConfig          `koanf:"sync"`
	Files     map[string]LinkSpec `koanf:"files"`
}

// SyncConfig holds the [sync] table
type SyncConfig struct {
	Source      string `koanf:"src"`
	Destination string `koanf:"dest"`
}

// Empty returns a FileConfig with no values set
func Empty() FileConfig {
	return FileConfig{Files: map[string]LinkSpec{}}
}
