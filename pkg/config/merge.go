package config

// Merge layers the command line over the file configuration.
// A field given on the command line wins; otherwise the file value is used.
// Fields unset in both stay unset and get their defaults during path
// resolution. With no file configuration the CLI values are returned as is.
func Merge(cli CliConfig, file *FileConfig) CliConfig {
	if file == nil {
		return cli
	}

	merged := cli
	if merged.Source == "" {
		merged.Source = file.Sync.Source
	}
	if merged.Destination == "" {
		merged.Destination = file.Sync.Destination
	}
	if merged.Verbosity == nil && file.Verbosity != nil {
		v := *file.Verbosity
		merged.Verbosity = &v
	}

	return merged
}
