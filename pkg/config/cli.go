package config

// CliConfig holds the values given on the command line for one invocation.
// Empty strings and nil pointers mean the flag was not given.
type CliConfig struct {
	// Command is the selected subcommand (currently only "sync")
	Command string
	// BasePath is the directory holding punter.toml and the dotfiles
	BasePath string
	// ConfigPath is an explicit config file location
	ConfigPath string
	// Source overrides the dotfile source directory
	Source string
	// Destination overrides the destination directory
	Destination string
	// Verbosity is the -v count, nil when -v was not given
	Verbosity *int
}

// VerbosityOr returns the configured verbosity or def when unset
func (c CliConfig) VerbosityOr(def int) int {
	if c.Verbosity == nil {
		return def
	}
	return *c.Verbosity
}
