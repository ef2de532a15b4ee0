// Package config handles configuration management for punter.
//
// Configuration comes from three places, in increasing order of precedence:
// built-in defaults (applied during path resolution), the punter.toml file
// found in the base directory (optionally overridden by PUNTER_* environment
// variables), and command-line flags. Load reads the file layer, Merge layers
// the command line on top of it.
package config
