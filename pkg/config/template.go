package config

import (
	_ "embed"
)

//go:embed embedded/punter.toml
var templateConfig []byte

// GetTemplateContent returns the commented punter.toml written by gen-config
func GetTemplateContent() string {
	return string(templateConfig)
}
