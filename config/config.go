package config

import (
	_ "embed"
)

//go:embed defaults.yaml
var defaults []byte

// Defaults returns the embedded default hyprwall.yaml.
func Defaults() []byte {
	return defaults
}
