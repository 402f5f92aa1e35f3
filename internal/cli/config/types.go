// Package config provides configuration management for the sqlident CLI.
//
// Configuration is merged from four sources, lowest to highest priority:
// built-in defaults, a sqlident.yaml config file, SQLIDENT_* environment
// variables, and command-line flags.
package config

// Default configuration values.
const (
	DefaultDialect = "generic"
	DefaultOutput  = "auto"
)

// Config holds all CLI configuration options.
type Config struct {
	Dialect      string `koanf:"dialect"`
	Strict       bool   `koanf:"strict"`
	OutputFormat string `koanf:"output"`
	Verbose      bool   `koanf:"verbose"`
}
