// Package config loads csvlint defaults from toml files and CSVLINT_*
// environment variables. Explicit CLI flags always win; this package only
// supplies the values used when a flag is left unset.
package config

import (
	"github.com/spf13/viper"
)

// Config represents the csvlint configuration
type Config struct {
	Check  CheckConfig  `mapstructure:"check"`
	Output OutputConfig `mapstructure:"output"`
}

// CheckConfig holds default validation settings for the check command
type CheckConfig struct {
	Delimiter  string `mapstructure:"delimiter"`   // field delimiter, "\t" accepted for tab
	LazyQuotes bool   `mapstructure:"lazy_quotes"` // tolerate malformed quoting by default
	RFC4180    bool   `mapstructure:"rfc4180"`     // strict-compliance mode by default
}

// OutputConfig holds report rendering defaults
type OutputConfig struct {
	JSON bool `mapstructure:"json"` // machine-readable output by default
}

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("check.delimiter", ",")
	v.SetDefault("check.lazy_quotes", false)
	v.SetDefault("check.rfc4180", false)

	v.SetDefault("output.json", false)
}

// Default returns the built-in configuration, for callers that need to
// proceed when no config source can be read.
func Default() *Config {
	return &Config{
		Check: CheckConfig{Delimiter: ","},
	}
}
