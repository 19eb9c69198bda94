package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"csvlint/errors"
)

var globalConfig *Config
var viperInstance *viper.Viper

// Load reads the csvlint configuration using Viper
func Load() (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	v := initViper()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	globalConfig = &config
	return globalConfig, nil
}

// LoadFromFile loads configuration from a specific file path
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")

	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", configPath)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal config from %s", configPath)
	}

	return &config, nil
}

// Reset clears the cached configuration (useful for testing)
func Reset() {
	globalConfig = nil
	viperInstance = nil
}

// initViper initializes Viper with configuration sources and defaults
func initViper() *viper.Viper {
	if viperInstance != nil {
		return viperInstance
	}

	v := viper.New()

	// Environment variable binding: CSVLINT_CHECK_DELIMITER and friends
	v.SetEnvPrefix("CSVLINT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	// Merge configs in precedence order: user -> project -> env vars
	mergeConfigFiles(v)

	viperInstance = v
	return v
}

// mergeConfigFiles merges configuration files in the correct precedence
// order. Precedence (lowest to highest): user < project < env vars.
func mergeConfigFiles(v *viper.Viper) {
	v.SetConfigType("toml")

	var paths []string
	if homeDir, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(homeDir, ".csvlint", "config.toml"))
	}
	if projectPath := findProjectConfig(); projectPath != "" {
		paths = append(paths, projectPath)
	}

	first := true
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		v.SetConfigFile(path)
		if first {
			if err := v.ReadInConfig(); err != nil {
				continue
			}
			first = false
			continue
		}
		// Best effort: a broken project file must not mask the user file.
		_ = v.MergeInConfig()
	}
}

// findProjectConfig searches for csvlint.toml by walking up the directory
// tree from the working directory. Returns the first match, or "".
func findProjectConfig() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		path := filepath.Join(dir, "csvlint.toml")
		if _, err := os.Stat(path); err == nil {
			return path
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
