package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Load loads the configuration from file and environment. Credentials
// may come from SHOTONE_API_ACCESS_KEY / SHOTONE_API_SECRET_KEY instead
// of a config file, so a missing file is only an error when the
// environment does not provide them either.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	// Environment overrides: SHOTONE_API_ACCESS_KEY and friends.
	v.SetEnvPrefix("SHOTONE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".shotone"))
		}

		// Check /etc
		v.AddConfigPath("/etc/shotone/")
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
		if configPath != "" {
			return nil, fmt.Errorf("config file not found: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// API defaults. The credential keys are registered with empty
	// defaults so AutomaticEnv can fill them without a config file.
	v.SetDefault("api.access_key", "")
	v.SetDefault("api.secret_key", "")
	v.SetDefault("api.base_url", "https://api.screenshotone.com")
	v.SetDefault("api.timeout", 60)

	// Output defaults
	v.SetDefault("output.directory", ".")
	v.SetDefault("output.format", "png")

	// Batch defaults
	v.SetDefault("batch.concurrency", 4)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.API.AccessKey == "" {
		return fmt.Errorf("api.access_key is required (or set SHOTONE_API_ACCESS_KEY)")
	}

	if cfg.API.SecretKey == "" {
		return fmt.Errorf("api.secret_key is required (or set SHOTONE_API_SECRET_KEY)")
	}

	if cfg.Batch.Concurrency < 1 {
		return fmt.Errorf("batch.concurrency must be at least 1")
	}

	// Validate logging level
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}
