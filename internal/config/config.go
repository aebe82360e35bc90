package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Log struct {
		Level string `yaml:"level" validate:"oneof=trace debug info warn error"`
	} `yaml:"log"`
	Output struct {
		Format  string `yaml:"format" validate:"oneof=text yaml json"`
		History int    `yaml:"history" validate:"gte=0,lte=1000"`
	} `yaml:"output"`
	Watch struct {
		Cron string `yaml:"cron" validate:"required"`
	} `yaml:"watch"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("CML_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("CML_FORMAT"); v != "" {
		cfg.Output.Format = v
	}
	if v := os.Getenv("CML_WATCH_CRON"); v != "" {
		cfg.Watch.Cron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}

	// Defaults
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = "text"
	}
	if cfg.Watch.Cron == "" {
		cfg.Watch.Cron = "*/2 * * * * *"
	}

	return cfg, nil
}

// Validate checks field constraints declared in the struct tags.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%s: invalid value %v (%s %s)", fe.Namespace(), fe.Value(), fe.Tag(), fe.Param())
		}
		return fmt.Errorf("validate config: %w", err)
	}
	return nil
}
