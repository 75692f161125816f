// Package config loads settings for the openings binary: defaults, then an
// optional YAML file, then OPENINGS_* environment variables. Command-line
// flags are applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/adrg/xdg"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// AppName names the XDG directories.
const AppName = "openings"

// Config holds every runtime setting.
type Config struct {
	LogLevel string `yaml:"log_level" validate:"omitempty,oneof=trace debug info warn error fatal panic disabled"`

	Server   Server   `yaml:"server"`
	Search   Search   `yaml:"search"`
	Repl     Repl     `yaml:"repl"`
	Classify Classify `yaml:"classify"`
}

// Server configures the HTTP API.
type Server struct {
	Addr         string        `yaml:"addr" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout" validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout" validate:"gt=0"`
}

// Search configures name search output.
type Search struct {
	Limit int `yaml:"limit" validate:"min=1,max=15"`
}

// Repl configures the interactive prompt.
type Repl struct {
	HistoryFile string `yaml:"history_file"`
}

// Classify configures PGN classification.
type Classify struct {
	Workers int `yaml:"workers" validate:"min=1,max=64"`
}

var validate = validator.New()

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogLevel: "info",
		Server: Server{
			Addr:         ":8007",
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 60 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		Search: Search{Limit: 15},
		Repl: Repl{
			HistoryFile: filepath.Join(xdg.StateHome, AppName, "history"),
		},
		Classify: Classify{Workers: 4},
	}
}

// DefaultPath is the config file location under XDG_CONFIG_HOME.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, AppName, "config.yaml")
}

// Load reads path over the defaults and applies the environment. A missing
// file at the default path is not an error; a missing explicit path is.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field constraint.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup("OPENINGS_LOG_LEVEL"); ok {
		cfg.LogLevel = v
	}
	if v, ok := lookup("OPENINGS_ADDR"); ok {
		cfg.Server.Addr = v
	}
	if v, ok := lookup("OPENINGS_HISTORY_FILE"); ok {
		cfg.Repl.HistoryFile = v
	}
	if v, ok := lookup("OPENINGS_SEARCH_LIMIT"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("OPENINGS_SEARCH_LIMIT: %w", err)
		}
		cfg.Search.Limit = n
	}
	if v, ok := lookup("OPENINGS_CLASSIFY_WORKERS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("OPENINGS_CLASSIFY_WORKERS: %w", err)
		}
		cfg.Classify.Workers = n
	}
	return nil
}
