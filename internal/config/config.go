// Package config loads datatable's YAML configuration, applies environment overrides and
// validates it before any view is built.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/rshade/datatable/internal/pagination"
)

// Environment variables that override the config file.
const (
	EnvConfigPath = "DATATABLE_CONFIG"
	EnvLogLevel   = "DATATABLE_LOG_LEVEL"
	EnvLogFormat  = "DATATABLE_LOG_FORMAT"
	EnvPageSize   = "DATATABLE_PAGE_SIZE"

	configDirName  = ".datatable"
	configFileName = "config.yaml"
)

// Defaults.
const (
	DefaultBreakpoint   = 112
	DefaultOutputFormat = "text"
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "console"
)

// Validation errors.
var (
	ErrInvalidNeighbors    = errors.New("table.neighbors must be >= 1")
	ErrInvalidPageSize     = errors.New("table.page_size must be one of 10, 20, 30")
	ErrInvalidBreakpoint   = errors.New("table.breakpoint must be >= 0")
	ErrInvalidOutputFormat = errors.New("output.default_format must be 'text' or 'json'")
)

// Config is the full datatable configuration.
type Config struct {
	Table   TableConfig   `yaml:"table"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// TableConfig controls table and paginator behavior.
type TableConfig struct {
	// Neighbors is the paginator's neighbor count.
	Neighbors int `yaml:"neighbors"`

	// PageSize is the initial records per page; one of 10, 20, 30.
	PageSize int `yaml:"page_size"`

	// Breakpoint is the terminal width (columns) below which the responsive fallback is shown.
	Breakpoint int `yaml:"breakpoint"`

	// Responsive enables the fallback view on narrow terminals.
	Responsive bool `yaml:"responsive"`

	// Paginate enables the paginator.
	Paginate bool `yaml:"paginate"`
}

// OutputConfig controls non-interactive output.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"`
}

// LoggingConfig controls logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		Table: TableConfig{
			Neighbors:  pagination.DefaultNeighbors,
			PageSize:   pagination.DefaultPageLimit,
			Breakpoint: DefaultBreakpoint,
			Responsive: true,
			Paginate:   true,
		},
		Output: OutputConfig{
			DefaultFormat: DefaultOutputFormat,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// DefaultPath returns ~/.datatable/config.yaml, or an empty string when the home directory
// cannot be resolved.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, configDirName, configFileName)
}

// ResolvePath picks the config file: the flag value, then DATATABLE_CONFIG, then DefaultPath.
func ResolvePath(flagValue string, lookupEnv func(string) (string, bool)) string {
	if flagValue != "" {
		return flagValue
	}
	if v, ok := lookupEnv(EnvConfigPath); ok && v != "" {
		return v
	}
	return DefaultPath()
}

// Load builds a Config from defaults, the YAML file at path (a missing file is not an error
// unless required is set), and environment overrides, then validates it.
func Load(path string, required bool, lookupEnv func(string) (string, bool)) (*Config, error) {
	cfg := New()

	if path != "" {
		_, statErr := os.Stat(path)
		switch {
		case statErr == nil:
			if err := ShallowMergeYAML(cfg, path); err != nil {
				return nil, err
			}
		case errors.Is(statErr, os.ErrNotExist) && !required:
			// Missing config is fine; defaults apply.
		default:
			return nil, fmt.Errorf("reading config %s: %w", path, statErr)
		}
	}

	if err := cfg.ApplyEnv(lookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv applies environment overrides.
func (c *Config) ApplyEnv(lookupEnv func(string) (string, bool)) error {
	if v, ok := lookupEnv(EnvLogLevel); ok && v != "" {
		c.Logging.Level = v
	}
	if v, ok := lookupEnv(EnvLogFormat); ok && v != "" {
		c.Logging.Format = v
	}
	if v, ok := lookupEnv(EnvPageSize); ok && v != "" {
		size, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parsing %s=%q: %w", EnvPageSize, v, err)
		}
		c.Table.PageSize = size
	}
	return nil
}

// Validate rejects configuration that would make the paginator misbehave.
func (c *Config) Validate() error {
	if c.Table.Neighbors <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidNeighbors, c.Table.Neighbors)
	}
	if !pagination.IsPageSizeChoice(c.Table.PageSize) {
		return fmt.Errorf("%w: got %d", ErrInvalidPageSize, c.Table.PageSize)
	}
	if c.Table.Breakpoint < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidBreakpoint, c.Table.Breakpoint)
	}
	switch c.Output.DefaultFormat {
	case "text", "json":
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidOutputFormat, c.Output.DefaultFormat)
	}
	return nil
}
