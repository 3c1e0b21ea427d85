package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vanmarkic/loyer-brussels/internal/calculation"
	"github.com/vanmarkic/loyer-brussels/internal/domain"
)

// SessionSettings tune persistence. Zero values fall back to defaults.
type SessionSettings struct {
	StorageDir     string        `yaml:"storage_dir"`
	DebounceDelay  time.Duration `yaml:"debounce_delay"`
	SaveInterval   time.Duration `yaml:"save_interval"`
	MaxSessionAge  time.Duration `yaml:"max_session_age"`
	QuotaBytes     int64         `yaml:"quota_bytes"`
	DisablePersist bool          `yaml:"disable_persistence"`
}

// AppConfig is the full application configuration.
type AppConfig struct {
	Locale   string                `yaml:"locale"`
	LogLevel string                `yaml:"log_level"`
	Session  SessionSettings       `yaml:"session"`
	Rates    calculation.RateTable `yaml:"rates"`
}

// Default returns the built-in configuration: French locale, snapshots
// under the user cache directory, and the compiled-in rate grid.
func Default() *AppConfig {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return &AppConfig{
		Locale:   "fr",
		LogLevel: "info",
		Session: SessionSettings{
			StorageDir:    filepath.Join(dir, "loyer-brussels"),
			DebounceDelay: time.Second,
			SaveInterval:  30 * time.Second,
			MaxSessionAge: 24 * time.Hour,
		},
		Rates: calculation.DefaultRateTable(),
	}
}

// Parser loads and validates application configuration files.
type Parser struct{}

// NewParser creates a configuration parser.
func NewParser() *Parser {
	return &Parser{}
}

// LoadFromFile reads a YAML configuration and overlays it on defaults.
func (p *Parser) LoadFromFile(filename string) (*AppConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := p.Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration for values the runtime cannot work
// with.
func (p *Parser) Validate(cfg *AppConfig) error {
	if cfg.Session.DebounceDelay < 0 {
		return fmt.Errorf("debounce_delay must not be negative")
	}
	if cfg.Session.SaveInterval < 0 {
		return fmt.Errorf("save_interval must not be negative")
	}
	if cfg.Session.MaxSessionAge < 0 {
		return fmt.Errorf("max_session_age must not be negative")
	}
	if len(cfg.Rates.BaseRates) == 0 {
		return fmt.Errorf("rates must define at least one base rate")
	}
	for pt, rate := range cfg.Rates.BaseRates {
		if !domain.ValidPropertyType(pt) {
			return fmt.Errorf("unknown property type %q in base rates", pt)
		}
		if rate.IsNegative() {
			return fmt.Errorf("base rate for %q must not be negative", pt)
		}
	}
	for code, idx := range cfg.Rates.DifficultyIndexes {
		if idx.IsNegative() || idx.IsZero() {
			return fmt.Errorf("difficulty index for %q must be positive", code)
		}
	}
	return nil
}
