package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vanmarkic/loyer-brussels/internal/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "fr", cfg.Locale)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, time.Second, cfg.Session.DebounceDelay)
	assert.Equal(t, 30*time.Second, cfg.Session.SaveInterval)
	assert.Equal(t, 24*time.Hour, cfg.Session.MaxSessionAge)
	assert.NotEmpty(t, cfg.Rates.BaseRates)
	assert.NoError(t, NewParser().Validate(cfg), "defaults must validate")
}

func TestLoadFromFileOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
locale: nl
session:
  max_session_age: 48h
rates:
  base_rates:
    studio: "19.5"
`)

	cfg, err := NewParser().LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "nl", cfg.Locale)
	assert.Equal(t, 48*time.Hour, cfg.Session.MaxSessionAge)
	assert.Equal(t, time.Second, cfg.Session.DebounceDelay, "unset keys keep their defaults")

	studio, ok := cfg.Rates.BaseRate(domain.PropertyTypeStudio)
	require.True(t, ok)
	assert.True(t, studio.Equal(decimal.NewFromFloat(19.5)))

	house, ok := cfg.Rates.BaseRate(domain.PropertyTypeHouse)
	require.True(t, ok, "untouched grid entries survive the overlay")
	assert.True(t, house.Equal(decimal.NewFromFloat(11)))
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := NewParser().LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadFromFileMalformedYAML(t *testing.T) {
	path := writeConfig(t, "locale: [unclosed")
	_, err := NewParser().LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*AppConfig)
	}{
		{"negative debounce", func(c *AppConfig) { c.Session.DebounceDelay = -time.Second }},
		{"negative save interval", func(c *AppConfig) { c.Session.SaveInterval = -time.Minute }},
		{"negative session age", func(c *AppConfig) { c.Session.MaxSessionAge = -time.Hour }},
		{"empty base rates", func(c *AppConfig) {
			c.Rates.BaseRates = nil
		}},
		{"unknown property type", func(c *AppConfig) {
			c.Rates.BaseRates["chalet"] = decimal.NewFromInt(9)
		}},
		{"negative base rate", func(c *AppConfig) {
			c.Rates.BaseRates[domain.PropertyTypeHouse] = decimal.NewFromInt(-1)
		}},
		{"zero difficulty index", func(c *AppConfig) {
			c.Rates.DifficultyIndexes["1000"] = decimal.Zero
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, NewParser().Validate(cfg))
		})
	}
}
