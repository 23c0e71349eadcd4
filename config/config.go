// Package config loads sblocales settings.
//
// Settings come from, in increasing precedence: built-in defaults, an
// optional .sblocales.yaml file, the environment (optionally seeded from a
// .env file) and command-line flags, which the CLI applies on top.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/scratchblocks/sblocales/fetch"
)

// FileName is the default config file name.
const FileName = ".sblocales.yaml"

// Environment overrides.
const (
	EnvBaseURL    = "SBLOCALES_BASE_URL"
	EnvLocalesDir = "SBLOCALES_LOCALES_DIR"
)

// Defaults.
const (
	DefaultLocalesDir = "locales"
	DefaultTimeout    = 60 * time.Second
)

// Duration is a time.Duration written as a Go duration string ("30s").
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	dur, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(dur)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Config holds the settings of a run.
type Config struct {
	// BaseURL is the download root of the translation server.
	BaseURL string `yaml:"base_url"`
	// LocalesDir receives the <lang>.json files.
	LocalesDir string `yaml:"locales_dir"`
	// Timeout bounds a single catalog request.
	Timeout Duration `yaml:"timeout"`
	// MaxAttempts is how often a language's catalog pair is requested before
	// the language is given up.
	MaxAttempts int `yaml:"max_attempts"`
	// RequestsPerSecond throttles catalog requests; 0 means unthrottled.
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	// Concurrency caps the languages processed at once; 0 means all.
	Concurrency int `yaml:"concurrency"`
	// AliasFile optionally extends the built-in alias table.
	AliasFile string `yaml:"alias_file,omitempty"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		BaseURL:     fetch.DefaultBaseURL,
		LocalesDir:  DefaultLocalesDir,
		Timeout:     Duration(DefaultTimeout),
		MaxAttempts: fetch.DefaultMaxAttempts,
	}
}

// LoadDotEnv loads a .env file into the environment. A missing file is not
// an error, variables may come from the environment itself.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// Load reads the config file at path over the defaults and applies
// environment overrides. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvBaseURL)); v != "" {
		c.BaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLocalesDir)); v != "" {
		c.LocalesDir = v
	}
}

// Validate checks the settings before anything touches the filesystem.
func (c *Config) Validate() error {
	parsed, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("config: invalid base_url %q: %w", c.BaseURL, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" || parsed.Host == "" {
		return fmt.Errorf("config: invalid base_url %q: scheme or host missing", c.BaseURL)
	}
	if strings.TrimSpace(c.LocalesDir) == "" {
		return errors.New("config: locales_dir must not be empty")
	}
	if c.MaxAttempts < 1 {
		return fmt.Errorf("config: max_attempts must be at least 1, got %d", c.MaxAttempts)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("config: negative timeout %s", time.Duration(c.Timeout))
	}
	if c.RequestsPerSecond < 0 {
		return fmt.Errorf("config: negative requests_per_second %v", c.RequestsPerSecond)
	}
	if c.Concurrency < 0 {
		return fmt.Errorf("config: negative concurrency %d", c.Concurrency)
	}
	return nil
}

// FetchOptions maps the settings onto the fetcher.
func (c *Config) FetchOptions() fetch.Options {
	return fetch.Options{
		BaseURL:           c.BaseURL,
		MaxAttempts:       c.MaxAttempts,
		Timeout:           time.Duration(c.Timeout),
		RequestsPerSecond: c.RequestsPerSecond,
	}
}
