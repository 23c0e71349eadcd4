package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/scratchblocks/sblocales/fetch"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	t.Setenv(EnvBaseURL, "")
	t.Setenv(EnvLocalesDir, "")

	cfg, err := Load(filepath.Join(t.TempDir(), FileName))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BaseURL != fetch.DefaultBaseURL || cfg.LocalesDir != DefaultLocalesDir {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if time.Duration(cfg.Timeout) != DefaultTimeout || cfg.MaxAttempts != 2 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	t.Setenv(EnvBaseURL, "")
	t.Setenv(EnvLocalesDir, "")

	path := writeFile(t, t.TempDir(), FileName, `
base_url: https://mirror.example.org/download
locales_dir: out
timeout: 15s
max_attempts: 3
requests_per_second: 4.5
concurrency: 8
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Config{
		BaseURL:           "https://mirror.example.org/download",
		LocalesDir:        "out",
		Timeout:           Duration(15 * time.Second),
		MaxAttempts:       3,
		RequestsPerSecond: 4.5,
		Concurrency:       8,
	}
	if *cfg != want {
		t.Fatalf("Load = %+v, want %+v", *cfg, want)
	}

	opts := cfg.FetchOptions()
	if opts.Timeout != 15*time.Second || opts.MaxAttempts != 3 || opts.BaseURL != want.BaseURL {
		t.Fatalf("FetchOptions = %+v", opts)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), FileName, "base_url: https://file.example.org\nlocales_dir: fromfile\n")
	t.Setenv(EnvBaseURL, "https://env.example.org/download")
	t.Setenv(EnvLocalesDir, "fromenv")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BaseURL != "https://env.example.org/download" || cfg.LocalesDir != "fromenv" {
		t.Fatalf("env did not override: %+v", cfg)
	}
}

func TestLoadDotEnv(t *testing.T) {
	t.Setenv(EnvLocalesDir, "")
	os.Unsetenv(EnvLocalesDir)

	dir := t.TempDir()
	envPath := writeFile(t, dir, ".env", EnvLocalesDir+"=dotenv-dir\n")
	if err := LoadDotEnv(envPath); err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}
	if got := os.Getenv(EnvLocalesDir); got != "dotenv-dir" {
		t.Fatalf("%s = %q, want dotenv-dir", EnvLocalesDir, got)
	}

	if err := LoadDotEnv(filepath.Join(dir, "missing.env")); err != nil {
		t.Fatalf("missing .env should be ignored, got %v", err)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	bad := writeFile(t, dir, "bad.yaml", "base_url: [unterminated\n")
	if _, err := Load(bad); err == nil || !strings.Contains(err.Error(), "parsing") {
		t.Fatalf("expected parse error, got %v", err)
	}

	badDuration := writeFile(t, dir, "dur.yaml", "timeout: soon\n")
	if _, err := Load(badDuration); err == nil {
		t.Fatal("expected duration error")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"no scheme", func(c *Config) { c.BaseURL = "translate.scratch.mit.edu" }, "base_url"},
		{"ftp scheme", func(c *Config) { c.BaseURL = "ftp://example.org" }, "base_url"},
		{"empty dir", func(c *Config) { c.LocalesDir = " " }, "locales_dir"},
		{"zero attempts", func(c *Config) { c.MaxAttempts = 0 }, "max_attempts"},
		{"negative rate", func(c *Config) { c.RequestsPerSecond = -1 }, "requests_per_second"},
		{"negative concurrency", func(c *Config) { c.Concurrency = -2 }, "concurrency"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("Validate() = %v, want error mentioning %q", err, tc.want)
			}
		})
	}
}
