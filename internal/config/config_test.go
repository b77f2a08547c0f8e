package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pelletier/go-toml/v2"

	"artgallery/internal/config"
)

func TestLoadDefaultConfigExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("XDG_STATE_HOME", "")
	t.Setenv(config.EnvCatalogURL, "")
	t.Setenv(config.EnvImagesDir, "")
	t.Setenv(config.EnvLogLevel, "")

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved != filepath.Join(tempHome, ".config", "artgallery", "config.toml") {
		t.Fatalf("unexpected resolved path: %q", resolved)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if cfg.Catalog.URL != config.Default().Catalog.URL {
		t.Fatalf("unexpected catalog url: %q", cfg.Catalog.URL)
	}
	if cfg.CatalogTimeout() != 15*time.Second {
		t.Fatalf("unexpected timeout: %s", cfg.CatalogTimeout())
	}
	if cfg.Catalog.MaxBytes != 8<<20 {
		t.Fatalf("unexpected max bytes: %d", cfg.Catalog.MaxBytes)
	}
	wantImages := filepath.Join(tempHome, ".local", "share", "artgallery", "images")
	if cfg.Images.Dir != wantImages {
		t.Fatalf("unexpected images dir: got %q want %q", cfg.Images.Dir, wantImages)
	}
	wantLogs := filepath.Join(tempHome, ".local", "state", "artgallery", "logs")
	if cfg.Logging.Dir != wantLogs {
		t.Fatalf("unexpected log dir: got %q want %q", cfg.Logging.Dir, wantLogs)
	}
	if !cfg.UI.AltScreen {
		t.Fatal("expected alt screen enabled by default")
	}
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	if info, err := os.Stat(cfg.Logging.Dir); err != nil || !info.IsDir() {
		t.Fatalf("expected log directory to exist: %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	t.Setenv(config.EnvCatalogURL, "")
	t.Setenv(config.EnvImagesDir, "")
	t.Setenv(config.EnvLogLevel, "")
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "artgallery.toml")

	type payload struct {
		Catalog struct {
			URL            string `toml:"url"`
			TimeoutSeconds int    `toml:"timeout_seconds"`
		} `toml:"catalog"`
		Images struct {
			Dir string `toml:"dir"`
		} `toml:"images"`
		Logging struct {
			Format string `toml:"format"`
			Level  string `toml:"level"`
		} `toml:"logging"`
	}
	custom := payload{}
	custom.Catalog.URL = "  https://example.com/catalog.json "
	custom.Catalog.TimeoutSeconds = 3
	custom.Images.Dir = filepath.Join(tempDir, "art")
	custom.Logging.Format = "JSON"
	custom.Logging.Level = " Debug"
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists to be true")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, configPath)
	}
	if cfg.Catalog.URL != "https://example.com/catalog.json" {
		t.Fatalf("expected trimmed catalog url, got %q", cfg.Catalog.URL)
	}
	if cfg.Catalog.TimeoutSeconds != 3 {
		t.Fatalf("expected timeout 3, got %d", cfg.Catalog.TimeoutSeconds)
	}
	if cfg.Catalog.MaxBytes != config.Default().Catalog.MaxBytes {
		t.Fatalf("expected default max bytes, got %d", cfg.Catalog.MaxBytes)
	}
	if cfg.Images.Dir != filepath.Join(tempDir, "art") {
		t.Fatalf("unexpected images dir: %q", cfg.Images.Dir)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("expected normalized logging settings, got %q/%q", cfg.Logging.Format, cfg.Logging.Level)
	}
}

func TestLoadMissingCustomPathUsesDefaults(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "absent.toml")
	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected exists to be false")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: %q", resolved)
	}
	if cfg.Catalog.TimeoutSeconds != config.Default().Catalog.TimeoutSeconds {
		t.Fatalf("unexpected timeout: %d", cfg.Catalog.TimeoutSeconds)
	}
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "broken.toml")
	if err := os.WriteFile(configPath, []byte("[catalog\nurl = "), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(configPath); err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestEnvVarOverridesConfigFile(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "artgallery.toml")
	contents := `
[catalog]
url = "https://file.example.com/catalog.json"

[images]
dir = "/from/file"

[logging]
level = "warn"
`
	if err := os.WriteFile(configPath, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv(config.EnvCatalogURL, "http://env.example.com/catalog.json")
	t.Setenv(config.EnvImagesDir, filepath.Join(tempDir, "env-images"))
	t.Setenv(config.EnvLogLevel, "ERROR")

	cfg, _, _, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Catalog.URL != "http://env.example.com/catalog.json" {
		t.Errorf("expected catalog url from env, got %q", cfg.Catalog.URL)
	}
	if cfg.Images.Dir != filepath.Join(tempDir, "env-images") {
		t.Errorf("expected images dir from env, got %q", cfg.Images.Dir)
	}
	if cfg.Logging.Level != "error" {
		t.Errorf("expected log level from env, got %q", cfg.Logging.Level)
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "sample.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}

	var cfg config.Config
	if err := toml.Unmarshal(contents, &cfg); err != nil {
		t.Fatalf("unmarshal sample: %v", err)
	}
	defaults := config.Default()
	if cfg.Catalog.URL != defaults.Catalog.URL {
		t.Fatalf("sample catalog url drifted from default: %q", cfg.Catalog.URL)
	}
	if cfg.Catalog.MaxBytes != defaults.Catalog.MaxBytes {
		t.Fatalf("sample max_bytes drifted from default: %d", cfg.Catalog.MaxBytes)
	}
	if cfg.Logging.RetentionDays != defaults.Logging.RetentionDays {
		t.Fatalf("sample retention drifted from default: %d", cfg.Logging.RetentionDays)
	}
	if !strings.Contains(cfg.Images.Dir, "artgallery") {
		t.Fatalf("expected images dir to contain artgallery, got %q", cfg.Images.Dir)
	}
}

func TestValidateDetectsInvalidValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"ftp scheme", func(c *config.Config) { c.Catalog.URL = "ftp://example.com/catalog.json" }},
		{"missing host", func(c *config.Config) { c.Catalog.URL = "https:///catalog.json" }},
		{"relative url", func(c *config.Config) { c.Catalog.URL = "catalog.json" }},
		{"zero timeout", func(c *config.Config) { c.Catalog.TimeoutSeconds = 0 }},
		{"negative max bytes", func(c *config.Config) { c.Catalog.MaxBytes = -1 }},
		{"unknown format", func(c *config.Config) { c.Logging.Format = "xml" }},
		{"unknown level", func(c *config.Config) { c.Logging.Level = "trace" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}

	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
}
