package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"artgallery/internal/config"
	"artgallery/internal/testsupport"
)

type cliTestEnv struct {
	cfg        *config.Config
	server     *testsupport.CatalogServer
	configPath string
}

func setupCLITestEnv(t *testing.T, status int, body string, opts ...testsupport.ConfigOption) *cliTestEnv {
	t.Helper()

	t.Setenv("HOME", t.TempDir())
	t.Setenv(config.EnvCatalogURL, "")
	t.Setenv(config.EnvImagesDir, "")
	t.Setenv(config.EnvLogLevel, "")

	server := testsupport.NewCatalogServer(t, status, body)
	opts = append([]testsupport.ConfigOption{testsupport.WithCatalogURL(server.CatalogURL())}, opts...)
	cfg := testsupport.NewConfig(t, opts...)

	configPath := filepath.Join(t.TempDir(), "artgallery.toml")
	writeTestConfig(t, configPath, cfg)

	return &cliTestEnv{cfg: cfg, server: server, configPath: configPath}
}

func writeTestConfig(t *testing.T, path string, cfg *config.Config) {
	t.Helper()
	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func requireNotContains(t *testing.T, output, substr string) {
	t.Helper()
	if strings.Contains(output, substr) {
		t.Fatalf("expected %q not to contain %q", output, substr)
	}
}
