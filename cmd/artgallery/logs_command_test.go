package main

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"artgallery/internal/testsupport"
)

func TestLogsWithoutSessions(t *testing.T) {
	env := setupCLITestEnv(t, http.StatusOK, testsupport.SampleCatalog)

	out, _, err := runCLI(t, []string{"logs"}, env.configPath)
	if err != nil {
		t.Fatalf("logs: %v", err)
	}
	requireContains(t, out, "No log entries available")
}

func TestLogsShowsFailedLoad(t *testing.T) {
	env := setupCLITestEnv(t, http.StatusInternalServerError, "boom")

	if _, _, err := runCLI(t, []string{"list"}, env.configPath); err == nil {
		t.Fatal("expected list to fail")
	}
	out, _, err := runCLI(t, []string{"logs", "-n", "20"}, env.configPath)
	if err != nil {
		t.Fatalf("logs: %v", err)
	}
	requireContains(t, out, "catalog load failed")
}

func TestStaleSessionLogsArePruned(t *testing.T) {
	env := setupCLITestEnv(t, http.StatusOK, testsupport.SampleCatalog)
	if err := os.MkdirAll(env.cfg.Logging.Dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	stale := filepath.Join(env.cfg.Logging.Dir, "artgallery-20000101.log")
	if err := os.WriteFile(stale, []byte("old\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	past := time.Now().AddDate(-1, 0, 0)
	if err := os.Chtimes(stale, past, past); err != nil {
		t.Fatalf("chtimes: %v", err)
	}

	if _, _, err := runCLI(t, []string{"list"}, env.configPath); err != nil {
		t.Fatalf("list: %v", err)
	}
	if _, err := os.Stat(stale); !os.IsNotExist(err) {
		t.Fatalf("expected stale session log removed, stat err=%v", err)
	}
}
