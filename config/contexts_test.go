package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadOrCreateCatalog_WritesDefaultsOnFirstRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contexts.toml")

	catalog, err := LoadOrCreateCatalog(path)
	if err != nil {
		t.Fatalf("LoadOrCreateCatalog failed: %v", err)
	}
	if len(catalog.Contexts) != 5 {
		t.Errorf("default catalog has %d contexts, want 5", len(catalog.Contexts))
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("defaults were not written to disk: %v", err)
	}

	// Second load reads the written file.
	again, err := LoadOrCreateCatalog(path)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if len(again.Contexts) != len(catalog.Contexts) {
		t.Errorf("reload returned %d contexts, want %d", len(again.Contexts), len(catalog.Contexts))
	}
}

func TestLoadOrCreateCatalog_ReadsCustomFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "contexts.toml")
	custom := `
[[contexts]]
id = "writing"
name = "Writing"
icon = "✍️"
color = "#111111"

[[contexts]]
id = "idle"
name = "Idle"
icon = "💤"
color = "#222222"
time_only = true
`
	if err := os.WriteFile(path, []byte(custom), 0o644); err != nil {
		t.Fatal(err)
	}

	catalog, err := LoadOrCreateCatalog(path)
	if err != nil {
		t.Fatalf("LoadOrCreateCatalog failed: %v", err)
	}
	if len(catalog.Contexts) != 2 {
		t.Fatalf("got %d contexts, want 2", len(catalog.Contexts))
	}

	ctx, ok := catalog.ByID("writing")
	if !ok || ctx.Name != "Writing" {
		t.Errorf("ByID(writing) = %+v, %v", ctx, ok)
	}
	if _, ok := catalog.ByID("missing"); ok {
		t.Error("ByID should miss for unknown ids")
	}

	tasks := catalog.TaskContexts()
	if len(tasks) != 1 || tasks[0].ID != "writing" {
		t.Errorf("TaskContexts should exclude time-only entries: %+v", tasks)
	}
}

func TestGetDuration(t *testing.T) {
	t.Setenv("TEST_INTERVAL", "5m")
	if got := getDuration("TEST_INTERVAL", 0); got.Minutes() != 5 {
		t.Errorf("getDuration = %v, want 5m", got)
	}

	t.Setenv("TEST_INTERVAL", "not-a-duration")
	if got := getDuration("TEST_INTERVAL", 42); got != 42 {
		t.Errorf("invalid duration should fall back to the default, got %v", got)
	}
}
