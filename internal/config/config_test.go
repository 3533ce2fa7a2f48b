package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.HistoryLimit != 100 {
		t.Errorf("HistoryLimit = %d, want 100", cfg.HistoryLimit)
	}
	if cfg.WatchPollInterval() != 500*time.Millisecond {
		t.Errorf("WatchPollInterval = %v, want 500ms", cfg.WatchPollInterval())
	}
	if cfg.ClipboardTimeout() != 5*time.Second {
		t.Errorf("ClipboardTimeout = %v, want 5s", cfg.ClipboardTimeout())
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.HistoryLimit != 100 {
		t.Errorf("HistoryLimit = %d, want default 100", cfg.HistoryLimit)
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	content := `{"history_limit": 250, "watch_poll_ms": 1000, "disabled_tools": ["clip_clear"]}`
	if err := os.WriteFile(filepath.Join(tmpDir, "config.json"), []byte(content), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(tmpDir)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.HistoryLimit != 250 {
		t.Errorf("HistoryLimit = %d, want 250", cfg.HistoryLimit)
	}
	if cfg.WatchPollMS != 1000 {
		t.Errorf("WatchPollMS = %d, want 1000", cfg.WatchPollMS)
	}
	// Unset scalar falls back to default
	if cfg.ClipboardTimeoutSecs != 5 {
		t.Errorf("ClipboardTimeoutSecs = %d, want default 5", cfg.ClipboardTimeoutSecs)
	}
	if len(cfg.DisabledTools) != 1 || cfg.DisabledTools[0] != "clip_clear" {
		t.Errorf("DisabledTools = %v, want [clip_clear]", cfg.DisabledTools)
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(tmpDir, "config.json"), []byte("{not json"), 0600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(tmpDir); err == nil {
		t.Error("Load() should fail on invalid JSON")
	}
}

func TestMerge(t *testing.T) {
	base := DefaultConfig()
	base.DisabledTools = []string{"clip_clear"}

	overlay := &Config{
		HistoryLimit:  50,
		DisabledTools: []string{"clip_clear", " clip_import "},
	}

	merged := Merge(base, overlay)
	if merged.HistoryLimit != 50 {
		t.Errorf("HistoryLimit = %d, want 50", merged.HistoryLimit)
	}
	if merged.WatchPollMS != 500 {
		t.Errorf("WatchPollMS = %d, want base 500", merged.WatchPollMS)
	}
	if len(merged.DisabledTools) != 2 {
		t.Errorf("DisabledTools = %v, want deduplicated pair", merged.DisabledTools)
	}
}
