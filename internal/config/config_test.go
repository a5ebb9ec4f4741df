package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
	if cfg.Timeout() != 0 {
		t.Fatalf("expected no default timeout, got %v", cfg.Timeout())
	}
}

func TestLoadFromPath_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.LogLevel != "warn" {
		t.Fatalf("expected default log_level warn, got %q", cfg.LogLevel)
	}
}

func TestLoadFromPath_ReadsFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := "tool_path: /usr/local/bin/wmctrl\ntimeout_ms: 2500\nlog_level: debug\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ToolPath != "/usr/local/bin/wmctrl" {
		t.Fatalf("tool_path = %q", cfg.ToolPath)
	}
	if cfg.Timeout() != 2500*time.Millisecond {
		t.Fatalf("timeout = %v", cfg.Timeout())
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("log_level = %q", cfg.LogLevel)
	}
}

func TestLoadFromPath_RejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"negative timeout", "timeout_ms: -1\n"},
		{"unknown log level", "log_level: chatty\n"},
		{"not yaml", "{{{\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.body), 0644); err != nil {
				t.Fatalf("write: %v", err)
			}
			if _, err := LoadFromPath(path); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}
