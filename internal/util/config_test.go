package util

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "newt.toml")
	content := `
prompt = "~> "
log_level = "debug"
log_file = "/tmp/newt.log"
root_path = "/srv/scripts"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := &Configuration{Prompt: ">> ", LogLevel: "info"}
	if err := LoadConfigFile(cfg, path, true); err != nil {
		t.Fatalf("LoadConfigFile failed: %v", err)
	}

	if cfg.Prompt != "~> " {
		t.Errorf("prompt wrong. got=%q", cfg.Prompt)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("log level wrong. got=%q", cfg.LogLevel)
	}
	if cfg.LogFile != "/tmp/newt.log" {
		t.Errorf("log file wrong. got=%q", cfg.LogFile)
	}
	if cfg.RootPath != "/srv/scripts" {
		t.Errorf("root path wrong. got=%q", cfg.RootPath)
	}
}

func TestLoadConfigFilePartialOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "newt.toml")
	if err := os.WriteFile(path, []byte(`log_level = "warn"`), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := &Configuration{Prompt: ">> ", LogLevel: "info"}
	if err := LoadConfigFile(cfg, path, true); err != nil {
		t.Fatalf("LoadConfigFile failed: %v", err)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("log level wrong. got=%q", cfg.LogLevel)
	}
	if cfg.Prompt != ">> " {
		t.Errorf("unset keys must keep their defaults. got=%q", cfg.Prompt)
	}
}

func TestLoadConfigFileMissing(t *testing.T) {
	cfg := &Configuration{}
	if err := LoadConfigFile(cfg, "/nonexistent/newt.toml", false); err != nil {
		t.Errorf("missing implicit config should not error: %v", err)
	}
	if err := LoadConfigFile(cfg, "/nonexistent/newt.toml", true); err == nil {
		t.Error("missing explicit config should error")
	}
}

func TestGetLineAndColumn(t *testing.T) {
	src := "let x = 1\nlet y = 2\n"

	tests := []struct {
		pos, line, col int
	}{
		{0, 1, 1},
		{4, 1, 5},
		{10, 2, 1},
		{14, 2, 5},
	}

	for _, tt := range tests {
		line, col := GetLineAndColumn(src, tt.pos)
		if line != tt.line || col != tt.col {
			t.Errorf("pos %d: expected %d:%d, got %d:%d", tt.pos, tt.line, tt.col, line, col)
		}
	}
}
