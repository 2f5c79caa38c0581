package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Source.Extension != ".zig" {
		t.Errorf("Extension = %q, want .zig", cfg.Source.Extension)
	}
	if !cfg.ColorEnabled() {
		t.Error("color should default to enabled")
	}
	if cfg.Log.Level != "warn" || cfg.Verbose() {
		t.Errorf("Level = %q, Verbose = %v", cfg.Log.Level, cfg.Verbose())
	}
	if cfg.Repl.Prompt != ">> " {
		t.Errorf("Prompt = %q", cfg.Repl.Prompt)
	}
}

func TestParse(t *testing.T) {
	cfg, err := Parse(`
[source]
extension = ".ml"

[output]
color = false

[log]
level = "DEBUG"
`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Source.Extension != ".ml" {
		t.Errorf("Extension = %q", cfg.Source.Extension)
	}
	if cfg.ColorEnabled() {
		t.Error("color = false was not honoured")
	}
	if cfg.Log.Level != "debug" || !cfg.Verbose() {
		t.Errorf("Level = %q", cfg.Log.Level)
	}
	if cfg.Repl.Prompt != ">> " {
		t.Errorf("Prompt default not applied: %q", cfg.Repl.Prompt)
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
		msg  string
	}{
		{"extension without dot", "[source]\nextension = \"zig\"", "must start with '.'"},
		{"unknown level", "[log]\nlevel = \"loud\"", "log.level"},
		{"bad toml", "[source\nextension = 1", "failed to parse config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.data)
			if err == nil || !strings.Contains(err.Error(), tt.msg) {
				t.Errorf("expected error containing %q, got %v", tt.msg, err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "minilang.toml")
	if err := os.WriteFile(path, []byte("[repl]\nprompt = \"ml> \"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Repl.Prompt != "ml> " {
		t.Errorf("Prompt = %q", cfg.Repl.Prompt)
	}

	if _, err := Load(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadFromEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.toml")
	if err := os.WriteFile(path, []byte("[source]\nextension = \".mini\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvVar, path)
	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv: %v", err)
	}
	if cfg.Source.Extension != ".mini" {
		t.Errorf("Extension = %q", cfg.Source.Extension)
	}
}
