package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParse_Defaults(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	os.Unsetenv("LOG_LEVEL")
	t.Setenv("LOG_FORMAT", "")
	os.Unsetenv("LOG_FORMAT")
	t.Setenv("RPS_SEED", "")
	os.Unsetenv("RPS_SEED")

	cfg, err := Parse()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.LogLevel != "warn" || cfg.LogFormat != FormatConsole || cfg.Seed != 0 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestParse_FromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("RPS_SEED", "42")

	cfg, err := Parse()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := Config{LogLevel: "debug", LogFormat: FormatJSON, Seed: 42}
	if cfg != want {
		t.Fatalf("got %+v, want %+v", cfg, want)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name, key, value, want string
	}{
		{name: "bad seed", key: "RPS_SEED", value: "not-a-number", want: "parse env:"},
		{name: "negative seed", key: "RPS_SEED", value: "-1", want: "parse env:"},
		{name: "bad format", key: "LOG_FORMAT", value: "xml", want: "LOG_FORMAT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Parse()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected %q in error, got %v", tt.want, err)
			}
		})
	}
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("RPS_SEED=7\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)
	t.Setenv("RPS_SEED", "")
	os.Unsetenv("RPS_SEED")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Seed != 7 {
		t.Fatalf("expected seed 7 from .env, got %d", cfg.Seed)
	}
}
