package config

import (
	"os"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"CUBEMOVES_DB", "CUBEMOVES_SCRAMBLE_LENGTH", "CUBEMOVES_SEED"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ScrambleLength != 20 {
		t.Fatalf("expected default length 20, got %d", cfg.ScrambleLength)
	}
	if cfg.Seed != nil {
		t.Fatalf("expected no seed, got %d", *cfg.Seed)
	}
	if cfg.DBPath != "" {
		t.Fatalf("expected empty db path, got %q", cfg.DBPath)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("CUBEMOVES_DB", "/tmp/scrambles.db")
	t.Setenv("CUBEMOVES_SCRAMBLE_LENGTH", "25")
	t.Setenv("CUBEMOVES_SEED", "42")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DBPath != "/tmp/scrambles.db" {
		t.Fatalf("db path = %q", cfg.DBPath)
	}
	if cfg.ScrambleLength != 25 {
		t.Fatalf("length = %d, want 25", cfg.ScrambleLength)
	}
	if cfg.Seed == nil || *cfg.Seed != 42 {
		t.Fatalf("seed = %v, want 42", cfg.Seed)
	}
}

func TestLoadRejectsBadLength(t *testing.T) {
	t.Setenv("CUBEMOVES_SCRAMBLE_LENGTH", "not-an-int")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestLoadRejectsNegativeLength(t *testing.T) {
	t.Setenv("CUBEMOVES_SCRAMBLE_LENGTH", "-3")

	if _, err := Load(); err == nil {
		t.Fatal("expected error")
	}
}
