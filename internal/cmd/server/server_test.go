package server

import (
	"flag"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Port != 8080 {
		t.Fatalf("expected default port 8080, got %d", cfg.Port)
	}
}

func TestParseConfigOverrides(t *testing.T) {
	t.Setenv("DICER_SERVER_PORT", "9001")

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Port != 9001 {
		t.Fatalf("expected env port 9001, got %d", cfg.Port)
	}

	fs = flag.NewFlagSet("server", flag.ContinueOnError)
	cfg, err = ParseConfig(fs, []string{"-port", "9002"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Port != 9002 {
		t.Fatalf("expected flag port 9002, got %d", cfg.Port)
	}
}

func TestParseConfigInvalidEnv(t *testing.T) {
	t.Setenv("DICER_SERVER_PORT", "not-a-port")

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	if _, err := ParseConfig(fs, nil); err == nil {
		t.Fatal("expected error for invalid port")
	}
}
