package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsGCMode(t *testing.T) {
	cfg := Default()
	if cfg.Mode != GC {
		t.Fatalf("expected default mode %q, got %q", GC, cfg.Mode)
	}
}

func TestLoadFileMissingReturnsDefault(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Mode != GC || cfg.OutDir != "." {
		t.Fatalf("expected default config, got %+v", cfg)
	}
}

func TestLoadFileParsesYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "goodscript.yaml")
	if err := os.WriteFile(path, []byte("mode: ownership\noutDir: build\n"), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Mode != Ownership || cfg.OutDir != "build" {
		t.Fatalf("expected mode=ownership outDir=build, got %+v", cfg)
	}
}

func TestMergeFlagsOverrideFile(t *testing.T) {
	cfg := Default()
	if err := cfg.Merge(Flags{Mode: "ownership", OutDir: "out"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Mode != Ownership || cfg.OutDir != "out" {
		t.Fatalf("expected flags to override defaults, got %+v", cfg)
	}
}

func TestMergeRejectsInvalidMode(t *testing.T) {
	cfg := Default()
	if err := cfg.Merge(Flags{Mode: "bogus"}); err == nil {
		t.Fatalf("expected an error for an invalid memory mode")
	}
}
