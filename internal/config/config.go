// Package config loads the compiler's configuration surface: the two
// knobs the core itself cares about (memory mode, output directory)
// plus the ambient knobs every CLI in the corpus carries (verbosity,
// color, a deterministic seed for golden-output tests). Settings load
// from an optional goodscript.yaml merged with command-line flags, the
// flags taking precedence.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/fcapolini/goodscript-sub002/internal/schema"
)

// MemoryMode selects which runtime idiom the generator targets.
type MemoryMode string

const (
	GC        MemoryMode = "gc"
	Ownership MemoryMode = "ownership"
)

// Valid reports whether m is one of the two modes the generator
// supports (spec §5, §6).
func (m MemoryMode) Valid() bool { return m == GC || m == Ownership }

// Config is the merged configuration for one compiler invocation.
type Config struct {
	Schema string `yaml:"schema"`

	// Mode and OutDir are the core's only two knobs (spec §6).
	Mode   MemoryMode `yaml:"mode"`
	OutDir string     `yaml:"outDir"`

	// Verbose, Color and Seed are ambient CLI knobs, not core
	// semantics, and never affect how the generator emits code. Verbose
	// makes the driver print per-phase timings; Color and Seed are
	// loaded and merged but nothing else in this module reads them.
	Verbose bool   `yaml:"verbose"`
	Color   bool   `yaml:"color"`
	Seed    string `yaml:"seed,omitempty"`
}

// Default returns the zero-configuration baseline: gc mode, current
// directory output, color on, quiet.
func Default() *Config {
	return &Config{
		Schema: schema.ConfigV1,
		Mode:   GC,
		OutDir: ".",
		Color:  true,
	}
}

// LoadFile reads a goodscript.yaml file at path, if it exists. A
// missing file is not an error — it returns the default config
// unchanged.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	cfg.Schema = schema.ConfigV1
	return cfg, nil
}

// Flags is the subset of Config a CLI invocation may override; zero
// values mean "not set on the command line".
type Flags struct {
	Mode    string
	OutDir  string
	Verbose bool
	Color   *bool
	Seed    string
}

// Merge overlays non-zero flag values onto cfg, flags taking
// precedence over any file-loaded setting (spec SPEC_FULL.md §1.2).
func (cfg *Config) Merge(f Flags) error {
	if f.Mode != "" {
		mode := MemoryMode(f.Mode)
		if !mode.Valid() {
			return fmt.Errorf("invalid memory mode %q: want %q or %q", f.Mode, GC, Ownership)
		}
		cfg.Mode = mode
	}
	if f.OutDir != "" {
		cfg.OutDir = f.OutDir
	}
	if f.Verbose {
		cfg.Verbose = true
	}
	if f.Color != nil {
		cfg.Color = *f.Color
	}
	if f.Seed != "" {
		cfg.Seed = f.Seed
	}
	if !cfg.Mode.Valid() {
		return fmt.Errorf("invalid memory mode %q: want %q or %q", cfg.Mode, GC, Ownership)
	}
	return nil
}
