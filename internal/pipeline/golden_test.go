package pipeline

import (
	"testing"

	"github.com/fcapolini/goodscript-sub002/internal/config"
	"github.com/fcapolini/goodscript-sub002/testutil"
)

// TestCompileMatchesGoldenCppOutput decodes a fixture typed-AST JSON
// file the same way the driver's compile subcommand does, runs it
// through the full pipeline, and compares the generated C++ text
// against checked-in golden files byte for byte.
func TestCompileMatchesGoldenCppOutput(t *testing.T) {
	prog := testutil.LoadTypedASTFixture(t, "add")

	result := Compile(prog, config.GC)
	if result.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", result.Diagnostics.Reports())
	}
	if len(result.Files) != 2 {
		t.Fatalf("expected 2 files, got %d", len(result.Files))
	}

	byPath := make(map[string]string, len(result.Files))
	for _, f := range result.Files {
		byPath[f.Path] = f.Source
	}

	testutil.AssertCppGolden(t, "math.hpp", byPath["math.hpp"])
	testutil.AssertCppGolden(t, "math.cpp", byPath["math.cpp"])
}
