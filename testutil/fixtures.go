package testutil

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/fcapolini/goodscript-sub002/internal/ast"
	"github.com/fcapolini/goodscript-sub002/internal/astjson"
)

// runIDLine matches the "// goodscript: run <uuid>" comment the
// generator stamps as the first line of every emitted file (see
// internal/codegen). The run identifier is fresh on every compile, so
// golden comparisons strip it before comparing rather than pinning a
// fake one into testdata.
var runIDLine = regexp.MustCompile(`(?m)^// goodscript: run .*\n`)

// LoadTypedASTFixture reads a JSON typed-AST fixture from
// testdata/fixtures/<name>.json (relative to the test's working
// directory) and decodes it with internal/astjson, the same decode
// path the driver's compile subcommand uses on real input.
func LoadTypedASTFixture(t *testing.T, name string) *ast.Program {
	t.Helper()

	path := filepath.Join("testdata", "fixtures", name+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read typed-AST fixture %s: %v", path, err)
	}
	prog, err := astjson.DecodeProgram(data)
	if err != nil {
		t.Fatalf("failed to decode typed-AST fixture %s: %v", path, err)
	}
	return prog
}

// AssertCppGolden compares generated C++ source text against a golden
// file at testdata/golden/<name> (relative to the test's working
// directory), byte for byte, since the thing under test is rendered
// C++ source, not a JSON-serializable value. UPDATE_GOLDENS=true
// rewrites the file instead of comparing against it.
func AssertCppGolden(t *testing.T, name, actual string) {
	t.Helper()

	actual = runIDLine.ReplaceAllString(actual, "")
	goldenPath := filepath.Join("testdata", "golden", name)

	if UpdateGoldens {
		if err := os.MkdirAll(filepath.Dir(goldenPath), 0755); err != nil {
			t.Fatalf("failed to create golden directory: %v", err)
		}
		if err := os.WriteFile(goldenPath, []byte(actual), 0644); err != nil {
			t.Fatalf("failed to write golden file: %v", err)
		}
		t.Logf("Updated golden file: %s", goldenPath)
		return
	}

	expected, err := os.ReadFile(goldenPath)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("golden file does not exist: %s\nRun with UPDATE_GOLDENS=true to create", goldenPath)
		}
		t.Fatalf("failed to read golden file: %v", err)
	}
	if string(expected) != actual {
		t.Errorf("C++ golden mismatch for %s\nExpected:\n%s\nActual:\n%s", goldenPath, expected, actual)
	}
}
