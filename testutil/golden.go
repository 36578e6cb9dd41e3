// Package testutil provides fixture-loading and golden-comparison
// helpers shared by this module's package-level tests.
package testutil

import "os"

// UpdateGoldens controls whether golden-file helpers (AssertCppGolden)
// write the actual output back to disk instead of comparing against it.
// Set via environment variable: UPDATE_GOLDENS=true go test ./...
var UpdateGoldens = os.Getenv("UPDATE_GOLDENS") == "true"
