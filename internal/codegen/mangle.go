package codegen

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// asciiFold strips GoodScript source identifiers down to characters
// C++ is guaranteed to accept. The surface language allows any Unicode
// identifier (spec §3 "Identifiers"), but C++ compilers vary in their
// support for Unicode identifier characters, so names are folded to
// their closest ASCII spelling: NFD-normalize, drop combining marks
// (so "café" becomes "cafe" rather than a rune C++ may reject), then
// replace anything still outside [A-Za-z0-9_] with an underscore.
var asciiFold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func sanitizeSurfaceName(name string) string {
	folded, _, err := transform.String(asciiFold, name)
	if err != nil {
		folded = name
	}
	var b strings.Builder
	for _, r := range folded {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}

// mangleIdent renders a stable, deterministic C++ identifier for a
// surface name (spec §4.5 "Determinism: … names are mangled using a
// stable scheme"). Version zero is the common case and renders
// unchanged apart from ASCII folding; a nonzero SSA version (reserved
// for compiler-synthesized temporaries; internal/lower stamps plain
// identifier references with version zero) gets a suffix so two
// versions of the same surface name can never collide.
func mangleIdent(name string, version int) string {
	clean := sanitizeSurfaceName(name)
	if version == 0 {
		return clean
	}
	return fmt.Sprintf("%s_v%d", clean, version)
}
