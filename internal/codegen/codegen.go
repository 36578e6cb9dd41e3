// Package codegen implements the two-mode C++ generator (spec §4.5) and
// async-to-coroutine lowering (spec §4.6). It takes an IR program and a
// memory mode and returns the ordered set of output files the driver
// writes to disk.
//
// The shape is grounded on three corpus examples rather than the
// teacher directly, since the teacher compiler never emits C++: the
// `fidlgen_cpp` IR's declaration/definition split by kind, the `funxy`
// VM compiler's pattern of walking a typed IR with an explicit mode
// parameter and building text with a `strings.Builder`, and the
// standalone TypeScript generator's header/body separation.
package codegen

import (
	"fmt"
	"strings"

	"github.com/fcapolini/goodscript-sub002/internal/config"
	"github.com/fcapolini/goodscript-sub002/internal/diagnostics"
	"github.com/fcapolini/goodscript-sub002/internal/ir"
)

// File is one emitted output: a path and its full source text.
type File struct {
	Path   string
	Source string
}

// Generator holds the state threaded through one program emission: the
// target memory mode, the run identifier stamped into emitted file
// headers, and the diagnostics collector generation errors are reported
// to (spec §7 category 3, "generation failures").
type Generator struct {
	mode    config.MemoryMode
	runID   string
	diag    *diagnostics.Collector
	inAsync bool
}

// Generate emits header/source pairs for every module in prog, in IR
// order (spec §4.5 "Determinism: declaration order follows IR order").
func Generate(prog *ir.Program, mode config.MemoryMode) ([]File, *diagnostics.Collector) {
	g := &Generator{mode: mode, runID: prog.RunID, diag: diagnostics.NewCollector()}
	var out []File
	for _, m := range prog.Modules {
		hpp, cpp := g.generateModule(m)
		stem := strings.TrimSuffix(m.Path, ".ts")
		out = append(out, File{Path: stem + ".hpp", Source: hpp})
		out = append(out, File{Path: stem + ".cpp", Source: cpp})
	}
	return out, g.diag
}

func (g *Generator) generateModule(m *ir.Module) (string, string) {
	guard := headerGuard(m.Path)
	hasAsync := moduleHasAsync(m)

	var h strings.Builder
	fmt.Fprintf(&h, "// goodscript: run %s\n", g.runID)
	fmt.Fprintf(&h, "#ifndef %s\n#define %s\n\n", guard, guard)
	h.WriteString("#include \"gs/runtime.hpp\"\n")
	if hasAsync {
		h.WriteString("#include <cppcoro/task.hpp>\n")
	}
	h.WriteString("\n")

	var c strings.Builder
	fmt.Fprintf(&c, "// goodscript: run %s\n", g.runID)
	fmt.Fprintf(&c, "#include \"%s.hpp\"\n\n", strings.TrimSuffix(m.Path, ".ts"))

	for _, decl := range m.Decls {
		g.emitDecl(decl, &h, &c)
	}

	h.WriteString("\n#endif\n")
	return h.String(), c.String()
}

func moduleHasAsync(m *ir.Module) bool {
	for _, d := range m.Decls {
		if hasAsyncFunc(d) {
			return true
		}
	}
	return false
}

func hasAsyncFunc(d ir.Decl) bool {
	switch v := d.(type) {
	case *ir.FuncDecl:
		return v.Async
	case *ir.ClassDecl:
		if v.Constructor != nil && v.Constructor.Async {
			return true
		}
		for _, m := range v.Methods {
			if m.Async {
				return true
			}
		}
	}
	return false
}

func headerGuard(path string) string {
	var b strings.Builder
	for _, r := range path {
		switch {
		case r >= 'a' && r <= 'z':
			b.WriteRune(r - 32)
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	b.WriteString("_GENERATED")
	return b.String()
}
