// Package pipeline provides the single orchestration entry point for
// the compiler: lower the typed AST to IR, run the IR-level passes,
// then generate C++ output — collecting diagnostics from every phase
// rather than aborting at the first one that reports something (spec
// §4.3's "collect, don't abort" lowering contract extended to the
// whole run).
package pipeline

import (
	"time"

	"github.com/fcapolini/goodscript-sub002/internal/ast"
	"github.com/fcapolini/goodscript-sub002/internal/codegen"
	"github.com/fcapolini/goodscript-sub002/internal/config"
	"github.com/fcapolini/goodscript-sub002/internal/diagnostics"
	"github.com/fcapolini/goodscript-sub002/internal/ir"
	"github.com/fcapolini/goodscript-sub002/internal/lower"
	"github.com/fcapolini/goodscript-sub002/internal/passes"
)

// Result carries everything one compilation run produced: the emitted
// files, every diagnostic collected across all phases, per-phase
// timings for the driver's --verbose output, and the run's IR program
// (kept for callers that want to dump intermediate representations).
type Result struct {
	Files        []codegen.File
	Diagnostics  *diagnostics.Collector
	PhaseTimings map[string]int64
	Program      *ir.Program
}

// HasErrors reports whether any phase collected a diagnostic.
func (r Result) HasErrors() bool { return r.Diagnostics.HasErrors() }

// Compile runs the full lower -> hoist -> normalize -> generate
// pipeline over a typed AST program for the given memory mode.
func Compile(prog *ast.Program, mode config.MemoryMode) Result {
	result := Result{
		Diagnostics:  diagnostics.NewCollector(),
		PhaseTimings: make(map[string]int64),
	}

	start := time.Now()
	irProg, lowerDiag := lower.LowerProgram(prog, mode)
	result.PhaseTimings["lower"] = time.Since(start).Milliseconds()
	mergeInto(result.Diagnostics, lowerDiag)
	result.Program = irProg

	start = time.Now()
	passes.HoistNestedFunctions(irProg)
	result.PhaseTimings["hoist"] = time.Since(start).Milliseconds()

	start = time.Now()
	passes.NormalizeUnions(irProg, mode)
	result.PhaseTimings["normalize"] = time.Since(start).Milliseconds()

	start = time.Now()
	files, genDiag := codegen.Generate(irProg, mode)
	result.PhaseTimings["codegen"] = time.Since(start).Milliseconds()
	mergeInto(result.Diagnostics, genDiag)
	result.Files = files

	return result
}

func mergeInto(dst, src *diagnostics.Collector) {
	if src == nil {
		return
	}
	for _, r := range src.Reports() {
		dst.AddReport(r)
	}
}
