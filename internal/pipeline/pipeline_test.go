package pipeline

import (
	"strings"
	"testing"

	"github.com/fcapolini/goodscript-sub002/internal/ast"
	"github.com/fcapolini/goodscript-sub002/internal/config"
	"github.com/fcapolini/goodscript-sub002/internal/types"
)

func p() ast.Pos { return ast.Pos{File: "add.ts", Line: 1, Column: 1} }

func addModuleProgram() *ast.Program {
	fn := &ast.FuncDecl{
		Name:       "add",
		Params:     []*ast.Param{{Name: "a", Type: types.TInteger}, {Name: "b", Type: types.TInteger}},
		ReturnType: types.TInteger,
		Body: []ast.Stmt{
			&ast.ReturnStmt{Pos: p(), Value: &ast.BinaryExpr{
				Pos: p(), Op: "+",
				Left:  &ast.Identifier{Pos: p(), Name: "a", Typ: types.TInteger},
				Right: &ast.Identifier{Pos: p(), Name: "b", Typ: types.TInteger},
				Typ:   types.TInteger,
			}},
		},
		Pos: p(),
	}
	return &ast.Program{Modules: []*ast.Module{
		{Path: "add.ts", Decls: []ast.Decl{fn}},
	}}
}

func TestCompileProducesCppFilesWithNoDiagnostics(t *testing.T) {
	result := Compile(addModuleProgram(), config.GC)
	if result.HasErrors() {
		t.Fatalf("expected a clean compile, got diagnostics: %v", result.Diagnostics.Reports())
	}
	if len(result.Files) != 2 {
		t.Fatalf("expected one header/source pair, got %d files", len(result.Files))
	}
	if !strings.Contains(result.Files[1].Source, "add") {
		t.Fatalf("expected the add function in generated source, got:\n%s", result.Files[1].Source)
	}
	for _, phase := range []string{"lower", "hoist", "normalize", "codegen"} {
		if _, ok := result.PhaseTimings[phase]; !ok {
			t.Fatalf("expected a timing entry for phase %q", phase)
		}
	}
}

func TestCompileRunsBothMemoryModesOverSameProgram(t *testing.T) {
	prog := addModuleProgram()
	gcResult := Compile(prog, config.GC)
	ownResult := Compile(prog, config.Ownership)
	if gcResult.HasErrors() || ownResult.HasErrors() {
		t.Fatalf("expected both modes to compile cleanly")
	}
	if len(gcResult.Files) != len(ownResult.Files) {
		t.Fatalf("expected both modes to emit the same file set shape")
	}
}
