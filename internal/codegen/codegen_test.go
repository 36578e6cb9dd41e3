package codegen

import (
	"strings"
	"testing"

	"github.com/fcapolini/goodscript-sub002/internal/ast"
	"github.com/fcapolini/goodscript-sub002/internal/config"
	"github.com/fcapolini/goodscript-sub002/internal/diagnostics"
	"github.com/fcapolini/goodscript-sub002/internal/ir"
	"github.com/fcapolini/goodscript-sub002/internal/types"
)

func pos() ast.Pos { return ast.Pos{File: "t.ts", Line: 1, Column: 1} }

func TestCppTypeReferenceDiffersByMode(t *testing.T) {
	classT := &types.Class{Name: "Widget", Own: types.Own}
	if got := cppType(classT, config.GC); got != "gs::gc::Ref<Widget>" {
		t.Fatalf("expected gc::Ref in gc mode, got %s", got)
	}
	if got := cppType(classT, config.Ownership); got != "std::unique_ptr<Widget>" {
		t.Fatalf("expected unique_ptr in ownership mode, got %s", got)
	}
}

func TestCppTypePrimitives(t *testing.T) {
	cases := map[*types.Primitive]string{
		types.TInteger:   "int32_t",
		types.TInteger53: "int64_t",
		types.TNumber:    "double",
		types.TString:    "gs::String",
		types.TBoolean:   "bool",
	}
	for prim, want := range cases {
		if got := cppType(prim, config.GC); got != want {
			t.Fatalf("expected %s, got %s for %s", want, got, prim)
		}
	}
}

func TestEmitBinaryStringEqualityRoutesToRuntime(t *testing.T) {
	b := ir.NewBuilder()
	bin := &ir.Binary{
		Node:  b.NewNode(pos()),
		Op:    "===",
		Left:  &ir.Literal{Node: b.NewNode(pos()), Kind: ir.StringLit, Value: "a", Typ: types.TString},
		Right: &ir.Literal{Node: b.NewNode(pos()), Kind: ir.StringLit, Value: "b", Typ: types.TString},
		Typ:   types.TBoolean,
	}
	g := &Generator{mode: config.GC, diag: diagnostics.NewCollector()}
	out := g.emitBinary(bin)
	if !strings.Contains(out, "gs::String::equals") {
		t.Fatalf("expected string equality routed to runtime, got %s", out)
	}
}

func TestEmitBinaryNumberEqualityUsesNativeCompare(t *testing.T) {
	b := ir.NewBuilder()
	bin := &ir.Binary{
		Node:  b.NewNode(pos()),
		Op:    "===",
		Left:  &ir.Literal{Node: b.NewNode(pos()), Kind: ir.IntLit, Value: 1.0, Typ: types.TInteger},
		Right: &ir.Literal{Node: b.NewNode(pos()), Kind: ir.IntLit, Value: 1.0, Typ: types.TInteger},
		Typ:   types.TBoolean,
	}
	g := &Generator{mode: config.GC, diag: diagnostics.NewCollector()}
	out := g.emitBinary(bin)
	if strings.Contains(out, "gs::String") || !strings.Contains(out, "==") {
		t.Fatalf("expected native == for numbers, got %s", out)
	}
}

func TestEmitTemplateLiteralFoldsWithToString(t *testing.T) {
	b := ir.NewBuilder()
	tpl := &ir.TemplateLiteral{
		Node:  b.NewNode(pos()),
		Parts: []string{"hello ", "!"},
		Exprs: []ir.Expr{&ir.Identifier{Node: b.NewNode(pos()), Name: "name", Typ: types.TString}},
		Typ:   types.TString,
	}
	g := &Generator{mode: config.GC, diag: diagnostics.NewCollector()}
	out := g.emitTemplateLiteral(tpl)
	if !strings.Contains(out, "gs::toString(name)") {
		t.Fatalf("expected template fold to stringify the interpolated expr, got %s", out)
	}
}

// TestEmitOptionalChainingEvaluatesReceiverOnce rebuilds the exact IR
// shape internal/lower's optional-chaining lowering produces (a
// Conditional guarding a Member that shares its Assignment temp by
// pointer identity with the condition) and checks the generator emits
// a single assignment rather than re-evaluating the receiver twice.
func TestEmitOptionalChainingEvaluatesReceiverOnce(t *testing.T) {
	b := ir.NewBuilder()
	classT := &types.Class{Name: "Widget", Own: types.Value}
	receiver := &ir.Identifier{Node: b.NewNode(pos()), Name: "w", Typ: classT}

	assignTemp := &ir.Assignment{
		Node:   b.NewNode(pos()),
		Target: b.Ident(pos(), "$opt1", classT),
		Value:  receiver,
		Op:     "=",
		Typ:    classT,
	}
	guardedMember := &ir.Member{Node: b.NewNode(pos()), Object: assignTemp, Name: "label", Typ: types.TString}
	isNull := &ir.Binary{
		Node:  b.NewNode(pos()),
		Op:    "===",
		Left:  assignTemp,
		Right: &ir.Literal{Node: b.NewNode(pos()), Kind: ir.NullLit, Typ: classT},
		Typ:   types.TBoolean,
	}
	undef := &ir.Literal{Node: b.NewNode(pos()), Kind: ir.UndefinedLit, Typ: types.TString}
	cond := &ir.Conditional{Node: b.NewNode(pos()), Cond: isNull, Then: undef, Else: guardedMember, Typ: types.TString}

	g := &Generator{mode: config.GC, diag: diagnostics.NewCollector()}
	out := g.emitConditional(cond)

	if strings.Count(out, "w") != 1 {
		t.Fatalf("expected the receiver evaluated exactly once, got: %s", out)
	}
	if !strings.Contains(out, "nullptr") {
		t.Fatalf("expected a null guard, got: %s", out)
	}
}

func TestFuncReturnTypeUsesCoroutineTaskForAsync(t *testing.T) {
	fn := &ir.FuncDecl{
		Name:       "fetch",
		Async:      true,
		ReturnType: &types.Promise{Inner: types.TString},
	}
	g := &Generator{mode: config.GC, diag: diagnostics.NewCollector()}
	got := g.funcReturnType(fn)
	if got != "cppcoro::task<gs::String>" {
		t.Fatalf("expected cppcoro::task<gs::String>, got %s", got)
	}
}

func TestGenerateProducesHeaderAndSourceStems(t *testing.T) {
	fn := &ir.FuncDecl{
		Name:       "add",
		Params:     []*ir.Param{{Name: "a", Type: types.TInteger}, {Name: "b", Type: types.TInteger}},
		ReturnType: types.TInteger,
		Body: []ir.Stmt{
			&ir.Return{Value: &ir.Binary{Op: "+", Left: &ir.Identifier{Name: "a", Typ: types.TInteger}, Right: &ir.Identifier{Name: "b", Typ: types.TInteger}, Typ: types.TInteger}},
		},
	}
	prog := &ir.Program{Modules: []*ir.Module{{Path: "math.ts", Decls: []ir.Decl{fn}}}}

	files, diag := Generate(prog, config.GC)
	if diag.HasErrors() {
		t.Fatalf("expected no diagnostics, got %v", diag.Reports())
	}
	if len(files) != 2 {
		t.Fatalf("expected header+source pair, got %d files", len(files))
	}
	if files[0].Path != "math.hpp" || files[1].Path != "math.cpp" {
		t.Fatalf("unexpected output paths: %s, %s", files[0].Path, files[1].Path)
	}
	if !strings.Contains(files[1].Source, "int32_t add(int32_t a, int32_t b)") {
		t.Fatalf("expected function definition in source, got:\n%s", files[1].Source)
	}
}
