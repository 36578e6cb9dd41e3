package passes

import (
	"testing"

	"github.com/fcapolini/goodscript-sub002/internal/config"
	"github.com/fcapolini/goodscript-sub002/internal/ir"
	"github.com/fcapolini/goodscript-sub002/internal/types"
)

func TestNormalizeUnionsCollapsesNullableReferenceInGCMode(t *testing.T) {
	classT := &types.Class{Name: "Widget", Own: types.Value}
	union := &types.Union{Types: []types.Type{classT, types.TVoid}}
	fn := &ir.FuncDecl{
		Name:       "make",
		ReturnType: union,
		Body:       []ir.Stmt{&ir.Return{Value: &ir.Identifier{Name: "w", Typ: union}}},
	}
	prog := &ir.Program{Modules: []*ir.Module{{Path: "m", Decls: []ir.Decl{fn}}}}

	NormalizeUnions(prog, config.GC)

	if !fn.ReturnType.Equals(classT) {
		t.Fatalf("expected return type collapsed to Widget, got %s", fn.ReturnType)
	}
	ret := fn.Body[0].(*ir.Return)
	if !ret.Value.Type().Equals(classT) {
		t.Fatalf("expected identifier type collapsed to Widget, got %s", ret.Value.Type())
	}
}

func TestNormalizeUnionsIsIdempotent(t *testing.T) {
	classT := &types.Class{Name: "Widget", Own: types.Share}
	union := &types.Union{Types: []types.Type{classT, types.TVoid}}
	fn := &ir.FuncDecl{Name: "make", ReturnType: union}
	prog := &ir.Program{Modules: []*ir.Module{{Path: "m", Decls: []ir.Decl{fn}}}}

	NormalizeUnions(prog, config.Ownership)
	first := fn.ReturnType

	NormalizeUnions(prog, config.Ownership)
	second := fn.ReturnType

	if !first.Equals(second) {
		t.Fatalf("expected idempotent normalization, got %s then %s", first, second)
	}
	if _, ok := second.(*types.Nullable); !ok {
		t.Fatalf("expected ownership mode to preserve an explicit Nullable, got %s", second)
	}
}
