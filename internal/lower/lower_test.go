package lower

import (
	"testing"

	"github.com/fcapolini/goodscript-sub002/internal/ast"
	"github.com/fcapolini/goodscript-sub002/internal/config"
	"github.com/fcapolini/goodscript-sub002/internal/ir"
	"github.com/fcapolini/goodscript-sub002/internal/types"
)

func pos() ast.Pos { return ast.Pos{File: "t.ts", Line: 1, Column: 1} }

func TestIntegerLiteralNarrows(t *testing.T) {
	l := New(config.GC)
	lit := &ast.Literal{Kind: ast.FloatLit, Value: 3.0, Typ: types.TInteger, Pos: pos()}
	out := l.lowerExpr(lit)
	got, ok := out.(*ir.Literal)
	if !ok || got.Kind != ir.IntLit {
		t.Fatalf("expected a narrowed IntLit, got %#v", out)
	}
	if l.diag.HasErrors() {
		t.Fatalf("expected no diagnostics, got %v", l.diag.Reports())
	}
}

func TestNonIntegralLiteralNarrowingFails(t *testing.T) {
	l := New(config.GC)
	lit := &ast.Literal{Kind: ast.FloatLit, Value: 3.5, Typ: types.TInteger, Pos: pos()}
	l.lowerExpr(lit)
	if !l.diag.HasErrors() {
		t.Fatalf("expected a diagnostic for a non-integral integer literal")
	}
}

func TestArithmeticPromotesMixedIntegerAndNumber(t *testing.T) {
	l := New(config.GC)
	bin := &ast.BinaryExpr{
		Op:    "+",
		Left:  &ast.Literal{Kind: ast.FloatLit, Value: 1.0, Typ: types.TInteger, Pos: pos()},
		Right: &ast.Literal{Kind: ast.FloatLit, Value: 2.5, Typ: types.TNumber, Pos: pos()},
		Pos:   pos(),
	}
	out := l.lowerExpr(bin).(*ir.Binary)
	if !out.Typ.Equals(types.TNumber) {
		t.Fatalf("expected promoted type number, got %s", out.Typ)
	}
}

func TestOptionalChainingLowersToConditional(t *testing.T) {
	l := New(config.GC)
	classT := &types.Class{Name: "Widget", Own: types.Value}
	member := &ast.MemberExpr{
		Object:   &ast.Identifier{Name: "w", Typ: classT, Pos: pos()},
		Name:     "label",
		Optional: true,
		Typ:      types.TString,
		Pos:      pos(),
	}
	out := l.lowerExpr(member)
	if _, ok := out.(*ir.Conditional); !ok {
		t.Fatalf("expected optional chaining to lower to a Conditional, got %#v", out)
	}
}

func TestUnionNormalizationCollapsesNullableInGCMode(t *testing.T) {
	l := New(config.GC)
	classT := &types.Class{Name: "Widget", Own: types.Value}
	union := &types.Union{Types: []types.Type{classT, types.TVoid}}
	got := l.normalizeType(union)
	if !got.Equals(classT) {
		t.Fatalf("expected gc mode to collapse T|null to T, got %s", got)
	}
}

func TestUnionNormalizationPreservesNullableInOwnershipMode(t *testing.T) {
	l := New(config.Ownership)
	classT := &types.Class{Name: "Widget", Own: types.Share}
	union := &types.Union{Types: []types.Type{classT, types.TVoid}}
	got := l.normalizeType(union)
	if _, ok := got.(*types.Nullable); !ok {
		t.Fatalf("expected ownership mode to preserve an explicit Nullable, got %s", got)
	}
}

func TestLambdaCapturesOuterVariable(t *testing.T) {
	l := New(config.GC)
	l.pushScope([]string{"outer"})
	lambda := &ast.LambdaExpr{
		Params: []*ast.Param{{Name: "x", Type: types.TNumber}},
		Body: []ast.Stmt{
			&ast.ReturnStmt{
				Value: &ast.BinaryExpr{
					Op:    "+",
					Left:  &ast.Identifier{Name: "x", Typ: types.TNumber, Pos: pos()},
					Right: &ast.Identifier{Name: "outer", Typ: types.TNumber, Pos: pos()},
					Typ:   types.TNumber,
					Pos:   pos(),
				},
				Pos: pos(),
			},
		},
		Typ: &types.Function{Params: []types.Type{types.TNumber}, Return: types.TNumber},
		Pos: pos(),
	}
	out := l.lowerExpr(lambda).(*ir.Lambda)
	if len(out.Captures) != 1 || out.Captures[0] != "outer" {
		t.Fatalf("expected captures=[outer], got %v", out.Captures)
	}
}

func TestAwaitOutsideAsyncFunctionReported(t *testing.T) {
	l := New(config.GC)
	await := &ast.AwaitExpr{Promise: &ast.Identifier{Name: "p", Typ: types.TVoid, Pos: pos()}, Typ: types.TVoid, Pos: pos()}
	l.lowerExpr(await)
	if !l.diag.HasErrors() {
		t.Fatalf("expected LOW005 diagnostic for await outside async function")
	}
}
