package sig

import (
	"testing"

	"github.com/fcapolini/goodscript-sub002/internal/ir"
	"github.com/fcapolini/goodscript-sub002/internal/types"
)

func method(name string, ret types.Type) *ir.Method {
	return &ir.Method{
		FuncDecl: &ir.FuncDecl{Name: name, ReturnType: ret},
		Access:   ir.Public,
	}
}

func TestStructuralEquivalenceIgnoresDeclarationOrder(t *testing.T) {
	e := New()
	a := &ir.ClassDecl{Name: "A", Methods: []*ir.Method{
		method("getX", types.TNumber),
		method("getY", types.TNumber),
	}}
	b := &ir.ClassDecl{Name: "B", Methods: []*ir.Method{
		method("getY", types.TNumber),
		method("getX", types.TNumber),
	}}
	if e.ClassSignature(a).Hash != e.ClassSignature(b).Hash {
		t.Fatalf("expected identical signatures regardless of declaration order")
	}
}

func TestUnderscoreMembersExcluded(t *testing.T) {
	e := New()
	base := &ir.ClassDecl{Name: "A", Methods: []*ir.Method{method("getX", types.TNumber)}}
	withPrivate := &ir.ClassDecl{Name: "A2", Methods: []*ir.Method{
		method("getX", types.TNumber),
		method("_cache", types.TNumber),
	}}
	if e.ClassSignature(base).Hash != e.ClassSignature(withPrivate).Hash {
		t.Fatalf("underscore-prefixed method must not affect signature")
	}
}

func TestClassSatisfiesInterfaceStructurally(t *testing.T) {
	e := New()
	iface := &ir.InterfaceDecl{Name: "HasXY", Methods: []*ir.MethodSig{
		{Name: "getX", Return: types.TNumber},
		{Name: "getY", Return: types.TNumber},
	}}
	class := &ir.ClassDecl{Name: "Point", Methods: []*ir.Method{
		method("getY", types.TNumber),
		method("getX", types.TNumber),
	}}
	if !e.Implements(class, iface) {
		t.Fatalf("expected structural implementation to hold")
	}
}

func TestStaticMethodsExcludedFromClassSignature(t *testing.T) {
	e := New()
	withStatic := &ir.ClassDecl{Name: "A", Methods: []*ir.Method{
		method("getX", types.TNumber),
		{FuncDecl: &ir.FuncDecl{Name: "create", ReturnType: types.TNumber}, Access: ir.Public, IsStatic: true},
	}}
	without := &ir.ClassDecl{Name: "A2", Methods: []*ir.Method{method("getX", types.TNumber)}}
	if e.ClassSignature(withStatic).Hash != e.ClassSignature(without).Hash {
		t.Fatalf("static methods must not contribute to the structural signature")
	}
}

func TestHashIsFixedWidthHex(t *testing.T) {
	e := New()
	s := e.ClassSignature(&ir.ClassDecl{Name: "Empty"})
	if len(s.Hash) != 8 {
		t.Fatalf("expected 8 hex digits, got %q", s.Hash)
	}
}

func TestCompatiblePrimitivesRequireSameTag(t *testing.T) {
	if !Compatible(types.TNumber, types.TNumber) {
		t.Fatalf("identical primitives must be compatible")
	}
	if Compatible(types.TNumber, types.TString) {
		t.Fatalf("distinct primitive tags must not be compatible")
	}
}

func TestCompatibleComplexTypesByCanonicalString(t *testing.T) {
	a := &types.Array{Element: types.TNumber, Own: types.Value}
	b := &types.Array{Element: types.TNumber, Own: types.Value}
	if !Compatible(a, b) {
		t.Fatalf("structurally identical arrays must be compatible")
	}
}

func TestTypeStringMemoizedByIdentity(t *testing.T) {
	e := New()
	ty := &types.Array{Element: types.TNumber, Own: types.Value}
	first := e.TypeString(ty)
	second := e.TypeString(ty)
	if first != second {
		t.Fatalf("expected memoized canonical string to be stable")
	}
}
