package ir

import (
	"testing"

	"github.com/fcapolini/goodscript-sub002/internal/ast"
)

func validProgram() *Program {
	lit := &Literal{Node: Node{NodeID: 1}, Kind: IntLit, Value: int64(1), Typ: intType}
	ret := &Return{Value: lit}
	fn := &FuncDecl{Name: "f", ReturnType: intType, Body: []Stmt{ret}}
	mod := &Module{Path: "m.ts", Decls: []Decl{fn}}
	return &Program{Modules: []*Module{mod}}
}

func TestValidateAcceptsWellTypedProgram(t *testing.T) {
	if err := Validate(validProgram()); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestValidateRejectsExpressionWithNilType(t *testing.T) {
	lit := &Literal{Node: Node{NodeID: 1}, Kind: IntLit, Value: int64(1), Typ: nil}
	ret := &Return{Value: lit}
	fn := &FuncDecl{Name: "f", Body: []Stmt{ret}}
	mod := &Module{Path: "m.ts", Decls: []Decl{fn}}
	prog := &Program{Modules: []*Module{mod}}

	err := Validate(prog)
	if err == nil {
		t.Fatal("expected an error for a nil-typed expression, got nil")
	}
}

func TestValidateDescendsIntoBinaryOperands(t *testing.T) {
	left := &Literal{Node: Node{NodeID: 1}, Kind: IntLit, Value: int64(1), Typ: intType}
	right := &Literal{Node: Node{NodeID: 2}, Kind: IntLit, Value: nil, Typ: nil}
	bin := &Binary{Node: Node{NodeID: 3}, Op: "+", Left: left, Right: right, Typ: intType}
	ret := &Return{Value: bin}
	fn := &FuncDecl{Name: "f", Body: []Stmt{ret}}
	mod := &Module{Path: "m.ts", Decls: []Decl{fn}}
	prog := &Program{Modules: []*Module{mod}}

	if err := Validate(prog); err == nil {
		t.Fatal("expected the nil-typed right operand to be reported, got nil")
	}
}

func TestValidateDescendsIntoClassConstructorAndMethods(t *testing.T) {
	badLit := &Literal{Node: Node{NodeID: 1}, Typ: nil}
	ctor := &Method{FuncDecl: &FuncDecl{Name: "constructor", Body: []Stmt{&ExpressionStatement{Pos: ast.Pos{}, Expr: badLit}}}}
	cls := &ClassDecl{Name: "C", Constructor: ctor}
	mod := &Module{Path: "m.ts", Decls: []Decl{cls}}
	prog := &Program{Modules: []*Module{mod}}

	if err := Validate(prog); err == nil {
		t.Fatal("expected constructor body violation to be reported, got nil")
	}
}

func TestValidateReportsNilExpressionInsideConditional(t *testing.T) {
	cond := &Identifier{Node: Node{NodeID: 1}, Name: "ok", Typ: intType}
	then := &Literal{Node: Node{NodeID: 2}, Typ: intType}
	elseExpr := &Literal{Node: Node{NodeID: 3}, Typ: nil}
	c := &Conditional{Node: Node{NodeID: 4}, Cond: cond, Then: then, Else: elseExpr, Typ: intType}
	ret := &Return{Value: c}
	fn := &FuncDecl{Name: "f", Body: []Stmt{ret}}
	mod := &Module{Path: "m.ts", Decls: []Decl{fn}}
	prog := &Program{Modules: []*Module{mod}}

	if err := Validate(prog); err == nil {
		t.Fatal("expected the nil-typed else-branch to be reported, got nil")
	}
}
