package passes

import (
	"testing"

	"github.com/fcapolini/goodscript-sub002/internal/ast"
	"github.com/fcapolini/goodscript-sub002/internal/ir"
	"github.com/fcapolini/goodscript-sub002/internal/types"
)

func p() ast.Pos { return ast.Pos{File: "t.ts", Line: 1, Column: 1} }

func nestedVarDecl(name string, fn *ir.FuncDecl) *ir.VariableDeclaration {
	return &ir.VariableDeclaration{Pos: p(), Name: name, IsFuncDecl: true, FuncDecl: fn}
}

func program(fn *ir.FuncDecl) *ir.Program {
	return &ir.Program{Modules: []*ir.Module{{Path: "m", Decls: []ir.Decl{fn}}}}
}

func TestHoistZeroCaptureNestedFunctionIsHoisted(t *testing.T) {
	helper := &ir.FuncDecl{
		Name: "helper",
		Body: []ir.Stmt{&ir.Return{Value: &ir.Literal{Kind: ir.IntLit, Value: int64(1), Typ: types.TInteger}}},
	}
	outer := &ir.FuncDecl{
		Name: "outer",
		Body: []ir.Stmt{
			nestedVarDecl("helper", helper),
			&ir.Return{Value: &ir.Call{Callee: &ir.Identifier{Name: "helper", Typ: nil}, Typ: types.TInteger}},
		},
	}
	prog := program(outer)
	HoistNestedFunctions(prog)

	decls := prog.Modules[0].Decls
	if len(decls) != 2 {
		t.Fatalf("expected outer plus hoisted helper, got %d decls", len(decls))
	}
	var found bool
	for _, d := range decls {
		if fd, ok := d.(*ir.FuncDecl); ok && fd.Hoisted {
			found = true
			if fd.Name != "outer_helper" {
				t.Fatalf("expected mangled name outer_helper, got %s", fd.Name)
			}
		}
	}
	if !found {
		t.Fatalf("expected a hoisted function declaration")
	}
	if len(outer.Body) != 1 {
		t.Fatalf("expected hoisted declaration removed from outer body, got %d stmts", len(outer.Body))
	}
	ret, ok := outer.Body[0].(*ir.Return)
	if !ok {
		t.Fatalf("expected outer's remaining statement to be a return, got %T", outer.Body[0])
	}
	call, ok := ret.Value.(*ir.Call)
	if !ok {
		t.Fatalf("expected outer's return value to be a call, got %T", ret.Value)
	}
	callee, ok := call.Callee.(*ir.Identifier)
	if !ok {
		t.Fatalf("expected call callee to be an identifier, got %T", call.Callee)
	}
	if callee.Name != "outer_helper" {
		t.Fatalf("expected surviving call site rewritten to mangled name outer_helper, got %s", callee.Name)
	}
}

func TestHoistRecursiveSelfCallIsRewrittenToMangledName(t *testing.T) {
	fib := &ir.FuncDecl{
		Name:   "fib",
		Params: []*ir.Param{{Name: "n", Type: types.TInteger}},
		Body: []ir.Stmt{
			&ir.Return{Value: &ir.Binary{
				Op:   "+",
				Left: &ir.Call{Callee: &ir.Identifier{Name: "fib"}, Typ: types.TInteger},
				Right: &ir.Call{Callee: &ir.Identifier{Name: "fib"}, Typ: types.TInteger},
				Typ:  types.TInteger,
			}},
		},
	}
	outer := &ir.FuncDecl{
		Name:   "outer",
		Params: []*ir.Param{{Name: "x", Type: types.TInteger}},
		Body: []ir.Stmt{
			nestedVarDecl("fib", fib),
			&ir.Return{Value: &ir.Call{Callee: &ir.Identifier{Name: "fib"}, Typ: types.TInteger}},
		},
	}
	prog := program(outer)
	HoistNestedFunctions(prog)

	if fib.Name != "outer_fib" {
		t.Fatalf("expected hoisted function renamed to outer_fib, got %s", fib.Name)
	}

	bin := fib.Body[0].(*ir.Return).Value.(*ir.Binary)
	left := bin.Left.(*ir.Call).Callee.(*ir.Identifier)
	right := bin.Right.(*ir.Call).Callee.(*ir.Identifier)
	if left.Name != "outer_fib" || right.Name != "outer_fib" {
		t.Fatalf("expected both recursive self-calls rewritten to outer_fib, got %s and %s", left.Name, right.Name)
	}

	outerCall := outer.Body[0].(*ir.Return).Value.(*ir.Call).Callee.(*ir.Identifier)
	if outerCall.Name != "outer_fib" {
		t.Fatalf("expected outer's delegating call rewritten to outer_fib, got %s", outerCall.Name)
	}
}

func TestHoistCapturingNestedFunctionIsNotHoisted(t *testing.T) {
	capturing := &ir.FuncDecl{
		Name: "adder",
		Body: []ir.Stmt{&ir.Return{Value: &ir.Identifier{Name: "base", Typ: types.TInteger}}},
	}
	outer := &ir.FuncDecl{
		Name:   "outer",
		Params: []*ir.Param{{Name: "base", Type: types.TInteger}},
		Body: []ir.Stmt{
			nestedVarDecl("adder", capturing),
			&ir.Return{Value: &ir.Call{Callee: &ir.Identifier{Name: "adder"}, Typ: types.TInteger}},
		},
	}
	prog := program(outer)
	HoistNestedFunctions(prog)

	if len(prog.Modules[0].Decls) != 1 {
		t.Fatalf("expected no hoisting for a capturing nested function, got %d decls", len(prog.Modules[0].Decls))
	}
	if len(outer.Body) != 2 {
		t.Fatalf("expected nested declaration to remain in outer body")
	}
}

func TestHoistMutuallyRecursivePairHoistedTogether(t *testing.T) {
	isEven := &ir.FuncDecl{Name: "isEven", Params: []*ir.Param{{Name: "n", Type: types.TInteger}},
		Body: []ir.Stmt{&ir.Return{Value: &ir.Call{Callee: &ir.Identifier{Name: "isOdd"}, Typ: types.TBoolean}}}}
	isOdd := &ir.FuncDecl{Name: "isOdd", Params: []*ir.Param{{Name: "n", Type: types.TInteger}},
		Body: []ir.Stmt{&ir.Return{Value: &ir.Call{Callee: &ir.Identifier{Name: "isEven"}, Typ: types.TBoolean}}}}
	outer := &ir.FuncDecl{
		Name: "outer",
		Body: []ir.Stmt{
			nestedVarDecl("isEven", isEven),
			nestedVarDecl("isOdd", isOdd),
			&ir.Return{Value: &ir.Call{Callee: &ir.Identifier{Name: "isEven"}, Typ: types.TBoolean}},
		},
	}
	prog := program(outer)
	HoistNestedFunctions(prog)

	decls := prog.Modules[0].Decls
	hoistedCount := 0
	for _, d := range decls {
		if fd, ok := d.(*ir.FuncDecl); ok && fd.Hoisted {
			hoistedCount++
		}
	}
	if hoistedCount != 2 {
		t.Fatalf("expected both mutually recursive functions hoisted together, got %d", hoistedCount)
	}
	if isEven.Name != "outer_isEven" || isOdd.Name != "outer_isOdd" {
		t.Fatalf("expected both hoisted names mangled, got %s and %s", isEven.Name, isOdd.Name)
	}
	evenCallee := isEven.Body[0].(*ir.Return).Value.(*ir.Call).Callee.(*ir.Identifier)
	oddCallee := isOdd.Body[0].(*ir.Return).Value.(*ir.Call).Callee.(*ir.Identifier)
	if evenCallee.Name != "outer_isOdd" {
		t.Fatalf("expected isEven's cross-call to isOdd rewritten to outer_isOdd, got %s", evenCallee.Name)
	}
	if oddCallee.Name != "outer_isEven" {
		t.Fatalf("expected isOdd's cross-call to isEven rewritten to outer_isEven, got %s", oddCallee.Name)
	}
}

func TestHoistShadowingModuleLevelNameBlocksHoisting(t *testing.T) {
	shadow := &ir.FuncDecl{Name: "helper", Body: nil}
	outer := &ir.FuncDecl{
		Name: "helper",
		Body: []ir.Stmt{nestedVarDecl("helper", shadow)},
	}
	prog := program(outer)
	HoistNestedFunctions(prog)

	if len(prog.Modules[0].Decls) != 1 {
		t.Fatalf("expected shadowing nested function not hoisted, got %d decls", len(prog.Modules[0].Decls))
	}
}
