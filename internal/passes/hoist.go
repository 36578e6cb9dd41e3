// Package passes implements the whole-IR rewrite passes that run after
// lowering (spec §4.4): nested-function hoisting and union/nullable
// normalization.
package passes

import (
	"github.com/fcapolini/goodscript-sub002/internal/ir"
	"github.com/fcapolini/goodscript-sub002/internal/lower"
)

// HoistNestedFunctions walks every function and method body in prog,
// finds nested function declarations with zero closure dependency on
// the enclosing function's own state, and relocates them to module
// scope under a mangled name (spec §4.4 "Nested-function hoisting").
// Mutually recursive nested functions that satisfy the criterion
// together are hoisted as one unit, computed via Tarjan's algorithm
// over their call graph — the same construction the teacher compiler
// uses for mutual-recursion grouping (internal/elaborate/scc.go in the
// reference compiler this generalizes).
func HoistNestedFunctions(prog *ir.Program) {
	for _, m := range prog.Modules {
		moduleNames := moduleDeclNames(m)
		var hoisted []ir.Decl
		for _, d := range m.Decls {
			hoisted = append(hoisted, hoistInDecl(d, moduleNames)...)
		}
		m.Decls = append(m.Decls, hoisted...)
	}
}

func moduleDeclNames(m *ir.Module) map[string]bool {
	names := make(map[string]bool, len(m.Decls))
	for _, d := range m.Decls {
		names[d.DeclName()] = true
	}
	return names
}

func hoistInDecl(d ir.Decl, moduleNames map[string]bool) []ir.Decl {
	switch v := d.(type) {
	case *ir.FuncDecl:
		return hoistInFunction(v, moduleNames)
	case *ir.ClassDecl:
		var out []ir.Decl
		if v.Constructor != nil {
			out = append(out, hoistInFunction(v.Constructor.FuncDecl, moduleNames)...)
		}
		for _, meth := range v.Methods {
			out = append(out, hoistInFunction(meth.FuncDecl, moduleNames)...)
		}
		return out
	default:
		return nil
	}
}

// nestedFunc is one nested function declaration found directly or
// indirectly (through nested blocks) within an enclosing function body.
type nestedFunc struct {
	decl    *ir.VariableDeclaration
	fn      *ir.FuncDecl
	free    []string // free identifier names referenced in fn's body
}

func hoistInFunction(fn *ir.FuncDecl, moduleNames map[string]bool) []ir.Decl {
	nested := findNestedFuncs(fn.Body)
	if len(nested) == 0 {
		return nil
	}

	paramNames := map[string]bool{}
	for _, p := range fn.Params {
		paramNames[p.Name] = true
	}
	enclosingVars := map[string]bool{}
	collectNonFuncLocals(fn.Body, enclosingVars)
	for n := range paramNames {
		enclosingVars[n] = true
	}

	nestedNames := map[string]bool{}
	for _, nf := range nested {
		nestedNames[nf.fn.Name] = true
	}

	captures := map[string][]string{}
	calls := map[string][]string{}
	for _, nf := range nested {
		bound := map[string]bool{}
		for _, p := range nf.fn.Params {
			bound[p.Name] = true
		}
		lower.CollectBoundNames(nf.fn.Body, bound)
		refs := map[string]bool{}
		lower.CollectIdentRefs(nf.fn.Body, refs)

		for name := range refs {
			if bound[name] {
				continue
			}
			if nestedNames[name] && name != nf.fn.Name {
				calls[nf.fn.Name] = append(calls[nf.fn.Name], name)
				continue
			}
			if enclosingVars[name] {
				captures[nf.fn.Name] = append(captures[nf.fn.Name], name)
			}
		}
	}

	graph := newCallGraph()
	for name := range nestedNames {
		graph.addNode(name)
	}
	for caller, callees := range calls {
		for _, callee := range callees {
			graph.addEdge(caller, callee)
		}
	}
	sccs := graph.sccs()

	hoistable := map[string]bool{}
	for _, scc := range sccs {
		inSCC := map[string]bool{}
		for _, n := range scc {
			inSCC[n] = true
		}
		ok := true
		for _, name := range scc {
			if len(captures[name]) > 0 {
				ok = false
			}
			if moduleNames[name] {
				ok = false
			}
			for _, callee := range calls[name] {
				if inSCC[callee] {
					continue
				}
				if !hoistable[callee] {
					ok = false
				}
			}
		}
		for _, name := range scc {
			hoistable[name] = ok
		}
	}

	rename := map[string]string{}
	for _, nf := range nested {
		if hoistable[nf.fn.Name] {
			rename[nf.fn.Name] = fn.Name + "_" + nf.fn.Name
		}
	}
	// Every call site that used the nested, unqualified name now needs
	// the mangled module-scope name instead: the enclosing function's
	// own remaining body, a hoisted function's recursive self-calls, and
	// any call from one hoisted sibling to another. Rewriting fn.Body
	// before the hoisted declarations are stripped out reaches all three
	// in one walk, since a hoisted nested function's body still hangs
	// off its *ir.VariableDeclaration inside fn.Body at this point.
	if len(rename) > 0 {
		renameIdents(fn.Body, rename)
	}

	var out []ir.Decl
	removeSet := map[*ir.FuncDecl]bool{}
	for _, nf := range nested {
		if !hoistable[nf.fn.Name] {
			continue
		}
		nf.fn.Hoisted = true
		nf.fn.MangledFrom = fn.Name
		nf.fn.Name = rename[nf.fn.Name]
		removeSet[nf.fn] = true
		out = append(out, nf.fn)
	}
	fn.Body = removeHoistedDecls(fn.Body, removeSet)
	return out
}

// renameIdents rewrites every ir.Identifier whose Name is a key of rename
// to its mapped value, recursing into nested function bodies reached
// through ir.VariableDeclaration so a hoisted function's own references
// to itself or a hoisted sibling are caught before it is relocated to
// module scope.
func renameIdents(stmts []ir.Stmt, rename map[string]string) {
	for _, s := range stmts {
		renameIdentsStmt(s, rename)
	}
}

func renameIdentsStmt(s ir.Stmt, rename map[string]string) {
	switch v := s.(type) {
	case *ir.VariableDeclaration:
		renameIdentsExpr(v.Init, rename)
		if v.IsFuncDecl && v.FuncDecl != nil {
			renameIdents(v.FuncDecl.Body, rename)
		}
	case *ir.ExpressionStatement:
		renameIdentsExpr(v.Expr, rename)
	case *ir.Return:
		renameIdentsExpr(v.Value, rename)
	case *ir.If:
		renameIdentsExpr(v.Cond, rename)
		renameIdents(v.Then, rename)
		renameIdents(v.Else, rename)
	case *ir.While:
		renameIdentsExpr(v.Cond, rename)
		renameIdents(v.Body, rename)
	case *ir.For:
		if v.Init != nil {
			renameIdentsStmt(v.Init, rename)
		}
		renameIdentsExpr(v.Cond, rename)
		renameIdentsExpr(v.Incr, rename)
		renameIdents(v.Body, rename)
	case *ir.ForOf:
		renameIdentsExpr(v.Iterable, rename)
		renameIdents(v.Body, rename)
	case *ir.Block:
		renameIdents(v.Body, rename)
	case *ir.Throw:
		renameIdentsExpr(v.Value, rename)
	case *ir.TryCatchFinally:
		renameIdents(v.Try, rename)
		renameIdents(v.Catch, rename)
		renameIdents(v.Finally, rename)
	}
}

func renameIdentsExpr(e ir.Expr, rename map[string]string) {
	if e == nil {
		return
	}
	switch v := e.(type) {
	case *ir.Identifier:
		if to, ok := rename[v.Name]; ok {
			v.Name = to
		}
	case *ir.Lambda:
		renameIdents(v.Body, rename)
	case *ir.Binary:
		renameIdentsExpr(v.Left, rename)
		renameIdentsExpr(v.Right, rename)
	case *ir.Unary:
		renameIdentsExpr(v.Operand, rename)
	case *ir.Conditional:
		renameIdentsExpr(v.Cond, rename)
		renameIdentsExpr(v.Then, rename)
		renameIdentsExpr(v.Else, rename)
	case *ir.Member:
		renameIdentsExpr(v.Object, rename)
	case *ir.Index:
		renameIdentsExpr(v.Object, rename)
		renameIdentsExpr(v.Idx, rename)
	case *ir.Call:
		renameIdentsExpr(v.Callee, rename)
		for _, a := range v.Args {
			renameIdentsExpr(a, rename)
		}
	case *ir.MethodCall:
		renameIdentsExpr(v.Object, rename)
		for _, a := range v.Args {
			renameIdentsExpr(a, rename)
		}
	case *ir.New:
		for _, a := range v.Args {
			renameIdentsExpr(a, rename)
		}
	case *ir.ArrayLiteral:
		for _, el := range v.Elements {
			renameIdentsExpr(el, rename)
		}
	case *ir.ObjectLiteral:
		for _, f := range v.Fields {
			renameIdentsExpr(f.Value, rename)
		}
	case *ir.Assignment:
		renameIdentsExpr(v.Target, rename)
		renameIdentsExpr(v.Value, rename)
	case *ir.TemplateLiteral:
		for _, ex := range v.Exprs {
			renameIdentsExpr(ex, rename)
		}
	case *ir.Await:
		renameIdentsExpr(v.Promise, rename)
	}
}

func findNestedFuncs(stmts []ir.Stmt) []nestedFunc {
	var out []nestedFunc
	var walk func([]ir.Stmt)
	walk = func(body []ir.Stmt) {
		for _, s := range body {
			switch v := s.(type) {
			case *ir.VariableDeclaration:
				if v.IsFuncDecl && v.FuncDecl != nil {
					out = append(out, nestedFunc{decl: v, fn: v.FuncDecl})
				}
			case *ir.If:
				walk(v.Then)
				walk(v.Else)
			case *ir.While:
				walk(v.Body)
			case *ir.For:
				walk(v.Body)
			case *ir.ForOf:
				walk(v.Body)
			case *ir.Block:
				walk(v.Body)
			case *ir.TryCatchFinally:
				walk(v.Try)
				walk(v.Catch)
				walk(v.Finally)
			}
		}
	}
	walk(stmts)
	return out
}

func removeHoistedDecls(stmts []ir.Stmt, removed map[*ir.FuncDecl]bool) []ir.Stmt {
	out := make([]ir.Stmt, 0, len(stmts))
	for _, s := range stmts {
		switch v := s.(type) {
		case *ir.VariableDeclaration:
			if v.IsFuncDecl && v.FuncDecl != nil && removed[v.FuncDecl] {
				continue
			}
			out = append(out, v)
		case *ir.If:
			v.Then = removeHoistedDecls(v.Then, removed)
			v.Else = removeHoistedDecls(v.Else, removed)
			out = append(out, v)
		case *ir.While:
			v.Body = removeHoistedDecls(v.Body, removed)
			out = append(out, v)
		case *ir.For:
			v.Body = removeHoistedDecls(v.Body, removed)
			out = append(out, v)
		case *ir.ForOf:
			v.Body = removeHoistedDecls(v.Body, removed)
			out = append(out, v)
		case *ir.Block:
			v.Body = removeHoistedDecls(v.Body, removed)
			out = append(out, v)
		case *ir.TryCatchFinally:
			v.Try = removeHoistedDecls(v.Try, removed)
			v.Catch = removeHoistedDecls(v.Catch, removed)
			v.Finally = removeHoistedDecls(v.Finally, removed)
			out = append(out, v)
		default:
			out = append(out, s)
		}
	}
	return out
}
