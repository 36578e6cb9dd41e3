package lower

import "github.com/fcapolini/goodscript-sub002/internal/ir"

// collectBoundNames walks stmts collecting every name a declaration
// introduces (let/const, for-of bindings, catch parameters, nested
// function names and their own parameters), conservatively treating the
// whole lambda body as one flat scope. This intentionally over-binds
// relative to JS block scoping — safe for capture analysis because a
// name it wrongly excludes from "free" can only ever be a local that
// shadows an outer one of the same name, never the reverse.
func collectBoundNames(stmts []ir.Stmt, bound map[string]bool) {
	for _, s := range stmts {
		collectBoundNamesStmt(s, bound)
	}
}

func collectBoundNamesStmt(s ir.Stmt, bound map[string]bool) {
	switch v := s.(type) {
	case *ir.VariableDeclaration:
		bound[v.Name] = true
		if v.IsFuncDecl && v.FuncDecl != nil {
			for _, p := range v.FuncDecl.Params {
				bound[p.Name] = true
			}
			collectBoundNames(v.FuncDecl.Body, bound)
		}
	case *ir.ExpressionStatement:
		collectBoundNamesExpr(v.Expr, bound)
	case *ir.Return:
		collectBoundNamesExpr(v.Value, bound)
	case *ir.If:
		collectBoundNamesExpr(v.Cond, bound)
		collectBoundNames(v.Then, bound)
		collectBoundNames(v.Else, bound)
	case *ir.While:
		collectBoundNamesExpr(v.Cond, bound)
		collectBoundNames(v.Body, bound)
	case *ir.For:
		if v.Init != nil {
			collectBoundNamesStmt(v.Init, bound)
		}
		collectBoundNamesExpr(v.Cond, bound)
		collectBoundNamesExpr(v.Incr, bound)
		collectBoundNames(v.Body, bound)
	case *ir.ForOf:
		bound[v.Name] = true
		collectBoundNamesExpr(v.Iterable, bound)
		collectBoundNames(v.Body, bound)
	case *ir.Block:
		collectBoundNames(v.Body, bound)
	case *ir.Throw:
		collectBoundNamesExpr(v.Value, bound)
	case *ir.TryCatchFinally:
		collectBoundNames(v.Try, bound)
		if v.HasCatch && v.CatchParam != "" {
			bound[v.CatchParam] = true
		}
		collectBoundNames(v.Catch, bound)
		collectBoundNames(v.Finally, bound)
	}
}

func collectBoundNamesExpr(e ir.Expr, bound map[string]bool) {
	if e == nil {
		return
	}
	switch v := e.(type) {
	case *ir.Lambda:
		for _, p := range v.Params {
			bound[p.Name] = true
		}
		collectBoundNames(v.Body, bound)
	case *ir.Binary:
		collectBoundNamesExpr(v.Left, bound)
		collectBoundNamesExpr(v.Right, bound)
	case *ir.Unary:
		collectBoundNamesExpr(v.Operand, bound)
	case *ir.Conditional:
		collectBoundNamesExpr(v.Cond, bound)
		collectBoundNamesExpr(v.Then, bound)
		collectBoundNamesExpr(v.Else, bound)
	case *ir.Member:
		collectBoundNamesExpr(v.Object, bound)
	case *ir.Index:
		collectBoundNamesExpr(v.Object, bound)
		collectBoundNamesExpr(v.Idx, bound)
	case *ir.Call:
		collectBoundNamesExpr(v.Callee, bound)
		for _, a := range v.Args {
			collectBoundNamesExpr(a, bound)
		}
	case *ir.MethodCall:
		collectBoundNamesExpr(v.Object, bound)
		for _, a := range v.Args {
			collectBoundNamesExpr(a, bound)
		}
	case *ir.New:
		for _, a := range v.Args {
			collectBoundNamesExpr(a, bound)
		}
	case *ir.ArrayLiteral:
		for _, el := range v.Elements {
			collectBoundNamesExpr(el, bound)
		}
	case *ir.ObjectLiteral:
		for _, f := range v.Fields {
			collectBoundNamesExpr(f.Value, bound)
		}
	case *ir.Assignment:
		collectBoundNamesExpr(v.Target, bound)
		collectBoundNamesExpr(v.Value, bound)
	case *ir.TemplateLiteral:
		for _, ex := range v.Exprs {
			collectBoundNamesExpr(ex, bound)
		}
	case *ir.Await:
		collectBoundNamesExpr(v.Promise, bound)
	}
}

// collectIdentRefs walks stmts collecting every referenced identifier
// name, including inside nested lambda bodies (a name a nested lambda
// depends on but does not itself bind is still a dependency of the
// enclosing lambda).
func collectIdentRefs(stmts []ir.Stmt, refs map[string]bool) {
	for _, s := range stmts {
		collectIdentRefsStmt(s, refs)
	}
}

func collectIdentRefsStmt(s ir.Stmt, refs map[string]bool) {
	switch v := s.(type) {
	case *ir.VariableDeclaration:
		collectIdentRefsExpr(v.Init, refs)
		if v.IsFuncDecl && v.FuncDecl != nil {
			collectIdentRefs(v.FuncDecl.Body, refs)
		}
	case *ir.ExpressionStatement:
		collectIdentRefsExpr(v.Expr, refs)
	case *ir.Return:
		collectIdentRefsExpr(v.Value, refs)
	case *ir.If:
		collectIdentRefsExpr(v.Cond, refs)
		collectIdentRefs(v.Then, refs)
		collectIdentRefs(v.Else, refs)
	case *ir.While:
		collectIdentRefsExpr(v.Cond, refs)
		collectIdentRefs(v.Body, refs)
	case *ir.For:
		if v.Init != nil {
			collectIdentRefsStmt(v.Init, refs)
		}
		collectIdentRefsExpr(v.Cond, refs)
		collectIdentRefsExpr(v.Incr, refs)
		collectIdentRefs(v.Body, refs)
	case *ir.ForOf:
		collectIdentRefsExpr(v.Iterable, refs)
		collectIdentRefs(v.Body, refs)
	case *ir.Block:
		collectIdentRefs(v.Body, refs)
	case *ir.Throw:
		collectIdentRefsExpr(v.Value, refs)
	case *ir.TryCatchFinally:
		collectIdentRefs(v.Try, refs)
		collectIdentRefs(v.Catch, refs)
		collectIdentRefs(v.Finally, refs)
	}
}

func collectIdentRefsExpr(e ir.Expr, refs map[string]bool) {
	if e == nil {
		return
	}
	switch v := e.(type) {
	case *ir.Identifier:
		refs[v.Name] = true
	case *ir.Lambda:
		collectIdentRefs(v.Body, refs)
	case *ir.Binary:
		collectIdentRefsExpr(v.Left, refs)
		collectIdentRefsExpr(v.Right, refs)
	case *ir.Unary:
		collectIdentRefsExpr(v.Operand, refs)
	case *ir.Conditional:
		collectIdentRefsExpr(v.Cond, refs)
		collectIdentRefsExpr(v.Then, refs)
		collectIdentRefsExpr(v.Else, refs)
	case *ir.Member:
		collectIdentRefsExpr(v.Object, refs)
	case *ir.Index:
		collectIdentRefsExpr(v.Object, refs)
		collectIdentRefsExpr(v.Idx, refs)
	case *ir.Call:
		collectIdentRefsExpr(v.Callee, refs)
		for _, a := range v.Args {
			collectIdentRefsExpr(a, refs)
		}
	case *ir.MethodCall:
		collectIdentRefsExpr(v.Object, refs)
		for _, a := range v.Args {
			collectIdentRefsExpr(a, refs)
		}
	case *ir.New:
		for _, a := range v.Args {
			collectIdentRefsExpr(a, refs)
		}
	case *ir.ArrayLiteral:
		for _, el := range v.Elements {
			collectIdentRefsExpr(el, refs)
		}
	case *ir.ObjectLiteral:
		for _, f := range v.Fields {
			collectIdentRefsExpr(f.Value, refs)
		}
	case *ir.Assignment:
		collectIdentRefsExpr(v.Target, refs)
		collectIdentRefsExpr(v.Value, refs)
	case *ir.TemplateLiteral:
		for _, ex := range v.Exprs {
			collectIdentRefsExpr(ex, refs)
		}
	case *ir.Await:
		collectIdentRefsExpr(v.Promise, refs)
	}
}

// CollectBoundNames exposes collectBoundNames for internal/passes, which
// runs the same free-variable analysis over already-lowered IR to
// decide nested-function hoisting eligibility (spec §4.4).
func CollectBoundNames(stmts []ir.Stmt, bound map[string]bool) { collectBoundNames(stmts, bound) }

// CollectIdentRefs exposes collectIdentRefs for internal/passes.
func CollectIdentRefs(stmts []ir.Stmt, refs map[string]bool) { collectIdentRefs(stmts, refs) }
