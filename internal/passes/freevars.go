package passes

import "github.com/fcapolini/goodscript-sub002/internal/ir"

// collectNonFuncLocals walks stmts collecting the names of ordinary
// (non-function) local bindings the enclosing function itself
// introduces — let/const, for-of bindings, catch parameters — without
// descending into a nested function's own body (that body's locals
// belong to the nested function's scope, not the enclosing one). This
// is the "surrounding mutable or captured bindings" set spec §4.4
// checks a nested function against.
func collectNonFuncLocals(stmts []ir.Stmt, out map[string]bool) {
	for _, s := range stmts {
		switch v := s.(type) {
		case *ir.VariableDeclaration:
			if !v.IsFuncDecl {
				out[v.Name] = true
			}
		case *ir.If:
			collectNonFuncLocals(v.Then, out)
			collectNonFuncLocals(v.Else, out)
		case *ir.While:
			collectNonFuncLocals(v.Body, out)
		case *ir.For:
			if v.Init != nil {
				collectNonFuncLocals([]ir.Stmt{v.Init}, out)
			}
			collectNonFuncLocals(v.Body, out)
		case *ir.ForOf:
			out[v.Name] = true
			collectNonFuncLocals(v.Body, out)
		case *ir.Block:
			collectNonFuncLocals(v.Body, out)
		case *ir.TryCatchFinally:
			collectNonFuncLocals(v.Try, out)
			if v.HasCatch && v.CatchParam != "" {
				out[v.CatchParam] = true
			}
			collectNonFuncLocals(v.Catch, out)
			collectNonFuncLocals(v.Finally, out)
		}
	}
}
