package lower

import (
	"github.com/fcapolini/goodscript-sub002/internal/ast"
	"github.com/fcapolini/goodscript-sub002/internal/diagnostics"
	"github.com/fcapolini/goodscript-sub002/internal/ir"
)

func (l *Lowerer) lowerStmts(stmts []ast.Stmt) []ir.Stmt {
	out := make([]ir.Stmt, 0, len(stmts))
	for _, s := range stmts {
		if lowered := l.lowerStmt(s); lowered != nil {
			out = append(out, lowered)
		}
	}
	return out
}

func (l *Lowerer) lowerStmt(s ast.Stmt) ir.Stmt {
	switch v := s.(type) {
	case *ast.VarDeclStmt:
		l.bind(v.Name)
		var init ir.Expr
		if v.Init != nil {
			init = l.lowerExprAs(v.Init, v.Type)
		}
		return &ir.VariableDeclaration{Pos: v.Pos, Name: v.Name, Init: init, Const: v.Const}

	case *ast.FuncDeclStmt:
		l.bind(v.Decl.Name)
		fn := l.lowerFuncDecl(v.Decl)
		return &ir.VariableDeclaration{Pos: v.Pos, Name: v.Decl.Name, Const: true, IsFuncDecl: true, FuncDecl: fn}

	case *ast.ExprStmt:
		return &ir.ExpressionStatement{Pos: v.Pos, Expr: l.lowerExpr(v.Expr)}

	case *ast.ReturnStmt:
		var value ir.Expr
		if v.Value != nil {
			value = l.lowerExpr(v.Value)
		}
		return &ir.Return{Pos: v.Pos, Value: value}

	case *ast.IfStmt:
		return &ir.If{
			Pos:  v.Pos,
			Cond: l.lowerExpr(v.Cond),
			Then: l.lowerStmts(v.Then),
			Else: l.lowerStmts(v.Else),
		}

	case *ast.WhileStmt:
		return &ir.While{Pos: v.Pos, Cond: l.lowerExpr(v.Cond), Body: l.lowerStmts(v.Body)}

	case *ast.ForStmt:
		var init ir.Stmt
		if v.Init != nil {
			init = l.lowerStmt(v.Init)
		}
		var cond ir.Expr
		if v.Cond != nil {
			cond = l.lowerExpr(v.Cond)
		}
		var incr ir.Expr
		if v.Incr != nil {
			incr = l.lowerExpr(v.Incr)
		}
		return &ir.For{Pos: v.Pos, Init: init, Cond: cond, Incr: incr, Body: l.lowerStmts(v.Body)}

	case *ast.ForOfStmt:
		l.bind(v.Name)
		return &ir.ForOf{Pos: v.Pos, Name: v.Name, Iterable: l.lowerExpr(v.Iterable), Body: l.lowerStmts(v.Body)}

	case *ast.BlockStmt:
		return &ir.Block{Pos: v.Pos, Body: l.lowerStmts(v.Body)}

	case *ast.ThrowStmt:
		return &ir.Throw{Pos: v.Pos, Value: l.lowerExpr(v.Value)}

	case *ast.TryStmt:
		tryBody := l.lowerStmts(v.Try)
		var catchBody []ir.Stmt
		if v.HasCatch {
			if v.CatchParam != "" {
				l.bind(v.CatchParam)
			}
			catchBody = l.lowerStmts(v.Catch)
		}
		return &ir.TryCatchFinally{
			Pos:        v.Pos,
			Try:        tryBody,
			HasCatch:   v.HasCatch,
			CatchParam: v.CatchParam,
			Catch:      catchBody,
			Finally:    l.lowerStmts(v.Finally),
		}

	case *ast.BreakStmt:
		return &ir.Break{Pos: v.Pos}

	case *ast.ContinueStmt:
		return &ir.Continue{Pos: v.Pos}

	default:
		l.diag.Add(diagnostics.LOW001, "unsupported statement", span(s.Position()), nil)
		return nil
	}
}
