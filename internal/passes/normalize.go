package passes

import (
	"github.com/fcapolini/goodscript-sub002/internal/config"
	"github.com/fcapolini/goodscript-sub002/internal/ir"
	"github.com/fcapolini/goodscript-sub002/internal/lower"
)

// NormalizeUnions re-runs the union/nullable normalization rules (spec
// §3 invariants 3-4, §4.4 "Union and nullable normalization") over every
// type-bearing field of an already-lowered program. Lowering already
// normalizes each type as it builds it; this pass exists because later
// passes such as hoisting can introduce or rearrange declarations whose
// types were normalized against a stale view of the surrounding
// program, and because the rule must hold as a program-wide invariant,
// not merely a per-node one. lower.NormalizeType is idempotent, so
// running it again here is always safe even when nothing changed.
func NormalizeUnions(prog *ir.Program, mode config.MemoryMode) {
	for _, m := range prog.Modules {
		for _, d := range m.Decls {
			normalizeDecl(d, mode)
		}
	}
}

func normalizeDecl(d ir.Decl, mode config.MemoryMode) {
	switch v := d.(type) {
	case *ir.FuncDecl:
		normalizeFuncDecl(v, mode)
	case *ir.ClassDecl:
		for _, f := range v.Fields {
			f.Type = lower.NormalizeType(f.Type, mode)
		}
		for _, meth := range v.Methods {
			normalizeFuncDecl(meth.FuncDecl, mode)
		}
		if v.Constructor != nil {
			normalizeFuncDecl(v.Constructor.FuncDecl, mode)
		}
	case *ir.InterfaceDecl:
		for _, m := range v.Methods {
			normalizeParams(m.Params, mode)
			m.Return = lower.NormalizeType(m.Return, mode)
		}
	case *ir.TypeAliasDecl:
		v.Aliased = lower.NormalizeType(v.Aliased, mode)
	case *ir.ConstantDecl:
		v.Type = lower.NormalizeType(v.Type, mode)
		normalizeExpr(v.Init, mode)
	}
}

func normalizeParams(params []*ir.Param, mode config.MemoryMode) {
	for _, p := range params {
		p.Type = lower.NormalizeType(p.Type, mode)
	}
}

func normalizeFuncDecl(fn *ir.FuncDecl, mode config.MemoryMode) {
	normalizeParams(fn.Params, mode)
	fn.ReturnType = lower.NormalizeType(fn.ReturnType, mode)
	normalizeStmts(fn.Body, mode)
}

func normalizeStmts(stmts []ir.Stmt, mode config.MemoryMode) {
	for _, s := range stmts {
		normalizeStmt(s, mode)
	}
}

func normalizeStmt(s ir.Stmt, mode config.MemoryMode) {
	switch v := s.(type) {
	case *ir.VariableDeclaration:
		normalizeExpr(v.Init, mode)
		if v.IsFuncDecl && v.FuncDecl != nil {
			normalizeFuncDecl(v.FuncDecl, mode)
		}
	case *ir.ExpressionStatement:
		normalizeExpr(v.Expr, mode)
	case *ir.Return:
		normalizeExpr(v.Value, mode)
	case *ir.If:
		normalizeExpr(v.Cond, mode)
		normalizeStmts(v.Then, mode)
		normalizeStmts(v.Else, mode)
	case *ir.While:
		normalizeExpr(v.Cond, mode)
		normalizeStmts(v.Body, mode)
	case *ir.For:
		if v.Init != nil {
			normalizeStmt(v.Init, mode)
		}
		normalizeExpr(v.Cond, mode)
		normalizeExpr(v.Incr, mode)
		normalizeStmts(v.Body, mode)
	case *ir.ForOf:
		normalizeExpr(v.Iterable, mode)
		normalizeStmts(v.Body, mode)
	case *ir.Block:
		normalizeStmts(v.Body, mode)
	case *ir.Throw:
		normalizeExpr(v.Value, mode)
	case *ir.TryCatchFinally:
		normalizeStmts(v.Try, mode)
		normalizeStmts(v.Catch, mode)
		normalizeStmts(v.Finally, mode)
	}
}

func normalizeExpr(e ir.Expr, mode config.MemoryMode) {
	if e == nil {
		return
	}
	switch v := e.(type) {
	case *ir.Literal:
		v.Typ = lower.NormalizeType(v.Typ, mode)
	case *ir.Identifier:
		v.Typ = lower.NormalizeType(v.Typ, mode)
	case *ir.Binary:
		v.Typ = lower.NormalizeType(v.Typ, mode)
		normalizeExpr(v.Left, mode)
		normalizeExpr(v.Right, mode)
	case *ir.Unary:
		v.Typ = lower.NormalizeType(v.Typ, mode)
		normalizeExpr(v.Operand, mode)
	case *ir.Conditional:
		v.Typ = lower.NormalizeType(v.Typ, mode)
		normalizeExpr(v.Cond, mode)
		normalizeExpr(v.Then, mode)
		normalizeExpr(v.Else, mode)
	case *ir.Member:
		v.Typ = lower.NormalizeType(v.Typ, mode)
		normalizeExpr(v.Object, mode)
	case *ir.Index:
		v.Typ = lower.NormalizeType(v.Typ, mode)
		normalizeExpr(v.Object, mode)
		normalizeExpr(v.Idx, mode)
	case *ir.Call:
		v.Typ = lower.NormalizeType(v.Typ, mode)
		normalizeExpr(v.Callee, mode)
		for _, a := range v.Args {
			normalizeExpr(a, mode)
		}
	case *ir.MethodCall:
		v.Typ = lower.NormalizeType(v.Typ, mode)
		normalizeExpr(v.Object, mode)
		for _, a := range v.Args {
			normalizeExpr(a, mode)
		}
	case *ir.New:
		v.Typ = lower.NormalizeType(v.Typ, mode)
		for i, t := range v.TypeArgs {
			v.TypeArgs[i] = lower.NormalizeType(t, mode)
		}
		for _, a := range v.Args {
			normalizeExpr(a, mode)
		}
	case *ir.ArrayLiteral:
		v.Typ = lower.NormalizeType(v.Typ, mode)
		for _, el := range v.Elements {
			normalizeExpr(el, mode)
		}
	case *ir.ObjectLiteral:
		v.Typ = lower.NormalizeType(v.Typ, mode)
		for _, f := range v.Fields {
			normalizeExpr(f.Value, mode)
		}
	case *ir.Assignment:
		v.Typ = lower.NormalizeType(v.Typ, mode)
		normalizeExpr(v.Target, mode)
		normalizeExpr(v.Value, mode)
	case *ir.Move:
		v.Typ = lower.NormalizeType(v.Typ, mode)
		normalizeExpr(v.Source, mode)
	case *ir.Borrow:
		v.Typ = lower.NormalizeType(v.Typ, mode)
		normalizeExpr(v.Source, mode)
	case *ir.Lambda:
		v.Typ = lower.NormalizeType(v.Typ, mode)
		normalizeParamsOf(v.Params, mode)
		normalizeStmts(v.Body, mode)
	case *ir.TemplateLiteral:
		v.Typ = lower.NormalizeType(v.Typ, mode)
		for _, ex := range v.Exprs {
			normalizeExpr(ex, mode)
		}
	case *ir.Await:
		v.Typ = lower.NormalizeType(v.Typ, mode)
		normalizeExpr(v.Promise, mode)
	}
}

func normalizeParamsOf(params []*ir.Param, mode config.MemoryMode) {
	normalizeParams(params, mode)
}
