package ir

import "fmt"

// Validate checks spec §3 invariant 1 ("every IR expression has a
// non-null type") over every expression reachable from decls. It does
// not inspect ownership tags, so an inconsistent ownership at a
// reference site is not reported. It
// returns the first violation found; callers treat these as internal
// errors (spec §7 "IR validation failures … treated as internal
// errors"), never surfaced as user-facing diagnostics.
func Validate(prog *Program) error {
	for _, m := range prog.Modules {
		for _, d := range m.Decls {
			if err := validateDecl(d); err != nil {
				return fmt.Errorf("module %s: %w", m.Path, err)
			}
		}
	}
	return nil
}

func validateDecl(d Decl) error {
	switch v := d.(type) {
	case *FuncDecl:
		return validateStmts(v.Body)
	case *ClassDecl:
		if v.Constructor != nil {
			if err := validateStmts(v.Constructor.Body); err != nil {
				return err
			}
		}
		for _, m := range v.Methods {
			if err := validateStmts(m.Body); err != nil {
				return err
			}
		}
	case *ConstantDecl:
		if v.Init != nil {
			return validateExpr(v.Init)
		}
	}
	return nil
}

func validateStmts(stmts []Stmt) error {
	for _, s := range stmts {
		if err := validateStmt(s); err != nil {
			return err
		}
	}
	return nil
}

func validateStmt(s Stmt) error {
	switch v := s.(type) {
	case *VariableDeclaration:
		if v.FuncDecl != nil {
			if err := validateStmts(v.FuncDecl.Body); err != nil {
				return err
			}
		}
		if v.Init != nil {
			return validateExpr(v.Init)
		}
	case *ExpressionStatement:
		return validateExpr(v.Expr)
	case *Return:
		if v.Value != nil {
			return validateExpr(v.Value)
		}
	case *If:
		if err := validateExpr(v.Cond); err != nil {
			return err
		}
		if err := validateStmts(v.Then); err != nil {
			return err
		}
		return validateStmts(v.Else)
	case *While:
		if err := validateExpr(v.Cond); err != nil {
			return err
		}
		return validateStmts(v.Body)
	case *For:
		if v.Init != nil {
			if err := validateStmt(v.Init); err != nil {
				return err
			}
		}
		if v.Cond != nil {
			if err := validateExpr(v.Cond); err != nil {
				return err
			}
		}
		if v.Incr != nil {
			if err := validateExpr(v.Incr); err != nil {
				return err
			}
		}
		return validateStmts(v.Body)
	case *ForOf:
		if err := validateExpr(v.Iterable); err != nil {
			return err
		}
		return validateStmts(v.Body)
	case *Block:
		return validateStmts(v.Body)
	case *Throw:
		return validateExpr(v.Value)
	case *TryCatchFinally:
		if err := validateStmts(v.Try); err != nil {
			return err
		}
		if err := validateStmts(v.Catch); err != nil {
			return err
		}
		return validateStmts(v.Finally)
	}
	return nil
}

func validateExpr(e Expr) error {
	if e == nil {
		return fmt.Errorf("nil expression")
	}
	if e.Type() == nil {
		return fmt.Errorf("node %d: expression has nil type", e.ID())
	}
	switch v := e.(type) {
	case *Binary:
		if err := validateExpr(v.Left); err != nil {
			return err
		}
		return validateExpr(v.Right)
	case *Unary:
		return validateExpr(v.Operand)
	case *Conditional:
		if err := validateExpr(v.Cond); err != nil {
			return err
		}
		if err := validateExpr(v.Then); err != nil {
			return err
		}
		return validateExpr(v.Else)
	case *Member:
		return validateExpr(v.Object)
	case *Index:
		if err := validateExpr(v.Object); err != nil {
			return err
		}
		return validateExpr(v.Idx)
	case *Call:
		if err := validateExpr(v.Callee); err != nil {
			return err
		}
		return validateExprs(v.Args)
	case *MethodCall:
		if err := validateExpr(v.Object); err != nil {
			return err
		}
		return validateExprs(v.Args)
	case *New:
		return validateExprs(v.Args)
	case *ArrayLiteral:
		return validateExprs(v.Elements)
	case *ObjectLiteral:
		for _, f := range v.Fields {
			if err := validateExpr(f.Value); err != nil {
				return err
			}
		}
	case *Assignment:
		if err := validateExpr(v.Target); err != nil {
			return err
		}
		return validateExpr(v.Value)
	case *Move:
		return validateExpr(v.Source)
	case *Borrow:
		return validateExpr(v.Source)
	case *Lambda:
		return validateStmts(v.Body)
	case *TemplateLiteral:
		return validateExprs(v.Exprs)
	case *Await:
		return validateExpr(v.Promise)
	}
	return nil
}

func validateExprs(es []Expr) error {
	for _, e := range es {
		if err := validateExpr(e); err != nil {
			return err
		}
	}
	return nil
}
