package ast

import "github.com/fcapolini/goodscript-sub002/internal/types"

// Stmt is the closed set of surface statement kinds (spec §3
// IRStatement, mirrored at the surface level since the checker types
// statements too).
type Stmt interface {
	Node
	stmtNode()
}

// VarDeclStmt is `let`/`const name: T = init`.
type VarDeclStmt struct {
	Name  string
	Type  types.Type
	Init  Expr // nil if uninitialized
	Const bool
	Pos   Pos
}

func (v *VarDeclStmt) Position() Pos { return v.Pos }
func (v *VarDeclStmt) stmtNode()     {}

// FuncDeclStmt is a nested named function declaration appearing inside a
// statement list — the hoisting pass (spec §4.4) operates on these.
type FuncDeclStmt struct {
	Decl *FuncDecl
	Pos  Pos
}

func (f *FuncDeclStmt) Position() Pos { return f.Pos }
func (f *FuncDeclStmt) stmtNode()     {}

// ExprStmt wraps an expression used as a statement.
type ExprStmt struct {
	Expr Expr
	Pos  Pos
}

func (e *ExprStmt) Position() Pos { return e.Pos }
func (e *ExprStmt) stmtNode()     {}

// ReturnStmt is `return value;` or bare `return;` (Value is nil).
type ReturnStmt struct {
	Value Expr
	Pos   Pos
}

func (r *ReturnStmt) Position() Pos { return r.Pos }
func (r *ReturnStmt) stmtNode()     {}

// IfStmt is `if (cond) { then } else { else }`.
type IfStmt struct {
	Cond Expr
	Then []Stmt
	Else []Stmt // nil if absent
	Pos  Pos
}

func (i *IfStmt) Position() Pos { return i.Pos }
func (i *IfStmt) stmtNode()     {}

// WhileStmt is `while (cond) { body }`.
type WhileStmt struct {
	Cond Expr
	Body []Stmt
	Pos  Pos
}

func (w *WhileStmt) Position() Pos { return w.Pos }
func (w *WhileStmt) stmtNode()     {}

// ForStmt is a C-style `for (init; cond; incr) { body }`; any clause may
// be nil.
type ForStmt struct {
	Init Stmt
	Cond Expr
	Incr Expr
	Body []Stmt
	Pos  Pos
}

func (f *ForStmt) Position() Pos { return f.Pos }
func (f *ForStmt) stmtNode()     {}

// ForOfStmt is `for (const name of iterable) { body }`.
type ForOfStmt struct {
	Name     string
	Iterable Expr
	Body     []Stmt
	Pos      Pos
}

func (f *ForOfStmt) Position() Pos { return f.Pos }
func (f *ForOfStmt) stmtNode()     {}

// BlockStmt is a bare `{ ... }` block.
type BlockStmt struct {
	Body []Stmt
	Pos  Pos
}

func (b *BlockStmt) Position() Pos { return b.Pos }
func (b *BlockStmt) stmtNode()     {}

// ThrowStmt is `throw value;`.
type ThrowStmt struct {
	Value Expr
	Pos   Pos
}

func (t *ThrowStmt) Position() Pos { return t.Pos }
func (t *ThrowStmt) stmtNode()     {}

// TryStmt is `try { } catch (param) { } finally { }`; Catch/Finally
// may be nil when absent.
type TryStmt struct {
	Try        []Stmt
	CatchParam string // "" if no binding
	HasCatch   bool
	Catch      []Stmt
	Finally    []Stmt
	Pos        Pos
}

func (t *TryStmt) Position() Pos { return t.Pos }
func (t *TryStmt) stmtNode()     {}

// BreakStmt is `break;`.
type BreakStmt struct{ Pos Pos }

func (b *BreakStmt) Position() Pos { return b.Pos }
func (b *BreakStmt) stmtNode()     {}

// ContinueStmt is `continue;`.
type ContinueStmt struct{ Pos Pos }

func (c *ContinueStmt) Position() Pos { return c.Pos }
func (c *ContinueStmt) stmtNode()     {}
