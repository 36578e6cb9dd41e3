package ast

import "github.com/fcapolini/goodscript-sub002/internal/types"

// Expr is the closed set of surface expression kinds. Every expression
// already carries its resolved Type (spec §6 input contract: "a type for
// every expression and declaration").
type Expr interface {
	Node
	Type() types.Type
	exprNode()
}

// LiteralKind enumerates the syntactic form of a Literal.
type LiteralKind int

const (
	IntLit LiteralKind = iota
	FloatLit
	StringLit
	BoolLit
	NullLit
	UndefinedLit
)

// Literal is a literal value. A number literal narrows to Integer or
// Integer53 only when the receiving context/annotation requests it (spec
// §4.3 "Literals").
type Literal struct {
	Kind  LiteralKind
	Value interface{}
	Typ   types.Type
	Pos   Pos
}

func (l *Literal) Position() Pos    { return l.Pos }
func (l *Literal) Type() types.Type { return l.Typ }
func (l *Literal) exprNode()        {}

// Identifier is a variable/function reference.
type Identifier struct {
	Name string
	Typ  types.Type
	Pos  Pos
}

func (i *Identifier) Position() Pos    { return i.Pos }
func (i *Identifier) Type() types.Type { return i.Typ }
func (i *Identifier) exprNode()        {}

// BinaryExpr is a binary operator application.
type BinaryExpr struct {
	Op    string
	Left  Expr
	Right Expr
	Typ   types.Type
	Pos   Pos
}

func (b *BinaryExpr) Position() Pos    { return b.Pos }
func (b *BinaryExpr) Type() types.Type { return b.Typ }
func (b *BinaryExpr) exprNode()        {}

// UnaryExpr is a unary operator application.
type UnaryExpr struct {
	Op      string
	Operand Expr
	Typ     types.Type
	Pos     Pos
}

func (u *UnaryExpr) Position() Pos    { return u.Pos }
func (u *UnaryExpr) Type() types.Type { return u.Typ }
func (u *UnaryExpr) exprNode()        {}

// ConditionalExpr is `cond ? then : else`.
type ConditionalExpr struct {
	Cond Expr
	Then Expr
	Else Expr
	Typ  types.Type
	Pos  Pos
}

func (c *ConditionalExpr) Position() Pos    { return c.Pos }
func (c *ConditionalExpr) Type() types.Type { return c.Typ }
func (c *ConditionalExpr) exprNode()        {}

// MemberExpr is `object.name`, optionally guarded by `?.` (spec §4.3
// "Optional chaining").
type MemberExpr struct {
	Object   Expr
	Name     string
	Optional bool
	Typ      types.Type
	Pos      Pos
}

func (m *MemberExpr) Position() Pos    { return m.Pos }
func (m *MemberExpr) Type() types.Type { return m.Typ }
func (m *MemberExpr) exprNode()        {}

// IndexExpr is `object[index]`.
type IndexExpr struct {
	Object Expr
	Index  Expr
	Typ    types.Type
	Pos    Pos
}

func (i *IndexExpr) Position() Pos    { return i.Pos }
func (i *IndexExpr) Type() types.Type { return i.Typ }
func (i *IndexExpr) exprNode()        {}

// CallExpr is a bare function call.
type CallExpr struct {
	Callee Expr
	Args   []Expr
	Typ    types.Type
	Pos    Pos
}

func (c *CallExpr) Position() Pos    { return c.Pos }
func (c *CallExpr) Type() types.Type { return c.Typ }
func (c *CallExpr) exprNode()        {}

// MethodCallExpr is `object.method(args)`, distinguished from CallExpr
// because dispatch needs the receiver type for operator selection (spec
// §4.3 "Method calls"). Builtin, if non-empty, is the recognized
// fully-qualified name (e.g. "Math.sqrt") tagged by the upstream checker.
type MethodCallExpr struct {
	Object  Expr
	Method  string
	Args    []Expr
	Builtin string
	Typ     types.Type
	Pos     Pos
}

func (m *MethodCallExpr) Position() Pos    { return m.Pos }
func (m *MethodCallExpr) Type() types.Type { return m.Typ }
func (m *MethodCallExpr) exprNode()        {}

// NewExpr is `new ClassName(args)`.
type NewExpr struct {
	ClassName string
	Args      []Expr
	TypeArgs  []types.Type
	Typ       types.Type
	Pos       Pos
}

func (n *NewExpr) Position() Pos    { return n.Pos }
func (n *NewExpr) Type() types.Type { return n.Typ }
func (n *NewExpr) exprNode()        {}

// ArrayLiteralExpr is `[e1, e2, ...]`.
type ArrayLiteralExpr struct {
	Elements []Expr
	Typ      types.Type
	Pos      Pos
}

func (a *ArrayLiteralExpr) Position() Pos    { return a.Pos }
func (a *ArrayLiteralExpr) Type() types.Type { return a.Typ }
func (a *ArrayLiteralExpr) exprNode()        {}

// ObjectField is one `name: value` entry of an object literal.
type ObjectField struct {
	Name  string
	Value Expr
}

// ObjectLiteralExpr is `{ name: value, ... }`.
type ObjectLiteralExpr struct {
	Fields []ObjectField
	Typ    types.Type
	Pos    Pos
}

func (o *ObjectLiteralExpr) Position() Pos    { return o.Pos }
func (o *ObjectLiteralExpr) Type() types.Type { return o.Typ }
func (o *ObjectLiteralExpr) exprNode()        {}

// AssignmentExpr is `target op= value`.
type AssignmentExpr struct {
	Target Expr
	Value  Expr
	Op     string // "=", "+=", ...
	Typ    types.Type
	Pos    Pos
}

func (a *AssignmentExpr) Position() Pos    { return a.Pos }
func (a *AssignmentExpr) Type() types.Type { return a.Typ }
func (a *AssignmentExpr) exprNode()        {}

// LambdaExpr is a function/arrow/lambda expression. Captures holds
// whatever the input supplies; the lowerer does not read or fill it and
// computes ir.Lambda.Captures with its own free-variable analysis (spec
// §4.3 "Function/arrow/lambda").
type LambdaExpr struct {
	Params     []*Param
	ReturnType types.Type
	Body       []Stmt
	Async      bool
	Captures   []string
	Typ        types.Type
	Pos        Pos
}

func (l *LambdaExpr) Position() Pos    { return l.Pos }
func (l *LambdaExpr) Type() types.Type { return l.Typ }
func (l *LambdaExpr) exprNode()        {}

// TemplateLiteralExpr is a template string: Parts has len(Exprs)+1
// entries, interleaved as Parts[0] Exprs[0] Parts[1] Exprs[1] ... (spec
// §4.3 "Template literals").
type TemplateLiteralExpr struct {
	Parts []string
	Exprs []Expr
	Typ   types.Type
	Pos   Pos
}

func (t *TemplateLiteralExpr) Position() Pos    { return t.Pos }
func (t *TemplateLiteralExpr) Type() types.Type { return t.Typ }
func (t *TemplateLiteralExpr) exprNode()        {}

// AwaitExpr is `await promise`.
type AwaitExpr struct {
	Promise Expr
	Typ     types.Type
	Pos     Pos
}

func (a *AwaitExpr) Position() Pos    { return a.Pos }
func (a *AwaitExpr) Type() types.Type { return a.Typ }
func (a *AwaitExpr) exprNode()        {}
