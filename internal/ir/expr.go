package ir

import "github.com/fcapolini/goodscript-sub002/internal/types"

// LitKind enumerates IR literal kinds.
type LitKind int

const (
	IntLit LitKind = iota
	FloatLit
	StringLit
	BoolLit
	NullLit
	UndefinedLit
)

// Literal is a constant value (spec §3 IRExpression "literal").
type Literal struct {
	Node
	Kind  LitKind
	Value interface{}
	Typ   types.Type
}

func (l *Literal) exprNode()       {}
func (l *Literal) Type() types.Type { return l.Typ }

// Identifier is a variable/function reference, optionally carrying an SSA
// version assigned by the Builder (spec §3 invariant 2).
type Identifier struct {
	Node
	Name    string
	Version int
	Typ     types.Type
}

func (i *Identifier) exprNode()       {}
func (i *Identifier) Type() types.Type { return i.Typ }

// Binary is a binary operator application.
type Binary struct {
	Node
	Op    string
	Left  Expr
	Right Expr
	Typ   types.Type
}

func (b *Binary) exprNode()       {}
func (b *Binary) Type() types.Type { return b.Typ }

// Unary is a unary operator application.
type Unary struct {
	Node
	Op      string
	Operand Expr
	Typ     types.Type
}

func (u *Unary) exprNode()       {}
func (u *Unary) Type() types.Type { return u.Typ }

// Conditional is `cond ? then : else`.
type Conditional struct {
	Node
	Cond Expr
	Then Expr
	Else Expr
	Typ  types.Type
}

func (c *Conditional) exprNode()       {}
func (c *Conditional) Type() types.Type { return c.Typ }

// Member is `object.name`, optionally guarded (lowered optional chaining
// becomes a Conditional wrapping a Member — see internal/lower).
type Member struct {
	Node
	Object Expr
	Name   string
	Typ    types.Type
}

func (m *Member) exprNode()       {}
func (m *Member) Type() types.Type { return m.Typ }

// Index is `object[index]`.
type Index struct {
	Node
	Object Expr
	Idx    Expr
	Typ    types.Type
}

func (i *Index) exprNode()       {}
func (i *Index) Type() types.Type { return i.Typ }

// Call is a bare function call.
type Call struct {
	Node
	Callee Expr
	Args   []Expr
	Typ    types.Type
}

func (c *Call) exprNode()       {}
func (c *Call) Type() types.Type { return c.Typ }

// MethodCall is `object.method(args)`. Builtin, when non-empty, is the
// recognized fully-qualified runtime symbol (spec §4.3, §4.5: "Calls into
// recognized built-in fully-qualified names").
type MethodCall struct {
	Node
	Object  Expr
	Method  string
	Args    []Expr
	Builtin string
	Typ     types.Type
}

func (m *MethodCall) exprNode()       {}
func (m *MethodCall) Type() types.Type { return m.Typ }

// New is `new ClassName(args)`.
type New struct {
	Node
	ClassName string
	Args      []Expr
	TypeArgs  []types.Type
	Typ       types.Type
}

func (n *New) exprNode()       {}
func (n *New) Type() types.Type { return n.Typ }

// ArrayLiteral is `[e1, e2, ...]`.
type ArrayLiteral struct {
	Node
	Elements []Expr
	Typ      types.Type
}

func (a *ArrayLiteral) exprNode()       {}
func (a *ArrayLiteral) Type() types.Type { return a.Typ }

// ObjectField is one `name: value` entry.
type ObjectField struct {
	Name  string
	Value Expr
}

// ObjectLiteral is `{ name: value, ... }`, backed by gs::Property fields
// (spec §6 runtime surface).
type ObjectLiteral struct {
	Node
	Fields []ObjectField
	Typ    types.Type
}

func (o *ObjectLiteral) exprNode()       {}
func (o *ObjectLiteral) Type() types.Type { return o.Typ }

// Assignment is `target op= value`.
type Assignment struct {
	Node
	Target Expr
	Value  Expr
	Op     string
	Typ    types.Type
}

func (a *Assignment) exprNode()       {}
func (a *Assignment) Type() types.Type { return a.Typ }

// Move explicitly transfers ownership of Source (ownership mode only;
// spec §3 IRExpression "move").
type Move struct {
	Node
	Source Expr
	Typ    types.Type
}

func (m *Move) exprNode()       {}
func (m *Move) Type() types.Type { return m.Typ }

// Borrow takes a non-owning reference to Source (spec §3 IRExpression
// "borrow").
type Borrow struct {
	Node
	Source Expr
	Typ    types.Type
}

func (b *Borrow) exprNode()       {}
func (b *Borrow) Type() types.Type { return b.Typ }

// Lambda is a function value. Captures holds the free-variable set
// computed during lowering, consumed by the hoisting pass and by closure
// emission in the generator (spec §4.3 "Function/arrow/lambda").
type Lambda struct {
	Node
	Params   []*Param
	Body     []Stmt
	Captures []string
	Typ      types.Type
}

func (l *Lambda) exprNode()       {}
func (l *Lambda) Type() types.Type { return l.Typ }

// TemplateLiteral lowers to a left-fold of concatenations at emission
// time (spec §4.3, §4.5); the IR keeps the parts/expressions split so
// the generator can choose the concrete fold.
type TemplateLiteral struct {
	Node
	Parts []string
	Exprs []Expr
	Typ   types.Type
}

func (t *TemplateLiteral) exprNode()       {}
func (t *TemplateLiteral) Type() types.Type { return t.Typ }

// Await is `await promise`, lowered to `co_await` by the generator (spec
// §4.6).
type Await struct {
	Node
	Promise Expr
	Typ     types.Type
}

func (a *Await) exprNode()       {}
func (a *Await) Type() types.Type { return a.Typ }
