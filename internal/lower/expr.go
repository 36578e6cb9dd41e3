package lower

import (
	"math"

	"github.com/fcapolini/goodscript-sub002/internal/ast"
	"github.com/fcapolini/goodscript-sub002/internal/diagnostics"
	"github.com/fcapolini/goodscript-sub002/internal/ir"
	"github.com/fcapolini/goodscript-sub002/internal/types"
)

// lowerExprAs lowers e with want as the receiving context's declared
// type, used only to narrow untyped number literals (spec §4.3
// "Literals": "unless the receiving context or annotation is
// integer/integer53, in which case the literal is narrowed").
func (l *Lowerer) lowerExprAs(e ast.Expr, want types.Type) ir.Expr {
	if lit, ok := e.(*ast.Literal); ok && (lit.Kind == ast.IntLit || lit.Kind == ast.FloatLit) {
		return l.lowerNumberLiteral(lit, want)
	}
	return l.lowerExpr(e)
}

func (l *Lowerer) lowerExpr(e ast.Expr) ir.Expr {
	switch v := e.(type) {
	case *ast.Literal:
		if v.Kind == ast.IntLit || v.Kind == ast.FloatLit {
			return l.lowerNumberLiteral(v, v.Typ)
		}
		return l.lowerSimpleLiteral(v)

	case *ast.Identifier:
		return &ir.Identifier{Node: l.b.NewNode(v.Pos), Name: v.Name, Typ: l.normalizeType(v.Typ)}

	case *ast.BinaryExpr:
		return l.lowerBinary(v)

	case *ast.UnaryExpr:
		n := l.b.NewNode(v.Pos)
		return &ir.Unary{Node: n, Op: v.Op, Operand: l.lowerExpr(v.Operand), Typ: l.normalizeType(v.Typ)}

	case *ast.ConditionalExpr:
		n := l.b.NewNode(v.Pos)
		return &ir.Conditional{
			Node: n,
			Cond: l.lowerExpr(v.Cond),
			Then: l.lowerExpr(v.Then),
			Else: l.lowerExpr(v.Else),
			Typ:  l.normalizeType(v.Typ),
		}

	case *ast.MemberExpr:
		return l.lowerMember(v)

	case *ast.IndexExpr:
		n := l.b.NewNode(v.Pos)
		return &ir.Index{Node: n, Object: l.lowerExpr(v.Object), Idx: l.lowerExpr(v.Index), Typ: l.normalizeType(v.Typ)}

	case *ast.CallExpr:
		n := l.b.NewNode(v.Pos)
		return &ir.Call{Node: n, Callee: l.lowerExpr(v.Callee), Args: l.lowerExprs(v.Args), Typ: l.normalizeType(v.Typ)}

	case *ast.MethodCallExpr:
		n := l.b.NewNode(v.Pos)
		builtin := v.Builtin
		if builtin == "" {
			builtin = builtinTag(v.Object, v.Method)
		}
		return &ir.MethodCall{
			Node:    n,
			Object:  l.lowerExpr(v.Object),
			Method:  v.Method,
			Args:    l.lowerExprs(v.Args),
			Builtin: builtin,
			Typ:     l.normalizeType(v.Typ),
		}

	case *ast.NewExpr:
		n := l.b.NewNode(v.Pos)
		typeArgs := make([]types.Type, len(v.TypeArgs))
		for i, t := range v.TypeArgs {
			typeArgs[i] = l.normalizeType(t)
		}
		return &ir.New{Node: n, ClassName: v.ClassName, Args: l.lowerExprs(v.Args), TypeArgs: typeArgs, Typ: l.normalizeType(v.Typ)}

	case *ast.ArrayLiteralExpr:
		n := l.b.NewNode(v.Pos)
		return &ir.ArrayLiteral{Node: n, Elements: l.lowerExprs(v.Elements), Typ: l.normalizeType(v.Typ)}

	case *ast.ObjectLiteralExpr:
		n := l.b.NewNode(v.Pos)
		fields := make([]ir.ObjectField, len(v.Fields))
		for i, f := range v.Fields {
			fields[i] = ir.ObjectField{Name: f.Name, Value: l.lowerExpr(f.Value)}
		}
		return &ir.ObjectLiteral{Node: n, Fields: fields, Typ: l.normalizeType(v.Typ)}

	case *ast.AssignmentExpr:
		n := l.b.NewNode(v.Pos)
		return &ir.Assignment{Node: n, Target: l.lowerExpr(v.Target), Value: l.lowerExpr(v.Value), Op: v.Op, Typ: l.normalizeType(v.Typ)}

	case *ast.LambdaExpr:
		return l.lowerLambda(v)

	case *ast.TemplateLiteralExpr:
		n := l.b.NewNode(v.Pos)
		parts := make([]string, len(v.Parts))
		copy(parts, v.Parts)
		return &ir.TemplateLiteral{Node: n, Parts: parts, Exprs: l.lowerExprs(v.Exprs), Typ: l.normalizeType(v.Typ)}

	case *ast.AwaitExpr:
		if l.asyncDepth == 0 {
			l.diag.Add(diagnostics.LOW005, "await used outside an async function", span(v.Pos), nil)
		}
		n := l.b.NewNode(v.Pos)
		return &ir.Await{Node: n, Promise: l.lowerExpr(v.Promise), Typ: l.normalizeType(v.Typ)}

	default:
		l.diag.Add(diagnostics.LOW001, "unsupported expression", span(e.Position()), nil)
		n := l.b.NewNode(e.Position())
		return &ir.Literal{Node: n, Kind: ir.UndefinedLit, Typ: types.TVoid}
	}
}

func (l *Lowerer) lowerExprs(es []ast.Expr) []ir.Expr {
	out := make([]ir.Expr, len(es))
	for i, e := range es {
		out[i] = l.lowerExpr(e)
	}
	return out
}

func (l *Lowerer) lowerSimpleLiteral(v *ast.Literal) ir.Expr {
	n := l.b.NewNode(v.Pos)
	kind := map[ast.LiteralKind]ir.LitKind{
		ast.StringLit:    ir.StringLit,
		ast.BoolLit:      ir.BoolLit,
		ast.NullLit:      ir.NullLit,
		ast.UndefinedLit: ir.UndefinedLit,
	}[v.Kind]
	return &ir.Literal{Node: n, Kind: kind, Value: v.Value, Typ: l.normalizeType(v.Typ)}
}

// lowerNumberLiteral narrows a number literal to integer/integer53 when
// the receiving type demands it, raising LOW006 when the literal value
// is not integral or lies outside the 32-bit (integer) or ±(2^53−1)
// (integer53) range (spec §4.3: "narrowing fails if the literal is not
// integral within range").
func (l *Lowerer) lowerNumberLiteral(v *ast.Literal, want types.Type) ir.Expr {
	n := l.b.NewNode(v.Pos)
	prim, _ := want.(*types.Primitive)
	wantsInt := prim != nil && (prim.Tag == types.Integer || prim.Tag == types.Integer53)
	if !wantsInt {
		return &ir.Literal{Node: n, Kind: ir.FloatLit, Value: v.Value, Typ: types.TNumber}
	}

	f, ok := v.Value.(float64)
	if !ok || f != math.Trunc(f) {
		l.diag.Add(diagnostics.LOW006, "integer literal is not integral", span(v.Pos), map[string]any{"value": v.Value})
		return &ir.Literal{Node: n, Kind: ir.FloatLit, Value: v.Value, Typ: types.TNumber}
	}
	if prim.Tag == types.Integer53 && (f < -(1<<53-1) || f > (1<<53-1)) {
		l.diag.Add(diagnostics.LOW006, "integer literal out of integer53 range", span(v.Pos), map[string]any{"value": v.Value})
	}
	if prim.Tag == types.Integer && (f < math.MinInt32 || f > math.MaxInt32) {
		l.diag.Add(diagnostics.LOW006, "integer literal out of integer range", span(v.Pos), map[string]any{"value": v.Value})
	}
	return &ir.Literal{Node: n, Kind: ir.IntLit, Value: v.Value, Typ: want}
}

// arithmeticPromote implements spec §4.3 "Arithmetic on mixed
// integer/number promotes to number".
func arithmeticPromote(a, b types.Type) types.Type {
	ap, aok := a.(*types.Primitive)
	bp, bok := b.(*types.Primitive)
	if !aok || !bok {
		return a
	}
	if ap.Tag == types.Number || bp.Tag == types.Number {
		return types.TNumber
	}
	if ap.Tag != bp.Tag {
		return types.TNumber
	}
	return a
}

var arithmeticOps = map[string]bool{"+": true, "-": true, "*": true, "/": true, "%": true}

func (l *Lowerer) lowerBinary(v *ast.BinaryExpr) ir.Expr {
	n := l.b.NewNode(v.Pos)
	left := l.lowerExpr(v.Left)
	right := l.lowerExpr(v.Right)
	typ := l.normalizeType(v.Typ)
	if arithmeticOps[v.Op] && typ == nil {
		typ = arithmeticPromote(left.Type(), right.Type())
	}
	return &ir.Binary{Node: n, Op: v.Op, Left: left, Right: right, Typ: typ}
}

func (l *Lowerer) lowerMember(v *ast.MemberExpr) ir.Expr {
	n := l.b.NewNode(v.Pos)
	object := l.lowerExpr(v.Object)
	typ := l.normalizeType(v.Typ)
	member := &ir.Member{Node: n, Object: object, Name: v.Name, Typ: typ}
	if !v.Optional {
		return member
	}

	// Optional chaining lowers to a guarded conditional that evaluates
	// the receiver once, short-circuiting to undefined on null/undefined
	// (spec §4.3 "Optional chaining"). The receiver is bound to a
	// synthetic single-evaluation temporary (spec §9 Open Question: "one
	// synthetic temporary, left-to-right at-most-once").
	tempName := "$opt" + identSuffix(n.NodeID)
	assignTemp := &ir.Assignment{
		Node:   l.b.NewNode(v.Pos),
		Target: l.b.Ident(v.Pos, tempName, object.Type()),
		Value:  object,
		Op:     "=",
		Typ:    object.Type(),
	}
	guardedMember := &ir.Member{Node: l.b.NewNode(v.Pos), Object: assignTemp, Name: v.Name, Typ: typ}
	isNull := &ir.Binary{
		Node:  l.b.NewNode(v.Pos),
		Op:    "===",
		Left:  assignTemp,
		Right: &ir.Literal{Node: l.b.NewNode(v.Pos), Kind: ir.NullLit, Typ: object.Type()},
		Typ:   types.TBoolean,
	}
	undef := &ir.Literal{Node: l.b.NewNode(v.Pos), Kind: ir.UndefinedLit, Typ: typ}
	return &ir.Conditional{Node: l.b.NewNode(v.Pos), Cond: isNull, Then: undef, Else: guardedMember, Typ: typ}
}

func identSuffix(id uint64) string {
	digits := "0123456789"
	if id == 0 {
		return "0"
	}
	var buf []byte
	for id > 0 {
		buf = append([]byte{digits[id%10]}, buf...)
		id /= 10
	}
	return string(buf)
}

func (l *Lowerer) lowerLambda(v *ast.LambdaExpr) ir.Expr {
	n := l.b.NewNode(v.Pos)
	l.pushScope(paramNames(v.Params))
	if v.Async {
		l.asyncDepth++
	}
	body := l.lowerStmts(v.Body)
	if v.Async {
		l.asyncDepth--
	}
	captures := l.captures(body, v.Params)
	l.popScope()

	return &ir.Lambda{Node: n, Params: l.lowerParams(v.Params), Body: body, Captures: captures, Typ: l.normalizeType(v.Typ)}
}

// captures computes the free-variable set of a lambda body: every
// identifier referenced that is neither a lambda parameter nor a local
// declared inside the lambda, restricted to names actually bound by an
// enclosing scope (so a reference to a global function or class name
// is not mistaken for a capture).
func (l *Lowerer) captures(body []ir.Stmt, params []*ast.Param) []string {
	bound := map[string]bool{}
	for _, p := range params {
		bound[p.Name] = true
	}
	collectBoundNames(body, bound)

	refs := map[string]bool{}
	collectIdentRefs(body, refs)

	var free []string
	for name := range refs {
		if bound[name] {
			continue
		}
		if l.enclosingBound(name) {
			free = append(free, name)
		}
	}
	sortStrings(free)
	return free
}

func sortStrings(s []string) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}
