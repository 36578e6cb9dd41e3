package codegen

import (
	"fmt"
	"strconv"

	"github.com/fcapolini/goodscript-sub002/internal/config"
	"github.com/fcapolini/goodscript-sub002/internal/diagnostics"
	"github.com/fcapolini/goodscript-sub002/internal/ir"
	"github.com/fcapolini/goodscript-sub002/internal/types"
)

func (g *Generator) emitExpr(e ir.Expr) string {
	switch v := e.(type) {
	case *ir.Literal:
		return g.emitLiteral(v)
	case *ir.Identifier:
		return mangleIdent(v.Name, v.Version)
	case *ir.Binary:
		return g.emitBinary(v)
	case *ir.Unary:
		return fmt.Sprintf("(%s%s)", v.Op, g.emitExpr(v.Operand))
	case *ir.Conditional:
		return g.emitConditional(v)
	case *ir.Member:
		return fmt.Sprintf("%s%s%s", g.emitExpr(v.Object), accessorOp(v.Object.Type(), g.mode), v.Name)
	case *ir.Index:
		return fmt.Sprintf("%s[%s]", g.emitExpr(v.Object), g.emitExpr(v.Idx))
	case *ir.Call:
		return fmt.Sprintf("%s(%s)", g.emitExpr(v.Callee), g.emitExprList(v.Args))
	case *ir.MethodCall:
		return g.emitMethodCall(v)
	case *ir.New:
		return g.emitNew(v)
	case *ir.ArrayLiteral:
		return fmt.Sprintf("%s{%s}", cppType(v.Typ, g.mode), g.emitExprList(v.Elements))
	case *ir.ObjectLiteral:
		return g.emitObjectLiteral(v)
	case *ir.Assignment:
		return fmt.Sprintf("(%s %s %s)", g.emitExpr(v.Target), v.Op, g.emitExpr(v.Value))
	case *ir.Move:
		return fmt.Sprintf("std::move(%s)", g.emitExpr(v.Source))
	case *ir.Borrow:
		return g.emitBorrow(v)
	case *ir.Lambda:
		return g.emitLambda(v)
	case *ir.TemplateLiteral:
		return g.emitTemplateLiteral(v)
	case *ir.Await:
		return fmt.Sprintf("(co_await %s)", g.emitExpr(v.Promise))
	default:
		g.diag.Add(diagnostics.GEN001, "unknown IR expression variant", nil, nil)
		return "/* unsupported expression */"
	}
}

func (g *Generator) emitExprList(es []ir.Expr) string {
	parts := make([]string, len(es))
	for i, e := range es {
		parts[i] = g.emitExpr(e)
	}
	return joinStrings(parts, ", ")
}

func (g *Generator) emitLiteral(v *ir.Literal) string {
	switch v.Kind {
	case ir.IntLit:
		return fmt.Sprintf("%d", int64(asFloat(v.Value)))
	case ir.FloatLit:
		return strconv.FormatFloat(asFloat(v.Value), 'g', -1, 64)
	case ir.StringLit:
		s, _ := v.Value.(string)
		return fmt.Sprintf("gs::String(%s)", strconv.Quote(s))
	case ir.BoolLit:
		if b, _ := v.Value.(bool); b {
			return "true"
		}
		return "false"
	case ir.NullLit:
		return "nullptr"
	case ir.UndefinedLit:
		return "gs::Undefined"
	default:
		return "/* unsupported literal */"
	}
}

func asFloat(v interface{}) float64 {
	f, _ := v.(float64)
	return f
}

// isStringType reports whether t renders to gs::String, used to route
// ===/!== to the runtime string-equality function (spec §4.5 "===/!==
// on strings delegate to the runtime string-equality function").
func isStringType(t types.Type) bool {
	p, ok := t.(*types.Primitive)
	return ok && p.Tag == types.StringTag
}

func (g *Generator) emitBinary(v *ir.Binary) string {
	left := g.emitExpr(v.Left)
	right := g.emitExpr(v.Right)
	if (v.Op == "===" || v.Op == "!==") && (isStringType(v.Left.Type()) || isStringType(v.Right.Type())) {
		eq := fmt.Sprintf("gs::String::equals(%s, %s)", left, right)
		if v.Op == "!==" {
			return fmt.Sprintf("(!%s)", eq)
		}
		return fmt.Sprintf("(%s)", eq)
	}
	op := v.Op
	if op == "===" {
		op = "=="
	} else if op == "!==" {
		op = "!="
	}
	return fmt.Sprintf("(%s %s %s)", left, op, right)
}

// emitConditional recognizes the single-evaluation optional-chaining
// pattern internal/lower builds — a Conditional whose condition is
// `tmp === null` and whose else-branch reads a member off the very
// same *ir.Assignment node by pointer identity — and emits it as an
// immediately-invoked lambda that binds the receiver once, rather than
// naively re-emitting the assignment on both the condition and the
// member access.
func (g *Generator) emitConditional(v *ir.Conditional) string {
	if assign, member, ok := optionalChainPattern(v); ok {
		return fmt.Sprintf(
			"([&]() -> %s { auto&& %s = %s; if (%s == nullptr) { return %s; } return %s%s%s; })()",
			cppType(v.Typ, g.mode),
			mangleIdent(identName(assign.Target), 0),
			g.emitExpr(assign.Value),
			mangleIdent(identName(assign.Target), 0),
			g.emitExpr(v.Then),
			mangleIdent(identName(assign.Target), 0),
			accessorOp(assign.Value.Type(), g.mode),
			member.Name,
		)
	}
	return fmt.Sprintf("(%s ? %s : %s)", g.emitExpr(v.Cond), g.emitExpr(v.Then), g.emitExpr(v.Else))
}

func optionalChainPattern(v *ir.Conditional) (*ir.Assignment, *ir.Member, bool) {
	bin, ok := v.Cond.(*ir.Binary)
	if !ok || bin.Op != "===" {
		return nil, nil, false
	}
	assign, ok := bin.Left.(*ir.Assignment)
	if !ok {
		return nil, nil, false
	}
	member, ok := v.Else.(*ir.Member)
	if !ok {
		return nil, nil, false
	}
	other, ok := member.Object.(*ir.Assignment)
	if !ok || other != assign {
		return nil, nil, false
	}
	return assign, member, true
}

func identName(e ir.Expr) string {
	if id, ok := e.(*ir.Identifier); ok {
		return id.Name
	}
	return "tmp"
}

// accessorOp selects `->` for pointer-like receivers and `.` for
// stack-value receivers, since ownership mode represents `value`-owned
// classes directly rather than behind a pointer.
func accessorOp(t types.Type, mode config.MemoryMode) string {
	if mode == config.GC {
		return "->"
	}
	switch v := t.(type) {
	case *types.Class:
		if v.Own == types.Value {
			return "."
		}
		return "->"
	case *types.Interface:
		if v.Own == types.Value {
			return "."
		}
		return "->"
	default:
		return "."
	}
}

func (g *Generator) emitMethodCall(v *ir.MethodCall) string {
	if v.Builtin != "" {
		if target, ok := builtinCall(v.Builtin); ok {
			return fmt.Sprintf("%s(%s)", target, g.emitExprList(v.Args))
		}
	}
	return fmt.Sprintf("%s%s%s(%s)", g.emitExpr(v.Object), accessorOp(v.Object.Type(), g.mode), v.Method, g.emitExprList(v.Args))
}

func (g *Generator) emitNew(v *ir.New) string {
	class, _ := v.Typ.(*types.Class)
	if g.mode == config.GC || class == nil {
		return fmt.Sprintf("gs::gc::make<%s>(%s)", v.ClassName, g.emitExprList(v.Args))
	}
	switch class.Own {
	case types.Share:
		return fmt.Sprintf("std::make_shared<%s>(%s)", v.ClassName, g.emitExprList(v.Args))
	case types.Own:
		return fmt.Sprintf("std::make_unique<%s>(%s)", v.ClassName, g.emitExprList(v.Args))
	default:
		return fmt.Sprintf("%s(%s)", v.ClassName, g.emitExprList(v.Args))
	}
}

func (g *Generator) emitObjectLiteral(v *ir.ObjectLiteral) string {
	parts := make([]string, len(v.Fields))
	for i, f := range v.Fields {
		parts[i] = fmt.Sprintf("{%s, %s}", strconv.Quote(f.Name), g.emitExpr(f.Value))
	}
	return fmt.Sprintf("gs::Property::object({%s})", joinStrings(parts, ", "))
}

func (g *Generator) emitBorrow(v *ir.Borrow) string {
	if g.mode == config.GC {
		return g.emitExpr(v.Source)
	}
	class, isClass := v.Source.Type().(*types.Class)
	if isClass && class.Own == types.Value {
		return fmt.Sprintf("(&%s)", g.emitExpr(v.Source))
	}
	return fmt.Sprintf("%s.get()", g.emitExpr(v.Source))
}

func (g *Generator) emitLambda(v *ir.Lambda) string {
	fn, _ := v.Typ.(*types.Function)
	params := make([]string, len(v.Params))
	for i, p := range v.Params {
		t := types.Type(nil)
		if fn != nil && i < len(fn.Params) {
			t = fn.Params[i]
		} else {
			t = p.Type
		}
		params[i] = fmt.Sprintf("%s %s", cppType(t, g.mode), mangleIdent(p.Name, 0))
	}
	ret := "void"
	if fn != nil {
		ret = cppType(fn.Return, g.mode)
	}
	var b bodyBuilder
	b.indent = 1
	g.emitStmts(v.Body, &b)
	return fmt.Sprintf("[%s](%s) -> %s {\n%s}", joinStrings(v.Captures, ", "), joinStrings(params, ", "), ret, b.String())
}

func (g *Generator) emitTemplateLiteral(v *ir.TemplateLiteral) string {
	var parts []string
	for i, p := range v.Parts {
		parts = append(parts, fmt.Sprintf("gs::String(%s)", strconv.Quote(p)))
		if i < len(v.Exprs) {
			parts = append(parts, fmt.Sprintf("gs::toString(%s)", g.emitExpr(v.Exprs[i])))
		}
	}
	if len(parts) == 0 {
		return "gs::String(\"\")"
	}
	return "(" + joinStrings(parts, " + ") + ")"
}
