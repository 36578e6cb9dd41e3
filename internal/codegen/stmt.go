package codegen

import (
	"fmt"
	"strings"

	"github.com/fcapolini/goodscript-sub002/internal/diagnostics"
	"github.com/fcapolini/goodscript-sub002/internal/ir"
)

// bodyBuilder accumulates a function body's text with tab indentation
// tracked across nested blocks.
type bodyBuilder struct {
	b      strings.Builder
	indent int
}

func (bb *bodyBuilder) line(format string, args ...interface{}) {
	bb.b.WriteString(strings.Repeat("  ", bb.indent))
	fmt.Fprintf(&bb.b, format, args...)
	bb.b.WriteString("\n")
}

func (bb *bodyBuilder) String() string { return bb.b.String() }

func (g *Generator) emitStmts(stmts []ir.Stmt, bb *bodyBuilder) {
	for _, s := range stmts {
		g.emitStmt(s, bb)
	}
}

func (g *Generator) emitStmt(s ir.Stmt, bb *bodyBuilder) {
	switch v := s.(type) {
	case *ir.VariableDeclaration:
		g.emitVarDecl(v, bb)
	case *ir.ExpressionStatement:
		bb.line("%s;", g.emitExpr(v.Expr))
	case *ir.Return:
		kw := "return"
		if g.inAsync {
			kw = "co_return"
		}
		if v.Value == nil {
			bb.line("%s;", kw)
		} else {
			bb.line("%s %s;", kw, g.emitExpr(v.Value))
		}
	case *ir.If:
		bb.line("if (%s) {", g.emitExpr(v.Cond))
		bb.indent++
		g.emitStmts(v.Then, bb)
		bb.indent--
		if len(v.Else) > 0 {
			bb.line("} else {")
			bb.indent++
			g.emitStmts(v.Else, bb)
			bb.indent--
		}
		bb.line("}")
	case *ir.While:
		bb.line("while (%s) {", g.emitExpr(v.Cond))
		bb.indent++
		g.emitStmts(v.Body, bb)
		bb.indent--
		bb.line("}")
	case *ir.For:
		bb.line("for (%s; %s; %s) {", g.emitForInit(v.Init), g.emitOptExpr(v.Cond), g.emitOptExpr(v.Incr))
		bb.indent++
		g.emitStmts(v.Body, bb)
		bb.indent--
		bb.line("}")
	case *ir.ForOf:
		g.emitForOf(v, bb)
	case *ir.Block:
		bb.line("{")
		bb.indent++
		g.emitStmts(v.Body, bb)
		bb.indent--
		bb.line("}")
	case *ir.Throw:
		bb.line("throw %s;", g.emitExpr(v.Value))
	case *ir.TryCatchFinally:
		g.emitTry(v, bb)
	case *ir.Break:
		bb.line("break;")
	case *ir.Continue:
		bb.line("continue;")
	default:
		g.diag.Add(diagnostics.GEN001, "unknown IR statement variant", nil, nil)
		bb.line("/* unsupported statement */")
	}
}

func (g *Generator) emitVarDecl(v *ir.VariableDeclaration, bb *bodyBuilder) {
	if v.IsFuncDecl && v.FuncDecl != nil {
		if v.FuncDecl.Hoisted {
			// Relocated to module scope by the hoisting pass; nothing to
			// emit at this call site.
			return
		}
		bb.line("auto %s = %s;", mangleIdent(v.Name, 0), g.emitLambdaFromFunc(v.FuncDecl))
		return
	}
	qualifier := "auto"
	if v.Const {
		qualifier = "const auto"
	}
	if v.Init == nil {
		bb.line("%s %s;", qualifier, mangleIdent(v.Name, 0))
		return
	}
	bb.line("%s %s = %s;", qualifier, mangleIdent(v.Name, 0), g.emitExpr(v.Init))
}

// emitLambdaFromFunc renders a nested (non-hoisted) named function
// declaration as a capturing C++ lambda bound to a local variable,
// since the IR models it as a VariableDeclaration initialized by its
// FuncDecl body rather than a Lambda expression.
func (g *Generator) emitLambdaFromFunc(fn *ir.FuncDecl) string {
	params := make([]string, len(fn.Params))
	for i, p := range fn.Params {
		params[i] = fmt.Sprintf("%s %s", cppType(p.Type, g.mode), mangleIdent(p.Name, 0))
	}
	var b bodyBuilder
	b.indent = 1
	g.emitStmts(fn.Body, &b)
	return fmt.Sprintf("[&](%s) -> %s {\n%s}", joinStrings(params, ", "), cppType(fn.ReturnType, g.mode), b.String())
}

func (g *Generator) emitForInit(s ir.Stmt) string {
	if s == nil {
		return ""
	}
	switch v := s.(type) {
	case *ir.VariableDeclaration:
		qualifier := "auto"
		if v.Const {
			qualifier = "const auto"
		}
		return fmt.Sprintf("%s %s = %s", qualifier, mangleIdent(v.Name, 0), g.emitExpr(v.Init))
	case *ir.ExpressionStatement:
		return g.emitExpr(v.Expr)
	default:
		return ""
	}
}

func (g *Generator) emitOptExpr(e ir.Expr) string {
	if e == nil {
		return ""
	}
	return g.emitExpr(e)
}

func (g *Generator) emitForOf(v *ir.ForOf, bb *bodyBuilder) {
	// Iteration over a string is by Unicode scalar value, not byte (spec
	// §4.5 "for … of over a string iterates by Unicode scalar value, not
	// byte"); gs::String exposes a codepoint range for this purpose.
	if isStringType(v.Iterable.Type()) {
		bb.line("for (auto %s : %s.codepoints()) {", mangleIdent(v.Name, 0), g.emitExpr(v.Iterable))
	} else {
		bb.line("for (auto&& %s : %s) {", mangleIdent(v.Name, 0), g.emitExpr(v.Iterable))
	}
	bb.indent++
	g.emitStmts(v.Body, bb)
	bb.indent--
	bb.line("}")
}

func (g *Generator) emitTry(v *ir.TryCatchFinally, bb *bodyBuilder) {
	if len(v.Finally) > 0 {
		// Emitted as a scope-exit guard rather than a native C++ finally
		// (which does not exist); gs::finally constructs an RAII guard
		// that runs its lambda on scope exit regardless of exception.
		// The guard is built first, inside an enclosing block, so that
		// leaving the try/catch by any route runs it.
		bb.line("{")
		bb.indent++
		bb.line("gs::finally _guard([&]() {")
		bb.indent++
		g.emitStmts(v.Finally, bb)
		bb.indent--
		bb.line("});")
	}
	bb.line("try {")
	bb.indent++
	g.emitStmts(v.Try, bb)
	bb.indent--
	if v.HasCatch {
		param := v.CatchParam
		if param == "" {
			param = "_"
		}
		bb.line("} catch (gs::Error& %s) {", mangleIdent(param, 0))
		bb.indent++
		g.emitStmts(v.Catch, bb)
		bb.indent--
	}
	bb.line("}")
	if len(v.Finally) > 0 {
		bb.indent--
		bb.line("}")
	}
}
