package codegen

import (
	"fmt"
	"strings"

	"github.com/fcapolini/goodscript-sub002/internal/ir"
	"github.com/fcapolini/goodscript-sub002/internal/types"
)

func (g *Generator) emitDecl(d ir.Decl, h, c *strings.Builder) {
	switch v := d.(type) {
	case *ir.FuncDecl:
		g.emitFuncDecl(v, h, c)
	case *ir.ClassDecl:
		g.emitClassDecl(v, h, c)
	case *ir.InterfaceDecl:
		g.emitInterfaceDecl(v, h)
	case *ir.TypeAliasDecl:
		fmt.Fprintf(h, "using %s = %s;\n", v.Name, cppType(v.Aliased, g.mode))
	case *ir.ConstantDecl:
		fmt.Fprintf(h, "extern const %s %s;\n", cppType(v.Type, g.mode), v.Name)
		fmt.Fprintf(c, "const %s %s = %s;\n\n", cppType(v.Type, g.mode), v.Name, g.emitExpr(v.Init))
	}
}

// funcReturnType selects the coroutine task type for an async function
// (spec §4.6 rule 1: "materialized return type is the coroutine task
// over T") and the plain mapped type otherwise.
func (g *Generator) funcReturnType(fn *ir.FuncDecl) string {
	if !fn.Async {
		return cppType(fn.ReturnType, g.mode)
	}
	if p, ok := fn.ReturnType.(*types.Promise); ok {
		if isVoidType(p.Inner) {
			return "cppcoro::task<>"
		}
		return fmt.Sprintf("cppcoro::task<%s>", cppType(p.Inner, g.mode))
	}
	return "cppcoro::task<>"
}

func isVoidType(t types.Type) bool {
	p, ok := t.(*types.Primitive)
	return t == nil || (ok && p.Tag == types.Void)
}

func (g *Generator) emitFuncDecl(fn *ir.FuncDecl, h, c *strings.Builder) {
	fmt.Fprintf(h, "%s %s(%s);\n", g.funcReturnType(fn), fn.Name, g.renderParams(fn.Params))
	g.emitMethodDef(fn, "", c)
}

// emitMethodDef emits only the out-of-line definition, for callers that
// already wrote the declaration elsewhere (class method signatures are
// declared inline in the class body during emitClassDecl).
func (g *Generator) emitMethodDef(fn *ir.FuncDecl, ownerPrefix string, c *strings.Builder) {
	qualified := fn.Name
	if ownerPrefix != "" {
		qualified = ownerPrefix + "::" + fn.Name
	}
	fmt.Fprintf(c, "%s %s(%s) {\n", g.funcReturnType(fn), qualified, g.renderParams(fn.Params))
	wasAsync := g.inAsync
	g.inAsync = fn.Async
	var b bodyBuilder
	b.indent = 1
	g.emitStmts(fn.Body, &b)
	g.inAsync = wasAsync
	c.WriteString(b.String())
	c.WriteString("}\n\n")
}

func (g *Generator) renderParams(params []*ir.Param) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = fmt.Sprintf("%s %s", cppType(p.Type, g.mode), mangleIdent(p.Name, 0))
	}
	return joinStrings(parts, ", ")
}

// emitClassDecl emits the class shape (fields, method signatures) to
// the header and every method/constructor body to the source, matching
// spec §4.5 "Class emission": constructors initialize fields in
// declaration order, static methods become free functions inside the
// class namespace, and virtual dispatch is reserved for overriding
// methods only.
func (g *Generator) emitClassDecl(v *ir.ClassDecl, h, c *strings.Builder) {
	base := ""
	if v.Base != "" {
		base = " : public " + v.Base
	}
	fmt.Fprintf(h, "class %s%s {\npublic:\n", v.Name, base)

	if v.Constructor != nil {
		fmt.Fprintf(h, "  %s(%s);\n", v.Name, g.renderParams(v.Constructor.Params))
	}
	for _, m := range v.Methods {
		if m.IsStatic {
			continue
		}
		virt := ""
		if m.Overrides {
			virt = "virtual "
		}
		fmt.Fprintf(h, "  %s%s %s(%s);\n", virt, g.funcReturnType(m.FuncDecl), m.Name, g.renderParams(m.Params))
	}
	for _, f := range v.Fields {
		if f.Static {
			continue
		}
		ro := ""
		if f.Readonly {
			ro = "const "
		}
		fmt.Fprintf(h, "  %s%s %s;\n", ro, cppType(f.Type, g.mode), f.Name)
	}
	h.WriteString("};\n\n")

	// Static methods are emitted as free functions inside the class's own
	// namespace rather than `static` class members, matching the spec's
	// "static methods become free static functions inside the class
	// namespace."
	staticMethods := staticMethodsOf(v)
	if len(staticMethods) > 0 {
		fmt.Fprintf(h, "namespace %s {\n", v.Name)
		for _, m := range staticMethods {
			fmt.Fprintf(h, "  %s %s(%s);\n", g.funcReturnType(m.FuncDecl), m.Name, g.renderParams(m.Params))
		}
		h.WriteString("}\n\n")
	}

	if v.Constructor != nil {
		g.emitConstructor(v, c)
	}
	for _, m := range v.Methods {
		if m.IsStatic {
			continue
		}
		g.emitMethodDef(m.FuncDecl, v.Name, c)
	}
	for _, m := range staticMethods {
		g.emitMethodDef(m.FuncDecl, v.Name, c)
	}
}

func staticMethodsOf(v *ir.ClassDecl) []*ir.Method {
	var out []*ir.Method
	for _, m := range v.Methods {
		if m.IsStatic {
			out = append(out, m)
		}
	}
	return out
}

// emitConstructor emits the constructor body as lowered; field
// assignments inside it (`this.x = x`, produced by lowering from the
// surface constructor) run in source order, which is declaration order
// because the body is a straight statement list, not a reordered
// initializer set (spec §4.5 "Constructors initialize fields in
// declaration order").
func (g *Generator) emitConstructor(v *ir.ClassDecl, c *strings.Builder) {
	fmt.Fprintf(c, "%s::%s(%s) {\n", v.Name, v.Name, g.renderParams(v.Constructor.Params))
	wasAsync := g.inAsync
	g.inAsync = false
	var b bodyBuilder
	b.indent = 1
	g.emitStmts(v.Constructor.Body, &b)
	g.inAsync = wasAsync
	c.WriteString(b.String())
	c.WriteString("}\n\n")
}

func (g *Generator) emitInterfaceDecl(v *ir.InterfaceDecl, h *strings.Builder) {
	fmt.Fprintf(h, "class %s {\npublic:\n  virtual ~%s() = default;\n", v.Name, v.Name)
	for _, m := range v.Methods {
		fmt.Fprintf(h, "  virtual %s %s(%s) = 0;\n", cppType(m.Return, g.mode), m.Name, g.renderParams(m.Params))
	}
	h.WriteString("};\n\n")
}
