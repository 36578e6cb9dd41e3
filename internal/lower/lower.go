// Package lower implements AST-to-IR lowering (spec §4.3): it walks the
// typed surface AST produced by the external parser/type checker and
// builds the IR program the passes and code generator operate on.
// Lowering collects diagnostics rather than aborting on the first
// error, mirroring the teacher elaborator's structured-report
// discipline (internal/elaborate/elaborate.go in the reference
// compiler this package generalizes from).
package lower

import (
	"github.com/fcapolini/goodscript-sub002/internal/ast"
	"github.com/fcapolini/goodscript-sub002/internal/config"
	"github.com/fcapolini/goodscript-sub002/internal/diagnostics"
	"github.com/fcapolini/goodscript-sub002/internal/ir"
	"github.com/fcapolini/goodscript-sub002/internal/types"
)

// Lowerer holds the state threaded through one AST-to-IR pass: the IR
// builder (for node IDs, block IDs and SSA versions), the target
// memory mode (which governs union/nullable collapsing, spec §4.3
// "Union normalization"), the diagnostics collector, the enclosing
// lexical scope stack used for lambda capture analysis, and the
// async-function nesting depth used to validate `await`.
type Lowerer struct {
	b          *ir.Builder
	mode       config.MemoryMode
	diag       *diagnostics.Collector
	scopes     []map[string]bool
	asyncDepth int
}

// New creates a Lowerer targeting mode.
func New(mode config.MemoryMode) *Lowerer {
	return &Lowerer{b: ir.NewBuilder(), mode: mode, diag: diagnostics.NewCollector()}
}

// LowerProgram lowers every module of prog, returning the IR program
// and whatever diagnostics were collected along the way. Errors never
// abort the walk early — every module is attempted so the caller sees
// the full diagnostic set in one pass.
func LowerProgram(prog *ast.Program, mode config.MemoryMode) (*ir.Program, *diagnostics.Collector) {
	l := New(mode)
	out := ir.NewProgram()
	for _, m := range prog.Modules {
		out.Modules = append(out.Modules, l.lowerModule(m))
	}
	return out, l.diag
}

func (l *Lowerer) lowerModule(m *ast.Module) *ir.Module {
	out := &ir.Module{Path: m.Path, Exports: m.Exports}
	for _, imp := range m.Imports {
		out.Imports = append(out.Imports, &ir.Import{Path: imp.Path, Symbols: imp.Symbols})
	}
	for _, d := range m.Decls {
		if decl := l.lowerDecl(d); decl != nil {
			out.Decls = append(out.Decls, decl)
		}
	}
	return out
}

func (l *Lowerer) lowerDecl(d ast.Decl) ir.Decl {
	switch v := d.(type) {
	case *ast.FuncDecl:
		return l.lowerFuncDecl(v)
	case *ast.ClassDecl:
		return l.lowerClassDecl(v)
	case *ast.InterfaceDecl:
		return l.lowerInterfaceDecl(v)
	case *ast.TypeAliasDecl:
		return &ir.TypeAliasDecl{Name: v.Name, Aliased: l.normalizeType(v.Aliased)}
	case *ast.ConstDecl:
		return &ir.ConstantDecl{Name: v.Name, Type: l.normalizeType(v.Type), Init: l.lowerExpr(v.Init)}
	default:
		l.diag.Add(diagnostics.LOW001, "unsupported top-level declaration", span(d.Position()), nil)
		return nil
	}
}

func (l *Lowerer) lowerParams(params []*ast.Param) []*ir.Param {
	out := make([]*ir.Param, len(params))
	for i, p := range params {
		out[i] = &ir.Param{Name: p.Name, Type: l.normalizeType(p.Type)}
	}
	return out
}

func paramNames(params []*ast.Param) []string {
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.Name
	}
	return names
}

func (l *Lowerer) lowerFuncDecl(d *ast.FuncDecl) *ir.FuncDecl {
	if d.Generator && d.Async {
		l.diag.Add(diagnostics.ASY002, "generator functions cannot be async", span(d.Pos), nil)
	}
	l.b.ResetFunction()
	l.pushScope(paramNames(d.Params))
	if d.Async {
		l.asyncDepth++
	}
	body := l.lowerStmts(d.Body)
	if d.Async {
		l.asyncDepth--
	}
	l.popScope()

	return &ir.FuncDecl{
		Name:       d.Name,
		Params:     l.lowerParams(d.Params),
		ReturnType: l.normalizeType(d.ReturnType),
		Body:       body,
		Async:      d.Async,
		Static:     d.Static,
		Generator:  d.Generator,
	}
}

func (l *Lowerer) lowerClassDecl(d *ast.ClassDecl) *ir.ClassDecl {
	out := &ir.ClassDecl{Name: d.Name, Base: d.Base, Interfaces: d.Interfaces}
	for _, f := range d.Fields {
		out.Fields = append(out.Fields, &ir.Field{
			Name:     f.Name,
			Type:     l.normalizeType(f.Type),
			Readonly: f.Readonly,
			Static:   f.Static,
			Access:   ir.Access(f.Access),
		})
	}
	for _, m := range d.Methods {
		out.Methods = append(out.Methods, l.lowerMethod(m))
	}
	if d.Constructor != nil {
		out.Constructor = l.lowerMethod(d.Constructor)
	}
	return out
}

func (l *Lowerer) lowerMethod(m *ast.Method) *ir.Method {
	fn := l.lowerFuncDecl(m.FuncDecl)
	return &ir.Method{FuncDecl: fn, Access: ir.Access(m.Access), IsStatic: m.IsStatic, Overrides: m.Overrides}
}

func (l *Lowerer) lowerInterfaceDecl(d *ast.InterfaceDecl) *ir.InterfaceDecl {
	out := &ir.InterfaceDecl{Name: d.Name}
	for _, m := range d.Methods {
		out.Methods = append(out.Methods, &ir.MethodSig{
			Name:   m.Name,
			Params: l.lowerParams(m.Params),
			Return: l.normalizeType(m.Return),
		})
	}
	return out
}

// normalizeType applies spec §4.3 "Union normalization": a union is
// flattened and deduped, then collapsed per memory mode — in gc mode a
// nullable reference union (T | null | undefined) reduces to T because
// every reference is already nullable; in ownership mode it is
// preserved as an explicit Nullable.
func (l *Lowerer) normalizeType(t types.Type) types.Type {
	return NormalizeType(t, l.mode)
}

// NormalizeType applies spec §4.3/§4.4's union-and-nullable
// normalization uniformly: a union is flattened and deduped, then
// collapsed per memory mode — in gc mode a nullable reference union
// (T | null | undefined) reduces to T because every reference is
// already nullable; in ownership mode it is preserved as an explicit
// Nullable. Exported so internal/passes can re-run it, idempotently,
// after whole-IR rewrites (spec §8: "Union normalization is
// idempotent").
func NormalizeType(t types.Type, mode config.MemoryMode) types.Type {
	if t == nil {
		return nil
	}
	u, ok := t.(*types.Union)
	if !ok {
		return t
	}
	normalized := u.Normalize()
	nu, ok := normalized.(*types.Union)
	if !ok {
		return normalized
	}

	var rest []types.Type
	hasNull := false
	for _, m := range nu.Types {
		if p, ok := m.(*types.Primitive); ok && p.Tag == types.Void {
			hasNull = true
			continue
		}
		rest = append(rest, m)
	}
	if !hasNull || len(rest) != 1 {
		return normalized
	}
	if mode == config.GC && types.IsReference(rest[0]) {
		return rest[0]
	}
	return &types.Nullable{Inner: rest[0]}
}

func (l *Lowerer) pushScope(names []string) {
	scope := make(map[string]bool, len(names))
	for _, n := range names {
		scope[n] = true
	}
	l.scopes = append(l.scopes, scope)
}

func (l *Lowerer) popScope() {
	l.scopes = l.scopes[:len(l.scopes)-1]
}

func (l *Lowerer) bind(name string) {
	if len(l.scopes) == 0 {
		return
	}
	l.scopes[len(l.scopes)-1][name] = true
}

func (l *Lowerer) enclosingBound(name string) bool {
	for i := len(l.scopes) - 2; i >= 0; i-- {
		if l.scopes[i][name] {
			return true
		}
	}
	return false
}

func span(pos ast.Pos) *ast.Span {
	return &ast.Span{Start: pos, End: pos}
}
