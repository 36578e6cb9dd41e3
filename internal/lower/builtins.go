package lower

import "github.com/fcapolini/goodscript-sub002/internal/ast"

// builtinNamespaces are the recognized fully-qualified runtime module
// roots (spec §4.3 "Method calls"). A method call whose receiver is a
// bare identifier naming one of these is tagged with its fully
// qualified name so the generator can route it straight to the
// matching gs:: runtime call instead of ordinary virtual dispatch.
var builtinNamespaces = map[string]bool{
	"Math":            true,
	"Date":            true,
	"JSON":            true,
	"Console":         true,
	"FileSystem":      true,
	"FileSystemAsync": true,
	"HTTP":            true,
	"HTTPAsync":       true,
}

// builtinTag derives the fully-qualified builtin name for a method
// call, if any. The upstream type checker is expected to have already
// tagged MethodCallExpr.Builtin (spec §6 input contract); this is the
// lowerer's own fallback derivation, kept as a defensive second source
// of truth rather than trusting the input blindly.
func builtinTag(object ast.Expr, method string) string {
	id, ok := object.(*ast.Identifier)
	if !ok {
		return ""
	}
	if !builtinNamespaces[id.Name] {
		return ""
	}
	return id.Name + "." + method
}
