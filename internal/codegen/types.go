package codegen

import (
	"fmt"

	"github.com/fcapolini/goodscript-sub002/internal/config"
	"github.com/fcapolini/goodscript-sub002/internal/types"
)

// cppType renders t per the memory-mode idiom table (spec §4.5
// "Memory-mode contract"). The IR itself never changes between modes;
// only this rendering does.
func cppType(t types.Type, mode config.MemoryMode) string {
	if t == nil {
		return "void"
	}
	switch v := t.(type) {
	case *types.Primitive:
		return primitiveCppType(v)
	case *types.Class:
		return referenceCppType(v.Name, v.Own, mode)
	case *types.Interface:
		return referenceCppType(v.Name, v.Own, mode)
	case *types.Array:
		return fmt.Sprintf("gs::Array<%s>", cppType(v.Element, mode))
	case *types.Map:
		return fmt.Sprintf("gs::Map<%s, %s>", cppType(v.Key, mode), cppType(v.Value, mode))
	case *types.Function:
		params := make([]string, len(v.Params))
		for i, p := range v.Params {
			params[i] = cppType(p, mode)
		}
		return fmt.Sprintf("std::function<%s(%s)>", cppType(v.Return, mode), joinStrings(params, ", "))
	case *types.Union:
		parts := make([]string, len(v.Types))
		for i, m := range v.Types {
			parts[i] = cppType(m, mode)
		}
		return fmt.Sprintf("std::variant<%s>", joinStrings(parts, ", "))
	case *types.Nullable:
		return nullableCppType(v, mode)
	case *types.Promise:
		return fmt.Sprintf("gs::Promise<%s>", cppType(v.Inner, mode))
	default:
		return "void"
	}
}

func primitiveCppType(p *types.Primitive) string {
	switch p.Tag {
	case types.Number:
		return "double"
	case types.Integer:
		return "int32_t"
	case types.Integer53:
		return "int64_t"
	case types.StringTag:
		return "gs::String"
	case types.Boolean:
		return "bool"
	case types.Void:
		return "void"
	default:
		return "void"
	}
}

// referenceCppType selects the pointer/value idiom for a class or
// interface per memory mode: in gc mode every reference is a managed,
// nullable gc::Ref regardless of ownership annotation; in ownership
// mode the annotation picks move, shared, borrowed, or stack-value
// representation.
func referenceCppType(name string, own types.Ownership, mode config.MemoryMode) string {
	if mode == config.GC {
		return fmt.Sprintf("gs::gc::Ref<%s>", name)
	}
	switch own {
	case types.Own:
		return fmt.Sprintf("std::unique_ptr<%s>", name)
	case types.Share:
		return fmt.Sprintf("std::shared_ptr<%s>", name)
	case types.Use:
		return fmt.Sprintf("%s*", name)
	default:
		return name
	}
}

// nullableCppType renders an explicit Nullable wrapper, which only
// survives normalization in ownership mode (spec §4.3 "Union
// normalization"): a nullable reference is already represented by a
// pointer type that can hold null, so it renders unchanged; a nullable
// value type needs std::optional.
func nullableCppType(n *types.Nullable, mode config.MemoryMode) string {
	if mode == config.GC {
		return cppType(n.Inner, mode)
	}
	if types.IsReference(n.Inner) {
		if class, ok := n.Inner.(*types.Class); ok && class.Own == types.Value {
			return fmt.Sprintf("std::optional<%s>", cppType(n.Inner, mode))
		}
		if iface, ok := n.Inner.(*types.Interface); ok && iface.Own == types.Value {
			return fmt.Sprintf("std::optional<%s>", cppType(n.Inner, mode))
		}
		return cppType(n.Inner, mode)
	}
	return fmt.Sprintf("std::optional<%s>", cppType(n.Inner, mode))
}

func joinStrings(parts []string, sep string) string {
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += sep
		}
		out += p
	}
	return out
}
