package codegen

import "strings"

// builtinNamespace maps the recognized runtime namespace tag attached
// at lowering (spec §4.3, §6) to its gs:: runtime namespace. Console is
// lower-cased to match the runtime's gs::console::log spelling (spec
// §4.5 "console.log(…) emits … gs::console::log"); every other
// namespace keeps its surface capitalization, matching the runtime
// façade names listed in §6.
var builtinNamespace = map[string]string{
	"Math":            "gs::Math",
	"Date":            "gs::Date",
	"JSON":            "gs::JSON",
	"Console":         "gs::console",
	"FileSystem":      "gs::FileSystem",
	"FileSystemAsync": "gs::FileSystemAsync",
	"HTTP":            "gs::HTTP",
	"HTTPAsync":       "gs::HTTPAsync",
}

// builtinCall resolves a MethodCall's Builtin tag ("Math.sqrt") to its
// fully-qualified C++ call target ("gs::Math::sqrt"), grounded on the
// teacher's internal/link/builtin_module.go static registration table
// (a fixed name -> implementation map consulted by identifier rather
// than reflection).
func builtinCall(tag string) (string, bool) {
	ns, method, ok := strings.Cut(tag, ".")
	if !ok {
		return "", false
	}
	cppNS, ok := builtinNamespace[ns]
	if !ok {
		return "", false
	}
	if ns == "Console" && method == "log" {
		return "gs::console::log", true
	}
	return cppNS + "::" + method, true
}
