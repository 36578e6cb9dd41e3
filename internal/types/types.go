// Package types defines the structural type system shared by the surface
// AST and the IR: primitive tags, ownership-decorated reference types, and
// the compound type constructors (array, map, function, union, nullable,
// promise). Ownership is a component of the type itself rather than a
// parallel annotation (see DESIGN.md, "Ownership as type decoration").
package types

import (
	"fmt"
	"sort"
	"strings"
)

// Ownership tags a reference-bearing type with its memory discipline.
// It participates in type equality: two Class types with different
// Ownership are different types.
type Ownership int

const (
	// NoOwnership marks types that carry no ownership distinction
	// (primitives, function types, unions, …).
	NoOwnership Ownership = iota
	Own
	Share
	Use
	Value
)

func (o Ownership) String() string {
	switch o {
	case Own:
		return "own"
	case Share:
		return "share"
	case Use:
		return "use"
	case Value:
		return "value"
	default:
		return ""
	}
}

// PrimitiveTag enumerates the primitive value kinds of the surface
// language (spec §3).
type PrimitiveTag int

const (
	Number PrimitiveTag = iota
	Integer
	Integer53
	StringTag
	Boolean
	Void
)

func (p PrimitiveTag) String() string {
	switch p {
	case Number:
		return "number"
	case Integer:
		return "integer"
	case Integer53:
		return "integer53"
	case StringTag:
		return "string"
	case Boolean:
		return "boolean"
	case Void:
		return "void"
	default:
		return "<unknown-primitive>"
	}
}

// Type is the closed set of type-tree variants. Every variant is a
// pointer type so that type identity (used by the signature engine's
// type-string cache, spec §4.2 rule 6) is simply Go pointer identity.
type Type interface {
	// String renders a type for diagnostics and debugging.
	String() string
	// Equals reports structural equality, respecting ownership.
	Equals(Type) bool
	// Canonical renders the deterministic structural string used by the
	// signature engine (spec §4.2 rule 5).
	Canonical() string
	typeNode()
}

// Primitive is a primitive value type.
type Primitive struct {
	Tag PrimitiveTag
}

func (t *Primitive) typeNode()         {}
func (t *Primitive) String() string    { return t.Tag.String() }
func (t *Primitive) Canonical() string { return t.Tag.String() }
func (t *Primitive) Equals(other Type) bool {
	o, ok := other.(*Primitive)
	return ok && o.Tag == t.Tag
}

// Class is a nominal class type carrying ownership and optional type
// arguments.
type Class struct {
	Name     string
	Own      Ownership
	TypeArgs []Type
}

func (t *Class) typeNode() {}
func (t *Class) String() string {
	s := fmt.Sprintf("%s<%s>", t.Name, t.Own)
	if len(t.TypeArgs) > 0 {
		s += "[" + joinTypes(t.TypeArgs, ", ") + "]"
	}
	return s
}
func (t *Class) Canonical() string {
	s := fmt.Sprintf("%s<%s>", t.Name, t.Own)
	if len(t.TypeArgs) > 0 {
		s += "[" + joinCanonical(t.TypeArgs, ",") + "]"
	}
	return s
}
func (t *Class) Equals(other Type) bool {
	o, ok := other.(*Class)
	if !ok || o.Name != t.Name || o.Own != t.Own || len(o.TypeArgs) != len(t.TypeArgs) {
		return false
	}
	for i := range t.TypeArgs {
		if !t.TypeArgs[i].Equals(o.TypeArgs[i]) {
			return false
		}
	}
	return true
}

// Interface is a structural-capable nominal interface type.
type Interface struct {
	Name     string
	Own      Ownership
	TypeArgs []Type
}

func (t *Interface) typeNode() {}
func (t *Interface) String() string {
	s := fmt.Sprintf("%s<%s>", t.Name, t.Own)
	if len(t.TypeArgs) > 0 {
		s += "[" + joinTypes(t.TypeArgs, ", ") + "]"
	}
	return s
}
func (t *Interface) Canonical() string {
	s := fmt.Sprintf("%s<%s>", t.Name, t.Own)
	if len(t.TypeArgs) > 0 {
		s += "[" + joinCanonical(t.TypeArgs, ",") + "]"
	}
	return s
}
func (t *Interface) Equals(other Type) bool {
	o, ok := other.(*Interface)
	if !ok || o.Name != t.Name || o.Own != t.Own || len(o.TypeArgs) != len(t.TypeArgs) {
		return false
	}
	for i := range t.TypeArgs {
		if !t.TypeArgs[i].Equals(o.TypeArgs[i]) {
			return false
		}
	}
	return true
}

// Array is a homogeneous sequence type. Ownership defaults to Value when
// the typed-AST input does not specify it (applied by internal/astjson's
// DecodeType, spec §4.1 invariant); the Go zero value of Own is
// NoOwnership.
type Array struct {
	Element Type
	Own     Ownership
}

func (t *Array) typeNode()         {}
func (t *Array) String() string    { return fmt.Sprintf("Array<%s,%s>", t.Element, t.Own) }
func (t *Array) Canonical() string { return fmt.Sprintf("Array<%s,%s>", t.Element.Canonical(), t.Own) }
func (t *Array) Equals(other Type) bool {
	o, ok := other.(*Array)
	return ok && o.Own == t.Own && t.Element.Equals(o.Element)
}

// Map is a key-value type.
type Map struct {
	Key   Type
	Value Type
	Own   Ownership
}

func (t *Map) typeNode() {}
func (t *Map) String() string {
	return fmt.Sprintf("Map<%s,%s,%s>", t.Key, t.Value, t.Own)
}
func (t *Map) Canonical() string {
	return fmt.Sprintf("Map<%s,%s,%s>", t.Key.Canonical(), t.Value.Canonical(), t.Own)
}
func (t *Map) Equals(other Type) bool {
	o, ok := other.(*Map)
	return ok && o.Own == t.Own && t.Key.Equals(o.Key) && t.Value.Equals(o.Value)
}

// Function is a function type (no ownership: functions are values).
type Function struct {
	Params []Type
	Return Type
}

func (t *Function) typeNode() {}
func (t *Function) String() string {
	return fmt.Sprintf("(%s)->%s", joinTypes(t.Params, ", "), t.Return)
}
func (t *Function) Canonical() string {
	return fmt.Sprintf("(%s)->%s", joinCanonical(t.Params, ","), t.Return.Canonical())
}
func (t *Function) Equals(other Type) bool {
	o, ok := other.(*Function)
	if !ok || len(o.Params) != len(t.Params) || !t.Return.Equals(o.Return) {
		return false
	}
	for i := range t.Params {
		if !t.Params[i].Equals(o.Params[i]) {
			return false
		}
	}
	return true
}

// Union is a sum of alternative types. After normalization (spec §3
// invariant 3, §4.4) a Union never directly contains another Union,
// duplicates are removed, and members are sorted by canonical string.
type Union struct {
	Types []Type
}

func (t *Union) typeNode()         {}
func (t *Union) String() string    { return joinTypes(t.Types, " | ") }
func (t *Union) Canonical() string { return joinCanonical(t.Types, "|") }
func (t *Union) Equals(other Type) bool {
	o, ok := other.(*Union)
	if !ok || len(o.Types) != len(t.Types) {
		return false
	}
	for i := range t.Types {
		if !t.Types[i].Equals(o.Types[i]) {
			return false
		}
	}
	return true
}

// Normalize returns a deduplicated, flattened, sorted Union, or the sole
// remaining type directly if only one member survives. Idempotent (spec
// §8 "Union normalization is idempotent").
func (t *Union) Normalize() Type {
	var flat []Type
	var walk func(Type)
	walk = func(ty Type) {
		if u, ok := ty.(*Union); ok {
			for _, m := range u.Types {
				walk(m)
			}
			return
		}
		flat = append(flat, ty)
	}
	walk(t)

	seen := make(map[string]Type)
	var order []string
	for _, ty := range flat {
		key := ty.Canonical()
		if _, ok := seen[key]; !ok {
			seen[key] = ty
			order = append(order, key)
		}
	}
	sort.Strings(order)

	if len(order) == 1 {
		return seen[order[0]]
	}
	out := make([]Type, len(order))
	for i, k := range order {
		out[i] = seen[k]
	}
	return &Union{Types: out}
}

// Nullable wraps a type that may additionally hold null/undefined.
// Distinct from Union(T, null) only where ownership requires it (spec §3
// invariant 4).
type Nullable struct {
	Inner Type
}

func (t *Nullable) typeNode()         {}
func (t *Nullable) String() string    { return t.Inner.String() + "?" }
func (t *Nullable) Canonical() string { return t.Inner.Canonical() + "?" }
func (t *Nullable) Equals(other Type) bool {
	o, ok := other.(*Nullable)
	return ok && t.Inner.Equals(o.Inner)
}

// Promise wraps the payload type of an async function's return type.
type Promise struct {
	Inner Type
}

func (t *Promise) typeNode()         {}
func (t *Promise) String() string    { return fmt.Sprintf("Promise<%s>", t.Inner) }
func (t *Promise) Canonical() string { return fmt.Sprintf("Promise<%s>", t.Inner.Canonical()) }
func (t *Promise) Equals(other Type) bool {
	o, ok := other.(*Promise)
	return ok && t.Inner.Equals(o.Inner)
}

func joinTypes(ts []Type, sep string) string {
	parts := make([]string, len(ts))
	for i, t := range ts {
		parts[i] = t.String()
	}
	return strings.Join(parts, sep)
}

func joinCanonical(ts []Type, sep string) string {
	parts := make([]string, len(ts))
	for i, t := range ts {
		parts[i] = t.Canonical()
	}
	return strings.Join(parts, sep)
}

// Predefined primitives, mirroring the teacher's predefined-type vars
// (internal/types/types.go) but over this spec's primitive tag set.
var (
	TNumber    = &Primitive{Tag: Number}
	TInteger   = &Primitive{Tag: Integer}
	TInteger53 = &Primitive{Tag: Integer53}
	TString    = &Primitive{Tag: StringTag}
	TBoolean   = &Primitive{Tag: Boolean}
	TVoid      = &Primitive{Tag: Void}
)

// IsReference reports whether a type is ever represented by a managed or
// owning reference in either memory mode (classes and interfaces).
func IsReference(t Type) bool {
	switch t.(type) {
	case *Class, *Interface:
		return true
	default:
		return false
	}
}
