// Package sig implements the structural signature engine (spec §4.2):
// a deterministic canonical string and FNV-1a hash per named
// interface/class, used to decide duck-typing compatibility without
// runtime reflection.
package sig

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/fcapolini/goodscript-sub002/internal/ir"
	"github.com/fcapolini/goodscript-sub002/internal/types"
)

const (
	fnvOffset uint32 = 2166136261
	fnvPrime  uint32 = 16777619
)

// hash computes the non-streaming FNV-1a digest of s, per spec §4.2
// rule 4's literal offset/prime.
func hash(s string) uint32 {
	h := fnvOffset
	for i := 0; i < len(s); i++ {
		h ^= uint32(s[i])
		h *= fnvPrime
	}
	return h
}

// Signature is the canonical string and hex hash of one named
// interface or class.
type Signature struct {
	Canonical string
	Hash      string
}

type cacheKey struct {
	kind string
	name string
}

// Engine memoizes signatures by (kind, name) and canonical type
// strings by type node identity (spec §4.2 rule 6).
type Engine struct {
	mu       sync.Mutex
	sigs     map[cacheKey]*Signature
	typeStrs map[types.Type]string
}

// New creates an empty Engine.
func New() *Engine {
	return &Engine{
		sigs:     make(map[cacheKey]*Signature),
		typeStrs: make(map[types.Type]string),
	}
}

// InterfaceSignature computes (or returns the cached) signature for an
// interface declaration: its method list, sorted by name.
func (e *Engine) InterfaceSignature(decl *ir.InterfaceDecl) *Signature {
	key := cacheKey{kind: "interface", name: decl.Name}
	e.mu.Lock()
	if s, ok := e.sigs[key]; ok {
		e.mu.Unlock()
		return s
	}
	e.mu.Unlock()

	methods := make([]*ir.MethodSig, len(decl.Methods))
	copy(methods, decl.Methods)
	sort.Slice(methods, func(i, j int) bool { return methods[i].Name < methods[j].Name })

	var parts []string
	for _, m := range methods {
		if strings.HasPrefix(m.Name, "_") {
			continue
		}
		parts = append(parts, e.methodEntry(m.Name, m.Params, m.Return))
	}

	s := e.finish(parts)
	e.mu.Lock()
	e.sigs[key] = s
	e.mu.Unlock()
	return s
}

// ClassSignature computes (or returns the cached) signature for a
// class declaration: its public, non-underscore fields and its
// non-static, non-underscore, public methods (spec §4.2 rule 1).
func (e *Engine) ClassSignature(decl *ir.ClassDecl) *Signature {
	key := cacheKey{kind: "class", name: decl.Name}
	e.mu.Lock()
	if s, ok := e.sigs[key]; ok {
		e.mu.Unlock()
		return s
	}
	e.mu.Unlock()

	fields := make([]*ir.Field, 0, len(decl.Fields))
	for _, f := range decl.Fields {
		if f.Access != ir.Public || strings.HasPrefix(f.Name, "_") {
			continue
		}
		fields = append(fields, f)
	}
	sort.Slice(fields, func(i, j int) bool { return fields[i].Name < fields[j].Name })

	methods := make([]*ir.Method, 0, len(decl.Methods))
	for _, m := range decl.Methods {
		if m.IsStatic || m.Access != ir.Public || strings.HasPrefix(m.Name, "_") {
			continue
		}
		methods = append(methods, m)
	}
	sort.Slice(methods, func(i, j int) bool { return methods[i].Name < methods[j].Name })

	var parts []string
	for _, f := range fields {
		entry := f.Name + ":" + e.TypeString(f.Type)
		if f.Readonly {
			entry = "readonly " + entry
		}
		parts = append(parts, entry)
	}
	for _, m := range methods {
		parts = append(parts, e.methodEntry(m.Name, m.Params, m.ReturnType))
	}

	s := e.finish(parts)
	e.mu.Lock()
	e.sigs[key] = s
	e.mu.Unlock()
	return s
}

func (e *Engine) methodEntry(name string, params []*ir.Param, ret types.Type) string {
	args := make([]string, len(params))
	for i, p := range params {
		args[i] = p.Name + ":" + e.TypeString(p.Type)
	}
	return fmt.Sprintf("%s(%s):%s", name, strings.Join(args, ","), e.TypeString(ret))
}

func (e *Engine) finish(parts []string) *Signature {
	canonical := strings.Join(parts, ";")
	return &Signature{Canonical: canonical, Hash: fmt.Sprintf("%08x", hash(canonical))}
}

// TypeString returns the canonical structural string for t (spec §4.2
// rule 5), memoized by type node identity.
func (e *Engine) TypeString(t types.Type) string {
	if t == nil {
		return ""
	}
	e.mu.Lock()
	if s, ok := e.typeStrs[t]; ok {
		e.mu.Unlock()
		return s
	}
	e.mu.Unlock()

	s := t.Canonical()

	e.mu.Lock()
	e.typeStrs[t] = s
	e.mu.Unlock()
	return s
}

// Compatible reports whether two types satisfy spec §4.2's
// compatibility check: primitives must share tag; complex types are
// compatible iff their canonical strings are equal.
func Compatible(a, b types.Type) bool {
	ap, aok := a.(*types.Primitive)
	bp, bok := b.(*types.Primitive)
	if aok || bok {
		return aok && bok && ap.Tag == bp.Tag
	}
	return a.Canonical() == b.Canonical()
}

// Implements reports whether class satisfies iface structurally: their
// signatures share the same canonical string (spec §4.2, "a class whose
// public structure matches an interface satisfies it without declared
// implementation").
func (e *Engine) Implements(class *ir.ClassDecl, iface *ir.InterfaceDecl) bool {
	return e.ClassSignature(class).Canonical == e.InterfaceSignature(iface).Canonical
}
