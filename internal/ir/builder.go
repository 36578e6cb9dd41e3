package ir

import (
	"github.com/fcapolini/goodscript-sub002/internal/ast"
	"github.com/fcapolini/goodscript-sub002/internal/types"
)

// Builder tracks the two counters spec §4.1 requires while constructing
// the body of a single function: dense, zero-based basic-block
// identifiers, and a per-name SSA-style version counter. Both reset at
// function entry (spec §4.1 "resettable at function entry"), mirroring
// the teacher elaborator's nextID/freshVarNum counters
// (internal/elaborate/elaborate.go) generalized from one counter to the
// two independent ones this spec's invariants name.
type Builder struct {
	nextNodeID  uint64
	nextBlockID int
	versions    map[string]int
}

// NewBuilder creates a Builder with its node-ID counter starting at 1 (0
// is reserved as the "no ID" sentinel, as in the teacher elaborator).
func NewBuilder() *Builder {
	return &Builder{nextNodeID: 1, versions: make(map[string]int)}
}

// ResetFunction resets the block-ID and variable-version counters for a
// new function scope (spec §4.1 invariants: "block IDs are dense and
// start at zero per function"; "variable versions start at zero per name
// per function scope"). The node-ID counter is never reset — it is
// global to the IR, used for diagnostic and cache identity.
func (b *Builder) ResetFunction() {
	b.nextBlockID = 0
	b.versions = make(map[string]int)
}

// NewBlock returns the next dense block id for the current function.
func (b *Builder) NewBlock() int {
	id := b.nextBlockID
	b.nextBlockID++
	return id
}

// Version returns the next zero-based version for name within the
// current function scope (spec §3 invariant 2: "monotonic per
// (function, name), zero-based").
func (b *Builder) Version(name string) int {
	v, ok := b.versions[name]
	if !ok {
		b.versions[name] = 1
		return 0
	}
	b.versions[name] = v + 1
	return v
}

// node mints a fresh Node with a unique ID, stamping both the IR and
// original surface positions (they coincide at construction time; later
// passes may move a node and should preserve OrigLoc).
func (b *Builder) node(pos ast.Pos) Node {
	id := b.nextNodeID
	b.nextNodeID++
	return Node{NodeID: id, Loc: pos, OrigLoc: pos}
}

// Ident builds an Identifier expression carrying the next SSA version
// for its name.
func (b *Builder) Ident(pos ast.Pos, name string, t types.Type) *Identifier {
	return &Identifier{Node: b.node(pos), Name: name, Version: b.Version(name), Typ: t}
}

// NewNode exposes node minting to other packages in this module (the
// lowerer and passes construct IR nodes directly).
func (b *Builder) NewNode(pos ast.Pos) Node { return b.node(pos) }
