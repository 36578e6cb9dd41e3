// Package ir defines the compiler's intermediate representation: tagged
// expression, statement, and declaration trees, plus the Program/Module
// addressing model the code generator consumes (spec §3, §4.1).
//
// The shape follows the teacher's Core ANF tree (internal/core/core.go):
// a closed set of node kinds embedding a common Node for identity and
// span tracking, dispatched by exhaustive Go type switch rather than
// virtual methods (see DESIGN.md, "Tagged unions over inheritance").
// Unlike the teacher's Core, this IR is not A-Normal-Form — the surface
// spec calls for a typed statement/expression tree, not ANF — so it
// keeps the teacher's statement surface (drawn from its own surface
// internal/ast) rather than flattening to lets.
package ir

import (
	"github.com/google/uuid"

	"github.com/fcapolini/goodscript-sub002/internal/ast"
	"github.com/fcapolini/goodscript-sub002/internal/types"
)

// Node is embedded by every IR expression and statement for stable
// identity and dual span tracking (spec §3 IRExpression: "Every
// expression carries its inferred type and optional source location").
type Node struct {
	NodeID   uint64
	Loc      ast.Pos // position in surface terms (the IR has no separate grammar)
	OrigLoc  ast.Pos // original surface position, for diagnostics that survive later passes
}

func (n Node) ID() uint64     { return n.NodeID }
func (n Node) Position() ast.Pos { return n.Loc }

// Expr is the closed set of IR expression variants (spec §3
// IRExpression).
type Expr interface {
	ID() uint64
	Position() ast.Pos
	Type() types.Type
	exprNode()
}

// Stmt is the closed set of IR statement variants (spec §3 IRStatement).
type Stmt interface {
	Position() ast.Pos
	stmtNode()
}

// Program is the IR-level set of modules addressed by path (spec §3
// Program), stamped with a per-compilation run identifier (see
// DESIGN.md, internal/ir grounding note) so diagnostics and emitted-file
// header comments from the same invocation can be correlated.
type Program struct {
	RunID   string
	Modules []*Module
}

// NewProgram creates an empty Program with a fresh run identifier.
func NewProgram() *Program {
	return &Program{RunID: uuid.NewString()}
}

// ByPath looks up a module by path.
func (p *Program) ByPath(path string) *Module {
	for _, m := range p.Modules {
		if m.Path == path {
			return m
		}
	}
	return nil
}

// Import mirrors ast.Import at the IR level.
type Import struct {
	Path    string
	Symbols []string
}

// Module is a declaration list plus import/export records (spec §3).
type Module struct {
	Path    string
	Imports []*Import
	Exports []string
	Decls   []Decl
}

// Decl is the closed set of IR declaration kinds (spec §3: function,
// class, interface, type-alias, constant).
type Decl interface {
	DeclName() string
	declNode()
}
