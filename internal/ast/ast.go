// Package ast defines the typed surface AST — the input contract the core
// consumes from the external parser/type checker (spec §6). Every
// expression and declaration already carries its resolved Type; this
// package does no type inference of its own.
package ast

import (
	"fmt"

	"github.com/fcapolini/goodscript-sub002/internal/types"
)

// Pos is a position in a surface source file.
type Pos struct {
	Line   int
	Column int
	File   string
	Offset int
}

func (p Pos) String() string { return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column) }

// Span is a source range, used for signature/diagnostic reporting.
type Span struct {
	Start Pos
	End   Pos
}

// Node is the base interface implemented by every AST node.
type Node interface {
	Position() Pos
}

// Program is the full set of modules presented to the core in one
// compilation (spec §3 "Program: a set of modules addressed by path").
type Program struct {
	Modules []*Module
}

// ByPath looks up a module by its source path.
func (p *Program) ByPath(path string) *Module {
	for _, m := range p.Modules {
		if m.Path == path {
			return m
		}
	}
	return nil
}

// Import is one import declaration (spec §3 Module "import/export
// records").
type Import struct {
	Path    string
	Symbols []string // empty means whole-module import
	Pos     Pos
}

func (i *Import) Position() Pos { return i.Pos }

// Module is a declaration list plus import/export records, addressed by
// its surface file path (spec §3).
type Module struct {
	Path    string
	Imports []*Import
	Exports []string
	Decls   []Decl
}

// Decl is the closed set of top-level declaration kinds (spec §3:
// function, class, interface, type-alias, constant).
type Decl interface {
	Node
	DeclName() string
	declNode()
}

// Param is a function/method/lambda parameter.
type Param struct {
	Name string
	Type types.Type
}

// FuncDecl is a function declaration. Flags mirror spec §3
// FunctionDeclaration.flags {async, static, generator?}.
type FuncDecl struct {
	Name       string
	Params     []*Param
	ReturnType types.Type
	Body       []Stmt
	Async      bool
	Static     bool
	Generator  bool
	Pos        Pos
}

func (f *FuncDecl) Position() Pos    { return f.Pos }
func (f *FuncDecl) DeclName() string { return f.Name }
func (f *FuncDecl) declNode()        {}

// Access is a class member's visibility.
type Access int

const (
	Public Access = iota
	Private
	Protected
)

// Field is a class field.
type Field struct {
	Name     string
	Type     types.Type
	Readonly bool
	Static   bool
	Access   Access
	Pos      Pos
}

// Method is a class method; like FuncDecl plus IsStatic (spec §3
// ClassDeclaration "methods (like functions plus isStatic)").
type Method struct {
	*FuncDecl
	Access    Access
	IsStatic  bool
	Overrides bool // declared to override a base-class method
}

// ClassDecl is a class declaration (spec §3 ClassDeclaration).
type ClassDecl struct {
	Name        string
	Fields      []*Field
	Methods     []*Method
	Constructor *Method // nil if absent
	Base        string  // base class name, "" if none
	Interfaces  []string
	Pos         Pos
}

func (c *ClassDecl) Position() Pos    { return c.Pos }
func (c *ClassDecl) DeclName() string { return c.Name }
func (c *ClassDecl) declNode()        {}

// MethodSig is an interface method signature.
type MethodSig struct {
	Name   string
	Params []*Param
	Return types.Type
}

// InterfaceDecl is an interface declaration; contributes only to the
// type environment (spec §3).
type InterfaceDecl struct {
	Name    string
	Methods []*MethodSig
	Pos     Pos
}

func (i *InterfaceDecl) Position() Pos    { return i.Pos }
func (i *InterfaceDecl) DeclName() string { return i.Name }
func (i *InterfaceDecl) declNode()        {}

// TypeAliasDecl contributes only to the type environment.
type TypeAliasDecl struct {
	Name    string
	Aliased types.Type
	Pos     Pos
}

func (t *TypeAliasDecl) Position() Pos    { return t.Pos }
func (t *TypeAliasDecl) DeclName() string { return t.Name }
func (t *TypeAliasDecl) declNode()        {}

// ConstDecl is a module-level constant.
type ConstDecl struct {
	Name string
	Type types.Type
	Init Expr
	Pos  Pos
}

func (c *ConstDecl) Position() Pos    { return c.Pos }
func (c *ConstDecl) DeclName() string { return c.Name }
func (c *ConstDecl) declNode()        {}
