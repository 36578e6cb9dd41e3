package ir

import "github.com/fcapolini/goodscript-sub002/internal/types"

// Param is a function/method parameter (name + type).
type Param struct {
	Name string
	Type types.Type
}

// FuncDecl is an IR function declaration (spec §3 FunctionDeclaration):
// name, parameter list, return type, body, and flags.
type FuncDecl struct {
	Name       string
	Params     []*Param
	ReturnType types.Type
	Body       []Stmt
	Async      bool
	Static     bool
	Generator  bool

	// Hoisted records whether this declaration is the product of the
	// nested-function hoisting pass (spec §4.4); MangledFrom names the
	// enclosing function it was hoisted out of, "" otherwise.
	Hoisted     bool
	MangledFrom string
}

func (f *FuncDecl) DeclName() string { return f.Name }
func (f *FuncDecl) declNode()        {}

// Access mirrors ast.Access.
type Access int

const (
	Public Access = iota
	Private
	Protected
)

// Field is an IR class field.
type Field struct {
	Name     string
	Type     types.Type
	Readonly bool
	Static   bool
	Access   Access
}

// Method is an IR class method (spec §3: "methods (like functions plus
// isStatic)").
type Method struct {
	*FuncDecl
	Access    Access
	IsStatic  bool
	Overrides bool
}

// ClassDecl is an IR class declaration (spec §3 ClassDeclaration).
type ClassDecl struct {
	Name        string
	Fields      []*Field
	Methods     []*Method
	Constructor *Method
	Base        string
	Interfaces  []string
}

func (c *ClassDecl) DeclName() string { return c.Name }
func (c *ClassDecl) declNode()        {}

// MethodSig is an interface method signature.
type MethodSig struct {
	Name   string
	Params []*Param
	Return types.Type
}

// InterfaceDecl contributes only to the type environment.
type InterfaceDecl struct {
	Name    string
	Methods []*MethodSig
}

func (i *InterfaceDecl) DeclName() string { return i.Name }
func (i *InterfaceDecl) declNode()        {}

// TypeAliasDecl contributes only to the type environment.
type TypeAliasDecl struct {
	Name    string
	Aliased types.Type
}

func (t *TypeAliasDecl) DeclName() string { return t.Name }
func (t *TypeAliasDecl) declNode()        {}

// ConstantDecl is a module-level constant.
type ConstantDecl struct {
	Name string
	Type types.Type
	Init Expr
}

func (c *ConstantDecl) DeclName() string { return c.Name }
func (c *ConstantDecl) declNode()        {}
