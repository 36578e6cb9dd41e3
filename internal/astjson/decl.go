package astjson

import (
	"fmt"

	"github.com/fcapolini/goodscript-sub002/internal/ast"
)

// wireFuncDecl mirrors ast.FuncDecl.
type wireFuncDecl struct {
	Name       string      `json:"name"`
	Params     []wireParam `json:"params,omitempty"`
	ReturnType wireType    `json:"returnType"`
	Body       []wireStmt  `json:"body,omitempty"`
	Async      bool        `json:"async,omitempty"`
	Static     bool        `json:"static,omitempty"`
	Generator  bool        `json:"generator,omitempty"`
	Pos        wirePos     `json:"pos"`
}

// DecodeFuncDecl converts a wire function declaration into an
// *ast.FuncDecl (also used for class constructors/methods, which embed
// one).
func DecodeFuncDecl(w *wireFuncDecl) (*ast.FuncDecl, error) {
	if w == nil {
		return nil, nil
	}
	params, err := decodeParamList(w.Params)
	if err != nil {
		return nil, err
	}
	retType, err := DecodeType(&w.ReturnType)
	if err != nil {
		return nil, err
	}
	body, err := decodeStmtList(w.Body)
	if err != nil {
		return nil, err
	}
	return &ast.FuncDecl{
		Name: w.Name, Params: params, ReturnType: retType, Body: body,
		Async: w.Async, Static: w.Static, Generator: w.Generator, Pos: w.Pos.decode(),
	}, nil
}

func decodeAccess(s string) ast.Access {
	switch s {
	case "private":
		return ast.Private
	case "protected":
		return ast.Protected
	default:
		return ast.Public
	}
}

type wireField struct {
	Name     string   `json:"name"`
	Type     wireType `json:"type"`
	Readonly bool     `json:"readonly,omitempty"`
	Static   bool     `json:"static,omitempty"`
	Access   string   `json:"access,omitempty"`
	Pos      wirePos  `json:"pos"`
}

type wireMethod struct {
	Func      wireFuncDecl `json:"func"`
	Access    string       `json:"access,omitempty"`
	IsStatic  bool         `json:"isStatic,omitempty"`
	Overrides bool         `json:"overrides,omitempty"`
}

func decodeMethod(w wireMethod) (*ast.Method, error) {
	fn, err := DecodeFuncDecl(&w.Func)
	if err != nil {
		return nil, err
	}
	return &ast.Method{FuncDecl: fn, Access: decodeAccess(w.Access), IsStatic: w.IsStatic, Overrides: w.Overrides}, nil
}

type wireClassDecl struct {
	Name        string       `json:"name"`
	Fields      []wireField  `json:"fields,omitempty"`
	Methods     []wireMethod `json:"methods,omitempty"`
	Constructor *wireMethod  `json:"constructor,omitempty"`
	Base        string       `json:"base,omitempty"`
	Interfaces  []string     `json:"interfaces,omitempty"`
	Pos         wirePos      `json:"pos"`
}

func decodeClassDecl(w *wireClassDecl) (*ast.ClassDecl, error) {
	fields := make([]*ast.Field, len(w.Fields))
	for i, f := range w.Fields {
		t, err := DecodeType(&f.Type)
		if err != nil {
			return nil, err
		}
		fields[i] = &ast.Field{
			Name: f.Name, Type: t, Readonly: f.Readonly, Static: f.Static,
			Access: decodeAccess(f.Access), Pos: f.Pos.decode(),
		}
	}
	methods := make([]*ast.Method, len(w.Methods))
	for i, m := range w.Methods {
		dm, err := decodeMethod(m)
		if err != nil {
			return nil, err
		}
		methods[i] = dm
	}
	var ctor *ast.Method
	if w.Constructor != nil {
		dm, err := decodeMethod(*w.Constructor)
		if err != nil {
			return nil, err
		}
		ctor = dm
	}
	return &ast.ClassDecl{
		Name: w.Name, Fields: fields, Methods: methods, Constructor: ctor,
		Base: w.Base, Interfaces: w.Interfaces, Pos: w.Pos.decode(),
	}, nil
}

type wireMethodSig struct {
	Name   string      `json:"name"`
	Params []wireParam `json:"params,omitempty"`
	Return wireType    `json:"return"`
}

type wireInterfaceDecl struct {
	Name    string          `json:"name"`
	Methods []wireMethodSig `json:"methods,omitempty"`
	Pos     wirePos         `json:"pos"`
}

func decodeInterfaceDecl(w *wireInterfaceDecl) (*ast.InterfaceDecl, error) {
	methods := make([]*ast.MethodSig, len(w.Methods))
	for i, m := range w.Methods {
		params, err := decodeParamList(m.Params)
		if err != nil {
			return nil, err
		}
		ret, err := DecodeType(&m.Return)
		if err != nil {
			return nil, err
		}
		methods[i] = &ast.MethodSig{Name: m.Name, Params: params, Return: ret}
	}
	return &ast.InterfaceDecl{Name: w.Name, Methods: methods, Pos: w.Pos.decode()}, nil
}

// wireDecl is the tagged-union envelope for every top-level ast.Decl
// variant (function, class, interface, type alias, constant).
type wireDecl struct {
	Kind string `json:"kind"`

	Func      *wireFuncDecl      `json:"func,omitempty"`
	Class     *wireClassDecl     `json:"class,omitempty"`
	Interface *wireInterfaceDecl `json:"interface,omitempty"`

	// typeAlias
	Name    string    `json:"name,omitempty"`
	Aliased wireType  `json:"aliased,omitempty"`
	Pos     wirePos   `json:"pos,omitempty"`

	// constant
	Type wireType  `json:"type,omitempty"`
	Init *wireExpr `json:"init,omitempty"`
}

// DecodeDecl converts one wire top-level declaration into an ast.Decl.
func DecodeDecl(w *wireDecl) (ast.Decl, error) {
	switch w.Kind {
	case "function":
		return DecodeFuncDecl(w.Func)
	case "class":
		return decodeClassDecl(w.Class)
	case "interface":
		return decodeInterfaceDecl(w.Interface)
	case "typeAlias":
		aliased, err := DecodeType(&w.Aliased)
		if err != nil {
			return nil, err
		}
		return &ast.TypeAliasDecl{Name: w.Name, Aliased: aliased, Pos: w.Pos.decode()}, nil
	case "constant":
		t, err := DecodeType(&w.Type)
		if err != nil {
			return nil, err
		}
		init, err := DecodeExpr(w.Init)
		if err != nil {
			return nil, err
		}
		return &ast.ConstDecl{Name: w.Name, Type: t, Init: init, Pos: w.Pos.decode()}, nil
	default:
		return nil, fmt.Errorf("astjson: unknown declaration kind %q", w.Kind)
	}
}
