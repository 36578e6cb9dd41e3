package astjson

import (
	"fmt"

	"github.com/fcapolini/goodscript-sub002/internal/ast"
)

// wireExpr is the tagged-union envelope for every ast.Expr variant.
// Every field beyond Kind/Pos/Typ is variant-specific and left at its
// zero value for kinds that don't use it.
type wireExpr struct {
	Kind string  `json:"kind"`
	Pos  wirePos `json:"pos"`
	Typ  wireType `json:"typ"`

	// literal
	LiteralKind string      `json:"literalKind,omitempty"`
	Value       interface{} `json:"value,omitempty"`

	// identifier / member / methodCall / new
	Name string `json:"name,omitempty"`

	// binary / unary / assignment
	Op string `json:"op,omitempty"`

	// binary / assignment
	Left  *wireExpr `json:"left,omitempty"`
	Right *wireExpr `json:"right,omitempty"`

	// unary
	Operand *wireExpr `json:"operand,omitempty"`

	// conditional
	Cond *wireExpr `json:"cond,omitempty"`
	Then *wireExpr `json:"then,omitempty"`
	Else *wireExpr `json:"else,omitempty"`

	// member / index / methodCall
	Object   *wireExpr `json:"object,omitempty"`
	Optional bool      `json:"optional,omitempty"`

	// index
	Index *wireExpr `json:"index,omitempty"`

	// call / methodCall / new
	Callee  *wireExpr   `json:"callee,omitempty"`
	Args    []wireExpr  `json:"args,omitempty"`
	Method  string      `json:"method,omitempty"`
	Builtin string      `json:"builtin,omitempty"`

	// new
	ClassName string     `json:"className,omitempty"`
	TypeArgs  []wireType `json:"typeArgs,omitempty"`

	// array literal
	Elements []wireExpr `json:"elements,omitempty"`

	// object literal
	Fields []wireObjectField `json:"fields,omitempty"`

	// assignment: Target is its own field; the assigned value is carried
	// in Right (reused rather than adding a second "value" key, which
	// would collide with the literal Value field above).
	Target *wireExpr `json:"target,omitempty"`

	// lambda
	Params     []wireParam `json:"params,omitempty"`
	ReturnType *wireType   `json:"returnType,omitempty"`
	Body       []wireStmt  `json:"body,omitempty"`
	Async      bool        `json:"async,omitempty"`
	Captures   []string    `json:"captures,omitempty"`

	// template literal
	Parts []string   `json:"parts,omitempty"`
	Exprs []wireExpr `json:"exprs,omitempty"`

	// await
	Promise *wireExpr `json:"promise,omitempty"`
}

type wireObjectField struct {
	Name  string   `json:"name"`
	Value wireExpr `json:"value"`
}

type wireParam struct {
	Name string   `json:"name"`
	Type wireType `json:"type"`
}

type wirePos struct {
	Line   int    `json:"line"`
	Column int    `json:"column"`
	File   string `json:"file"`
	Offset int    `json:"offset"`
}

func (p wirePos) decode() ast.Pos {
	return ast.Pos{Line: p.Line, Column: p.Column, File: p.File, Offset: p.Offset}
}

func decodeLiteralKind(s string) (ast.LiteralKind, error) {
	switch s {
	case "int":
		return ast.IntLit, nil
	case "float":
		return ast.FloatLit, nil
	case "string":
		return ast.StringLit, nil
	case "bool":
		return ast.BoolLit, nil
	case "null":
		return ast.NullLit, nil
	case "undefined":
		return ast.UndefinedLit, nil
	default:
		return 0, fmt.Errorf("astjson: unknown literal kind %q", s)
	}
}

// DecodeExpr converts one wire expression node into an ast.Expr.
func DecodeExpr(w *wireExpr) (ast.Expr, error) {
	if w == nil {
		return nil, nil
	}
	pos := w.Pos.decode()
	typ, err := DecodeType(&w.Typ)
	if err != nil {
		return nil, err
	}

	switch w.Kind {
	case "literal":
		kind, err := decodeLiteralKind(w.LiteralKind)
		if err != nil {
			return nil, err
		}
		return &ast.Literal{Kind: kind, Value: w.Value, Typ: typ, Pos: pos}, nil

	case "identifier":
		return &ast.Identifier{Name: w.Name, Typ: typ, Pos: pos}, nil

	case "binary":
		left, err := DecodeExpr(w.Left)
		if err != nil {
			return nil, err
		}
		right, err := DecodeExpr(w.Right)
		if err != nil {
			return nil, err
		}
		return &ast.BinaryExpr{Op: w.Op, Left: left, Right: right, Typ: typ, Pos: pos}, nil

	case "unary":
		operand, err := DecodeExpr(w.Operand)
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{Op: w.Op, Operand: operand, Typ: typ, Pos: pos}, nil

	case "conditional":
		cond, err := DecodeExpr(w.Cond)
		if err != nil {
			return nil, err
		}
		then, err := DecodeExpr(w.Then)
		if err != nil {
			return nil, err
		}
		els, err := DecodeExpr(w.Else)
		if err != nil {
			return nil, err
		}
		return &ast.ConditionalExpr{Cond: cond, Then: then, Else: els, Typ: typ, Pos: pos}, nil

	case "member":
		obj, err := DecodeExpr(w.Object)
		if err != nil {
			return nil, err
		}
		return &ast.MemberExpr{Object: obj, Name: w.Name, Optional: w.Optional, Typ: typ, Pos: pos}, nil

	case "index":
		obj, err := DecodeExpr(w.Object)
		if err != nil {
			return nil, err
		}
		idx, err := DecodeExpr(w.Index)
		if err != nil {
			return nil, err
		}
		return &ast.IndexExpr{Object: obj, Index: idx, Typ: typ, Pos: pos}, nil

	case "call":
		callee, err := DecodeExpr(w.Callee)
		if err != nil {
			return nil, err
		}
		args, err := decodeExprList(w.Args)
		if err != nil {
			return nil, err
		}
		return &ast.CallExpr{Callee: callee, Args: args, Typ: typ, Pos: pos}, nil

	case "methodCall":
		obj, err := DecodeExpr(w.Object)
		if err != nil {
			return nil, err
		}
		args, err := decodeExprList(w.Args)
		if err != nil {
			return nil, err
		}
		return &ast.MethodCallExpr{Object: obj, Method: w.Method, Args: args, Builtin: w.Builtin, Typ: typ, Pos: pos}, nil

	case "new":
		args, err := decodeExprList(w.Args)
		if err != nil {
			return nil, err
		}
		typeArgs, err := decodeTypeList(w.TypeArgs)
		if err != nil {
			return nil, err
		}
		return &ast.NewExpr{ClassName: w.ClassName, Args: args, TypeArgs: typeArgs, Typ: typ, Pos: pos}, nil

	case "arrayLiteral":
		elems, err := decodeExprList(w.Elements)
		if err != nil {
			return nil, err
		}
		return &ast.ArrayLiteralExpr{Elements: elems, Typ: typ, Pos: pos}, nil

	case "objectLiteral":
		fields := make([]ast.ObjectField, len(w.Fields))
		for i, f := range w.Fields {
			val, err := DecodeExpr(&f.Value)
			if err != nil {
				return nil, err
			}
			fields[i] = ast.ObjectField{Name: f.Name, Value: val}
		}
		return &ast.ObjectLiteralExpr{Fields: fields, Typ: typ, Pos: pos}, nil

	case "assignment":
		target, err := DecodeExpr(w.Target)
		if err != nil {
			return nil, err
		}
		value, err := DecodeExpr(w.Right)
		if err != nil {
			return nil, err
		}
		return &ast.AssignmentExpr{Target: target, Value: value, Op: w.Op, Typ: typ, Pos: pos}, nil

	case "lambda":
		params, err := decodeParamList(w.Params)
		if err != nil {
			return nil, err
		}
		retType, err := DecodeType(w.ReturnType)
		if err != nil {
			return nil, err
		}
		body, err := decodeStmtList(w.Body)
		if err != nil {
			return nil, err
		}
		return &ast.LambdaExpr{Params: params, ReturnType: retType, Body: body, Async: w.Async, Captures: w.Captures, Typ: typ, Pos: pos}, nil

	case "templateLiteral":
		exprs, err := decodeExprList(w.Exprs)
		if err != nil {
			return nil, err
		}
		return &ast.TemplateLiteralExpr{Parts: w.Parts, Exprs: exprs, Typ: typ, Pos: pos}, nil

	case "await":
		promise, err := DecodeExpr(w.Promise)
		if err != nil {
			return nil, err
		}
		return &ast.AwaitExpr{Promise: promise, Typ: typ, Pos: pos}, nil

	default:
		return nil, fmt.Errorf("astjson: unknown expression kind %q", w.Kind)
	}
}

func decodeExprList(ws []wireExpr) ([]ast.Expr, error) {
	if ws == nil {
		return nil, nil
	}
	out := make([]ast.Expr, len(ws))
	for i := range ws {
		e, err := DecodeExpr(&ws[i])
		if err != nil {
			return nil, err
		}
		out[i] = e
	}
	return out, nil
}

func decodeParamList(ws []wireParam) ([]*ast.Param, error) {
	if ws == nil {
		return nil, nil
	}
	out := make([]*ast.Param, len(ws))
	for i, w := range ws {
		t, err := DecodeType(&w.Type)
		if err != nil {
			return nil, err
		}
		out[i] = &ast.Param{Name: w.Name, Type: t}
	}
	return out, nil
}
