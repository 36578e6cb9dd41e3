package astjson

import (
	"fmt"

	"github.com/fcapolini/goodscript-sub002/internal/ast"
)

// wireStmt is the tagged-union envelope for every ast.Stmt variant.
type wireStmt struct {
	Kind string  `json:"kind"`
	Pos  wirePos `json:"pos"`

	// varDecl
	Name  string    `json:"name,omitempty"`
	Type  *wireType `json:"type,omitempty"`
	Init  *wireExpr `json:"init,omitempty"`
	Const bool      `json:"const,omitempty"`

	// funcDecl
	Decl *wireFuncDecl `json:"decl,omitempty"`

	// exprStmt / throw
	Expr *wireExpr `json:"expr,omitempty"`

	// return / throw (reuses Expr above for throw's value)
	Value *wireExpr `json:"value,omitempty"`

	// if / while / for / forOf / block
	Cond *wireExpr  `json:"cond,omitempty"`
	Then []wireStmt `json:"then,omitempty"`
	Else []wireStmt `json:"else,omitempty"`
	Body []wireStmt `json:"body,omitempty"`

	// for
	ForInit *wireStmt `json:"forInit,omitempty"`
	Incr    *wireExpr `json:"incr,omitempty"`

	// forOf
	Iterable *wireExpr `json:"iterable,omitempty"`

	// try
	Try        []wireStmt `json:"try,omitempty"`
	CatchParam string     `json:"catchParam,omitempty"`
	HasCatch   bool       `json:"hasCatch,omitempty"`
	Catch      []wireStmt `json:"catch,omitempty"`
	Finally    []wireStmt `json:"finally,omitempty"`
}

// DecodeStmt converts one wire statement node into an ast.Stmt.
func DecodeStmt(w *wireStmt) (ast.Stmt, error) {
	if w == nil {
		return nil, nil
	}
	pos := w.Pos.decode()

	switch w.Kind {
	case "varDecl":
		t, err := DecodeType(w.Type)
		if err != nil {
			return nil, err
		}
		init, err := DecodeExpr(w.Init)
		if err != nil {
			return nil, err
		}
		return &ast.VarDeclStmt{Name: w.Name, Type: t, Init: init, Const: w.Const, Pos: pos}, nil

	case "funcDecl":
		decl, err := DecodeFuncDecl(w.Decl)
		if err != nil {
			return nil, err
		}
		return &ast.FuncDeclStmt{Decl: decl, Pos: pos}, nil

	case "exprStmt":
		expr, err := DecodeExpr(w.Expr)
		if err != nil {
			return nil, err
		}
		return &ast.ExprStmt{Expr: expr, Pos: pos}, nil

	case "return":
		value, err := DecodeExpr(w.Value)
		if err != nil {
			return nil, err
		}
		return &ast.ReturnStmt{Value: value, Pos: pos}, nil

	case "if":
		cond, err := DecodeExpr(w.Cond)
		if err != nil {
			return nil, err
		}
		then, err := decodeStmtList(w.Then)
		if err != nil {
			return nil, err
		}
		els, err := decodeStmtList(w.Else)
		if err != nil {
			return nil, err
		}
		return &ast.IfStmt{Cond: cond, Then: then, Else: els, Pos: pos}, nil

	case "while":
		cond, err := DecodeExpr(w.Cond)
		if err != nil {
			return nil, err
		}
		body, err := decodeStmtList(w.Body)
		if err != nil {
			return nil, err
		}
		return &ast.WhileStmt{Cond: cond, Body: body, Pos: pos}, nil

	case "for":
		init, err := DecodeStmt(w.ForInit)
		if err != nil {
			return nil, err
		}
		cond, err := DecodeExpr(w.Cond)
		if err != nil {
			return nil, err
		}
		incr, err := DecodeExpr(w.Incr)
		if err != nil {
			return nil, err
		}
		body, err := decodeStmtList(w.Body)
		if err != nil {
			return nil, err
		}
		return &ast.ForStmt{Init: init, Cond: cond, Incr: incr, Body: body, Pos: pos}, nil

	case "forOf":
		iterable, err := DecodeExpr(w.Iterable)
		if err != nil {
			return nil, err
		}
		body, err := decodeStmtList(w.Body)
		if err != nil {
			return nil, err
		}
		return &ast.ForOfStmt{Name: w.Name, Iterable: iterable, Body: body, Pos: pos}, nil

	case "block":
		body, err := decodeStmtList(w.Body)
		if err != nil {
			return nil, err
		}
		return &ast.BlockStmt{Body: body, Pos: pos}, nil

	case "throw":
		value, err := DecodeExpr(w.Expr)
		if err != nil {
			return nil, err
		}
		return &ast.ThrowStmt{Value: value, Pos: pos}, nil

	case "try":
		tryBody, err := decodeStmtList(w.Try)
		if err != nil {
			return nil, err
		}
		catchBody, err := decodeStmtList(w.Catch)
		if err != nil {
			return nil, err
		}
		finallyBody, err := decodeStmtList(w.Finally)
		if err != nil {
			return nil, err
		}
		return &ast.TryStmt{
			Try: tryBody, CatchParam: w.CatchParam, HasCatch: w.HasCatch,
			Catch: catchBody, Finally: finallyBody, Pos: pos,
		}, nil

	case "break":
		return &ast.BreakStmt{Pos: pos}, nil

	case "continue":
		return &ast.ContinueStmt{Pos: pos}, nil

	default:
		return nil, fmt.Errorf("astjson: unknown statement kind %q", w.Kind)
	}
}

func decodeStmtList(ws []wireStmt) ([]ast.Stmt, error) {
	if ws == nil {
		return nil, nil
	}
	out := make([]ast.Stmt, len(ws))
	for i := range ws {
		s, err := DecodeStmt(&ws[i])
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}
