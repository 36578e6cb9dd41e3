package astjson

import (
	"testing"

	"github.com/fcapolini/goodscript-sub002/internal/ast"
	"github.com/fcapolini/goodscript-sub002/internal/types"
)

const addProgramJSON = `{
  "modules": [
    {
      "path": "add.ts",
      "decls": [
        {
          "kind": "function",
          "func": {
            "name": "add",
            "params": [
              {"name": "a", "type": {"kind": "primitive", "tag": "integer"}},
              {"name": "b", "type": {"kind": "primitive", "tag": "integer"}}
            ],
            "returnType": {"kind": "primitive", "tag": "integer"},
            "body": [
              {
                "kind": "return",
                "value": {
                  "kind": "binary",
                  "op": "+",
                  "left": {"kind": "identifier", "name": "a", "typ": {"kind": "primitive", "tag": "integer"}},
                  "right": {"kind": "identifier", "name": "b", "typ": {"kind": "primitive", "tag": "integer"}},
                  "typ": {"kind": "primitive", "tag": "integer"}
                }
              }
            ]
          }
        }
      ]
    }
  ]
}`

func TestDecodeProgramBuildsAFunctionDeclaration(t *testing.T) {
	prog, err := DecodeProgram([]byte(addProgramJSON))
	if err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	if len(prog.Modules) != 1 || prog.Modules[0].Path != "add.ts" {
		t.Fatalf("expected one module named add.ts, got %+v", prog.Modules)
	}
	decls := prog.Modules[0].Decls
	if len(decls) != 1 {
		t.Fatalf("expected one decl, got %d", len(decls))
	}
	fn, ok := decls[0].(*ast.FuncDecl)
	if !ok {
		t.Fatalf("expected *ast.FuncDecl, got %T", decls[0])
	}
	if fn.Name != "add" || len(fn.Params) != 2 {
		t.Fatalf("unexpected function shape: %+v", fn)
	}
	if !fn.ReturnType.Equals(types.TInteger) {
		t.Fatalf("expected integer return type, got %s", fn.ReturnType)
	}
	ret, ok := fn.Body[0].(*ast.ReturnStmt)
	if !ok {
		t.Fatalf("expected a return statement, got %T", fn.Body[0])
	}
	bin, ok := ret.Value.(*ast.BinaryExpr)
	if !ok || bin.Op != "+" {
		t.Fatalf("expected a + binary expr, got %+v", ret.Value)
	}
}

func TestDecodeTypeRoundTripsClassOwnership(t *testing.T) {
	w := &wireType{Kind: "class", Name: "Widget", Own: "share"}
	got, err := DecodeType(w)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	class, ok := got.(*types.Class)
	if !ok || class.Name != "Widget" || class.Own != types.Share {
		t.Fatalf("unexpected decoded class type: %+v", got)
	}
}

func TestDecodeTypeRejectsUnknownKind(t *testing.T) {
	w := &wireType{Kind: "bogus"}
	if _, err := DecodeType(w); err == nil {
		t.Fatal("expected an error for an unrecognized type kind")
	}
}
