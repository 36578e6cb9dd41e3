package astjson

import (
	"encoding/json"
	"fmt"

	"github.com/fcapolini/goodscript-sub002/internal/ast"
)

type wireImport struct {
	Path    string   `json:"path"`
	Symbols []string `json:"symbols,omitempty"`
	Pos     wirePos  `json:"pos"`
}

type wireModule struct {
	Path    string       `json:"path"`
	Imports []wireImport `json:"imports,omitempty"`
	Exports []string     `json:"exports,omitempty"`
	Decls   []wireDecl   `json:"decls"`
}

type wireProgram struct {
	Modules []wireModule `json:"modules"`
}

// DecodeProgram parses a JSON-encoded typed AST (the contract the
// upstream surface parser/type checker produces, spec §1.3) into an
// *ast.Program.
func DecodeProgram(data []byte) (*ast.Program, error) {
	var wp wireProgram
	if err := json.Unmarshal(data, &wp); err != nil {
		return nil, fmt.Errorf("astjson: invalid typed-AST JSON: %w", err)
	}

	modules := make([]*ast.Module, len(wp.Modules))
	for i, wm := range wp.Modules {
		imports := make([]*ast.Import, len(wm.Imports))
		for j, wi := range wm.Imports {
			imports[j] = &ast.Import{Path: wi.Path, Symbols: wi.Symbols, Pos: wi.Pos.decode()}
		}
		decls := make([]ast.Decl, len(wm.Decls))
		for j := range wm.Decls {
			d, err := DecodeDecl(&wm.Decls[j])
			if err != nil {
				return nil, fmt.Errorf("astjson: module %q decl %d: %w", wm.Path, j, err)
			}
			decls[j] = d
		}
		modules[i] = &ast.Module{Path: wm.Path, Imports: imports, Exports: wm.Exports, Decls: decls}
	}
	return &ast.Program{Modules: modules}, nil
}
