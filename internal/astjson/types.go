// Package astjson decodes the JSON-encoded typed AST the driver reads
// from disk into internal/ast's closed node set. The wire format tags
// each node with a "kind" string (mirroring the "kind"-tagged node
// encoding in the AleutianLocal corpus's ast package); each decoder
// switches on its own node's Kind field and recurses into nested wire
// nodes directly, rather than deferring through json.RawMessage.
//
// This is the shim spec §1.3 calls for: the real upstream type checker
// is out of scope, so the driver accepts its JSON output directly
// rather than re-deriving types from source.
package astjson

import (
	"fmt"

	"github.com/fcapolini/goodscript-sub002/internal/types"
)

// wireType is the tagged-union envelope for every types.Type variant.
type wireType struct {
	Kind     string      `json:"kind"`
	Tag      string      `json:"tag,omitempty"`
	Name     string      `json:"name,omitempty"`
	Own      string      `json:"own,omitempty"`
	TypeArgs []wireType  `json:"typeArgs,omitempty"`
	Element  *wireType   `json:"element,omitempty"`
	Key      *wireType   `json:"key,omitempty"`
	Value    *wireType   `json:"value,omitempty"`
	Params   []wireType  `json:"params,omitempty"`
	Return   *wireType   `json:"return,omitempty"`
	Types    []wireType  `json:"types,omitempty"`
	Inner    *wireType   `json:"inner,omitempty"`
}

func decodeOwnership(s string) types.Ownership {
	switch s {
	case "own":
		return types.Own
	case "share":
		return types.Share
	case "use":
		return types.Use
	case "value":
		return types.Value
	default:
		return types.NoOwnership
	}
}

func decodePrimitiveTag(s string) (types.PrimitiveTag, error) {
	switch s {
	case "number":
		return types.Number, nil
	case "integer":
		return types.Integer, nil
	case "integer53":
		return types.Integer53, nil
	case "string":
		return types.StringTag, nil
	case "boolean":
		return types.Boolean, nil
	case "void":
		return types.Void, nil
	default:
		return 0, fmt.Errorf("astjson: unknown primitive tag %q", s)
	}
}

// DecodeType converts one wire type node into a types.Type.
func DecodeType(w *wireType) (types.Type, error) {
	if w == nil {
		return nil, nil
	}
	switch w.Kind {
	case "primitive":
		tag, err := decodePrimitiveTag(w.Tag)
		if err != nil {
			return nil, err
		}
		return &types.Primitive{Tag: tag}, nil
	case "class":
		args, err := decodeTypeList(w.TypeArgs)
		if err != nil {
			return nil, err
		}
		return &types.Class{Name: w.Name, Own: decodeOwnership(w.Own), TypeArgs: args}, nil
	case "interface":
		args, err := decodeTypeList(w.TypeArgs)
		if err != nil {
			return nil, err
		}
		return &types.Interface{Name: w.Name, Own: decodeOwnership(w.Own), TypeArgs: args}, nil
	case "array":
		elem, err := DecodeType(w.Element)
		if err != nil {
			return nil, err
		}
		own := decodeOwnership(w.Own)
		if own == types.NoOwnership {
			own = types.Value
		}
		return &types.Array{Element: elem, Own: own}, nil
	case "map":
		key, err := DecodeType(w.Key)
		if err != nil {
			return nil, err
		}
		val, err := DecodeType(w.Value)
		if err != nil {
			return nil, err
		}
		own := decodeOwnership(w.Own)
		if own == types.NoOwnership {
			own = types.Value
		}
		return &types.Map{Key: key, Value: val, Own: own}, nil
	case "function":
		params, err := decodeTypeList(w.Params)
		if err != nil {
			return nil, err
		}
		ret, err := DecodeType(w.Return)
		if err != nil {
			return nil, err
		}
		return &types.Function{Params: params, Return: ret}, nil
	case "union":
		members, err := decodeTypeList(w.Types)
		if err != nil {
			return nil, err
		}
		return &types.Union{Types: members}, nil
	case "nullable":
		inner, err := DecodeType(w.Inner)
		if err != nil {
			return nil, err
		}
		return &types.Nullable{Inner: inner}, nil
	case "promise":
		inner, err := DecodeType(w.Inner)
		if err != nil {
			return nil, err
		}
		return &types.Promise{Inner: inner}, nil
	default:
		return nil, fmt.Errorf("astjson: unknown type kind %q", w.Kind)
	}
}

func decodeTypeList(ws []wireType) ([]types.Type, error) {
	if ws == nil {
		return nil, nil
	}
	out := make([]types.Type, len(ws))
	for i := range ws {
		t, err := DecodeType(&ws[i])
		if err != nil {
			return nil, err
		}
		out[i] = t
	}
	return out, nil
}
