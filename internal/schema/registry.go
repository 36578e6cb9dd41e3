// Package schema provides deterministic JSON marshaling and schema
// version negotiation shared by the diagnostics and pipeline output
// surfaces.
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Schema version constants for every JSON document this compiler
// emits.
const (
	DiagV1    = "goodscript.diag/v1"
	CompileV1 = "goodscript.compile/v1"
	ConfigV1  = "goodscript.config/v1"
)

// Accepts reports whether a received schema version is compatible with
// an expected prefix, allowing forward-compatible minor versions
// (e.g. a reader expecting "goodscript.diag/v1" accepts
// "goodscript.diag/v1.2").
func Accepts(got, wantPrefix string) bool {
	if got == wantPrefix {
		return true
	}
	if strings.HasPrefix(got, wantPrefix+".") {
		return true
	}
	if strings.HasSuffix(wantPrefix, "/v1") && strings.HasPrefix(got, strings.TrimSuffix(wantPrefix, "1")+"1.") {
		return true
	}
	return false
}

// MarshalDeterministic marshals v to JSON with object keys sorted
// lexically at every nesting level, independent of Go's map iteration
// order.
func MarshalDeterministic(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("initial marshal failed: %w", err)
	}
	data := bytes.TrimSuffix(buf.Bytes(), []byte("\n"))

	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return data, nil
	}
	return marshalSorted(m)
}

func marshalSorted(v any) ([]byte, error) {
	switch val := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		var out bytes.Buffer
		out.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				out.WriteByte(',')
			}
			keyJSON, err := json.Marshal(k)
			if err != nil {
				return nil, err
			}
			valJSON, err := marshalSorted(val[k])
			if err != nil {
				return nil, err
			}
			out.Write(keyJSON)
			out.WriteByte(':')
			out.Write(valJSON)
		}
		out.WriteByte('}')
		return out.Bytes(), nil

	case []any:
		var out bytes.Buffer
		out.WriteByte('[')
		for i, item := range val {
			if i > 0 {
				out.WriteByte(',')
			}
			itemJSON, err := marshalSorted(item)
			if err != nil {
				return nil, err
			}
			out.Write(itemJSON)
		}
		out.WriteByte(']')
		return out.Bytes(), nil

	default:
		return json.Marshal(v)
	}
}

// CompactMode controls whether FormatJSON compacts or pretty-prints.
var CompactMode = false

// SetCompactMode toggles CompactMode.
func SetCompactMode(enabled bool) { CompactMode = enabled }

// FormatJSON re-renders data per CompactMode.
func FormatJSON(data []byte) ([]byte, error) {
	if CompactMode {
		var buf bytes.Buffer
		if err := json.Compact(&buf, data); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
