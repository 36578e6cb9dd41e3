package diagnostics

import (
	"bytes"
	"encoding/json"
	stderrors "errors"

	"github.com/fcapolini/goodscript-sub002/internal/ast"
	"github.com/fcapolini/goodscript-sub002/internal/schema"
)

// Report is the structured diagnostic emitted by every compiler phase.
// It is built to round-trip through JSON with deterministic field
// ordering (struct field order, not map iteration) for tooling.
type Report struct {
	Schema  string         `json:"schema"`
	Code    string         `json:"code"`
	Phase   string         `json:"phase"`
	Message string         `json:"message"`
	Span    *ast.Span      `json:"span,omitempty"`
	Data    map[string]any `json:"data,omitempty"`
}

// ReportError wraps a Report so it survives errors.As() unwrapping
// across the pipeline's phase boundaries.
type ReportError struct {
	Rep *Report
}

func (e *ReportError) Error() string {
	if e.Rep == nil {
		return "unknown diagnostic"
	}
	return e.Rep.Code + ": " + e.Rep.Message
}

// AsReport extracts a Report from an error chain, if present.
func AsReport(err error) (*Report, bool) {
	var re *ReportError
	if stderrors.As(err, &re) {
		return re.Rep, true
	}
	return nil, false
}

// WrapReport wraps a Report as an error for return from fallible phase
// functions.
func WrapReport(r *Report) error {
	if r == nil {
		return nil
	}
	return &ReportError{Rep: r}
}

// New builds a Report for code, resolving its phase from the registry.
func New(code, message string, span *ast.Span, data map[string]any) *Report {
	phase := ""
	if info, ok := Info(code); ok {
		phase = info.Phase
	}
	return &Report{Schema: schema.DiagV1, Code: code, Phase: phase, Message: message, Span: span, Data: data}
}

// ToJSON renders the report with deterministic (sorted-key) field
// ordering, indented when pretty is true.
func (r *Report) ToJSON(pretty bool) (string, error) {
	raw, err := schema.MarshalDeterministic(r)
	if err != nil {
		return "", err
	}
	if pretty {
		var buf bytes.Buffer
		if err := json.Indent(&buf, raw, "", "  "); err != nil {
			return "", err
		}
		return buf.String(), nil
	}
	return string(raw), nil
}
