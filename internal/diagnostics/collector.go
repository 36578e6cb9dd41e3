package diagnostics

import (
	"encoding/json"
	"sort"

	"github.com/fcapolini/goodscript-sub002/internal/ast"
)

// Collector accumulates reports across a phase without aborting on the
// first one (spec §4.3: lowering "collects diagnostics rather than
// aborting on the first error"). It is not safe for concurrent use by
// design — each phase owns one Collector and runs single-threaded over
// its input tree.
type Collector struct {
	reports []*Report
}

// NewCollector returns an empty Collector.
func NewCollector() *Collector { return &Collector{} }

// Add appends a report built from code/message/span/data.
func (c *Collector) Add(code, message string, span *ast.Span, data map[string]any) {
	c.reports = append(c.reports, New(code, message, span, data))
}

// AddReport appends an already-built report.
func (c *Collector) AddReport(r *Report) {
	if r != nil {
		c.reports = append(c.reports, r)
	}
}

// HasErrors reports whether any diagnostic was collected.
func (c *Collector) HasErrors() bool { return len(c.reports) > 0 }

// Reports returns the collected reports in insertion order.
func (c *Collector) Reports() []*Report { return c.reports }

// SortedByCode returns a copy of the reports sorted by (code, message)
// for deterministic golden-file comparison.
func (c *Collector) SortedByCode() []*Report {
	out := make([]*Report, len(c.reports))
	copy(out, c.reports)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Code != out[j].Code {
			return out[i].Code < out[j].Code
		}
		return out[i].Message < out[j].Message
	})
	return out
}

// ToJSON renders every collected report as a JSON array, sorted by
// code for determinism across runs.
func (c *Collector) ToJSON(pretty bool) (string, error) {
	reports := c.SortedByCode()
	if reports == nil {
		reports = []*Report{}
	}
	var data []byte
	var err error
	if pretty {
		data, err = json.MarshalIndent(reports, "", "  ")
	} else {
		data, err = json.Marshal(reports)
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}
