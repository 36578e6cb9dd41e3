package diagnostics

import (
	"strings"
	"testing"
)

func TestReportErrorUnwrapsThroughErrorsAs(t *testing.T) {
	rep := New(LOW001, "unsupported construct", nil, nil)
	err := WrapReport(rep)
	got, ok := AsReport(err)
	if !ok || got.Code != LOW001 {
		t.Fatalf("expected AsReport to recover the wrapped report, got %v ok=%v", got, ok)
	}
}

func TestCollectorAccumulatesWithoutAborting(t *testing.T) {
	c := NewCollector()
	c.Add(LOW001, "first", nil, nil)
	c.Add(LOW002, "second", nil, nil)
	if !c.HasErrors() {
		t.Fatalf("expected HasErrors to be true")
	}
	if len(c.Reports()) != 2 {
		t.Fatalf("expected 2 collected reports, got %d", len(c.Reports()))
	}
}

func TestSortedByCodeIsDeterministic(t *testing.T) {
	c := NewCollector()
	c.Add(LOW002, "b", nil, nil)
	c.Add(LOW001, "a", nil, nil)
	sorted := c.SortedByCode()
	if sorted[0].Code != LOW001 || sorted[1].Code != LOW002 {
		t.Fatalf("expected reports sorted by code, got %+v", sorted)
	}
}

func TestToJSONIsDeterministicAcrossCalls(t *testing.T) {
	c := NewCollector()
	c.Add(LOW002, "b", nil, nil)
	c.Add(LOW001, "a", nil, nil)
	first, err := c.ToJSON(false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := c.ToJSON(false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Fatalf("expected identical JSON across calls")
	}
	if !strings.Contains(first, LOW001) || !strings.Contains(first, LOW002) {
		t.Fatalf("expected both codes present in JSON output: %s", first)
	}
}

func TestIsInternalOnlyForIRCodes(t *testing.T) {
	if !IsInternal(IR001) {
		t.Fatalf("expected IR001 to be internal")
	}
	if IsInternal(LOW001) {
		t.Fatalf("expected LOW001 to not be internal")
	}
}
