package schema

import "testing"

func TestAcceptsAllowsExactAndMinorForwardCompat(t *testing.T) {
	cases := []struct {
		got, want string
		ok        bool
	}{
		{DiagV1, DiagV1, true},
		{"goodscript.diag/v1.2", DiagV1, true},
		{"goodscript.diag/v2", DiagV1, false},
		{"goodscript.other/v1", DiagV1, false},
	}
	for _, tt := range cases {
		if got := Accepts(tt.got, tt.want); got != tt.ok {
			t.Errorf("Accepts(%q, %q) = %v, want %v", tt.got, tt.want, got, tt.ok)
		}
	}
}

func TestMarshalDeterministicSortsKeysAtEveryLevel(t *testing.T) {
	v := map[string]any{
		"zebra": map[string]any{"b": 2, "a": 1},
		"alpha": []any{map[string]any{"y": 1, "x": 2}},
	}
	data, err := MarshalDeterministic(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `{"alpha":[{"x":2,"y":1}],"zebra":{"a":1,"b":2}}`
	if string(data) != want {
		t.Errorf("got %s, want %s", data, want)
	}
}

func TestMarshalDeterministicIsStableAcrossCalls(t *testing.T) {
	v := map[string]any{"c": 3, "b": 2, "a": 1}
	first, err := MarshalDeterministic(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := MarshalDeterministic(v)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(again) != string(first) {
			t.Fatalf("output not stable across calls: %s vs %s", again, first)
		}
	}
}

func TestFormatJSONRespectsCompactMode(t *testing.T) {
	defer SetCompactMode(false)

	input := []byte(`{"a":1,"b":2}`)

	SetCompactMode(false)
	pretty, err := FormatJSON(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(pretty) == string(input) {
		t.Errorf("expected pretty output to differ from compact input, got %s", pretty)
	}

	SetCompactMode(true)
	compact, err := FormatJSON(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(compact) != string(input) {
		t.Errorf("expected compact output %s, got %s", input, compact)
	}
}
