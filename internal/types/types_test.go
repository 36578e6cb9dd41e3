package types

import "testing"

func TestUnionNormalizeDedupesAndSorts(t *testing.T) {
	u := &Union{Types: []Type{TString, TNumber, TString}}
	got := u.Normalize()
	want := "number|string"
	if got.Canonical() != want {
		t.Fatalf("Canonical() = %q, want %q", got.Canonical(), want)
	}
}

func TestUnionNormalizeFlattensNested(t *testing.T) {
	inner := &Union{Types: []Type{TBoolean, TNumber}}
	outer := &Union{Types: []Type{TString, inner}}
	got := outer.Normalize()
	union, ok := got.(*Union)
	if !ok {
		t.Fatalf("expected *Union, got %T", got)
	}
	if len(union.Types) != 3 {
		t.Fatalf("expected 3 flattened members, got %d (%s)", len(union.Types), union.Canonical())
	}
}

func TestUnionNormalizeSingleMemberCollapses(t *testing.T) {
	u := &Union{Types: []Type{TNumber, TNumber}}
	got := u.Normalize()
	if _, ok := got.(*Union); ok {
		t.Fatalf("expected collapse to bare type, got Union: %s", got.Canonical())
	}
	if !got.Equals(TNumber) {
		t.Fatalf("expected TNumber, got %s", got.Canonical())
	}
}

func TestUnionNormalizeIdempotent(t *testing.T) {
	u := &Union{Types: []Type{TString, TNumber, TBoolean}}
	once := u.Normalize()
	onceUnion, ok := once.(*Union)
	if !ok {
		t.Fatalf("expected *Union after first normalize")
	}
	twice := onceUnion.Normalize()
	if once.Canonical() != twice.Canonical() {
		t.Fatalf("normalize not idempotent: %s != %s", once.Canonical(), twice.Canonical())
	}
}

func TestClassEqualityRespectsOwnership(t *testing.T) {
	a := &Class{Name: "Point", Own: Own}
	b := &Class{Name: "Point", Own: Share}
	if a.Equals(b) {
		t.Fatalf("classes with different ownership should not be equal")
	}
	c := &Class{Name: "Point", Own: Own}
	if !a.Equals(c) {
		t.Fatalf("classes with identical name+ownership should be equal")
	}
}

func TestArrayCanonicalIncludesValueOwnership(t *testing.T) {
	arr := &Array{Element: TNumber, Own: Value}
	if arr.Canonical() != "Array<number,value>" {
		t.Fatalf("unexpected canonical string: %s", arr.Canonical())
	}
}
