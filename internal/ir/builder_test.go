package ir

import (
	"testing"

	"github.com/fcapolini/goodscript-sub002/internal/ast"
	"github.com/fcapolini/goodscript-sub002/internal/types"
)

var intType = &types.Primitive{Tag: types.Integer}

func TestVersionIsZeroBasedAndMonotonicPerName(t *testing.T) {
	b := NewBuilder()

	if v := b.Version("a"); v != 0 {
		t.Errorf("first Version(a) = %d, want 0", v)
	}
	if v := b.Version("a"); v != 1 {
		t.Errorf("second Version(a) = %d, want 1", v)
	}
	if v := b.Version("b"); v != 0 {
		t.Errorf("first Version(b) = %d, want 0", v)
	}
	if v := b.Version("a"); v != 2 {
		t.Errorf("third Version(a) = %d, want 2", v)
	}
}

func TestResetFunctionRestartsBlockAndVersionCounters(t *testing.T) {
	b := NewBuilder()

	b.Version("x")
	b.Version("x")
	b.NewBlock()
	b.NewBlock()

	b.ResetFunction()

	if v := b.Version("x"); v != 0 {
		t.Errorf("Version(x) after reset = %d, want 0", v)
	}
	if id := b.NewBlock(); id != 0 {
		t.Errorf("NewBlock after reset = %d, want 0", id)
	}
}

func TestResetFunctionDoesNotResetNodeIDCounter(t *testing.T) {
	b := NewBuilder()

	first := b.NewNode(ast.Pos{})
	b.ResetFunction()
	second := b.NewNode(ast.Pos{})

	if second.NodeID <= first.NodeID {
		t.Errorf("node ID did not keep advancing across ResetFunction: first=%d second=%d", first.NodeID, second.NodeID)
	}
}

func TestNewBlockReturnsDenseZeroBasedIDs(t *testing.T) {
	b := NewBuilder()

	for want := 0; want < 3; want++ {
		if got := b.NewBlock(); got != want {
			t.Errorf("NewBlock() = %d, want %d", got, want)
		}
	}
}

func TestNewNodeMintsIncreasingIDsStartingAtOne(t *testing.T) {
	b := NewBuilder()

	n1 := b.NewNode(ast.Pos{Line: 1})
	n2 := b.NewNode(ast.Pos{Line: 2})

	if n1.NodeID != 1 {
		t.Errorf("first NewNode id = %d, want 1", n1.NodeID)
	}
	if n2.NodeID != 2 {
		t.Errorf("second NewNode id = %d, want 2", n2.NodeID)
	}
	if n1.Loc != n1.OrigLoc {
		t.Errorf("Loc and OrigLoc should coincide at construction time")
	}
}

func TestIdentAssignsSuccessiveVersionsForRepeatedName(t *testing.T) {
	b := NewBuilder()

	first := b.Ident(ast.Pos{}, "x", intType)
	second := b.Ident(ast.Pos{}, "x", intType)

	if first.Version != 0 {
		t.Errorf("first Ident version = %d, want 0", first.Version)
	}
	if second.Version != 1 {
		t.Errorf("second Ident version = %d, want 1", second.Version)
	}
	if first.NodeID == second.NodeID {
		t.Errorf("successive Ident calls should mint distinct node IDs")
	}
	if first.Name != "x" || first.Typ != intType {
		t.Errorf("Ident did not preserve name/type, got %+v", first)
	}
}
