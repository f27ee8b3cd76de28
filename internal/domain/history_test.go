package domain

import "testing"

func named(ids ...string) []Region {
	out := make([]Region, len(ids))
	for i, id := range ids {
		out[i] = Region{ID: id, QuestionNumber: i + 1}
	}
	return out
}

func firstID(regions []Region) string {
	if len(regions) == 0 {
		return ""
	}
	return regions[0].ID
}

func TestHistoryUndoRedo(t *testing.T) {
	h := NewHistory(nil, 10)
	h.Push(named("a"))
	h.Push(named("a", "b"))

	state, ok := h.Undo()
	if !ok || len(state) != 1 || firstID(state) != "a" {
		t.Fatalf("first Undo = %v, %v", state, ok)
	}
	state, ok = h.Undo()
	if !ok || len(state) != 0 {
		t.Fatalf("second Undo should reach the seeded empty state, got %v", state)
	}
	if _, ok := h.Undo(); ok {
		t.Fatal("Undo past the oldest snapshot must report false")
	}

	state, ok = h.Redo()
	if !ok || firstID(state) != "a" {
		t.Fatalf("Redo = %v, %v", state, ok)
	}
	state, ok = h.Redo()
	if !ok || len(state) != 2 {
		t.Fatalf("second Redo = %v, %v", state, ok)
	}
	if _, ok := h.Redo(); ok {
		t.Fatal("Redo past the newest snapshot must report false")
	}
}

func TestHistoryPushDiscardsRedoBranch(t *testing.T) {
	h := NewHistory(nil, 10)
	h.Push(named("a"))
	h.Push(named("a", "b"))
	if _, ok := h.Undo(); !ok {
		t.Fatal("Undo failed")
	}

	h.Push(named("a", "c"))

	if h.CanRedo() {
		t.Error("push after undo must discard the redo branch")
	}
	state, ok := h.Undo()
	if !ok || len(state) != 1 || firstID(state) != "a" {
		t.Errorf("Undo after branch discard = %v, %v", state, ok)
	}
}

func TestHistoryEviction(t *testing.T) {
	h := NewHistory(nil, 3)
	h.Push(named("a"))
	h.Push(named("a", "b"))
	h.Push(named("a", "b", "c"))

	if h.Len() != 3 {
		t.Fatalf("Len = %d, want 3 after eviction", h.Len())
	}

	// the seeded empty snapshot was evicted; undo bottoms out at "a"
	h.Undo()
	state, ok := h.Undo()
	if !ok || len(state) != 1 {
		t.Fatalf("Undo to oldest = %v, %v", state, ok)
	}
	if _, ok := h.Undo(); ok {
		t.Error("oldest snapshot after eviction should be the floor")
	}
}

func TestHistorySnapshotIsolation(t *testing.T) {
	h := NewHistory(nil, 10)
	regions := named("a")
	h.Push(regions)

	regions[0].ID = "mutated"
	h.Push(named("a", "b"))

	state, _ := h.Undo()
	if firstID(state) != "a" {
		t.Errorf("stored snapshot changed through the caller's slice: %v", state)
	}

	state[0].ID = "mutated-again"
	state, _ = h.Redo()
	state, _ = h.Undo()
	if firstID(state) != "a" {
		t.Errorf("stored snapshot changed through a returned slice: %v", state)
	}
}

func TestHistoryDefaultLimit(t *testing.T) {
	h := NewHistory(nil, 0)
	for i := 0; i < DefaultHistoryLimit+5; i++ {
		h.Push(named("a"))
	}
	if h.Len() != DefaultHistoryLimit {
		t.Errorf("Len = %d, want the default cap %d", h.Len(), DefaultHistoryLimit)
	}
}
