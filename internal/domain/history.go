package domain

// DefaultHistoryLimit caps session history when no limit is configured.
const DefaultHistoryLimit = 30

// History is a bounded linear undo/redo stack of region-list
// snapshots. Pushing past the cap evicts the oldest snapshot (FIFO);
// pushing after an undo discards the redo branch. Snapshots are deep
// copies and never alias caller state.
type History struct {
	snapshots [][]Region
	cursor    int
	limit     int
}

// NewHistory builds a history seeded with the given initial state, so
// the first undo after an edit restores that state.
func NewHistory(initial []Region, limit int) *History {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &History{
		snapshots: [][]Region{CloneRegions(initial)},
		limit:     limit,
	}
}

// Push records a new state after an edit. Snapshots beyond the cursor
// are discarded first, then the oldest snapshot is evicted if the
// stack overflows its cap.
func (h *History) Push(state []Region) {
	h.snapshots = append(h.snapshots[:h.cursor+1], CloneRegions(state))
	if overflow := len(h.snapshots) - h.limit; overflow > 0 {
		h.snapshots = h.snapshots[overflow:]
	}
	h.cursor = len(h.snapshots) - 1
}

// Undo steps the cursor back and returns that snapshot. ok is false at
// the oldest snapshot.
func (h *History) Undo() ([]Region, bool) {
	if h.cursor == 0 {
		return nil, false
	}
	h.cursor--
	return CloneRegions(h.snapshots[h.cursor]), true
}

// Redo steps the cursor forward and returns that snapshot. ok is false
// at the newest snapshot.
func (h *History) Redo() ([]Region, bool) {
	if h.cursor >= len(h.snapshots)-1 {
		return nil, false
	}
	h.cursor++
	return CloneRegions(h.snapshots[h.cursor]), true
}

// CanUndo reports whether a snapshot exists behind the cursor.
func (h *History) CanUndo() bool {
	return h.cursor > 0
}

// CanRedo reports whether a snapshot exists beyond the cursor.
func (h *History) CanRedo() bool {
	return h.cursor < len(h.snapshots)-1
}

// Len returns the number of stored snapshots.
func (h *History) Len() int {
	return len(h.snapshots)
}
