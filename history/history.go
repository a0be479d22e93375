// Package history provides an explicit undo/redo history over canonical
// document snapshots. A History value is owned by the caller, one per
// editing session; nothing here is process-wide state.
package history

import "github.com/google/uuid"

// History holds canonical document encodings in acceptance order with a
// cursor for undo/redo. The zero number of snapshots means no document
// has been accepted yet.
type History struct {
	sessionID string
	snapshots []string
	cursor    int
}

// New creates an empty history with a fresh session id.
func New() *History {
	return &History{sessionID: uuid.New().String(), cursor: -1}
}

// SessionID identifies the editing session this history belongs to.
func (h *History) SessionID() string { return h.sessionID }

// Len returns the number of recorded snapshots.
func (h *History) Len() int { return len(h.snapshots) }

// Current returns the snapshot at the cursor.
func (h *History) Current() (string, bool) {
	if h.cursor < 0 || h.cursor >= len(h.snapshots) {
		return "", false
	}
	return h.snapshots[h.cursor], true
}

// Push records a newly accepted snapshot, discarding any redo tail.
// Pushing a snapshot identical to the current one is a no-op, so
// repeated change notifications with no semantic change do not pollute
// the history.
func (h *History) Push(canonical string) {
	if current, ok := h.Current(); ok && current == canonical {
		return
	}
	h.snapshots = append(h.snapshots[:h.cursor+1], canonical)
	h.cursor = len(h.snapshots) - 1
}

// Undo moves the cursor back and returns the snapshot there.
func (h *History) Undo() (string, bool) {
	if h.cursor <= 0 {
		return "", false
	}
	h.cursor--
	return h.snapshots[h.cursor], true
}

// Redo moves the cursor forward and returns the snapshot there.
func (h *History) Redo() (string, bool) {
	if h.cursor+1 >= len(h.snapshots) {
		return "", false
	}
	h.cursor++
	return h.snapshots[h.cursor], true
}
