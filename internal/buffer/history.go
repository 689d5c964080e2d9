package buffer

// history is a bounded undo/redo stack of snapshots.
type history struct {
	undo  []Snapshot
	redo  []Snapshot
	limit int
}

func newHistory(limit int) *history {
	return &history{limit: limit}
}

// push records the state before a change and forgets undone changes.
func (h *history) push(s Snapshot) {
	h.redo = h.redo[:0]
	if h.limit <= 0 {
		return
	}
	h.undo = append(h.undo, s)
	if over := len(h.undo) - h.limit; over > 0 {
		h.undo = append(h.undo[:0], h.undo[over:]...)
	}
}

func (h *history) popUndo(current Snapshot) (Snapshot, bool) {
	if len(h.undo) == 0 {
		return Snapshot{}, false
	}
	s := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, current)
	return s, true
}

func (h *history) popRedo(current Snapshot) (Snapshot, bool) {
	if len(h.redo) == 0 {
		return Snapshot{}, false
	}
	s := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, current)
	return s, true
}

func (h *history) clear() {
	h.undo = nil
	h.redo = nil
}
