package ime

const maxHistory = 100

type snapshot struct {
	text   string
	cursor int
}

// history holds checkpoints taken after syllable completions and after
// literal or destructive edits. The oldest entries are dropped past
// maxHistory.
type history struct {
	entries []snapshot
}

func (h *history) reset(initial snapshot) {
	h.entries = append(h.entries[:0], initial)
}

func (h *history) push(s snapshot) {
	if n := len(h.entries); n > 0 && h.entries[n-1] == s {
		return
	}
	h.entries = append(h.entries, s)
	if len(h.entries) > maxHistory {
		h.entries = append(h.entries[:0], h.entries[len(h.entries)-maxHistory:]...)
	}
}

// undo returns the most recent checkpoint whose text differs from current.
// The restored checkpoint stays on the stack so the next undo goes further
// back.
func (h *history) undo(current snapshot) (snapshot, bool) {
	for n := len(h.entries); n > 0; n = len(h.entries) {
		top := h.entries[n-1]
		if top.text != current.text {
			return top, true
		}
		if n == 1 {
			return snapshot{}, false
		}
		h.entries = h.entries[:n-1]
	}
	return snapshot{}, false
}
