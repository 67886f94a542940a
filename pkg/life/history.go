package life

import "golife/pkg/core"

// HistoryDepth is the number of past boards kept for periodicity detection.
// Cycles longer than this go unnoticed.
const HistoryDepth = 100

// History is a fixed-capacity ring of past boards ordered newest first.
type History struct {
	buf  []*core.Grid
	head int // index of the newest entry
	n    int
}

// NewHistory returns an empty history holding at most capacity boards.
func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = 1
	}
	return &History{buf: make([]*core.Grid, capacity)}
}

// Cap returns the maximum number of retained boards.
func (h *History) Cap() int { return len(h.buf) }

// Len returns the number of retained boards.
func (h *History) Len() int { return h.n }

// PushFront records g as the newest entry, evicting the oldest when full.
// The history takes ownership of g.
func (h *History) PushFront(g *core.Grid) {
	h.head = (h.head - 1 + len(h.buf)) % len(h.buf)
	h.buf[h.head] = g
	if h.n < len(h.buf) {
		h.n++
	}
}

// At returns the i-th newest entry; At(0) is the most recent.
func (h *History) At(i int) *core.Grid {
	if i < 0 || i >= h.n {
		return nil
	}
	return h.buf[(h.head+i)%len(h.buf)]
}

// Each calls fn for every entry from newest to oldest until fn returns false.
func (h *History) Each(fn func(i int, g *core.Grid) bool) {
	for i := 0; i < h.n; i++ {
		if !fn(i, h.At(i)) {
			return
		}
	}
}

// Clear drops every entry.
func (h *History) Clear() {
	for i := range h.buf {
		h.buf[i] = nil
	}
	h.head = 0
	h.n = 0
}
