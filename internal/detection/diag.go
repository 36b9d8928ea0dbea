package detection

import "sync"

// Ring is a bounded diagnostics buffer receiving one line per significant
// decision. It is best-effort and never on the decision path: a nil Ring is
// valid and drops everything.
type Ring struct {
	mu    sync.Mutex
	lines []string
	next  int
	full  bool
}

// NewRing makes a ring holding at most capacity lines.
func NewRing(capacity int) *Ring {
	if capacity <= 0 {
		return nil
	}
	return &Ring{lines: make([]string, capacity)}
}

// Add records a line, evicting the oldest when full.
func (r *Ring) Add(line string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.lines[r.next] = line
	r.next++
	if r.next == len(r.lines) {
		r.next = 0
		r.full = true
	}
	r.mu.Unlock()
}

// Dump returns the buffered lines, oldest first.
func (r *Ring) Dump() []string {
	if r == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []string
	if r.full {
		out = append(out, r.lines[r.next:]...)
	}
	out = append(out, r.lines[:r.next]...)
	return out
}
