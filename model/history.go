package model

// historySize is how many recent generation hashes are kept for cycle detection
const historySize = 5

// History stores recent lattice hashes to detect still lifes and short oscillators
type History struct {
	hashes []string
}

// Record adds the current state of l to the history, keeping the last few entries
func (h *History) Record(l *Lattice) {
	h.hashes = append(h.hashes, l.Hash())
	if len(h.hashes) > historySize {
		h.hashes = h.hashes[1:]
	}
}

// IsStagnant reports whether l matches one of the last three recorded states
func (h *History) IsStagnant(l *Lattice) bool {
	if len(h.hashes) < 3 {
		return false
	}

	current := l.Hash()
	for i := 1; i <= 3; i++ {
		if h.hashes[len(h.hashes)-i] == current {
			return true
		}
	}
	return false
}

// Reset forgets every recorded state
func (h *History) Reset() {
	h.hashes = nil
}
