package model

// historySize is how many recent generations are remembered for cycle detection
const historySize = 5

// History remembers the hashes of recent generations so the driver can tell
// when the board has settled into a still life or a short cycle
type History struct {
	hashes []string
}

// Record adds g to the history, dropping the oldest entry past historySize
func (h *History) Record(g *Grid) {
	h.hashes = append(h.hashes, g.GetGridHash())
	if len(h.hashes) > historySize {
		h.hashes = h.hashes[1:]
	}
}

// IsStagnant reports whether g repeats one of the last three recorded generations
func (h *History) IsStagnant(g *Grid) bool {
	current := g.GetGridHash()
	for i := 1; i <= 3 && i <= len(h.hashes); i++ {
		if h.hashes[len(h.hashes)-i] == current {
			return true
		}
	}
	return false
}
