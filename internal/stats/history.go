package stats

import (
	"crypto/md5"
	"encoding/hex"

	"lifefb/internal/core"
)

// DefaultDepth is how many recent generations a History remembers.
const DefaultDepth = 5

// History keeps digests of the most recent grid states so a driver can tell
// when a run has settled into a still life or short-period oscillator.
type History struct {
	depth   int
	digests []string
}

// NewHistory returns a History remembering up to depth states.
func NewHistory(depth int) *History {
	if depth <= 0 {
		depth = DefaultDepth
	}
	return &History{depth: depth}
}

// Digest returns an MD5 digest of the grid's liveness.
func Digest(g *core.Grid) string {
	h := md5.New()
	buf := make([]byte, len(g.Cells()))
	for i, c := range g.Cells() {
		if c {
			buf[i] = 1
		}
	}
	h.Write(buf)
	return hex.EncodeToString(h.Sum(nil))
}

// Observe records g and reports whether it repeats one of the remembered
// states, returning the period found (0 when none).
func (h *History) Observe(g *core.Grid) (period int) {
	d := Digest(g)
	for i := len(h.digests) - 1; i >= 0; i-- {
		if h.digests[i] == d {
			period = len(h.digests) - i
			break
		}
	}
	h.digests = append(h.digests, d)
	if len(h.digests) > h.depth {
		h.digests = h.digests[1:]
	}
	return period
}
