package life

import (
	"fmt"

	"lifefb/internal/core"
)

// Rule applies the B3/S23 transition: a live cell survives with two or three
// live neighbours, a dead cell is born with exactly three.
func Rule(alive bool, neighbors int) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

// CountNeighbors counts the live cells among the eight toroidal neighbours
// of (x, y).
func CountNeighbors(g *core.Grid, x, y int) int {
	w, h := g.W, g.H
	cells := g.Cells()
	neighbors := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := (x + dx + w) % w
			ny := (y + dy + h) % h
			if cells[ny*w+nx] {
				neighbors++
			}
		}
	}
	return neighbors
}

// StepInto writes the generation following cur into next. cur is only read,
// so the result does not depend on iteration order.
func StepInto(cur, next *core.Grid) {
	if cur.W != next.W || cur.H != next.H {
		panic(fmt.Sprintf("life: grid size mismatch %dx%d vs %dx%d", cur.W, cur.H, next.W, next.H))
	}
	src, dst := cur.Cells(), next.Cells()
	for y := 0; y < cur.H; y++ {
		for x := 0; x < cur.W; x++ {
			idx := y*cur.W + x
			dst[idx] = Rule(src[idx], CountNeighbors(cur, x, y))
		}
	}
}

// Life implements Conway's Game of Life with toroidal wrapping.
type Life struct {
	cfg        core.Config
	cur        *core.Grid
	nxt        *core.Grid
	generation int
}

var _ core.Sim = (*Life)(nil)

// New returns a Life simulation sized by cfg. The grid starts empty; call
// Reset to apply the configured layout.
func New(cfg core.Config) *Life {
	return &Life{
		cfg: cfg,
		cur: core.NewGrid(cfg.Width, cfg.Height),
		nxt: core.NewGrid(cfg.Width, cfg.Height),
	}
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return l.cur.Size() }

// Current exposes the grid holding the present generation. The pointer is
// only valid until the next Step.
func (l *Life) Current() *core.Grid { return l.cur }

// Generation returns how many steps have run since the last Reset.
func (l *Life) Generation() int { return l.generation }

// Reset clears the board and stamps the configured layout. The seed is used
// by random layouts; the catalogue ignores it.
func (l *Life) Reset(seed int64) {
	l.cur.Clear()
	l.nxt.Clear()
	l.generation = 0

	cfg := l.cfg
	cfg.Seed = seed
	if layout, ok := core.Layouts()[cfg.Layout]; ok {
		layout(l.cur, cfg)
	}
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	StepInto(l.cur, l.nxt)
	l.cur, l.nxt = l.nxt, l.cur
	l.generation++
}
