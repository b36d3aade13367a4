// Package patterns holds the catalogue of known Life patterns and the seeder
// that stamps them onto a grid before the first generation.
package patterns

import (
	"fmt"
	"sort"

	"lifefb/internal/core"
)

// Offset is a live cell position relative to a pattern's anchor.
type Offset struct {
	DX, DY int
}

// Pattern is a named set of live cells. Offsets are normalised so the
// smallest DX and DY are zero.
type Pattern struct {
	Name  string
	Cells []Offset
}

// Bounds returns the width and height of the pattern's bounding box.
func (p Pattern) Bounds() (w, h int) {
	for _, c := range p.Cells {
		w = max(w, c.DX+1)
		h = max(h, c.DY+1)
	}
	return w, h
}

// Parse builds a pattern from plaintext rows where 'O' marks a live cell and
// any other rune a dead one.
func Parse(name string, rows ...string) (Pattern, error) {
	p := Pattern{Name: name}
	for y, row := range rows {
		for x, r := range []rune(row) {
			if r == 'O' {
				p.Cells = append(p.Cells, Offset{DX: x, DY: y})
			}
		}
	}
	if len(p.Cells) == 0 {
		return Pattern{}, fmt.Errorf("pattern %q has no live cells", name)
	}
	return p.normalise(), nil
}

// MustParse is like Parse but panics on malformed input. It is meant for
// package-level catalogue definitions.
func MustParse(name string, rows ...string) Pattern {
	p, err := Parse(name, rows...)
	if err != nil {
		panic(err)
	}
	return p
}

// MirrorX flips the pattern left to right.
func (p Pattern) MirrorX() Pattern {
	w, _ := p.Bounds()
	return p.transform(func(o Offset) Offset { return Offset{DX: w - 1 - o.DX, DY: o.DY} })
}

// MirrorY flips the pattern top to bottom.
func (p Pattern) MirrorY() Pattern {
	_, h := p.Bounds()
	return p.transform(func(o Offset) Offset { return Offset{DX: o.DX, DY: h - 1 - o.DY} })
}

// Rotate turns the pattern a quarter turn clockwise.
func (p Pattern) Rotate() Pattern {
	_, h := p.Bounds()
	return p.transform(func(o Offset) Offset { return Offset{DX: h - 1 - o.DY, DY: o.DX} })
}

// Rename returns a copy of the pattern under a new name.
func (p Pattern) Rename(name string) Pattern {
	p.Name = name
	p.Cells = append([]Offset(nil), p.Cells...)
	return p
}

func (p Pattern) transform(fn func(Offset) Offset) Pattern {
	out := Pattern{Name: p.Name, Cells: make([]Offset, len(p.Cells))}
	for i, c := range p.Cells {
		out.Cells[i] = fn(c)
	}
	return out.normalise()
}

func (p Pattern) normalise() Pattern {
	if len(p.Cells) == 0 {
		return p
	}
	minX, minY := p.Cells[0].DX, p.Cells[0].DY
	for _, c := range p.Cells[1:] {
		minX = min(minX, c.DX)
		minY = min(minY, c.DY)
	}
	for i := range p.Cells {
		p.Cells[i].DX -= minX
		p.Cells[i].DY -= minY
	}
	sort.Slice(p.Cells, func(i, j int) bool {
		if p.Cells[i].DY != p.Cells[j].DY {
			return p.Cells[i].DY < p.Cells[j].DY
		}
		return p.Cells[i].DX < p.Cells[j].DX
	})
	return p
}

// Placement anchors a pattern at grid coordinates (X, Y).
type Placement struct {
	Pattern Pattern
	X, Y    int
}

// At anchors the pattern at (x, y).
func (p Pattern) At(x, y int) Placement {
	return Placement{Pattern: p, X: x, Y: y}
}

// Stamp marks the placement's cells alive. Cells falling outside the grid are
// dropped rather than wrapped; the number dropped is returned.
func Stamp(g *core.Grid, pl Placement) (clipped int) {
	for _, c := range pl.Pattern.Cells {
		x, y := pl.X+c.DX, pl.Y+c.DY
		if !g.InBounds(x, y) {
			clipped++
			continue
		}
		g.Set(x, y, true)
	}
	return clipped
}

// Seed stamps every placement in order. Overlapping placements union their
// live cells.
func Seed(g *core.Grid, placements []Placement) (clipped int) {
	for _, pl := range placements {
		clipped += Stamp(g, pl)
	}
	return clipped
}
