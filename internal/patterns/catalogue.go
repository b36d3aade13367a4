package patterns

import "lifefb/internal/core"

// Still lifes.
var (
	Block = MustParse("block",
		"OO",
		"OO",
	)
	Boat = MustParse("boat",
		"OO.",
		"O.O",
		".O.",
	)
	Tub = MustParse("tub",
		".O.",
		"O.O",
		".O.",
	)
	Loaf = MustParse("loaf",
		".OO.",
		"O..O",
		".O.O",
		"..O.",
	)
)

// Oscillators.
var (
	Blinker = MustParse("blinker",
		"OOO",
	)
	Toad = MustParse("toad",
		".OOO",
		"OOO.",
	)
	Beacon = MustParse("beacon",
		"OO..",
		"OO..",
		"..OO",
		"..OO",
	)
	Pulsar = MustParse("pulsar",
		"..OOO...OOO..",
		".............",
		"O....O.O....O",
		"O....O.O....O",
		"O....O.O....O",
		"..OOO...OOO..",
		".............",
		"..OOO...OOO..",
		"O....O.O....O",
		"O....O.O....O",
		"O....O.O....O",
		".............",
		"..OOO...OOO..",
	)
	Pentadecathlon = MustParse("pentadecathlon",
		".O.",
		".O.",
		"O.O",
		".O.",
		".O.",
		".O.",
		".O.",
		"O.O",
		".O.",
		".O.",
	)
)

// Spaceships.
var (
	// Glider travels towards +x, +y.
	Glider = MustParse("glider",
		".O.",
		"..O",
		"OOO",
	)
	// LWSS travels towards -x.
	LWSS = MustParse("lwss",
		".O..O",
		"O....",
		"O...O",
		"OOOO.",
	)
)

// GosperGunFragment is the left block and adjacent body of the Gosper glider
// gun. Without its right half it does not emit gliders.
var GosperGunFragment = MustParse("gosper-gun-fragment",
	"............OO....",
	"...........O...O..",
	"OO........O.....O.",
	"OO........O...O.OO",
	"..........O.....O.",
	"...........O...O..",
	"............OO....",
)

var named = map[string]Pattern{}

func init() {
	for _, p := range []Pattern{
		Block, Boat, Tub, Loaf,
		Blinker, Toad, Beacon, Pulsar, Pentadecathlon,
		Glider, LWSS, GosperGunFragment,
	} {
		named[p.Name] = p
	}

	core.RegisterLayout(core.LayoutCatalogue, func(g *core.Grid, _ core.Config) {
		Seed(g, Catalogue())
	})
}

// Lookup returns the catalogue pattern with the given name.
func Lookup(name string) (Pattern, bool) {
	p, ok := named[name]
	return p, ok
}

// Catalogue returns the reference layout for a 100x100 torus, in stamping
// order. On smaller grids the far placements are clipped.
func Catalogue() []Placement {
	return []Placement{
		Glider.At(1, 1),
		LWSS.At(20, 20),
		Pulsar.At(50, 50),
		Beacon.At(80, 80),
		Blinker.At(10, 40),
		Toad.At(30, 60),
		Block.At(60, 10),
		Tub.At(90, 90),
		Boat.At(80, 20),
		Loaf.At(10, 80),
		Pentadecathlon.At(41, 40),

		Blinker.Rotate().Rename("blinker-vertical").At(16, 40),
		Toad.At(38, 60),
		Pentadecathlon.At(71, 40),
		Glider.MirrorX().Rename("glider-sw").At(94, 2),
		Glider.MirrorY().Rename("glider-ne").At(2, 94),
		Glider.MirrorX().MirrorY().Rename("glider-nw").At(94, 94),
		LWSS.MirrorY().Rename("lwss-inverted").At(20, 30),
		GosperGunFragment.At(60, 70),
	}
}
