package patterns

import (
	"slices"
	"testing"

	"lifefb/internal/core"
)

func TestParseNormalises(t *testing.T) {
	p, err := Parse("offset-block",
		"....",
		"..OO",
		"..OO",
	)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := []Offset{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	if !slices.Equal(p.Cells, want) {
		t.Fatalf("cells = %v, want %v", p.Cells, want)
	}
	if w, h := p.Bounds(); w != 2 || h != 2 {
		t.Fatalf("bounds = %dx%d, want 2x2", w, h)
	}
}

func TestParseRejectsEmpty(t *testing.T) {
	if _, err := Parse("nothing", "...", "..."); err == nil {
		t.Fatal("expected an error for a pattern without live cells")
	}
}

func TestTransforms(t *testing.T) {
	// .O.
	// ..O
	// OOO
	if got, want := Glider.MirrorX().Cells, []Offset{{1, 0}, {0, 1}, {0, 2}, {1, 2}, {2, 2}}; !slices.Equal(got, want) {
		t.Fatalf("MirrorX = %v, want %v", got, want)
	}
	if got, want := Glider.MirrorY().Cells, []Offset{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {1, 2}}; !slices.Equal(got, want) {
		t.Fatalf("MirrorY = %v, want %v", got, want)
	}
	if got, want := Blinker.Rotate().Cells, []Offset{{0, 0}, {0, 1}, {0, 2}}; !slices.Equal(got, want) {
		t.Fatalf("Rotate = %v, want %v", got, want)
	}
	four := Glider.Rotate().Rotate().Rotate().Rotate()
	if !slices.Equal(four.Cells, Glider.Cells) {
		t.Fatalf("four quarter turns should be the identity, got %v", four.Cells)
	}
	if !slices.Equal(Glider.MirrorX().MirrorX().Cells, Glider.Cells) {
		t.Fatal("mirroring twice should be the identity")
	}
}

func TestTransformsDoNotAliasSource(t *testing.T) {
	before := slices.Clone(LWSS.Cells)
	_ = LWSS.MirrorY()
	_ = LWSS.Rename("copy")
	if !slices.Equal(before, LWSS.Cells) {
		t.Fatal("transforms must not modify the source pattern")
	}
}

func TestStampClipsOutOfBounds(t *testing.T) {
	g := core.NewGrid(5, 5)
	clipped := Stamp(g, Block.At(4, 4))
	if clipped != 3 {
		t.Fatalf("clipped = %d, want 3", clipped)
	}
	if !g.Alive(4, 4) {
		t.Fatal("in-bounds cell (4,4) should be alive")
	}
	if pop := g.Population(); pop != 1 {
		t.Fatalf("population = %d, want 1 (no wraparound)", pop)
	}
	for _, c := range [][2]int{{0, 0}, {0, 4}, {4, 0}} {
		if g.Alive(c[0], c[1]) {
			t.Fatalf("cell %v was set by wraparound", c)
		}
	}
}

func TestStampNegativeAnchor(t *testing.T) {
	g := core.NewGrid(4, 4)
	if clipped := Stamp(g, Blinker.At(-1, 0)); clipped != 1 {
		t.Fatalf("clipped = %d, want 1", clipped)
	}
	if !g.Alive(0, 0) || !g.Alive(1, 0) || g.Alive(3, 0) {
		t.Fatal("expected only (0,0) and (1,0) alive")
	}
}

func TestSeedUnionsOverlaps(t *testing.T) {
	g := core.NewGrid(6, 6)
	Seed(g, []Placement{Block.At(1, 1), Block.At(2, 2)})
	if pop := g.Population(); pop != 7 {
		t.Fatalf("population = %d, want 7 for two overlapping blocks", pop)
	}

	again := g.Clone()
	Seed(again, []Placement{Block.At(1, 1), Block.At(2, 2)})
	if !again.Equal(g) {
		t.Fatal("re-stamping the same placements should be idempotent")
	}
}

func TestNamedPopulations(t *testing.T) {
	want := map[string]int{
		"block":               4,
		"boat":                5,
		"tub":                 4,
		"loaf":                7,
		"blinker":             3,
		"toad":                6,
		"beacon":              8,
		"pulsar":              48,
		"pentadecathlon":      12,
		"glider":              5,
		"lwss":                9,
		"gosper-gun-fragment": 20,
	}
	for name, n := range want {
		p, ok := Lookup(name)
		if !ok {
			t.Fatalf("pattern %q missing from catalogue", name)
		}
		if len(p.Cells) != n {
			t.Errorf("%s has %d cells, want %d", name, len(p.Cells), n)
		}
	}
	if _, ok := Lookup("unknown"); ok {
		t.Fatal("Lookup should miss unknown names")
	}
}

func TestCatalogueFitsReferenceGrid(t *testing.T) {
	cfg := core.DefaultConfig()
	g := core.NewGrid(cfg.Width, cfg.Height)
	total := 0
	for _, pl := range Catalogue() {
		total += len(pl.Pattern.Cells)
	}
	if clipped := Seed(g, Catalogue()); clipped != 0 {
		t.Fatalf("catalogue clipped %d cells on the reference grid", clipped)
	}
	if pop := g.Population(); pop != total {
		t.Fatalf("population = %d, want %d (placements should not overlap)", pop, total)
	}
}

func TestCataloguePentadecathlonColumns(t *testing.T) {
	g := core.NewGrid(100, 100)
	Seed(g, Catalogue())
	for _, x := range []int{42, 72} {
		for _, y := range []int{40, 41, 43, 46, 49} {
			if !g.Alive(x, y) {
				t.Fatalf("pentadecathlon column cell (%d,%d) should be alive", x, y)
			}
			if g.Alive(x-1, y) || g.Alive(x+1, y) {
				t.Fatalf("only column x=%d should be alive on row %d", x, y)
			}
		}
		if !g.Alive(x-1, 42) || !g.Alive(x+1, 42) {
			t.Fatalf("pentadecathlon at x=%d is missing its sparks", x)
		}
	}
}

func TestCatalogueClipsOnSmallGrid(t *testing.T) {
	g := core.NewGrid(30, 30)
	if clipped := Seed(g, Catalogue()); clipped == 0 {
		t.Fatal("expected far placements to be clipped on a 30x30 grid")
	}
	if !g.Alive(2, 1) {
		t.Fatal("glider near the origin should still be stamped")
	}
}

func TestCatalogueLayoutRegistered(t *testing.T) {
	layout, ok := core.Layouts()[core.LayoutCatalogue]
	if !ok {
		t.Fatal("catalogue layout not registered")
	}
	cfg := core.DefaultConfig()
	g := core.NewGrid(cfg.Width, cfg.Height)
	layout(g, cfg)
	if g.Population() != 176 {
		t.Fatalf("catalogue population = %d, want 176", g.Population())
	}
}
