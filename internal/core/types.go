package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the contract a frame driver needs from a simulation.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Current() *Grid
	Generation() int
}

// LayoutFunc stamps an initial state onto an empty grid.
type LayoutFunc func(g *Grid, cfg Config)

var layouts = map[string]LayoutFunc{}

// RegisterLayout adds a seed layout under the provided name.
func RegisterLayout(name string, f LayoutFunc) {
	if name == "" || f == nil {
		return
	}
	layouts[name] = f
}

// Layouts exposes the registry of available seed layouts.
func Layouts() map[string]LayoutFunc {
	return layouts
}

func init() {
	RegisterLayout(LayoutSoup, func(g *Grid, cfg Config) {
		FillSoup(NewRNG(cfg.Seed), g, cfg.Density)
	})
}
