package core

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// Seed layout names understood by the simulation.
const (
	LayoutCatalogue = "catalogue"
	LayoutSoup      = "soup"
)

// Config holds the fixed dimensions and pacing for a run.
type Config struct {
	Width     int     `json:"width"`
	Height    int     `json:"height"`
	OutWidth  int     `json:"out_width"`
	OutHeight int     `json:"out_height"`
	TPS       int     `json:"tps"`
	Seed      int64   `json:"seed"`
	Layout    string  `json:"layout"`
	Density   float64 `json:"density"`
	Title     string  `json:"title"`
}

// DefaultConfig returns the reference configuration: a 100x100 torus shown
// in an 800x600 buffer at 10 frames per second.
func DefaultConfig() Config {
	return Config{
		Width:     100,
		Height:    100,
		OutWidth:  800,
		OutHeight: 600,
		TPS:       10,
		Seed:      42,
		Layout:    LayoutCatalogue,
		Density:   0.2,
		Title:     "Conway's Game of Life",
	}
}

// ScaleX is the number of output pixels per cell horizontally.
func (c Config) ScaleX() int { return c.OutWidth / c.Width }

// ScaleY is the number of output pixels per cell vertically.
func (c Config) ScaleY() int { return c.OutHeight / c.Height }

// Validate rejects configurations the renderer and simulation cannot serve.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("[Validate] grid size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.OutWidth < c.Width || c.OutHeight < c.Height {
		return errors.Errorf("[Validate] output %dx%d is smaller than grid %dx%d",
			c.OutWidth, c.OutHeight, c.Width, c.Height)
	}
	if c.TPS <= 0 {
		return errors.Errorf("[Validate] tps must be positive, got %d", c.TPS)
	}
	if c.Density < 0 || c.Density > 1 {
		return errors.Errorf("[Validate] density must be within [0,1], got %v", c.Density)
	}
	if _, ok := layouts[c.Layout]; !ok {
		return errors.Errorf("[Validate] unknown layout %q", c.Layout)
	}
	return nil
}

// LoadConfig overlays the JSON file at filename on top of DefaultConfig.
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) (Config, error) {
	return DefaultConfig().Apply(cfg)
}

// Apply returns c with the key/value overrides in cfg applied. Keys are w, h,
// ow, oh, tps, seed, layout and density. Values are parsed but not range
// checked; call Validate on the result.
func (c Config) Apply(cfg map[string]string) (Config, error) {
	for key, dst := range map[string]*int{
		"w":   &c.Width,
		"h":   &c.Height,
		"ow":  &c.OutWidth,
		"oh":  &c.OutHeight,
		"tps": &c.TPS,
	} {
		v, ok := cfg[key]
		if !ok {
			continue
		}
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return c, errors.Wrapf(err, "[Apply] invalid %s %q", key, v)
		}
		*dst = parsed
	}
	if v, ok := cfg["seed"]; ok {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return c, errors.Wrapf(err, "[Apply] invalid seed %q", v)
		}
		c.Seed = parsed
	}
	if v, ok := cfg["layout"]; ok {
		c.Layout = v
	}
	if v, ok := cfg["density"]; ok {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return c, errors.Wrapf(err, "[Apply] invalid density %q", v)
		}
		c.Density = parsed
	}
	return c, nil
}
