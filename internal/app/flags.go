package app

import (
	"flag"
	"fmt"

	"github.com/pkg/errors"

	"lifefb/internal/core"
)

// Flags represents the command-line parameters shared by the frame drivers.
// Explicitly set flags override values from the optional JSON config file,
// which in turn overrides core.DefaultConfig.
type Flags struct {
	ConfigPath string
	Verbose    bool

	values map[string]*string
}

var flagOptions = []struct {
	key, usage string
}{
	{"w", "grid width in cells"},
	{"h", "grid height in cells"},
	{"ow", "output width in pixels"},
	{"oh", "output height in pixels"},
	{"tps", "frames per second"},
	{"seed", "seed for random layouts"},
	{"layout", "initial layout (catalogue or soup)"},
	{"density", "live cell density for the soup layout"},
}

// NewFlags returns an unbound Flags.
func NewFlags() *Flags {
	return &Flags{values: map[string]*string{}}
}

// Bind attaches the flags to the provided FlagSet.
func (f *Flags) Bind(fs *flag.FlagSet) {
	def := core.DefaultConfig()
	defaults := map[string]string{
		"w":       fmt.Sprint(def.Width),
		"h":       fmt.Sprint(def.Height),
		"ow":      fmt.Sprint(def.OutWidth),
		"oh":      fmt.Sprint(def.OutHeight),
		"tps":     fmt.Sprint(def.TPS),
		"seed":    fmt.Sprint(def.Seed),
		"layout":  def.Layout,
		"density": fmt.Sprint(def.Density),
	}
	fs.StringVar(&f.ConfigPath, "config", "", "JSON config file")
	fs.BoolVar(&f.Verbose, "v", false, "enable debug logging")
	for _, o := range flagOptions {
		f.values[o.key] = fs.String(o.key, "", fmt.Sprintf("%s (default %s)", o.usage, defaults[o.key]))
	}
}

// Config resolves the effective configuration and validates it.
func (f *Flags) Config() (core.Config, error) {
	cfg := core.DefaultConfig()
	if f.ConfigPath != "" {
		loaded, err := core.LoadConfig(f.ConfigPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	overrides := map[string]string{}
	for key, v := range f.values {
		if v != nil && *v != "" {
			overrides[key] = *v
		}
	}
	cfg, err := cfg.Apply(overrides)
	if err != nil {
		return cfg, errors.Wrap(err, "[Config] invalid flag")
	}

	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrap(err, "[Config] invalid configuration")
	}
	return cfg, nil
}
