package app

import (
	"flag"
	"fmt"
	"sort"
	"strings"
)

// Config represents the command-line parameters shared by the viewer and the
// headless runner.
type Config struct {
	Sim   string
	Scale int
	TPS   int
	Seed  int64

	// Headless only.
	Steps    int
	Pace     bool
	Snapshot string
	PNG      string
	Every    int

	// Opts are passed to the sim factory, e.g. -opt w=128 -opt rule=30.
	Opts map[string]string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "life", Scale: 3, TPS: 60, Seed: 42, Steps: 100, Opts: map[string]string{}}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Steps, "steps", c.Steps, "steps to run headless")
	fs.BoolVar(&c.Pace, "pace", c.Pace, "pace headless steps at -tps")
	fs.StringVar(&c.Snapshot, "snapshot", c.Snapshot, "write the final grid snapshot to this path")
	fs.StringVar(&c.PNG, "png", c.PNG, "write the final frame as PNG to this path")
	fs.IntVar(&c.Every, "log-every", c.Every, "log progress every N steps (0 disables)")
	fs.Func("opt", "sim option as key=value (repeatable)", c.setOpt)
	fs.Func("params", "JSON parameter file passed to the sim", func(v string) error {
		return c.setOpt("params=" + v)
	})
}

func (c *Config) setOpt(v string) error {
	key, val, ok := strings.Cut(v, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return fmt.Errorf("option %q must be key=value", v)
	}
	if c.Opts == nil {
		c.Opts = map[string]string{}
	}
	c.Opts[key] = strings.TrimSpace(val)
	return nil
}

// OptString renders Opts in a stable order for logging.
func (c *Config) OptString() string {
	keys := make([]string, 0, len(c.Opts))
	for k := range c.Opts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + "=" + c.Opts[k]
	}
	return strings.Join(parts, " ")
}
