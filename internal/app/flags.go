package app

import (
	"flag"
	"strconv"
	"strings"
	"time"

	"heat-ca/internal/core"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim      string
	Scale    int
	TPS      int
	Seed     int64
	Interval time.Duration
	HUDWidth int
	Set      KVList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "heat", Scale: 8, TPS: defaultTPS, Seed: 42, Interval: core.DefaultTickInterval, HUDWidth: 240}
}

// syncWithFPS mirrors ebiten.SyncWithFPS, which ties updates to the display rate.
const syncWithFPS = -1

const defaultTPS = 60

// Normalize repairs values the host loop cannot run with. A TPS of 0 or below
// -1 falls back to the default; -1 is kept as sync-with-FPS. Scale is at least 1.
func (c *Config) Normalize() {
	if c.TPS == 0 || c.TPS < syncWithFPS {
		c.TPS = defaultTPS
	}
	if c.Scale < 1 {
		c.Scale = 1
	}
	if c.Interval <= 0 {
		c.Interval = core.DefaultTickInterval
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second driving the simulation clock")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "simulated time between diffusion ticks")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "HUD panel width in pixels (0 hides it)")
	fs.Var(&c.Set, "set", "simulation parameter in key=value form (repeatable)")
}

// SimConfig merges the interval and -set overrides into a factory map.
// Explicit -set entries win over the dedicated flags.
func (c *Config) SimConfig() map[string]string {
	m := map[string]string{
		"seed":        strconv.FormatInt(c.Seed, 10),
		"interval_ms": strconv.FormatInt(c.Interval.Milliseconds(), 10),
	}
	for k, v := range c.Set.Map() {
		m[k] = v
	}
	return m
}

// KVList collects repeatable key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

// Set appends one entry.
func (l *KVList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// Map splits the entries on the first '='. Malformed entries are skipped.
func (l KVList) Map() map[string]string {
	m := make(map[string]string, len(l))
	for _, kv := range l {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		m[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	return m
}
