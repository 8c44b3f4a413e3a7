package heat

import (
	"math"
	"strconv"
	"time"

	"heat-ca/internal/core"
)

// Params holds the initial cell values and seeding knobs for the heat sim.
type Params struct {
	Temperature  float32
	Conductivity float32

	HotspotCount       int
	HotspotTemperature float32
	HotspotRadius      int
	// HotspotJitter spreads each hotspot's temperature over
	// HotspotTemperature +/- HotspotJitter.
	HotspotJitter float32

	InsulatorChance       float64
	InsulatorConductivity float32

	DisplayMin float32
	DisplayMax float32
}

// Config controls the heat simulation dimensions and rate.
type Config struct {
	Width  int
	Height int

	Seed     int64
	Interval time.Duration

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:    64,
		Height:   64,
		Seed:     1337,
		Interval: core.DefaultTickInterval,
		Params: Params{
			Temperature:           0,
			Conductivity:          1,
			HotspotCount:          6,
			HotspotTemperature:    100,
			HotspotRadius:         3,
			HotspotJitter:         0,
			InsulatorChance:       0,
			InsulatorConductivity: 0.1,
			DisplayMin:            0,
			DisplayMax:            100,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable or non-finite values keep their defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := positiveInt(cfg, "w"); ok {
		c.Width = v
	}
	if v, ok := positiveInt(cfg, "h"); ok {
		c.Height = v
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := positiveInt(cfg, "interval_ms"); ok {
		c.Interval = time.Duration(v) * time.Millisecond
	}
	if v, ok := finiteFloat(cfg, "temperature"); ok {
		c.Params.Temperature = float32(v)
	}
	if v, ok := finiteFloat(cfg, "conductivity"); ok {
		c.Params.Conductivity = float32(v)
	}
	if v, ok := cfg["hotspots"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.HotspotCount = parsed
		}
	}
	if v, ok := finiteFloat(cfg, "hotspot_temp"); ok {
		c.Params.HotspotTemperature = float32(v)
	}
	if v, ok := cfg["hotspot_radius"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.HotspotRadius = parsed
		}
	}
	if v, ok := finiteFloat(cfg, "hotspot_jitter"); ok && v >= 0 {
		c.Params.HotspotJitter = float32(v)
	}
	if v, ok := finiteFloat(cfg, "insulator_chance"); ok && v >= 0 {
		c.Params.InsulatorChance = v
	}
	if v, ok := finiteFloat(cfg, "insulator_conductivity"); ok {
		c.Params.InsulatorConductivity = float32(v)
	}
	if v, ok := finiteFloat(cfg, "display_min"); ok {
		c.Params.DisplayMin = float32(v)
	}
	if v, ok := finiteFloat(cfg, "display_max"); ok {
		c.Params.DisplayMax = float32(v)
	}
	if c.Params.DisplayMax <= c.Params.DisplayMin {
		c.Params.DisplayMax = c.Params.DisplayMin + 1
	}
	return c
}

func positiveInt(cfg map[string]string, key string) (int, bool) {
	v, ok := cfg[key]
	if !ok {
		return 0, false
	}
	parsed, err := strconv.Atoi(v)
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}

func finiteFloat(cfg map[string]string, key string) (float64, bool) {
	v, ok := cfg[key]
	if !ok {
		return 0, false
	}
	parsed, err := strconv.ParseFloat(v, 32)
	if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return 0, false
	}
	return parsed, true
}
