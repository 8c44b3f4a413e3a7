package heat

import (
	"math"
	"time"

	"heat-ca/internal/core"
)

// Parameters reports the current tunables for the HUD.
func (s *Sim) Parameters() core.ParameterSnapshot {
	p := s.cfg.Params
	st := s.Stats()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				core.IntParam("w", "Width", int64(s.cfg.Width)),
				core.IntParam("h", "Height", int64(s.cfg.Height)),
				core.IntParam("seed", "Seed", s.cfg.Seed),
			},
		},
		{
			Name: "Seeding",
			Params: []core.Parameter{
				core.IntParam("hotspots", "Hotspots", int64(p.HotspotCount)),
				core.FloatParam("hotspot_temp", "Hotspot temperature", float64(p.HotspotTemperature)),
				core.FloatParam("hotspot_jitter", "Hotspot jitter", float64(p.HotspotJitter)),
				core.IntParam("hotspot_radius", "Hotspot radius", int64(p.HotspotRadius)),
			},
		},
		{
			Name: "Diffusion",
			Params: []core.Parameter{
				core.DurationParam("interval_ms", "Tick interval (ms)", s.cfg.Interval),
				core.FloatParam("coeff", "Transfer coefficient", float64(TransferCoefficient)),
				core.FloatParam("conductivity", "Conductivity", float64(p.Conductivity)),
				core.FloatParam("insulator_conductivity", "Insulator conductivity", float64(p.InsulatorConductivity)),
			},
		},
		{
			Name: "Display",
			Params: []core.Parameter{
				core.FloatParam("display_min", "Cold end", float64(p.DisplayMin)),
				core.FloatParam("display_max", "Hot end", float64(p.DisplayMax)),
			},
		},
		{
			Name: "Field",
			Params: []core.Parameter{
				core.IntParam("ticks", "Ticks", int64(s.ticks)),
				core.FloatParam("min", "Min", st.Min),
				core.FloatParam("max", "Max", st.Max),
				core.FloatParam("mean", "Mean", st.Mean),
			},
		},
	}}
}

// maxIntervalMs keeps interval conversions inside the time.Duration range.
const maxIntervalMs = float64(math.MaxInt64 / int64(time.Millisecond))

// ParameterControls lists the values the HUD may adjust.
func (s *Sim) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "interval_ms", Label: "Interval ms", Step: 50, Min: 50, Max: 2000, HasMin: true, HasMax: true},
		{Key: "display_min", Label: "Cold end", Step: 5},
		{Key: "display_max", Label: "Hot end", Step: 5},
	}
}

// SetFloatParameter applies a HUD adjustment. It reports false for unknown
// keys and for values it cannot apply, such as an interval that rounds to
// zero or an empty display range.
func (s *Sim) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "interval_ms":
		if math.IsNaN(value) || value <= 0 || value > maxIntervalMs {
			return false
		}
		interval := time.Duration(value * float64(time.Millisecond))
		if interval <= 0 {
			return false
		}
		s.cfg.Interval = interval
	case "display_min":
		if float32(value) >= s.cfg.Params.DisplayMax {
			return false
		}
		s.cfg.Params.DisplayMin = float32(value)
		s.rebuildDisplay()
	case "display_max":
		if float32(value) <= s.cfg.Params.DisplayMin {
			return false
		}
		s.cfg.Params.DisplayMax = float32(value)
		s.rebuildDisplay()
	default:
		return false
	}
	return true
}
