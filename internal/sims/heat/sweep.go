package heat

import (
	"math"
	"time"

	"heat-ca/internal/core"
)

// ScenarioResult records how a seeded world behaved over a run.
type ScenarioResult struct {
	Interval   time.Duration
	Frames     int
	TicksFired int

	Initial Stats
	Final   Stats

	// EnergyDrift is |final total - initial total|.
	EnergyDrift float64
	// Overshoot is set when any temperature left the initial [min, max] range.
	Overshoot bool
}

// RunScenario builds a world from cfg and drives it for frames host frames
// of frameDelta each through a Clock gated at cfg.Interval.
func RunScenario(cfg Config, frames int, frameDelta time.Duration) (ScenarioResult, error) {
	sim, err := NewWithConfig(cfg)
	if err != nil {
		return ScenarioResult{}, err
	}
	res := ScenarioResult{Interval: sim.Interval(), Frames: frames, Initial: sim.Stats()}
	lo, hi := res.Initial.Min, res.Initial.Max
	slack := 1e-4 * math.Max(1, math.Max(math.Abs(lo), math.Abs(hi)))

	clock := core.NewClock(sim.Interval())
	for f := 0; f < frames; f++ {
		clock.Tick(frameDelta)
		if !clock.ConsumeDue() {
			continue
		}
		sim.Step()
		res.TicksFired++
		st := sim.Stats()
		if st.Min < lo-slack || st.Max > hi+slack {
			res.Overshoot = true
		}
	}
	res.Final = sim.Stats()
	res.EnergyDrift = math.Abs(res.Final.Total - res.Initial.Total)
	return res, nil
}
