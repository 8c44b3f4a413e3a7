package app

import (
	"flag"
	"testing"
	"time"

	"heat-ca/internal/core"
)

type plainSim struct {
	steps  int
	resets []int64
}

func (s *plainSim) Name() string     { return "counting" }
func (s *plainSim) Size() core.Size  { return core.Size{W: 1, H: 1} }
func (s *plainSim) Reset(seed int64) { s.resets = append(s.resets, seed) }
func (s *plainSim) Step()            { s.steps++ }
func (s *plainSim) Cells() []uint8   { return []uint8{0} }

type timedSim struct {
	plainSim
	interval time.Duration
}

func (s *timedSim) Interval() time.Duration { return s.interval }

func TestDriverGatesSteps(t *testing.T) {
	sim := &plainSim{}
	d := NewDriver(sim, 100*time.Millisecond)
	for frame := 0; frame < 60; frame++ {
		d.Advance(10 * time.Millisecond)
	}
	if sim.steps != 6 || d.Steps() != 6 {
		t.Fatalf("steps=%d driver=%d after 600ms of 100ms ticks, expected 6", sim.steps, d.Steps())
	}
}

func TestDriverOneStepPerFrame(t *testing.T) {
	sim := &plainSim{}
	d := NewDriver(sim, 100*time.Millisecond)
	if !d.Advance(450 * time.Millisecond) {
		t.Fatal("long frame did not step")
	}
	if sim.steps != 1 {
		t.Fatalf("steps=%d, expected a single step for one frame", sim.steps)
	}
	for i := 0; i < 3; i++ {
		d.Advance(0)
	}
	if sim.steps != 4 {
		t.Fatalf("steps=%d, banked time should drain one tick per frame", sim.steps)
	}
	if d.Advance(0) {
		t.Fatal("stepped with only the 50ms remainder banked")
	}
}

func TestDriverPauseAndStepOnce(t *testing.T) {
	sim := &plainSim{}
	d := NewDriver(sim, 100*time.Millisecond)
	d.TogglePause()
	for i := 0; i < 10; i++ {
		d.Advance(50 * time.Millisecond)
	}
	if sim.steps != 0 || d.Clock().Accumulated() != 0 {
		t.Fatalf("paused driver stepped %d times, banked %v", sim.steps, d.Clock().Accumulated())
	}
	d.StepOnce()
	if !d.Advance(0) || sim.steps != 1 {
		t.Fatal("StepOnce did not step while paused")
	}
	d.Resume()
	if d.Paused() {
		t.Fatal("Resume left the driver paused")
	}
}

func TestDriverFollowsSimInterval(t *testing.T) {
	sim := &timedSim{interval: 40 * time.Millisecond}
	d := NewDriver(sim, time.Second)
	if d.Clock().Interval() != 40*time.Millisecond {
		t.Fatalf("clock interval %v, expected the sim's 40ms", d.Clock().Interval())
	}
	sim.interval = 80 * time.Millisecond
	d.Advance(40 * time.Millisecond)
	if sim.steps != 0 {
		t.Fatal("stepped on the stale interval")
	}
	d.Advance(40 * time.Millisecond)
	if sim.steps != 1 {
		t.Fatalf("steps=%d, expected 1 after 80ms", sim.steps)
	}
}

func TestDriverReset(t *testing.T) {
	sim := &plainSim{}
	d := NewDriver(sim, 100*time.Millisecond)
	d.Advance(60 * time.Millisecond)
	d.StepOnce()
	d.Reset(9)
	if len(sim.resets) != 1 || sim.resets[0] != 9 {
		t.Fatalf("resets=%v", sim.resets)
	}
	if d.Clock().Accumulated() != 0 {
		t.Fatal("Reset kept banked time")
	}
	if d.Advance(0) {
		t.Fatal("Reset kept a pending single step")
	}
}

func TestConfigBindAndOverrides(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("heat", flag.ContinueOnError)
	cfg.Bind(fs)
	err := fs.Parse([]string{"-interval", "250ms", "-seed", "7", "-set", "w=32", "-set", "hotspots = 2", "-set", "junk", "-set", "seed=11"})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	m := cfg.SimConfig()
	if m["interval_ms"] != "250" || m["w"] != "32" || m["hotspots"] != "2" {
		t.Fatalf("unexpected sim config %v", m)
	}
	if m["seed"] != "11" {
		t.Fatalf("-set must override -seed, got %q", m["seed"])
	}
	if _, ok := m["junk"]; ok {
		t.Fatal("malformed entry kept")
	}
	if cfg.Set.String() != "w=32,hotspots = 2,junk,seed=11" {
		t.Fatalf("String()=%q", cfg.Set.String())
	}
}

func TestDriverIgnoresNonPositiveFrames(t *testing.T) {
	sim := &plainSim{}
	d := NewDriver(sim, 100*time.Millisecond)
	d.Advance(60 * time.Millisecond)
	for _, delta := range []time.Duration{0, -time.Second, -1} {
		if d.Advance(delta) {
			t.Fatalf("Advance(%v) stepped", delta)
		}
	}
	if sim.steps != 0 || d.Clock().Accumulated() != 60*time.Millisecond {
		t.Fatalf("steps=%d banked=%v, expected 0 and 60ms", sim.steps, d.Clock().Accumulated())
	}
	if !d.Advance(40 * time.Millisecond) {
		t.Fatal("banked time lost after non-positive frames")
	}
}

func TestDriverFrameMeasuresElapsedTime(t *testing.T) {
	sim := &plainSim{}
	d := NewDriver(sim, 100*time.Millisecond)
	base := time.Unix(1_700_000_000, 0)
	now := base
	d.now = func() time.Time { return now }

	if d.Frame() {
		t.Fatal("first frame stepped with no elapsed time")
	}
	now = now.Add(60 * time.Millisecond)
	if d.Frame() {
		t.Fatal("stepped after 60ms of a 100ms interval")
	}
	now = now.Add(60 * time.Millisecond)
	if !d.Frame() || sim.steps != 1 {
		t.Fatalf("steps=%d after 120ms, expected 1", sim.steps)
	}
	if got := d.Clock().Accumulated(); got != 20*time.Millisecond {
		t.Fatalf("banked %v, expected 20ms remainder", got)
	}

	now = now.Add(-time.Second)
	if d.Frame() || d.Clock().Accumulated() != 20*time.Millisecond {
		t.Fatal("a backwards clock changed the banked time")
	}

	d.TogglePause()
	now = now.Add(5 * time.Second)
	d.Frame()
	d.TogglePause()
	now = now.Add(10 * time.Millisecond)
	if d.Frame() || sim.steps != 1 {
		t.Fatalf("time spent paused was banked: steps=%d banked=%v", sim.steps, d.Clock().Accumulated())
	}
}

func TestConfigNormalize(t *testing.T) {
	for _, tc := range []struct{ in, want int }{{0, 60}, {-5, 60}, {-1, -1}, {30, 30}} {
		cfg := NewConfig()
		cfg.TPS = tc.in
		cfg.Scale = 0
		cfg.Interval = -time.Second
		cfg.Normalize()
		if cfg.TPS != tc.want {
			t.Fatalf("TPS %d normalized to %d, expected %d", tc.in, cfg.TPS, tc.want)
		}
		if cfg.Scale != 1 || cfg.Interval != core.DefaultTickInterval {
			t.Fatalf("scale=%d interval=%v after Normalize", cfg.Scale, cfg.Interval)
		}
	}
}
