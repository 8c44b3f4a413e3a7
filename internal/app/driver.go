package app

import (
	"time"

	"heat-ca/internal/core"
)

type intervalProvider interface {
	Interval() time.Duration
}

// Driver advances a Sim from per-frame elapsed time through a rate-gated
// Clock. At most one step runs per frame.
type Driver struct {
	sim   core.Sim
	clock *core.Clock
	now   func() time.Time

	paused   bool
	tickOnce bool
	steps    uint64
}

// NewDriver gates sim with a clock of the given interval. When sim reports
// its own interval, that one wins and is re-read every frame.
func NewDriver(sim core.Sim, interval time.Duration) *Driver {
	d := &Driver{sim: sim, clock: core.NewClock(interval), now: time.Now}
	d.syncInterval()
	return d
}

// Clock exposes the gate.
func (d *Driver) Clock() *core.Clock { return d.clock }

// Steps counts the ticks fired so far.
func (d *Driver) Steps() uint64 { return d.steps }

// Paused reports whether time accumulation is suspended.
func (d *Driver) Paused() bool { return d.paused }

// TogglePause flips the paused state. Time does not accumulate while paused.
func (d *Driver) TogglePause() { d.paused = !d.paused }

// Resume clears the paused state.
func (d *Driver) Resume() { d.paused = false }

// StepOnce requests a single step on the next Advance, even while paused.
func (d *Driver) StepOnce() { d.tickOnce = true }

// Reset reseeds the sim and clears banked time.
func (d *Driver) Reset(seed int64) {
	d.sim.Reset(seed)
	d.clock.Reset()
	d.tickOnce = false
}

// Frame advances by the wall-clock time measured since the previous frame.
// Time spent paused is observed but never banked.
func (d *Driver) Frame() bool {
	return d.Advance(d.clock.Since(d.now()))
}

// Advance feeds one frame's elapsed time and runs a step when due. It reports
// whether a step ran.
func (d *Driver) Advance(delta time.Duration) bool {
	d.syncInterval()
	due := false
	if !d.paused {
		d.clock.Tick(delta)
		due = d.clock.ConsumeDue()
	}
	if !due && !d.tickOnce {
		return false
	}
	d.tickOnce = false
	d.sim.Step()
	d.steps++
	return true
}

func (d *Driver) syncInterval() {
	if p, ok := d.sim.(intervalProvider); ok && p.Interval() != d.clock.Interval() {
		d.clock.SetInterval(p.Interval())
	}
}
