package core

import "time"

// DefaultTickInterval is the diffusion rate used when none is configured.
const DefaultTickInterval = 200 * time.Millisecond

// Clock is a repeating rate gate. Elapsed time accumulates through Tick and
// ConsumeDue releases at most one interval per call, keeping any excess for
// the next check.
type Clock struct {
	interval    time.Duration
	accumulated time.Duration
	last        time.Time
}

// NewClock constructs a Clock firing every interval.
func NewClock(interval time.Duration) *Clock {
	c := &Clock{}
	c.SetInterval(interval)
	return c
}

// SetInterval changes the gate period. It is safe to call from the main loop.
func (c *Clock) SetInterval(interval time.Duration) {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	c.interval = interval
}

// Interval returns the gate period.
func (c *Clock) Interval() time.Duration { return c.interval }

// Accumulated returns the time banked towards the next firing.
func (c *Clock) Accumulated() time.Duration { return c.accumulated }

// Tick adds elapsed frame time. Negative deltas are ignored.
func (c *Clock) Tick(delta time.Duration) {
	if delta <= 0 {
		return
	}
	c.accumulated += delta
}

// ConsumeDue reports whether a step is due. When it is, exactly one interval
// is removed from the accumulator.
func (c *Clock) ConsumeDue() bool {
	if c.accumulated >= c.interval {
		c.accumulated -= c.interval
		return true
	}
	return false
}

// Since returns the time elapsed between the previous observation and now,
// then records now. The first observation after construction or Reset
// returns 0, as does a clock that went backwards.
func (c *Clock) Since(now time.Time) time.Duration {
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	elapsed := now.Sub(c.last)
	c.last = now
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

// ShouldStep feeds the wall-clock time since the previous call into Tick and
// reports whether a step is due.
func (c *Clock) ShouldStep() bool {
	c.Tick(c.Since(time.Now()))
	return c.ConsumeDue()
}

// Reset clears banked time without changing the interval.
func (c *Clock) Reset() {
	c.accumulated = 0
	c.last = time.Time{}
}
