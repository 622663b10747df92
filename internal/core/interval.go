package core

import "time"

// Interval converts elapsed time into whole periods, carrying the remainder
// between calls. It models a repeating timer on a game clock.
type Interval struct {
	period  time.Duration
	elapsed time.Duration
}

// NewInterval creates an interval that fires once per period.
// A non-positive period never fires.
func NewInterval(period time.Duration) Interval {
	return Interval{period: period}
}

// Period returns the configured period.
func (iv Interval) Period() time.Duration {
	return iv.period
}

// Advance adds dt to the interval and returns how many full periods
// completed.
func (iv *Interval) Advance(dt time.Duration) int {
	if iv.period <= 0 || dt <= 0 {
		return 0
	}
	iv.elapsed += dt
	n := int(iv.elapsed / iv.period)
	iv.elapsed -= time.Duration(n) * iv.period
	return n
}

// Reset discards any partially elapsed period.
func (iv *Interval) Reset() {
	iv.elapsed = 0
}
