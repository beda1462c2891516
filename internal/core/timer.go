package core

import "time"

// Interval gates simulation ticks to a fixed wall-clock period. A zero
// period lets every frame through.
type Interval struct {
	period      time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewInterval constructs an Interval. The first call to ShouldStep fires
// immediately.
func NewInterval(period time.Duration) *Interval {
	iv := &Interval{}
	iv.SetPeriod(period)
	iv.accumulator = iv.period
	return iv
}

// SetPeriod changes the tick period. It is safe to call from the main loop.
func (iv *Interval) SetPeriod(period time.Duration) {
	if period < 0 {
		period = 0
	}
	iv.period = period
}

// Period returns the configured period.
func (iv *Interval) Period() time.Duration { return iv.period }

// ShouldStep reports whether the simulation should advance by one tick.
func (iv *Interval) ShouldStep() bool {
	return iv.ShouldStepAt(time.Now())
}

// ShouldStepAt is ShouldStep with an explicit clock reading. At most one tick
// is released per call; surplus time carries over.
func (iv *Interval) ShouldStepAt(now time.Time) bool {
	if iv.period == 0 {
		iv.last = now
		return true
	}
	if iv.last.IsZero() {
		iv.last = now
	}
	delta := now.Sub(iv.last)
	iv.last = now
	iv.accumulator += delta
	if iv.accumulator >= iv.period {
		iv.accumulator -= iv.period
		if iv.accumulator > iv.period {
			iv.accumulator = iv.period
		}
		return true
	}
	return false
}
