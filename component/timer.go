package component

import "time"

// SimTimer counts scaled simulation time toward Duration
// Repeating timers fire once per elapsed period and carry the remainder
type SimTimer struct {
	Duration  time.Duration
	Elapsed   time.Duration
	Repeating bool
	finished  bool
}

// NewRepeatingTimer creates a timer that fires every d
func NewRepeatingTimer(d time.Duration) SimTimer {
	return SimTimer{Duration: d, Repeating: true}
}

// NewOnceTimer creates a timer that fires once after d and stays finished until Reset
func NewOnceTimer(d time.Duration) SimTimer {
	return SimTimer{Duration: d}
}

// Tick advances the timer and returns the number of times it fired
func (t *SimTimer) Tick(dt time.Duration) int {
	if t.Duration <= 0 || dt <= 0 {
		return 0
	}
	if !t.Repeating {
		if t.finished {
			return 0
		}
		t.Elapsed += dt
		if t.Elapsed >= t.Duration {
			t.Elapsed = t.Duration
			t.finished = true
			return 1
		}
		return 0
	}

	t.Elapsed += dt
	fired := int(t.Elapsed / t.Duration)
	t.Elapsed -= time.Duration(fired) * t.Duration
	return fired
}

// Finished reports whether a once timer has fired
func (t *SimTimer) Finished() bool {
	return t.finished
}

// Fraction returns progress through the current period in [0, 1]
func (t *SimTimer) Fraction() float64 {
	if t.Duration <= 0 {
		return 0
	}
	f := float64(t.Elapsed) / float64(t.Duration)
	if f > 1 {
		return 1
	}
	return f
}

// Reset rewinds the timer
func (t *SimTimer) Reset() {
	t.Elapsed = 0
	t.finished = false
}
