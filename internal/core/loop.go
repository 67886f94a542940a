package core

import "time"

const (
	// DefaultDelay is the pause between generations of a new loop.
	DefaultDelay = 200 * time.Millisecond
	// MinDelay and MaxDelay bound the adjustable delay.
	MinDelay = 10 * time.Millisecond
	MaxDelay = time.Second
)

// Loop paces generations: while playing, Tick reports a step once per delay.
// It is driven from the caller's frame loop and never steps on its own.
type Loop struct {
	delay       time.Duration
	going       bool
	accumulator time.Duration
	last        time.Time
}

// NewLoop constructs a paused Loop with the given delay.
func NewLoop(delay time.Duration) *Loop {
	l := &Loop{}
	l.SetDelay(delay)
	return l
}

// SetDelay changes the pause between generations, clamped to
// [MinDelay, MaxDelay]. It is safe to call while playing.
func (l *Loop) SetDelay(d time.Duration) {
	if d <= 0 {
		d = DefaultDelay
	}
	l.delay = min(max(d, MinDelay), MaxDelay)
}

// Delay returns the pause between generations.
func (l *Loop) Delay() time.Duration { return l.delay }

// Going reports whether the loop is playing.
func (l *Loop) Going() bool { return l.going }

// Play starts the loop. The first step is due one delay later.
func (l *Loop) Play() {
	if l.going {
		return
	}
	l.going = true
	l.accumulator = 0
	l.last = time.Time{}
}

// Pause stops the loop.
func (l *Loop) Pause() {
	l.going = false
}

// Tick reports whether a generation is due at now.
func (l *Loop) Tick(now time.Time) bool {
	if !l.going {
		return false
	}
	if l.last.IsZero() {
		l.last = now
	}
	delta := now.Sub(l.last)
	l.last = now
	l.accumulator += delta
	if l.accumulator >= l.delay {
		l.accumulator -= l.delay
		// Never queue more than one pending step after a stall.
		l.accumulator = min(l.accumulator, l.delay)
		return true
	}
	return false
}

// ShouldStep reports whether a generation is due now.
func (l *Loop) ShouldStep() bool { return l.Tick(time.Now()) }
