package hearth

import "time"

// press is the per-tick classification of the button sample.
type press int

const (
	pressNone press = iota
	// pressShort is emitted on the release tick of a hold longer than the
	// debounce threshold but shorter than the long-press threshold. Short
	// presses can only be classified at release; there is no feedback
	// during the hold itself.
	pressShort
	// pressLongTick is emitted on EVERY tick of a hold past the long-press
	// threshold. It is a repeating effect, not edge-triggered: the
	// extinguish rate applies per tick, not per press.
	pressLongTick
)

// buttonTracker is the input classifier: a small state machine over the
// raw button level, evaluated once per tick. The two-value held/heldLast
// history makes edge detection explicit and testable without a clock.
type buttonTracker struct {
	held     bool
	heldLast bool

	holdStart        time.Time
	spentAtHoldStart time.Duration
}

// track consumes one button sample and returns its classification.
// spent is the burn timer's current total, snapshotted at the press edge.
func (b *buttonTracker) track(in Input, spent time.Duration, shortMin, longMin time.Duration) press {
	b.heldLast = b.held
	b.held = in.Pressed

	switch {
	case b.held && !b.heldLast:
		// Press edge: start bookkeeping, emit nothing yet.
		b.holdStart = in.Time
		b.spentAtHoldStart = spent
		return pressNone

	case b.held && b.heldLast:
		if in.Time.Sub(b.holdStart) > longMin {
			return pressLongTick
		}
		return pressNone

	case !b.held && b.heldLast:
		d := in.Time.Sub(b.holdStart)
		// Bookkeeping resets unconditionally on release, whether or not an
		// event fires.
		b.holdStart = time.Time{}
		if d > shortMin && d < longMin {
			return pressShort
		}
		// At or under shortMin: debounce noise. At or over longMin: the
		// long-hold ticks already did the work.
		return pressNone
	}

	return pressNone
}

// holding reports whether the button is currently down.
func (b *buttonTracker) holding() bool {
	return b.held
}
