package hearth

import (
	"testing"
	"time"
)

const (
	testShortMin = 30 * time.Millisecond
	testLongMin  = 600 * time.Millisecond
)

func trackAt(b *buttonTracker, pressed bool, at time.Time) press {
	return b.track(Input{Pressed: pressed, Time: at}, 0, testShortMin, testLongMin)
}

func TestButtonPressEdgeEmitsNothing(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	var b buttonTracker

	if p := trackAt(&b, false, now); p != pressNone {
		t.Errorf("released: expected pressNone, got %v", p)
	}
	if p := trackAt(&b, true, now.Add(20*time.Millisecond)); p != pressNone {
		t.Errorf("press edge: expected pressNone, got %v", p)
	}
	if !b.holding() {
		t.Error("expected holding after press edge")
	}
}

func TestButtonShortPressClassifiedOnRelease(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	var b buttonTracker

	trackAt(&b, true, now)
	// Held, still under the long threshold: nothing
	if p := trackAt(&b, true, now.Add(100*time.Millisecond)); p != pressNone {
		t.Errorf("mid-hold: expected pressNone, got %v", p)
	}
	// Release after 200ms: short press
	if p := trackAt(&b, false, now.Add(200*time.Millisecond)); p != pressShort {
		t.Errorf("release: expected pressShort, got %v", p)
	}
	if b.holding() {
		t.Error("expected not holding after release")
	}
}

func TestButtonReleaseAtExactDebounceThreshold(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	var b buttonTracker

	// Release at exactly shortMin: debounce noise, no event
	trackAt(&b, true, now)
	if p := trackAt(&b, false, now.Add(testShortMin)); p != pressNone {
		t.Errorf("release at threshold: expected pressNone, got %v", p)
	}

	// One millisecond past the threshold qualifies
	trackAt(&b, true, now.Add(time.Second))
	if p := trackAt(&b, false, now.Add(time.Second).Add(testShortMin+time.Millisecond)); p != pressShort {
		t.Errorf("release past threshold: expected pressShort, got %v", p)
	}
}

func TestButtonLongHoldRepeats(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	var b buttonTracker

	trackAt(&b, true, now)
	// Under the threshold: nothing yet
	if p := trackAt(&b, true, now.Add(testLongMin)); p != pressNone {
		t.Errorf("at threshold: expected pressNone, got %v", p)
	}
	// Past the threshold: a long tick on EVERY sample, not just the first
	for i := 1; i <= 5; i++ {
		at := now.Add(testLongMin + time.Duration(i)*20*time.Millisecond)
		if p := trackAt(&b, true, at); p != pressLongTick {
			t.Errorf("tick %d: expected pressLongTick, got %v", i, p)
		}
	}
}

func TestButtonLongHoldReleaseEmitsNothing(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	var b buttonTracker

	trackAt(&b, true, now)
	trackAt(&b, true, now.Add(700*time.Millisecond))
	// Release after a long hold: already handled by the long ticks
	if p := trackAt(&b, false, now.Add(800*time.Millisecond)); p != pressNone {
		t.Errorf("long release: expected pressNone, got %v", p)
	}
}

func TestButtonBookkeepingResetsOnRelease(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	var b buttonTracker

	// A noise blip (released at the debounce threshold)
	trackAt(&b, true, now)
	trackAt(&b, false, now.Add(testShortMin))

	// A fresh press measures from its own edge, not the stale one
	trackAt(&b, true, now.Add(time.Second))
	if p := trackAt(&b, false, now.Add(time.Second).Add(100*time.Millisecond)); p != pressShort {
		t.Errorf("fresh press: expected pressShort, got %v", p)
	}
}

func TestButtonSnapshotsSpentAtPressEdge(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	var b buttonTracker

	b.track(Input{Pressed: true, Time: now}, 42*time.Minute, testShortMin, testLongMin)
	if b.spentAtHoldStart != 42*time.Minute {
		t.Errorf("expected spent snapshot 42m, got %v", b.spentAtHoldStart)
	}

	// Snapshot is taken at the edge, not refreshed mid-hold
	b.track(Input{Pressed: true, Time: now.Add(50 * time.Millisecond)}, 43*time.Minute, testShortMin, testLongMin)
	if b.spentAtHoldStart != 42*time.Minute {
		t.Errorf("expected snapshot to stay at 42m, got %v", b.spentAtHoldStart)
	}
}
