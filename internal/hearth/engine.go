package hearth

import "time"

// Engine ties the burn timer, input classifier, mode controller and
// renderers into a single per-tick step. It owns all mutable simulation
// state; the control loop is the only caller, so nothing here is locked.
type Engine struct {
	cfg  Config
	burn Burn
	btn  buttonTracker

	mode          Mode
	menuEnteredAt time.Time

	startTime time.Time
	lastTick  time.Time

	counts        EventCounts
	lastHeartbeat time.Time
	longHold      bool // a long hold already crossed the threshold this press
	burnedOut     bool // burnout event already emitted for this end-of-life
}

// NewEngine creates an engine in fire mode with an unspent burn timer.
// The startTime anchors both the wave animation and uptime reporting.
func NewEngine(cfg Config, startTime time.Time) *Engine {
	return &Engine{
		cfg:           cfg,
		burn:          NewBurn(cfg.LifeExpectancy),
		mode:          ModeFire,
		startTime:     startTime,
		lastTick:      startTime,
		lastHeartbeat: startTime,
	}
}

// Tick runs one step of the simulation: classify the button sample,
// apply mode transitions and burn mutations, then render the frame for
// whichever display is active. Returns the frame and any events that
// should be published.
func (e *Engine) Tick(in Input) (Frame, []Event) {
	elapsed := in.Time.Sub(e.lastTick)
	e.lastTick = in.Time

	p := e.btn.track(in, e.burn.Spent(), e.cfg.ShortPressMin, e.cfg.LongPressMin)

	var events []Event

	switch p {
	case pressShort:
		e.counts.ShortPresses++
		if e.mode == ModeMenu {
			e.burn.Rewind(e.cfg.Notch())
			e.counts.Rewinds++
			events = append(events, e.event(EventRewind, in.Time))
		} else {
			e.mode = ModeMenu
			events = append(events, e.event(EventModeMenu, in.Time))
		}
		e.menuEnteredAt = in.Time

	case pressLongTick:
		if e.mode == ModeFire {
			e.mode = ModeMenu
			events = append(events, e.event(EventModeMenu, in.Time))
		}
		e.burn.Extend(durationFraction(e.cfg.LifeExpectancy, e.cfg.ExtinguishRate))
		if !e.longHold {
			e.longHold = true
			e.counts.LongHolds++
			events = append(events, e.event(EventExtinguish, in.Time))
		}
		e.menuEnteredAt = in.Time

	case pressNone:
		if !e.btn.holding() {
			e.longHold = false
		}
		if e.mode == ModeMenu && in.Time.Sub(e.menuEnteredAt) > e.cfg.MenuExit {
			e.mode = ModeFire
			e.counts.MenuTimeouts++
			events = append(events, e.event(EventModeFire, in.Time))
		}
	}

	// Passive decay: fire display only, and never while a long hold is
	// already accelerating the burn.
	if e.mode == ModeFire && p != pressLongTick {
		e.burn.Advance(elapsed)
	}

	if e.burn.Done() {
		if !e.burnedOut {
			e.burnedOut = true
			e.counts.Burnouts++
			events = append(events, e.event(EventBurnout, in.Time))
		}
	} else {
		e.burnedOut = false
	}

	var frame Frame
	if e.mode == ModeMenu {
		frame = renderMenu(e.cfg.FlameCount, e.burn.Progress())
	} else {
		frame = renderFire(e.cfg, in.Time.Sub(e.startTime).Seconds(), e.burn.Progress())
	}
	return frame, events
}

func (e *Engine) event(t EventType, now time.Time) Event {
	return Event{
		Timestamp: now,
		Type:      t,
		Mode:      e.mode,
		Progress:  e.burn.Progress(),
	}
}

// Mode returns the active display mode.
func (e *Engine) Mode() Mode {
	return e.mode
}

// Progress returns the current burn progress in [0,1].
func (e *Engine) Progress() float64 {
	return e.burn.Progress()
}

// Done reports whether the fire has burned all the way out.
func (e *Engine) Done() bool {
	return e.burn.Done()
}

// CountsSnapshot returns a copy of the event counts.
func (e *Engine) CountsSnapshot() EventCounts {
	return e.counts
}

// CheckHeartbeat returns heartbeat data if the interval has elapsed since
// the last heartbeat (or startup). Returns nil if the interval has not
// elapsed, or if interval is <= 0 (disabled).
func (e *Engine) CheckHeartbeat(now time.Time, interval time.Duration) *HeartbeatData {
	if interval <= 0 {
		return nil
	}
	if now.Sub(e.lastHeartbeat) < interval {
		return nil
	}
	e.lastHeartbeat = now
	return &HeartbeatData{
		Timestamp: now,
		Uptime:    now.Sub(e.startTime),
		Mode:      e.mode,
		Progress:  e.burn.Progress(),
		Counts:    e.counts,
	}
}

func durationFraction(d time.Duration, f float64) time.Duration {
	return time.Duration(float64(d) * f)
}
