// Package hearth contains the pure campfire simulation core.
// This package has NO external dependencies (no GPIO, PWM, MQTT, OS, or
// time.Sleep). Time is always injectable via time.Time parameters.
package hearth

import "time"

// Mode identifies which renderer owns the strip.
type Mode string

const (
	ModeFire Mode = "FIRE"
	ModeMenu Mode = "MENU"
)

// EventType represents a discrete simulation event.
type EventType string

const (
	// EventModeFire fires when the menu times out back to the fire display.
	EventModeFire EventType = "MODE_FIRE"
	// EventModeMenu fires on entry to the menu display.
	EventModeMenu EventType = "MODE_MENU"
	// EventExtinguish fires once per long hold, when the hold first crosses
	// the long-press threshold. The per-tick burn acceleration itself is not
	// an event; it is applied directly while the hold continues.
	EventExtinguish EventType = "EXTINGUISH"
	// EventRewind fires on a short press in menu mode (one notch of burn
	// time restored).
	EventRewind EventType = "REWIND"
	// EventBurnout fires when burn progress first reaches 1.0. A later
	// rewind re-arms it.
	EventBurnout EventType = "BURNOUT"
)

// Event represents a simulation event to be published.
type Event struct {
	Timestamp time.Time
	Type      EventType
	Mode      Mode
	Progress  float64
}

// Input represents a single sample of the button's logical level.
type Input struct {
	Pressed bool // true = button down (already inverted from raw GPIO)
	Time    time.Time
}

// Wave describes one traveling sinusoid of the flame effect.
type Wave struct {
	Wavelength float64 // fraction of the flame line
	FlowRate   float64 // line lengths per second; negative flows backward
	Amplitude  float64 // brightness fraction
}

// Frame is one rendered strip state, recomputed from scratch every tick.
type Frame struct {
	Ember  uint8
	Flames []uint8
}

// EventCounts tracks the number of each event type since startup.
type EventCounts struct {
	ShortPresses int
	LongHolds    int // distinct holds, not ticks
	Rewinds      int
	MenuTimeouts int
	Burnouts     int
}

// HeartbeatData contains information for a heartbeat event.
type HeartbeatData struct {
	Timestamp time.Time
	Uptime    time.Duration
	Mode      Mode
	Progress  float64
	Counts    EventCounts
}

// Config holds the simulation constants. Everything here has a fixed
// compile-time default; main overrides only the handful of values it
// exposes as flags.
type Config struct {
	LifeExpectancy time.Duration // total burn time at full life
	FlameCount     int           // flame outputs, excluding the ember

	ShortPressMin time.Duration // releases at or under this are debounce noise
	LongPressMin  time.Duration // holds over this extinguish, repeating per tick
	MenuExit      time.Duration // menu inactivity before returning to fire

	ExtinguishRate float64 // fraction of LifeExpectancy burned per long-hold tick

	Waves [3]Wave
	Bias  float64 // flame brightness floor the waves ride on
}

// DefaultConfig returns the stock simulation constants for the given
// total burn time and flame output count.
func DefaultConfig(lifeExpectancy time.Duration, flameCount int) Config {
	return Config{
		LifeExpectancy: lifeExpectancy,
		FlameCount:     flameCount,
		ShortPressMin:  30 * time.Millisecond,
		LongPressMin:   600 * time.Millisecond,
		MenuExit:       4 * time.Second,
		ExtinguishRate: 0.004,
		Waves: [3]Wave{
			{Wavelength: 1.1, FlowRate: 0.35, Amplitude: 0.35},
			{Wavelength: 0.6, FlowRate: -0.2, Amplitude: 0.25},
			{Wavelength: 0.37, FlowRate: 0.5, Amplitude: 0.15},
		},
		Bias: 0.45,
	}
}

// Notch is the amount of burn time one menu-mode short press restores.
func (c Config) Notch() time.Duration {
	return c.LifeExpectancy / time.Duration(c.FlameCount)
}
