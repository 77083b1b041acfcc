// Package status provides a thread-safe status tracker for the led-hearth
// daemon. It is written by the control loop and read by HTTP handlers.
package status

import (
	"sync"
	"time"

	"github.com/kvkontin/led-hearth/internal/hearth"
)

// NetworkInfo contains network state as reported by pi-helper env vars.
type NetworkInfo struct {
	Type       string
	IP         string
	Status     string
	Gateway    string
	WifiStatus string
	SSID       string
}

// Config contains daemon configuration for display.
type Config struct {
	PollMs      int64
	IdlePollMs  int64
	HeartbeatMs int64
	LifeHours   float64
	FlameCount  int
	Broker      string
	HTTPAddr    string
}

// Snapshot is a point-in-time view of daemon state.
// It is a value type, safe to use after the lock is released.
type Snapshot struct {
	Mode          hearth.Mode
	Progress      float64
	Burnout       bool
	Counts        hearth.EventCounts
	StartTime     time.Time
	Now           time.Time
	MQTTConnected bool
	Network       *NetworkInfo
	Config        Config
}

// Uptime returns the duration since the daemon started.
func (s Snapshot) Uptime() time.Duration {
	return s.Now.Sub(s.StartTime)
}

// Vigor returns the flame brightness factor derived from progress.
func (s Snapshot) Vigor() float64 {
	return hearth.Vigor(s.Progress)
}

// Ember returns the ember glow fraction derived from progress.
func (s Snapshot) Ember() float64 {
	return hearth.EmberLevel(s.Progress)
}

// Tracker holds mutable daemon state behind an RWMutex.
type Tracker struct {
	mu   sync.RWMutex
	snap Snapshot
}

// NewTracker creates a Tracker with the given start time and config.
func NewTracker(startTime time.Time, cfg Config) *Tracker {
	return &Tracker{
		snap: Snapshot{
			Mode:      hearth.ModeFire,
			StartTime: startTime,
			Config:    cfg,
		},
	}
}

// Update sets the display mode, burn progress, and event counts.
// Called from runLoop on every tick.
func (t *Tracker) Update(mode hearth.Mode, progress float64, burnout bool, counts hearth.EventCounts) {
	t.mu.Lock()
	t.snap.Mode = mode
	t.snap.Progress = progress
	t.snap.Burnout = burnout
	t.snap.Counts = counts
	t.mu.Unlock()
}

// SetMQTTConnected sets the MQTT connection status.
func (t *Tracker) SetMQTTConnected(connected bool) {
	t.mu.Lock()
	t.snap.MQTTConnected = connected
	t.mu.Unlock()
}

// SetNetwork sets the network info.
func (t *Tracker) SetNetwork(info *NetworkInfo) {
	t.mu.Lock()
	t.snap.Network = info
	t.mu.Unlock()
}

// Snapshot returns a point-in-time copy of the daemon state.
// The Now field is set to the current time at the moment of the call.
func (t *Tracker) Snapshot() Snapshot {
	t.mu.RLock()
	s := t.snap
	t.mu.RUnlock()
	s.Now = time.Now()
	return s
}
