package status

import (
	"encoding/json"
	"time"
)

// StatusJSON is the top-level JSON envelope for status output.
type StatusJSON struct {
	Status StatusInner `json:"status"`
}

// StatusInner contains the status details.
type StatusInner struct {
	Event         string       `json:"event,omitempty"`
	Reason        string       `json:"reason,omitempty"`
	Mode          string       `json:"mode"`
	Progress      float64      `json:"progress"`
	Vigor         float64      `json:"vigor"`
	Ember         float64      `json:"ember"`
	Burnout       bool         `json:"burnout"`
	UptimeSeconds int64        `json:"uptime_seconds"`
	StartTime     string       `json:"start_time"`
	Timestamp     string       `json:"timestamp"`
	MQTT          MQTTStatus   `json:"mqtt"`
	Counts        CountsJSON   `json:"event_counts"`
	Network       *NetworkJSON `json:"network,omitempty"`
	Config        ConfigJSON   `json:"config"`
}

// MQTTStatus reports MQTT connection state.
type MQTTStatus struct {
	Connected bool   `json:"connected"`
	Broker    string `json:"broker"`
}

// CountsJSON is the JSON representation of event counts.
type CountsJSON struct {
	ShortPresses int `json:"short_presses"`
	LongHolds    int `json:"long_holds"`
	Rewinds      int `json:"rewinds"`
	MenuTimeouts int `json:"menu_timeouts"`
	Burnouts     int `json:"burnouts"`
}

// NetworkJSON is the JSON representation of network info.
type NetworkJSON struct {
	Type       string `json:"type"`
	IP         string `json:"ip"`
	Status     string `json:"status"`
	Gateway    string `json:"gateway"`
	WifiStatus string `json:"wifi_status"`
	SSID       string `json:"ssid"`
}

// ConfigJSON is the JSON representation of daemon config.
type ConfigJSON struct {
	PollMs      int64   `json:"poll_ms"`
	IdlePollMs  int64   `json:"idle_poll_ms"`
	HeartbeatMs int64   `json:"heartbeat_ms"`
	LifeHours   float64 `json:"life_hours"`
	FlameCount  int     `json:"flame_count"`
	Broker      string  `json:"broker"`
	HTTPAddr    string  `json:"http_addr"`
}

func buildInner(snap Snapshot) StatusInner {
	return StatusInner{
		Mode:          string(snap.Mode),
		Progress:      snap.Progress,
		Vigor:         snap.Vigor(),
		Ember:         snap.Ember(),
		Burnout:       snap.Burnout,
		UptimeSeconds: int64(snap.Uptime().Truncate(time.Second).Seconds()),
		StartTime:     snap.StartTime.UTC().Format(time.RFC3339),
		Timestamp:     snap.Now.UTC().Format(time.RFC3339),
		MQTT:          MQTTStatus{Connected: snap.MQTTConnected, Broker: snap.Config.Broker},
		Counts: CountsJSON{
			ShortPresses: snap.Counts.ShortPresses,
			LongHolds:    snap.Counts.LongHolds,
			Rewinds:      snap.Counts.Rewinds,
			MenuTimeouts: snap.Counts.MenuTimeouts,
			Burnouts:     snap.Counts.Burnouts,
		},
		Config: ConfigJSON{
			PollMs:      snap.Config.PollMs,
			IdlePollMs:  snap.Config.IdlePollMs,
			HeartbeatMs: snap.Config.HeartbeatMs,
			LifeHours:   snap.Config.LifeHours,
			FlameCount:  snap.Config.FlameCount,
			Broker:      snap.Config.Broker,
			HTTPAddr:    snap.Config.HTTPAddr,
		},
	}
}

func buildNetwork(snap Snapshot, inner *StatusInner) {
	if snap.Network != nil {
		inner.Network = &NetworkJSON{
			Type:       snap.Network.Type,
			IP:         snap.Network.IP,
			Status:     snap.Network.Status,
			Gateway:    snap.Network.Gateway,
			WifiStatus: snap.Network.WifiStatus,
			SSID:       snap.Network.SSID,
		}
	}
}

// FormatJSON returns the JSON status for the web endpoint (no event/reason).
func FormatJSON(snap Snapshot) []byte {
	inner := buildInner(snap)
	buildNetwork(snap, &inner)

	data, _ := json.MarshalIndent(StatusJSON{Status: inner}, "", "  ")
	return data
}

// FormatStatusEvent returns the JSON status for an MQTT system event.
func FormatStatusEvent(snap Snapshot, event, reason string) []byte {
	inner := buildInner(snap)
	inner.Event = event
	inner.Reason = reason
	buildNetwork(snap, &inner)

	data, _ := json.Marshal(StatusJSON{Status: inner})
	return data
}
