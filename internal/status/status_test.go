package status

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/kvkontin/led-hearth/internal/hearth"
)

func testTracker() *Tracker {
	return NewTracker(time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC), Config{
		PollMs:      20,
		IdlePollMs:  500,
		HeartbeatMs: 900000,
		LifeHours:   4,
		FlameCount:  6,
		Broker:      "tcp://broker:1883",
		HTTPAddr:    ":8080",
	})
}

func TestTrackerInitialSnapshot(t *testing.T) {
	tr := testTracker()
	snap := tr.Snapshot()

	if snap.Mode != hearth.ModeFire {
		t.Errorf("expected initial mode FIRE, got %s", snap.Mode)
	}
	if snap.Progress != 0 {
		t.Errorf("expected initial progress 0, got %v", snap.Progress)
	}
	if snap.Config.FlameCount != 6 {
		t.Errorf("expected flame count 6, got %d", snap.Config.FlameCount)
	}
	if snap.Now.IsZero() {
		t.Error("expected Now to be stamped")
	}
}

func TestTrackerUpdate(t *testing.T) {
	tr := testTracker()

	counts := hearth.EventCounts{ShortPresses: 3, Rewinds: 1}
	tr.Update(hearth.ModeMenu, 0.6, false, counts)
	tr.SetMQTTConnected(true)

	snap := tr.Snapshot()
	if snap.Mode != hearth.ModeMenu {
		t.Errorf("mode: got %s, want MENU", snap.Mode)
	}
	if snap.Progress != 0.6 {
		t.Errorf("progress: got %v, want 0.6", snap.Progress)
	}
	if snap.Counts != counts {
		t.Errorf("counts: got %+v", snap.Counts)
	}
	if !snap.MQTTConnected {
		t.Error("expected MQTT connected")
	}
}

func TestSnapshotDerivedLevels(t *testing.T) {
	tr := testTracker()

	tr.Update(hearth.ModeFire, 0.75, false, hearth.EventCounts{})
	snap := tr.Snapshot()

	if snap.Vigor() != 0 {
		t.Errorf("vigor at 0.75: got %v, want 0", snap.Vigor())
	}
	if snap.Ember() != 1 {
		t.Errorf("ember at 0.75: got %v, want 1", snap.Ember())
	}
}

func TestSnapshotUptime(t *testing.T) {
	tr := testTracker()
	snap := tr.Snapshot()
	snap.Now = snap.StartTime.Add(90 * time.Second)

	if snap.Uptime() != 90*time.Second {
		t.Errorf("uptime: got %v, want 90s", snap.Uptime())
	}
}

func TestFormatJSON(t *testing.T) {
	tr := testTracker()
	tr.Update(hearth.ModeMenu, 0.5, false, hearth.EventCounts{ShortPresses: 2})
	tr.SetNetwork(&NetworkInfo{Type: "wifi", IP: "192.168.1.50", Status: "connected", SSID: "Net"})

	var parsed StatusJSON
	if err := json.Unmarshal(FormatJSON(tr.Snapshot()), &parsed); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	s := parsed.Status
	if s.Mode != "MENU" {
		t.Errorf("mode: got %q, want MENU", s.Mode)
	}
	if s.Progress != 0.5 {
		t.Errorf("progress: got %v, want 0.5", s.Progress)
	}
	if s.Event != "" || s.Reason != "" {
		t.Errorf("web JSON must not carry event/reason, got %q/%q", s.Event, s.Reason)
	}
	if s.Counts.ShortPresses != 2 {
		t.Errorf("short presses: got %d, want 2", s.Counts.ShortPresses)
	}
	if s.Network == nil || s.Network.SSID != "Net" {
		t.Errorf("network: got %+v", s.Network)
	}
	if s.Config.LifeHours != 4 {
		t.Errorf("life hours: got %v, want 4", s.Config.LifeHours)
	}
}

func TestFormatStatusEvent(t *testing.T) {
	tr := testTracker()

	var parsed StatusJSON
	if err := json.Unmarshal(FormatStatusEvent(tr.Snapshot(), "SHUTDOWN", "SIGTERM"), &parsed); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if parsed.Status.Event != "SHUTDOWN" {
		t.Errorf("event: got %q", parsed.Status.Event)
	}
	if parsed.Status.Reason != "SIGTERM" {
		t.Errorf("reason: got %q", parsed.Status.Reason)
	}
}
