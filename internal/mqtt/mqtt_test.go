package mqtt

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/kvkontin/led-hearth/internal/hearth"
)

func TestFormatPayload(t *testing.T) {
	event := hearth.Event{
		Timestamp: time.Date(2026, 1, 1, 12, 30, 0, 0, time.UTC),
		Type:      hearth.EventRewind,
		Mode:      hearth.ModeMenu,
		Progress:  0.4,
	}

	payload, err := FormatPayload(event)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var parsed Payload
	if err := json.Unmarshal(payload, &parsed); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}

	if parsed.Hearth.Timestamp != "2026-01-01T12:30:00Z" {
		t.Errorf("timestamp: got %q", parsed.Hearth.Timestamp)
	}
	if parsed.Hearth.Event != "REWIND" {
		t.Errorf("event: got %q, want REWIND", parsed.Hearth.Event)
	}
	if parsed.Hearth.Mode != "MENU" {
		t.Errorf("mode: got %q, want MENU", parsed.Hearth.Mode)
	}
	if parsed.Hearth.Progress != 0.4 {
		t.Errorf("progress: got %v, want 0.4", parsed.Hearth.Progress)
	}
}

func TestFormatSystemPayload(t *testing.T) {
	event := SystemEvent{
		Timestamp: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC),
		Event:     "SHUTDOWN",
		Reason:    "SIGTERM",
	}

	payload, err := FormatSystemPayload(event)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var parsed SystemPayload
	if err := json.Unmarshal(payload, &parsed); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if parsed.System.Event != "SHUTDOWN" {
		t.Errorf("event: got %q", parsed.System.Event)
	}
	if parsed.System.Reason != "SIGTERM" {
		t.Errorf("reason: got %q", parsed.System.Reason)
	}
}

func TestFormatSystemPayloadRawPassthrough(t *testing.T) {
	raw := []byte(`{"status":{"event":"STARTUP"}}`)
	event := SystemEvent{
		Timestamp:  time.Now(),
		Event:      "STARTUP",
		RawPayload: raw,
	}

	payload, err := FormatSystemPayload(event)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(payload) != string(raw) {
		t.Errorf("raw payload not passed through: got %s", payload)
	}
}

func TestFakePublisherRecords(t *testing.T) {
	f := NewFakePublisher()

	event := hearth.Event{
		Timestamp: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC),
		Type:      hearth.EventModeMenu,
		Mode:      hearth.ModeMenu,
	}
	if err := f.Publish(event); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := f.PublishSystem(SystemEvent{Event: "HEARTBEAT", Timestamp: time.Now()}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(f.Events) != 1 || f.Events[0].Type != hearth.EventModeMenu {
		t.Errorf("unexpected events: %+v", f.Events)
	}
	if len(f.Payloads) != 1 {
		t.Errorf("expected 1 payload, got %d", len(f.Payloads))
	}
	if len(f.SystemEvents) != 1 || f.SystemEvents[0].Event != "HEARTBEAT" {
		t.Errorf("unexpected system events: %+v", f.SystemEvents)
	}

	f.Reset()
	if len(f.Events) != 0 || len(f.SystemEvents) != 0 {
		t.Error("expected clean state after Reset")
	}
}
