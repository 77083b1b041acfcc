package gpio

import (
	"errors"
	"testing"
)

func TestFakeReaderReturnsScriptedSamples(t *testing.T) {
	samples := []bool{false, true, true, false}
	f := NewFakeReader(samples)

	for i, want := range samples {
		got, err := f.Read()
		if err != nil {
			t.Fatalf("sample %d: unexpected error: %v", i, err)
		}
		if got != want {
			t.Errorf("sample %d: got %v, want %v", i, got, want)
		}
	}
}

func TestFakeReaderRepeatsLastSample(t *testing.T) {
	f := NewFakeReader([]bool{false, true})

	f.Read()
	f.Read()

	for i := 0; i < 3; i++ {
		got, err := f.Read()
		if err != nil {
			t.Fatalf("repeat %d: unexpected error: %v", i, err)
		}
		if !got {
			t.Errorf("repeat %d: expected last sample (true), got false", i)
		}
	}
}

func TestFakeReaderNoSamples(t *testing.T) {
	f := NewFakeReader(nil)
	if _, err := f.Read(); err == nil {
		t.Error("expected error with no samples configured")
	}
}

func TestFakeReaderReadError(t *testing.T) {
	f := NewFakeReader([]bool{true})
	f.ReadError = errors.New("boom")

	if _, err := f.Read(); err == nil {
		t.Error("expected configured read error")
	}
}

func TestFakeReaderCloseAndReset(t *testing.T) {
	f := NewFakeReader([]bool{false, true})

	f.Read()
	f.Close()
	if !f.Closed {
		t.Error("expected Closed after Close")
	}

	f.Reset()
	if f.Closed {
		t.Error("expected not Closed after Reset")
	}
	got, err := f.Read()
	if err != nil {
		t.Fatalf("unexpected error after reset: %v", err)
	}
	if got {
		t.Error("expected first sample (false) after reset")
	}
}
