package led

import "github.com/kvkontin/led-hearth/internal/hearth"

// FakeStrip records rendered frames for test assertions.
type FakeStrip struct {
	// Frames contains every frame passed to Render, in order.
	Frames []hearth.Frame

	// RenderError, if set, will be returned by Render.
	RenderError error

	// Closed tracks if Close was called.
	Closed bool
}

// NewFakeStrip creates a FakeStrip for testing.
func NewFakeStrip() *FakeStrip {
	return &FakeStrip{}
}

// Render records the frame. The frame's flame slice is copied so later
// mutations by the caller cannot disturb recorded history.
func (f *FakeStrip) Render(frame hearth.Frame) error {
	if f.RenderError != nil {
		return f.RenderError
	}
	cp := hearth.Frame{
		Ember:  frame.Ember,
		Flames: append([]uint8(nil), frame.Flames...),
	}
	f.Frames = append(f.Frames, cp)
	return nil
}

// Close marks the strip as closed.
func (f *FakeStrip) Close() error {
	f.Closed = true
	return nil
}

// Last returns the most recent frame, or a zero frame if none.
func (f *FakeStrip) Last() hearth.Frame {
	if len(f.Frames) == 0 {
		return hearth.Frame{}
	}
	return f.Frames[len(f.Frames)-1]
}

// Reset clears recorded frames.
func (f *FakeStrip) Reset() {
	f.Frames = nil
	f.Closed = false
	f.RenderError = nil
}
