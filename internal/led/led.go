// Package led drives the hearth LED strip with hardware abstraction.
// The real implementation talks to a PCA9685 16-channel PWM controller
// over I²C. The fake implementation records frames for tests.
package led

import "github.com/kvkontin/led-hearth/internal/hearth"

// Strip accepts rendered frames. Writes are fire-and-forget from the
// control loop's point of view; errors are logged, not retried.
type Strip interface {
	// Render writes one frame to the outputs.
	Render(f hearth.Frame) error

	// Close blanks the strip and releases hardware resources.
	Close() error
}

// Channel layout on the PCA9685: the red ember LED sits on channel 0,
// the yellow flame line on the channels after it, in order.
const (
	EmberChannel      = 0
	FirstFlameChannel = 1
)
