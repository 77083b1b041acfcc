// Package gpio provides button input reading with hardware abstraction.
// The real implementation uses the Linux GPIO character device.
// The fake implementation allows testing without hardware.
package gpio

// Reader reads the button state.
type Reader interface {
	// Read returns the logical button state: true = pressed.
	// The raw GPIO value is inverted: the line idles high through the
	// pull-up and the button shorts it to ground.
	Read() (bool, error)

	// Close releases GPIO resources.
	Close() error
}

// DefaultPinButton is the BCM number of the button line.
const DefaultPinButton = 17
