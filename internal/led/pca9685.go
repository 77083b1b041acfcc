package led

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/devices/v3/pca9685"
	"periph.io/x/host/v3"

	"github.com/kvkontin/led-hearth/internal/hearth"
)

// PCA9685Strip drives real LEDs through a PCA9685 on the I²C bus.
type PCA9685Strip struct {
	bus        i2c.BusCloser
	dev        *pca9685.Dev
	flameCount int
}

// NewPCA9685Strip opens the named I²C bus (empty selects the first
// available one) and initializes the controller with all outputs off.
func NewPCA9685Strip(busName string, addr uint16, flameCount int) (*PCA9685Strip, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("init periph host: %w", err)
	}

	bus, err := i2creg.Open(busName)
	if err != nil {
		return nil, fmt.Errorf("open i2c bus %q: %w", busName, err)
	}

	dev, err := pca9685.NewI2C(bus, addr)
	if err != nil {
		bus.Close()
		return nil, fmt.Errorf("init pca9685 at %#x: %w", addr, err)
	}

	// 200Hz is comfortably above flicker for plain LEDs.
	if err := dev.SetPwmFreq(200 * physic.Hertz); err != nil {
		bus.Close()
		return nil, fmt.Errorf("set pwm frequency: %w", err)
	}
	if err := dev.SetAllPwm(0, 0); err != nil {
		bus.Close()
		return nil, fmt.Errorf("blank outputs: %w", err)
	}

	return &PCA9685Strip{
		bus:        bus,
		dev:        dev,
		flameCount: flameCount,
	}, nil
}

// Render writes the frame to the controller, ember first.
func (s *PCA9685Strip) Render(f hearth.Frame) error {
	if err := s.dev.SetPwm(EmberChannel, 0, duty(f.Ember)); err != nil {
		return fmt.Errorf("write ember channel: %w", err)
	}
	for i, v := range f.Flames {
		if i >= s.flameCount {
			break
		}
		if err := s.dev.SetPwm(FirstFlameChannel+i, 0, duty(v)); err != nil {
			return fmt.Errorf("write flame channel %d: %w", i, err)
		}
	}
	return nil
}

// Close blanks all outputs and releases the bus.
func (s *PCA9685Strip) Close() error {
	var errs []error

	if s.dev != nil {
		if err := s.dev.SetAllPwm(0, 0); err != nil {
			errs = append(errs, fmt.Errorf("blank outputs: %w", err))
		}
	}
	if s.bus != nil {
		if err := s.bus.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close i2c bus: %w", err))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("close errors: %v", errs)
	}
	return nil
}

// duty maps a frame byte onto the controller's 12-bit off-count.
func duty(v uint8) gpio.Duty {
	return gpio.Duty(uint32(v) << 4)
}
