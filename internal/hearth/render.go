package hearth

import "math"

// Vigor is the flame brightness scaling factor: 1 at full life, fading
// linearly to 0 once 75% of the life expectancy is spent.
func Vigor(progress float64) float64 {
	return clamp(1-progress/0.75, 0, 1)
}

// EmberLevel is the ember glow fraction: a triangular bump peaking at
// 75% burn progress (exactly where flame vigor reaches zero), back to
// zero at 50% and 100%.
func EmberLevel(progress float64) float64 {
	return clamp(1-4*math.Abs(progress-0.75), 0, 1)
}

// renderFire computes one fire-display frame: for each flame output the
// sum of the traveling waves plus the bias, scaled by vigor; plus the
// ember bump on the ember channel.
func renderFire(cfg Config, seconds, progress float64) Frame {
	v := Vigor(progress)
	f := Frame{
		Ember:  levelByte(EmberLevel(progress)),
		Flames: make([]uint8, cfg.FlameCount),
	}
	for i := range f.Flames {
		p := float64(i) / float64(cfg.FlameCount)
		b := cfg.Bias
		for _, w := range cfg.Waves {
			phase := (p - w.FlowRate*seconds) / w.Wavelength
			b += w.Amplitude * math.Sin(2*math.Pi*phase)
		}
		f.Flames[i] = levelByte(b * v)
	}
	return f
}

// renderMenu computes one menu-display frame: ember held fully on as the
// mode indicator, and a left-to-right countdown bar of remaining life
// across the flame line. No fractional blending; outputs are on or off.
func renderMenu(count int, progress float64) Frame {
	f := Frame{
		Ember:  255,
		Flames: make([]uint8, count),
	}
	lit := (1 - progress) * float64(count)
	for i := range f.Flames {
		if float64(i) < lit {
			f.Flames[i] = 255
		}
	}
	return f
}

// levelByte converts a brightness fraction to the PWM byte range,
// clipping (never wrapping) values outside [0,1].
func levelByte(f float64) uint8 {
	return uint8(math.Round(clamp(f, 0, 1) * 255))
}

func clamp(f, lo, hi float64) float64 {
	if f < lo {
		return lo
	}
	if f > hi {
		return hi
	}
	return f
}
