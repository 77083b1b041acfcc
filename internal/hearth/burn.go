package hearth

import "time"

// Burn owns the single source of truth for how much of the fire's life
// has been spent. All mutations saturate to [0, expectancy]; there are
// no error conditions. Progress is always derived, never stored.
type Burn struct {
	spent      time.Duration
	expectancy time.Duration
}

// NewBurn creates a fresh burn timer with nothing spent yet.
func NewBurn(expectancy time.Duration) Burn {
	return Burn{expectancy: expectancy}
}

// Advance adds elapsed wall-clock time to the spent total. The caller
// only invokes this during the fire display, outside an active long hold.
func (b *Burn) Advance(elapsed time.Duration) {
	b.add(elapsed)
}

// Extend spends additional burn time (the long-hold extinguish effect),
// clamped at the life expectancy.
func (b *Burn) Extend(amount time.Duration) {
	b.add(amount)
}

// Rewind restores burn time, clamped at zero. An underflow sets spent
// to zero rather than wrapping.
func (b *Burn) Rewind(amount time.Duration) {
	b.spent -= amount
	if b.spent < 0 {
		b.spent = 0
	}
}

func (b *Burn) add(amount time.Duration) {
	b.spent += amount
	if b.spent > b.expectancy {
		b.spent = b.expectancy
	}
	if b.spent < 0 {
		b.spent = 0
	}
}

// Progress returns the spent fraction of the life expectancy in [0,1].
func (b *Burn) Progress() float64 {
	if b.expectancy <= 0 {
		return 1
	}
	p := float64(b.spent) / float64(b.expectancy)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Spent returns the raw spent duration.
func (b *Burn) Spent() time.Duration {
	return b.spent
}

// Done reports whether the whole life expectancy has been spent.
func (b *Burn) Done() bool {
	return b.spent >= b.expectancy
}
