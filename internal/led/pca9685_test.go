package led

import "testing"

func TestDutyMapping(t *testing.T) {
	cases := []struct {
		in   uint8
		want uint32
	}{
		{0, 0},
		{1, 16},
		{128, 2048},
		{255, 4080},
	}
	for _, c := range cases {
		if got := uint32(duty(c.in)); got != c.want {
			t.Errorf("duty(%d): got %d, want %d", c.in, got, c.want)
		}
	}
	// Full scale stays inside the controller's 12-bit range
	if uint32(duty(255)) > 4095 {
		t.Error("duty(255) exceeds 12-bit range")
	}
}
