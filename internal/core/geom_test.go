package core

import (
	"testing"
	"time"
)

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"last inside cell", 29, 24, true},
		{"outside left", 5, 15, false},
		{"outside right", 35, 15, false},
		{"outside top", 15, 5, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %d, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 15 || cy != 17 {
		t.Errorf("Center() = (%d, %d), expected (15, 17)", cx, cy)
	}
}

func TestRectInset(t *testing.T) {
	got := NewRect(0, 0, 8, 4).Inset(1)
	if got != NewRect(1, 1, 6, 2) {
		t.Errorf("Inset(1) = %+v", got)
	}

	if got := NewRect(0, 0, 1, 1).Inset(1); got.W != 0 || got.H != 0 {
		t.Errorf("Inset should not go negative, got %+v", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{1, 0, 2, 1},  // within range
		{-1, 0, 2, 0}, // below
		{3, 0, 2, 2},  // above
		{0, 0, 2, 0},
		{2, 0, 2, 2},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.lo, tc.hi); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.lo, tc.hi, got, tc.expected)
		}
	}
}

func TestTicks(t *testing.T) {
	cfg := RuntimeConfig{TickRate: 60}

	tests := []struct {
		d        time.Duration
		expected int
	}{
		{time.Second, 60},
		{360 * time.Millisecond, 21},
		{120 * time.Millisecond, 7},
		{time.Millisecond, 1}, // rounds up to one tick
		{0, 1},
	}

	for _, tc := range tests {
		if got := cfg.Ticks(tc.d); got != tc.expected {
			t.Errorf("Ticks(%v) = %d, expected %d", tc.d, got, tc.expected)
		}
	}

	if got := (RuntimeConfig{}).Ticks(time.Second); got != 60 {
		t.Errorf("zero tick rate should fall back to 60, got %d", got)
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor(" Bright_Yellow ")
	if err != nil || c != ColorBrightYellow {
		t.Errorf("ParseColor = %v, %v", c, err)
	}

	if _, err := ParseColor("chartreuse"); err == nil {
		t.Error("unknown color should fail")
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Error("new frame should be empty")
	}

	f.Set(ActionPlace)
	if !f.Has(ActionPlace) || f.Has(ActionUp) {
		t.Error("Has should report only set actions")
	}

	f.Clear()
	if !f.Empty() {
		t.Error("Clear should remove all actions")
	}

	var zero InputFrame
	zero.Set(ActionQuit)
	if !zero.Has(ActionQuit) {
		t.Error("Set on zero frame should allocate")
	}
}
