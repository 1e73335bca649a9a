package core

import "time"

// RuntimeConfig is handed to the game by the platform.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Ticks per second
}

// DefaultConfig returns an 80x24 screen at 60 ticks per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// Ticks converts a duration to a whole number of ticks, never less than one.
func (c RuntimeConfig) Ticks(d time.Duration) int {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	n := int(d * time.Duration(rate) / time.Second)
	if n < 1 {
		return 1
	}
	return n
}
