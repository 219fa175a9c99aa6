package core

// RuntimeConfig contains the terminal parameters a view is built with.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // UI ticks per second, drives the clock and notice expiry
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 4,
	}
}

// WithSize returns a copy with the given screen size. Non-positive values
// keep the current size.
func (c RuntimeConfig) WithSize(w, h int) RuntimeConfig {
	if w > 0 {
		c.ScreenW = w
	}
	if h > 0 {
		c.ScreenH = h
	}
	return c
}
