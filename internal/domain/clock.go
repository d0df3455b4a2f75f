package domain

import "time"

// Compile-time interface check.
var _ Clock = SystemClock{}

// SystemClock is the real wall clock.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time { return time.Now() }

// Sleep pauses the calling goroutine for at least d.
func (SystemClock) Sleep(d time.Duration) { time.Sleep(d) }
