package domain

import "math"

// MotionSample is one tri-axial accelerometer reading, in multiples of
// standard gravity. Samples are ephemeral: one is read per polling tick,
// reduced to its magnitude, and discarded.
type MotionSample struct {
	AX, AY, AZ float64
}

// Magnitude returns the Euclidean norm of the three axes, in g.
func (s MotionSample) Magnitude() float64 {
	return math.Sqrt(s.AX*s.AX + s.AY*s.AY + s.AZ*s.AZ)
}
