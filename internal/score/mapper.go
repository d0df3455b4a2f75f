// Package score maps peak punch g-force to a displayable score.
package score

import "math"

// Scoring bounds. Forces below MinGForce read as the weakest possible punch,
// forces above MaxGForce saturate the scale.
const (
	MinGForce = 2.5
	MaxGForce = 20.0

	MinScore = 100
	MaxScore = 999
)

// easing is the exponent of the concave curve applied to the normalized
// force. An exponent below 1 lifts mid-range punches relative to a linear
// map, so ordinary punches still land satisfying numbers while very hard
// punches keep headroom at the top of the scale.
const easing = 0.9

// FromGForce converts a peak g-force into a score in [MinScore, MaxScore].
// Pure and deterministic; any finite or non-finite input is handled by the
// clamps (NaN and negatives map to MinScore).
func FromGForce(g float64) int {
	if math.IsNaN(g) || g < MinGForce {
		g = MinGForce
	}
	if g > MaxGForce {
		g = MaxGForce
	}

	normalized := (g - MinGForce) / (MaxGForce - MinGForce)
	normalized = math.Pow(normalized, easing)

	s := MinScore + int(math.Floor(normalized*float64(MaxScore-MinScore)))

	// Guard floating-point edge rounding at the boundaries.
	if s < MinScore {
		s = MinScore
	}
	if s > MaxScore {
		s = MaxScore
	}
	return s
}
