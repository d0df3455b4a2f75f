package domain

import (
	"time"

	"github.com/google/uuid"
)

// Punch is a completed punch measurement emitted by the detector when the
// sample window closes. It carries the peak magnitude observed during the
// window and a short ID for log correlation.
type Punch struct {
	ID          string
	PeakGForce  float64
	StartedAt   time.Time
	CompletedAt time.Time
}

// NewPunchID returns a short unique identifier for a punch event.
func NewPunchID() string {
	return uuid.NewString()[:8]
}
