package sensor

import (
	"math/rand/v2"
	"sync"

	"github.com/AmaljithCf/punch-strength-arcade/internal/domain"
	"github.com/AmaljithCf/punch-strength-arcade/internal/logger"
)

// Impact decay per read. At a 10 ms poll this holds a spike above the
// detection threshold for a handful of ticks, roughly the profile of a real
// pad strike.
const simDecay = 0.75

// Compile-time interface check.
var _ domain.MotionSensor = (*Sim)(nil)

// Sim is a simulated motion sensor for development machines. At rest it
// reports gravity on the Z axis plus a little noise; Trigger injects a
// decaying impact spike on the X axis so the full detection and announcement
// pipeline can be exercised without hardware.
type Sim struct {
	mu     sync.Mutex
	impact float64
	log    *logger.Logger
}

// NewSim creates a simulated sensor at rest.
func NewSim(log *logger.Logger) *Sim {
	return &Sim{log: log}
}

// Trigger injects an impact of the given peak g-force, observed by the next
// reads as a decaying spike. Safe to call from a goroutine other than the
// polling loop.
func (s *Sim) Trigger(g float64) {
	s.mu.Lock()
	s.impact = g
	s.mu.Unlock()
	s.log.Debug("sim: injected %.2fg impact", g)
}

// Read returns the current simulated sample.
func (s *Sim) Read() (domain.MotionSample, error) {
	s.mu.Lock()
	impact := s.impact
	s.impact *= simDecay
	s.mu.Unlock()

	noise := func() float64 { return (rand.Float64() - 0.5) * 0.05 }

	return domain.MotionSample{
		AX: impact + noise(),
		AY: noise(),
		AZ: 1.0 + noise(),
	}, nil
}
