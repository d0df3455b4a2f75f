// Package detect implements the punch detection state machine.
package detect

import (
	"time"

	"github.com/AmaljithCf/punch-strength-arcade/internal/domain"
	"github.com/AmaljithCf/punch-strength-arcade/internal/logger"
)

// Default tuning. Threshold matches the bottom of the scoring range so any
// registered punch produces at least the minimum score.
const (
	DefaultThreshold    = 2.5 // g
	DefaultSampleWindow = 500 * time.Millisecond
	DefaultCooldown     = 2 * time.Second
)

// State is the detector's current phase.
type State int

const (
	// StateIdle means the detector is waiting for an impact.
	StateIdle State = iota
	// StateMeasuring means an impact was seen and the peak is being tracked
	// until the sample window closes.
	StateMeasuring
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateMeasuring:
		return "measuring"
	default:
		return "unknown"
	}
}

// Option configures the detector.
type Option func(*Detector)

// WithThreshold sets the g-force that registers as a punch onset.
func WithThreshold(g float64) Option {
	return func(d *Detector) { d.threshold = g }
}

// WithSampleWindow sets how long the peak is tracked after onset.
func WithSampleWindow(w time.Duration) Option {
	return func(d *Detector) { d.window = w }
}

// WithCooldown sets the minimum gap between the completion of one punch and
// the onset of the next.
func WithCooldown(c time.Duration) Option {
	return func(d *Detector) { d.cooldown = c }
}

// Detector is the two-state punch detection machine. All state lives in the
// struct and is mutated only inside Tick; the detector is driven from a
// single control loop and is not safe for concurrent use.
type Detector struct {
	state     State
	peak      float64
	startedAt time.Time
	lastPunch time.Time

	threshold float64
	window    time.Duration
	cooldown  time.Duration

	log *logger.Logger
}

// New creates a detector in the idle state.
func New(log *logger.Logger, opts ...Option) *Detector {
	d := &Detector{
		state:     StateIdle,
		threshold: DefaultThreshold,
		window:    DefaultSampleWindow,
		cooldown:  DefaultCooldown,
		log:       log,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// State returns the detector's current state.
func (d *Detector) State() State {
	return d.state
}

// Peak returns the peak magnitude tracked so far. Meaningful only while
// measuring.
func (d *Detector) Peak() float64 {
	return d.peak
}

// Tick feeds one magnitude sample at the given monotonic timestamp. It
// returns a completed punch and true when the sample window closes,
// otherwise a zero punch and false.
//
// In idle, an onset registers only when the magnitude exceeds the threshold
// AND the cooldown since the previous punch has elapsed. While measuring,
// the peak only increases; the punch completes once the window has passed.
func (d *Detector) Tick(magnitude float64, now time.Time) (domain.Punch, bool) {
	switch d.state {
	case StateIdle:
		if magnitude > d.threshold && now.Sub(d.lastPunch) > d.cooldown {
			d.state = StateMeasuring
			d.startedAt = now
			d.peak = magnitude
			d.log.Debug("punch onset: %.2fg at %s", magnitude, now.Format("15:04:05.000"))
		}

	case StateMeasuring:
		if magnitude > d.peak {
			d.peak = magnitude
		}
		if now.Sub(d.startedAt) > d.window {
			d.state = StateIdle
			d.lastPunch = now
			punch := domain.Punch{
				ID:          domain.NewPunchID(),
				PeakGForce:  d.peak,
				StartedAt:   d.startedAt,
				CompletedAt: now,
			}
			d.log.Info("punch %s complete: peak %.2fg", punch.ID, punch.PeakGForce)
			return punch, true
		}
	}

	return domain.Punch{}, false
}
