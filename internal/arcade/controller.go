// Package arcade wires the sensing loop to detection, scoring, and
// announcement.
package arcade

import (
	"context"
	"fmt"
	"time"

	"github.com/AmaljithCf/punch-strength-arcade/internal/detect"
	"github.com/AmaljithCf/punch-strength-arcade/internal/domain"
	"github.com/AmaljithCf/punch-strength-arcade/internal/logger"
	"github.com/AmaljithCf/punch-strength-arcade/internal/score"
)

// DefaultPollInterval is the sensing loop period.
const DefaultPollInterval = 10 * time.Millisecond

// Option configures the controller.
type Option func(*Controller)

// WithPollInterval sets the sensing loop period.
func WithPollInterval(d time.Duration) Option {
	return func(c *Controller) { c.interval = d }
}

// Controller runs the machine's single control loop: read a sample, feed the
// detector, and on a completed punch map the peak to a score and announce it.
//
// The announcement runs synchronously on the loop goroutine. While a score is
// being spoken no samples are read and no punch can be detected; this
// serialization is deliberate and keeps playback timing undisturbed.
type Controller struct {
	sensor    domain.MotionSensor
	detector  *detect.Detector
	announcer domain.Announcer
	clock     domain.Clock
	log       *logger.Logger
	interval  time.Duration
}

// New creates a controller with the given collaborators.
func New(sensor domain.MotionSensor, detector *detect.Detector, announcer domain.Announcer, clock domain.Clock, log *logger.Logger, opts ...Option) *Controller {
	c := &Controller{
		sensor:    sensor,
		detector:  detector,
		announcer: announcer,
		clock:     clock,
		log:       log,
		interval:  DefaultPollInterval,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run drives the polling loop until ctx is cancelled. There is no
// cancellation mid-announcement: a started announcement always finishes.
func (c *Controller) Run(ctx context.Context) error {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	c.log.Info("controller started (poll=%s)", c.interval)

	for {
		select {
		case <-ctx.Done():
			c.log.Info("controller stopped")
			return ctx.Err()
		case <-ticker.C:
			if err := c.tick(); err != nil {
				return err
			}
		}
	}
}

// tick performs one sensing cycle.
func (c *Controller) tick() error {
	sample, err := c.sensor.Read()
	if err != nil {
		return fmt.Errorf("reading sensor: %w", err)
	}

	punch, done := c.detector.Tick(sample.Magnitude(), c.clock.Now())
	if !done {
		return nil
	}

	s := score.FromGForce(punch.PeakGForce)
	c.log.Info("punch %s: peak %.2fg -> score %d", punch.ID, punch.PeakGForce, s)

	// Blocks until the whole announcement has played. Ticks that fire in
	// the meantime are dropped by the ticker, which is exactly the
	// serialization the machine wants.
	if err := c.announcer.Announce(s); err != nil {
		c.log.Error("announcing score %d: %v", s, err)
	}
	return nil
}
