// Package audio implements the sample-paced playback engine.
package audio

import (
	"runtime"
	"time"

	"github.com/AmaljithCf/punch-strength-arcade/internal/domain"
	"github.com/AmaljithCf/punch-strength-arcade/internal/logger"
)

// SampleRate is the fixed emission rate for all clips, in samples per second.
const SampleRate = 8000

// SampleInterval is the time between consecutive samples.
const SampleInterval = time.Second / SampleRate

// DefaultWordGap separates one clip from the next in a sequence.
const DefaultWordGap = 80 * time.Millisecond

// Option configures the engine.
type Option func(*Engine)

// WithWordGap sets the pause after a clip's last sample.
func WithWordGap(d time.Duration) Option {
	return func(e *Engine) { e.wordGap = d }
}

// WithThreadPinning controls whether playback pins the goroutine to its OS
// thread. On real hardware this is the exclusive timed-emission phase that
// keeps the scheduler from perturbing sample timing; tests disable it.
func WithThreadPinning(pin bool) Option {
	return func(e *Engine) { e.pinThread = pin }
}

// Engine emits clip samples onto a pulse output at exactly SampleRate.
//
// Each sample's deadline is the accumulated start + n*SampleInterval rather
// than a fixed delay after the previous write, so per-sample overhead never
// accumulates into drift over long clips. The engine busy-waits on the clock
// until each deadline before writing.
type Engine struct {
	out       domain.PulseWriter
	clock     domain.Clock
	log       *logger.Logger
	wordGap   time.Duration
	pinThread bool
}

// New creates a playback engine writing to out.
func New(out domain.PulseWriter, clock domain.Clock, log *logger.Logger, opts ...Option) *Engine {
	e := &Engine{
		out:       out,
		clock:     clock,
		log:       log,
		wordGap:   DefaultWordGap,
		pinThread: true,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Play emits every sample of the clip at the fixed rate, then waits the word
// gap. Blocks for the full duration of the clip; there is no cancellation
// once emission starts. An empty clip is a warned no-op.
func (e *Engine) Play(clip domain.Clip) error {
	if clip.Empty() {
		e.log.Warn("clip %q has no samples, skipping", clip.Name)
		return domain.ErrEmptyClip
	}

	if e.pinThread {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
	}

	e.log.Debug("playing clip %q (%d samples, %s)",
		clip.Name, clip.Len(), time.Duration(clip.Len())*SampleInterval)

	deadline := e.clock.Now()
	for _, s := range clip.Samples {
		deadline = deadline.Add(SampleInterval)
		for e.clock.Now().Before(deadline) {
			// Busy-wait. A sleep here would hand the interval to the
			// scheduler and jitter the emission rate.
		}
		e.out.WriteLevel(s)
	}

	e.clock.Sleep(e.wordGap)
	return nil
}
