package speech

import (
	"errors"
	"strings"
	"time"

	"github.com/AmaljithCf/punch-strength-arcade/internal/domain"
	"github.com/AmaljithCf/punch-strength-arcade/internal/logger"
)

// Amplifier gating delays. The enable line goes high a beat before the first
// sample so the amp output settles, and stays high a beat after the last so
// the tail of the final word is not clipped.
const (
	DefaultAmpWarmup = 100 * time.Millisecond
	DefaultAmpSettle = 200 * time.Millisecond
)

// ClipPlayer plays one clip to completion. Satisfied by the audio engine.
type ClipPlayer interface {
	Play(clip domain.Clip) error
}

// Option configures the announcer.
type Option func(*Announcer)

// WithAmpWarmup sets the delay between amp enable and the first clip.
func WithAmpWarmup(d time.Duration) Option {
	return func(a *Announcer) { a.warmup = d }
}

// WithAmpSettle sets the delay between the last clip and amp disable.
func WithAmpSettle(d time.Duration) Option {
	return func(a *Announcer) { a.settle = d }
}

// Compile-time interface check.
var _ domain.Announcer = (*Announcer)(nil)

// Announcer speaks a score as a sequence of spoken-number clips, bracketing
// the whole sequence in a single amplifier enable/disable cycle.
type Announcer struct {
	library domain.ClipLibrary
	player  ClipPlayer
	amp     domain.AmpSwitch
	clock   domain.Clock
	log     *logger.Logger
	warmup  time.Duration
	settle  time.Duration
}

// New creates an announcer with the given collaborators.
func New(library domain.ClipLibrary, player ClipPlayer, amp domain.AmpSwitch, clock domain.Clock, log *logger.Logger, opts ...Option) *Announcer {
	a := &Announcer{
		library: library,
		player:  player,
		amp:     amp,
		clock:   clock,
		log:     log,
		warmup:  DefaultAmpWarmup,
		settle:  DefaultAmpSettle,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Announce plays the score's clip sequence. A missing clip is logged and
// skipped; the rest of the sequence still plays. The amplifier is enabled
// once before the first clip and disabled once after the last, regardless
// of how many clips actually play. Blocks until the announcement finishes.
func (a *Announcer) Announce(score int) error {
	names := ClipsFor(score)
	a.log.Info("announcing %d: %s", score, strings.Join(names, " "))

	a.amp.Set(true)
	a.clock.Sleep(a.warmup)

	for _, name := range names {
		clip, err := a.library.Lookup(name)
		if err != nil {
			if errors.Is(err, domain.ErrClipNotFound) {
				a.log.Warn("no clip for %q, skipping", name)
				continue
			}
			a.log.Error("looking up clip %q: %v", name, err)
			continue
		}
		if err := a.player.Play(clip); err != nil {
			a.log.Warn("playing clip %q: %v", name, err)
		}
	}

	a.clock.Sleep(a.settle)
	a.amp.Set(false)

	return nil
}
