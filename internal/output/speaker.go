// Package output provides pulse-output and amplifier adapters.
package output

import (
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/AmaljithCf/punch-strength-arcade/internal/audio"
	"github.com/AmaljithCf/punch-strength-arcade/internal/domain"
	"github.com/AmaljithCf/punch-strength-arcade/internal/logger"
)

// Compile-time interface checks.
var (
	_ domain.PulseWriter = (*Speaker)(nil)
)

// Speaker is a PulseWriter that plays the emitted levels through the host
// audio device via oto, standing in for the PWM pin + low-pass filter of the
// real machine. Levels are buffered in a channel; the oto stream drains it
// at the machine sample rate and pads with silence when the engine is idle.
type Speaker struct {
	ctx    *oto.Context
	player *oto.Player
	buf    chan uint8
	log    *logger.Logger
}

// NewSpeaker opens the host audio device. Returns an error when no audio
// device is available.
func NewSpeaker(log *logger.Logger) (*Speaker, error) {
	op := &oto.NewContextOptions{
		SampleRate:   audio.SampleRate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
		BufferSize:   50 * time.Millisecond,
	}

	ctx, readyChan, err := oto.NewContext(op)
	if err != nil {
		return nil, err
	}
	<-readyChan

	s := &Speaker{
		ctx: ctx,
		buf: make(chan uint8, audio.SampleRate), // one second of headroom
		log: log,
	}
	s.player = ctx.NewPlayer(s)
	s.player.Play()

	log.Debug("speaker sink ready (rate=%d)", audio.SampleRate)
	return s, nil
}

// WriteLevel queues one 8-bit sample for playback. Never blocks the timed
// emission loop; if the host stream has fallen a full second behind, the
// sample is dropped.
func (s *Speaker) WriteLevel(level uint8) {
	select {
	case s.buf <- level:
	default:
	}
}

// Read feeds the oto stream, converting queued unsigned 8-bit levels to
// signed 16-bit little-endian and padding with silence when idle.
func (s *Speaker) Read(p []byte) (int, error) {
	n := 0
	for n+1 < len(p) {
		level := uint8(128)
		select {
		case level = <-s.buf:
		default:
		}

		v := int16(int(level)-128) << 8
		p[n] = byte(v)
		p[n+1] = byte(v >> 8)
		n += 2
	}
	return n, nil
}

// Close stops playback and releases the player.
func (s *Speaker) Close() error {
	return s.player.Close()
}
