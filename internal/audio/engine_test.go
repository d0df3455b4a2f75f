package audio

import (
	"errors"
	"testing"
	"time"

	"github.com/AmaljithCf/punch-strength-arcade/internal/domain"
	"github.com/AmaljithCf/punch-strength-arcade/internal/logger"
)

// fakeClock advances a fixed step on every Now call, so busy-wait loops
// terminate without real waiting.
type fakeClock struct {
	now   time.Time
	step  time.Duration
	slept time.Duration
}

func (c *fakeClock) Now() time.Time {
	c.now = c.now.Add(c.step)
	return c.now
}

func (c *fakeClock) Sleep(d time.Duration) {
	c.now = c.now.Add(d)
	c.slept += d
}

// recordingWriter captures every emitted level with its timestamp.
type recordingWriter struct {
	clock  *fakeClock
	levels []uint8
	stamps []time.Time
}

func (w *recordingWriter) WriteLevel(level uint8) {
	w.levels = append(w.levels, level)
	w.stamps = append(w.stamps, w.clock.now)
}

func newTestEngine(t *testing.T, step time.Duration) (*Engine, *recordingWriter, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Unix(1000, 0), step: step}
	out := &recordingWriter{clock: clock}
	log := logger.New(logger.LevelOff, nil)
	eng := New(out, clock, log, WithThreadPinning(false))
	return eng, out, clock
}

func TestPlayEmitsAllSamplesInOrder(t *testing.T) {
	eng, out, _ := newTestEngine(t, 10*time.Microsecond)

	clip := domain.Clip{Name: "5", Samples: []uint8{0, 64, 128, 192, 255}}
	if err := eng.Play(clip); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(out.levels) != clip.Len() {
		t.Fatalf("expected %d samples, got %d", clip.Len(), len(out.levels))
	}
	for i, want := range clip.Samples {
		if out.levels[i] != want {
			t.Fatalf("sample %d: expected %d, got %d", i, want, out.levels[i])
		}
	}
}

func TestPlayPacesWithoutDrift(t *testing.T) {
	// A coarse clock step stresses the accumulator: with fixed-delay
	// pacing the error would grow with every sample, with deadline
	// accumulation it stays within one interval.
	eng, out, _ := newTestEngine(t, 40*time.Microsecond)

	n := 800 // 100 ms of audio
	samples := make([]uint8, n)
	clip := domain.Clip{Name: "tone", Samples: samples}
	if err := eng.Play(clip); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	span := out.stamps[len(out.stamps)-1].Sub(out.stamps[0])
	want := time.Duration(n-1) * SampleInterval
	diff := span - want
	if diff < 0 {
		diff = -diff
	}
	if diff > SampleInterval {
		t.Fatalf("emission span %s deviates from %s by more than one interval", span, want)
	}
}

func TestPlayWaitsWordGapAfterClip(t *testing.T) {
	eng, _, clock := newTestEngine(t, 10*time.Microsecond)

	clip := domain.Clip{Name: "9", Samples: []uint8{128, 128}}
	if err := eng.Play(clip); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if clock.slept != DefaultWordGap {
		t.Fatalf("expected %s word gap, got %s", DefaultWordGap, clock.slept)
	}
}

func TestPlayEmptyClip(t *testing.T) {
	eng, out, _ := newTestEngine(t, 10*time.Microsecond)

	err := eng.Play(domain.Clip{Name: "hollow"})
	if !errors.Is(err, domain.ErrEmptyClip) {
		t.Fatalf("expected ErrEmptyClip, got %v", err)
	}
	if len(out.levels) != 0 {
		t.Fatal("empty clip wrote samples")
	}
}
