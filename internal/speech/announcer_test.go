package speech

import (
	"testing"
	"time"

	"github.com/AmaljithCf/punch-strength-arcade/internal/domain"
	"github.com/AmaljithCf/punch-strength-arcade/internal/logger"
)

// stubLibrary serves clips for a fixed set of names.
type stubLibrary struct {
	clips map[string]domain.Clip
}

func (l *stubLibrary) Lookup(name string) (domain.Clip, error) {
	clip, ok := l.clips[name]
	if !ok {
		return domain.Clip{}, domain.ErrClipNotFound
	}
	return clip, nil
}

// sequenceRecorder logs amp toggles, sleeps, and played clips in order.
type sequenceRecorder struct {
	events []string
}

func (r *sequenceRecorder) Set(on bool) {
	if on {
		r.events = append(r.events, "amp:on")
	} else {
		r.events = append(r.events, "amp:off")
	}
}

func (r *sequenceRecorder) Play(clip domain.Clip) error {
	r.events = append(r.events, "play:"+clip.Name)
	return nil
}

func (r *sequenceRecorder) Now() time.Time { return time.Time{} }

func (r *sequenceRecorder) Sleep(d time.Duration) {
	r.events = append(r.events, "sleep:"+d.String())
}

func fullLibrary(names ...string) *stubLibrary {
	clips := make(map[string]domain.Clip, len(names))
	for _, n := range names {
		clips[n] = domain.Clip{Name: n, Samples: []uint8{128}}
	}
	return &stubLibrary{clips: clips}
}

func newTestAnnouncer(t *testing.T, lib domain.ClipLibrary) (*Announcer, *sequenceRecorder) {
	t.Helper()
	rec := &sequenceRecorder{}
	log := logger.New(logger.LevelOff, nil)
	ann := New(lib, rec, rec, rec, log)
	return ann, rec
}

func TestAnnounceSequence(t *testing.T) {
	ann, rec := newTestAnnouncer(t, fullLibrary("300", "and", "5"))

	if err := ann.Announce(305); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{
		"amp:on",
		"sleep:100ms",
		"play:300",
		"play:and",
		"play:5",
		"sleep:200ms",
		"amp:off",
	}
	if len(rec.events) != len(want) {
		t.Fatalf("expected %d events, got %d: %v", len(want), len(rec.events), rec.events)
	}
	for i, w := range want {
		if rec.events[i] != w {
			t.Fatalf("event %d: expected %q, got %q", i, w, rec.events[i])
		}
	}
}

func TestAnnounceMissingClipContinues(t *testing.T) {
	// "and" is missing; the hundreds and ones must still play inside a
	// single amp cycle.
	ann, rec := newTestAnnouncer(t, fullLibrary("300", "5"))

	if err := ann.Announce(305); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var played []string
	var toggles int
	for _, e := range rec.events {
		switch {
		case e == "amp:on" || e == "amp:off":
			toggles++
		case len(e) > 5 && e[:5] == "play:":
			played = append(played, e[5:])
		}
	}

	if toggles != 2 {
		t.Fatalf("expected one amp cycle, got %d toggles", toggles)
	}
	if len(played) != 2 || played[0] != "300" || played[1] != "5" {
		t.Fatalf("expected [300 5] to play, got %v", played)
	}
}

func TestAnnounceSingleClipScore(t *testing.T) {
	ann, rec := newTestAnnouncer(t, fullLibrary("100"))

	if err := ann.Announce(100); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var played []string
	for _, e := range rec.events {
		if len(e) > 5 && e[:5] == "play:" {
			played = append(played, e[5:])
		}
	}
	if len(played) != 1 || played[0] != "100" {
		t.Fatalf("expected only the hundreds clip, got %v", played)
	}

	// Amp bracket is present even for one clip.
	if rec.events[0] != "amp:on" || rec.events[len(rec.events)-1] != "amp:off" {
		t.Fatalf("amp cycle missing: %v", rec.events)
	}
}
