package clips

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/AmaljithCf/punch-strength-arcade/internal/domain"
	"github.com/AmaljithCf/punch-strength-arcade/internal/logger"
)

func TestVocabularyComplete(t *testing.T) {
	names := Vocabulary()
	if len(names) != 35 {
		t.Fatalf("expected 35 vocabulary names, got %d", len(names))
	}

	seen := make(map[string]bool)
	for _, n := range names {
		if seen[n] {
			t.Fatalf("duplicate vocabulary name %q", n)
		}
		seen[n] = true
	}

	for _, want := range []string{"1", "9", "10", "19", "20", "90", "100", "900", "and"} {
		if !seen[want] {
			t.Fatalf("vocabulary missing %q", want)
		}
	}
}

func TestLibraryLookup(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	lib := NewLibrary(map[string]domain.Clip{
		"5": {Name: "5", Samples: []uint8{1, 2, 3}},
	}, log)

	clip, err := lib.Lookup("5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if clip.Len() != 3 {
		t.Fatalf("expected 3 samples, got %d", clip.Len())
	}

	if _, err := lib.Lookup("700"); !errors.Is(err, domain.ErrClipNotFound) {
		t.Fatalf("expected ErrClipNotFound, got %v", err)
	}
}

func TestLibraryMissing(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)

	clips := make(map[string]domain.Clip)
	for _, n := range Vocabulary() {
		clips[n] = domain.Clip{Name: n, Samples: []uint8{128}}
	}
	delete(clips, "40")
	delete(clips, "and")

	lib := NewLibrary(clips, log)
	missing := lib.Missing()
	if len(missing) != 2 {
		t.Fatalf("expected 2 missing names, got %v", missing)
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	log := logger.New(logger.LevelOff, nil)

	writeWAV := func(name string, samples []uint8) {
		t.Helper()
		data := buildWAV(t, samples, 1, 8, 8000)
		if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}

	writeWAV("100.wav", []uint8{1, 2, 3})
	writeWAV("and.wav", []uint8{4, 5})
	// A corrupt file must be skipped, not fatal.
	if err := os.WriteFile(filepath.Join(dir, "9.wav"), []byte("garbage"), 0o644); err != nil {
		t.Fatalf("writing corrupt file: %v", err)
	}
	// Unrelated files are ignored.
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hi"), 0o644); err != nil {
		t.Fatalf("writing notes: %v", err)
	}

	lib, err := LoadDir(dir, log)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lib.Len() != 2 {
		t.Fatalf("expected 2 clips, got %d", lib.Len())
	}

	clip, err := lib.Lookup("and")
	if err != nil {
		t.Fatalf("lookup and: %v", err)
	}
	if clip.Len() != 2 {
		t.Fatalf("expected 2 samples, got %d", clip.Len())
	}
}

func TestSynthesizedLibraryCoversVocabulary(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	lib := SynthesizedLibrary(log)

	if missing := lib.Missing(); len(missing) != 0 {
		t.Fatalf("synthesized library missing %v", missing)
	}
	clip, err := lib.Lookup("and")
	if err != nil {
		t.Fatalf("lookup and: %v", err)
	}
	if clip.Empty() {
		t.Fatal("synthesized clip is empty")
	}
}

func TestLoadDirEmpty(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	if _, err := LoadDir(t.TempDir(), log); err == nil {
		t.Fatal("expected error for directory with no clips")
	}
}
