package clips

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/AmaljithCf/punch-strength-arcade/internal/domain"
	"github.com/AmaljithCf/punch-strength-arcade/internal/logger"
)

// Compile-time interface check.
var _ domain.ClipLibrary = (*Library)(nil)

// Library is an in-memory clip library. It is filled once at startup and
// read-only afterwards, mirroring the flash-resident asset table of the
// machine.
type Library struct {
	clips map[string]domain.Clip
	log   *logger.Logger
}

// NewLibrary creates a library over the given clips.
func NewLibrary(clips map[string]domain.Clip, log *logger.Logger) *Library {
	if clips == nil {
		clips = make(map[string]domain.Clip)
	}
	return &Library{clips: clips, log: log}
}

// LoadDir builds a library from a directory of <name>.wav / <name>.mp3
// files. Files that fail to decode are skipped with a warning; a directory
// yielding zero clips is an error.
func LoadDir(dir string, log *logger.Logger) (*Library, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading clip dir: %w", err)
	}

	clips := make(map[string]domain.Clip)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		ext := strings.ToLower(filepath.Ext(entry.Name()))
		name := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))

		var decode func([]byte) ([]uint8, error)
		switch ext {
		case ".wav":
			decode = DecodeWAV
		case ".mp3":
			decode = DecodeMP3
		default:
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			log.Warn("reading clip %s: %v", entry.Name(), err)
			continue
		}

		samples, err := decode(data)
		if err != nil {
			log.Warn("decoding clip %s: %v", entry.Name(), err)
			continue
		}

		clips[name] = domain.Clip{Name: name, Samples: samples}
		log.Debug("loaded clip %q (%d samples)", name, len(samples))
	}

	if len(clips) == 0 {
		return nil, fmt.Errorf("no usable clips in %s", dir)
	}

	lib := NewLibrary(clips, log)
	if missing := lib.Missing(); len(missing) > 0 {
		log.Warn("clip set incomplete, %d of %d names missing: %s",
			len(missing), len(Vocabulary()), strings.Join(missing, " "))
	}
	log.Info("clip library ready: %d clips from %s", len(clips), dir)
	return lib, nil
}

// Lookup returns the clip for the given name, or ErrClipNotFound.
func (l *Library) Lookup(name string) (domain.Clip, error) {
	clip, ok := l.clips[name]
	if !ok {
		return domain.Clip{}, domain.ErrClipNotFound
	}
	return clip, nil
}

// Len returns the number of loaded clips.
func (l *Library) Len() int {
	return len(l.clips)
}

// Missing returns the vocabulary names the library has no clip for.
func (l *Library) Missing() []string {
	var missing []string
	for _, name := range Vocabulary() {
		if _, ok := l.clips[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}
