package clips

import (
	"math"
	"time"

	"github.com/AmaljithCf/punch-strength-arcade/internal/audio"
	"github.com/AmaljithCf/punch-strength-arcade/internal/domain"
	"github.com/AmaljithCf/punch-strength-arcade/internal/logger"
)

// Tone fallback parameters.
const (
	toneDuration = 120 * time.Millisecond
	toneBaseFreq = 400.0
	toneStepFreq = 35.0
)

// SynthesizedLibrary builds a library with a distinct short tone for every
// vocabulary name. It stands in for the recorded voice set when no clip
// directory is available, so the announcement pipeline stays audible and
// testable end to end.
func SynthesizedLibrary(log *logger.Logger) *Library {
	clips := make(map[string]domain.Clip)
	for i, name := range Vocabulary() {
		freq := toneBaseFreq + float64(i)*toneStepFreq
		clips[name] = domain.Clip{Name: name, Samples: tone(freq)}
	}
	log.Info("using synthesized tone library (%d clips)", len(clips))
	return NewLibrary(clips, log)
}

// tone renders a decaying sine beep as unsigned 8-bit samples.
func tone(freq float64) []uint8 {
	n := int(float64(audio.SampleRate) * toneDuration.Seconds())
	samples := make([]uint8, n)
	for i := range samples {
		t := float64(i) / float64(audio.SampleRate)
		envelope := math.Exp(-t * 8)
		v := math.Sin(2*math.Pi*freq*t) * 120 * envelope
		samples[i] = uint8(128 + int(v))
	}
	return samples
}
