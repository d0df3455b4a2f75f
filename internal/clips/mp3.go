package clips

import (
	"bytes"
	"fmt"
	"io"

	"github.com/hajimehoshi/go-mp3"

	"github.com/AmaljithCf/punch-strength-arcade/internal/audio"
	"github.com/AmaljithCf/punch-strength-arcade/internal/domain"
)

// DecodeMP3 decodes an MP3 file into unsigned 8-bit mono samples at the
// machine sample rate. The asset generator emits TTS as MP3 before its WAV
// conversion step; accepting MP3 directly skips that step entirely.
//
// go-mp3 always yields 16-bit little-endian stereo at the source rate, so
// the two channels are averaged and the stream decimated by nearest-sample
// selection down to 8 kHz.
func DecodeMP3(data []byte) ([]uint8, error) {
	dec, err := mp3.NewDecoder(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrBadFormat, err)
	}

	pcm, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("decoding mp3: %w", err)
	}

	const frameBytes = 4 // 2 bytes per sample, 2 channels
	frames := len(pcm) / frameBytes
	if frames == 0 {
		return nil, fmt.Errorf("%w: mp3 holds no audio", domain.ErrBadFormat)
	}

	srcRate := dec.SampleRate()
	outFrames := frames * audio.SampleRate / srcRate
	out := make([]uint8, 0, outFrames)

	for i := 0; i < outFrames; i++ {
		src := i * srcRate / audio.SampleRate
		off := src * frameBytes

		left := int16(uint16(pcm[off]) | uint16(pcm[off+1])<<8)
		right := int16(uint16(pcm[off+2]) | uint16(pcm[off+3])<<8)
		mono := (int32(left) + int32(right)) / 2

		// Signed 16-bit to unsigned 8-bit magnitude.
		out = append(out, uint8((mono>>8)+128))
	}

	return out, nil
}
