package clips

import (
	"encoding/binary"
	"fmt"

	"github.com/AmaljithCf/punch-strength-arcade/internal/audio"
	"github.com/AmaljithCf/punch-strength-arcade/internal/domain"
)

// wavFormat holds the fields of a RIFF fmt chunk the loader cares about.
type wavFormat struct {
	audioFormat uint16
	channels    uint16
	sampleRate  uint32
	bitsPerSamp uint16
}

// DecodeWAV extracts the unsigned 8-bit sample data from a WAV file. The
// asset pipeline produces 8 kHz mono unsigned-8-bit PCM; anything else is
// rejected rather than silently resampled.
func DecodeWAV(data []byte) ([]uint8, error) {
	if len(data) < 12 {
		return nil, fmt.Errorf("%w: wav data too short", domain.ErrBadFormat)
	}
	if string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		return nil, fmt.Errorf("%w: not a RIFF/WAVE file", domain.ErrBadFormat)
	}

	var format *wavFormat
	var samples []uint8

	// Walk chunks for "fmt " and "data".
	pos := 12
	for pos <= len(data)-8 {
		chunkID := string(data[pos : pos+4])
		chunkSize := int(binary.LittleEndian.Uint32(data[pos+4 : pos+8]))
		start := pos + 8
		end := start + chunkSize
		if end > len(data) {
			end = len(data)
		}

		switch chunkID {
		case "fmt ":
			if end-start < 16 {
				return nil, fmt.Errorf("%w: truncated fmt chunk", domain.ErrBadFormat)
			}
			format = &wavFormat{
				audioFormat: binary.LittleEndian.Uint16(data[start : start+2]),
				channels:    binary.LittleEndian.Uint16(data[start+2 : start+4]),
				sampleRate:  binary.LittleEndian.Uint32(data[start+4 : start+8]),
				bitsPerSamp: binary.LittleEndian.Uint16(data[start+14 : start+16]),
			}
		case "data":
			samples = data[start:end]
		}

		pos = end
		// Chunks are word-aligned.
		if chunkSize%2 != 0 {
			pos++
		}
	}

	if format == nil {
		return nil, fmt.Errorf("%w: fmt chunk not found", domain.ErrBadFormat)
	}
	if samples == nil {
		return nil, fmt.Errorf("%w: data chunk not found", domain.ErrBadFormat)
	}

	const pcm = 1
	if format.audioFormat != pcm || format.channels != 1 || format.bitsPerSamp != 8 {
		return nil, fmt.Errorf("%w: need 8-bit mono PCM, got format=%d channels=%d bits=%d",
			domain.ErrBadFormat, format.audioFormat, format.channels, format.bitsPerSamp)
	}
	if format.sampleRate != audio.SampleRate {
		return nil, fmt.Errorf("%w: need %d Hz, got %d Hz",
			domain.ErrBadFormat, audio.SampleRate, format.sampleRate)
	}

	return samples, nil
}
