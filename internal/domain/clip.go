package domain

// Clip is one pre-recorded spoken-word audio asset: a named, immutable
// sequence of unsigned 8-bit magnitude values at the machine sample rate.
// Clips are owned by the library and referenced, never copied, during
// playback.
type Clip struct {
	Name    string
	Samples []uint8
}

// Len returns the number of samples in the clip.
func (c Clip) Len() int {
	return len(c.Samples)
}

// Empty reports whether the clip carries no samples.
func (c Clip) Empty() bool {
	return len(c.Samples) == 0
}
