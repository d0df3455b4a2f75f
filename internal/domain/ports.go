package domain

import "time"

// MotionSensor reads tri-axial acceleration in g. Implementations can be a
// real accelerometer over I2C or a simulator for development. A sensor is
// treated as always-available once constructed; construction failure is
// fatal to the device.
type MotionSensor interface {
	Read() (MotionSample, error)
}

// ClipLibrary looks up spoken-word clips by name. Read-only and static for
// the process lifetime. Lookup returns ErrClipNotFound when the name has no
// asset; callers are expected to skip and continue.
type ClipLibrary interface {
	Lookup(name string) (Clip, error)
}

// PulseWriter accepts one 8-bit magnitude value per sample to drive the
// instantaneous output level. Implementations can be a hardware PWM pin, a
// host speaker stream, or a discard sink.
type PulseWriter interface {
	WriteLevel(level uint8)
}

// AmpSwitch drives the amplifier-enable line. Driven only by the announcer,
// bracketing playback in a single enable/disable cycle.
type AmpSwitch interface {
	Set(on bool)
}

// Clock abstracts monotonic time so the deadline-paced playback engine and
// the detector can be tested without real waiting.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// Announcer speaks a score. Invoked synchronously by the control loop; no
// new punch can be detected until it returns.
type Announcer interface {
	Announce(score int) error
}
