package output

import (
	"github.com/AmaljithCf/punch-strength-arcade/internal/domain"
	"github.com/AmaljithCf/punch-strength-arcade/internal/logger"
)

// Compile-time interface checks.
var (
	_ domain.PulseWriter = Discard{}
	_ domain.AmpSwitch   = (*LogAmp)(nil)
)

// Discard is a PulseWriter that drops every sample. Used when the host has
// no audio device, or when only the detection pipeline is of interest.
type Discard struct{}

// WriteLevel does nothing.
func (Discard) WriteLevel(level uint8) {}

// LogAmp is an AmpSwitch that records transitions to the log instead of
// driving a GPIO line. On real hardware the enable line is a pin adapter in
// the target-specific build.
type LogAmp struct {
	log *logger.Logger
}

// NewLogAmp creates a logging amplifier switch.
func NewLogAmp(log *logger.Logger) *LogAmp {
	return &LogAmp{log: log}
}

// Set logs the new line state.
func (a *LogAmp) Set(on bool) {
	if on {
		a.log.Debug("amp enable high")
	} else {
		a.log.Debug("amp enable low")
	}
}
