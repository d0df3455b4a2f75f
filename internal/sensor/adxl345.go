// Package sensor provides motion sensor adapters.
package sensor

import (
	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/adxl345"

	"github.com/AmaljithCf/punch-strength-arcade/internal/domain"
	"github.com/AmaljithCf/punch-strength-arcade/internal/logger"
)

// DefaultADXL345Addr is the I2C address with the SDO pin held low.
const DefaultADXL345Addr = 0x53

// rawScale converts ADXL345 raw counts to g at the ±16 g range.
const rawScale = 16.0 / 32768.0

// Compile-time interface check.
var _ domain.MotionSensor = (*ADXL345)(nil)

// ADXL345 reads tri-axial acceleration from an ADXL345 accelerometer over
// I2C. The device is configured once at construction; reads never fail
// afterwards, matching the always-available sensor contract.
type ADXL345 struct {
	dev adxl345.Device
	log *logger.Logger
}

// NewADXL345 configures an ADXL345 on the given bus.
func NewADXL345(bus drivers.I2C, log *logger.Logger) *ADXL345 {
	dev := adxl345.New(bus)
	dev.Configure()

	log.Info("adxl345 configured (addr=0x%02x, range=±16g)", DefaultADXL345Addr)
	return &ADXL345{dev: dev, log: log}
}

// Read returns one acceleration sample in g.
func (s *ADXL345) Read() (domain.MotionSample, error) {
	x, y, z := s.dev.ReadRawAcceleration()
	return domain.MotionSample{
		AX: float64(x) * rawScale,
		AY: float64(y) * rawScale,
		AZ: float64(z) * rawScale,
	}, nil
}

// Close puts the sensor in standby mode.
func (s *ADXL345) Close() {
	s.dev.Halt()
}
