// Package config reads controller tuning from the environment.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/AmaljithCf/punch-strength-arcade/internal/arcade"
	"github.com/AmaljithCf/punch-strength-arcade/internal/detect"
)

// Env var names.
const (
	EnvThreshold    = "PUNCH_THRESHOLD_G"
	EnvSampleWindow = "PUNCH_SAMPLE_WINDOW"
	EnvCooldown     = "PUNCH_COOLDOWN"
	EnvPollInterval = "PUNCH_POLL_INTERVAL"
	EnvClipDir      = "PUNCH_CLIP_DIR"
)

// Config holds the tunable parameters of the controller. Zero configuration
// is valid: every field has a playable default.
type Config struct {
	Threshold    float64
	SampleWindow time.Duration
	Cooldown     time.Duration
	PollInterval time.Duration
	ClipDir      string
}

// FromEnv builds a Config from environment variables, falling back to the
// defaults for anything unset or unparsable.
func FromEnv() Config {
	return Config{
		Threshold:    getEnvFloat(EnvThreshold, detect.DefaultThreshold),
		SampleWindow: getEnvDuration(EnvSampleWindow, detect.DefaultSampleWindow),
		Cooldown:     getEnvDuration(EnvCooldown, detect.DefaultCooldown),
		PollInterval: getEnvDuration(EnvPollInterval, arcade.DefaultPollInterval),
		ClipDir:      getEnv(EnvClipDir, "clips"),
	}
}

// getEnv returns the named variable's value, or fallback if unset.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return f
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}
