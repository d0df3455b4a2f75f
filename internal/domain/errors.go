package domain

import "errors"

// Sentinel errors used across layers.
var (
	ErrClipNotFound      = errors.New("clip not found")
	ErrEmptyClip         = errors.New("clip has no samples")
	ErrBadFormat         = errors.New("unsupported audio format")
	ErrSensorUnavailable = errors.New("motion sensor unavailable")
)
