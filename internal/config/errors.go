package config

import "errors"

var (
	// ErrErrorRateOutOfRange is returned when the configured error rate is outside [0,1].
	ErrErrorRateOutOfRange = errors.New("error rate out of range")

	// ErrInvalidDelayWindow is returned when the delay window is empty or negative.
	ErrInvalidDelayWindow = errors.New("invalid delay window")

	// ErrIntervalTooShort is returned when a configured interval is below its minimum.
	ErrIntervalTooShort = errors.New("interval too short")
)
