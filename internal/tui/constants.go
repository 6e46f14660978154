package tui

import "time"

// Package-level constants to avoid magic numbers and improve readability.
const (
	inputFieldWidth = 8
	inputCharLimit  = 9

	// resultViewportMax caps the rendered result column width.
	resultViewportMax = 60

	warningDisplaySeconds = 8

	warningDisplayDuration = time.Duration(warningDisplaySeconds) * time.Second
)
