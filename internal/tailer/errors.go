package tailer

import "errors"

var (
	// ErrAppearanceTimeout reports that the log file was never created
	// within the configured wait.
	ErrAppearanceTimeout = errors.New("timeout waiting for log file to appear")

	// ErrStallTimeout reports that the log file stopped growing for
	// longer than the configured stall window.
	ErrStallTimeout = errors.New("timeout waiting for new log data")
)
