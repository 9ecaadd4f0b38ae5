package tailer

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"
)

// DefaultTimeout applies to both the appearance and stall timeouts when
// a caller does not specify one.
const DefaultTimeout = 120 * time.Second

// MonitorOptions bundle the timeout policies and tail window for one
// monitoring session. They are fixed for the session's lifetime.
type MonitorOptions struct {
	AppearanceTimeout   time.Duration
	UnboundedAppearance bool
	StallTimeout        time.Duration
	WindowLines         int
}

func (o MonitorOptions) withDefaults() MonitorOptions {
	if o.AppearanceTimeout <= 0 {
		o.AppearanceTimeout = DefaultTimeout
	}
	if o.StallTimeout <= 0 {
		o.StallTimeout = DefaultTimeout
	}
	if o.WindowLines <= 0 {
		o.WindowLines = DefaultWindowLines
	}
	return o
}

// Monitor runs one follow session against path: wait for the file to
// appear, locate the tail window, then stream appended lines to out.
// The three stages run in strict sequence and their failures propagate
// unchanged. Monitor does not return on its own while the file keeps
// growing; it ends only via the two timeout errors, an I/O error, or
// context cancellation.
func Monitor(ctx context.Context, path string, out io.Writer, opts MonitorOptions, logger *slog.Logger) error {
	opts = opts.withDefaults()

	file, err := Await(ctx, path, AwaitOptions{
		Timeout:   opts.AppearanceTimeout,
		Unbounded: opts.UnboundedAppearance,
	}, logger)
	if err != nil {
		return err
	}
	defer file.Close()

	offset, err := LocateStart(file, opts.WindowLines)
	if err != nil {
		return err
	}
	if _, err := file.Seek(offset, io.SeekStart); err != nil {
		return fmt.Errorf("seek log file: %w", err)
	}

	return Follow(ctx, file, out, opts.StallTimeout)
}
