package tailer

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"time"
)

// pollInterval bounds how quickly both the await and follow loops react
// to filesystem changes.
const pollInterval = time.Second

// AwaitOptions control how long Await waits for the target to appear.
// Bounded and unbounded waits are distinct states; Timeout is ignored
// when Unbounded is set.
type AwaitOptions struct {
	Timeout   time.Duration
	Unbounded bool
}

// Await polls path once per second until it can be opened for reading
// and returns the open handle. A bounded wait fails with
// ErrAppearanceTimeout once the elapsed wall time exceeds the configured
// timeout. Open errors other than "not exist" abort the wait
// immediately. The "waiting" notice is logged once, on the first poll
// that finds the file absent.
func Await(ctx context.Context, path string, opts AwaitOptions, logger *slog.Logger) (*os.File, error) {
	start := time.Now()
	noticed := false

	for {
		file, err := os.Open(path)
		if err == nil {
			logger.Info("found log file", "path", path)
			return file, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("open log file: %w", err)
		}

		if !noticed {
			logger.Info("waiting for log file to be created", "path", path)
			noticed = true
		}

		if !opts.Unbounded && time.Since(start) > opts.Timeout {
			return nil, fmt.Errorf("%w: %s did not appear within %s", ErrAppearanceTimeout, path, opts.Timeout)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(pollInterval):
		}
	}
}
