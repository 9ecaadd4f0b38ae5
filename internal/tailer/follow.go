package tailer

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"time"
)

// Follow streams lines appended to file to out, starting from the file's
// current seek position. Output is written as soon as each read
// completes, so a concurrently watching observer sees lines without
// added delay. The liveness clock resets on any read of at least one
// byte; once no bytes have arrived for longer than stallTimeout the loop
// fails with ErrStallTimeout. Reaching the current end of file is not
// terminal. The only other exits are read or write errors and context
// cancellation.
func Follow(ctx context.Context, file io.Reader, out io.Writer, stallTimeout time.Duration) error {
	reader := bufio.NewReader(file)
	lastRead := time.Now()

	for {
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return fmt.Errorf("read log file: %w", err)
		}

		if len(line) > 0 {
			if _, err := io.WriteString(out, line); err != nil {
				return fmt.Errorf("write log line: %w", err)
			}
			lastRead = time.Now()
			continue
		}

		if time.Since(lastRead) > stallTimeout {
			return fmt.Errorf("%w: no new data for %s", ErrStallTimeout, stallTimeout)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(pollInterval):
		}
	}
}
