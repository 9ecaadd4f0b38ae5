package tailer_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"slurmtail/internal/tailer"
)

// syncBuffer lets the follow goroutine and test assertions share output.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func appendLine(path, line string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(line); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func TestFollowStaticFileStalls(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.log")
	if err := os.WriteFile(path, []byte("only line\n"), 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}
	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("open log: %v", err)
	}
	defer file.Close()

	out := &syncBuffer{}
	start := time.Now()
	err = tailer.Follow(context.Background(), file, out, time.Second)
	elapsed := time.Since(start)

	if !errors.Is(err, tailer.ErrStallTimeout) {
		t.Fatalf("expected ErrStallTimeout, got %v", err)
	}
	if elapsed > 4*time.Second {
		t.Fatalf("stall timeout of 1s took %s", elapsed)
	}
	if out.String() != "only line\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestFollowAppendResetsLiveness(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.log")
	if err := os.WriteFile(path, []byte("first\n"), 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}
	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("open log: %v", err)
	}
	defer file.Close()

	go func() {
		time.Sleep(1500 * time.Millisecond)
		if err := appendLine(path, "second\n"); err != nil {
			t.Errorf("append: %v", err)
		}
	}()

	out := &syncBuffer{}
	start := time.Now()
	err = tailer.Follow(context.Background(), file, out, 2*time.Second)
	elapsed := time.Since(start)

	if !errors.Is(err, tailer.ErrStallTimeout) {
		t.Fatalf("expected ErrStallTimeout after the append, got %v", err)
	}
	// The append landed inside the stall window and must have reset the
	// liveness clock: total runtime exceeds a single window.
	if elapsed < 3*time.Second {
		t.Fatalf("stall fired after %s; append did not reset liveness", elapsed)
	}
	if got := out.String(); got != "first\nsecond\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestFollowCancellation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.log")
	if err := os.WriteFile(path, []byte("line\n"), 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}
	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("open log: %v", err)
	}
	defer file.Close()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(200 * time.Millisecond)
		cancel()
	}()

	err = tailer.Follow(ctx, file, &syncBuffer{}, time.Minute)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context cancellation, got %v", err)
	}
}
