package sbatch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

var commandContext = exec.CommandContext

// Client submits batch scripts to the scheduler.
type Client interface {
	Submit(ctx context.Context, scriptPath string) (uint64, error)
}

// Option configures the CLI client.
type Option func(*CLI)

// WithBinary overrides the default sbatch binary name.
func WithBinary(binary string) Option {
	return func(c *CLI) {
		if binary != "" {
			c.binary = binary
		}
	}
}

// CLI wraps the sbatch command-line submitter.
type CLI struct {
	binary string
}

// NewCLI constructs a CLI client using defaults.
func NewCLI(opts ...Option) *CLI {
	cli := &CLI{binary: "sbatch"}
	for _, opt := range opts {
		opt(cli)
	}
	return cli
}

// Submit runs sbatch on the script and returns the scheduler job id
// parsed from its stdout. sbatch prints a human sentence around the id
// ("Submitted batch job 42"), so the id is the first whitespace-split
// token that parses as an unsigned integer.
func (c *CLI) Submit(ctx context.Context, scriptPath string) (uint64, error) {
	if scriptPath == "" {
		return 0, errors.New("script path required")
	}

	var stdout, stderr bytes.Buffer
	cmd := commandContext(ctx, c.binary, scriptPath)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return 0, fmt.Errorf("%s failed: %s: %w", c.binary, msg, err)
		}
		return 0, fmt.Errorf("%s failed: %w", c.binary, err)
	}

	for _, word := range strings.Fields(stdout.String()) {
		if id, err := strconv.ParseUint(word, 10, 64); err == nil {
			return id, nil
		}
	}

	return 0, fmt.Errorf("no job id in %s output %q", c.binary, strings.TrimSpace(stdout.String()))
}

var _ Client = (*CLI)(nil)
