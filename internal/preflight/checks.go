// Package preflight verifies the environment slurmtail depends on
// before any job is submitted: the scheduler submit command must be
// runnable and the working directory must accept the resume marker.
package preflight

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"golang.org/x/sys/unix"
)

// Result reports one environment check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// CheckSubmitBinary reports whether the scheduler submit command can be
// found on PATH (or at its configured absolute location).
func CheckSubmitBinary(binary string) Result {
	const name = "scheduler"

	binary = strings.TrimSpace(binary)
	if binary == "" {
		return Result{Name: name, Detail: "submit command not configured"}
	}
	resolved, err := exec.LookPath(binary)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("binary %q not found", binary)}
	}
	return Result{Name: name, Passed: true, Detail: resolved}
}

// CheckWorkingDirectory reports whether dir can hold the resume marker:
// it must exist, be a directory, and be readable, writable, and
// traversable.
func CheckWorkingDirectory(dir string) Result {
	const name = "working directory"

	info, err := os.Stat(dir)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("stat %s: %v", dir, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s is not a directory", dir)}
	}
	if err := unix.Access(dir, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s is not writable: %v", dir, err)}
	}
	return Result{Name: name, Passed: true, Detail: dir}
}

// Run executes all checks for the given configuration.
func Run(submitBinary, workDir string) []Result {
	return []Result{
		CheckSubmitBinary(submitBinary),
		CheckWorkingDirectory(workDir),
	}
}
