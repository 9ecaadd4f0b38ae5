// Package marker persists the resume marker: a pointer to the log file
// a previous session was following, stored in the submission's working
// directory so a later invocation can reattach without re-deriving it.
package marker

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Filename is the fixed marker filename. The file content is the raw
// path of the followed log file, nothing else; other tools rely on this
// layout, so keep it stable.
const Filename = "._slurmtail"

var (
	// ErrNotFound reports that no marker exists in the directory.
	ErrNotFound = errors.New("no resume marker found")

	// ErrStale reports a marker whose recorded log file no longer
	// exists. Staleness is detected at read time, never at write time.
	ErrStale = errors.New("resume marker is stale")
)

// Save records logPath as the marker for dir, replacing any previous
// marker without merge semantics.
func Save(dir, logPath string) error {
	path := filepath.Join(dir, Filename)
	if err := os.WriteFile(path, []byte(logPath), 0o644); err != nil {
		return fmt.Errorf("write resume marker %s: %w", path, err)
	}
	return nil
}

// Load returns the log path recorded for dir. It fails with ErrNotFound
// when no marker exists and with ErrStale when the marker names a file
// that is gone. Surrounding whitespace in the marker content is ignored.
func Load(dir string) (string, error) {
	path := filepath.Join(dir, Filename)
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w in %s", ErrNotFound, dir)
		}
		return "", fmt.Errorf("read resume marker %s: %w", path, err)
	}

	logPath := strings.TrimSpace(string(content))
	if logPath == "" {
		return "", fmt.Errorf("%w: marker is empty", ErrStale)
	}
	if _, err := os.Stat(logPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: log file %s no longer exists", ErrStale, logPath)
		}
		return "", fmt.Errorf("stat recorded log file %s: %w", logPath, err)
	}
	return logPath, nil
}

// Clear removes the marker for dir if one exists. The boolean reports
// whether a marker was actually removed; absence is not an error.
func Clear(dir string) (bool, error) {
	path := filepath.Join(dir, Filename)
	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("remove resume marker %s: %w", path, err)
	}
	return true, nil
}
