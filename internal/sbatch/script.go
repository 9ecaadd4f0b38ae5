package sbatch

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Directives capture the scheduler settings slurmtail reads out of a
// batch script.
type Directives struct {
	OutputPattern string
	JobName       string
}

// ErrNoOutputDirective reports a script with no #SBATCH output setting,
// which leaves slurmtail without a log file to follow.
var ErrNoOutputDirective = errors.New("no output directive in script")

// ParseScript extracts the output pattern and optional job name from
// the #SBATCH directive lines of a batch script. Both the `--flag=value`
// and `--flag value` spellings are accepted; the first occurrence of
// each directive wins. A missing job name is fine, a missing output
// directive is not.
func ParseScript(path string) (Directives, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Directives{}, fmt.Errorf("read batch script: %w", err)
	}

	var d Directives
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if d.OutputPattern == "" {
			if value, ok := directiveValue(line, "--output", "-o"); ok {
				d.OutputPattern = value
			}
		}
		if d.JobName == "" {
			if value, ok := directiveValue(line, "--job-name", "-J"); ok {
				d.JobName = value
			}
		}
	}

	if d.OutputPattern == "" {
		return Directives{}, fmt.Errorf("%w: %s", ErrNoOutputDirective, path)
	}
	return d, nil
}

func directiveValue(line string, flags ...string) (string, bool) {
	for _, flag := range flags {
		if !strings.HasPrefix(line, "#SBATCH "+flag) {
			continue
		}
		if idx := strings.IndexByte(line, '='); idx >= 0 {
			value := strings.TrimSpace(line[idx+1:])
			if value == "" {
				return "", false
			}
			return value, true
		}
		if fields := strings.Fields(line); len(fields) >= 3 {
			return fields[2], true
		}
	}
	return "", false
}

// ExpandPattern substitutes scheduler placeholders into an output
// pattern: %j becomes the job id and %x the job name when one is known.
func ExpandPattern(pattern string, jobID uint64, jobName string) string {
	result := strings.ReplaceAll(pattern, "%j", strconv.FormatUint(jobID, 10))
	if jobName != "" {
		result = strings.ReplaceAll(result, "%x", jobName)
	}
	return result
}

// ResolveLogPath turns an expanded output filename into the path to
// monitor. Absolute filenames stand alone, with a warning when they
// defeat an explicit working-directory request; relative filenames are
// joined against the current working directory when useCWD is set,
// otherwise against the script's directory.
func ResolveLogPath(scriptPath, filename string, useCWD bool, logger *slog.Logger) (string, error) {
	if filepath.IsAbs(filename) {
		if useCWD {
			logger.Warn("output pattern is an absolute path; using it as-is", "path", filename)
		}
		return filename, nil
	}

	if useCWD {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("determine working directory: %w", err)
		}
		return filepath.Join(cwd, filename), nil
	}

	dir := filepath.Dir(scriptPath)
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, filename), nil
}
