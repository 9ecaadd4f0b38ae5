package preflight_test

import (
	"os"
	"path/filepath"
	"testing"

	"slurmtail/internal/preflight"
)

func TestCheckSubmitBinaryFound(t *testing.T) {
	// Every test environment has a shell.
	result := preflight.CheckSubmitBinary("sh")
	if !result.Passed {
		t.Fatalf("expected sh to be found, got %+v", result)
	}
	if result.Detail == "" {
		t.Fatal("expected resolved path in detail")
	}
}

func TestCheckSubmitBinaryMissing(t *testing.T) {
	result := preflight.CheckSubmitBinary("definitely-not-a-real-binary-xyz")
	if result.Passed {
		t.Fatalf("expected missing binary to fail, got %+v", result)
	}
}

func TestCheckSubmitBinaryUnconfigured(t *testing.T) {
	if result := preflight.CheckSubmitBinary("  "); result.Passed {
		t.Fatalf("expected blank binary to fail, got %+v", result)
	}
}

func TestCheckWorkingDirectory(t *testing.T) {
	result := preflight.CheckWorkingDirectory(t.TempDir())
	if !result.Passed {
		t.Fatalf("expected temp dir to pass, got %+v", result)
	}
}

func TestCheckWorkingDirectoryMissing(t *testing.T) {
	result := preflight.CheckWorkingDirectory(filepath.Join(t.TempDir(), "nope"))
	if result.Passed {
		t.Fatalf("expected missing dir to fail, got %+v", result)
	}
}

func TestCheckWorkingDirectoryNotADirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	result := preflight.CheckWorkingDirectory(path)
	if result.Passed {
		t.Fatalf("expected regular file to fail, got %+v", result)
	}
}

func TestRun(t *testing.T) {
	results := preflight.Run("sh", t.TempDir())
	if len(results) != 2 {
		t.Fatalf("expected 2 checks, got %d", len(results))
	}
	for _, r := range results {
		if !r.Passed {
			t.Fatalf("expected all checks to pass, got %+v", r)
		}
	}
}
