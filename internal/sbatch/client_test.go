package sbatch

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"
)

func stubSubmit(t *testing.T, mode string) *[]string {
	t.Helper()

	var capturedArgs []string
	original := commandContext
	commandContext = func(ctx context.Context, name string, args ...string) *exec.Cmd {
		capturedArgs = append([]string(nil), args...)
		cmd := exec.CommandContext(ctx, os.Args[0], "-test.run=TestHelperProcess")
		cmd.Env = append(os.Environ(), "GO_WANT_HELPER_PROCESS=1", "SBATCH_HELPER_MODE="+mode)
		return cmd
	}
	t.Cleanup(func() {
		commandContext = original
	})
	return &capturedArgs
}

func TestNewCLIWithBinary(t *testing.T) {
	cli := NewCLI(WithBinary("/opt/slurm/bin/sbatch"))
	if cli.binary != "/opt/slurm/bin/sbatch" {
		t.Fatalf("expected binary override to be applied, got %q", cli.binary)
	}
}

func TestSubmitRequiresScript(t *testing.T) {
	cli := NewCLI()
	if _, err := cli.Submit(context.Background(), ""); err == nil {
		t.Fatal("expected error when script path is empty")
	}
}

func TestSubmitParsesJobID(t *testing.T) {
	captured := stubSubmit(t, "success")

	cli := NewCLI()
	jobID, err := cli.Submit(context.Background(), "/data/run.sh")
	if err != nil {
		t.Fatalf("submit returned error: %v", err)
	}
	if jobID != 12345 {
		t.Fatalf("expected job id 12345, got %d", jobID)
	}
	if len(*captured) == 0 || (*captured)[len(*captured)-1] != "/data/run.sh" {
		t.Fatalf("expected script path in sbatch args, got %v", *captured)
	}
}

func TestSubmitFailureCarriesStderr(t *testing.T) {
	stubSubmit(t, "failure")

	cli := NewCLI()
	_, err := cli.Submit(context.Background(), "/data/run.sh")
	if err == nil {
		t.Fatal("expected error from failed submission")
	}
	if want := "invalid partition"; !strings.Contains(err.Error(), want) {
		t.Fatalf("expected stderr %q in error, got %v", want, err)
	}
}

func TestSubmitNoJobID(t *testing.T) {
	stubSubmit(t, "nojobid")

	cli := NewCLI()
	if _, err := cli.Submit(context.Background(), "/data/run.sh"); err == nil {
		t.Fatal("expected error when output contains no job id")
	}
}

func TestHelperProcess(t *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		return
	}

	switch os.Getenv("SBATCH_HELPER_MODE") {
	case "success":
		fmt.Println("Submitted batch job 12345")
		os.Exit(0)
	case "failure":
		fmt.Fprintln(os.Stderr, "sbatch: error: invalid partition")
		os.Exit(1)
	case "nojobid":
		fmt.Println("Submitted batch job")
		os.Exit(0)
	default:
		os.Exit(0)
	}
}
