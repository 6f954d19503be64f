package config_test

import (
	"errors"
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/louisbranch/dicer/internal/platform/config"
)

const exitHelperEnv = "DICER_EXIT_HELPER"

// TestExitHelper is the subprocess body for TestExit; it does nothing when
// run directly.
func TestExitHelper(t *testing.T) {
	switch os.Getenv(exitHelperEnv) {
	case "exitf":
		config.Exitf("error: %s %q", "invalid dice type", "d0")
	case "fexitf":
		config.Fexitf(os.Stdout, "error: %s", "no expression")
	}
}

func TestExit(t *testing.T) {
	tests := []struct {
		name   string
		mode   string
		stdout string
		stderr string
	}{
		{name: "stderr", mode: "exitf", stderr: `error: invalid dice type "d0"`},
		{name: "writer", mode: "fexitf", stdout: "error: no expression"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(os.Args[0], "-test.run=^TestExitHelper$")
			cmd.Env = append(os.Environ(), exitHelperEnv+"="+tt.mode)
			var stdout, stderr strings.Builder
			cmd.Stdout = &stdout
			cmd.Stderr = &stderr

			err := cmd.Run()
			var exitErr *exec.ExitError
			if !errors.As(err, &exitErr) {
				t.Fatalf("expected *exec.ExitError, got %T: %v", err, err)
			}
			if exitErr.ExitCode() != 1 {
				t.Fatalf("expected exit code 1, got %d", exitErr.ExitCode())
			}
			if tt.stdout != "" && !strings.Contains(stdout.String(), tt.stdout) {
				t.Fatalf("expected stdout to contain %q, got %q", tt.stdout, stdout.String())
			}
			if tt.stderr != "" && !strings.Contains(stderr.String(), tt.stderr) {
				t.Fatalf("expected stderr to contain %q, got %q", tt.stderr, stderr.String())
			}
			if tt.stderr == "" && strings.Contains(stderr.String(), "error:") {
				t.Fatalf("expected nothing on stderr, got %q", stderr.String())
			}
		})
	}
}
