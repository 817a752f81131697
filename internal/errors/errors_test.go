package errors

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"strings"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: "",
		},
		{
			name:     "simple error",
			err:      errors.New("storage not writable"),
			expected: "Error: storage not writable",
		},
		{
			name:     "wrapped error",
			err:      errors.New("failed to arm reminder: daemon unreachable"),
			expected: "Error: failed to arm reminder: daemon unreachable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.err); got != tt.expected {
				t.Errorf("Format(%v) = %q, want %q", tt.err, got, tt.expected)
			}
		})
	}
}

func TestFormatf(t *testing.T) {
	tests := []struct {
		name     string
		format   string
		args     []interface{}
		expected string
	}{
		{
			name:     "plain message",
			format:   "storage not writable",
			expected: "Error: storage not writable",
		},
		{
			name:     "single argument",
			format:   "unknown habit %q",
			args:     []interface{}{"swimming"},
			expected: `Error: unknown habit "swimming"`,
		},
		{
			name:     "multiple arguments",
			format:   "reminder %s has %d triggers",
			args:     []interface{}{"default_move", 7},
			expected: "Error: reminder default_move has 7 triggers",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Formatf(tt.format, tt.args...); got != tt.expected {
				t.Errorf("Formatf(%q, %v) = %q, want %q", tt.format, tt.args, got, tt.expected)
			}
		})
	}
}

// Fatal exits the process, so it runs in a subprocess re-invoking this test
// binary.
func TestFatal(t *testing.T) {
	if os.Getenv("DAYKEEP_TEST_FATAL") == "1" {
		Fatal(errors.New("boom"))
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestFatal")
	cmd.Env = append(os.Environ(), "DAYKEEP_TEST_FATAL=1")
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	e, ok := err.(*exec.ExitError)
	if !ok || e.Success() {
		t.Fatalf("Fatal() did not exit with error: %v", err)
	}
	if e.ExitCode() != 1 {
		t.Errorf("Fatal() exit code = %d, want 1", e.ExitCode())
	}
	if !strings.Contains(stderr.String(), "Error: boom") {
		t.Errorf("Fatal() stderr = %q, want to contain %q", stderr.String(), "Error: boom")
	}
}

func TestFatalNilErrorReturns(t *testing.T) {
	if os.Getenv("DAYKEEP_TEST_FATAL_NIL") == "1" {
		Fatal(nil)
		os.Exit(0)
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestFatalNilErrorReturns")
	cmd.Env = append(os.Environ(), "DAYKEEP_TEST_FATAL_NIL=1")
	if err := cmd.Run(); err != nil {
		t.Errorf("Fatal(nil) should not exit, but got error: %v", err)
	}
}

func TestFatalf(t *testing.T) {
	if os.Getenv("DAYKEEP_TEST_FATALF") == "1" {
		Fatalf("failed to load %s", "daykeep.db")
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestFatalf")
	cmd.Env = append(os.Environ(), "DAYKEEP_TEST_FATALF=1")
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	e, ok := err.(*exec.ExitError)
	if !ok || e.Success() {
		t.Fatalf("Fatalf() did not exit with error: %v", err)
	}
	if e.ExitCode() != 1 {
		t.Errorf("Fatalf() exit code = %d, want 1", e.ExitCode())
	}
	if !strings.Contains(stderr.String(), "Error: failed to load daykeep.db") {
		t.Errorf("Fatalf() stderr = %q", stderr.String())
	}
}
