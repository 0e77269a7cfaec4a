// Package extcheck drives the external quality tools (pytest with
// coverage, the ruff linter, the mypy type checker) as opaque
// subprocesses and parses their captured output into structured
// check results. The parsers are pure text functions, independently
// testable against literal captured-output fixtures.
package extcheck

import (
	"context"
	"errors"
	"os/exec"
	"time"
)

// RunResult captures one external command invocation.
type RunResult struct {
	// Output is the combined stdout and stderr.
	Output string

	// ExitCode is the process exit status; 0 means success.
	// -1 when the process never ran or was killed.
	ExitCode int

	// TimedOut is true when the command hit its deadline.
	TimedOut bool

	// Err is non-nil when the command could not be started at all.
	Err error
}

// Passed reports whether the process ran and exited zero.
func (r RunResult) Passed() bool {
	return r.Err == nil && !r.TimedOut && r.ExitCode == 0
}

// Run executes a command in dir with a hard timeout, capturing
// combined output and exit status. A timeout or failure is reported
// in the result, never as a crash; other checks are unaffected.
func Run(ctx context.Context, dir string, timeout time.Duration, name string, args ...string) RunResult {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()

	result := RunResult{Output: string(output)}
	if ctx.Err() == context.DeadlineExceeded {
		result.TimedOut = true
		result.ExitCode = -1
		return result
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
		} else {
			result.ExitCode = -1
			result.Err = err
		}
	}
	return result
}
