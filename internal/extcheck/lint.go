package extcheck

import (
	"context"
	"fmt"
	"strings"

	"github.com/redhouse-labs/pygauge/internal/config"
)

// LintResult is the outcome of one lint tool invocation.
type LintResult struct {
	// Name is the tool's display name ("Ruff" or "Mypy").
	Name string

	// Passed is true iff the process exited zero.
	Passed bool

	// Output is the captured combined output.
	Output string

	// Errors is the number of diagnostic lines counted in Output.
	Errors int

	// Filter, when non-empty, selects which output lines the
	// report shows for this tool.
	Filter string
}

// CountRuffErrors counts ruff diagnostic lines: non-empty lines with
// a path-like "file:line:col:" shape, excluding the tool's own
// "Found N errors" summary.
func CountRuffErrors(output string) int {
	count := 0
	for _, line := range strings.Split(strings.TrimSpace(output), "\n") {
		if line != "" && strings.Contains(line, ":") && !strings.HasPrefix(line, "Found") {
			count++
		}
	}
	return count
}

// CountMypyErrors counts mypy error lines ("file:line: error: ...").
func CountMypyErrors(output string) int {
	count := 0
	for _, line := range strings.Split(strings.TrimSpace(output), "\n") {
		if strings.Contains(line, ": error:") {
			count++
		}
	}
	return count
}

// RuffCheck runs the ruff linter over the tree.
func RuffCheck(ctx context.Context, root string, cfg *config.Config) LintResult {
	result := Run(ctx, root, cfg.LintTimeout(), "python3", "-m", "ruff", "check", ".")

	if result.TimedOut {
		return LintResult{Name: "Ruff", Passed: false, Output: "Ruff check timed out"}
	}
	if result.Err != nil {
		return LintResult{Name: "Ruff", Passed: false,
			Output: fmt.Sprintf("Ruff check failed: %v", result.Err)}
	}
	return LintResult{
		Name:   "Ruff",
		Passed: result.ExitCode == 0,
		Output: result.Output,
		Errors: CountRuffErrors(result.Output),
	}
}

// MypyCheck runs the mypy type checker over src/.
func MypyCheck(ctx context.Context, root string, cfg *config.Config) LintResult {
	result := Run(ctx, root, cfg.TypeCheckTimeout(), "python3", "-m", "mypy", "src/")

	if result.TimedOut {
		return LintResult{Name: "Mypy", Passed: false, Output: "Mypy check timed out"}
	}
	if result.Err != nil {
		return LintResult{Name: "Mypy", Passed: false,
			Output: fmt.Sprintf("Mypy check failed: %v", result.Err)}
	}
	return LintResult{
		Name:   "Mypy",
		Passed: result.ExitCode == 0,
		Output: result.Output,
		Errors: CountMypyErrors(result.Output),
		Filter: ": error:",
	}
}
