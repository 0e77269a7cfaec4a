package extcheck

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/redhouse-labs/pygauge/internal/config"
)

// CoverageResult is the outcome of the coverage check.
type CoverageResult struct {
	// Passed is true only when both the aggregate core-module
	// check and the per-file check pass.
	Passed bool

	// Output is the captured tool output plus appended summary
	// lines, rendered verbatim in the report.
	Output string
}

// ParseAggregate scans captured pytest-cov output and sums statement
// and missed-statement counts across the core-module allow-list.
//
// A line qualifies when it mentions an allow-listed basename with a
// ".py" suffix, contains a percentage marker, and is not a test-file
// line. The second and third whitespace-separated tokens are the
// statement and miss counts; lines whose tokens fail to parse are
// skipped, not fatal.
func ParseAggregate(output string, coreModules []string) (stmts, miss int) {
	for _, line := range strings.Split(output, "\n") {
		for _, mod := range coreModules {
			if !strings.Contains(line, mod+".py") ||
				!strings.Contains(line, "%") ||
				strings.Contains(line, "test_") {
				continue
			}
			parts := strings.Fields(line)
			if len(parts) < 4 {
				continue
			}
			s, err1 := strconv.Atoi(parts[1])
			m, err2 := strconv.Atoi(parts[2])
			if err1 != nil || err2 != nil {
				continue
			}
			stmts += s
			miss += m
		}
	}
	return stmts, miss
}

// perFileExcludes filters lines that never count toward per-file
// coverage, regardless of their numeric value.
var perFileExcludes = []string{"test_", "__init__", "conftest"}

// ParsePerFile scans captured coverage output for per-file coverage
// lines ("filename.py   100   10   90%") and returns the files below
// minCoverage along with every qualifying coverage line.
func ParsePerFile(output string, minCoverage int) (below, all []string) {
	for _, line := range strings.Split(output, "\n") {
		if !strings.Contains(line, ".py") || !strings.Contains(line, "%") {
			continue
		}
		if containsAny(line, perFileExcludes) {
			continue
		}

		parts := strings.Fields(line)
		if len(parts) < 4 {
			continue
		}
		pct, err := strconv.Atoi(strings.TrimSuffix(parts[3], "%"))
		if err != nil {
			continue
		}

		entry := fmt.Sprintf("%s: %d%%", parts[0], pct)
		all = append(all, entry)
		if pct < minCoverage {
			below = append(below, entry)
		}
	}
	return below, all
}

// EvaluateCoverage applies both coverage checks to captured test
// output and appends the summary lines the report renders.
//
// The aggregate check fails closed: matching no statements at all is
// a failure, not a vacuous pass.
func EvaluateCoverage(output string, cfg *config.Config) CoverageResult {
	stmts, miss := ParseAggregate(output, cfg.CoreModules)

	corePassed := false
	if stmts > 0 {
		pct := 100 * float64(stmts-miss) / float64(stmts)
		corePassed = pct >= float64(cfg.Limits.TestCoverageMin)
		output += fmt.Sprintf("\n\nCore modules coverage: %.1f%% (%d/%d statements)",
			pct, stmts-miss, stmts)
	} else {
		output += "\n\nCould not calculate core module coverage"
	}

	below, _ := ParsePerFile(output, cfg.PerFileCoverageMin)
	if len(below) > 0 {
		output += fmt.Sprintf("\n\n[!!] Files below %d%% coverage:\n", cfg.PerFileCoverageMin)
		for _, f := range below {
			output += fmt.Sprintf("  - %s\n", f)
		}
	}

	return CoverageResult{
		Passed: corePassed && len(below) == 0,
		Output: output,
	}
}

// CoverageCheck runs pytest with coverage reporting and evaluates
// the captured output.
func CoverageCheck(ctx context.Context, root string, cfg *config.Config) CoverageResult {
	result := Run(ctx, root, cfg.CoverageTimeout(),
		"python3", "-m", "pytest", "tests/", "-q",
		"--cov=src", "--cov-report=term", "--cov-config=.coveragerc")

	if result.TimedOut {
		return CoverageResult{Passed: false, Output: "Coverage check timed out"}
	}
	if result.Err != nil {
		return CoverageResult{Passed: false, Output: fmt.Sprintf("Coverage check failed: %v", result.Err)}
	}
	return EvaluateCoverage(result.Output, cfg)
}

func containsAny(s string, patterns []string) bool {
	for _, pat := range patterns {
		if strings.Contains(s, pat) {
			return true
		}
	}
	return false
}
