// Package classify compares finalized metrics against the configured
// soft/hard limits and records warnings and violations on the
// project. Thresholds are exclusive: a value equal to the limit
// passes. Classification is policy only; it never alters a metric
// and is never an error.
package classify

import (
	"fmt"

	"github.com/redhouse-labs/pygauge/internal/config"
	"github.com/redhouse-labs/pygauge/internal/metrics"
)

// Apply walks the project's files in order, appending a violation
// for every hard-limit breach and a warning for every soft-limit
// breach. File size is checked first, then each function's length
// and complexity independently.
func Apply(p *metrics.Project, limits config.Limits) {
	for _, fm := range p.Files {
		checkFile(p, fm, limits)
		for _, fn := range fm.Functions {
			checkFunctionLength(p, fn, limits)
			checkFunctionComplexity(p, fn, limits)
		}
	}
}

func checkFile(p *metrics.Project, fm metrics.File, limits config.Limits) {
	switch {
	case fm.TotalLines > limits.LinesPerFileHard:
		p.Violations = append(p.Violations, fmt.Sprintf(
			"FILE TOO LONG: %s has %d lines (hard limit: %d)",
			fm.Path, fm.TotalLines, limits.LinesPerFileHard))
	case fm.TotalLines > limits.LinesPerFileSoft:
		p.Warnings = append(p.Warnings, fmt.Sprintf(
			"FILE TOO LONG: %s has %d lines (soft limit: %d)",
			fm.Path, fm.TotalLines, limits.LinesPerFileSoft))
	}
}

func checkFunctionLength(p *metrics.Project, fn metrics.Function, limits config.Limits) {
	switch {
	case fn.Lines > limits.LinesPerFunctionHard:
		p.Violations = append(p.Violations, fmt.Sprintf(
			"FUNCTION TOO LONG: %s in %s:%d has %d lines (hard limit: %d)",
			fn.Name, fn.File, fn.StartLine, fn.Lines, limits.LinesPerFunctionHard))
	case fn.Lines > limits.LinesPerFunctionSoft:
		p.Warnings = append(p.Warnings, fmt.Sprintf(
			"FUNCTION TOO LONG: %s in %s:%d has %d lines (soft limit: %d)",
			fn.Name, fn.File, fn.StartLine, fn.Lines, limits.LinesPerFunctionSoft))
	}
}

func checkFunctionComplexity(p *metrics.Project, fn metrics.Function, limits config.Limits) {
	switch {
	case fn.Complexity > limits.ComplexityHard:
		p.Violations = append(p.Violations, fmt.Sprintf(
			"HIGH COMPLEXITY: %s in %s:%d has complexity %d (hard limit: %d)",
			fn.Name, fn.File, fn.StartLine, fn.Complexity, limits.ComplexityHard))
	case fn.Complexity > limits.ComplexitySoft:
		p.Warnings = append(p.Warnings, fmt.Sprintf(
			"HIGH COMPLEXITY: %s in %s:%d has complexity %d (soft limit: %d)",
			fn.Name, fn.File, fn.StartLine, fn.Complexity, limits.ComplexitySoft))
	}
}
