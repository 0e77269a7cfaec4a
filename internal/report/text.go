// Package report renders analysis results: a multi-section
// human-readable text report on standard output, and a JSON form
// with a published schema. Rendering is presentation only; it never
// alters metrics or check outcomes.
package report

import (
	"fmt"
	"io"
	"path"
	"sort"
	"strings"

	"github.com/redhouse-labs/pygauge/internal/config"
	"github.com/redhouse-labs/pygauge/internal/extcheck"
	"github.com/redhouse-labs/pygauge/internal/metrics"
)

const sectionBar = "======================================================================"

// topEntries bounds the "top N" lists in the summary sections.
const topEntries = 10

// maxDiagnosticLines bounds how many tool diagnostic lines the
// report shows per lint tool.
const maxDiagnosticLines = 20

// WriteText renders the metrics report: summary, limits, top files,
// top functions, and the violations/warnings sections. With verbose
// set, a per-file detailed breakdown follows.
func WriteText(w io.Writer, p *metrics.Project, limits config.Limits, verbose bool) {
	s := DefaultStyles()

	writeSummary(w, p, limits, s)
	writeTopFiles(w, p, limits, s)
	writeTopFunctions(w, p, limits, s)
	writeFindings(w, p, s)

	if verbose {
		writeBreakdown(w, p, s)
	}
}

func writeSection(w io.Writer, s Styles, title string) {
	fmt.Fprintln(w, s.Bar.Render(sectionBar))
	fmt.Fprintln(w, s.Header.Render(title))
	fmt.Fprintln(w, s.Bar.Render(sectionBar))
}

func writeSummary(w io.Writer, p *metrics.Project, limits config.Limits, s Styles) {
	writeSection(w, s, "CODE QUALITY REPORT")

	fmt.Fprintf(w, "\n%s\n", s.Label.Render("Project Summary:"))
	fmt.Fprintf(w, "  Files analyzed: %d\n", p.TotalFiles)
	fmt.Fprintf(w, "  Total lines: %d\n", p.TotalLines)
	fmt.Fprintf(w, "  Code lines: %d\n", p.TotalCodeLines)
	fmt.Fprintf(w, "  Total functions: %d\n", p.TotalFunctions)

	fmt.Fprintf(w, "\n%s\n", s.Label.Render("Limits (soft/hard):"))
	fmt.Fprintf(w, "  Lines per file: %d/%d\n", limits.LinesPerFileSoft, limits.LinesPerFileHard)
	fmt.Fprintf(w, "  Lines per function: %d/%d\n", limits.LinesPerFunctionSoft, limits.LinesPerFunctionHard)
	fmt.Fprintf(w, "  Cyclomatic complexity: %d/%d\n", limits.ComplexitySoft, limits.ComplexityHard)
}

func writeTopFiles(w io.Writer, p *metrics.Project, limits config.Limits, s Styles) {
	fmt.Fprintf(w, "\n%s\n", s.Label.Render(fmt.Sprintf("Files by size (top %d):", topEntries)))

	sorted := make([]metrics.File, len(p.Files))
	copy(sorted, p.Files)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TotalLines > sorted[j].TotalLines
	})

	for _, fm := range trimFiles(sorted, topEntries) {
		fmt.Fprintf(w, "  %s %s: %d lines, %d functions\n",
			s.marker(fm.TotalLines <= limits.LinesPerFileHard),
			path.Base(fm.Path), fm.TotalLines, len(fm.Functions))
	}
}

func writeTopFunctions(w io.Writer, p *metrics.Project, limits config.Limits, s Styles) {
	funcs := p.AllFunctions()

	fmt.Fprintf(w, "\n%s\n", s.Label.Render(fmt.Sprintf("Functions by complexity (top %d):", topEntries)))
	byComplexity := make([]metrics.Function, len(funcs))
	copy(byComplexity, funcs)
	sort.SliceStable(byComplexity, func(i, j int) bool {
		return byComplexity[i].Complexity > byComplexity[j].Complexity
	})
	for _, fn := range trimFuncs(byComplexity, topEntries) {
		fmt.Fprintf(w, "  %s %s (%s:%d): complexity=%d, lines=%d\n",
			s.marker(fn.Complexity <= limits.ComplexityHard),
			fn.Name, path.Base(fn.File), fn.StartLine, fn.Complexity, fn.Lines)
	}

	fmt.Fprintf(w, "\n%s\n", s.Label.Render(fmt.Sprintf("Functions by length (top %d):", topEntries)))
	byLength := make([]metrics.Function, len(funcs))
	copy(byLength, funcs)
	sort.SliceStable(byLength, func(i, j int) bool {
		return byLength[i].Lines > byLength[j].Lines
	})
	for _, fn := range trimFuncs(byLength, topEntries) {
		fmt.Fprintf(w, "  %s %s (%s:%d): lines=%d, complexity=%d\n",
			s.marker(fn.Lines <= limits.LinesPerFunctionHard),
			fn.Name, path.Base(fn.File), fn.StartLine, fn.Lines, fn.Complexity)
	}
}

func writeFindings(w io.Writer, p *metrics.Project, s Styles) {
	if len(p.Violations) > 0 {
		fmt.Fprintln(w)
		writeSection(w, s, fmt.Sprintf("VIOLATIONS (%d):", len(p.Violations)))
		for _, v := range p.Violations {
			fmt.Fprintf(w, "  %s %s\n", s.Fail.Render(MarkerFail), v)
		}
	} else {
		fmt.Fprintf(w, "\n%s No violations found!\n", s.Pass.Render(MarkerOK))
	}

	if len(p.Warnings) > 0 {
		fmt.Fprintln(w)
		writeSection(w, s, fmt.Sprintf("WARNINGS (%d):", len(p.Warnings)))
		for _, warning := range p.Warnings {
			fmt.Fprintf(w, "  %s %s\n", s.Muted.Render("[??]"), warning)
		}
	}
}

func writeBreakdown(w io.Writer, p *metrics.Project, s Styles) {
	fmt.Fprintln(w)
	writeSection(w, s, "DETAILED FILE BREAKDOWN")

	sorted := make([]metrics.File, len(p.Files))
	copy(sorted, p.Files)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TotalLines > sorted[j].TotalLines
	})

	for _, fm := range sorted {
		fmt.Fprintf(w, "\n%s\n", s.Header.Render(fm.Path+":"))
		fmt.Fprintf(w, "  Lines: %d (code: %d)\n", fm.TotalLines, fm.CodeLines)
		classes := "none"
		if len(fm.Classes) > 0 {
			classes = strings.Join(fm.Classes, ", ")
		}
		fmt.Fprintf(w, "  Classes: %s\n", classes)
		fmt.Fprintf(w, "  Imports: %d\n", fm.Imports)
		fmt.Fprintf(w, "  Functions: %d\n", len(fm.Functions))
		for _, fn := range fm.Functions {
			fmt.Fprintf(w, "    - %s:%d (lines=%d, complexity=%d)\n",
				fn.Name, fn.StartLine, fn.Lines, fn.Complexity)
		}
	}
}

// WriteDeadCode renders the advisory dead-code section.
func WriteDeadCode(w io.Writer, findings []string) {
	s := DefaultStyles()
	fmt.Fprintln(w)
	writeSection(w, s, "DEAD CODE SCAN")
	if len(findings) == 0 {
		fmt.Fprintln(w, "  No obvious dead code found")
		return
	}
	for _, item := range findings {
		fmt.Fprintf(w, "  %s %s\n", s.Muted.Render("[??]"), item)
	}
}

// WriteLintChecks renders the lint section covering every tool run.
func WriteLintChecks(w io.Writer, results ...extcheck.LintResult) {
	s := DefaultStyles()
	fmt.Fprintln(w)
	writeSection(w, s, "LINT CHECKS")
	for _, res := range results {
		fmt.Fprintln(w)
		WriteLintResult(w, res)
	}
}

// WriteLintResult renders one lint tool's outcome: pass/fail, error
// count, and up to maxDiagnosticLines matching diagnostic lines.
func WriteLintResult(w io.Writer, res extcheck.LintResult) {
	s := DefaultStyles()

	if res.Passed {
		fmt.Fprintf(w, "  %s %s: No issues found\n", s.Pass.Render(MarkerOK), res.Name)
		return
	}
	fmt.Fprintf(w, "  %s %s: %d issues found\n", s.Fail.Render(MarkerFail), res.Name, res.Errors)

	var lines []string
	for _, line := range strings.Split(strings.TrimSpace(res.Output), "\n") {
		if line == "" {
			continue
		}
		if res.Filter != "" && !strings.Contains(line, res.Filter) {
			continue
		}
		lines = append(lines, line)
		if len(lines) == maxDiagnosticLines {
			break
		}
	}
	for _, line := range lines {
		fmt.Fprintf(w, "      %s\n", line)
	}
	if res.Errors > maxDiagnosticLines {
		fmt.Fprintf(w, "      ... and %d more\n", res.Errors-maxDiagnosticLines)
	}
}

// WriteCoverage renders the coverage check section.
func WriteCoverage(w io.Writer, res extcheck.CoverageResult, minCoverage int) {
	s := DefaultStyles()
	fmt.Fprintln(w)
	writeSection(w, s, "COVERAGE CHECK")
	fmt.Fprintf(w, "Minimum required: %d%%\n", minCoverage)
	for _, line := range strings.Split(strings.TrimSpace(res.Output), "\n") {
		fmt.Fprintf(w, "  %s\n", line)
	}
	if res.Passed {
		fmt.Fprintf(w, "\n%s Coverage check passed\n", s.Pass.Render(MarkerOK))
	} else {
		fmt.Fprintf(w, "\n%s Coverage below %d%%\n", s.Fail.Render(MarkerFail), minCoverage)
	}
}

func trimFiles(files []metrics.File, n int) []metrics.File {
	if len(files) > n {
		return files[:n]
	}
	return files
}

func trimFuncs(funcs []metrics.Function, n int) []metrics.Function {
	if len(funcs) > n {
		return funcs[:n]
	}
	return funcs
}
