package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/redhouse-labs/pygauge/internal/classify"
	"github.com/redhouse-labs/pygauge/internal/config"
	"github.com/redhouse-labs/pygauge/internal/extcheck"
	"github.com/redhouse-labs/pygauge/internal/metrics"
	"github.com/redhouse-labs/pygauge/internal/report"
	"github.com/redhouse-labs/pygauge/internal/scan"
)

// logger is the application-wide structured logger (writes to stderr).
var logger = charmlog.NewWithOptions(os.Stderr, charmlog.Options{
	ReportTimestamp: false,
})

// Set by build flags.
var version = "dev"

// configFileName is looked up in the scan root when no --config flag
// is given.
const configFileName = ".pygauge.yaml"

func main() {
	root := &cobra.Command{
		Use:   "pygauge",
		Short: "Code quality metrics for Python source trees",
		Long: `Pygauge scans a Python source tree, measures per-function
cyclomatic complexity and size metrics from the syntax tree,
classifies them against soft/hard limits, and cross-references
pytest coverage, ruff, and mypy output.`,
		Version: version,
	}

	root.AddCommand(newScanCmd())
	root.AddCommand(newSchemaCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// scanParams holds the parsed flags for the scan command.
type scanParams struct {
	root        string
	format      string
	configPath  string
	check       bool
	verbose     bool
	deadCode    bool
	coverage    bool
	lint        bool
	all         bool
	interactive bool
	stdout      io.Writer
	stderr      io.Writer
}

// runScan is the extracted, testable body of the scan command.
func runScan(p scanParams) error {
	if p.format != "text" && p.format != "json" {
		return fmt.Errorf("invalid format %q: must be 'text' or 'json'", p.format)
	}
	if p.all {
		p.deadCode = true
		p.coverage = true
		p.lint = true
	}

	cfg, err := loadConfig(p)
	if err != nil {
		return err
	}

	ctx := context.Background()

	logger.Info("analyzing project", "root", p.root)
	project, err := scan.AnalyzeProject(ctx, p.root, cfg)
	if err != nil {
		return err
	}
	classify.Apply(project, cfg.Limits)
	logger.Info("analysis complete",
		"files", project.TotalFiles, "functions", project.TotalFunctions)

	var deadCode []string
	if p.deadCode {
		deadCode, err = scan.DeadCode(p.root, cfg)
		if err != nil {
			return err
		}
	}

	var ruff, mypy extcheck.LintResult
	if p.lint {
		logger.Info("running linter", "tool", "ruff")
		ruff = extcheck.RuffCheck(ctx, p.root, cfg)
		logger.Info("running type checker", "tool", "mypy")
		mypy = extcheck.MypyCheck(ctx, p.root, cfg)
	}

	var coverage extcheck.CoverageResult
	if p.coverage {
		logger.Info("running coverage check")
		coverage = extcheck.CoverageCheck(ctx, p.root, cfg)
	}

	switch {
	case p.format == "json":
		if err := writeJSONReport(p, project, deadCode, ruff, mypy, coverage); err != nil {
			return err
		}
	case p.interactive:
		if err := runInteractiveScan(project); err != nil {
			return err
		}
	default:
		report.WriteText(p.stdout, project, cfg.Limits, p.verbose)
		if p.deadCode {
			report.WriteDeadCode(p.stdout, deadCode)
		}
		if p.lint {
			report.WriteLintChecks(p.stdout, ruff, mypy)
		}
		if p.coverage {
			report.WriteCoverage(p.stdout, coverage, cfg.Limits.TestCoverageMin)
		}
	}

	return checkOutcome(p, project.Violations, ruff, mypy, coverage)
}

// loadConfig resolves the effective configuration: an explicit
// --config file, a .pygauge.yaml in the scan root, or the defaults.
func loadConfig(p scanParams) (*config.Config, error) {
	if p.configPath != "" {
		return config.Load(p.configPath)
	}
	implicit := filepath.Join(p.root, configFileName)
	if _, err := os.Stat(implicit); err == nil {
		return config.Load(implicit)
	}
	return config.DefaultConfig(), nil
}

func writeJSONReport(p scanParams, project *metrics.Project, deadCode []string,
	ruff, mypy extcheck.LintResult, coverage extcheck.CoverageResult) error {
	r := &report.Report{
		Version: report.SchemaVersion,
		Project: project,
	}
	if p.deadCode {
		r.DeadCode = deadCode
	}
	if p.lint {
		r.Ruff = &report.CheckOutcome{Passed: ruff.Passed, Errors: ruff.Errors, Output: ruff.Output}
		r.Mypy = &report.CheckOutcome{Passed: mypy.Passed, Errors: mypy.Errors, Output: mypy.Output}
	}
	if p.coverage {
		r.Coverage = &report.CheckOutcome{Passed: coverage.Passed, Output: coverage.Output}
	}
	return report.WriteJSON(p.stdout, r)
}

// checkOutcome converts accumulated issues into a non-zero exit when
// check mode is on. Warnings never block.
func checkOutcome(p scanParams, violations []string,
	ruff, mypy extcheck.LintResult, coverage extcheck.CoverageResult) error {
	if !p.check {
		return nil
	}

	var issues []string
	if len(violations) > 0 {
		issues = append(issues, fmt.Sprintf("%d code violations", len(violations)))
	}
	if p.lint && !(ruff.Passed && mypy.Passed) {
		issues = append(issues, "lint errors")
	}
	if p.coverage && !coverage.Passed {
		issues = append(issues, "coverage below threshold")
	}
	if len(issues) == 0 {
		return nil
	}
	return fmt.Errorf("issues found: %s", strings.Join(issues, ", "))
}

func newScanCmd() *cobra.Command {
	var (
		format      string
		configPath  string
		check       bool
		verbose     bool
		deadCode    bool
		coverage    bool
		lint        bool
		all         bool
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "scan [root]",
		Short: "Analyze a Python source tree and print the quality report",
		Long: `Scan discovers Python files under the root (default "."),
computes size and complexity metrics per file and function, and
prints the full quality report. Independent toggles add dead-code
scanning, coverage checking, and lint checking.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}
			return runScan(scanParams{
				root:        root,
				format:      format,
				configPath:  configPath,
				check:       check,
				verbose:     verbose,
				deadCode:    deadCode,
				coverage:    coverage,
				lint:        lint,
				all:         all,
				interactive: interactive,
				stdout:      os.Stdout,
				stderr:      os.Stderr,
			})
		},
	}

	cmd.Flags().StringVar(&format, "format", "text",
		"output format: text or json")
	cmd.Flags().StringVar(&configPath, "config", "",
		"path to a .pygauge.yaml config file")
	cmd.Flags().BoolVar(&check, "check", false,
		"exit non-zero if hard violations, lint errors, or coverage failures are found")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false,
		"show detailed per-file breakdown")
	cmd.Flags().BoolVar(&deadCode, "dead-code", false,
		"scan for potentially dead code")
	cmd.Flags().BoolVar(&coverage, "coverage", false,
		"run coverage check (requires pytest-cov)")
	cmd.Flags().BoolVar(&lint, "lint", false,
		"run ruff and mypy checks")
	cmd.Flags().BoolVar(&all, "all", false,
		"run all checks (coverage + lint + dead-code)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false,
		"launch interactive TUI for browsing results")

	return cmd
}

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema for pygauge scan output",
		Long: `Print the JSON Schema (Draft 2020-12) that documents the
structure of pygauge scan --format=json output. Useful for
validating output or generating client types.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), report.Schema)
			return err
		},
	}
}
