// Package config holds the pygauge configuration: quality limits,
// discovery exclusion sets, the core-module allow-list for coverage
// checks, and external tool timeouts. Configuration is an explicit
// immutable value passed into the analyzer and classifier; there is
// no process-wide mutable state.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Limits is the enumerated threshold set applied by the classifier.
// Soft limits produce warnings, hard limits produce violations.
// All boundaries are exclusive: a value equal to the limit passes.
type Limits struct {
	LinesPerFileSoft     int `yaml:"lines_per_file_soft"`
	LinesPerFileHard     int `yaml:"lines_per_file_hard"`
	LinesPerFunctionSoft int `yaml:"lines_per_function_soft"`
	LinesPerFunctionHard int `yaml:"lines_per_function_hard"`
	ComplexitySoft       int `yaml:"cyclomatic_complexity_soft"`
	ComplexityHard       int `yaml:"cyclomatic_complexity_hard"`

	// TestCoverageMin is the minimum aggregate coverage percentage
	// for core modules.
	TestCoverageMin int `yaml:"test_coverage_min"`
}

// Config is the full pygauge configuration.
type Config struct {
	// ExcludeDirs lists directory names excluded from discovery.
	// A file is excluded when any segment of its path relative to
	// the scan root matches one of these names.
	ExcludeDirs []string `yaml:"exclude_dirs"`

	// ExcludeFiles lists file basenames excluded from discovery.
	ExcludeFiles []string `yaml:"exclude_files"`

	// CoreModules lists the module basenames (without ".py") whose
	// aggregate test coverage counts toward TestCoverageMin.
	CoreModules []string `yaml:"core_modules"`

	// PerFileCoverageMin is the minimum per-file coverage percentage.
	PerFileCoverageMin int `yaml:"per_file_coverage_min"`

	// SyntheticSpan is the assumed function body length, in lines,
	// used when the syntax tree yields no usable end position.
	SyntheticSpan int `yaml:"synthetic_span"`

	// Timeouts for external tool invocations, in seconds.
	CoverageTimeoutSeconds  int `yaml:"coverage_timeout_seconds"`
	LintTimeoutSeconds      int `yaml:"lint_timeout_seconds"`
	TypeCheckTimeoutSeconds int `yaml:"typecheck_timeout_seconds"`

	Limits Limits `yaml:"limits"`
}

// DefaultConfig returns the built-in configuration used when no
// config file is present.
func DefaultConfig() *Config {
	return &Config{
		ExcludeDirs: []string{
			"venv",
			"build",
			"__pycache__",
			".git",
			"reports",
			".pytest_cache",
			"old scripts",
			"old backups",
			"wibatemp",
			"scripts",
			"tests",
			".fissio",
		},
		ExcludeFiles: []string{"__init__.py", "emeters_5min_legacy.py"},
		CoreModules: []string{
			"config",
			"config_validator",
			"influx_client",
			"json_logger",
			"logger",
			"heating_curve",
			"heating_data_fetcher",
			"heating_optimizer",
			"program_executor",
			"program_generator",
			"pump_controller",
			"checkwatt",
			"energy_meter",
			"shelly_em3",
			"spot_prices",
			"temperature",
			"weather",
			"windpower",
			"analytics_15min",
			"analytics_1hour",
			"emeters_5min",
		},
		PerFileCoverageMin:      90,
		SyntheticSpan:           10,
		CoverageTimeoutSeconds:  120,
		LintTimeoutSeconds:      60,
		TypeCheckTimeoutSeconds: 120,
		Limits: Limits{
			LinesPerFileSoft:     400,
			LinesPerFileHard:     500,
			LinesPerFunctionSoft: 40,
			LinesPerFunctionHard: 50,
			ComplexitySoft:       8,
			ComplexityHard:       10,
			TestCoverageMin:      90,
		},
	}
}

// Load reads a YAML config file and merges it over the defaults.
// Fields absent from the file keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %q: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %q: %w", path, err)
	}
	return cfg, nil
}

// CoverageTimeout returns the coverage check timeout as a duration.
func (c *Config) CoverageTimeout() time.Duration {
	return time.Duration(c.CoverageTimeoutSeconds) * time.Second
}

// LintTimeout returns the linter timeout as a duration.
func (c *Config) LintTimeout() time.Duration {
	return time.Duration(c.LintTimeoutSeconds) * time.Second
}

// TypeCheckTimeout returns the type checker timeout as a duration.
func (c *Config) TypeCheckTimeout() time.Duration {
	return time.Duration(c.TypeCheckTimeoutSeconds) * time.Second
}
