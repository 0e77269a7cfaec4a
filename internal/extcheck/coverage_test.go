package extcheck

import (
	"strings"
	"testing"

	"github.com/redhouse-labs/pygauge/internal/config"
)

const coverageFixture = `============================= test session starts ==============================
collected 42 items

Name                        Stmts   Miss  Cover
-----------------------------------------------
src/__init__.py                 0      0   100%
src/config.py                  80      4    95%
src/logger.py                  40      8    80%
src/spot_prices.py            100     10    90%
src/helpers.py                 30      1    97%
tests/test_config.py           50      0   100%
conftest.py                    10      0   100%
-----------------------------------------------
TOTAL                         310     23    93%

============================== 42 passed in 3.12s ==============================
`

func TestParseAggregate(t *testing.T) {
	core := []string{"config", "logger", "spot_prices"}
	stmts, miss := ParseAggregate(coverageFixture, core)
	if stmts != 220 || miss != 22 {
		t.Errorf("got stmts=%d miss=%d, want 220/22", stmts, miss)
	}
}

func TestParseAggregate_IgnoresTestFiles(t *testing.T) {
	// tests/test_config.py mentions "config.py" but is a test line.
	stmts, _ := ParseAggregate("tests/test_config.py  50  0  100%\n", []string{"config"})
	if stmts != 0 {
		t.Errorf("test file lines must not count, got stmts=%d", stmts)
	}
}

func TestParseAggregate_SkipsMalformedLines(t *testing.T) {
	out := "src/config.py  many  none  95%\nsrc/config.py  10  1  90%\n"
	stmts, miss := ParseAggregate(out, []string{"config"})
	if stmts != 10 || miss != 1 {
		t.Errorf("got stmts=%d miss=%d, want 10/1", stmts, miss)
	}
}

func TestParsePerFile(t *testing.T) {
	below, all := ParsePerFile(coverageFixture, 90)
	if len(below) != 1 || below[0] != "src/logger.py: 80%" {
		t.Errorf("below = %v, want [src/logger.py: 80%%]", below)
	}
	// Exactly at the minimum is not below.
	for _, entry := range below {
		if strings.Contains(entry, "spot_prices") {
			t.Errorf("90%% file flagged as below 90: %v", below)
		}
	}
	for _, entry := range all {
		for _, excluded := range []string{"test_", "__init__", "conftest"} {
			if strings.Contains(entry, excluded) {
				t.Errorf("excluded file in results: %q", entry)
			}
		}
	}
}

func TestEvaluateCoverage_Passes(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.CoreModules = []string{"config", "spot_prices", "helpers"}

	out := "src/config.py  80  4  95%\nsrc/spot_prices.py  100  10  90%\nsrc/helpers.py  30  1  97%\n"
	res := EvaluateCoverage(out, cfg)
	if !res.Passed {
		t.Fatalf("expected pass, output:\n%s", res.Output)
	}
	// 210 statements, 15 missed: 92.9%.
	if !strings.Contains(res.Output, "Core modules coverage: 92.9% (195/210 statements)") {
		t.Errorf("missing summary line, output:\n%s", res.Output)
	}
}

func TestEvaluateCoverage_AggregateBoundary(t *testing.T) {
	// 120 statements, 12 missed is exactly 90%.
	out := "src/config.py  120  12  90%\n"

	cfg := config.DefaultConfig()
	cfg.CoreModules = []string{"config"}
	if res := EvaluateCoverage(out, cfg); !res.Passed {
		t.Errorf("exactly 90%% must pass a 90%% minimum, output:\n%s", res.Output)
	}

	cfg = config.DefaultConfig()
	cfg.CoreModules = []string{"config"}
	cfg.Limits.TestCoverageMin = 91
	cfg.PerFileCoverageMin = 0
	if res := EvaluateCoverage(out, cfg); res.Passed {
		t.Error("90% must fail a 91% minimum")
	}
}

func TestEvaluateCoverage_FailsBelowMinimum(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.CoreModules = []string{"logger"}

	res := EvaluateCoverage("src/logger.py  40  8  80%\n", cfg)
	if res.Passed {
		t.Fatal("80% aggregate must fail a 90% minimum")
	}
	if !strings.Contains(res.Output, "[!!] Files below 90% coverage:") {
		t.Errorf("missing per-file section, output:\n%s", res.Output)
	}
	if !strings.Contains(res.Output, "  - src/logger.py: 80%") {
		t.Errorf("missing per-file entry, output:\n%s", res.Output)
	}
}

func TestEvaluateCoverage_FailsClosedOnNoMatches(t *testing.T) {
	res := EvaluateCoverage("no coverage table here\n", config.DefaultConfig())
	if res.Passed {
		t.Fatal("zero matched statements must fail, not vacuously pass")
	}
	if !strings.Contains(res.Output, "Could not calculate core module coverage") {
		t.Errorf("missing fail-closed note, output:\n%s", res.Output)
	}
}
