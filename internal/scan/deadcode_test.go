package scan

import (
	"strings"
	"testing"

	"github.com/redhouse-labs/pygauge/internal/config"
)

func TestDeadCode_Findings(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root,
		"test_orphan.py",
		"debug_probe.py",
		"analyze_dump.py",
		"check_wiring.py",
		"main.py",
		"src/test_util.py",
		"tests/test_real.py",
	)

	findings, err := DeadCode(root, config.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	assertFinding(t, findings, "Possible orphan test file: test_orphan.py")
	assertFinding(t, findings, "Possible debug script (review): debug_probe.py")
	assertFinding(t, findings, "Possible debug script (review): analyze_dump.py")
	assertFinding(t, findings, "Possible debug script (review): check_wiring.py")

	for _, f := range findings {
		if strings.Contains(f, "main.py") {
			t.Errorf("main.py should not be flagged: %q", f)
		}
		if strings.Contains(f, "tests/test_real.py") {
			t.Errorf("files under tests/ should not be flagged: %q", f)
		}
		if strings.Contains(f, "src/test_util.py") {
			t.Errorf("test files under src should not be flagged as orphans: %q", f)
		}
	}
}

func TestDeadCode_CleanTree(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "main.py", "src/logic.py")

	findings, err := DeadCode(root, config.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if len(findings) != 0 {
		t.Errorf("expected no findings, got %v", findings)
	}
}

func assertFinding(t *testing.T, findings []string, want string) {
	t.Helper()
	for _, f := range findings {
		if f == want {
			return
		}
	}
	t.Errorf("missing finding %q in %v", want, findings)
}
