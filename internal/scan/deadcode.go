package scan

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/redhouse-labs/pygauge/internal/config"
)

// debugPrefixes mark scratch scripts that tend to outlive their
// usefulness.
var debugPrefixes = []string{"debug_", "analyze_", "check_"}

// DeadCode flags files that look like leftovers: test files outside
// the tests tree and debug-style scripts. The result is advisory
// only and never affects pass/fail status.
func DeadCode(root string, cfg *config.Config) ([]string, error) {
	excludeDirs := stringSet(cfg.ExcludeDirs)

	var findings []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() || filepath.Ext(d.Name()) != ".py" {
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}
		rel = filepath.ToSlash(rel)

		if excludedByDir(rel, excludeDirs) {
			return nil
		}
		// The tests directory is where test files belong.
		if hasSegment(rel, "tests") {
			return nil
		}

		name := d.Name()
		if strings.HasPrefix(name, "test_") &&
			!strings.Contains(rel, "src") && !strings.Contains(rel, "tests_archive") {
			findings = append(findings, fmt.Sprintf("Possible orphan test file: %s", rel))
		}
		for _, prefix := range debugPrefixes {
			if strings.HasPrefix(name, prefix) {
				findings = append(findings, fmt.Sprintf("Possible debug script (review): %s", rel))
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("dead code scan: %w", err)
	}
	return findings, nil
}

func hasSegment(rel, segment string) bool {
	for _, part := range strings.Split(rel, "/") {
		if part == segment {
			return true
		}
	}
	return false
}
