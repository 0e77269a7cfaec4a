// Package scan discovers Python source files under a root directory
// and analyzes them into metrics records. Discovery applies the
// configured directory and filename exclusion sets and returns a
// lexicographically sorted list so repeated runs produce identical
// reports.
package scan

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/redhouse-labs/pygauge/internal/config"
)

// Discover returns the slash-separated paths, relative to root, of
// all .py files to analyze, sorted lexicographically. A nonexistent
// or non-directory root is the only fatal condition in the pipeline.
func Discover(root string, cfg *config.Config) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("scan root %q: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("scan root %q is not a directory", root)
	}

	excludeDirs := stringSet(cfg.ExcludeDirs)
	excludeFiles := stringSet(cfg.ExcludeFiles)

	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			// Prune excluded directories; the root itself is
			// never pruned.
			if path != root && excludeDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(d.Name()) != ".py" {
			return nil
		}
		if excludeFiles[d.Name()] {
			return nil
		}

		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %q: %w", root, err)
	}

	sort.Strings(files)
	return files, nil
}

// excludedByDir reports whether any segment of a relative path is in
// the directory exclusion set. Used by scans that re-walk the tree
// without pruning.
func excludedByDir(rel string, excludeDirs map[string]bool) bool {
	for _, part := range strings.Split(filepath.ToSlash(rel), "/") {
		if excludeDirs[part] {
			return true
		}
	}
	return false
}

func stringSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[item] = true
	}
	return set
}
