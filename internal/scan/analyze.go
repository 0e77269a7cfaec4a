package scan

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/redhouse-labs/pygauge/internal/config"
	"github.com/redhouse-labs/pygauge/internal/metrics"
	"github.com/redhouse-labs/pygauge/internal/pysrc"
)

// AnalyzeFile reads and analyzes one source file. It never fails:
// an unreadable or undecodable file yields a zero-valued record, and
// a file that does not parse keeps its line counts but no structural
// metrics. One bad file must not stop project analysis.
func AnalyzeFile(ctx context.Context, root, rel string, cfg *config.Config) metrics.File {
	fm := metrics.File{Path: rel}

	src, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	if err != nil || !utf8.Valid(src) {
		return fm
	}

	text := string(src)
	fm.TotalLines = strings.Count(text, "\n") + 1
	fm.CodeLines = countCodeLines(text)

	tree, err := pysrc.Parse(ctx, src)
	if err != nil {
		return fm
	}
	defer tree.Close()

	if tree.HasSyntaxError() {
		return fm
	}

	structure := tree.Extract(rel, cfg.SyntheticSpan)
	fm.Imports = structure.Imports
	fm.Classes = structure.Classes
	fm.Functions = structure.Functions
	return fm
}

// countCodeLines counts lines whose trimmed content is non-empty and
// does not begin with the comment marker.
func countCodeLines(text string) int {
	count := 0
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed != "" && !strings.HasPrefix(trimmed, "#") {
			count++
		}
	}
	return count
}

// AnalyzeProject discovers and analyzes every file under root, in
// sorted order, accumulating project totals. Classification is a
// separate pass; the returned project carries no violations yet.
func AnalyzeProject(ctx context.Context, root string, cfg *config.Config) (*metrics.Project, error) {
	files, err := Discover(root, cfg)
	if err != nil {
		return nil, err
	}

	project := &metrics.Project{}
	for _, rel := range files {
		project.Add(AnalyzeFile(ctx, root, rel, cfg))
	}
	return project, nil
}
