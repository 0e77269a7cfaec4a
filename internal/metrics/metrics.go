// Package metrics defines the measurement records produced by source
// analysis: per-function, per-file, and project-wide aggregates.
// Records are created once during parsing and never mutated; the
// project accumulates files in discovery order, and violations are
// appended by a separate classification pass.
package metrics

// Function holds the metrics for a single function or method.
// Methods are qualified with their class name ("Class.method").
type Function struct {
	// Name is the function name, qualified for class methods.
	Name string `json:"name"`

	// File is the path of the containing file, relative to the
	// scan root.
	File string `json:"file"`

	// StartLine and EndLine are the 1-based source span.
	StartLine int `json:"start_line"`
	EndLine   int `json:"end_line"`

	// Lines is EndLine - StartLine + 1.
	Lines int `json:"lines"`

	// Complexity is the cyclomatic complexity (always >= 1).
	Complexity int `json:"complexity"`
}

// File holds the metrics for a single source file.
type File struct {
	// Path is relative to the scan root, slash-separated.
	Path string `json:"path"`

	// TotalLines is the number of line breaks plus one.
	TotalLines int `json:"total_lines"`

	// CodeLines counts lines that are non-blank and not
	// comment-only. Always <= TotalLines.
	CodeLines int `json:"code_lines"`

	// Functions lists function metrics in source order.
	Functions []Function `json:"functions"`

	// Classes lists top-level class names in source order.
	Classes []string `json:"classes"`

	// Imports counts import statements at any depth.
	Imports int `json:"imports"`
}

// Project is the aggregate over all analyzed files.
type Project struct {
	// Files in discovery (sorted) order.
	Files []File `json:"files"`

	TotalFiles     int `json:"total_files"`
	TotalLines     int `json:"total_lines"`
	TotalCodeLines int `json:"total_code_lines"`
	TotalFunctions int `json:"total_functions"`

	// Violations and Warnings are fully-qualified human-readable
	// messages, in file-discovery emission order. Violations are
	// hard-limit breaches; warnings are soft-limit breaches.
	Violations []string `json:"violations"`
	Warnings   []string `json:"warnings"`
}

// Add appends a file's metrics and folds its counts into the project
// totals. Aggregation is strictly additive; no total is ever
// recomputed from other totals.
func (p *Project) Add(f File) {
	p.Files = append(p.Files, f)
	p.TotalFiles++
	p.TotalLines += f.TotalLines
	p.TotalCodeLines += f.CodeLines
	p.TotalFunctions += len(f.Functions)
}

// AllFunctions returns every function across all files, in file
// order then source order.
func (p *Project) AllFunctions() []Function {
	var funcs []Function
	for _, f := range p.Files {
		funcs = append(funcs, f.Functions...)
	}
	return funcs
}
