package pysrc

import (
	sitter "github.com/alexaandru/go-tree-sitter-bare"

	"github.com/redhouse-labs/pygauge/internal/metrics"
)

// Structure holds the structural metrics extracted from one parsed
// file: import count, top-level class names, and function records.
type Structure struct {
	Imports   int
	Classes   []string
	Functions []metrics.Function
}

// Extract walks the tree and collects structural metrics.
//
// Top-level classes contribute their direct methods as functions
// named "Class.method"; top-level function definitions (plain or
// async) contribute directly. Nested inner functions are not
// recorded as separate entries. Imports are counted at any depth.
//
// syntheticSpan is the assumed body length when a node carries no
// usable end position; the recorded end line becomes start line +
// syntheticSpan.
func (t *Tree) Extract(path string, syntheticSpan int) Structure {
	var s Structure
	root := t.Root()

	s.Imports = countImports(root)

	for i := range root.NamedChildCount() {
		node := unwrapDecorated(root.NamedChild(i))
		switch node.Type() {
		case "class_definition":
			name := t.fieldText(node, "name")
			s.Classes = append(s.Classes, name)
			s.Functions = append(s.Functions, t.classMethods(node, name, path, syntheticSpan)...)
		case "function_definition":
			s.Functions = append(s.Functions, t.functionMetrics(node, "", path, syntheticSpan))
		}
	}
	return s
}

// classMethods returns metrics for the direct methods of a class
// body, qualified with the class name.
func (t *Tree) classMethods(class sitter.Node, className, path string, syntheticSpan int) []metrics.Function {
	body := class.ChildByFieldName("body")
	if body.IsNull() {
		return nil
	}

	var methods []metrics.Function
	for i := range body.NamedChildCount() {
		stmt := unwrapDecorated(body.NamedChild(i))
		if stmt.Type() == "function_definition" {
			methods = append(methods, t.functionMetrics(stmt, className, path, syntheticSpan))
		}
	}
	return methods
}

func (t *Tree) functionMetrics(fn sitter.Node, className, path string, syntheticSpan int) metrics.Function {
	name := t.fieldText(fn, "name")
	if className != "" {
		name = className + "." + name
	}

	start := int(fn.StartPoint().Row) + 1
	end := int(fn.EndPoint().Row) + 1
	if end < start {
		// No usable span metadata; assume a fixed-size body.
		end = start + syntheticSpan
	}

	return metrics.Function{
		Name:       name,
		File:       path,
		StartLine:  start,
		EndLine:    end,
		Lines:      end - start + 1,
		Complexity: Complexity(fn),
	}
}

// fieldText returns the source text of a named field child, or ""
// when the field is absent.
func (t *Tree) fieldText(n sitter.Node, field string) string {
	child := n.ChildByFieldName(field)
	if child.IsNull() {
		return ""
	}
	return t.text(child)
}

// unwrapDecorated resolves a decorated_definition wrapper to the
// class or function definition inside it.
func unwrapDecorated(n sitter.Node) sitter.Node {
	if n.Type() != "decorated_definition" {
		return n
	}
	def := n.ChildByFieldName("definition")
	if def.IsNull() {
		return n
	}
	return def
}

func countImports(n sitter.Node) int {
	count := 0
	switch n.Type() {
	case "import_statement", "import_from_statement", "future_import_statement":
		count++
	}
	for i := range n.NamedChildCount() {
		child := n.NamedChild(i)
		if !child.IsNull() {
			count += countImports(child)
		}
	}
	return count
}
