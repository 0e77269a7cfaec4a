// Package pysrc parses Python source into a tree-sitter syntax tree
// and extracts structural metrics from it: imports, classes,
// functions, and per-function cyclomatic complexity.
package pysrc

import (
	"context"
	"errors"

	python "github.com/alexaandru/go-sitter-forest/python"
	sitter "github.com/alexaandru/go-tree-sitter-bare"
)

// ErrNoRootNode is returned when parsing yields no usable tree.
var ErrNoRootNode = errors.New("pysrc: no root node")

var pyLanguage = sitter.NewLanguage(python.GetLanguage())

// Tree is a parsed Python source file. Callers must Close it to
// release the underlying tree-sitter resources.
type Tree struct {
	tree *sitter.Tree
	src  []byte
}

// Parse parses Python source text.
func Parse(ctx context.Context, src []byte) (*Tree, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(pyLanguage)

	tree, err := parser.ParseString(ctx, nil, src)
	if err != nil {
		return nil, err
	}
	if tree.RootNode().IsNull() {
		tree.Close()
		return nil, ErrNoRootNode
	}
	return &Tree{tree: tree, src: src}, nil
}

// Close releases the tree-sitter tree.
func (t *Tree) Close() {
	t.tree.Close()
}

// Root returns the module node.
func (t *Tree) Root() sitter.Node {
	return t.tree.RootNode()
}

// HasSyntaxError reports whether the source parsed cleanly. The check
// covers both ERROR and MISSING nodes anywhere in the tree, including
// the unnamed positions tree-sitter's error recovery produces. Callers
// treat this the same as a parse failure: line counts stand,
// structural metrics are skipped.
func (t *Tree) HasSyntaxError() bool {
	return t.Root().HasError()
}

// text returns the source text of a node.
func (t *Tree) text(n sitter.Node) string {
	return n.Content(t.src)
}
