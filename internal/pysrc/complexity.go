package pysrc

import (
	sitter "github.com/alexaandru/go-tree-sitter-bare"
)

// Complexity returns the cyclomatic complexity of the subtree rooted
// at node: one baseline path plus one per decision point.
//
// Decision points: each conditional branch (if and every elif), each
// loop, each exception handler clause, each with block, each ternary
// expression, each binary short-circuit operator (so an N-operand
// chain contributes N-1), and each comprehension iteration clause
// plus each of its filter conditions.
//
// The walk recurses into every nested construct, including nested
// function and lambda definitions, so an inner function's branches
// accumulate into the enclosing function's score.
func Complexity(node sitter.Node) int {
	return 1 + decisionPoints(node)
}

func decisionPoints(n sitter.Node) int {
	count := 0
	switch n.Type() {
	case "if_statement",
		"elif_clause",
		"for_statement",
		"while_statement",
		"except_clause",
		"except_group_clause",
		"with_statement",
		"conditional_expression",
		"boolean_operator",
		"for_in_clause",
		"if_clause":
		count++
	}

	for i := range n.NamedChildCount() {
		child := n.NamedChild(i)
		if !child.IsNull() {
			count += decisionPoints(child)
		}
	}
	return count
}
