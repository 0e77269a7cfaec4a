package pysrc

import (
	"context"
	"testing"
)

func parseFixture(t *testing.T, src string) *Tree {
	t.Helper()
	tree, err := Parse(context.Background(), []byte(src))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	t.Cleanup(tree.Close)
	return tree
}

const structureFixture = `import os
import sys
from pathlib import Path

CONSTANT = 1


def top(x):
    return x


async def fetch(url):
    return url


class Greeter:
    def __init__(self, name):
        self.name = name

    @property
    def loud(self):
        return self.name.upper()


def lazy():
    import json
    return json
`

func TestExtract_Structure(t *testing.T) {
	tree := parseFixture(t, structureFixture)
	s := tree.Extract("src/greeter.py", 10)

	// Three top-level imports plus the one inside lazy().
	if s.Imports != 4 {
		t.Errorf("imports = %d, want 4", s.Imports)
	}

	if len(s.Classes) != 1 || s.Classes[0] != "Greeter" {
		t.Errorf("classes = %v, want [Greeter]", s.Classes)
	}

	wantNames := []string{"top", "fetch", "Greeter.__init__", "Greeter.loud", "lazy"}
	if len(s.Functions) != len(wantNames) {
		t.Fatalf("got %d functions (%v), want %d", len(s.Functions), names(s), len(wantNames))
	}
	for i, want := range wantNames {
		if s.Functions[i].Name != want {
			t.Errorf("function %d: name = %q, want %q", i, s.Functions[i].Name, want)
		}
	}

	for _, fn := range s.Functions {
		if fn.File != "src/greeter.py" {
			t.Errorf("%s: file = %q", fn.Name, fn.File)
		}
		if fn.Lines != fn.EndLine-fn.StartLine+1 {
			t.Errorf("%s: lines %d != end-start+1 (%d-%d)",
				fn.Name, fn.Lines, fn.EndLine, fn.StartLine)
		}
		if fn.Lines < 1 {
			t.Errorf("%s: lines %d < 1", fn.Name, fn.Lines)
		}
		if fn.Complexity < 1 {
			t.Errorf("%s: complexity %d < 1", fn.Name, fn.Complexity)
		}
	}
}

func TestExtract_LineSpans(t *testing.T) {
	src := "def a():\n    return 1\n\n\ndef b(x):\n    if x:\n        return 2\n    return 3\n"
	tree := parseFixture(t, src)
	s := tree.Extract("spans.py", 10)

	if len(s.Functions) != 2 {
		t.Fatalf("got %d functions, want 2", len(s.Functions))
	}

	a := s.Functions[0]
	if a.StartLine != 1 || a.EndLine != 2 || a.Lines != 2 {
		t.Errorf("a span = %d-%d (%d lines), want 1-2 (2 lines)", a.StartLine, a.EndLine, a.Lines)
	}

	b := s.Functions[1]
	if b.StartLine != 5 || b.EndLine != 8 || b.Lines != 4 {
		t.Errorf("b span = %d-%d (%d lines), want 5-8 (4 lines)", b.StartLine, b.EndLine, b.Lines)
	}
	if b.Complexity != 2 {
		t.Errorf("b complexity = %d, want 2", b.Complexity)
	}
}

func TestExtract_DecoratedFunctionStartsAtDef(t *testing.T) {
	src := "@decorator\ndef deco():\n    pass\n"
	tree := parseFixture(t, src)
	s := tree.Extract("deco.py", 10)

	if len(s.Functions) != 1 {
		t.Fatalf("got %d functions, want 1", len(s.Functions))
	}
	fn := s.Functions[0]
	if fn.Name != "deco" {
		t.Errorf("name = %q, want deco", fn.Name)
	}
	if fn.StartLine != 2 {
		t.Errorf("start = %d, want 2 (the def line, not the decorator)", fn.StartLine)
	}
}

func TestExtract_DecoratedClass(t *testing.T) {
	src := "@register\nclass Handler:\n    def handle(self):\n        pass\n"
	tree := parseFixture(t, src)
	s := tree.Extract("handler.py", 10)

	if len(s.Classes) != 1 || s.Classes[0] != "Handler" {
		t.Errorf("classes = %v, want [Handler]", s.Classes)
	}
	if len(s.Functions) != 1 || s.Functions[0].Name != "Handler.handle" {
		t.Errorf("functions = %v, want [Handler.handle]", names(s))
	}
}

func TestExtract_NestedDefsNotRecorded(t *testing.T) {
	src := `def outer():
    def inner():
        pass
    class Local:
        pass
    return inner
`
	tree := parseFixture(t, src)
	s := tree.Extract("nested.py", 10)

	if len(s.Functions) != 1 || s.Functions[0].Name != "outer" {
		t.Errorf("functions = %v, want [outer]", names(s))
	}
	// Local classes are not top-level classes.
	if len(s.Classes) != 0 {
		t.Errorf("classes = %v, want none", s.Classes)
	}
}

func TestHasSyntaxError(t *testing.T) {
	good := parseFixture(t, "def ok():\n    pass\n")
	if good.HasSyntaxError() {
		t.Error("valid source reported a syntax error")
	}

	// Recovery can leave MISSING nodes instead of ERROR nodes; both
	// forms must count as a failed parse.
	invalid := []string{
		"def broken(:\n    pass\n",
		"def g(:\n    pass\n",
		"class X(\n    pass\n",
		"if True\n    pass\n",
	}
	for _, src := range invalid {
		bad := parseFixture(t, src)
		if !bad.HasSyntaxError() {
			t.Errorf("source %q not reported as a syntax error", src)
		}
	}
}

func names(s Structure) []string {
	var out []string
	for _, fn := range s.Functions {
		out = append(out, fn.Name)
	}
	return out
}
