package parser

import (
	"strings"
	"testing"

	"github.com/cwbudde/cminus-compiler/internal/codegen"
	"github.com/cwbudde/cminus-compiler/internal/lexer"
)

func parse(src string) (*Tree, *codegen.Generator) {
	lex := lexer.New(src)
	gen := codegen.New(codegen.DefaultConfig())
	p := New(lex, gen)
	return p.Parse(), gen
}

func TestParseEmptyMain(t *testing.T) {
	tree, gen := parse("int main(void) { }")
	if tree.Log.HasErrors() {
		t.Fatalf("unexpected syntax errors: %s", tree.Log.Format())
	}
	if gen.Errors.HasErrors() {
		t.Fatalf("unexpected semantic errors: %s", gen.Errors.Format())
	}
	if gen.Suppressed() {
		t.Fatal("output.txt must not be suppressed for a clean program")
	}
}

func TestParseTreeVisitsEveryChild(t *testing.T) {
	tree, _ := parse("int main(void) { return; }")
	var count func(n *Node) int
	count = func(n *Node) int {
		total := 1
		for _, c := range n.Children {
			total += count(c)
		}
		return total
	}
	rendered := tree.Root.Render()
	// Every node contributes exactly one label line to the rendering.
	if got, want := strings.Count(rendered, "\n"), count(tree.Root); got != want {
		t.Errorf("rendered %d lines, tree has %d nodes", got, want)
	}
}

func TestMissingCloseParenRecovers(t *testing.T) {
	tree, _ := parse("int main( { }")
	if !tree.Log.HasErrors() {
		t.Fatal("expected a syntax error for the missing ')'")
	}
	found := false
	for _, e := range tree.Log.Entries() {
		if strings.Contains(e.Message, "missing") && strings.Contains(e.Message, ")") {
			found = true
		}
	}
	if !found {
		t.Errorf("syntax log %v does not mention the missing ')'", tree.Log.Entries())
	}
}

func TestUndefinedFunctionCallStillCompletes(t *testing.T) {
	tree, gen := parse("int main(void) { f(1); }")
	if tree.Log.HasErrors() {
		t.Fatalf("unexpected syntax errors: %s", tree.Log.Format())
	}
	found := false
	for _, e := range gen.Errors.Entries() {
		if strings.Contains(e.Message, "'f' is not defined.") {
			found = true
		}
	}
	if !found {
		t.Errorf("semantic log %v does not report undefined 'f'", gen.Errors.Entries())
	}
}

func TestVoidVariableIsSemanticError(t *testing.T) {
	_, gen := parse("void x; int main(void) { }")
	if !gen.Suppressed() {
		t.Fatal("output.txt should be suppressed when a semantic error is recorded")
	}
	entries := gen.Errors.Entries()
	if len(entries) != 1 || entries[0].Message != "Illegal type of void for 'x'." {
		t.Errorf("got %v", entries)
	}
}

func TestBreakOutsideRepeatIsSemanticError(t *testing.T) {
	_, gen := parse("int main(void) { break; }")
	found := false
	for _, e := range gen.Errors.Entries() {
		if e.Message == "No 'repeat ... until' found for 'break'." {
			found = true
		}
	}
	if !found {
		t.Errorf("expected break-outside-container error, got %v", gen.Errors.Entries())
	}
}
