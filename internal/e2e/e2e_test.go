// Package e2e snapshots full compilation sessions end to end: source
// in, all seven diagnostic artifacts out. It plays the same role the
// teacher repo's fixture_test.go plays for DWScript programs, scaled
// down to C-minus's much smaller surface — one named program per
// scenario instead of a directory of .dws fixtures.
package e2e

import (
	"fmt"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/cwbudde/cminus-compiler/internal/codegen"
	"github.com/cwbudde/cminus-compiler/internal/diagnostics"
	"github.com/cwbudde/cminus-compiler/internal/lexer"
	"github.com/cwbudde/cminus-compiler/internal/parser"
)

func compile(source string) diagnostics.Session {
	lex := lexer.New(source)
	gen := codegen.New(codegen.DefaultConfig())
	p := parser.New(lex, gen)
	tree := p.Parse()
	return diagnostics.Session{Lex: lex, Tree: tree, Gen: gen}
}

// scenarios covers the six worked examples from the design's testable
// properties section verbatim, plus three more exercising array
// addressing, a nested if-inside-repeat break target, and a call with an
// argument inside an arithmetic expression.
var scenarios = []struct {
	name   string
	source string
}{
	{"empty_main", "int main(void) { }"},
	{"void_declaration", "void x; int main(void) { }"},
	{"arithmetic_assignment", "int main(void) { int x; x = 2 + 3; }"},
	{"repeat_until", "int main(void) { int x; x = 0; repeat x = x + 1; until (x < 10) }"},
	{"undefined_function_call", "int main(void) { f(1); }"},
	{"mismatched_parens", "int main( { }"},
	{"array_declare_and_index", "int main(void) { int a[10]; a[0] = 1; int y; y = a[0]; }"},
	{"nested_if_inside_repeat_break", "int main(void) { repeat if (1 < 2) { break; } endif until (1 < 2) }"},
	{"call_with_argument", "int main(void) { int x; x = 1 + output(5); }"},
}

// TestScenarios snapshots every rendered artifact (tokens, the three
// error logs, the symbol table, the parse tree, and output.txt when
// not suppressed) for each scenario above, so a regression in any one
// of the seven renderers — or in the generator's instruction stream —
// shows up as a snapshot diff instead of requiring a hand-written
// assertion per field. go-snaps writes a fresh golden file the first
// time a given snapshot name runs, so this suite alone only guards
// against regressions from whatever baseline gets committed alongside
// it; TestCallProtocolArgumentPassing below carries hand-written
// assertions that hold regardless of what's committed.
func TestScenarios(t *testing.T) {
	for _, sc := range scenarios {
		t.Run(sc.name, func(t *testing.T) {
			session := compile(sc.source)
			for _, artifact := range diagnostics.Render(session) {
				snaps.MatchSnapshot(t, fmt.Sprintf("%s/%s", sc.name, artifact.Name), artifact.Content)
			}
		})
	}
}

// TestCallProtocolArgumentPassing asserts, independent of any snapshot
// baseline, that a call passing a nonzero number of arguments (here
// the built-in output(int), called as an expression statement, since
// output returns void and a void operand inside arithmetic is itself a
// semantic error) runs the full seven-step
// call protocol cleanly: no arity-mismatch semantic error, the pushed
// argument value actually reaches the emitted program, and the
// semantic stack is balanced once compilation finishes.
func TestCallProtocolArgumentPassing(t *testing.T) {
	session := compile("int main(void) { output(5); }")

	if session.Gen.Errors.HasErrors() {
		t.Fatalf("unexpected semantic errors: %v", session.Gen.Errors.Entries())
	}
	if got := session.Gen.Stack.Len(); got != 0 {
		t.Fatalf("semantic stack not balanced after compile: %d entries left", got)
	}
	if session.Gen.Suppressed() {
		t.Fatal("output.txt should not be suppressed for a semantically clean program")
	}
	dump := session.Gen.PB.Dump()
	if !strings.Contains(dump, "#5,") {
		t.Fatalf("expected the argument value 5 to be pushed onto the activation stack, got:\n%s", dump)
	}
	if !strings.Contains(dump, "(PRINT, ") {
		t.Fatalf("expected output's PRINT instruction to run, got:\n%s", dump)
	}
}
