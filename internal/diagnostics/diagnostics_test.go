package diagnostics

import (
	"strings"
	"testing"

	"github.com/tidwall/gjson"

	"github.com/cwbudde/cminus-compiler/internal/codegen"
	"github.com/cwbudde/cminus-compiler/internal/lexer"
	"github.com/cwbudde/cminus-compiler/internal/parser"
)

func compile(src string) Session {
	lex := lexer.New(src)
	gen := codegen.New(codegen.DefaultConfig())
	p := parser.New(lex, gen)
	tree := p.Parse()
	return Session{Lex: lex, Tree: tree, Gen: gen}
}

func artifact(t *testing.T, arts []Artifact, name string) string {
	t.Helper()
	for _, a := range arts {
		if a.Name == name {
			return a.Content
		}
	}
	t.Fatalf("artifact %q not produced", name)
	return ""
}

func TestRenderCleanProgram(t *testing.T) {
	s := compile("int main(void) { }")
	arts := Render(s)

	if got := artifact(t, arts, "lexical_errors.txt"); got != "There is no lexical error.\n" {
		t.Errorf("lexical_errors.txt = %q", got)
	}
	if got := artifact(t, arts, "syntax_errors.txt"); got != "There is no syntax error.\n" {
		t.Errorf("syntax_errors.txt = %q", got)
	}
	if got := artifact(t, arts, "semantic_errors.txt"); got != "The input program is semantically correct.\n" {
		t.Errorf("semantic_errors.txt = %q", got)
	}
	if _, found := find(arts, "output.txt"); !found {
		t.Error("output.txt should be emitted for a semantically clean program")
	}
}

func TestRenderSuppressesOutputOnSemanticError(t *testing.T) {
	s := compile("void x; int main(void) { }")
	arts := Render(s)

	if _, found := find(arts, "output.txt"); found {
		t.Error("output.txt must be suppressed when a semantic error was recorded")
	}
	sem := artifact(t, arts, "semantic_errors.txt")
	if !strings.Contains(sem, "Illegal type of void for 'x'.") {
		t.Errorf("semantic_errors.txt missing expected message: %q", sem)
	}
}

func TestRenderTokensGroupsByLine(t *testing.T) {
	s := compile("int x;\nint y;\n")
	toks := artifact(t, Render(s), "tokens.txt")
	lines := strings.Split(strings.TrimRight(toks, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines of tokens, got %d: %q", len(lines), toks)
	}
	if !strings.HasPrefix(lines[0], "1.\t") || !strings.Contains(lines[0], "(KEYWORD, int)") {
		t.Errorf("line 1 malformed: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "2.\t") {
		t.Errorf("line 2 malformed: %q", lines[1])
	}
}

func TestSummaryJSON(t *testing.T) {
	s := compile("void x; int main(void) { }")
	out, err := Summary(s)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if gjson.Get(out, "clean").Bool() {
		t.Error("clean should be false when a semantic error was recorded")
	}
	msgs := gjson.Get(out, "semanticErrors.#.message").Array()
	if len(msgs) != 1 || !strings.Contains(msgs[0].String(), "void") {
		t.Errorf("semanticErrors = %s", gjson.Get(out, "semanticErrors").Raw)
	}
}

func find(arts []Artifact, name string) (Artifact, bool) {
	for _, a := range arts {
		if a.Name == name {
			return a, true
		}
	}
	return Artifact{}, false
}
