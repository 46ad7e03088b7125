package lexer

import "testing"

func TestLexemeTableSeededWithKeywords(t *testing.T) {
	table := NewLexemeTable()
	entries := table.Entries()
	if len(entries) != len(Keywords) {
		t.Fatalf("got %d entries, want %d", len(entries), len(Keywords))
	}
	for i, kw := range Keywords {
		if entries[i].Lexeme != kw || entries[i].Index != i+1 {
			t.Errorf("entry %d = %+v, want (%d, %s)", i, entries[i], i+1, kw)
		}
	}
}

func TestLexemeTableInsertionOrder(t *testing.T) {
	table := NewLexemeTable()
	firstIdx := table.Intern("foo")
	secondIdx := table.Intern("bar")
	repeatIdx := table.Intern("foo")

	if repeatIdx != firstIdx {
		t.Errorf("re-interning foo got %d, want %d", repeatIdx, firstIdx)
	}
	if secondIdx != firstIdx+1 {
		t.Errorf("bar index = %d, want %d", secondIdx, firstIdx+1)
	}
}

func TestLexerPopulatesLexemeTable(t *testing.T) {
	l := New("int main void main")
	for {
		if l.NextToken().Kind == EOF {
			break
		}
	}
	entries := l.Lexemes.Entries()
	// "int" and "void" are keywords, already seeded; "main" is new.
	lastLexeme := entries[len(entries)-1].Lexeme
	if lastLexeme != "main" {
		t.Errorf("last interned lexeme = %q, want %q", lastLexeme, "main")
	}
}
