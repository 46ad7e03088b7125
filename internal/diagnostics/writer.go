// Package diagnostics renders a finished compilation session into the
// seven artifact files a caller writes to its output directory: the
// token stream, the three error logs, the interned lexeme table, the
// parse tree, and the emitted program.
package diagnostics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cwbudde/cminus-compiler/internal/codegen"
	"github.com/cwbudde/cminus-compiler/internal/lexer"
	"github.com/cwbudde/cminus-compiler/internal/parser"
)

// Session bundles everything one compilation produced: the lexer that
// scanned the source (for its token history and lexical error list),
// the parse tree and syntax log, and the generator holding the symbol
// table, semantic log and emitted program.
type Session struct {
	Lex  *lexer.Lexer
	Tree *parser.Tree
	Gen  *codegen.Generator
}

// Artifact is one named output file's rendered content.
type Artifact struct {
	Name    string
	Content string
}

// fileNames lists every artifact in the fixed order a caller should
// write them, matching the reference compiler's own generation order.
var fileNames = []string{
	"tokens.txt",
	"lexical_errors.txt",
	"symbol_table.txt",
	"syntax_errors.txt",
	"semantic_errors.txt",
	"parse_tree.txt",
	"output.txt",
}

// Render produces every artifact for s. output.txt is omitted (not
// included in the returned slice) whenever the session recorded a
// semantic error, per the suppression rule in the error design.
func Render(s Session) []Artifact {
	artifacts := make([]Artifact, 0, len(fileNames))
	artifacts = append(artifacts,
		Artifact{Name: "tokens.txt", Content: renderTokens(s.Lex.History())},
		Artifact{Name: "lexical_errors.txt", Content: renderLexicalErrors(s.Lex.Errors())},
		Artifact{Name: "symbol_table.txt", Content: renderSymbolTable(s.Lex.Lexemes)},
		Artifact{Name: "syntax_errors.txt", Content: s.Tree.Log.Format()},
		Artifact{Name: "semantic_errors.txt", Content: s.Gen.Errors.Format()},
		Artifact{Name: "parse_tree.txt", Content: s.Tree.Root.Render()},
	)
	if !s.Gen.Suppressed() {
		artifacts = append(artifacts, Artifact{Name: "output.txt", Content: s.Gen.PB.Dump()})
	}
	return artifacts
}

// renderTokens groups the non-trivia token stream by source line:
// "<lineno>.\t(KIND, lexeme) …" with one line per source line that
// produced at least one token. EOF is never attributed to a line of
// its own; it is dropped from the listing since it has no counterpart
// in the source text.
func renderTokens(history []lexer.Token) string {
	byLine := map[int][]lexer.Token{}
	for _, tok := range history {
		if tok.Kind == lexer.EOF {
			continue
		}
		byLine[tok.Pos.Line] = append(byLine[tok.Pos.Line], tok)
	}
	return renderByLine(byLine, func(toks []lexer.Token) string {
		parts := make([]string, len(toks))
		for i, tok := range toks {
			parts[i] = tok.String()
		}
		return strings.Join(parts, " ")
	})
}

// renderLexicalErrors groups recorded lexical errors by line:
// "<lineno>.\t(lexeme, message) …", or the clean-source sentinel.
func renderLexicalErrors(errs []lexer.LexicalError) string {
	if len(errs) == 0 {
		return "There is no lexical error.\n"
	}
	byLine := map[int][]lexer.LexicalError{}
	for _, e := range errs {
		byLine[e.Line] = append(byLine[e.Line], e)
	}
	return renderByLine(byLine, func(es []lexer.LexicalError) string {
		parts := make([]string, len(es))
		for i, e := range es {
			parts[i] = fmt.Sprintf("(%s, %s)", e.Lexeme, e.Message)
		}
		return strings.Join(parts, " ")
	})
}

// renderByLine walks m's keys in ascending line order and formats each
// line's group with render, in the shared "<lineno>.\t<group>\n" shape
// tokens.txt and lexical_errors.txt both use.
func renderByLine[T any](m map[int][]T, render func([]T) string) string {
	lines := make([]int, 0, len(m))
	for line := range m {
		lines = append(lines, line)
	}
	sort.Ints(lines)

	var b strings.Builder
	for _, line := range lines {
		fmt.Fprintf(&b, "%d.\t%s\n", line, render(m[line]))
	}
	return b.String()
}

// renderSymbolTable lists every interned lexeme in insertion order:
// "<index>.\t<lexeme>".
func renderSymbolTable(t *lexer.LexemeTable) string {
	var b strings.Builder
	for _, e := range t.Entries() {
		fmt.Fprintf(&b, "%d.\t%s\n", e.Index, e.Lexeme)
	}
	return b.String()
}
