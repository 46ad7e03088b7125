package diagnostics

import (
	"github.com/tidwall/sjson"

	"github.com/cwbudde/cminus-compiler/internal/codegen"
	"github.com/cwbudde/cminus-compiler/internal/lexer"
	"github.com/cwbudde/cminus-compiler/internal/parser"
)

// Summary is a compact JSON rendering of a session's error counts and
// messages, meant for tooling that wants a quick health check without
// parsing the three plain-text error logs. It is additive: callers still
// get the exact-format files Render produces, and may also ask for
// this alongside them.
func Summary(s Session) (string, error) {
	json := "{}"
	var err error

	json, err = sjson.Set(json, "lexicalErrors", lexicalMessages(s.Lex.Errors()))
	if err != nil {
		return "", err
	}
	json, err = sjson.Set(json, "syntaxErrors", syntaxMessages(s.Tree.Log.Entries()))
	if err != nil {
		return "", err
	}
	json, err = sjson.Set(json, "semanticErrors", semanticMessages(s.Gen.Errors.Entries()))
	if err != nil {
		return "", err
	}
	json, err = sjson.Set(json, "clean", !s.Tree.Log.HasErrors() && !s.Gen.Suppressed() && len(s.Lex.Errors()) == 0)
	if err != nil {
		return "", err
	}
	return json, nil
}

func lexicalMessages(errs []lexer.LexicalError) []map[string]any {
	out := make([]map[string]any, len(errs))
	for i, e := range errs {
		out[i] = map[string]any{"line": e.Line, "lexeme": e.Lexeme, "message": e.Message}
	}
	return out
}

func syntaxMessages(errs []parser.SyntaxError) []map[string]any {
	out := make([]map[string]any, len(errs))
	for i, e := range errs {
		out[i] = map[string]any{"line": e.Line, "message": e.Message}
	}
	return out
}

func semanticMessages(errs []codegen.SemanticError) []map[string]any {
	out := make([]map[string]any, len(errs))
	for i, e := range errs {
		out[i] = map[string]any{"line": e.Line, "message": e.Message}
	}
	return out
}
