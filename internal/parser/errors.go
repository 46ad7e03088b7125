package parser

import (
	"fmt"
	"strings"
)

// SyntaxError is one recorded panic-mode recovery event, in source
// order.
type SyntaxError struct {
	Line    int
	Message string
}

// SyntaxLog accumulates syntax errors in source order.
type SyntaxLog struct {
	entries []SyntaxError
}

func newSyntaxLog() *SyntaxLog { return &SyntaxLog{} }

func (l *SyntaxLog) add(line int, message string) {
	l.entries = append(l.entries, SyntaxError{Line: line, Message: message})
}

// HasErrors reports whether any syntax error was recorded.
func (l *SyntaxLog) HasErrors() bool { return len(l.entries) > 0 }

// Entries returns every recorded error in source order.
func (l *SyntaxLog) Entries() []SyntaxError { return l.entries }

// Format renders syntax_errors.txt.
func (l *SyntaxLog) Format() string {
	if len(l.entries) == 0 {
		return "There is no syntax error.\n"
	}
	var b strings.Builder
	for _, e := range l.entries {
		fmt.Fprintf(&b, "#%d : syntax error, %s\n", e.Line, e.Message)
	}
	return b.String()
}

// unexpectedEOF signals that panic-mode recovery discarded tokens all
// the way to EOF; Parse recovers it at the top level, since the
// grammar's only sanctioned way to consume EOF is through program's
// own FOLLOW set.
type unexpectedEOF struct{}

func (unexpectedEOF) Error() string { return "Unexpected EOF" }
