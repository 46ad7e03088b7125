package codegen

import (
	"fmt"
	"strings"
)

// SemanticError is one recorded semantic diagnostic, in the literal
// message forms the action catalogue is required to produce.
type SemanticError struct {
	Line    int
	Message string
}

// SemanticLog accumulates semantic errors in source order. Unlike the
// lexer's error list, it also gates output.txt emission: any entry at
// all means the generated program must not be written out.
type SemanticLog struct {
	entries []SemanticError
}

// NewSemanticLog returns an empty log.
func NewSemanticLog() *SemanticLog { return &SemanticLog{} }

func (l *SemanticLog) add(line int, message string) {
	l.entries = append(l.entries, SemanticError{Line: line, Message: message})
}

// HasErrors reports whether any semantic error was recorded.
func (l *SemanticLog) HasErrors() bool { return len(l.entries) > 0 }

// Entries returns every recorded error in source order.
func (l *SemanticLog) Entries() []SemanticError { return l.entries }

// Format renders semantic_errors.txt: one "#line : Semantic Error!
// message" line per entry, or the clean-program sentinel.
func (l *SemanticLog) Format() string {
	if len(l.entries) == 0 {
		return "The input program is semantically correct.\n"
	}
	var b strings.Builder
	for _, e := range l.entries {
		fmt.Fprintf(&b, "#%d : Semantic Error! %s\n", e.Line, e.Message)
	}
	return b.String()
}

// The following constructors produce the literal message templates
// §6 requires, so a call site never hand-builds the wording.

func undefinedIdentifier(name string) string { return fmt.Sprintf("'%s' is not defined.", name) }

func illegalVoidType(name string) string { return fmt.Sprintf("Illegal type of void for '%s'.", name) }

func typeMismatchOperands() string { return "Type mismatch in operands, Got void instead of int." }

func argCountMismatch(name string) string {
	return fmt.Sprintf("Mismatch in numbers of arguments of '%s'.", name)
}

func argTypeMismatch(name string, i int, expected, actual IdKind) string {
	return fmt.Sprintf("Mismatch in type of argument %d of '%s'. Expected '%s' but got '%s' instead.",
		i, name, expected, actual)
}

func breakOutsideContainer() string { return "No 'repeat ... until' found for 'break'." }

func undefinedMain() string { return undefinedIdentifier("main") }
