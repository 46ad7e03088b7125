package lexer

import (
	"strings"
)

// Lexer is a hand-rolled character DFA over C-minus source text.
//
// The legal alphabet is [A-Za-z0-9;:,\[\](){}+\-<=*/\s]; any other byte
// sends the DFA to the "Invalid input" error state. States are not
// reified as a table of transitions (the grammar automata in the parser
// package are); instead each recognizer method below plays the role of
// one DFA state, advancing the cursor exactly as a transition function
// would. This mirrors how the reference scanner's own character
// classifier is written: per-character dispatch rather than an
// interpreted table, the same shape the parser package's Automaton
// deliberately avoids because the grammar is far larger.
type Lexer struct {
	input        string
	errors       []LexicalError
	tokenBuffer  []Token
	position     int
	readPosition int
	line         int
	column       int
	ch           byte

	preserveTrivia bool

	Lexemes *LexemeTable
	history []Token
}

// LexerOption configures optional Lexer behavior.
type LexerOption func(*Lexer)

// WithPreserveTrivia makes NextToken/Peek return COMMENT and WHITESPACE
// tokens instead of silently skipping them. Used by tooling (e.g. a
// future formatter) that needs the original trivia; the parser always
// uses the default, which skips trivia transparently per the scanner
// contract.
func WithPreserveTrivia(preserve bool) LexerOption {
	return func(l *Lexer) { l.preserveTrivia = preserve }
}

// New creates a Lexer over the given source text.
func New(input string, opts ...LexerOption) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0, Lexemes: NewLexemeTable()}
	for _, opt := range opts {
		opt(l)
	}
	l.readChar()
	return l
}

// LexicalError is a recorded scanning failure; the scanner never raises
// these to the parser, it only accumulates them for lexical_errors.txt.
type LexicalError struct {
	Line    int
	Lexeme  string
	Message string
}

func (l *Lexer) addError(line int, lexeme, message string) {
	l.errors = append(l.errors, LexicalError{Line: line, Lexeme: lexeme, Message: message})
}

// Errors returns every lexical error recorded so far, in source order.
func (l *Lexer) Errors() []LexicalError { return l.errors }

// LexerState is an opaque snapshot used for backtracking lookahead.
type LexerState struct {
	tokenBuffer  []Token
	position     int
	readPosition int
	line         int
	column       int
	ch           byte
}

func (l *Lexer) SaveState() LexerState {
	buf := make([]Token, len(l.tokenBuffer))
	copy(buf, l.tokenBuffer)
	return LexerState{
		tokenBuffer:  buf,
		position:     l.position,
		readPosition: l.readPosition,
		line:         l.line,
		column:       l.column,
		ch:           l.ch,
	}
}

func (l *Lexer) RestoreState(s LexerState) {
	l.tokenBuffer = s.tokenBuffer
	l.position = s.position
	l.readPosition = s.readPosition
	l.line = s.line
	l.column = s.column
	l.ch = s.ch
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.position = l.readPosition
	} else {
		l.ch = l.input[l.readPosition]
		l.position = l.readPosition
		l.readPosition++
	}
	l.column++
}

func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

func (l *Lexer) currentPos() Position {
	return Position{Line: l.line, Column: l.column, Offset: l.position}
}

// Peek returns the token n positions ahead without consuming it.
// Peek(0) is equivalent to the next call to NextToken.
func (l *Lexer) Peek(n int) Token {
	for len(l.tokenBuffer) <= n {
		l.tokenBuffer = append(l.tokenBuffer, l.scanToken())
	}
	return l.tokenBuffer[n]
}

// NextToken returns and consumes the next non-trivia token, unless
// WithPreserveTrivia was set.
func (l *Lexer) NextToken() Token {
	var tok Token
	if len(l.tokenBuffer) > 0 {
		tok = l.tokenBuffer[0]
		l.tokenBuffer = l.tokenBuffer[1:]
	} else {
		tok = l.scanToken()
	}
	l.history = append(l.history, tok)
	return tok
}

// History returns every non-trivia token NextToken has returned so far,
// in source order, EOF included once reached. This backs tokens.txt,
// which needs the full stream the parser consumed rather than a second
// lookahead-only pass over the source.
func (l *Lexer) History() []Token { return l.history }

// scanToken extracts exactly one token, skipping trivia transparently
// unless preserveTrivia is set. The span of a lexical error (already
// recorded by extract) is always skipped, so no ILLEGAL token is
// returned.
func (l *Lexer) scanToken() Token {
	for {
		tok := l.extract()
		if tok.Kind == ILLEGAL || (tok.IsTrivia() && !l.preserveTrivia) {
			continue
		}
		return tok
	}
}

func isDigit(ch byte) bool  { return '0' <= ch && ch <= '9' }
func isLetter(ch byte) bool { return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') }

// legalSymbols holds every single-character symbol the alphabet admits
// on its own, excluding '=', '*' and '/' which need one character of
// lookahead to resolve ('==', comment delimiters, "unmatched comment").
const legalSymbols = ";:,[](){}+-<"

// extract recognizes exactly one token (trivia included) starting at
// the cursor, performing maximal munch and recording any lexical error
// encountered along the way.
func (l *Lexer) extract() Token {
	pos := l.currentPos()

	switch {
	case l.ch == 0:
		return NewToken(EOF, "", pos)

	case l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n':
		return l.extractWhitespace(pos)

	case isDigit(l.ch):
		return l.extractNumber(pos)

	case isLetter(l.ch):
		return l.extractIdentifier(pos)

	case l.ch == '=':
		return l.extractEquals(pos)

	case l.ch == '*':
		return l.extractStar(pos)

	case l.ch == '/':
		return l.extractSlash(pos)

	case strings.IndexByte(legalSymbols, l.ch) >= 0:
		lexeme := string(l.ch)
		l.readChar()
		return NewToken(SYMBOL, lexeme, pos)

	default:
		lexeme := string(l.ch)
		l.addError(pos.Line, lexeme, "Invalid input")
		l.readChar()
		return NewToken(ILLEGAL, lexeme, pos)
	}
}

func (l *Lexer) extractWhitespace(pos Position) Token {
	start := l.position
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n' {
		if l.ch == '\n' {
			l.line++
			l.column = 0
		}
		l.readChar()
	}
	return NewToken(WHITESPACE, l.input[start:l.position], pos)
}

// extractNumber reads a maximal digit run. If a letter directly follows
// with no separating trivia, the whole digit+letter run is an "Invalid
// number" lexical error; the scanner records it and resumes after the
// offending span rather than emitting a NUM token. A digit run followed
// by anything outside the alphabet (e.g. "12@") completes as a clean
// NUM token instead - the illegal character is a separate "Invalid
// input" error the next extract() call reports on its own.
func (l *Lexer) extractNumber(pos Position) Token {
	start := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	if isLetter(l.ch) {
		for isLetter(l.ch) || isDigit(l.ch) {
			l.readChar()
		}
		lexeme := l.input[start:l.position]
		l.addError(pos.Line, lexeme, "Invalid number")
		return NewToken(ILLEGAL, lexeme, pos)
	}
	return NewToken(NUM, l.input[start:l.position], pos)
}

func (l *Lexer) extractIdentifier(pos Position) Token {
	start := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	lexeme := l.input[start:l.position]
	l.Lexemes.Intern(lexeme)
	return NewToken(LookupIdent(lexeme), lexeme, pos)
}

// extractEquals resolves '=' vs '=='.
func (l *Lexer) extractEquals(pos Position) Token {
	l.readChar() // consume first '='
	if l.ch == '=' {
		l.readChar()
		return NewToken(SYMBOL, "==", pos)
	}
	return NewToken(SYMBOL, "=", pos)
}

// extractStar resolves '*' as MULT, or as the closing half of an
// "Unmatched comment" ('*/' with no preceding '/*').
func (l *Lexer) extractStar(pos Position) Token {
	l.readChar() // consume '*'
	if l.ch == '/' {
		l.readChar()
		l.addError(pos.Line, "*/", "Unmatched comment")
		return NewToken(ILLEGAL, "*/", pos)
	}
	return NewToken(SYMBOL, "*", pos)
}

// extractSlash resolves '/' as a bare SYMBOL, or as the opener of a
// block comment '/* ... */'. An EOF reached before the closer yields
// "Unclosed comment", with the reported lexeme truncated to a 7
// character prefix ending in "...".
func (l *Lexer) extractSlash(pos Position) Token {
	if l.peekChar() != '*' {
		l.readChar()
		return NewToken(SYMBOL, "/", pos)
	}

	start := l.position
	l.readChar() // consume '/'
	l.readChar() // consume '*'

	for {
		if l.ch == 0 {
			lexeme := l.input[start:l.position]
			l.addError(pos.Line, truncateComment(lexeme), "Unclosed comment")
			return NewToken(ILLEGAL, lexeme, pos)
		}
		if l.ch == '*' && l.peekChar() == '/' {
			l.readChar()
			l.readChar()
			return NewToken(COMMENT, l.input[start:l.position], pos)
		}
		if l.ch == '\n' {
			l.line++
			l.column = 0
		}
		l.readChar()
	}
}

// truncateComment implements the spec's 7-character-prefix-plus-"..."
// rule for unclosed comment diagnostics.
func truncateComment(lexeme string) string {
	if len(lexeme) <= 7 {
		return lexeme
	}
	return lexeme[:7] + "..."
}
