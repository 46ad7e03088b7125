package parser

import "github.com/cwbudde/cminus-compiler/internal/lexer"

// cursor is a read-only view over the lexer's token stream. The
// grammar automata never need to backtrack past the lookahead token —
// panic-mode recovery only ever discards tokens going forward — so
// this drops the reference parser's immutable Mark/ResetTo machinery
// down to the one operation the driver actually performs: peek the
// current lookahead, and advance past it.
type cursor struct {
	lex *lexer.Lexer
	cur lexer.Token
}

func newCursor(lex *lexer.Lexer) *cursor {
	c := &cursor{lex: lex}
	c.cur = lex.NextToken()
	return c
}

// peek returns the current lookahead token without consuming it.
func (c *cursor) peek() lexer.Token { return c.cur }

// advance consumes the current lookahead and returns it.
func (c *cursor) advance() lexer.Token {
	tok := c.cur
	c.cur = c.lex.NextToken()
	return tok
}

func (c *cursor) atEOF() bool { return c.cur.Kind == lexer.EOF }
