package parser

import "github.com/cwbudde/cminus-compiler/internal/lexer"

// TermSpec names one concrete terminal a grammar transition can match:
// an exact lexeme (for keywords and symbols) or any token of a given
// kind (for ID and NUM, where the lexeme varies per occurrence).
type TermSpec struct {
	Kind   lexer.Kind
	Lexeme string
}

// Matches reports whether tok satisfies this terminal spec.
func (s TermSpec) Matches(tok lexer.Token) bool {
	if s.Lexeme != "" {
		return tok.Lexeme == s.Lexeme
	}
	return tok.Kind == s.Kind
}

// String renders the spec the way a "missing"/"illegal" diagnostic
// names it: the literal lexeme for fixed terminals, the token kind
// name otherwise.
func (s TermSpec) String() string {
	if s.Lexeme != "" {
		return s.Lexeme
	}
	return s.Kind.String()
}

func kw(lexeme string) TermSpec  { return TermSpec{Kind: lexer.KEYWORD, Lexeme: lexeme} }
func sym(lexeme string) TermSpec { return TermSpec{Kind: lexer.SYMBOL, Lexeme: lexeme} }
func idTok() TermSpec            { return TermSpec{Kind: lexer.IDENT} }
func numTok() TermSpec           { return TermSpec{Kind: lexer.NUM} }
func eofTok() TermSpec           { return TermSpec{Kind: lexer.EOF} }

// TokenSet is a FIRST or FOLLOW set: an explicit, hand-authored list
// of the terminals it admits, the literal-data encoding §4.2 calls
// for rather than one generically derived by walking the automaton
// graph.
type TokenSet struct {
	specs []TermSpec
}

// Set builds a TokenSet from the given specs.
func Set(specs ...TermSpec) TokenSet { return TokenSet{specs: specs} }

// Contains reports whether tok is admitted by the set.
func (s TokenSet) Contains(tok lexer.Token) bool {
	for _, spec := range s.specs {
		if spec.Matches(tok) {
			return true
		}
	}
	return false
}

// Union returns the set admitting anything either set admits.
func (s TokenSet) Union(other TokenSet) TokenSet {
	return TokenSet{specs: append(append([]TermSpec{}, s.specs...), other.specs...)}
}
