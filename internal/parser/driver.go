package parser

import (
	"fmt"

	"github.com/cwbudde/cminus-compiler/internal/action"
	"github.com/cwbudde/cminus-compiler/internal/codegen"
	"github.com/cwbudde/cminus-compiler/internal/lexer"
)

// Parser drives the grammar automata over a token stream, firing
// actions on a Generator as it goes and recording a parse tree and a
// syntax-error log alongside whatever semantic errors the generator
// accumulates.
type Parser struct {
	cur  *cursor
	gen  *codegen.Generator
	log  *SyntaxLog
	last lexer.Token
}

// New builds a Parser over lex, driving gen with the actions each
// grammar transition fires.
func New(lex *lexer.Lexer, gen *codegen.Generator) *Parser {
	_ = grammarBuilt // force grammar construction before first use
	return &Parser{cur: newCursor(lex), gen: gen, log: newSyntaxLog()}
}

// Tree is the result of a parse: the root parse-tree node and the
// syntax-error log recorded along the way. Unexpected EOF still
// returns whatever partial tree panic-mode recovery had built.
type Tree struct {
	Root *Node
	Log  *SyntaxLog
}

// Parse drives program from the token stream to completion, firing
// exec_main at the end so the generator can resolve (or report missing)
// main. Recovery from Unexpected EOF preserves the partial tree built
// up to that point.
func (p *Parser) Parse() *Tree {
	var root *Node
	func() {
		defer func() {
			if r := recover(); r != nil {
				if _, ok := r.(unexpectedEOF); !ok {
					panic(r)
				}
			}
		}()
		root = p.parse(programAuto)
	}()
	p.gen.Finalize(p.last.Pos.Line)
	return &Tree{Root: root, Log: p.log}
}

// consume advances the cursor, recording the consumed token as the
// current "line in play" for actions and diagnostics that need one.
func (p *Parser) consume() lexer.Token {
	tok := p.cur.advance()
	p.last = tok
	return tok
}

// selectAlt picks the alternative whose lead symbol admits tok,
// falling back to a Default alternative, then to an epsilon
// alternative if tok is in a's FOLLOW set.
func selectAlt(a *Automaton, tok lexer.Token) (Alt, bool) {
	var defaultAlt *Alt
	var epsAlt *Alt
	for i := range a.Alts {
		alt := &a.Alts[i]
		switch {
		case alt.IsEpsilon:
			epsAlt = alt
		case alt.Default:
			defaultAlt = alt
		case leadAdmits(alt.Steps[0], tok):
			return *alt, true
		}
	}
	if defaultAlt != nil {
		return *defaultAlt, true
	}
	if epsAlt != nil && a.Follow.Contains(tok) {
		return *epsAlt, true
	}
	return Alt{}, false
}

func leadAdmits(step Step, tok lexer.Token) bool {
	if step.Kind == StepTerminal {
		return step.Term.Matches(tok)
	}
	return step.Sub.First.Contains(tok)
}

// parse implements §4.2's selection-and-recovery algorithm for one
// non-terminal: pick a matching alternative, or recover from missing
// non-terminal / illegal token if none matches.
func (p *Parser) parse(a *Automaton) *Node {
	tok := p.cur.peek()
	alt, ok := selectAlt(a, tok)
	for !ok {
		if tok.Kind == lexer.EOF {
			panic(unexpectedEOF{})
		}
		if a.Follow.Contains(tok) {
			p.log.add(tok.Pos.Line, "missing "+a.Name)
			return leafEpsilon()
		}
		p.log.add(tok.Pos.Line, "illegal "+termLabel(tok))
		p.consume()
		tok = p.cur.peek()
		alt, ok = selectAlt(a, tok)
	}

	node := newInterior(a.Name)
	if alt.IsEpsilon {
		node.addChild(leafEpsilon())
		return node
	}
	for _, step := range alt.Steps {
		p.runStep(node, a, step)
	}
	return node
}

// runStep executes one chosen Step: matching (and recovering around) a
// terminal, or descending into a non-terminal's own automaton.
func (p *Parser) runStep(node *Node, owner *Automaton, step Step) {
	if step.Kind == StepNonTerminal {
		child := p.parse(step.Sub)
		node.addChild(child)
		p.fire(step.Actions)
		return
	}

	tok := p.cur.peek()
	for !step.Term.Matches(tok) {
		if tok.Kind == lexer.EOF {
			panic(unexpectedEOF{})
		}
		if owner.Follow.Contains(tok) {
			p.log.add(tok.Pos.Line, "missing "+step.Term.String())
			node.addChild(leafEpsilon())
			return
		}
		p.log.add(tok.Pos.Line, "illegal "+termLabel(tok))
		p.consume()
		tok = p.cur.peek()
	}
	consumed := p.consume()
	node.addChild(leafToken(consumed))
	p.fire(step.Actions)
}

func (p *Parser) fire(actions []action.Symbol) {
	for _, sym := range actions {
		p.gen.Fire(sym, p.last)
	}
}

// termLabel renders the token the way an "illegal"/"missing" diagnostic
// names it: the literal lexeme for ordinary tokens, "$" for EOF.
func termLabel(tok lexer.Token) string {
	if tok.Kind == lexer.EOF {
		return "$"
	}
	return fmt.Sprintf("%v", tok.Lexeme)
}
