package parser

import "github.com/cwbudde/cminus-compiler/internal/action"

// StepKind distinguishes the two real transition kinds a step can be;
// Epsilon transitions are represented at the Alt level instead (see
// Alt.IsEpsilon), since an automaton has at most one of them and it
// never carries further steps.
type StepKind int

const (
	StepTerminal StepKind = iota
	StepNonTerminal
)

// Step is one position within a chosen alternative: a single Terminal
// match or a single NonTerminal call, plus the action symbols fired
// once that step's token/child completes. Chaining Steps within an Alt
// models the "numbered states" §4.2 describes for a production that,
// once its first symbol is known, proceeds deterministically (the
// grammar is LL(1), so no alternative needs genuine backtracking past
// its own first symbol).
type Step struct {
	Kind    StepKind
	Term    TermSpec
	Sub     *Automaton
	Actions []action.Symbol
}

func term(spec TermSpec, actions ...action.Symbol) Step {
	return Step{Kind: StepTerminal, Term: spec, Actions: actions}
}

func nt(sub *Automaton, actions ...action.Symbol) Step {
	return Step{Kind: StepNonTerminal, Sub: sub, Actions: actions}
}

// Alt is one production alternative: a sequence of Steps selected by
// its first step's FIRST set, or the distinguished epsilon
// alternative, or a Default alternative taken when no other candidate
// matches (used for the handful of non-terminals — var_call_prime,
// B's fall-through to simple_expression_prime — whose final
// alternative has no FIRST set of its own because it fully delegates
// to a nullable child).
type Alt struct {
	Steps     []Step
	IsEpsilon bool
	Default   bool
}

func alt(steps ...Step) Alt { return Alt{Steps: steps} }
func eps() Alt              { return Alt{IsEpsilon: true} }
func def(steps ...Step) Alt { return Alt{Steps: steps, Default: true} }

// Automaton is one non-terminal's predictive automaton: its
// alternatives plus the FIRST and FOLLOW sets recovery needs. First is
// computed from the alternatives' leading terminals/non-terminals,
// hand-confirmed rather than structurally derived, since the source
// grammar embeds FIRST/FOLLOW as literal data rather than deriving it
// at load time.
type Automaton struct {
	Name   string
	Alts   []Alt
	First  TokenSet
	Follow TokenSet
}

func newAutomaton(name string) *Automaton { return &Automaton{Name: name} }
