// Package codegen implements the syntax-directed translator: the
// symbol table, semantic stack, activation-record model, scope
// manager, and the action-symbol dispatcher the parser drives.
package codegen

import "github.com/cwbudde/cminus-compiler/internal/lexer"

// Generator owns every piece of mutable state an action routine may
// touch. The parser holds one per compilation and fires actions on it
// as grammar transitions are taken; nothing here is package-level or
// global, so two Generators never interfere (the reference
// implementation's module-level singletons become this one struct,
// passed explicitly, per the scope-manager and symbol-table designs
// above).
type Generator struct {
	PB      *ProgramBlock
	Stack   *SemanticStack
	Symbols *SymbolTable
	Scopes  *ScopeManager
	State   *MachineState
	Errors  *SemanticLog
	RF      RegisterFile
	AR      *ActivationStack

	cfg Config

	mainSlot          int
	pendingPrisonKind ScopeKind
}

// New builds a Generator with its prologue already emitted: the
// register-file addresses are reserved first (so they never collide
// with user data), then init_rf's three ASSIGN instructions plus the
// reserved jump-to-main slot, then ra is pointed past that slot so
// main's "JP @ra" epilogue has somewhere to land.
func New(cfg Config) *Generator {
	pb := NewProgramBlock()
	state := NewMachineState(cfg)

	rf := RegisterFile{
		SP: state.GetVar(1),
		FP: state.GetVar(1),
		RA: state.GetVar(1),
		RV: state.GetVar(1),
	}

	g := &Generator{
		PB:      pb,
		Stack:   NewSemanticStack(),
		Symbols: NewSymbolTable(),
		Scopes:  NewScopeManager(),
		State:   state,
		Errors:  NewSemanticLog(),
		RF:      rf,
		cfg:     cfg,
	}
	g.AR = NewActivationStack(pb, rf, cfg.WordSize)
	g.emitPrologue()
	return g
}

func (g *Generator) emitPrologue() {
	g.PB.Append(Instruction{Op: Assign, Arg1: Immediate(g.cfg.StackStart), Arg2: Direct(g.RF.SP)})
	g.PB.Append(Instruction{Op: Assign, Arg1: Immediate(g.cfg.StackStart), Arg2: Direct(g.RF.FP)})
	g.mainSlot = g.PB.Reserve()
	g.PB.Append(Instruction{Op: Assign, Arg1: Immediate(g.PB.Len() + 1), Arg2: Direct(g.RF.RA)})
	g.PB.Append(Instruction{Op: Assign, Arg1: Immediate(0), Arg2: Direct(g.RF.RV)})
	g.declareOutput()
}

// declareOutput compiles the built-in output(int) procedure inline,
// right after the prologue, and registers it as an ordinary function
// symbol. A call to it then runs the same seven-step protocol as any
// user function; only its body is special, not how it's invoked.
func (g *Generator) declareOutput() {
	addr := g.PB.Len()
	g.Symbols.AddSymbol(&Id{
		Lexeme:     "output",
		Address:    Direct(addr),
		HasAddress: true,
		Type:       FunctionType,
		ArgsType:   []IdKind{IntType},
		ReturnType: VoidType,
	})
	g.actionOutput()
}

// Finalize is fired once at the very end of the program non-terminal,
// patching the reserved jump-to-main slot now that 'main' is (or is
// not) resolvable. It implements exec_main; set_main_ra was already
// discharged statically in emitPrologue since it never depended on
// main's address, only on the prologue's own layout.
func (g *Generator) Finalize(line int) {
	main := g.Symbols.Lookup("main")
	if main == nil || main.Type != FunctionType {
		g.Errors.add(line, undefinedMain())
		g.PB.Set(g.mainSlot, Instruction{Op: Jp, Arg1: Direct(g.PB.Len())})
		return
	}
	g.PB.Set(g.mainSlot, Instruction{Op: Jp, Arg1: main.Address})
}

// Suppressed reports whether output.txt emission must be suppressed,
// i.e. whether any semantic error was recorded.
func (g *Generator) Suppressed() bool { return g.Errors.HasErrors() }

// token is the minimal slice of lexer.Token an action needs: its
// lexeme and line. Kept as a type alias boundary so this package
// doesn't otherwise depend on lexer internals.
type token = lexer.Token
