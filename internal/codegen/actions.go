package codegen

import (
	"strconv"

	"github.com/cwbudde/cminus-compiler/internal/action"
)

// Fire dispatches a single action symbol. tok is the lookahead token
// in play when the owning transition was taken; actions that don't
// need one still receive it, so every diagnostic can report a line
// number without the dispatcher threading a separate "current line"
// value alongside every call.
//
// This is the "single exhaustive match" the reference decorator
// registry is replaced with: every action.Symbol the parser can name
// has exactly one case here, and an unhandled symbol fails loudly at
// run time (the panic below) rather than as a silently-ignored lookup
// miss.
func (g *Generator) Fire(sym action.Symbol, tok token) {
	switch sym {
	case action.InitRF:
		// already discharged in New/emitPrologue.
	case action.ExecMain:
		g.Finalize(tok.Pos.Line)
	case action.SetMainRA:
		// already discharged in New/emitPrologue.
	case action.Output:
		g.actionOutput()
	case action.Pid:
		g.actionPid(tok)
	case action.Pnum:
		g.actionPnum(tok)
	case action.Prv:
		g.actionPrv()
	case action.Parray:
		g.actionParray()
	case action.Ptype:
		g.actionPtype(tok)
	case action.Pop:
		g.Stack.Pop()
	case action.Declare:
		g.State.Declaring = true
		g.State.LastID = tok.Lexeme
	case action.DeclareID:
		g.actionDeclareID()
	case action.DeclareArr:
		g.actionDeclareArray()
	case action.ArrayType:
		g.actionArrayType()
	case action.CaptureArg:
		g.actionCaptureParamType()
	case action.DeclareFunc:
		g.actionDeclareFunction()
	case action.CheckDeclTy:
		g.actionCheckDeclarationType(tok)
	case action.Assign:
		g.actionAssign()
	case action.OpPush:
		g.actionOpPush(tok)
	case action.OpExec:
		g.actionOpExec(tok)
	case action.Hold:
		g.actionHold()
	case action.Label:
		g.actionLabel()
	case action.Decide:
		g.actionDecide()
	case action.JpfRepeat:
		g.actionJpfRepeat()
	case action.FuncCall:
		g.actionFunctionCall(tok)
	case action.FuncReturn:
		g.actionFunctionReturn()
	case action.ArgInit:
		g.State.DeclaringArgs = true
	case action.ArgFinish:
		g.State.DeclaringArgs = false
	case action.ArgPass:
		g.State.ArgPointer = append(g.State.ArgPointer, g.Stack.Len())
	case action.FuncScope:
		g.Scopes.PushType(FunctionScope)
	case action.ContScope:
		g.Scopes.PushType(ContainerScope)
	case action.TempScope:
		g.Scopes.PushType(TemporaryScope)
	case action.SimpleScope:
		g.Scopes.PushType(SimpleScope)
	case action.ScopeStart:
		g.actionScopeStart()
	case action.ScopeEnd:
		g.actionScopeEnd()
	case action.Prison:
		g.Scopes.Prison(g.PB, g.pendingPrisonKind)
	case action.PrisonBreak:
		g.Scopes.PrisonBreakTop(g.PB, g.pendingPrisonKind)
	case action.CheckInCont:
		g.actionCheckInContainer(tok)
	default:
		panic("codegen: unhandled action symbol " + string(sym))
	}
}

// SetPrisonTarget tells the next prison/prison_break firing which
// scope kind's jail to operate on. The grammar never calls it: hold
// sets the target to the Temporary kind (the if/else jump-over) and
// check_in_container sets it to the Container kind (break), since the
// same two action symbols serve both forward-patch sites.
func (g *Generator) SetPrisonTarget(k ScopeKind) { g.pendingPrisonKind = k }

// actionOutput compiles the built-in output(int) body: the argument
// arrives on the activation stack exactly like any function parameter,
// so it is popped straight into rv rather than read off the semantic
// stack.
func (g *Generator) actionOutput() {
	g.AR.Pop(Direct(g.RF.RV))
	g.PB.Append(Instruction{Op: Print, Arg1: Direct(g.RF.RV)})
	g.PB.Append(Instruction{Op: Jp, Arg1: Indirect(g.RF.RA)})
}

func (g *Generator) actionPid(tok token) {
	g.State.LastID = tok.Lexeme
	if g.State.Declaring {
		return
	}
	id := g.Symbols.Lookup(tok.Lexeme)
	if id == nil {
		g.Errors.add(tok.Pos.Line, undefinedIdentifier(tok.Lexeme))
		g.Stack.Push(ValueEntry(Immediate(-1).WithType(NotSpecified)))
		g.State.LastType = NotSpecified
		return
	}
	g.Stack.Push(ValueEntry(id.Address.WithType(id.Type)))
	g.State.LastType = id.Type
}

func (g *Generator) actionPnum(tok token) {
	n, _ := strconv.Atoi(tok.Lexeme)
	g.Stack.Push(ValueEntry(Immediate(n)))
}

func (g *Generator) actionPrv() {
	g.Stack.Push(ValueEntry(Direct(g.RF.RV).WithType(IntType)))
}

func (g *Generator) actionParray() {
	offset := g.Stack.Pop().Value()
	base := g.Stack.Pop().Value()
	t := g.State.GetTemp()
	g.PB.Append(Instruction{Op: Mult, Arg1: Immediate(g.cfg.WordSize), Arg2: offset, Arg3: Direct(t)})
	g.PB.Append(Instruction{Op: Add, Arg1: base, Arg2: Direct(t), Arg3: Direct(t)})
	g.Stack.Push(ValueEntry(Indirect(t).WithType(IntType)))
}

func (g *Generator) actionPtype(tok token) {
	if tok.Lexeme == "int" {
		g.State.LastType = IntType
	} else {
		g.State.LastType = VoidType
	}
}

func (g *Generator) actionDeclareID() {
	addr := g.State.GetVar(1)
	id := &Id{Lexeme: g.State.LastID, Address: Direct(addr), HasAddress: true, Type: g.State.LastType}
	g.Symbols.AddSymbol(id)
	if g.State.DeclaringArgs {
		g.AR.Pop(Direct(addr))
	} else {
		g.PB.Append(Instruction{Op: Assign, Arg1: Immediate(0), Arg2: Direct(addr)})
	}
	g.Stack.Push(ValueEntry(Direct(addr).WithType(g.State.LastType)))
	g.State.Declaring = false
}

func (g *Generator) actionDeclareArray() {
	size := g.Stack.Pop().Value().N
	g.Stack.Pop() // the scalar placeholder declare_id pushed
	id := g.Symbols.Lookup(g.State.LastID)
	if id != nil {
		id.Type = ArrayType
	}
	if size > 1 {
		base := g.State.GetVar(size - 1)
		for i := 0; i < size-1; i++ {
			addr := base + i*g.cfg.WordSize
			g.PB.Append(Instruction{Op: Assign, Arg1: Immediate(0), Arg2: Direct(addr)})
		}
	}
}

// actionArrayType marks the parameter just declared as an array. It
// runs, via param_prime's own internal step, before the param's
// capture_param_type fires (capture_param_type is a post-action of the
// step that calls param_prime), so by the time the argument type list
// gets its entry appended the symbol already carries the right kind.
func (g *Generator) actionArrayType() {
	if id := g.Symbols.Lookup(g.State.LastID); id != nil {
		id.Type = ArrayType
	}
}

func (g *Generator) actionCaptureParamType() {
	if g.State.CurrentFunction == nil {
		return
	}
	t := g.State.LastType
	if id := g.Symbols.Lookup(g.State.LastID); id != nil {
		t = id.Type
	}
	g.State.CurrentFunction.ArgsType = append(g.State.CurrentFunction.ArgsType, t)
}

func (g *Generator) actionDeclareFunction() {
	addr := g.PB.Len()
	id := &Id{Lexeme: g.State.LastID, Address: Direct(addr), HasAddress: true, Type: FunctionType, ReturnType: g.State.LastType}
	g.Symbols.AddSymbol(id)
	g.State.CurrentFunction = id
	g.State.LastFunctionName = id.Lexeme
	g.State.Declaring = false
}

func (g *Generator) actionCheckDeclarationType(tok token) {
	if g.State.LastType != IntType && g.State.LastType != ArrayType {
		g.Errors.add(tok.Pos.Line, illegalVoidType(g.State.LastID))
	}
}

func (g *Generator) actionAssign() {
	rhs := g.Stack.Pop().Value()
	top := g.Stack.FromTop(0).Value()
	g.PB.Append(Instruction{Op: Assign, Arg1: rhs, Arg2: top})
}

func (g *Generator) actionOpPush(tok token) {
	if op, ok := LookupOperator(tok.Lexeme); ok {
		g.Stack.Push(OpEntry(op))
	}
}

func (g *Generator) actionOpExec(tok token) {
	rhs := g.Stack.Pop().Value()
	opEntry := g.Stack.Pop()
	lhs := g.Stack.Pop().Value()
	if lhs.Type == VoidType || rhs.Type == VoidType {
		g.Errors.add(tok.Pos.Line, typeMismatchOperands())
	}
	t := g.State.GetTemp()
	g.PB.Append(Instruction{Op: opEntry.Operation(), Arg1: lhs, Arg2: rhs, Arg3: Direct(t)})
	g.Stack.Push(ValueEntry(Direct(t).WithType(IntType)))
}

func (g *Generator) actionHold() {
	addr := g.PB.Reserve()
	g.Stack.Push(ValueEntry(Direct(addr)))
	g.pendingPrisonKind = TemporaryScope
}

func (g *Generator) actionLabel() {
	g.Stack.Push(ValueEntry(Direct(g.PB.Len())))
}

func (g *Generator) actionDecide() {
	reserved := g.Stack.Pop().Value()
	cond := g.Stack.Pop().Value()
	g.PB.Set(reserved.N, Instruction{Op: Jpf, Arg1: cond, Arg2: Direct(g.PB.Len())})
}

func (g *Generator) actionJpfRepeat() {
	cond := g.Stack.Pop().Value()
	label := g.Stack.Pop().Value()
	g.PB.Append(Instruction{Op: Jpf, Arg1: cond, Arg2: label})
}

func (g *Generator) actionScopeStart() {
	g.Symbols.CreateScope()
	g.Scopes.CreateScope(g.State.DataAddress, g.State.TempAddress)
	if g.Scopes.CurrentKind() == FunctionScope {
		g.AR.PushFP()
	}
}

func (g *Generator) actionScopeEnd() {
	wasFunction := g.Scopes.CurrentKind() == FunctionScope
	dataAddr, tempAddr := g.Scopes.DeleteScope(g.PB)
	g.Symbols.DeleteScope()
	g.State.DataAddress = dataAddr
	g.State.TempAddress = tempAddr
	if wasFunction {
		g.AR.PopFP()
	}
}

// actionFunctionReturn implements both return forms with one action:
// a bare "return;" (or the implicit epilogue every function body
// closes with) finds the semantic stack already clean, while "return
// expr;" leaves expr's value sitting on top deliberately so this can
// route it into rv before jumping home.
func (g *Generator) actionFunctionReturn() {
	if g.Stack.Len() > 0 {
		v := g.Stack.Pop().Value()
		g.PB.Append(Instruction{Op: Assign, Arg1: v, Arg2: Direct(g.RF.RV)})
	}
	g.PB.Append(Instruction{Op: Jp, Arg1: Indirect(g.RF.RA)})
}

func (g *Generator) actionCheckInContainer(tok token) {
	if !g.Scopes.AreWeInside(ContainerScope) {
		g.Errors.add(tok.Pos.Line, breakOutsideContainer())
	}
	g.pendingPrisonKind = ContainerScope
}

// actionFunctionCall implements the seven-step protocol in §4.4.
func (g *Generator) actionFunctionCall(tok token) {
	callee := g.Symbols.Lookup(g.State.LastID)

	savedData, savedTemp := g.Scopes.CurrentFunctionSnapshot()
	for a := savedData; a < g.State.DataAddress; a += g.cfg.WordSize {
		g.AR.Push(Direct(a))
	}
	for a := savedTemp; a < g.State.TempAddress; a += g.cfg.WordSize {
		g.AR.Push(Direct(a))
	}
	g.AR.SaveRegisterFile()

	depth := 0
	if n := len(g.State.ArgPointer); n > 0 {
		depth = g.State.ArgPointer[n-1]
		g.State.ArgPointer = g.State.ArgPointer[:n-1]
	}
	var args []Value
	for g.Stack.Len() > depth {
		args = append(args, g.Stack.Pop().Value())
	}
	for i, j := 0, len(args)-1; i < j; i, j = i+1, j-1 {
		args[i], args[j] = args[j], args[i]
	}
	for _, v := range args {
		g.AR.Push(v)
	}
	// pid pushed the callee's own address just before '(', so it sits
	// directly under the arguments. Its address is the callee's entry
	// instruction, which LookupByInstNo resolves back to the function
	// symbol (for ArgsType and ReturnType, which a bare stack Value
	// doesn't carry). An undefined callee was pushed as #-1 and resolves
	// to nil.
	callee = g.Symbols.LookupByInstNo(g.Stack.Pop().Value().N)

	if callee != nil {
		if len(args) != len(callee.ArgsType) {
			g.Errors.add(tok.Pos.Line, argCountMismatch(callee.Lexeme))
		} else {
			for i, v := range args {
				exp := callee.ArgsType[i]
				if v.Type != NotSpecified && exp != v.Type {
					g.Errors.add(tok.Pos.Line, argTypeMismatch(callee.Lexeme, i+1, exp, v.Type))
				}
			}
		}
	} else {
		g.Errors.add(tok.Pos.Line, undefinedIdentifier(g.State.LastID))
	}

	g.PB.Append(Instruction{Op: Assign, Arg1: Immediate(g.PB.Len() + 2), Arg2: Direct(g.RF.RA)})

	target := Direct(0)
	retType := NotSpecified
	if callee != nil {
		target = callee.Address
		retType = callee.ReturnType
	}
	g.PB.Append(Instruction{Op: Jp, Arg1: target})

	g.AR.RestoreRegisterFile()
	for a := g.State.TempAddress - g.cfg.WordSize; a >= savedTemp; a -= g.cfg.WordSize {
		g.AR.Pop(Direct(a))
	}
	for a := g.State.DataAddress - g.cfg.WordSize; a >= savedData; a -= g.cfg.WordSize {
		g.AR.Pop(Direct(a))
	}

	t := g.State.GetTemp()
	g.PB.Append(Instruction{Op: Assign, Arg1: Direct(g.RF.RV), Arg2: Direct(t)})
	g.Stack.Push(ValueEntry(Direct(t).WithType(retType)))
}
