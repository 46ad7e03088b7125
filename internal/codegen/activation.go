package codegen

// RegisterFile names the four addresses (in the data segment) holding
// the stack pointer, frame pointer, return address and return value of
// the activation record in play, matching the reference ar.py layout.
type RegisterFile struct {
	SP, FP, RA, RV int
}

// ActivationStack emits the TAC sequences that implement the call
// protocol's stack discipline: pushing/popping words at the runtime
// stack pointer, and saving/restoring the register file around a call.
// It never allocates the data-segment cells the registers live in
// (MachineState does that); it only knows how to grow/shrink the
// runtime stack described by those cells.
type ActivationStack struct {
	pb     *ProgramBlock
	rf     RegisterFile
	wordSz int
}

// NewActivationStack ties a ProgramBlock to the register-file
// addresses and configured word size.
func NewActivationStack(pb *ProgramBlock, rf RegisterFile, wordSize int) *ActivationStack {
	return &ActivationStack{pb: pb, rf: rf, wordSz: wordSize}
}

// Push emits "store value at [sp]; sp += word size".
func (a *ActivationStack) Push(value Value) {
	a.pb.Append(Instruction{Op: Assign, Arg1: value, Arg2: Indirect(a.rf.SP)})
	a.pb.Append(Instruction{Op: Add, Arg1: Direct(a.rf.SP), Arg2: Immediate(a.wordSz), Arg3: Direct(a.rf.SP)})
}

// Pop emits "sp -= word size; store [sp] into dest".
func (a *ActivationStack) Pop(dest Value) {
	a.pb.Append(Instruction{Op: Sub, Arg1: Direct(a.rf.SP), Arg2: Immediate(a.wordSz), Arg3: Direct(a.rf.SP)})
	a.pb.Append(Instruction{Op: Assign, Arg1: Indirect(a.rf.SP), Arg2: dest})
}

// Reserve emits size consecutive pushes of the zero value, carving out
// zero-filled local storage on the runtime stack.
func (a *ActivationStack) Reserve(size int) {
	for i := 0; i < size; i++ {
		a.Push(Immediate(0))
	}
}

// SaveRegisterFile pushes sp, fp and ra (in that order) ahead of a
// call, so the callee can use them as scratch without corrupting the
// caller's frame.
func (a *ActivationStack) SaveRegisterFile() {
	a.Push(Direct(a.rf.SP))
	a.Push(Direct(a.rf.FP))
	a.Push(Direct(a.rf.RA))
}

// RestoreRegisterFile pops ra, fp and sp (reverse of SaveRegisterFile)
// once a call returns.
func (a *ActivationStack) RestoreRegisterFile() {
	a.Pop(Direct(a.rf.RA))
	a.Pop(Direct(a.rf.FP))
	a.Pop(Direct(a.rf.SP))
}

// PushFP saves fp alone, the lighter-weight discipline scope_start
// uses when opening a function's own frame (as opposed to the full
// triple SaveRegisterFile saves around a call).
func (a *ActivationStack) PushFP() { a.Push(Direct(a.rf.FP)) }

// PopFP is PushFP's counterpart, used by scope_end.
func (a *ActivationStack) PopFP() { a.Pop(Direct(a.rf.FP)) }
