package codegen

// MachineState holds every piece of mutable bookkeeping the action
// dispatcher threads between action firings: the two bump allocators
// that hand out fresh memory addresses (data and temporaries; the
// StackAddress field only records where the runtime stack starts), and
// a handful of transient
// fields actions use to pass information to the action fired right
// after them (the reference machine_state.py plays the same role).
type MachineState struct {
	DataAddress  int
	TempAddress  int
	StackAddress int

	// DataPointer/TempPointer hold the address most recently handed
	// out by GetVar/GetTemp, for an immediately following action that
	// needs to know where the value it just pushed landed.
	DataPointer int
	TempPointer int

	// ArgPointer stacks, per call currently being parsed, the semantic
	// stack depth at which that call's argument list began; arg_pass
	// records it on '(' and function_call reads it back on ')' to know
	// how many values to collect as arguments.
	ArgPointer []int

	LastID           string
	LastType         IdKind
	LastFunctionName string
	Declaring        bool
	// DeclaringArgs is true while a function's parameter list is being
	// parsed (arg_init/arg_finish bracket params in fun_declaration_prime).
	// declare_id reads it to tell a parameter, which must be popped off
	// the activation record, from a local or global, which gets an
	// emitted zero-initialization instead.
	DeclaringArgs   bool
	CurrentFunction *Id
	// SetExec is part of the reference state's field set; no action in
	// this package sets or reads it.
	SetExec bool

	wordSize int
}

// NewMachineState seeds the allocators from cfg and returns a fresh
// MachineState.
func NewMachineState(cfg Config) *MachineState {
	return &MachineState{
		DataAddress:  cfg.DataStart,
		TempAddress:  cfg.TempStart,
		StackAddress: cfg.StackStart,
		wordSize:     cfg.WordSize,
	}
}

// GetVar reserves size consecutive words in the data segment and
// returns the address of the first one.
func (m *MachineState) GetVar(size int) int {
	addr := m.DataAddress
	m.DataAddress += size * m.wordSize
	m.DataPointer = addr
	return addr
}

// GetTemp reserves one temporary word and returns its address.
func (m *MachineState) GetTemp() int {
	addr := m.TempAddress
	m.TempAddress += m.wordSize
	m.TempPointer = addr
	return addr
}
