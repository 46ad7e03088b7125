package codegen

// StackEntry is the semantic stack's tagged variant: a slot holds
// either an operand Value or a pending Operation, never both. The
// reference stack mixes the two Python-style (anything goes); Go makes
// the mix explicit instead of relying on dynamic typing.
type StackEntry struct {
	isOp bool
	val  Value
	op   Operation
}

// ValueEntry wraps an operand for pushing onto the semantic stack.
func ValueEntry(v Value) StackEntry { return StackEntry{val: v} }

// OpEntry wraps a pending operator for pushing onto the semantic stack.
func OpEntry(op Operation) StackEntry { return StackEntry{isOp: true, op: op} }

// IsOperation reports whether the entry holds an Operation rather than
// a Value.
func (e StackEntry) IsOperation() bool { return e.isOp }

// Value returns the entry's operand. Calling it on an Operation entry
// is a programming error in the dispatcher, not a recoverable state.
func (e StackEntry) Value() Value { return e.val }

// Operation returns the entry's pending operator.
func (e StackEntry) Operation() Operation { return e.op }

// SemanticStack accumulates operands and pending operators while the
// parser walks an expression, mirroring the reference implementation's
// SemanticStack: push, pop, and peek-from-top-with-offset.
type SemanticStack struct {
	entries []StackEntry
}

// NewSemanticStack returns an empty semantic stack.
func NewSemanticStack() *SemanticStack { return &SemanticStack{} }

// Push appends an entry to the top of the stack.
func (s *SemanticStack) Push(e StackEntry) { s.entries = append(s.entries, e) }

// Pop removes and returns the top entry.
func (s *SemanticStack) Pop() StackEntry {
	top := s.entries[len(s.entries)-1]
	s.entries = s.entries[:len(s.entries)-1]
	return top
}

// FromTop returns the entry offset positions below the top without
// removing it. FromTop(0) is the top itself.
func (s *SemanticStack) FromTop(offset int) StackEntry {
	return s.entries[len(s.entries)-1-offset]
}

// Len reports how many entries are currently on the stack.
func (s *SemanticStack) Len() int { return len(s.entries) }
