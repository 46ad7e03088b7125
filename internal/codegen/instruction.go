package codegen

import (
	"fmt"
	"strings"
)

// Instruction is one line of flat three-address code: an opcode and up
// to three operands. It always renders all three operand slots as
// "(OP, a1, a2, a3)"; a zero-valued (or EmptyValue) Arg leaves its slot
// blank, e.g. "(JP, 7, , )".
type Instruction struct {
	Op   Operation
	Arg1 Value
	Arg2 Value
	Arg3 Value
}

func (i Instruction) String() string {
	if i.Op == Empty {
		return ""
	}
	parts := []string{i.Op.String()}
	for _, a := range []Value{i.Arg1, i.Arg2, i.Arg3} {
		if a.IsEmpty() || a == (Value{}) {
			parts = append(parts, "")
			continue
		}
		parts = append(parts, a.String())
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// ProgramBlock is the generator's growable instruction buffer. Code
// generation routinely needs to patch an earlier slot once a jump
// target becomes known (the "forward patch" pattern used throughout
// the action catalogue), so the buffer supports direct indexed writes
// in addition to append.
type ProgramBlock struct {
	instructions []Instruction
}

// NewProgramBlock returns an empty instruction buffer.
func NewProgramBlock() *ProgramBlock { return &ProgramBlock{} }

// Len returns the current instruction count, i.e. the address the next
// Append call will occupy.
func (pb *ProgramBlock) Len() int { return len(pb.instructions) }

// Append adds an instruction and returns the address it was stored at.
func (pb *ProgramBlock) Append(inst Instruction) int {
	pb.instructions = append(pb.instructions, inst)
	return len(pb.instructions) - 1
}

// Reserve appends a single Empty placeholder and returns its address,
// for a slot that will be patched once its target is known.
func (pb *ProgramBlock) Reserve() int { return pb.Append(Instruction{Op: Empty}) }

// Set overwrites the instruction at addr, extending the buffer with
// Empty placeholders first if addr lies past the current end. This
// mirrors ProgramBlock.__setitem__ in the reference implementation,
// which tolerates patches that land beyond the previous length.
func (pb *ProgramBlock) Set(addr int, inst Instruction) {
	for len(pb.instructions) <= addr {
		pb.instructions = append(pb.instructions, Instruction{Op: Empty})
	}
	pb.instructions[addr] = inst
}

// Get returns the instruction at addr.
func (pb *ProgramBlock) Get(addr int) Instruction { return pb.instructions[addr] }

// Truncate resets the buffer to length n, discarding anything past it.
// No action in this package calls it.
func (pb *ProgramBlock) Truncate(n int) { pb.instructions = pb.instructions[:n] }

// Dump renders the whole buffer in the "<index>\t<instruction>" format
// that output.txt uses, one line per instruction including empty ones.
func (pb *ProgramBlock) Dump() string {
	var b strings.Builder
	for i, inst := range pb.instructions {
		fmt.Fprintf(&b, "%d\t%s\n", i, inst)
	}
	return b.String()
}
