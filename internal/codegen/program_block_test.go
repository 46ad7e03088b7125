package codegen

import "testing"

func TestProgramBlockReserveAndSet(t *testing.T) {
	pb := NewProgramBlock()
	pb.Append(Instruction{Op: Assign, Arg1: Immediate(1), Arg2: Direct(0)})
	slot := pb.Reserve()
	pb.Append(Instruction{Op: Print, Arg1: Direct(0)})

	if pb.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", pb.Len())
	}
	if pb.Get(slot).Op != Empty {
		t.Fatalf("reserved slot should start Empty, got %v", pb.Get(slot))
	}

	pb.Set(slot, Instruction{Op: Jp, Arg1: Direct(pb.Len())})
	if pb.Get(slot).Op != Jp {
		t.Fatalf("Set did not patch the reserved slot")
	}
}

func TestProgramBlockSetExtendsWithEmpty(t *testing.T) {
	pb := NewProgramBlock()
	pb.Set(2, Instruction{Op: Print, Arg1: Direct(5)})
	if pb.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", pb.Len())
	}
	if pb.Get(0).Op != Empty || pb.Get(1).Op != Empty {
		t.Fatal("Set should pad skipped indices with Empty")
	}
}

func TestInstructionStringOmitsUnusedArgs(t *testing.T) {
	inst := Instruction{Op: Assign, Arg1: Immediate(2), Arg2: Direct(0)}
	if got, want := inst.String(), "(ASSIGN, #2, 0, )"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestEmptyInstructionStringIsBlank(t *testing.T) {
	if got := (Instruction{Op: Empty}).String(); got != "" {
		t.Errorf("Empty instruction should render blank, got %q", got)
	}
}
