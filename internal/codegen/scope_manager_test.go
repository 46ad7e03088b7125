package codegen

import "testing"

func TestPrisonPatchedOnScopeEnd(t *testing.T) {
	pb := NewProgramBlock()
	m := NewScopeManager()

	m.PushType(ContainerScope)
	m.CreateScope(0, 0)
	m.Prison(pb, ContainerScope) // e.g. a "break" inside this repeat/until
	pb.Append(Instruction{Op: Add})
	m.DeleteScope(pb)

	exit := pb.Len()
	jailed := pb.Get(0)
	if jailed.Op != Jp || jailed.Arg1 != Direct(exit) {
		t.Fatalf("jailed slot = %v, want JP to %d", jailed, exit)
	}
}

func TestPrisonBreakTopPatchesImmediately(t *testing.T) {
	pb := NewProgramBlock()
	m := NewScopeManager()

	m.PushType(TemporaryScope)
	m.CreateScope(0, 0)
	m.Prison(pb, TemporaryScope) // the "jump over else" reserved at 'else'
	pb.Append(Instruction{Op: Add})
	m.PrisonBreakTop(pb, TemporaryScope)

	landing := pb.Len()
	if got := pb.Get(0); got.Op != Jp || got.Arg1 != Direct(landing) {
		t.Fatalf("patched slot = %v, want JP to %d", got, landing)
	}
	// The jail entry was consumed immediately; closing the scope must
	// not try to patch it again.
	m.DeleteScope(pb)
}

func TestNestedBreakTargetsEnclosingContainer(t *testing.T) {
	pb := NewProgramBlock()
	m := NewScopeManager()

	m.PushType(ContainerScope)
	m.CreateScope(0, 0)
	m.PushType(SimpleScope) // an "if" body nested inside the repeat
	m.CreateScope(0, 0)

	m.Prison(pb, ContainerScope) // break still jails on the Container layer
	m.DeleteScope(pb)            // closes the inner if-body's SimpleScope

	if !m.AreWeInside(ContainerScope) {
		t.Fatal("still expected to be inside the repeat/until body")
	}

	pb.Append(Instruction{Op: Add})
	m.DeleteScope(pb) // closes the ContainerScope, patching the break

	exit := pb.Len()
	if got := pb.Get(0); got.Op != Jp || got.Arg1 != Direct(exit) {
		t.Fatalf("break should target the repeat's exit (%d), got %v", exit, got)
	}
}

func TestDataTempPointersRestoredOnScopeEnd(t *testing.T) {
	pb := NewProgramBlock()
	m := NewScopeManager()

	m.PushType(SimpleScope)
	m.CreateScope(100, 200)
	dataAddr, tempAddr := m.DeleteScope(pb)
	if dataAddr != 100 || tempAddr != 200 {
		t.Fatalf("DeleteScope returned (%d, %d), want (100, 200)", dataAddr, tempAddr)
	}
}
