package codegen

import "testing"

func TestLookupWalksOuterScopes(t *testing.T) {
	tbl := NewSymbolTable()
	tbl.AddSymbol(&Id{Lexeme: "x", Address: Direct(0), HasAddress: true, Type: IntType})
	tbl.CreateScope()
	if tbl.Lookup("x") == nil {
		t.Fatal("inner scope should see the outer declaration of x")
	}
	tbl.AddSymbol(&Id{Lexeme: "x", Address: Direct(4), HasAddress: true, Type: IntType})
	if got := tbl.Lookup("x"); got.Address.N != 4 {
		t.Fatalf("inner x should shadow outer, got address %d", got.Address.N)
	}
	tbl.DeleteScope()
	if got := tbl.Lookup("x"); got.Address.N != 0 {
		t.Fatalf("after leaving inner scope, x should resolve to the outer one, got %d", got.Address.N)
	}
}

func TestLookupByInstNoFindsFunctionNotVariable(t *testing.T) {
	tbl := NewSymbolTable()
	tbl.AddSymbol(&Id{Lexeme: "x", Address: Direct(8), HasAddress: true, Type: IntType})
	tbl.AddSymbol(&Id{Lexeme: "f", Address: Direct(8), HasAddress: true, Type: FunctionType})

	if got := tbl.LookupByInstNo(8); got == nil || got.Lexeme != "f" {
		t.Fatalf("LookupByInstNo(8) = %v, want the function symbol", got)
	}
	if got := tbl.LookupByAddress(8); got == nil || got.Lexeme != "x" {
		t.Fatalf("LookupByAddress(8) = %v, want the variable symbol", got)
	}
}

func TestDeletedScopeIsNotSearched(t *testing.T) {
	tbl := NewSymbolTable()
	tbl.CreateScope()
	tbl.AddSymbol(&Id{Lexeme: "y", Address: Direct(0), HasAddress: true, Type: IntType})
	tbl.DeleteScope()
	if tbl.Lookup("y") != nil {
		t.Fatal("y was declared in a scope that has since closed")
	}
}
