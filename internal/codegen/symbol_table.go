package codegen

// Id is one symbol-table entry: a declared name together with the
// address it was assigned and the type information code generation
// needs to validate later uses of it (array subscripting, function
// calls with the wrong arity, and so on).
type Id struct {
	Lexeme     string
	Address    Value
	HasAddress bool
	Type       IdKind
	ArgsType   []IdKind
	ReturnType IdKind
}

// Scope is a single nested lexical scope: a flat list of Id entries
// plus a link to the enclosing scope for lookup fallthrough, exactly
// the shape of the reference Scope class.
type Scope struct {
	parent  *Scope
	symbols []*Id
}

// NewScope creates a scope nested inside parent (nil for the outermost
// scope).
func NewScope(parent *Scope) *Scope { return &Scope{parent: parent} }

// Append adds id to this scope without checking for shadowing; callers
// that need "already declared" semantics do that check themselves via
// Lookup first.
func (s *Scope) Append(id *Id) { s.symbols = append(s.symbols, id) }

// Lookup searches this scope, then walks parent links outward,
// returning the first entry whose lexeme matches.
func (s *Scope) Lookup(lexeme string) *Id {
	for scope := s; scope != nil; scope = scope.parent {
		for _, id := range scope.symbols {
			if id.Lexeme == lexeme {
				return id
			}
		}
	}
	return nil
}

// LookupByInstNo returns the function entry whose address instruction
// number matches addr, searching this scope and its ancestors. Used by
// function_call to resolve the callee from the entry address pid pushed.
func (s *Scope) LookupByInstNo(addr int) *Id {
	for scope := s; scope != nil; scope = scope.parent {
		for _, id := range scope.symbols {
			if id.Type == FunctionType && id.HasAddress && id.Address.N == addr {
				return id
			}
		}
	}
	return nil
}

// LookupByAddress returns the non-function entry stored at addr,
// searching this scope and its ancestors.
func (s *Scope) LookupByAddress(addr int) *Id {
	for scope := s; scope != nil; scope = scope.parent {
		for _, id := range scope.symbols {
			if id.Type != FunctionType && id.HasAddress && id.Address.N == addr {
				return id
			}
		}
	}
	return nil
}

// SymbolTable owns the current scope chain. Scopes are created and
// destroyed in strict LIFO order as the parser enters and leaves
// compound statements and function bodies.
type SymbolTable struct {
	current *Scope
}

// NewSymbolTable returns a table with a single outermost scope.
func NewSymbolTable() *SymbolTable { return &SymbolTable{current: NewScope(nil)} }

// CreateScope pushes a fresh scope nested inside the current one.
func (t *SymbolTable) CreateScope() { t.current = NewScope(t.current) }

// DeleteScope pops the current scope, exposing its parent. Deleting
// the outermost scope is a programming error; it never happens because
// program always opens exactly as many scopes as it closes.
func (t *SymbolTable) DeleteScope() { t.current = t.current.parent }

// AddSymbol declares id in the current scope.
func (t *SymbolTable) AddSymbol(id *Id) { t.current.Append(id) }

// Lookup resolves lexeme against the current scope chain.
func (t *SymbolTable) Lookup(lexeme string) *Id { return t.current.Lookup(lexeme) }

// LookupByInstNo resolves a function by its entry-point instruction.
func (t *SymbolTable) LookupByInstNo(addr int) *Id { return t.current.LookupByInstNo(addr) }

// LookupByAddress resolves a non-function symbol by its storage
// address.
func (t *SymbolTable) LookupByAddress(addr int) *Id { return t.current.LookupByAddress(addr) }

// CurrentScope exposes the active scope. (symbol_table.txt is rendered
// from the lexer's lexeme table, not from this scope chain.)
func (t *SymbolTable) CurrentScope() *Scope { return t.current }
