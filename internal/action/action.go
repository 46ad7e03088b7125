// Package action enumerates the code generator's action symbols: the
// named side effects a grammar transition can fire. It exists as its
// own package, with no dependency on lexer/parser/codegen internals, so
// that grammar data (which references actions by symbol) and the
// generator (which dispatches on them) can each depend on it without
// creating an import cycle.
package action

// Symbol names an action routine. The zero value is never fired.
type Symbol string

const (
	InitRF      Symbol = "init_rf"
	ExecMain    Symbol = "exec_main"
	SetMainRA   Symbol = "set_main_ra"
	Output      Symbol = "output"
	Pid         Symbol = "pid"
	Pnum        Symbol = "pnum"
	Prv         Symbol = "prv"
	Parray      Symbol = "parray"
	Ptype       Symbol = "ptype"
	Pop         Symbol = "pop"
	Declare     Symbol = "declare"
	DeclareID   Symbol = "declare_id"
	DeclareArr  Symbol = "declare_array"
	ArrayType   Symbol = "array_type"
	CaptureArg  Symbol = "capture_param_type"
	DeclareFunc Symbol = "declare_function"
	CheckDeclTy Symbol = "check_declaration_type"
	Assign      Symbol = "assign"
	OpPush      Symbol = "op_push"
	OpExec      Symbol = "op_exec"
	Hold        Symbol = "hold"
	Label       Symbol = "label"
	Decide      Symbol = "decide"
	JpfRepeat   Symbol = "jpf_repeat"
	FuncCall    Symbol = "function_call"
	FuncReturn  Symbol = "function_return"
	ArgInit     Symbol = "arg_init"
	ArgFinish   Symbol = "arg_finish"
	ArgPass     Symbol = "arg_pass"
	FuncScope   Symbol = "function_scope"
	ContScope   Symbol = "container_scope"
	TempScope   Symbol = "temporary_scope"
	SimpleScope Symbol = "simple_scope"
	ScopeStart  Symbol = "scope_start"
	ScopeEnd    Symbol = "scope_end"
	Prison      Symbol = "prison"
	PrisonBreak Symbol = "prison_break"
	CheckInCont Symbol = "check_in_container"
)
