package parser

import "github.com/cwbudde/cminus-compiler/internal/action"

// The automata below are declared as package-level vars so mutually
// recursive non-terminals (expression/B/H/G/D/C, declaration_list,
// statement/compound_stmt/statement_list) can reference each other by
// pointer; buildGrammar fills in each Automaton's Alts/First/Follow
// once, at package init, since Go has no forward-reference literal for
// a struct that contains itself transitively.
var (
	programAuto              = newAutomaton("program")
	declarationListAuto       = newAutomaton("declaration_list")
	declarationAuto           = newAutomaton("declaration")
	declarationInitialAuto    = newAutomaton("declaration_initial")
	declarationPrimeAuto      = newAutomaton("declaration_prime")
	varDeclarationPrimeAuto   = newAutomaton("var_declaration_prime")
	funDeclarationPrimeAuto   = newAutomaton("fun_declaration_prime")
	typeSpecifierAuto         = newAutomaton("type_specifier")
	paramsAuto                = newAutomaton("params")
	paramListAuto             = newAutomaton("param_list")
	paramAuto                 = newAutomaton("param")
	paramPrimeAuto            = newAutomaton("param_prime")
	compoundStmtAuto          = newAutomaton("compound_stmt")
	statementListAuto         = newAutomaton("statement_list")
	statementAuto             = newAutomaton("statement")
	expressionStmtAuto        = newAutomaton("expression_stmt")
	selectionStmtAuto         = newAutomaton("selection_stmt")
	elseStmtAuto              = newAutomaton("else_stmt")
	iterationStmtAuto         = newAutomaton("iteration_stmt")
	returnStmtAuto            = newAutomaton("return_stmt")
	returnStmtPrimeAuto       = newAutomaton("return_stmt_prime")
	expressionAuto            = newAutomaton("expression")
	bAuto                     = newAutomaton("B")
	hAuto                     = newAutomaton("H")
	gAuto                     = newAutomaton("G")
	dAuto                     = newAutomaton("D")
	cAuto                     = newAutomaton("C")
	relopAuto                 = newAutomaton("relop")
	additiveExpressionAuto    = newAutomaton("additive_expression")
	additiveExpressionPrimeAuto = newAutomaton("additive_expression_prime")
	additiveExpressionZegondAuto = newAutomaton("additive_expression_zegond")
	addopAuto                 = newAutomaton("addop")
	termAuto                  = newAutomaton("term")
	termPrimeAuto              = newAutomaton("term_prime")
	termZegondAuto             = newAutomaton("term_zegond")
	factorAuto                 = newAutomaton("factor")
	factorPrimeAuto             = newAutomaton("factor_prime")
	factorZegondAuto            = newAutomaton("factor_zegond")
	varCallPrimeAuto            = newAutomaton("var_call_prime")
	varPrimeAuto                = newAutomaton("var_prime")
	argsAuto                    = newAutomaton("args")
	argListAuto                 = newAutomaton("arg_list")
	argListPrimeAuto            = newAutomaton("arg_list_prime")
	simpleExpressionZegondAuto  = newAutomaton("simple_expression_zegond")
	simpleExpressionPrimeAuto   = newAutomaton("simple_expression_prime")
)

var grammarBuilt = buildGrammar()

// buildGrammar wires every non-terminal's alternatives and FIRST/FOLLOW
// sets. It runs once, via the grammarBuilt package var, before any
// Parser is constructed.
func buildGrammar() bool {
	firstTypeSpecifier := Set(kw("int"), kw("void"))
	firstDeclarationInitial := firstTypeSpecifier
	firstStatement := Set(
		sym("{"), kw("if"), kw("repeat"), kw("return"), kw("break"),
		sym(";"), sym("+"), sym("-"), sym("("), idTok(), numTok(),
	)
	firstFactor := Set(sym("("), idTok(), numTok())
	firstExpression := firstFactor.Union(Set(sym("+"), sym("-")))

	programAuto.Alts = []Alt{
		alt(nt(declarationListAuto)),
	}
	programAuto.First = firstDeclarationInitial
	programAuto.Follow = Set(eofTok())

	declarationListAuto.Alts = []Alt{
		alt(nt(declarationAuto), nt(declarationListAuto)),
		eps(),
	}
	declarationListAuto.First = firstDeclarationInitial
	declarationListAuto.Follow = Set(eofTok(), sym("}")).Union(firstStatement)

	declarationAuto.Alts = []Alt{
		alt(nt(declarationInitialAuto), nt(declarationPrimeAuto)),
	}
	declarationAuto.First = firstDeclarationInitial
	declarationAuto.Follow = declarationListAuto.Follow

	declarationInitialAuto.Alts = []Alt{
		alt(
			nt(typeSpecifierAuto, action.Ptype),
			term(idTok(), action.Declare),
		),
	}
	declarationInitialAuto.First = firstTypeSpecifier
	declarationInitialAuto.Follow = Set(sym(";"), sym("["), sym("("), sym(")"), sym(","))

	declarationPrimeAuto.Alts = []Alt{
		alt(nt(funDeclarationPrimeAuto)),
		def(nt(varDeclarationPrimeAuto)),
	}
	declarationPrimeAuto.First = Set(sym("("))
	declarationPrimeAuto.Follow = declarationAuto.Follow

	varDeclarationPrimeAuto.Alts = []Alt{
		alt(term(sym(";"), action.DeclareID, action.CheckDeclTy, action.Pop)),
		alt(
			term(sym("["), action.DeclareID),
			term(numTok(), action.Pnum, action.DeclareArr),
			term(sym("]"), action.CheckDeclTy),
			term(sym(";")),
		),
	}
	varDeclarationPrimeAuto.First = Set(sym(";"), sym("["))
	varDeclarationPrimeAuto.Follow = declarationAuto.Follow

	funDeclarationPrimeAuto.Alts = []Alt{
		alt(
			term(sym("("), action.DeclareFunc, action.FuncScope, action.ScopeStart, action.ArgInit),
			nt(paramsAuto),
			term(sym(")"), action.ArgFinish),
			nt(compoundStmtAuto, action.FuncReturn, action.ScopeEnd),
		),
	}
	funDeclarationPrimeAuto.First = Set(sym("("))
	funDeclarationPrimeAuto.Follow = declarationAuto.Follow

	typeSpecifierAuto.Alts = []Alt{
		alt(term(kw("int"))),
		alt(term(kw("void"))),
	}
	typeSpecifierAuto.First = firstTypeSpecifier
	typeSpecifierAuto.Follow = Set(idTok())

	paramsAuto.Alts = []Alt{
		alt(
			term(kw("int"), action.Ptype),
			term(idTok(), action.Declare, action.DeclareID),
			nt(paramPrimeAuto, action.CaptureArg, action.Pop),
			nt(paramListAuto),
		),
		alt(term(kw("void"), action.Ptype)),
	}
	paramsAuto.First = firstTypeSpecifier
	paramsAuto.Follow = Set(sym(")"))

	paramListAuto.Alts = []Alt{
		alt(term(sym(",")), nt(paramAuto), nt(paramListAuto)),
		eps(),
	}
	paramListAuto.First = Set(sym(","))
	paramListAuto.Follow = Set(sym(")"))

	paramAuto.Alts = []Alt{
		alt(nt(declarationInitialAuto, action.DeclareID), nt(paramPrimeAuto, action.CaptureArg, action.Pop)),
	}
	paramAuto.First = firstDeclarationInitial
	paramAuto.Follow = Set(sym(","), sym(")"))

	paramPrimeAuto.Alts = []Alt{
		alt(term(sym("[")), term(sym("]"), action.ArrayType)),
		eps(),
	}
	paramPrimeAuto.First = Set(sym("["))
	paramPrimeAuto.Follow = paramAuto.Follow

	compoundStmtAuto.Alts = []Alt{
		alt(
			term(sym("{"), action.SimpleScope, action.ScopeStart),
			nt(declarationListAuto),
			nt(statementListAuto),
			term(sym("}"), action.ScopeEnd),
		),
	}
	compoundStmtAuto.First = Set(sym("{"))
	compoundStmtAuto.Follow = Set(eofTok(), sym("}"), kw("else"), kw("endif"), kw("until")).Union(firstStatement)

	statementListAuto.Alts = []Alt{
		alt(nt(statementAuto), nt(statementListAuto)),
		eps(),
	}
	statementListAuto.First = firstStatement
	statementListAuto.Follow = Set(sym("}"), kw("until"))

	statementAuto.Alts = []Alt{
		alt(nt(expressionStmtAuto)),
		alt(nt(compoundStmtAuto)),
		alt(nt(selectionStmtAuto)),
		alt(nt(iterationStmtAuto)),
		alt(nt(returnStmtAuto)),
	}
	statementAuto.First = firstStatement
	statementAuto.Follow = statementListAuto.Follow.Union(firstStatement)

	expressionStmtAuto.Alts = []Alt{
		alt(nt(expressionAuto), term(sym(";"), action.Pop)),
		alt(term(kw("break"), action.CheckInCont, action.Prison), term(sym(";"))),
		alt(term(sym(";"))),
	}
	expressionStmtAuto.First = firstExpression.Union(Set(kw("break"), sym(";")))
	expressionStmtAuto.Follow = statementAuto.Follow

	selectionStmtAuto.Alts = []Alt{
		alt(
			term(kw("if")),
			term(sym("(")),
			nt(expressionAuto),
			term(sym(")"), action.Hold, action.TempScope, action.ScopeStart),
			nt(statementAuto, action.Decide),
			nt(elseStmtAuto, action.ScopeEnd),
		),
	}
	selectionStmtAuto.First = Set(kw("if"))
	selectionStmtAuto.Follow = statementAuto.Follow

	elseStmtAuto.Alts = []Alt{
		alt(term(kw("endif"))),
		alt(
			term(kw("else"), action.Prison),
			nt(statementAuto, action.PrisonBreak),
			term(kw("endif")),
		),
	}
	elseStmtAuto.First = Set(kw("endif"), kw("else"))
	elseStmtAuto.Follow = statementAuto.Follow

	iterationStmtAuto.Alts = []Alt{
		alt(
			term(kw("repeat"), action.ContScope, action.ScopeStart, action.Label),
			nt(statementListAuto),
			term(kw("until")),
			term(sym("(")),
			nt(expressionAuto),
			term(sym(")"), action.JpfRepeat, action.ScopeEnd),
		),
	}
	iterationStmtAuto.First = Set(kw("repeat"))
	iterationStmtAuto.Follow = statementAuto.Follow

	returnStmtAuto.Alts = []Alt{
		alt(term(kw("return")), nt(returnStmtPrimeAuto)),
	}
	returnStmtAuto.First = Set(kw("return"))
	returnStmtAuto.Follow = statementAuto.Follow

	returnStmtPrimeAuto.Alts = []Alt{
		alt(term(sym(";"), action.FuncReturn)),
		def(nt(expressionAuto), term(sym(";"), action.FuncReturn)),
	}
	returnStmtPrimeAuto.First = Set(sym(";")).Union(firstExpression)
	returnStmtPrimeAuto.Follow = returnStmtAuto.Follow

	expressionAuto.Alts = []Alt{
		alt(term(idTok(), action.Pid), nt(bAuto)),
		def(nt(simpleExpressionZegondAuto)),
	}
	expressionAuto.First = firstExpression
	expressionAuto.Follow = Set(sym(";"), sym(")"), sym("]"), sym(","))

	bAuto.Alts = []Alt{
		alt(term(sym("=")), nt(expressionAuto, action.Assign)),
		alt(term(sym("[")), nt(expressionAuto, action.Parray), term(sym("]")), nt(hAuto)),
		alt(term(sym("("), action.ArgPass), nt(argsAuto), term(sym(")"), action.FuncCall), nt(simpleExpressionPrimeAuto)),
		def(nt(simpleExpressionPrimeAuto)),
	}
	bAuto.First = Set(sym("="), sym("["), sym("(")).Union(Set(sym("*"), sym("+"), sym("-"), sym("<"), sym("==")))
	bAuto.Follow = expressionAuto.Follow

	hAuto.Alts = []Alt{
		alt(term(sym("=")), nt(expressionAuto, action.Assign)),
		def(nt(gAuto), nt(dAuto), nt(cAuto)),
	}
	hAuto.First = Set(sym("=")).Union(Set(sym("*"), sym("+"), sym("-"), sym("<"), sym("==")))
	hAuto.Follow = expressionAuto.Follow

	gAuto.Alts = []Alt{
		eps(),
	}
	gAuto.First = TokenSet{}
	// G only ever reduces to epsilon, so its
	// Follow must admit whatever D or C can start with as well as
	// whatever legitimately follows H, or the epsilon selection would
	// spuriously fail for a token G never actually needs to consume.
	gAuto.Follow = Set(sym("*"), sym("+"), sym("-"), sym("<"), sym("==")).Union(hAuto.Follow)

	dAuto.Alts = []Alt{
		def(nt(additiveExpressionPrimeAuto)),
	}
	dAuto.First = Set(sym("*"), sym("+"), sym("-"))
	dAuto.Follow = hAuto.Follow

	cAuto.Alts = []Alt{
		alt(nt(relopAuto), nt(additiveExpressionAuto, action.OpExec)),
		eps(),
	}
	cAuto.First = Set(sym("<"), sym("=="))
	cAuto.Follow = expressionAuto.Follow

	relopAuto.Alts = []Alt{
		alt(term(sym("<"), action.OpPush)),
		alt(term(sym("=="), action.OpPush)),
	}
	relopAuto.First = Set(sym("<"), sym("=="))
	relopAuto.Follow = firstExpression

	additiveExpressionAuto.Alts = []Alt{
		alt(nt(termAuto), nt(additiveExpressionPrimeAuto)),
	}
	additiveExpressionAuto.First = firstFactor
	additiveExpressionAuto.Follow = cAuto.Follow

	additiveExpressionPrimeAuto.Alts = []Alt{
		alt(nt(addopAuto), nt(termAuto, action.OpExec), nt(additiveExpressionPrimeAuto)),
		eps(),
	}
	additiveExpressionPrimeAuto.First = Set(sym("+"), sym("-"))
	additiveExpressionPrimeAuto.Follow = Set(sym("<"), sym("==")).Union(additiveExpressionAuto.Follow)

	additiveExpressionZegondAuto.Alts = []Alt{
		alt(nt(termZegondAuto), nt(additiveExpressionPrimeAuto)),
	}
	additiveExpressionZegondAuto.First = Set(sym("+"), sym("-"), sym("("), numTok())
	additiveExpressionZegondAuto.Follow = additiveExpressionAuto.Follow

	addopAuto.Alts = []Alt{
		alt(term(sym("+"), action.OpPush)),
		alt(term(sym("-"), action.OpPush)),
	}
	addopAuto.First = Set(sym("+"), sym("-"))
	addopAuto.Follow = firstFactor

	termAuto.Alts = []Alt{
		alt(nt(factorAuto), nt(termPrimeAuto)),
	}
	termAuto.First = firstFactor
	termAuto.Follow = additiveExpressionPrimeAuto.Follow

	termPrimeAuto.Alts = []Alt{
		alt(term(sym("*"), action.OpPush), nt(factorAuto, action.OpExec), nt(termPrimeAuto)),
		eps(),
	}
	termPrimeAuto.First = Set(sym("*"))
	termPrimeAuto.Follow = Set(sym("+"), sym("-")).Union(termAuto.Follow)

	termZegondAuto.Alts = []Alt{
		alt(nt(factorZegondAuto), nt(termPrimeAuto)),
	}
	termZegondAuto.First = Set(sym("("), numTok())
	termZegondAuto.Follow = termAuto.Follow

	factorAuto.Alts = []Alt{
		alt(term(sym("(")), nt(expressionAuto), term(sym(")"))),
		alt(term(idTok(), action.Pid), nt(varCallPrimeAuto)),
		alt(term(numTok(), action.Pnum)),
	}
	factorAuto.First = firstFactor
	factorAuto.Follow = Set(sym("*"), sym("+"), sym("-")).Union(termAuto.Follow)

	factorPrimeAuto.Alts = []Alt{
		alt(term(sym("(")), nt(argsAuto), term(sym(")"))),
		eps(),
	}
	factorPrimeAuto.First = Set(sym("("))
	factorPrimeAuto.Follow = factorAuto.Follow

	factorZegondAuto.Alts = []Alt{
		alt(term(sym("(")), nt(expressionAuto), term(sym(")"))),
		alt(term(numTok(), action.Pnum)),
	}
	factorZegondAuto.First = Set(sym("("), numTok())
	factorZegondAuto.Follow = factorAuto.Follow

	varCallPrimeAuto.Alts = []Alt{
		alt(
			term(sym("("), action.ArgPass),
			nt(argsAuto),
			term(sym(")"), action.FuncCall),
		),
		def(nt(varPrimeAuto)),
	}
	varCallPrimeAuto.First = Set(sym("("))
	varCallPrimeAuto.Follow = factorAuto.Follow

	varPrimeAuto.Alts = []Alt{
		alt(term(sym("[")), nt(expressionAuto, action.Parray), term(sym("]"))),
		eps(),
	}
	varPrimeAuto.First = Set(sym("["))
	varPrimeAuto.Follow = varCallPrimeAuto.Follow

	argsAuto.Alts = []Alt{
		alt(nt(argListAuto)),
		eps(),
	}
	argsAuto.First = firstExpression
	argsAuto.Follow = Set(sym(")"))

	argListAuto.Alts = []Alt{
		alt(nt(expressionAuto), nt(argListPrimeAuto)),
	}
	argListAuto.First = firstExpression
	argListAuto.Follow = argsAuto.Follow

	argListPrimeAuto.Alts = []Alt{
		alt(term(sym(",")), nt(expressionAuto), nt(argListPrimeAuto)),
		eps(),
	}
	argListPrimeAuto.First = Set(sym(","))
	argListPrimeAuto.Follow = argsAuto.Follow

	simpleExpressionZegondAuto.Alts = []Alt{
		alt(nt(additiveExpressionZegondAuto), nt(cAuto)),
	}
	simpleExpressionZegondAuto.First = additiveExpressionZegondAuto.First
	simpleExpressionZegondAuto.Follow = expressionAuto.Follow

	simpleExpressionPrimeAuto.Alts = []Alt{
		def(nt(additiveExpressionPrimeAuto), nt(cAuto)),
	}
	simpleExpressionPrimeAuto.First = additiveExpressionPrimeAuto.First
	simpleExpressionPrimeAuto.Follow = bAuto.Follow

	return true
}
