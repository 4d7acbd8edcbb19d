package i18n

// enMessages contains English translations
var enMessages = map[string]string{
	// Parser errors
	ErrExpectedToken: "line %d:%d: expected %s, got %s",
	ErrSyntax:        "line %d:%d: at '%s': %s",
	ErrSyntaxAtEnd:   "line %d: at end: %s",

	MsgExpectedExpression:   "expected expression",
	MsgInvalidAssignTarget:  "invalid assignment target",
	MsgExpectedFunctionName: "expected function name after 'func'",
	MsgExpectedVariableName: "expected variable name after 'let'",

	// Runtime errors
	ErrUndefinedVariable:  "undefined variable '%s'",
	ErrUnsupportedLiteral: "literal %s cannot be evaluated as a number",
	ErrUnknownOperator:    "unknown operator '%s'",

	// Command messages
	MsgUsage:      "Usage: rcv <command> [arguments]",
	MsgCommands:   "Commands:",
	MsgCmdRun:     "  run <file.rcv>      parse and execute an rcv source file",
	MsgCmdCheck:   "  check <file.rcv>    parse only and report syntax errors",
	MsgCmdTokens:  "  tokens <file.rcv>   dump the token stream",
	MsgCmdVersion: "  version             print the rcv version",
	MsgCmdHelp:    "  help                show this help",
	MsgUseHelp:    "Use \"rcv help\" for more information.",

	MsgUnknownCommand: "unknown command: %s",
	ErrInputRequired:  "an input file is required",
	ErrReadFile:       "cannot read %s: %v",
	ErrLoadConfig:     "cannot load rcv.toml: %v",
	ErrRuntimeFault:   "runtime error: %v",

	MsgRunUsage:      "Usage: rcv run [options] <file.rcv>",
	MsgRunOptVerbose: "print the final environment after the run",
	MsgCheckUsage:    "Usage: rcv check <file.rcv>",
	MsgTokensUsage:   "Usage: rcv tokens <file.rcv>",

	MsgSyntaxErrors:   "%d syntax error(s) found",
	MsgStatementCount: "parsed %d top-level statement(s)",
	MsgEnvironment:    "environment:",
}
