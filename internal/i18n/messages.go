package i18n

// Message keys for parser errors
const (
	ErrExpectedToken = "parser.expected_token" // args: line, column, expected, got
	ErrSyntax        = "parser.syntax"         // args: line, column, lexeme, message
	ErrSyntaxAtEnd   = "parser.syntax_at_end"  // args: line, message

	MsgExpectedExpression   = "parser.expected_expression"
	MsgInvalidAssignTarget  = "parser.invalid_assign_target"
	MsgExpectedFunctionName = "parser.expected_function_name"
	MsgExpectedVariableName = "parser.expected_variable_name"
)

// Message keys for runtime errors
const (
	ErrUndefinedVariable  = "runtime.undefined_variable"  // args: name
	ErrUnsupportedLiteral = "runtime.unsupported_literal" // args: lexeme
	ErrUnknownOperator    = "runtime.unknown_operator"    // args: operator
)

// Message keys for the rcv command
const (
	MsgUsage      = "cmd.usage"
	MsgCommands   = "cmd.commands"
	MsgCmdRun     = "cmd.cmd_run"
	MsgCmdCheck   = "cmd.cmd_check"
	MsgCmdTokens  = "cmd.cmd_tokens"
	MsgCmdVersion = "cmd.cmd_version"
	MsgCmdHelp    = "cmd.cmd_help"
	MsgUseHelp    = "cmd.use_help"

	MsgUnknownCommand = "cmd.unknown_command" // args: command
	ErrInputRequired  = "cmd.input_required"
	ErrReadFile       = "cmd.read_file"      // args: path, error
	ErrLoadConfig     = "cmd.load_config"    // args: error
	ErrRuntimeFault   = "cmd.runtime_fault"  // args: error

	MsgRunUsage      = "cmd.run_usage"
	MsgRunOptVerbose = "cmd.run_opt_verbose"
	MsgCheckUsage    = "cmd.check_usage"
	MsgTokensUsage   = "cmd.tokens_usage"

	MsgSyntaxErrors   = "cmd.syntax_errors"   // args: count
	MsgStatementCount = "cmd.statement_count" // args: count
	MsgEnvironment    = "cmd.environment"
)
