package i18n

// zhMessages contains Chinese translations
var zhMessages = map[string]string{
	// Parser errors
	ErrExpectedToken: "第 %d 行第 %d 列: 期望 %s, 实际是 %s",
	ErrSyntax:        "第 %d 行第 %d 列: '%s' 处: %s",
	ErrSyntaxAtEnd:   "第 %d 行: 文件末尾: %s",

	MsgExpectedExpression:   "期望表达式",
	MsgInvalidAssignTarget:  "无效的赋值目标",
	MsgExpectedFunctionName: "'func' 后期望函数名",
	MsgExpectedVariableName: "'let' 后期望变量名",

	// Runtime errors
	ErrUndefinedVariable:  "未定义的变量 '%s'",
	ErrUnsupportedLiteral: "字面量 %s 无法作为数字求值",
	ErrUnknownOperator:    "未知的运算符 '%s'",

	// Command messages
	MsgUsage:      "用法: rcv <命令> [参数]",
	MsgCommands:   "命令:",
	MsgCmdRun:     "  run <file.rcv>      解析并执行 rcv 源文件",
	MsgCmdCheck:   "  check <file.rcv>    仅解析并报告语法错误",
	MsgCmdTokens:  "  tokens <file.rcv>   输出 token 流",
	MsgCmdVersion: "  version             打印 rcv 版本",
	MsgCmdHelp:    "  help                显示帮助信息",
	MsgUseHelp:    "使用 \"rcv help\" 查看更多信息。",

	MsgUnknownCommand: "未知命令: %s",
	ErrInputRequired:  "需要一个输入文件",
	ErrReadFile:       "无法读取 %s: %v",
	ErrLoadConfig:     "无法加载 rcv.toml: %v",
	ErrRuntimeFault:   "运行时错误: %v",

	MsgRunUsage:      "用法: rcv run [选项] <file.rcv>",
	MsgRunOptVerbose: "运行结束后打印最终环境",
	MsgCheckUsage:    "用法: rcv check <file.rcv>",
	MsgTokensUsage:   "用法: rcv tokens <file.rcv>",

	MsgSyntaxErrors:   "发现 %d 个语法错误",
	MsgStatementCount: "解析出 %d 条顶层语句",
	MsgEnvironment:    "环境:",
}
