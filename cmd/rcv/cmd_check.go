package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Nishant98750/rcv-lang/internal/i18n"
	"github.com/Nishant98750/rcv-lang/internal/lexer"
	"github.com/Nishant98750/rcv-lang/internal/parser"
)

// checkCmd parses a source file without executing it and reports every
// syntax error plus the number of statements that survived.
func checkCmd(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)

	fs.Usage = func() {
		fmt.Println(i18n.T(i18n.MsgCheckUsage))
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		printError(i18n.T(i18n.ErrInputRequired))
		fs.Usage()
		os.Exit(1)
	}

	path := fs.Arg(0)
	loadConfig()
	source := readSource(path)

	p := parser.New(lexer.Tokenize(source))
	program := p.ParseProgram()

	for _, e := range p.Errors() {
		printError(e)
	}
	printInfo(i18n.T(i18n.MsgStatementCount, len(program.Statements)))

	if len(p.Errors()) > 0 {
		printError(i18n.T(i18n.MsgSyntaxErrors, len(p.Errors())))
		os.Exit(1)
	}
}
