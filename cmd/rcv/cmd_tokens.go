package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Nishant98750/rcv-lang/internal/i18n"
	"github.com/Nishant98750/rcv-lang/internal/lexer"
)

// tokensCmd dumps the token stream of a source file.
func tokensCmd(args []string) {
	fs := flag.NewFlagSet("tokens", flag.ExitOnError)

	fs.Usage = func() {
		fmt.Println(i18n.T(i18n.MsgTokensUsage))
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		printError(i18n.T(i18n.ErrInputRequired))
		fs.Usage()
		os.Exit(1)
	}

	loadConfig()
	dumpTokens(lexer.Tokenize(readSource(fs.Arg(0))))
}

func dumpTokens(tokens []lexer.Token) {
	for _, tok := range tokens {
		fmt.Printf("%4d:%-3d %-8s %q\n", tok.Line, tok.Column, lexer.TokenTypeName(tok.Type), tok.Literal)
	}
}
