package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/oarkflow/log"

	"github.com/Nishant98750/rcv-lang/internal/i18n"
	"github.com/Nishant98750/rcv-lang/internal/interp"
	"github.com/Nishant98750/rcv-lang/internal/lexer"
	"github.com/Nishant98750/rcv-lang/internal/parser"
)

// runCmd parses and executes an rcv source file.
func runCmd(args []string) {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	verbose := fs.Bool("v", false, i18n.T(i18n.MsgRunOptVerbose))

	fs.Usage = func() {
		fmt.Println(i18n.T(i18n.MsgRunUsage))
		fmt.Println()
		fs.PrintDefaults()
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
	cfg := loadConfig()
	source := readSource(path)

	tokens := lexer.Tokenize(source)
	if cfg.Run.DumpTokens {
		dumpTokens(tokens)
	}

	p := parser.New(tokens)
	program := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		for _, e := range errs {
			printError(e)
		}
		printError(i18n.T(i18n.MsgSyntaxErrors, len(errs)))
		os.Exit(1)
	}

	logger := log.DefaultLogger
	if *verbose {
		logger.Level = log.DebugLevel
	}

	in := interp.New(interp.WithLogger(&logger))
	if err := in.Interpret(program); err != nil {
		logger.Error().Err(err).Str("file", path).Msg("interpretation aborted")
		printError(i18n.T(i18n.ErrRuntimeFault, err))
		os.Exit(1)
	}

	if *verbose {
		printInfo(i18n.T(i18n.MsgEnvironment))
		env := in.Env()
		for _, name := range env.Names() {
			value, _ := env.Get(name)
			fmt.Printf("  %s = %s\n", name, strconv.FormatFloat(value, 'g', -1, 64))
		}
	}
}
