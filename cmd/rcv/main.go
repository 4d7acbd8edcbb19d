package main

import (
	"fmt"
	"os"

	"github.com/Nishant98750/rcv-lang/internal/config"
	"github.com/Nishant98750/rcv-lang/internal/i18n"
)

const version = "0.1.0"

func main() {
	i18n.Init()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "run":
		runCmd(os.Args[2:])
	case "check":
		checkCmd(os.Args[2:])
	case "tokens":
		tokensCmd(os.Args[2:])
	case "version":
		fmt.Println("rcv version", version)
	case "help":
		printUsage()
	default:
		printError(i18n.T(i18n.MsgUnknownCommand, os.Args[1]))
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(i18n.T(i18n.MsgUsage))
	fmt.Println()
	fmt.Println(i18n.T(i18n.MsgCommands))
	fmt.Println(i18n.T(i18n.MsgCmdRun))
	fmt.Println(i18n.T(i18n.MsgCmdCheck))
	fmt.Println(i18n.T(i18n.MsgCmdTokens))
	fmt.Println(i18n.T(i18n.MsgCmdVersion))
	fmt.Println(i18n.T(i18n.MsgCmdHelp))
	fmt.Println()
	fmt.Println(i18n.T(i18n.MsgUseHelp))
}

func printError(msg string) {
	fmt.Fprintln(os.Stderr, msg)
}

func printInfo(msg string) {
	fmt.Println(msg)
}

// loadConfig finds rcv.toml upward from the working directory and applies
// the settings that affect every command.
func loadConfig() *config.Config {
	cwd, err := os.Getwd()
	if err != nil {
		return config.DefaultConfig()
	}
	cfg, _, err := config.FindAndLoad(cwd)
	if err != nil {
		printError(i18n.T(i18n.ErrLoadConfig, err))
		os.Exit(1)
	}
	if cfg.Run.Language != "" {
		i18n.SetLanguage(i18n.Language(cfg.Run.Language))
	}
	return cfg
}

// readSource reads an rcv source file or exits with a diagnostic.
func readSource(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		printError(i18n.T(i18n.ErrReadFile, path, err))
		os.Exit(1)
	}
	return string(data)
}
