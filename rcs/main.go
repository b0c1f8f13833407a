package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/recipes/cmd"
	"github.com/google/subcommands"
)

func main() {
	// exits when invoked by the shell for completion.
	cmd.Completion().Complete("rcs")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	for _, c := range cmd.Commands {
		commander.Register(c, "recipes")
	}

	flag.Parse()
	cmd.SetupLogging()

	ctx := context.Background()
	if flag.NArg() == 0 {
		// no subcommand: the interactive session.
		os.Exit(int(cmd.RunSession(ctx)))
	}
	os.Exit(int(commander.Execute(ctx)))
}
