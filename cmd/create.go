package cmd

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
)

type createCmd struct{}

func (*createCmd) Name() string     { return "create" }
func (*createCmd) Synopsis() string { return "interactively cost a new recipe" }
func (*createCmd) Usage() string {
	return `rcs create

  Asks for the recipe name, its number of portions and its ingredients, then
  prints and stores the recipe cost per portion.
  Unknown ingredients are asked for their cost per gram, once.
`
}

func (c *createCmd) SetFlags(f *flag.FlagSet) {}

func (c *createCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	m, err := OpenManager()
	if err != nil {
		reportError(err)
		return subcommands.ExitFailure
	}
	if err := NewSession(m, os.Stdin, os.Stdout).CreateRecipe(); err != nil {
		reportError(err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
