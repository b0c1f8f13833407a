package cmd

import (
	"context"
	"flag"

	"github.com/etnz/recipes/renderer"
	"github.com/google/subcommands"
)

type viewCmd struct{}

func (*viewCmd) Name() string     { return "view" }
func (*viewCmd) Synopsis() string { return "display the stored recipe costs per portion" }
func (*viewCmd) Usage() string {
	return `rcs view

  Displays every stored recipe with its cost per portion.
`
}

func (c *viewCmd) SetFlags(f *flag.FlagSet) {}

func (c *viewCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	m, err := OpenManager()
	if err != nil {
		reportError(err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.RenderRecipeCosts(&renderer.RecipeCosts{
		Currency: m.Currency(),
		Recipes:  m.RecipeCosts(),
	}))
	return subcommands.ExitSuccess
}
