package cmd

import (
	"context"
	"flag"

	"github.com/etnz/recipes/renderer"
	"github.com/google/subcommands"
)

type ingredientsCmd struct{}

func (*ingredientsCmd) Name() string     { return "ingredients" }
func (*ingredientsCmd) Synopsis() string { return "display the stored ingredient costs" }
func (*ingredientsCmd) Usage() string {
	return `rcs ingredients

  Displays every known ingredient with its cost per gram and per kilogram.
`
}

func (c *ingredientsCmd) SetFlags(f *flag.FlagSet) {}

func (c *ingredientsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	m, err := OpenManager()
	if err != nil {
		reportError(err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.IngredientsMarkdown(m.Currency(), m.IngredientCosts()))
	return subcommands.ExitSuccess
}
