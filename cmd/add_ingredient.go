package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/recipes"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type addIngredientCmd struct {
	name string
	cost string
}

func (*addIngredientCmd) Name() string     { return "add-ingredient" }
func (*addIngredientCmd) Synopsis() string { return "record the cost per gram of a new ingredient" }
func (*addIngredientCmd) Usage() string {
	return `rcs add-ingredient -n <name> -c <cost per gram>

  Records the cost per gram of a new ingredient. Known ingredients keep their cost.

Usage Examples:
$ rcs add-ingredient -n Eggs -c 0.05
`
}

func (c *addIngredientCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Ingredient name")
	f.StringVar(&c.cost, "c", "", "Cost per gram")
}

func (c *addIngredientCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	name := strings.TrimSpace(c.name)
	if name == "" {
		fmt.Fprintln(os.Stderr, "Error: -n is required")
		return subcommands.ExitUsageError
	}
	cost, err := decimal.NewFromString(strings.TrimSpace(c.cost))
	if err != nil || !cost.IsPositive() {
		fmt.Fprintf(os.Stderr, "Error: -c must be a positive number, got %q\n", c.cost)
		return subcommands.ExitUsageError
	}

	m, err := OpenManager()
	if err != nil {
		reportError(err)
		return subcommands.ExitFailure
	}
	return addIngredient(m, name, cost)
}

func addIngredient(m *recipes.Manager, name string, cost decimal.Decimal) subcommands.ExitStatus {
	if known, exact, _ := recipes.Suggest(name, m.IngredientNames()); exact && known != name {
		fmt.Fprintf(os.Stderr, "Error: %q is already known as %q\n", name, known)
		return subcommands.ExitFailure
	}
	money, err := m.AddIngredient(name, cost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error adding ingredient: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Successfully added %s at %s per gram\n", name, money.Decimal())
	return subcommands.ExitSuccess
}
