package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/recipes"
	"github.com/google/subcommands"
)

type importCostsCmd struct {
	src   string
	query recipes.PriceListQuery
}

func (*importCostsCmd) Name() string     { return "import-costs" }
func (*importCostsCmd) Synopsis() string { return "add new ingredient costs from a supplier price list" }
func (*importCostsCmd) Usage() string {
	return `rcs import-costs -f <file or url> [-path <jsonpath>] [-name <key>] [-cost <key>]

  Reads a JSON price list and adds the ingredients that are not known yet.
  Known ingredients keep their cost.

  -path selects either a list of objects, with the name and the cost per gram
  under the -name and -cost keys, or a flat object mapping names to costs.

Usage Examples:
$ rcs import-costs -f prices.json -path '$.items[*]'
$ rcs import-costs -f ../bakery/ingredients.json
`
}

func (c *importCostsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.src, "f", "", "Price list file, or http(s) address")
	f.StringVar(&c.query.Path, "path", recipes.DefaultPriceListQuery.Path, "JSONPath selecting the price entries")
	f.StringVar(&c.query.NameKey, "name", recipes.DefaultPriceListQuery.NameKey, "Key of the ingredient name in an entry")
	f.StringVar(&c.query.CostKey, "cost", recipes.DefaultPriceListQuery.CostKey, "Key of the cost per gram in an entry")
}

func (c *importCostsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.src == "" {
		fmt.Fprintln(os.Stderr, "Error: -f is required")
		return subcommands.ExitUsageError
	}

	m, err := OpenManager()
	if err != nil {
		reportError(err)
		return subcommands.ExitFailure
	}

	prices, err := recipes.ReadPriceList(ctx, c.src)
	if err != nil {
		reportError(err)
		return subcommands.ExitFailure
	}
	entries, err := c.query.Select(prices)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error selecting prices in %q: %v\n", c.src, err)
		return subcommands.ExitFailure
	}

	added, skipped, err := m.ImportCosts(entries)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error saving ingredients: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Added %d ingredients", len(added))
	if len(added) > 0 {
		fmt.Printf(": %s", strings.Join(added, ", "))
	}
	fmt.Println()
	if len(skipped) > 0 {
		fmt.Printf("Skipped %d: %s\n", len(skipped), strings.Join(skipped, ", "))
	}
	return subcommands.ExitSuccess
}
