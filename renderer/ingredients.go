package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/recipes"
)

// IngredientsMarkdown renders the ingredient costs per gram, and per kilogram
// which is easier to compare with supplier prices.
func IngredientsMarkdown(currency string, costs []recipes.IngredientCost) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Ingredients\n\n")
	if len(costs) == 0 {
		fmt.Fprintln(&b, "No ingredients stored yet.")
		return b.String()
	}
	fmt.Fprintf(&b, "| Ingredient | Cost per gram (%s) | Cost per kg |\n", currency)
	fmt.Fprintln(&b, "|:---|---:|---:|")
	kg := recipes.Q(1000)
	for _, c := range costs {
		fmt.Fprintf(&b, "| %s | %s | %s |\n",
			escapeCell(c.Name),
			c.CostPerGram.Decimal().String(),
			c.CostPerGram.Mul(kg),
		)
	}
	return b.String()
}

// escapeCell protects the markdown table from pipes in names.
func escapeCell(s string) string { return strings.ReplaceAll(s, "|", `\|`) }
