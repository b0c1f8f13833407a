package recipes

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoPortions is returned when computing the cost per portion of a recipe with zero portions.
var ErrNoPortions = errors.New("recipe has no portions")

// Ingredient is a weighed ingredient in a recipe.
type Ingredient struct {
	Name        string
	Weight      Quantity // in grams
	CostPerGram Money
}

// TotalCost returns weight × cost per gram.
func (i Ingredient) TotalCost() Money { return i.CostPerGram.Mul(i.Weight) }

// Recipe is an ordered list of ingredients yielding a number of portions.
type Recipe struct {
	Name        string
	Portions    Quantity // a whole number
	Ingredients []Ingredient
}

// NewRecipe returns an empty recipe. Fractional portions are truncated.
func NewRecipe(name string, portions Quantity) (*Recipe, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.New("recipe name is required")
	}
	if portions.IsNegative() {
		return nil, fmt.Errorf("recipe %q: portions must not be negative, got %v", name, portions)
	}
	return &Recipe{Name: name, Portions: portions.Truncate()}, nil
}

// Add appends an ingredient.
func (r *Recipe) Add(i Ingredient) { r.Ingredients = append(r.Ingredients, i) }

// TotalCost sums the ingredients total costs.
func (r *Recipe) TotalCost() Money {
	var total Money
	for _, i := range r.Ingredients {
		total = total.Add(i.TotalCost())
	}
	return total
}

// CostPerPortion returns the total cost divided by the number of portions.
func (r *Recipe) CostPerPortion() (Money, error) {
	if r.Portions.IsZero() {
		return Money{}, fmt.Errorf("recipe %q: %w", r.Name, ErrNoPortions)
	}
	return r.TotalCost().Div(r.Portions), nil
}
