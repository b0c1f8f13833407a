package recipes

import (
	"errors"
	"fmt"
	"log"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// ErrIngredientExists is returned when adding an ingredient that already has a cost.
var ErrIngredientExists = errors.New("ingredient already has a cost")

// Manager holds the ingredient and recipe books for a session, and persists
// every change to its stores immediately.
type Manager struct {
	currency    string
	ingredients *Book
	recipes     *Book
	ingStore    Store
	recStore    Store
}

// RecipeCost is a stored recipe cost per portion.
type RecipeCost struct {
	Name           string
	CostPerPortion Money
}

// IngredientCost is a stored ingredient cost per gram.
type IngredientCost struct {
	Name        string
	CostPerGram Money
}

// NewManager loads both books from their stores.
func NewManager(ingredients, recipes Store, currency string) (*Manager, error) {
	if money.GetCurrency(currency) == nil {
		return nil, fmt.Errorf("unknown currency %q", currency)
	}
	ing, err := ingredients.Load()
	if err != nil {
		return nil, fmt.Errorf("cannot load ingredients: %w", err)
	}
	rec, err := recipes.Load()
	if err != nil {
		return nil, fmt.Errorf("cannot load recipes: %w", err)
	}
	return &Manager{
		currency:    currency,
		ingredients: ing,
		recipes:     rec,
		ingStore:    ingredients,
		recStore:    recipes,
	}, nil
}

func (m *Manager) Currency() string { return m.currency }

// IngredientNames returns the known ingredient names in store order.
func (m *Manager) IngredientNames() []string { return m.ingredients.Names() }

// CostPerGram returns the stored cost of an ingredient.
func (m *Manager) CostPerGram(name string) (Money, bool) {
	v, ok := m.ingredients.Get(name)
	if !ok {
		return Money{}, false
	}
	return M(v, m.currency), true
}

// AddIngredient records the cost per gram of a new ingredient and saves the
// whole ingredient book. Existing costs are never changed.
func (m *Manager) AddIngredient(name string, costPerGram decimal.Decimal) (Money, error) {
	if name == "" {
		return Money{}, errors.New("ingredient name is required")
	}
	if !costPerGram.IsPositive() {
		return Money{}, fmt.Errorf("cost per gram of %q must be positive, got %v", name, costPerGram)
	}
	if m.ingredients.Has(name) {
		return Money{}, fmt.Errorf("%q: %w", name, ErrIngredientExists)
	}
	m.ingredients.Set(name, costPerGram)
	if err := m.ingStore.Save(m.ingredients); err != nil {
		return Money{}, err
	}
	return M(costPerGram, m.currency), nil
}

// Ingredient returns the recipe ingredient for a known ingredient name.
func (m *Manager) Ingredient(name string, weight Quantity) (Ingredient, error) {
	if !weight.IsPositive() {
		return Ingredient{}, fmt.Errorf("weight of %q must be positive, got %v", name, weight)
	}
	cost, ok := m.CostPerGram(name)
	if !ok {
		return Ingredient{}, fmt.Errorf("ingredient %q has no cost", name)
	}
	return Ingredient{Name: name, Weight: weight, CostPerGram: cost}, nil
}

// SaveRecipe computes the recipe cost per portion, stores it rounded to
// cents under the recipe name (replacing any previous value) and saves the
// recipe book. It returns the unrounded cost per portion.
func (m *Manager) SaveRecipe(r *Recipe) (Money, error) {
	cost, err := r.CostPerPortion()
	if err != nil {
		return Money{}, err
	}
	m.recipes.Set(r.Name, cost.Round(2).Decimal())
	if err := m.recStore.Save(m.recipes); err != nil {
		return Money{}, err
	}
	log.Printf("recipe %q: %d ingredients, total %v, %v portions", r.Name, len(r.Ingredients), r.TotalCost(), r.Portions)
	return cost, nil
}

// RecipeCosts lists the stored recipe costs in store order.
func (m *Manager) RecipeCosts() []RecipeCost {
	out := make([]RecipeCost, 0, m.recipes.Len())
	for _, name := range m.recipes.Names() {
		v, _ := m.recipes.Get(name)
		out = append(out, RecipeCost{Name: name, CostPerPortion: M(v, m.currency)})
	}
	return out
}

// IngredientCosts lists the stored ingredient costs in store order.
func (m *Manager) IngredientCosts() []IngredientCost {
	out := make([]IngredientCost, 0, m.ingredients.Len())
	for _, name := range m.ingredients.Names() {
		v, _ := m.ingredients.Get(name)
		out = append(out, IngredientCost{Name: name, CostPerGram: M(v, m.currency)})
	}
	return out
}

// ImportCosts adds the new ingredients of a price list. Entries for known
// ingredients, or with a non positive cost, are skipped. The ingredient book
// is saved once, and only if something was added.
func (m *Manager) ImportCosts(entries []PriceEntry) (added, skipped []string, err error) {
	for _, e := range entries {
		switch {
		case e.Name == "":
			log.Printf("skipping a price entry with no name")
			continue
		case !e.CostPerGram.IsPositive():
			log.Printf("skipping %q: cost per gram %v is not positive", e.Name, e.CostPerGram)
			skipped = append(skipped, e.Name)
			continue
		case m.ingredients.Has(e.Name):
			log.Printf("skipping %q: already has a cost", e.Name)
			skipped = append(skipped, e.Name)
			continue
		}
		m.ingredients.Set(e.Name, e.CostPerGram)
		added = append(added, e.Name)
	}
	if len(added) == 0 {
		return added, skipped, nil
	}
	if err := m.ingStore.Save(m.ingredients); err != nil {
		return nil, nil, err
	}
	return added, skipped, nil
}
