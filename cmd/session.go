package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/recipes"
)

// Session is the interactive costing session: it asks the user for the
// values the recipes.Manager needs.
type Session struct {
	m        *recipes.Manager
	prompt   *Prompter
	resolver recipes.Resolver
	out      io.Writer
}

// NewSession returns a session reading answers from in and writing to out.
func NewSession(m *recipes.Manager, in io.Reader, out io.Writer) *Session {
	p := NewPrompter(in, out)
	return &Session{
		m:        m,
		prompt:   p,
		resolver: recipes.Resolver{Confirmer: p},
		out:      out,
	}
}

// Run asks for the action to run, and runs it.
func (s *Session) Run() error {
	action, err := s.prompt.Line("View recipe cost or create new recipe? (view/create): ")
	if err != nil {
		return err
	}
	switch strings.ToLower(action) {
	case "view":
		s.ViewRecipeCost()
		return nil
	case "create":
		return s.CreateRecipe()
	default:
		fmt.Fprintln(s.out, "Invalid option.")
		return nil
	}
}

// GetCostPerGram returns the cost of an ingredient, asking for it and saving
// it if the ingredient is new.
func (s *Session) GetCostPerGram(name string) (recipes.Money, error) {
	name, err := s.costedName(name)
	if err != nil {
		return recipes.Money{}, err
	}
	cost, _ := s.m.CostPerGram(name)
	return cost, nil
}

// costedName resolves name against the known ingredients and returns a name
// that has a cost, asking for it and saving it if the ingredient is new.
func (s *Session) costedName(name string) (string, error) {
	name, err := s.resolver.Resolve(name, s.m.IngredientNames())
	if err != nil {
		return "", err
	}
	if _, ok := s.m.CostPerGram(name); ok {
		return name, nil
	}
	cost, err := s.prompt.PositiveDecimal(fmt.Sprintf("Enter cost per gram for %s: ", name))
	if err != nil {
		return "", err
	}
	if _, err := s.m.AddIngredient(name, cost); err != nil {
		return "", err
	}
	return name, nil
}

// CreateRecipe builds a recipe, prints and saves its cost per portion.
func (s *Session) CreateRecipe() error {
	name, err := s.prompt.NonEmpty("Enter recipe name: ")
	if err != nil {
		return err
	}
	portions, err := s.prompt.PositiveDecimal("Enter number of portions: ")
	if err != nil {
		return err
	}
	// fractional portions are truncated: 2.9 portions make 2.
	recipe, err := recipes.NewRecipe(name, recipes.Q(portions))
	if err != nil {
		return err
	}

	for {
		ingName, err := s.prompt.NonEmpty("Enter ingredient name: ")
		if err != nil {
			return err
		}
		ingName, err = s.resolver.Resolve(ingName, s.m.IngredientNames())
		if err != nil {
			return err
		}
		weight, err := s.prompt.PositiveDecimal(fmt.Sprintf("Enter weight in grams for %s: ", ingName))
		if err != nil {
			return err
		}
		ingName, err = s.costedName(ingName)
		if err != nil {
			return err
		}
		ing, err := s.m.Ingredient(ingName, recipes.Q(weight))
		if err != nil {
			return err
		}
		recipe.Add(ing)

		more, err := s.prompt.Line("Add another ingredient? (y/n): ")
		if err != nil {
			return err
		}
		if strings.ToLower(more) != "y" {
			break
		}
	}

	cost, err := recipe.CostPerPortion()
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "\n✅ Cost per portion for '%s': %s\n", name, cost)
	_, err = s.m.SaveRecipe(recipe)
	return err
}

// ViewRecipeCost lists the stored recipe costs.
func (s *Session) ViewRecipeCost() {
	costs := s.m.RecipeCosts()
	if len(costs) == 0 {
		fmt.Fprintln(s.out, "📭 No recipes stored yet.")
		return
	}
	fmt.Fprintln(s.out, "\n📚 Stored Recipe Costings:")
	for _, c := range costs {
		fmt.Fprintf(s.out, " - %s: %s\n", c.Name, c.CostPerPortion)
	}
}
