package cmd

import (
	"testing"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

func TestAddIngredient(t *testing.T) {
	f := newFixture(t, map[string]string{"Eggs": "0.05"}, nil)

	tests := []struct {
		name string
		cost string
		want subcommands.ExitStatus
	}{
		{"Flour", "0.0012", subcommands.ExitSuccess},
		{"Eggs", "0.07", subcommands.ExitFailure}, // known
		{"eggs", "0.07", subcommands.ExitFailure}, // known with another case
	}
	for _, tt := range tests {
		if got := addIngredient(f.m, tt.name, decimal.RequireFromString(tt.cost)); got != tt.want {
			t.Errorf("addIngredient(%q, %s) = %v, want %v", tt.name, tt.cost, got, tt.want)
		}
	}
	assertBook(t, "ingredients", f.saved(t, f.ing), map[string]string{"Eggs": "0.05", "Flour": "0.0012"})
}
