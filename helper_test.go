package recipes

import "github.com/shopspring/decimal"

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// D is a helper for test to create a decimal from a string const
func D(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// book is a helper for test to create a book from name, value pairs.
func book(pairs ...string) *Book {
	b := NewBook()
	for i := 0; i+1 < len(pairs); i += 2 {
		b.Set(pairs[i], D(pairs[i+1]))
	}
	return b
}

// answers is a Confirmer replaying a fixed list of answers.
type answers struct {
	replies   []bool
	questions []string
}

func (a *answers) Confirm(question string) (bool, error) {
	a.questions = append(a.questions, question)
	if len(a.replies) == 0 {
		return false, nil
	}
	r := a.replies[0]
	a.replies = a.replies[1:]
	return r, nil
}
