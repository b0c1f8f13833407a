package recipes

import (
	"fmt"
	"strings"
)

// Suggest maps a typed name to a known one.
//
// A case-insensitive exact match returns the known name with exact set.
// Otherwise the first known name containing (or starting with) the typed
// name, ignoring case, is returned as a suggestion. When nothing qualifies,
// the typed name is returned with found unset.
func Suggest(typed string, known []string) (name string, exact, found bool) {
	lower := strings.ToLower(typed)
	for _, k := range known {
		if strings.ToLower(k) == lower {
			return k, true, true
		}
	}
	for _, k := range known {
		lk := strings.ToLower(k)
		if strings.Contains(lk, lower) || strings.HasPrefix(lk, lower) {
			return k, false, true
		}
	}
	return typed, false, false
}

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(question string) (bool, error)
}

// Resolver resolves typed names to canonical names, asking for confirmation
// before substituting a suggestion.
type Resolver struct {
	Confirmer Confirmer
}

// Resolve returns the canonical name for 'typed'. Only one suggestion is
// ever offered, declining it keeps the typed name.
func (r Resolver) Resolve(typed string, known []string) (string, error) {
	name, exact, found := Suggest(typed, known)
	if exact || !found {
		return name, nil
	}
	ok, err := r.Confirmer.Confirm(fmt.Sprintf("Did you mean '%s' instead of '%s'? (y/n): ", name, typed))
	if err != nil {
		return "", err
	}
	if ok {
		return name, nil
	}
	return typed, nil
}
