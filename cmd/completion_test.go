package cmd

import "testing"

func TestCompletion(t *testing.T) {
	c := Completion()
	for _, sub := range Commands {
		if _, ok := c.Sub[sub.Name()]; !ok {
			t.Errorf("Completion() has no sub command %q", sub.Name())
		}
	}
	for _, name := range []string{"ingredients-file", "recipes-file", "currency", "v"} {
		if _, ok := c.Flags[name]; !ok {
			t.Errorf("Completion() has no flag %q", name)
		}
	}
	for _, name := range []string{"f", "path", "name", "cost"} {
		if _, ok := c.Sub["import-costs"].Flags[name]; !ok {
			t.Errorf("Completion() has no import-costs flag %q", name)
		}
	}
	if c.Sub["topic"].Args == nil {
		t.Error("Completion() does not predict topics")
	}
}
