package cmd

import (
	"flag"

	"github.com/etnz/recipes/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the rcs command line for shell completion.
func Completion() *complete.Command {
	jsonFiles := predict.Files("*.json")
	topics, _ := docs.GetAllTopics()

	c := &complete.Command{
		Sub: map[string]*complete.Command{
			"help":     {},
			"flags":    {},
			"commands": {},
		},
		Flags: map[string]complete.Predictor{},
	}
	flag.VisitAll(func(f *flag.Flag) {
		c.Flags[f.Name] = predict.Something
	})
	c.Flags["ingredients-file"] = jsonFiles
	c.Flags["recipes-file"] = jsonFiles
	c.Flags["v"] = predict.Nothing

	for _, sub := range Commands {
		s := &complete.Command{Flags: map[string]complete.Predictor{}}
		fs := flag.NewFlagSet(sub.Name(), flag.ContinueOnError)
		sub.SetFlags(fs)
		fs.VisitAll(func(f *flag.Flag) {
			s.Flags[f.Name] = predict.Something
		})
		c.Sub[sub.Name()] = s
	}
	c.Sub["import-costs"].Flags["f"] = jsonFiles
	c.Sub["topic"].Args = predict.Set(append(topics, "*"))
	return c
}
