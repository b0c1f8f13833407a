// Package cmd implements the CLI application to cost recipes.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/recipes"
	"github.com/google/subcommands"
)

const (
	EnvIngredientsFile = "RCS_INGREDIENTS_FILE"
	EnvRecipesFile     = "RCS_RECIPES_FILE"
	EnvCurrency        = "RCS_CURRENCY"
	EnvVerbose         = "RCS_VERBOSE"
)

// Commands lists the application subcommands.
var Commands = []subcommands.Command{
	&viewCmd{},
	&createCmd{},
	&ingredientsCmd{},
	&addIngredientCmd{},
	&importCostsCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	ingredientsFile = flag.String("ingredients-file", envOr(EnvIngredientsFile, "ingredients.json"), "Path to the ingredient costs file (JSON)")
	recipesFile     = flag.String("recipes-file", envOr(EnvRecipesFile, "recipes.json"), "Path to the recipe costs file (JSON)")
	currency        = flag.String("currency", envOr(EnvCurrency, "USD"), "Currency of all costs")
	Verbose         = flag.Bool("v", envBool(EnvVerbose), "print diagnostic logs to stderr")
)

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envBool(key string) bool {
	v, _ := strconv.ParseBool(os.Getenv(key))
	return v
}

// SetupLogging sends the log output to stderr in verbose mode, and nowhere otherwise.
func SetupLogging() {
	log.SetFlags(log.Ltime)
	if *Verbose {
		log.SetOutput(os.Stderr)
		return
	}
	log.SetOutput(io.Discard)
}

// OpenManager loads the ingredient and recipe files.
func OpenManager() (*recipes.Manager, error) {
	return recipes.NewManager(
		recipes.FileStore{Path: *ingredientsFile},
		recipes.FileStore{Path: *recipesFile},
		*currency,
	)
}

// RunSession runs the interactive session on the standard input and output.
func RunSession(_ context.Context) subcommands.ExitStatus {
	m, err := OpenManager()
	if err != nil {
		reportError(err)
		return subcommands.ExitFailure
	}
	if err := NewSession(m, os.Stdin, os.Stdout).Run(); err != nil {
		reportError(err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// reportError prints a fatal error, with a hint for corrupted files.
func reportError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	var perr *recipes.ParseError
	if errors.As(err, &perr) {
		fmt.Fprintf(os.Stderr, "Repair or remove %q and try again.\n", perr.Path)
	}
}

// printMarkdown renders markdown for the terminal, or prints it raw if it cannot.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		log.Printf("cannot render markdown: %v", err)
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
