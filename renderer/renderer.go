// Package renderer renders the recipe and ingredient books as markdown.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/recipes"
)

//go:embed templates/*.md
var templates embed.FS

// RecipeCosts is the data of the stored recipe costs report.
type RecipeCosts struct {
	Currency string
	Recipes  []recipes.RecipeCost
}

// RenderRecipeCosts renders the stored recipe costs to a markdown string.
func RenderRecipeCosts(r *RecipeCosts) string {
	partials := map[string]string{
		"recipe_costs_title": "templates/recipe_costs_title.md",
	}
	if len(r.Recipes) == 0 {
		partials["recipe_costs_table"] = "templates/recipe_costs_empty.md"
	} else {
		partials["recipe_costs_table"] = "templates/recipe_costs_table.md"
	}
	return renderTemplate("recipeCosts", "templates/recipe_costs.md", partials, r)
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(template.FuncMap{"cell": escapeCell}).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		// An empty file name is a valid case, resulting in an empty template.
		if file != "" {
			var readErr error
			content, readErr = fs.ReadFile(templates, file)
			if readErr != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, readErr)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
