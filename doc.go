// Package recipes provides the types and functions to cost food recipes.
//
// The core functionalities include:
//   - Ingredient Costs: a persistent book of costs per gram, one entry per
//     ingredient name, set once and reused by every recipe.
//   - Recipe Costing: recipes built from weighed ingredients, with their
//     total cost and cost per portion computed with exact decimal arithmetic.
//   - Recipe Costs: a persistent book of costs per portion, one entry per
//     recipe name.
//   - Name Resolution: mapping a typed name to a known one, exactly or by a
//     single confirmed suggestion.
//   - Data Persistence: human-readable JSON files, fully read at startup and
//     fully rewritten on every change.
//
// This package serves as the foundational logic for the `rcs` command-line
// tool. It never reads from the terminal: prompting is done by the caller
// through the Confirmer interface and by passing already validated values.
package recipes
