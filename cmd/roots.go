/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/typegraph/typegraph/pkg/render"
)

func formatRootText(r RootInfo) string {
	return fmt.Sprintf("%s: %s", r.Operation, r.Type)
}

func formatRootsPretty(roots []RootInfo) string {
	t := makeTable()

	for _, r := range roots {
		t.Row(r.Operation, r.Type)
	}
	t.Headers("operation", "type")

	return t.String()
}

func NewRootsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roots",
		Short: "Shows the root operation types of the schema",
		Long: `Shows which object types serve as the schema's root operation types.

Roots come from the schema definition block (schema { query: ... }), so
a query root named anything other than Query is reported as declared.
Mutation and subscription only appear when the schema declares them.

Output formats:
  text    "query: Query", "mutation: Mutation" (default when piping)
  json    [{"operation": "query", "type": "Query"}, ...]
  pretty  Formatted table with columns (default in terminal)`,
		Example: `  # Show the root operation types
  typegraph roots

  # Get the query root name for scripting
  typegraph roots -f json | jq -r '.[] | select(.operation == "query") | .type'`,
		RunE: runRoots,
	}

	return cmd
}

func runRoots(cmd *cobra.Command, args []string) error {
	schema, err := loadCliForSchema()
	if err != nil {
		return err
	}

	roots := []RootInfo{
		{Operation: "query", Type: schema.Query().TypeName()},
	}
	if mutation := schema.Mutation(); mutation != nil {
		roots = append(roots, RootInfo{Operation: "mutation", Type: mutation.TypeName()})
	}
	if subscription := schema.Subscription(); subscription != nil {
		roots = append(roots, RootInfo{Operation: "subscription", Type: subscription.TypeName()})
	}

	renderer := render.Renderer[RootInfo]{
		Data:         roots,
		TextFormat:   formatRootText,
		PrettyFormat: formatRootsPretty,
	}

	output, err := renderer.Render(outputFormat)
	if err != nil {
		return fmt.Errorf("error rendering output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), output)
	return nil
}
