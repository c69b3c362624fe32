/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/typegraph/typegraph/pkg/render"
	"github.com/typegraph/typegraph/pkg/suggest"
	"github.com/typegraph/typegraph/pkg/typesystem"
)

type typesOptions struct {
	implements string
	hasField   []string
	kind       []string
}

func formatTypeText(t TypeInfo) string {
	if t.Description != "" {
		desc := strings.ReplaceAll(t.Description, "\n", " ")
		return fmt.Sprintf("%s %s # %s", t.Kind, t.Name, desc)
	}
	return fmt.Sprintf("%s %s", t.Kind, t.Name)
}

func formatTypesPretty(types []TypeInfo) string {
	tbl := makeTable()

	for _, t := range types {
		desc := strings.ReplaceAll(t.Description, "\n", " ")
		tbl.Row(t.Kind, t.Name, desc)
	}
	tbl.Headers("kind", "name", "description")

	return tbl.String()
}

var validKinds = map[string]bool{
	"scalar":    true,
	"type":      true,
	"interface": true,
	"union":     true,
	"enum":      true,
	"input":     true,
}

func matchesKindFilter(t typesystem.NamedType, kinds []string) bool {
	if len(kinds) == 0 {
		return true
	}
	kind := kindName(t)
	for _, k := range kinds {
		k = strings.ToLower(k)
		if k == "object" {
			k = "type"
		}
		if k == kind {
			return true
		}
	}
	return false
}

func matchesImplementsFilter(t typesystem.NamedType, iface string) bool {
	if iface == "" {
		return true
	}
	switch t := t.(type) {
	case *typesystem.Object:
		return t.Implements(iface)
	case *typesystem.Interface:
		return t.Implements(iface)
	}
	return false
}

func matchesHasFieldFilter(t typesystem.NamedType, fieldNames []string) bool {
	if len(fieldNames) == 0 {
		return true
	}
	fields := fieldsOf(t)
	for _, fieldName := range fieldNames {
		if fields.ForName(fieldName) == nil {
			return false
		}
	}
	return true
}

func validateImplementsFilter(schema *typesystem.Schema, name string) error {
	if name == "" {
		return nil
	}

	t := schema.Type(name)
	if t == nil {
		var interfaces []string
		for _, def := range schema.Types() {
			if _, ok := def.(*typesystem.Interface); ok {
				interfaces = append(interfaces, def.TypeName())
			}
		}
		sort.Strings(interfaces)
		if suggestion := suggest.Closest(name, interfaces); suggestion != "" {
			return fmt.Errorf("interface '%s' does not exist in schema, did you mean '%s'?", name, suggestion)
		}
		return fmt.Errorf("interface '%s' does not exist in schema", name)
	}
	if _, ok := t.(*typesystem.Interface); !ok {
		return fmt.Errorf("'%s' is not an interface (it's a %s)", name, kindName(t))
	}
	return nil
}

func NewTypesCmd() *cobra.Command {
	opts := &typesOptions{}

	cmd := &cobra.Command{
		Use:   "types",
		Short: "Lists all types in the built schema",
		Long: `Lists all types in the built schema with optional filtering.

The list comes from the constructed type graph, not the raw syntax tree:
it contains every declared type plus the built-in scalars the schema
actually references, in the order the builder linked them.

Output formats:
  text    "type User", "enum Status", etc. (default when piping)
  json    [{"name": "User", "kind": "type", "description": "..."}, ...]
  pretty  Formatted table with columns (default in terminal)

Multiple filters can be combined and are applied with AND logic.`,
		Example: `  # Find all types that could be returned by the API
  typegraph types --kind type --kind interface

  # Find all node types for Relay-style pagination
  typegraph types --implements Node

  # Find types that carry an id field
  typegraph types --has-field id

  # Pipe to other tools
  typegraph types --kind type -f json | jq '.[].name'`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTypes(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.implements, "implements", "", "Filter to types that implement the given interface")
	cmd.Flags().StringArrayVar(&opts.hasField, "has-field", nil, "Filter to types that have the given field (can be specified multiple times)")
	cmd.Flags().StringArrayVar(&opts.kind, "kind", nil, "Filter to types of the given kind: scalar, type, interface, union, enum, input (if specified multiple times, applied using OR logic)")

	return cmd
}

func runTypes(cmd *cobra.Command, opts *typesOptions) error {
	for _, k := range opts.kind {
		normalized := strings.ToLower(k)
		if normalized == "object" {
			normalized = "type"
		}
		if !validKinds[normalized] {
			return fmt.Errorf("invalid kind '%s' (valid: scalar, type, interface, union, enum, input)", k)
		}
	}

	schema, err := loadCliForSchema()
	if err != nil {
		return err
	}

	if err := validateImplementsFilter(schema, opts.implements); err != nil {
		return err
	}

	var types []TypeInfo
	for _, graphType := range schema.Types() {
		if !matchesImplementsFilter(graphType, opts.implements) {
			continue
		}
		if !matchesHasFieldFilter(graphType, opts.hasField) {
			continue
		}
		if !matchesKindFilter(graphType, opts.kind) {
			continue
		}

		types = append(types, TypeInfo{
			Name:        graphType.TypeName(),
			Kind:        kindName(graphType),
			Description: graphType.Description(),
		})
	}

	renderer := render.Renderer[TypeInfo]{
		Data:         types,
		TextFormat:   formatTypeText,
		PrettyFormat: formatTypesPretty,
	}

	output, err := renderer.Render(outputFormat)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), output)
	return nil
}
