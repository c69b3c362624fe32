/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/typegraph/typegraph/pkg/render"
	"github.com/typegraph/typegraph/pkg/typesystem"
)

type fieldsOptions struct {
	deprecated     bool
	hasArg         []string
	returns        string
	required       bool
	nullable       bool
	name           string
	nameRegex      string
	hasDescription bool
}

func fieldToInfo(field *typesystem.Field) FieldInfo {
	var args []ArgumentInfo
	for _, arg := range field.Arguments() {
		args = append(args, ArgumentInfo{
			Name: arg.Name(),
			Type: arg.Type().String(),
		})
	}

	return FieldInfo{
		Name:              field.Name(),
		Arguments:         args,
		Type:              field.Type().String(),
		DeprecationReason: field.DeprecationReason(),
		Description:       field.Description(),
	}
}

func formatFieldName(field FieldInfo, format render.Format) string {
	name := field.Name
	if field.TypeName != "" {
		name = field.TypeName + "." + field.Name
	}

	if len(field.Arguments) == 0 {
		return name
	}

	var args []string
	for _, arg := range field.Arguments {
		args = append(args, fmt.Sprintf("%s: %s", arg.Name, arg.Type))
	}

	if format == render.FormatPretty {
		return fmt.Sprintf("%s(\n\t\t%s\n\t)", name, strings.Join(args, ",\n\t\t"))
	}
	return fmt.Sprintf("%s(%s)", name, strings.Join(args, ", "))
}

func formatFieldText(field FieldInfo) string {
	name := formatFieldName(field, render.FormatText)

	typeStr := field.Type
	if field.DeprecationReason != "" {
		typeStr += " @deprecated"
	}

	desc := ""
	if field.Description != "" {
		desc = " # " + strings.ReplaceAll(field.Description, "\n", " ")
	}
	return fmt.Sprintf("%s: %s%s", name, typeStr, desc)
}

func formatFieldsPretty(fields []FieldInfo) string {
	t := makeTable()

	for _, field := range fields {
		name := formatFieldName(field, render.FormatPretty)
		typeStr := field.Type
		if field.DeprecationReason != "" {
			typeStr += " @deprecated"
		}
		desc := strings.ReplaceAll(field.Description, "\n", " ")
		t.Row(name, typeStr, desc)
	}
	t.Headers("field", "type", "description")

	return t.String()
}

func matchesHasArgFilter(field *typesystem.Field, hasArgFilter []string) bool {
	for _, argName := range hasArgFilter {
		if field.Arguments().ForName(argName) == nil {
			return false
		}
	}
	return true
}

func isNonNull(t typesystem.Type) bool {
	_, ok := t.(*typesystem.NonNull)
	return ok
}

func matchesFieldFilters(field *typesystem.Field, opts *fieldsOptions, nameRegex *regexp.Regexp) bool {
	if opts.deprecated && !field.IsDeprecated() {
		return false
	}
	if !matchesHasArgFilter(field, opts.hasArg) {
		return false
	}
	if opts.returns != "" && typesystem.NamedOf(field.Type()).TypeName() != opts.returns {
		return false
	}
	if opts.required && !isNonNull(field.Type()) {
		return false
	}
	if opts.nullable && isNonNull(field.Type()) {
		return false
	}
	if opts.hasDescription && field.Description() == "" {
		return false
	}
	if opts.name != "" {
		matched, _ := filepath.Match(opts.name, field.Name())
		if !matched {
			return false
		}
	}
	if nameRegex != nil && !nameRegex.MatchString(field.Name()) {
		return false
	}
	return true
}

func NewFieldsCmd() *cobra.Command {
	opts := &fieldsOptions{}

	cmd := &cobra.Command{
		Use:   "fields [type]",
		Short: "Lists resolved fields on a type or across all types",
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			schema, err := loadSchema()
			if err != nil {
				return nil, cobra.ShellCompDirectiveError
			}

			outputNames := []string{}
			for _, t := range schema.Types() {
				if fieldsOf(t) == nil {
					continue
				}
				name := t.TypeName()
				if strings.Contains(strings.ToLower(name), strings.ToLower(toComplete)) {
					outputNames = append(outputNames, name)
				}
			}

			sort.Strings(outputNames)

			return outputNames, cobra.ShellCompDirectiveNoFileComp
		},
		Args: cobra.MaximumNArgs(1),
		Long: `Lists fields on a type or across all types with optional filtering.

Field types come from the built graph, so a field's type column shows the
fully resolved wrapper chain ([User!]!, not a syntax node). Deprecation is
read off the constructed field; @deprecated with no reason argument shows
the standard default reason.

If a type is specified, shows fields for that type only.
If no type is specified, shows all fields prefixed with their type (User.id, Post.title, etc).

Output formats:
  text    "name: String! # Description", "id: ID!", etc. (default when piping)
  json    [{"name": "id", "type": "ID!", "description": "..."}, ...]
  pretty  Formatted table with columns (default in terminal)

Multiple filters can be combined and are applied with AND logic.`,
		Example: `  # See all fields on a type
  typegraph fields User

  # Find deprecated fields
  typegraph fields --deprecated

  # Find fields with pagination arguments that return a specific type
  typegraph fields --has-arg first --has-arg after --returns User

  # Find fields ending in "Id"
  typegraph fields --name "*Id"

  # Find fields matching a regex pattern
  typegraph fields --name-regex "^(get|fetch)"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFields(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.deprecated, "deprecated", false, "Filter to only show deprecated fields")
	cmd.Flags().StringArrayVar(&opts.hasArg, "has-arg", nil, "Filter to fields that have the given argument (can be specified multiple times)")
	cmd.Flags().StringVar(&opts.returns, "returns", "", "Filter to fields whose resolved type unwraps to the given named type")
	cmd.Flags().BoolVar(&opts.required, "required", false, "Filter to only show required (non-null) fields")
	cmd.Flags().BoolVar(&opts.nullable, "nullable", false, "Filter to only show nullable fields")
	cmd.Flags().StringVar(&opts.name, "name", "", "Filter fields by name using a glob pattern (e.g., *Id, get*)")
	cmd.Flags().StringVar(&opts.nameRegex, "name-regex", "", "Filter fields by name using a regex pattern")
	cmd.Flags().BoolVar(&opts.hasDescription, "has-description", false, "Filter to only show fields that have a description")

	return cmd
}

func runFields(cmd *cobra.Command, args []string, opts *fieldsOptions) error {
	if opts.required && opts.nullable {
		return fmt.Errorf("--required and --nullable cannot be used together")
	}

	var nameRegex *regexp.Regexp
	if opts.nameRegex != "" {
		var err error
		nameRegex, err = regexp.Compile(opts.nameRegex)
		if err != nil {
			return fmt.Errorf("invalid regex pattern for --name-regex: %w", err)
		}
	}

	schema, err := loadCliForSchema()
	if err != nil {
		return err
	}

	var fields []FieldInfo

	if len(args) == 0 {
		// List all fields from all types
		for _, graphType := range schema.Types() {
			for _, field := range fieldsOf(graphType) {
				if !matchesFieldFilters(field, opts, nameRegex) {
					continue
				}
				info := fieldToInfo(field)
				info.TypeName = graphType.TypeName()
				fields = append(fields, info)
			}
		}
	} else {
		// List fields from specific type
		graphType, err := lookupType(schema, args[0], "type")
		if err != nil {
			return err
		}

		typeFields := fieldsOf(graphType)
		if typeFields == nil {
			return fmt.Errorf("'%s' is a %s type and has no fields", args[0], kindName(graphType))
		}

		for _, field := range typeFields {
			if !matchesFieldFilters(field, opts, nameRegex) {
				continue
			}
			fields = append(fields, fieldToInfo(field))
		}
	}

	if len(fields) == 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), "No fields found that match the filters.")
	}

	renderer := render.Renderer[FieldInfo]{
		Data:         fields,
		TextFormat:   formatFieldText,
		PrettyFormat: formatFieldsPretty,
	}

	output, err := renderer.Render(outputFormat)
	if err != nil {
		return fmt.Errorf("error rendering output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), output)
	return nil
}
