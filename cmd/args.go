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
	"github.com/typegraph/typegraph/pkg/suggest"
	"github.com/typegraph/typegraph/pkg/typesystem"
)

type argsOptions struct {
	typeFilter     string
	required       bool
	nullable       bool
	name           string
	nameRegex      string
	hasDescription bool
}

func matchesArgFilters(arg *typesystem.Argument, opts *argsOptions, nameRegex *regexp.Regexp) bool {
	if opts.typeFilter != "" && typesystem.NamedOf(arg.Type()).TypeName() != opts.typeFilter {
		return false
	}
	if opts.required && !isNonNull(arg.Type()) {
		return false
	}
	if opts.nullable && isNonNull(arg.Type()) {
		return false
	}
	if opts.hasDescription && arg.Description() == "" {
		return false
	}
	if opts.name != "" {
		matched, _ := filepath.Match(opts.name, arg.Name())
		if !matched {
			return false
		}
	}
	if nameRegex != nil && !nameRegex.MatchString(arg.Name()) {
		return false
	}
	return true
}

func formatArgName(arg ArgInfo) string {
	if arg.TypeName != "" && arg.FieldName != "" {
		return fmt.Sprintf("%s.%s.%s", arg.TypeName, arg.FieldName, arg.Name)
	}
	return arg.Name
}

func formatArgText(arg ArgInfo) string {
	name := formatArgName(arg)

	typeStr := arg.Type
	if arg.DefaultValue != "" {
		typeStr += " = " + arg.DefaultValue
	}

	desc := ""
	if arg.Description != "" {
		desc = " # " + strings.ReplaceAll(arg.Description, "\n", " ")
	}
	return fmt.Sprintf("%s: %s%s", name, typeStr, desc)
}

func formatArgsPretty(args []ArgInfo) string {
	t := makeTable()

	for _, arg := range args {
		name := formatArgName(arg)
		typeStr := arg.Type
		if arg.DefaultValue != "" {
			typeStr += " = " + arg.DefaultValue
		}
		desc := strings.ReplaceAll(arg.Description, "\n", " ")
		t.Row(name, typeStr, desc)
	}
	t.Headers("argument", "type", "description")

	return t.String()
}

func argToInfo(arg *typesystem.Argument) ArgInfo {
	value, declared := arg.DefaultValue()

	return ArgInfo{
		Name:         arg.Name(),
		Type:         arg.Type().String(),
		DefaultValue: formatDefault(value, declared),
		Description:  arg.Description(),
	}
}

func NewArgsCmd() *cobra.Command {
	opts := &argsOptions{}

	cmd := &cobra.Command{
		Use:   "args [field]",
		Short: "Lists arguments on fields with coerced default values.",
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			schema, err := loadSchema()
			if err != nil {
				return nil, cobra.ShellCompDirectiveError
			}

			outputNames := []string{}
			for _, t := range schema.Types() {
				for _, field := range fieldsOf(t) {
					if len(field.Arguments()) == 0 {
						continue
					}
					fieldName := fmt.Sprintf("%s.%s", t.TypeName(), field.Name())
					if strings.Contains(strings.ToLower(fieldName), strings.ToLower(toComplete)) {
						outputNames = append(outputNames, fieldName)
					}
				}
			}

			sort.Strings(outputNames)

			return outputNames, cobra.ShellCompDirectiveNoFileComp
		},
		Args: cobra.MaximumNArgs(1),
		Long: `Lists arguments on fields in the built schema.

Default values are shown as the builder coerced them (JSON), not as raw
SDL literals: input object defaults include fields filled in from their
own declared defaults.

If a field is specified (as Type.field), only arguments for that field are shown.
If no field is specified, all arguments for all fields are shown.`,
		Example: `  # Show the arguments of one field with their defaults
  typegraph args Query.search

  # Find every required argument in the schema
  typegraph args --required

  # Find arguments of a given input type
  typegraph args --type FilterInput`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runArgs(cmd, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.typeFilter, "type", "", "Filter to arguments whose type unwraps to the given named type")
	cmd.Flags().BoolVar(&opts.required, "required", false, "Filter to only show required (non-null) arguments")
	cmd.Flags().BoolVar(&opts.nullable, "nullable", false, "Filter to only show nullable arguments")
	cmd.Flags().StringVar(&opts.name, "name", "", "Filter arguments by name using a glob pattern (e.g., *Id, first*)")
	cmd.Flags().StringVar(&opts.nameRegex, "name-regex", "", "Filter arguments by name using a regex pattern")
	cmd.Flags().BoolVar(&opts.hasDescription, "has-description", false, "Filter to only show arguments that have a description")

	return cmd
}

func runArgs(cmd *cobra.Command, args []string, opts *argsOptions) error {
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

	var argInfos []ArgInfo

	if len(args) == 0 {
		// List all arguments from all fields
		for _, graphType := range schema.Types() {
			for _, field := range fieldsOf(graphType) {
				for _, arg := range field.Arguments() {
					if !matchesArgFilters(arg, opts, nameRegex) {
						continue
					}
					info := argToInfo(arg)
					info.TypeName = graphType.TypeName()
					info.FieldName = field.Name()
					argInfos = append(argInfos, info)
				}
			}
		}
	} else {
		// Parse Type.field format
		fieldPath := args[0]
		parts := strings.Split(fieldPath, ".")
		if len(parts) != 2 {
			return fmt.Errorf("field must be specified as Type.field (e.g., Query.user)")
		}
		typeName, fieldName := parts[0], parts[1]

		graphType, err := lookupType(schema, typeName, "type")
		if err != nil {
			return err
		}
		typeFields := fieldsOf(graphType)

		field := typeFields.ForName(fieldName)
		if field == nil {
			if suggestion := suggest.Closest(fieldName, pluck(typeFields, func(f *typesystem.Field) string { return f.Name() })); suggestion != "" {
				return fmt.Errorf("field '%s' does not exist on type '%s', did you mean '%s'?", fieldName, typeName, suggestion)
			}
			return fmt.Errorf("field '%s' does not exist on type '%s'", fieldName, typeName)
		}

		for _, arg := range field.Arguments() {
			if !matchesArgFilters(arg, opts, nameRegex) {
				continue
			}
			argInfos = append(argInfos, argToInfo(arg))
		}
	}

	if len(argInfos) == 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), "No arguments found that match the filters.")
	}

	renderer := render.Renderer[ArgInfo]{
		Data:         argInfos,
		TextFormat:   formatArgText,
		PrettyFormat: formatArgsPretty,
	}

	output, err := renderer.Render(outputFormat)
	if err != nil {
		return fmt.Errorf("error rendering output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), output)
	return nil
}
