/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/typegraph/typegraph/pkg/render"
	"github.com/typegraph/typegraph/pkg/typesystem"
)

type directivesOptions struct {
	location string
}

func directiveToInfo(d *typesystem.Directive) DirectiveInfo {
	var locations []string
	for _, loc := range d.Locations() {
		locations = append(locations, string(loc))
	}

	var args []ArgumentInfo
	for _, arg := range d.Arguments() {
		args = append(args, ArgumentInfo{
			Name: arg.Name(),
			Type: arg.Type().String(),
		})
	}

	return DirectiveInfo{
		Name:        d.Name(),
		Locations:   locations,
		Arguments:   args,
		Description: d.Description(),
	}
}

func formatDirectiveText(d DirectiveInfo) string {
	name := "@" + d.Name
	if len(d.Arguments) > 0 {
		var args []string
		for _, arg := range d.Arguments {
			args = append(args, fmt.Sprintf("%s: %s", arg.Name, arg.Type))
		}
		name = fmt.Sprintf("%s(%s)", name, strings.Join(args, ", "))
	}
	return fmt.Sprintf("%s on %s", name, strings.Join(d.Locations, " | "))
}

func formatDirectivesPretty(directives []DirectiveInfo) string {
	t := makeTable()

	for _, d := range directives {
		var args []string
		for _, arg := range d.Arguments {
			args = append(args, fmt.Sprintf("%s: %s", arg.Name, arg.Type))
		}
		desc := strings.ReplaceAll(d.Description, "\n", " ")
		t.Row("@"+d.Name, strings.Join(args, ", "), strings.Join(d.Locations, ", "), desc)
	}
	t.Headers("directive", "arguments", "locations", "description")

	return t.String()
}

func NewDirectivesCmd() *cobra.Command {
	opts := &directivesOptions{}

	cmd := &cobra.Command{
		Use:   "directives",
		Short: "Lists directives declared by the schema",
		Long: `Lists the directives the schema declares, with their valid locations
and argument types.

Only directives with a definition in the schema file are shown; built-in
directives like @deprecated are applied during the build (they feed field
and enum value deprecation) but are not declarations of this schema.

Output formats:
  text    "@auth(role: Role!) on FIELD_DEFINITION" (default when piping)
  json    [{"name": "auth", "locations": [...], "arguments": [...]}, ...]
  pretty  Formatted table with columns (default in terminal)`,
		Example: `  # List all declared directives
  typegraph directives

  # Find directives usable on field definitions
  typegraph directives --location FIELD_DEFINITION`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDirectives(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.location, "location", "", "Filter to directives valid at the given location (e.g., FIELD_DEFINITION)")

	return cmd
}

func runDirectives(cmd *cobra.Command, opts *directivesOptions) error {
	var locationFilter typesystem.DirectiveLocation
	if opts.location != "" {
		var err error
		locationFilter, err = typesystem.ParseDirectiveLocation(strings.ToUpper(opts.location))
		if err != nil {
			return fmt.Errorf("invalid --location: %w", err)
		}
	}

	schema, err := loadCliForSchema()
	if err != nil {
		return err
	}

	var directives []DirectiveInfo
	for _, d := range schema.Directives() {
		if locationFilter != "" {
			found := false
			for _, loc := range d.Locations() {
				if loc == locationFilter {
					found = true
					break
				}
			}
			if !found {
				continue
			}
		}
		directives = append(directives, directiveToInfo(d))
	}

	if len(directives) == 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), "No directives found that match the filters.")
	}

	renderer := render.Renderer[DirectiveInfo]{
		Data:         directives,
		TextFormat:   formatDirectiveText,
		PrettyFormat: formatDirectivesPretty,
	}

	output, err := renderer.Render(outputFormat)
	if err != nil {
		return fmt.Errorf("error rendering output: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), output)
	return nil
}
