/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"
	"github.com/vektah/gqlparser/v2/parser"

	"github.com/typegraph/typegraph/pkg/builder"
	"github.com/typegraph/typegraph/pkg/diagnostic"
)

// ErrCheckFailed is returned when the schema fails to build. This is a
// sentinel error that indicates the schema is broken, not that the
// command itself failed.
var ErrCheckFailed = errors.New("check failed")

// checkError breaks a build failure into the pieces the text renderer
// needs: a location-free message, the source position, the number of
// characters to underline, and an optional help line.
type checkError struct {
	message    string
	pos        *ast.Position
	spanLength int
	help       string
}

// explainBuildError maps the builder's typed errors onto renderable
// diagnostics. Unknown error shapes fall back to a bare message with no
// position.
func explainBuildError(err error) checkError {
	var unknown *builder.UnknownTypeError
	if errors.As(err, &unknown) {
		out := checkError{
			message:    fmt.Sprintf("unknown type '%s'", unknown.Name),
			pos:        unknown.Pos,
			spanLength: len(unknown.Name),
		}
		if unknown.Suggestion != "" {
			out.help = fmt.Sprintf("did you mean `%s`?", unknown.Suggestion)
		}
		return out
	}

	var mismatch *builder.KindMismatchError
	if errors.As(err, &mismatch) {
		return checkError{
			message:    fmt.Sprintf("'%s' is %s, but %s is required here", mismatch.Name, mismatch.Got, mismatch.Want),
			pos:        mismatch.Pos,
			spanLength: len(mismatch.Name),
		}
	}

	var parseErr *gqlerror.Error
	if errors.As(err, &parseErr) {
		out := checkError{message: parseErr.Message, spanLength: 1}
		if len(parseErr.Locations) > 0 {
			out.pos = &ast.Position{
				Line:   parseErr.Locations[0].Line,
				Column: parseErr.Locations[0].Column,
			}
		}
		return out
	}

	return checkError{message: err.Error(), spanLength: 1}
}

func toBuildError(ce checkError) BuildError {
	be := BuildError{Message: ce.message}
	if ce.pos != nil {
		be.Locations = append(be.Locations, Location{Line: ce.pos.Line, Column: ce.pos.Column})
	}
	return be
}

func formatCheckResultText(result *CheckResult, ce checkError, sourceName string, sourceContent string) string {
	if result.Valid {
		return fmt.Sprintf("✓ schema builds: %d types, %d directives\n", result.Types, result.Directives)
	}

	output := "✗ schema failed to build:\n"

	if ce.pos == nil {
		return output + "  " + ce.message + "\n"
	}

	output += diagnostic.RenderLocation(sourceName, ce.pos.Line, ce.pos.Column) + "\n"

	lines := strings.Split(sourceContent, "\n")
	if ce.pos.Line > 0 && ce.pos.Line <= len(lines) {
		sourceLine := lines[ce.pos.Line-1]
		output += diagnostic.RenderSnippet(sourceLine, ce.pos.Line, ce.pos.Column, ce.spanLength, ce.message) + "\n"
	}

	if ce.help != "" {
		output += diagnostic.RenderHelp(ce.help) + "\n"
	}

	return output
}

func NewCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Builds the schema and reports whether the type graph is closed",
		Long: `Builds the schema file into a linked type graph and reports the result.

A passing check means every type reference resolves, every reference
position gets the right kind of type, all default values coerce, and the
schema declares a usable query root. A failing check prints the first
error the builder hit, with a source snippet when the error carries a
position.

Exit codes:
  0 - Schema builds
  1 - Schema has parse or build errors

Output formats:
  text    Human-readable result with source snippets on failure
  json    {"valid": bool, "types": n, "directives": n, "errors": [...]}`,
		Example: `  # Verify the schema in CI
  typegraph check

  # Machine-readable result
  typegraph check -f json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runCheckCmd,
	}

	return cmd
}

func runCheckCmd(cmd *cobra.Command, args []string) error {
	path, err := filepath.Abs(schemaFilePath)
	if err != nil {
		return err
	}

	bytes, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("schema file does not exist: %s", schemaFilePath)
		}
		return err
	}
	sourceContent := string(bytes)
	sourceName := filepath.Base(path)

	var buildErr error
	result := &CheckResult{}

	doc, parseErr := parser.ParseSchemas(&ast.Source{Input: sourceContent, Name: sourceName})
	if parseErr != nil {
		buildErr = parseErr
	} else {
		schema, err := builder.Build(doc, builder.WithLogger(buildLogger()))
		if err != nil {
			buildErr = err
		} else {
			result.Valid = true
			result.Types = len(schema.Types())
			result.Directives = len(schema.Directives())
		}
	}

	var ce checkError
	if buildErr != nil {
		ce = explainBuildError(buildErr)
		result.Errors = append(result.Errors, toBuildError(ce))
	}

	switch outputFormat {
	case "json":
		bytes, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(bytes))
	default:
		fmt.Fprint(cmd.OutOrStdout(), formatCheckResultText(result, ce, sourceName, sourceContent))
	}

	if !result.Valid {
		return ErrCheckFailed
	}

	return nil
}
