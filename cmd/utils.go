package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"

	"github.com/typegraph/typegraph/pkg/builder"
	"github.com/typegraph/typegraph/pkg/suggest"
	"github.com/typegraph/typegraph/pkg/typesystem"
)

var tableStyle = lipgloss.NewStyle().PaddingRight(1)

func makeTable() *table.Table {
	return table.New().
		Width(120).
		Wrap(true).
		StyleFunc(func(row, col int) lipgloss.Style {
			return tableStyle
		})
}

// kindName returns the SDL keyword for a built named type.
func kindName(t typesystem.NamedType) string {
	switch t.(type) {
	case *typesystem.Scalar:
		return "scalar"
	case *typesystem.Object:
		return "type"
	case *typesystem.Interface:
		return "interface"
	case *typesystem.Union:
		return "union"
	case *typesystem.Enum:
		return "enum"
	case *typesystem.InputObject:
		return "input"
	}
	return "unknown"
}

// lookupType finds a named type in the built schema and returns a helpful
// error with a "did you mean" suggestion if it doesn't exist.
// The context parameter customizes the error message (e.g., "type", "enum").
func lookupType(schema *typesystem.Schema, typeName, context string) (typesystem.NamedType, error) {
	if t := schema.Type(typeName); t != nil {
		return t, nil
	}
	var typeNames []string
	for _, t := range schema.Types() {
		typeNames = append(typeNames, t.TypeName())
	}
	sort.Strings(typeNames)
	if suggestion := suggest.Closest(typeName, typeNames); suggestion != "" {
		return nil, fmt.Errorf("%s '%s' does not exist in schema, did you mean '%s'?", context, typeName, suggestion)
	}
	return nil, fmt.Errorf("%s '%s' does not exist in schema", context, typeName)
}

// formatDefault renders a coerced default value for display.
func formatDefault(value any, declared bool) string {
	if !declared {
		return ""
	}
	if value == nil {
		return "null"
	}
	bytes, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprintf("%v", value)
	}
	return string(bytes)
}

func pluck[T any, R any](items []T, fn func(T) R) []R {
	var result []R
	for _, item := range items {
		result = append(result, fn(item))
	}
	return result
}

// fieldsOf returns the field list of an object or interface type, or nil
// for field-less kinds.
func fieldsOf(t typesystem.NamedType) typesystem.FieldList {
	switch t := t.(type) {
	case *typesystem.Object:
		return t.Fields()
	case *typesystem.Interface:
		return t.Fields()
	}
	return nil
}

func loadSchema() (*typesystem.Schema, error) {
	path, err := filepath.Abs(schemaFilePath)
	if err != nil {
		return nil, err
	}

	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	source := &ast.Source{
		Input: string(bytes),
		Name:  filepath.Base(path),
	}
	return builder.BuildSchemaWithOptions([]builder.Option{builder.WithLogger(buildLogger())}, source)
}

func loadCliForSchema() (*typesystem.Schema, error) {
	schema, err := loadSchema()

	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("schema file does not exist: %s", schemaFilePath)
		}
		var parsingError *gqlerror.Error

		if errors.As(err, &parsingError) {
			return nil, fmt.Errorf("GraphQL schema parsing error: %v", parsingError)
		}

		return nil, fmt.Errorf("schema build error: %v", err)
	}

	return schema, nil
}
