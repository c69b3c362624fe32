package builder

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/vektah/gqlparser/v2/ast"
)

// Build failures. Every failure aborts the whole build; no partial schema
// is ever returned.
var (
	// ErrMissingSchemaDefinition is returned when the document contains no
	// schema block.
	ErrMissingSchemaDefinition = errors.New("document does not contain a schema definition")

	// ErrMissingQueryRoot is returned when the schema block declares no
	// query root operation.
	ErrMissingQueryRoot = errors.New("schema definition does not declare a query root type")
)

// UnknownTypeError reports a type reference with no corresponding
// definition and no built-in of that name.
type UnknownTypeError struct {
	Name       string
	Suggestion string
	Pos        *ast.Position
}

func (e *UnknownTypeError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("%sunknown type '%s', did you mean '%s'?", locPrefix(e.Pos), e.Name, e.Suggestion)
	}
	return fmt.Sprintf("%sunknown type '%s'", locPrefix(e.Pos), e.Name)
}

// KindMismatchError reports a name that resolves to a type of the wrong
// kind for its usage position, e.g. a scalar used as a union member.
type KindMismatchError struct {
	Name string
	Want string
	Got  string
	Pos  *ast.Position
}

func (e *KindMismatchError) Error() string {
	return fmt.Sprintf("%s'%s' is %s, but %s is required here", locPrefix(e.Pos), e.Name, e.Got, e.Want)
}

// locPrefix renders "file:line:column: " for errors that carry a source
// position.
func locPrefix(pos *ast.Position) string {
	if pos == nil {
		return ""
	}
	name := "schema"
	if pos.Src != nil && pos.Src.Name != "" {
		name = pos.Src.Name
	}
	return name + ":" + strconv.Itoa(pos.Line) + ":" + strconv.Itoa(pos.Column) + ": "
}
