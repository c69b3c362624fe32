// Package literal coerces AST value nodes into native Go values of a
// declared type-system type. It is used for default values on arguments
// and input object fields, where the literal is written directly in the
// schema document.
package literal

import (
	"fmt"
	"strconv"

	"github.com/vektah/gqlparser/v2/ast"

	"github.com/typegraph/typegraph/pkg/typesystem"
)

// CoercionError reports a literal that cannot be coerced to its declared
// type.
type CoercionError struct {
	Value  string
	Type   string
	Reason string
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("cannot coerce %s to %s: %s", e.Value, e.Type, e.Reason)
}

func coercionErr(v *ast.Value, t typesystem.Type, reason string) error {
	return &CoercionError{Value: v.String(), Type: t.String(), Reason: reason}
}

// Coerce converts an AST value node into a native value of the declared
// type. Int becomes int64, Float float64, String and ID string, Boolean
// bool, enums their value name, lists []any and input objects
// map[string]any. A literal that does not fit the declared type fails.
func Coerce(v *ast.Value, t typesystem.Type) (any, error) {
	if v == nil {
		return nil, fmt.Errorf("cannot coerce missing value to %s", t)
	}
	if v.Kind == ast.Variable {
		return nil, coercionErr(v, t, "variable references are not allowed in schema documents")
	}

	switch t := t.(type) {
	case *typesystem.NonNull:
		if v.Kind == ast.NullValue {
			return nil, coercionErr(v, t, "null is not allowed for a non-null type")
		}
		return Coerce(v, t.OfType())

	case *typesystem.List:
		if v.Kind == ast.NullValue {
			return nil, nil
		}
		if v.Kind != ast.ListValue {
			// A single value is promoted to a one-element list.
			item, err := Coerce(v, t.OfType())
			if err != nil {
				return nil, err
			}
			return []any{item}, nil
		}
		items := make([]any, 0, len(v.Children))
		for _, child := range v.Children {
			item, err := Coerce(child.Value, t.OfType())
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		return items, nil
	}

	if v.Kind == ast.NullValue {
		return nil, nil
	}

	switch t := t.(type) {
	case *typesystem.Scalar:
		return coerceScalar(v, t)
	case *typesystem.Enum:
		return coerceEnum(v, t)
	case *typesystem.InputObject:
		return coerceInputObject(v, t)
	}
	return nil, coercionErr(v, t, "not an input type")
}

func coerceScalar(v *ast.Value, t *typesystem.Scalar) (any, error) {
	switch t.TypeName() {
	case "Int":
		if v.Kind != ast.IntValue {
			return nil, coercionErr(v, t, "expected an integer literal")
		}
		n, err := strconv.ParseInt(v.Raw, 10, 64)
		if err != nil {
			return nil, coercionErr(v, t, "integer out of range")
		}
		return n, nil

	case "Float":
		if v.Kind != ast.IntValue && v.Kind != ast.FloatValue {
			return nil, coercionErr(v, t, "expected a numeric literal")
		}
		f, err := strconv.ParseFloat(v.Raw, 64)
		if err != nil {
			return nil, coercionErr(v, t, "malformed float")
		}
		return f, nil

	case "String":
		if v.Kind != ast.StringValue && v.Kind != ast.BlockValue {
			return nil, coercionErr(v, t, "expected a string literal")
		}
		return v.Raw, nil

	case "Boolean":
		if v.Kind != ast.BooleanValue {
			return nil, coercionErr(v, t, "expected a boolean literal")
		}
		return v.Raw == "true", nil

	case "ID":
		if v.Kind != ast.StringValue && v.Kind != ast.IntValue {
			return nil, coercionErr(v, t, "expected a string or integer literal")
		}
		return v.Raw, nil
	}

	// Custom scalars built from SDL carry no parse behavior, so the literal
	// passes through as its plain Go value.
	return rawValue(v), nil
}

func coerceEnum(v *ast.Value, t *typesystem.Enum) (any, error) {
	if v.Kind != ast.EnumValue {
		return nil, coercionErr(v, t, "expected an enum value name")
	}
	if t.Values().ForName(v.Raw) == nil {
		return nil, coercionErr(v, t, fmt.Sprintf("%s is not a value of %s", v.Raw, t.TypeName()))
	}
	return v.Raw, nil
}

func coerceInputObject(v *ast.Value, t *typesystem.InputObject) (any, error) {
	if v.Kind != ast.ObjectValue {
		return nil, coercionErr(v, t, "expected an input object literal")
	}

	result := make(map[string]any, len(v.Children))
	for _, child := range v.Children {
		field := t.Fields().ForName(child.Name)
		if field == nil {
			return nil, coercionErr(v, t, fmt.Sprintf("field %s is not defined on %s", child.Name, t.TypeName()))
		}
		value, err := Coerce(child.Value, field.Type())
		if err != nil {
			return nil, err
		}
		result[child.Name] = value
	}

	for _, field := range t.Fields() {
		if _, present := result[field.Name()]; present {
			continue
		}
		if def, ok := field.DefaultValue(); ok {
			result[field.Name()] = def
			continue
		}
		if _, required := field.Type().(*typesystem.NonNull); required {
			return nil, coercionErr(v, t, fmt.Sprintf("required field %s is missing", field.Name()))
		}
	}
	return result, nil
}

// rawValue converts a literal to its plain Go value without consulting a
// target type.
func rawValue(v *ast.Value) any {
	switch v.Kind {
	case ast.IntValue:
		n, err := strconv.ParseInt(v.Raw, 10, 64)
		if err != nil {
			return v.Raw
		}
		return n
	case ast.FloatValue:
		f, err := strconv.ParseFloat(v.Raw, 64)
		if err != nil {
			return v.Raw
		}
		return f
	case ast.BooleanValue:
		return v.Raw == "true"
	case ast.NullValue:
		return nil
	case ast.ListValue:
		items := make([]any, 0, len(v.Children))
		for _, child := range v.Children {
			items = append(items, rawValue(child.Value))
		}
		return items
	case ast.ObjectValue:
		fields := make(map[string]any, len(v.Children))
		for _, child := range v.Children {
			fields[child.Name] = rawValue(child.Value)
		}
		return fields
	}
	return v.Raw
}
