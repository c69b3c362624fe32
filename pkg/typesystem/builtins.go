package typesystem

import (
	"fmt"
	"math"
	"strconv"
)

// The five built-in scalars. They are pre-seeded into every build and take
// precedence over user definitions of the same name.
var (
	Int = mustScalar(ScalarConfig{
		Name:        "Int",
		Description: "The `Int` scalar type represents non-fractional signed whole numeric values.",
		Serialize:   serializeInt,
	})

	Float = mustScalar(ScalarConfig{
		Name:        "Float",
		Description: "The `Float` scalar type represents signed double-precision fractional values.",
		Serialize:   serializeFloat,
	})

	String = mustScalar(ScalarConfig{
		Name:        "String",
		Description: "The `String` scalar type represents textual data, represented as UTF-8 character sequences.",
		Serialize:   serializeString,
	})

	Boolean = mustScalar(ScalarConfig{
		Name:        "Boolean",
		Description: "The `Boolean` scalar type represents `true` or `false`.",
		Serialize:   serializeBoolean,
	})

	ID = mustScalar(ScalarConfig{
		Name:        "ID",
		Description: "The `ID` scalar type represents a unique identifier, serialized as a string.",
		Serialize:   serializeID,
	})
)

// Builtins returns the built-in scalars in their canonical order.
func Builtins() []*Scalar {
	return []*Scalar{Int, Float, String, Boolean, ID}
}

// IsBuiltin reports whether name is one of the built-in scalar names.
func IsBuiltin(name string) bool {
	switch name {
	case "Int", "Float", "String", "Boolean", "ID":
		return true
	}
	return false
}

func mustScalar(cfg ScalarConfig) *Scalar {
	s, err := NewScalar(cfg)
	if err != nil {
		panic(err)
	}
	return s
}

func serializeInt(value any) (any, error) {
	switch v := value.(type) {
	case int:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int64:
		return v, nil
	case float64:
		if v != math.Trunc(v) || v > math.MaxInt32 || v < math.MinInt32 {
			return nil, fmt.Errorf("cannot serialize %v as Int", v)
		}
		return int64(v), nil
	case bool:
		if v {
			return int64(1), nil
		}
		return int64(0), nil
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("cannot serialize %q as Int", v)
		}
		return n, nil
	}
	return nil, fmt.Errorf("cannot serialize %T as Int", value)
}

func serializeFloat(value any) (any, error) {
	switch v := value.(type) {
	case int:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case float32:
		return float64(v), nil
	case float64:
		return v, nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("cannot serialize %q as Float", v)
		}
		return f, nil
	}
	return nil, fmt.Errorf("cannot serialize %T as Float", value)
}

func serializeString(value any) (any, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	}
	return nil, fmt.Errorf("cannot serialize %T as String", value)
}

func serializeBoolean(value any) (any, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case int:
		return v != 0, nil
	case int64:
		return v != 0, nil
	}
	return nil, fmt.Errorf("cannot serialize %T as Boolean", value)
}

func serializeID(value any) (any, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	}
	return nil, fmt.Errorf("cannot serialize %T as ID", value)
}
