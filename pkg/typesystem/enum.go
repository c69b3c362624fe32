package typesystem

import (
	"errors"
	"fmt"
)

// EnumValue is one possible value of an enum type. Its runtime value is
// its own name.
type EnumValue struct {
	name              string
	description       string
	deprecationReason string
}

// EnumValueConfig configures NewEnumValue.
type EnumValueConfig struct {
	Name              string
	Description       string
	DeprecationReason string
}

// NewEnumValue constructs an enum value.
func NewEnumValue(cfg EnumValueConfig) (*EnumValue, error) {
	if cfg.Name == "" {
		return nil, errors.New("enum value must have a name")
	}
	return &EnumValue{
		name:              cfg.Name,
		description:       cfg.Description,
		deprecationReason: cfg.DeprecationReason,
	}, nil
}

// Name returns the value's name.
func (v *EnumValue) Name() string { return v.name }

// Value returns the value's runtime value, which is its name.
func (v *EnumValue) Value() string { return v.name }

// Description returns the value's description.
func (v *EnumValue) Description() string { return v.description }

// IsDeprecated reports whether the value carries a @deprecated directive.
func (v *EnumValue) IsDeprecated() bool { return v.deprecationReason != "" }

// DeprecationReason returns the deprecation reason, or "" if the value is
// not deprecated.
func (v *EnumValue) DeprecationReason() string { return v.deprecationReason }

// EnumValueList is an ordered list of enum values, preserving declaration
// order.
type EnumValueList []*EnumValue

// ForName returns the value with the given name, or nil.
func (l EnumValueList) ForName(name string) *EnumValue {
	for _, v := range l {
		if v.name == name {
			return v
		}
	}
	return nil
}

// Enum is a leaf type with a fixed set of possible values.
type Enum struct {
	name        string
	description string
	values      EnumValueList
}

// EnumConfig configures NewEnum.
type EnumConfig struct {
	Name        string
	Description string
	Values      EnumValueList
}

// NewEnum constructs an enum type. An enum must declare at least one
// value.
func NewEnum(cfg EnumConfig) (*Enum, error) {
	if cfg.Name == "" {
		return nil, errors.New("enum type must have a name")
	}
	if len(cfg.Values) == 0 {
		return nil, fmt.Errorf("enum type %s must declare one or more values", cfg.Name)
	}
	return &Enum{
		name:        cfg.Name,
		description: cfg.Description,
		values:      cfg.Values,
	}, nil
}

// TypeName returns the enum's name.
func (e *Enum) TypeName() string { return e.name }

// Description returns the enum's description.
func (e *Enum) Description() string { return e.description }

func (e *Enum) String() string { return e.name }

// Values returns the enum's values in declaration order.
func (e *Enum) Values() EnumValueList { return e.values }
