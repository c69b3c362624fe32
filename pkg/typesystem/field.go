package typesystem

import (
	"errors"
	"fmt"
)

// Argument is a named input value on a field or directive.
type Argument struct {
	name         string
	description  string
	typ          Type
	defaultValue any
	hasDefault   bool
}

// ArgumentConfig configures NewArgument. HasDefault distinguishes "no
// default declared" from an explicit null default.
type ArgumentConfig struct {
	Name         string
	Description  string
	Type         Type
	DefaultValue any
	HasDefault   bool
}

// NewArgument constructs an argument. Type must be an input type.
func NewArgument(cfg ArgumentConfig) (*Argument, error) {
	if cfg.Name == "" {
		return nil, errors.New("argument must have a name")
	}
	if cfg.Type == nil {
		return nil, fmt.Errorf("argument %s must have a type", cfg.Name)
	}
	if !IsInputType(cfg.Type) {
		return nil, fmt.Errorf("argument %s must have an input type, got %s", cfg.Name, cfg.Type)
	}
	return &Argument{
		name:         cfg.Name,
		description:  cfg.Description,
		typ:          cfg.Type,
		defaultValue: cfg.DefaultValue,
		hasDefault:   cfg.HasDefault,
	}, nil
}

// Name returns the argument's name.
func (a *Argument) Name() string { return a.name }

// Description returns the argument's description.
func (a *Argument) Description() string { return a.description }

// Type returns the argument's declared input type.
func (a *Argument) Type() Type {
	a.typ = resolveRef(a.typ)
	return a.typ
}

// DefaultValue returns the coerced default value and whether one was
// declared.
func (a *Argument) DefaultValue() (any, bool) {
	return a.defaultValue, a.hasDefault
}

// SetDefault installs a declared default value after construction.
// Coercing an input object literal needs the complete field list of its
// target type, so defaults are installed once the whole graph is built,
// the same two-phase split Define uses for fields.
func (a *Argument) SetDefault(value any) {
	a.defaultValue = value
	a.hasDefault = true
}

// ArgumentList is an ordered list of arguments, preserving declaration
// order.
type ArgumentList []*Argument

// ForName returns the argument with the given name, or nil.
func (l ArgumentList) ForName(name string) *Argument {
	for _, a := range l {
		if a.name == name {
			return a
		}
	}
	return nil
}

// Field is a named output value on an object or interface type.
type Field struct {
	name              string
	description       string
	typ               Type
	args              ArgumentList
	deprecationReason string
}

// FieldConfig configures NewField.
type FieldConfig struct {
	Name              string
	Description       string
	Type              Type
	Arguments         ArgumentList
	DeprecationReason string
}

// NewField constructs a field. Type must be an output type; it may be a
// TypeRef when the concrete type is not built yet.
func NewField(cfg FieldConfig) (*Field, error) {
	if cfg.Name == "" {
		return nil, errors.New("field must have a name")
	}
	if cfg.Type == nil {
		return nil, fmt.Errorf("field %s must have a type", cfg.Name)
	}
	if !IsOutputType(cfg.Type) {
		return nil, fmt.Errorf("field %s must have an output type, got %s", cfg.Name, cfg.Type)
	}
	return &Field{
		name:              cfg.Name,
		description:       cfg.Description,
		typ:               cfg.Type,
		args:              cfg.Arguments,
		deprecationReason: cfg.DeprecationReason,
	}, nil
}

// Name returns the field's name.
func (f *Field) Name() string { return f.name }

// Description returns the field's description.
func (f *Field) Description() string { return f.description }

// Type returns the field's return type. Deferred references are resolved
// to the concrete instance on first access, so the result is always
// identity-equal to the built type of the same name.
func (f *Field) Type() Type {
	f.typ = resolveRef(f.typ)
	return f.typ
}

// Arguments returns the field's arguments in declaration order.
func (f *Field) Arguments() ArgumentList { return f.args }

// IsDeprecated reports whether the field carries a @deprecated directive.
func (f *Field) IsDeprecated() bool { return f.deprecationReason != "" }

// DeprecationReason returns the deprecation reason, or "" if the field is
// not deprecated.
func (f *Field) DeprecationReason() string { return f.deprecationReason }

// FieldList is an ordered list of fields, preserving declaration order.
type FieldList []*Field

// ForName returns the field with the given name, or nil.
func (l FieldList) ForName(name string) *Field {
	for _, f := range l {
		if f.name == name {
			return f
		}
	}
	return nil
}
