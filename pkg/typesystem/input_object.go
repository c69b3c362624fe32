package typesystem

import (
	"errors"
	"fmt"
)

// InputField is a named input value on an input object type.
type InputField struct {
	name         string
	description  string
	typ          Type
	defaultValue any
	hasDefault   bool
}

// InputFieldConfig configures NewInputField.
type InputFieldConfig struct {
	Name         string
	Description  string
	Type         Type
	DefaultValue any
	HasDefault   bool
}

// NewInputField constructs an input field. Type must be an input type.
func NewInputField(cfg InputFieldConfig) (*InputField, error) {
	if cfg.Name == "" {
		return nil, errors.New("input field must have a name")
	}
	if cfg.Type == nil {
		return nil, fmt.Errorf("input field %s must have a type", cfg.Name)
	}
	if !IsInputType(cfg.Type) {
		return nil, fmt.Errorf("input field %s must have an input type, got %s", cfg.Name, cfg.Type)
	}
	return &InputField{
		name:         cfg.Name,
		description:  cfg.Description,
		typ:          cfg.Type,
		defaultValue: cfg.DefaultValue,
		hasDefault:   cfg.HasDefault,
	}, nil
}

// Name returns the input field's name.
func (f *InputField) Name() string { return f.name }

// Description returns the input field's description.
func (f *InputField) Description() string { return f.description }

// Type returns the input field's declared type.
func (f *InputField) Type() Type {
	f.typ = resolveRef(f.typ)
	return f.typ
}

// DefaultValue returns the coerced default value and whether one was
// declared.
func (f *InputField) DefaultValue() (any, bool) {
	return f.defaultValue, f.hasDefault
}

// SetDefault installs a declared default value after construction, once
// the target type graph is complete.
func (f *InputField) SetDefault(value any) {
	f.defaultValue = value
	f.hasDefault = true
}

// InputFieldList is an ordered list of input fields, preserving
// declaration order.
type InputFieldList []*InputField

// ForName returns the input field with the given name, or nil.
func (l InputFieldList) ForName(name string) *InputField {
	for _, f := range l {
		if f.name == name {
			return f
		}
	}
	return nil
}

// InputObject is a composite input type. Like Object it is built in two
// phases: input objects may reference each other through nullable fields,
// and the identity-stable shell is what breaks that cycle.
type InputObject struct {
	name        string
	description string
	fields      InputFieldList
}

// NewInputObject creates an input object type shell. Call Define to
// install its fields before the type is used.
func NewInputObject(name, description string) *InputObject {
	return &InputObject{name: name, description: description}
}

// Define installs the input object's fields. An input object must define
// at least one field.
func (io *InputObject) Define(fields InputFieldList) error {
	if len(fields) == 0 {
		return fmt.Errorf("input object type %s must define one or more fields", io.name)
	}
	io.fields = fields
	return nil
}

// TypeName returns the input object's name.
func (io *InputObject) TypeName() string { return io.name }

// Description returns the input object's description.
func (io *InputObject) Description() string { return io.description }

func (io *InputObject) String() string { return io.name }

// Fields returns the input object's fields in declaration order.
func (io *InputObject) Fields() InputFieldList { return io.fields }
