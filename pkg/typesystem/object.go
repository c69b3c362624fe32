package typesystem

import "fmt"

// IsTypeOfFunc reports whether an internal value belongs to the object
// type during abstract type resolution.
type IsTypeOfFunc func(value any) (bool, error)

// Object is a composite output type.
//
// Objects are built in two phases: NewObject creates an identity-stable
// shell that can immediately be referenced (and cached) by other types,
// and Define installs fields and interfaces afterwards. This is what lets
// two objects reference each other through their fields without either
// construction recursing into the other.
type Object struct {
	name        string
	description string
	interfaces  []*Interface
	fields      FieldList
	isTypeOf    IsTypeOfFunc
}

// NewObject creates an object type shell. Call Define to install its
// fields before the type is used.
func NewObject(name, description string) *Object {
	return &Object{name: name, description: description}
}

// Define installs the object's fields, implemented interfaces and optional
// type discriminator. An object must define at least one field.
func (o *Object) Define(fields FieldList, interfaces []*Interface, isTypeOf IsTypeOfFunc) error {
	if len(fields) == 0 {
		return fmt.Errorf("object type %s must define one or more fields", o.name)
	}
	o.fields = fields
	o.interfaces = interfaces
	o.isTypeOf = isTypeOf
	return nil
}

// TypeName returns the object's name.
func (o *Object) TypeName() string { return o.name }

// Description returns the object's description.
func (o *Object) Description() string { return o.description }

func (o *Object) String() string { return o.name }

// Fields returns the object's fields in declaration order.
func (o *Object) Fields() FieldList { return o.fields }

// Interfaces returns the interfaces the object implements.
func (o *Object) Interfaces() []*Interface { return o.interfaces }

// Implements reports whether the object implements the named interface.
func (o *Object) Implements(name string) bool {
	for _, iface := range o.interfaces {
		if iface.TypeName() == name {
			return true
		}
	}
	return false
}

// IsTypeOf invokes the object's type discriminator. Objects constructed
// without one fail with ErrUnsupportedBehavior.
func (o *Object) IsTypeOf(value any) (bool, error) {
	if o.isTypeOf == nil {
		return false, fmt.Errorf("object type %s cannot discriminate values: %w", o.name, ErrUnsupportedBehavior)
	}
	return o.isTypeOf(value)
}
