package typesystem

import "fmt"

// Interface is an abstract output type. Like Object it is built in two
// phases so cyclic field references always find the identity-stable shell.
//
// Interfaces carry no runtime type resolution here; resolving a concrete
// object for a value is the execution engine's concern.
type Interface struct {
	name        string
	description string
	interfaces  []*Interface
	fields      FieldList
}

// NewInterface creates an interface type shell. Call Define to install its
// fields before the type is used.
func NewInterface(name, description string) *Interface {
	return &Interface{name: name, description: description}
}

// Define installs the interface's fields and the interfaces it implements
// itself. An interface must define at least one field.
func (i *Interface) Define(fields FieldList, interfaces []*Interface) error {
	if len(fields) == 0 {
		return fmt.Errorf("interface type %s must define one or more fields", i.name)
	}
	i.fields = fields
	i.interfaces = interfaces
	return nil
}

// TypeName returns the interface's name.
func (i *Interface) TypeName() string { return i.name }

// Description returns the interface's description.
func (i *Interface) Description() string { return i.description }

func (i *Interface) String() string { return i.name }

// Fields returns the interface's fields in declaration order.
func (i *Interface) Fields() FieldList { return i.fields }

// Interfaces returns the interfaces this interface implements.
func (i *Interface) Interfaces() []*Interface { return i.interfaces }

// Implements reports whether this interface implements the named interface.
func (i *Interface) Implements(name string) bool {
	for _, iface := range i.interfaces {
		if iface.TypeName() == name {
			return true
		}
	}
	return false
}
