// Package typesystem holds the linked, queryable representation of a GraphQL
// schema: named types, wrapping types, directives and the schema itself.
//
// Instances are built once (usually by pkg/builder) and then shared freely.
// Named types may reference each other, including circularly; the package
// never copies a named type, so two references to the same name are always
// the same instance.
//
// Types built from an SDL document alone carry no runtime behavior. Invoking
// behavior that cannot be derived from the AST (scalar serialization, union
// type resolution, object type discrimination) fails with
// ErrUnsupportedBehavior at call time, never at construction time.
package typesystem

import "errors"

// ErrUnsupportedBehavior is returned when runtime behavior is invoked on a
// type that was constructed without it (for example a custom scalar built
// from SDL, which has no serialize function).
var ErrUnsupportedBehavior = errors.New("runtime behavior was not configured on this type")

// Type is implemented by every node that can appear in a type position:
// the six named types, List, NonNull, and TypeRef.
type Type interface {
	// String renders the type the way it is written in SDL, e.g. "[User!]!".
	String() string
}

// NamedType is a type identified by a unique name: Scalar, Object,
// Interface, Union, Enum or InputObject.
type NamedType interface {
	Type
	TypeName() string
	Description() string
}

// ResolveRefFunc returns the built instance for a type name. It backs
// TypeRef and is provided by whoever owns the build (see pkg/builder).
type ResolveRefFunc func(name string) NamedType

// TypeRef is a deferred reference to a named type, carrying only the name.
// It stands in for types that were not yet constructed when a field's type
// was resolved, breaking reference cycles between mutually-referencing
// types. The first Deref resolves and memoizes the concrete instance.
type TypeRef struct {
	name     string
	resolve  ResolveRefFunc
	resolved NamedType
}

// NewTypeRef creates a deferred reference to the named type. The resolve
// function must return the single built instance for the name once the
// owning build has completed.
func NewTypeRef(name string, resolve ResolveRefFunc) *TypeRef {
	return &TypeRef{name: name, resolve: resolve}
}

// TypeName returns the referenced type's name.
func (r *TypeRef) TypeName() string { return r.name }

func (r *TypeRef) String() string { return r.name }

// Deref resolves the reference to the concrete named type. The result is
// memoized, so repeated calls return the identical instance.
func (r *TypeRef) Deref() NamedType {
	if r.resolved == nil && r.resolve != nil {
		r.resolved = r.resolve(r.name)
		r.resolve = nil
	}
	return r.resolved
}

// resolveRef replaces any TypeRef inside t with the concrete instance it
// refers to. Wrapping types are patched in place so their identity is
// stable across calls.
func resolveRef(t Type) Type {
	switch t := t.(type) {
	case *TypeRef:
		if resolved := t.Deref(); resolved != nil {
			return resolved
		}
	case *List:
		t.ofType = resolveRef(t.ofType)
	case *NonNull:
		t.ofType = resolveRef(t.ofType)
	}
	return t
}

// List is the list wrapping type.
type List struct {
	ofType Type
}

// NewList wraps ofType in a list.
func NewList(ofType Type) *List {
	return &List{ofType: ofType}
}

// OfType returns the element type.
func (l *List) OfType() Type {
	l.ofType = resolveRef(l.ofType)
	return l.ofType
}

func (l *List) String() string { return "[" + l.ofType.String() + "]" }

// NonNull is the non-null wrapping type.
type NonNull struct {
	ofType Type
}

// NewNonNull wraps ofType in a non-null. A non-null cannot wrap another
// non-null.
func NewNonNull(ofType Type) (*NonNull, error) {
	if _, ok := ofType.(*NonNull); ok {
		return nil, errors.New("non-null type cannot wrap another non-null type")
	}
	return &NonNull{ofType: ofType}, nil
}

// OfType returns the wrapped type.
func (n *NonNull) OfType() Type {
	n.ofType = resolveRef(n.ofType)
	return n.ofType
}

func (n *NonNull) String() string { return n.ofType.String() + "!" }

// NamedOf strips all List and NonNull wrappers and derefs any TypeRef,
// returning the underlying named type.
func NamedOf(t Type) NamedType {
	for {
		switch wrapped := t.(type) {
		case *List:
			t = wrapped.OfType()
		case *NonNull:
			t = wrapped.OfType()
		case *TypeRef:
			return wrapped.Deref()
		case NamedType:
			return wrapped
		default:
			return nil
		}
	}
}

// IsInputType reports whether t may appear in an input position: arguments,
// input object fields and directive arguments.
func IsInputType(t Type) bool {
	switch t := t.(type) {
	case *List:
		return IsInputType(t.ofType)
	case *NonNull:
		return IsInputType(t.ofType)
	case *Scalar, *Enum, *InputObject:
		return true
	}
	return false
}

// IsOutputType reports whether t may appear in an output position: field
// return types. A TypeRef counts as output because deferred references are
// only ever created for output positions.
func IsOutputType(t Type) bool {
	switch t := t.(type) {
	case *List:
		return IsOutputType(t.ofType)
	case *NonNull:
		return IsOutputType(t.ofType)
	case *Scalar, *Object, *Interface, *Union, *Enum, *TypeRef:
		return true
	}
	return false
}
