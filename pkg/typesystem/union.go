package typesystem

import (
	"errors"
	"fmt"
)

// ResolveTypeFunc resolves the concrete object type for an internal value
// of an abstract type.
type ResolveTypeFunc func(value any) (*Object, error)

// Union is an abstract output type whose possible types are a fixed list
// of object types.
type Union struct {
	name        string
	description string
	members     []*Object
	resolveType ResolveTypeFunc
}

// UnionConfig configures NewUnion. ResolveType may be nil, in which case
// the union's ResolveType fails with ErrUnsupportedBehavior when invoked.
type UnionConfig struct {
	Name        string
	Description string
	Members     []*Object
	ResolveType ResolveTypeFunc
}

// NewUnion constructs a union type. A union must declare at least one
// member.
func NewUnion(cfg UnionConfig) (*Union, error) {
	if cfg.Name == "" {
		return nil, errors.New("union type must have a name")
	}
	if len(cfg.Members) == 0 {
		return nil, fmt.Errorf("union type %s must declare one or more member types", cfg.Name)
	}
	return &Union{
		name:        cfg.Name,
		description: cfg.Description,
		members:     cfg.Members,
		resolveType: cfg.ResolveType,
	}, nil
}

// TypeName returns the union's name.
func (u *Union) TypeName() string { return u.name }

// Description returns the union's description.
func (u *Union) Description() string { return u.description }

func (u *Union) String() string { return u.name }

// Members returns the union's member object types in declaration order.
func (u *Union) Members() []*Object { return u.members }

// ResolveType resolves the concrete object type for a value. Unions
// constructed without resolve behavior fail with ErrUnsupportedBehavior.
func (u *Union) ResolveType(value any) (*Object, error) {
	if u.resolveType == nil {
		return nil, fmt.Errorf("union type %s cannot resolve values: %w", u.name, ErrUnsupportedBehavior)
	}
	return u.resolveType(value)
}
