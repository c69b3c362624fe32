package typesystem

import (
	"errors"
	"fmt"
)

// Schema is the fully linked type system: the root operation types, every
// named type reachable from them plus every explicitly provided type, and
// the declared directives.
type Schema struct {
	query        *Object
	mutation     *Object
	subscription *Object
	types        []NamedType
	typeMap      map[string]NamedType
	directives   []*Directive
}

// SchemaConfig configures NewSchema. Query is required; Mutation and
// Subscription are optional. Types lists the explicitly declared named
// types in declaration order; types only reachable through references are
// collected automatically.
type SchemaConfig struct {
	Query        *Object
	Mutation     *Object
	Subscription *Object
	Types        []NamedType
	Directives   []*Directive
}

// NewSchema assembles a schema. It fails if no query root is provided, or
// if two distinct type instances share a name.
func NewSchema(cfg SchemaConfig) (*Schema, error) {
	if cfg.Query == nil {
		return nil, errors.New("schema must define a query root type")
	}

	s := &Schema{
		query:        cfg.Query,
		mutation:     cfg.Mutation,
		subscription: cfg.Subscription,
		typeMap:      make(map[string]NamedType),
		directives:   cfg.Directives,
	}

	for _, t := range cfg.Types {
		if err := s.collect(t); err != nil {
			return nil, err
		}
	}
	for _, root := range []*Object{cfg.Query, cfg.Mutation, cfg.Subscription} {
		if root != nil {
			if err := s.collect(root); err != nil {
				return nil, err
			}
		}
	}
	for _, d := range cfg.Directives {
		for _, arg := range d.Arguments() {
			if err := s.collect(NamedOf(arg.Type())); err != nil {
				return nil, err
			}
		}
	}

	return s, nil
}

// collect registers t and every named type reachable from it, preserving
// first-encounter order.
func (s *Schema) collect(t NamedType) error {
	if t == nil {
		return nil
	}
	name := t.TypeName()
	if existing, ok := s.typeMap[name]; ok {
		if existing != t {
			return fmt.Errorf("schema contains two distinct types named %s", name)
		}
		return nil
	}
	s.typeMap[name] = t
	s.types = append(s.types, t)

	switch t := t.(type) {
	case *Object:
		for _, iface := range t.Interfaces() {
			if err := s.collect(iface); err != nil {
				return err
			}
		}
		if err := s.collectFields(t.Fields()); err != nil {
			return err
		}
	case *Interface:
		for _, iface := range t.Interfaces() {
			if err := s.collect(iface); err != nil {
				return err
			}
		}
		if err := s.collectFields(t.Fields()); err != nil {
			return err
		}
	case *Union:
		for _, member := range t.Members() {
			if err := s.collect(member); err != nil {
				return err
			}
		}
	case *InputObject:
		for _, f := range t.Fields() {
			if err := s.collect(NamedOf(f.Type())); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Schema) collectFields(fields FieldList) error {
	for _, f := range fields {
		if err := s.collect(NamedOf(f.Type())); err != nil {
			return err
		}
		for _, arg := range f.Arguments() {
			if err := s.collect(NamedOf(arg.Type())); err != nil {
				return err
			}
		}
	}
	return nil
}

// Query returns the query root type.
func (s *Schema) Query() *Object { return s.query }

// Mutation returns the mutation root type, or nil.
func (s *Schema) Mutation() *Object { return s.mutation }

// Subscription returns the subscription root type, or nil.
func (s *Schema) Subscription() *Object { return s.subscription }

// Type returns the named type, or nil if the schema does not contain it.
func (s *Schema) Type(name string) NamedType { return s.typeMap[name] }

// Types returns every named type in the schema: declared types in
// declaration order, followed by referenced types in first-encounter
// order.
func (s *Schema) Types() []NamedType { return s.types }

// Directives returns the declared directives in declaration order.
func (s *Schema) Directives() []*Directive { return s.directives }

// Directive returns the declared directive with the given name, or nil.
func (s *Schema) Directive(name string) *Directive {
	for _, d := range s.directives {
		if d.Name() == name {
			return d
		}
	}
	return nil
}
