package builder

import (
	"fmt"
	"sort"

	"github.com/jensneuse/abstractlogger"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/typegraph/typegraph/pkg/suggest"
	"github.com/typegraph/typegraph/pkg/typesystem"
)

// session is a single resolution pass over one document: the name table
// from classification plus the built-type cache, pre-seeded with the
// built-in scalars. All resolver and constructor methods hang off the
// session instead of capturing ambient state, so a session is the whole
// story of one build.
//
// The cache enforces the single-instance-per-name invariant: a name is
// constructed at most once, and every reference to it resolves to that
// one instance no matter which path reached it first.
type session struct {
	defs  map[string]*ast.Definition
	cache map[string]typesystem.NamedType
	log   abstractlogger.Logger

	// Default-value coercions queued during construction and run once all
	// declared types are resolved; see defaults.go.
	fieldDefaults map[string][]pendingDefault
	defaultOrder  []string
	argDefaults   []pendingDefault
	settled       map[string]bool
}

func newSession(defs map[string]*ast.Definition, log abstractlogger.Logger) *session {
	s := &session{
		defs:          defs,
		cache:         make(map[string]typesystem.NamedType, len(defs)+5),
		log:           log,
		fieldDefaults: make(map[string][]pendingDefault),
		settled:       make(map[string]bool),
	}
	// Built-ins are seeded before any user definition is resolved, so a
	// reference to "String" always hits the cache and a user type of the
	// same name is never constructed.
	for _, scalar := range typesystem.Builtins() {
		s.cache[scalar.TypeName()] = scalar
	}
	return s
}

// lookupRef backs the TypeRef placeholders handed out by outputType. It is
// only consulted after the build has resolved every declared type, at
// which point every deferred name is in the cache.
func (s *session) lookupRef(name string) typesystem.NamedType {
	return s.cache[name]
}

// namedType returns the built instance for a type name, constructing and
// caching it on first demand.
func (s *session) namedType(name string, pos *ast.Position) (typesystem.NamedType, error) {
	if t, ok := s.cache[name]; ok {
		return t, nil
	}
	def, ok := s.defs[name]
	if !ok {
		return nil, s.unknownType(name, pos)
	}
	return s.constructType(def)
}

// objectType resolves a name that must be an object type, e.g. a root
// operation type or a union member.
func (s *session) objectType(name string, pos *ast.Position) (*typesystem.Object, error) {
	t, err := s.namedType(name, pos)
	if err != nil {
		return nil, err
	}
	obj, ok := t.(*typesystem.Object)
	if !ok {
		return nil, &KindMismatchError{Name: name, Want: "an object type", Got: kindOf(t), Pos: pos}
	}
	return obj, nil
}

// interfaceType resolves a name that must be an interface type, e.g. an
// entry in an implements clause.
func (s *session) interfaceType(name string, pos *ast.Position) (*typesystem.Interface, error) {
	t, err := s.namedType(name, pos)
	if err != nil {
		return nil, err
	}
	iface, ok := t.(*typesystem.Interface)
	if !ok {
		return nil, &KindMismatchError{Name: name, Want: "an interface type", Got: kindOf(t), Pos: pos}
	}
	return iface, nil
}

// inputType resolves an AST type reference in an input position: argument,
// input object field or directive argument. Resolution is eager; the named
// type must be a scalar, enum or input object.
func (s *session) inputType(t *ast.Type) (typesystem.Type, error) {
	var resolved typesystem.Type
	if t.Elem != nil {
		elem, err := s.inputType(t.Elem)
		if err != nil {
			return nil, err
		}
		resolved = typesystem.NewList(elem)
	} else {
		named, err := s.namedType(t.NamedType, t.Position)
		if err != nil {
			return nil, err
		}
		if !typesystem.IsInputType(named) {
			return nil, &KindMismatchError{Name: t.NamedType, Want: "an input type", Got: kindOf(named), Pos: t.Position}
		}
		resolved = named
	}
	return s.wrapNonNull(resolved, t)
}

// outputType resolves an AST type reference in an output position: a field
// return type. A named type already in the cache resolves to the concrete
// instance; a known but not-yet-built name resolves to a deferred TypeRef
// carrying only the name, which is what lets two types reference each
// other through their fields without either build forcing the other.
func (s *session) outputType(t *ast.Type) (typesystem.Type, error) {
	var resolved typesystem.Type
	if t.Elem != nil {
		elem, err := s.outputType(t.Elem)
		if err != nil {
			return nil, err
		}
		resolved = typesystem.NewList(elem)
	} else if cached, ok := s.cache[t.NamedType]; ok {
		if !typesystem.IsOutputType(cached) {
			return nil, &KindMismatchError{Name: t.NamedType, Want: "an output type", Got: kindOf(cached), Pos: t.Position}
		}
		resolved = cached
	} else {
		def, ok := s.defs[t.NamedType]
		if !ok {
			return nil, s.unknownType(t.NamedType, t.Position)
		}
		if def.Kind == ast.InputObject {
			return nil, &KindMismatchError{Name: t.NamedType, Want: "an output type", Got: "an input object type", Pos: t.Position}
		}
		resolved = typesystem.NewTypeRef(t.NamedType, s.lookupRef)
	}
	return s.wrapNonNull(resolved, t)
}

func (s *session) wrapNonNull(resolved typesystem.Type, t *ast.Type) (typesystem.Type, error) {
	if !t.NonNull {
		return resolved, nil
	}
	wrapped, err := typesystem.NewNonNull(resolved)
	if err != nil {
		return nil, fmt.Errorf("%s%w", locPrefix(t.Position), err)
	}
	return wrapped, nil
}

func (s *session) unknownType(name string, pos *ast.Position) error {
	candidates := make([]string, 0, len(s.defs)+5)
	for _, scalar := range typesystem.Builtins() {
		candidates = append(candidates, scalar.TypeName())
	}
	for defName := range s.defs {
		candidates = append(candidates, defName)
	}
	sort.Strings(candidates)
	return &UnknownTypeError{Name: name, Suggestion: suggest.Closest(name, candidates), Pos: pos}
}

// kindOf names a built type's kind for error messages.
func kindOf(t typesystem.Type) string {
	switch t.(type) {
	case *typesystem.Scalar:
		return "a scalar type"
	case *typesystem.Object:
		return "an object type"
	case *typesystem.Interface:
		return "an interface type"
	case *typesystem.Union:
		return "a union type"
	case *typesystem.Enum:
		return "an enum type"
	case *typesystem.InputObject:
		return "an input object type"
	}
	return "an unknown type"
}
