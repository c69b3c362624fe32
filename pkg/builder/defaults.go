package builder

import (
	"fmt"

	"github.com/vektah/gqlparser/v2/ast"

	"github.com/typegraph/typegraph/pkg/literal"
	"github.com/typegraph/typegraph/pkg/typesystem"
)

// pendingDefault is a default-value coercion queued during type
// construction. Coercing an input object literal consults the complete
// field list of its target type, so running the coercion while that type
// is still a half-built shell would reject valid documents depending on
// declaration order. The queue is flushed once every declared type is
// resolved.
type pendingDefault struct {
	value *ast.Value
	typ   typesystem.Type
	pos   *ast.Position
	what  string
	set   func(any)
}

// deferDefault queues a default-value coercion. owner is the name of the
// input object declaring the field, or "" for field and directive
// arguments, whose defaults nothing else depends on.
func (s *session) deferDefault(owner string, p pendingDefault) {
	if owner == "" {
		s.argDefaults = append(s.argDefaults, p)
		return
	}
	if _, ok := s.fieldDefaults[owner]; !ok {
		s.defaultOrder = append(s.defaultOrder, owner)
	}
	s.fieldDefaults[owner] = append(s.fieldDefaults[owner], p)
}

// coerceDefaults flushes every queued coercion. Input field defaults are
// settled per owning type, a target type's own defaults before any
// default of that type, because object literal coercion fills in omitted
// fields from the target's field defaults.
func (s *session) coerceDefaults() error {
	for _, owner := range s.defaultOrder {
		if err := s.settleFieldDefaults(owner); err != nil {
			return err
		}
	}
	for _, p := range s.argDefaults {
		if err := s.runDefault(p); err != nil {
			return err
		}
	}
	return nil
}

func (s *session) settleFieldDefaults(owner string) error {
	if s.settled[owner] {
		return nil
	}
	// Marked before recursing so default-value cycles terminate; inside a
	// cycle, a not-yet-settled default is treated as absent.
	s.settled[owner] = true
	for _, p := range s.fieldDefaults[owner] {
		if err := s.runDefault(p); err != nil {
			return err
		}
	}
	return nil
}

func (s *session) runDefault(p pendingDefault) error {
	if target, ok := typesystem.NamedOf(p.typ).(*typesystem.InputObject); ok {
		if err := s.settleFieldDefaults(target.TypeName()); err != nil {
			return err
		}
	}
	value, err := literal.Coerce(p.value, p.typ)
	if err != nil {
		return fmt.Errorf("%sdefault value of %s: %w", locPrefix(p.pos), p.what, err)
	}
	p.set(value)
	return nil
}
