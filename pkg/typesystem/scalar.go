package typesystem

import (
	"errors"
	"fmt"
)

// SerializeFunc converts an internal value into the scalar's wire
// representation.
type SerializeFunc func(value any) (any, error)

// Scalar is a leaf type. The five built-in scalars (see builtins.go) carry
// working serialize behavior; custom scalars built from SDL do not.
type Scalar struct {
	name        string
	description string
	serialize   SerializeFunc
}

// ScalarConfig configures NewScalar. Serialize may be nil, in which case
// the scalar's Serialize fails with ErrUnsupportedBehavior when invoked.
type ScalarConfig struct {
	Name        string
	Description string
	Serialize   SerializeFunc
}

// NewScalar constructs a scalar type.
func NewScalar(cfg ScalarConfig) (*Scalar, error) {
	if cfg.Name == "" {
		return nil, errors.New("scalar type must have a name")
	}
	return &Scalar{
		name:        cfg.Name,
		description: cfg.Description,
		serialize:   cfg.Serialize,
	}, nil
}

// TypeName returns the scalar's name.
func (s *Scalar) TypeName() string { return s.name }

// Description returns the scalar's description.
func (s *Scalar) Description() string { return s.description }

func (s *Scalar) String() string { return s.name }

// Serialize converts an internal value into the scalar's wire
// representation. Scalars constructed without serialize behavior fail with
// ErrUnsupportedBehavior.
func (s *Scalar) Serialize(value any) (any, error) {
	if s.serialize == nil {
		return nil, fmt.Errorf("scalar %s cannot serialize values: %w", s.name, ErrUnsupportedBehavior)
	}
	return s.serialize(value)
}
