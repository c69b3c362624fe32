package typesystem

import (
	"errors"
	"fmt"
)

// DirectiveLocation is a place in a document where a directive may appear.
type DirectiveLocation string

// The fixed set of valid directive locations.
const (
	LocationQuery                DirectiveLocation = "QUERY"
	LocationMutation             DirectiveLocation = "MUTATION"
	LocationSubscription         DirectiveLocation = "SUBSCRIPTION"
	LocationField                DirectiveLocation = "FIELD"
	LocationFragmentDefinition   DirectiveLocation = "FRAGMENT_DEFINITION"
	LocationFragmentSpread       DirectiveLocation = "FRAGMENT_SPREAD"
	LocationInlineFragment       DirectiveLocation = "INLINE_FRAGMENT"
	LocationVariableDefinition   DirectiveLocation = "VARIABLE_DEFINITION"
	LocationSchema               DirectiveLocation = "SCHEMA"
	LocationScalar               DirectiveLocation = "SCALAR"
	LocationObject               DirectiveLocation = "OBJECT"
	LocationFieldDefinition      DirectiveLocation = "FIELD_DEFINITION"
	LocationArgumentDefinition   DirectiveLocation = "ARGUMENT_DEFINITION"
	LocationInterface            DirectiveLocation = "INTERFACE"
	LocationUnion                DirectiveLocation = "UNION"
	LocationEnum                 DirectiveLocation = "ENUM"
	LocationEnumValue            DirectiveLocation = "ENUM_VALUE"
	LocationInputObject          DirectiveLocation = "INPUT_OBJECT"
	LocationInputFieldDefinition DirectiveLocation = "INPUT_FIELD_DEFINITION"
)

// ErrUnknownDirectiveLocation is returned when a directive declares a
// location outside the fixed set.
var ErrUnknownDirectiveLocation = errors.New("unknown directive location")

var validLocations = map[DirectiveLocation]bool{
	LocationQuery:                true,
	LocationMutation:             true,
	LocationSubscription:         true,
	LocationField:                true,
	LocationFragmentDefinition:   true,
	LocationFragmentSpread:       true,
	LocationInlineFragment:       true,
	LocationVariableDefinition:   true,
	LocationSchema:               true,
	LocationScalar:               true,
	LocationObject:               true,
	LocationFieldDefinition:      true,
	LocationArgumentDefinition:   true,
	LocationInterface:            true,
	LocationUnion:                true,
	LocationEnum:                 true,
	LocationEnumValue:            true,
	LocationInputObject:          true,
	LocationInputFieldDefinition: true,
}

// ParseDirectiveLocation validates a location name against the fixed set.
func ParseDirectiveLocation(s string) (DirectiveLocation, error) {
	loc := DirectiveLocation(s)
	if !validLocations[loc] {
		return "", fmt.Errorf("%w: %q", ErrUnknownDirectiveLocation, s)
	}
	return loc, nil
}

// Directive is a declared directive: a name, the locations it may appear
// at, and its arguments.
type Directive struct {
	name        string
	description string
	locations   []DirectiveLocation
	args        ArgumentList
}

// DirectiveConfig configures NewDirective.
type DirectiveConfig struct {
	Name        string
	Description string
	Locations   []DirectiveLocation
	Arguments   ArgumentList
}

// NewDirective constructs a directive. A directive must declare at least
// one location, and every location must be in the fixed valid set.
func NewDirective(cfg DirectiveConfig) (*Directive, error) {
	if cfg.Name == "" {
		return nil, errors.New("directive must have a name")
	}
	if len(cfg.Locations) == 0 {
		return nil, fmt.Errorf("directive @%s must declare one or more locations", cfg.Name)
	}
	for _, loc := range cfg.Locations {
		if !validLocations[loc] {
			return nil, fmt.Errorf("directive @%s: %w: %q", cfg.Name, ErrUnknownDirectiveLocation, string(loc))
		}
	}
	return &Directive{
		name:        cfg.Name,
		description: cfg.Description,
		locations:   cfg.Locations,
		args:        cfg.Arguments,
	}, nil
}

// Name returns the directive's name, without the leading "@".
func (d *Directive) Name() string { return d.name }

// Description returns the directive's description.
func (d *Directive) Description() string { return d.description }

// Locations returns the locations the directive may appear at, in
// declaration order.
func (d *Directive) Locations() []DirectiveLocation { return d.locations }

// Arguments returns the directive's arguments in declaration order.
func (d *Directive) Arguments() ArgumentList { return d.args }
