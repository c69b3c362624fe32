package builder

import (
	"fmt"

	"github.com/vektah/gqlparser/v2/ast"

	"github.com/typegraph/typegraph/pkg/typesystem"
)

// defaultDeprecationReason is used when a @deprecated directive carries no
// reason argument.
const defaultDeprecationReason = "No longer supported"

// constructType builds the type-system node for one definition, dispatched
// by kind. Object, interface and input object shells are cached before
// their fields are populated, so cyclic references encountered while
// building those fields find the identity-stable, half-built instance
// instead of recursing forever.
func (s *session) constructType(def *ast.Definition) (typesystem.NamedType, error) {
	switch def.Kind {
	case ast.Scalar:
		// No serialize behavior can be derived from the AST; the scalar's
		// runtime methods fail with ErrUnsupportedBehavior if ever invoked.
		scalar, err := typesystem.NewScalar(typesystem.ScalarConfig{
			Name:        def.Name,
			Description: def.Description,
		})
		if err != nil {
			return nil, err
		}
		s.cache[def.Name] = scalar
		return scalar, nil

	case ast.Object:
		obj := typesystem.NewObject(def.Name, def.Description)
		s.cache[def.Name] = obj
		interfaces, err := s.interfaceList(def)
		if err != nil {
			return nil, err
		}
		fields, err := s.fieldList(def.Fields)
		if err != nil {
			return nil, err
		}
		if err := obj.Define(fields, interfaces, nil); err != nil {
			return nil, fmt.Errorf("%s%w", locPrefix(def.Position), err)
		}
		return obj, nil

	case ast.Interface:
		iface := typesystem.NewInterface(def.Name, def.Description)
		s.cache[def.Name] = iface
		interfaces, err := s.interfaceList(def)
		if err != nil {
			return nil, err
		}
		fields, err := s.fieldList(def.Fields)
		if err != nil {
			return nil, err
		}
		if err := iface.Define(fields, interfaces); err != nil {
			return nil, fmt.Errorf("%s%w", locPrefix(def.Position), err)
		}
		return iface, nil

	case ast.Union:
		members := make([]*typesystem.Object, 0, len(def.Types))
		for _, memberName := range def.Types {
			member, err := s.objectType(memberName, def.Position)
			if err != nil {
				return nil, err
			}
			members = append(members, member)
		}
		union, err := typesystem.NewUnion(typesystem.UnionConfig{
			Name:        def.Name,
			Description: def.Description,
			Members:     members,
		})
		if err != nil {
			return nil, fmt.Errorf("%s%w", locPrefix(def.Position), err)
		}
		s.cache[def.Name] = union
		return union, nil

	case ast.Enum:
		values, err := enumValueList(def.EnumValues)
		if err != nil {
			return nil, err
		}
		enum, err := typesystem.NewEnum(typesystem.EnumConfig{
			Name:        def.Name,
			Description: def.Description,
			Values:      values,
		})
		if err != nil {
			return nil, fmt.Errorf("%s%w", locPrefix(def.Position), err)
		}
		s.cache[def.Name] = enum
		return enum, nil

	case ast.InputObject:
		input := typesystem.NewInputObject(def.Name, def.Description)
		s.cache[def.Name] = input
		fields, err := s.inputFieldList(def.Name, def.Fields)
		if err != nil {
			return nil, err
		}
		if err := input.Define(fields); err != nil {
			return nil, fmt.Errorf("%s%w", locPrefix(def.Position), err)
		}
		return input, nil
	}

	return nil, fmt.Errorf("%sdefinition %s has unsupported kind %s", locPrefix(def.Position), def.Name, def.Kind)
}

// interfaceList resolves a definition's implements clause.
func (s *session) interfaceList(def *ast.Definition) ([]*typesystem.Interface, error) {
	if len(def.Interfaces) == 0 {
		return nil, nil
	}
	interfaces := make([]*typesystem.Interface, 0, len(def.Interfaces))
	for _, name := range def.Interfaces {
		iface, err := s.interfaceType(name, def.Position)
		if err != nil {
			return nil, err
		}
		interfaces = append(interfaces, iface)
	}
	return interfaces, nil
}

// fieldList builds the field map for an object or interface definition,
// preserving declaration order. Field types resolve through outputType,
// argument types through inputType.
func (s *session) fieldList(fields ast.FieldList) (typesystem.FieldList, error) {
	result := make(typesystem.FieldList, 0, len(fields))
	for _, f := range fields {
		typ, err := s.outputType(f.Type)
		if err != nil {
			return nil, err
		}
		args, err := s.argumentList(f.Arguments)
		if err != nil {
			return nil, err
		}
		reason, err := deprecationReason(f.Directives)
		if err != nil {
			return nil, err
		}
		field, err := typesystem.NewField(typesystem.FieldConfig{
			Name:              f.Name,
			Description:       f.Description,
			Type:              typ,
			Arguments:         args,
			DeprecationReason: reason,
		})
		if err != nil {
			return nil, fmt.Errorf("%s%w", locPrefix(f.Position), err)
		}
		result = append(result, field)
	}
	return result, nil
}

// argumentList builds the argument map for a field or directive
// definition. Declared default values are queued for coercion against the
// resolved input type; a literal that does not fit fails the build.
func (s *session) argumentList(args ast.ArgumentDefinitionList) (typesystem.ArgumentList, error) {
	result := make(typesystem.ArgumentList, 0, len(args))
	for _, a := range args {
		typ, err := s.inputType(a.Type)
		if err != nil {
			return nil, err
		}
		arg, err := typesystem.NewArgument(typesystem.ArgumentConfig{
			Name:        a.Name,
			Description: a.Description,
			Type:        typ,
		})
		if err != nil {
			return nil, fmt.Errorf("%s%w", locPrefix(a.Position), err)
		}
		if a.DefaultValue != nil {
			s.deferDefault("", pendingDefault{
				value: a.DefaultValue,
				typ:   typ,
				pos:   a.Position,
				what:  fmt.Sprintf("argument %s", a.Name),
				set:   arg.SetDefault,
			})
		}
		result = append(result, arg)
	}
	return result, nil
}

// inputFieldList builds the field map for the named input object
// definition.
func (s *session) inputFieldList(owner string, fields ast.FieldList) (typesystem.InputFieldList, error) {
	result := make(typesystem.InputFieldList, 0, len(fields))
	for _, f := range fields {
		typ, err := s.inputType(f.Type)
		if err != nil {
			return nil, err
		}
		field, err := typesystem.NewInputField(typesystem.InputFieldConfig{
			Name:        f.Name,
			Description: f.Description,
			Type:        typ,
		})
		if err != nil {
			return nil, fmt.Errorf("%s%w", locPrefix(f.Position), err)
		}
		if f.DefaultValue != nil {
			s.deferDefault(owner, pendingDefault{
				value: f.DefaultValue,
				typ:   typ,
				pos:   f.Position,
				what:  fmt.Sprintf("input field %s", f.Name),
				set:   field.SetDefault,
			})
		}
		result = append(result, field)
	}
	return result, nil
}

// enumValueList builds the value map for an enum definition. Each value's
// runtime value is its own name.
func enumValueList(values ast.EnumValueList) (typesystem.EnumValueList, error) {
	result := make(typesystem.EnumValueList, 0, len(values))
	for _, v := range values {
		reason, err := deprecationReason(v.Directives)
		if err != nil {
			return nil, err
		}
		value, err := typesystem.NewEnumValue(typesystem.EnumValueConfig{
			Name:              v.Name,
			Description:       v.Description,
			DeprecationReason: reason,
		})
		if err != nil {
			return nil, fmt.Errorf("%s%w", locPrefix(v.Position), err)
		}
		result = append(result, value)
	}
	return result, nil
}

// constructDirective builds a declared directive: argument map via input
// resolution, locations validated against the fixed location set.
func (s *session) constructDirective(def *ast.DirectiveDefinition) (*typesystem.Directive, error) {
	args, err := s.argumentList(def.Arguments)
	if err != nil {
		return nil, fmt.Errorf("directive @%s: %w", def.Name, err)
	}
	locations := make([]typesystem.DirectiveLocation, 0, len(def.Locations))
	for _, l := range def.Locations {
		loc, err := typesystem.ParseDirectiveLocation(string(l))
		if err != nil {
			return nil, fmt.Errorf("%sdirective @%s: %w", locPrefix(def.Position), def.Name, err)
		}
		locations = append(locations, loc)
	}
	directive, err := typesystem.NewDirective(typesystem.DirectiveConfig{
		Name:        def.Name,
		Description: def.Description,
		Locations:   locations,
		Arguments:   args,
	})
	if err != nil {
		return nil, fmt.Errorf("%s%w", locPrefix(def.Position), err)
	}
	return directive, nil
}

// deprecationReason extracts the reason from a @deprecated directive.
// Returns "" when the directive is absent, and the standard default
// reason when it is present without a reason argument. A reason that is
// not a string literal fails the build.
func deprecationReason(directives ast.DirectiveList) (string, error) {
	d := directives.ForName("deprecated")
	if d == nil {
		return "", nil
	}
	if arg := d.Arguments.ForName("reason"); arg != nil && arg.Value != nil {
		if arg.Value.Kind != ast.StringValue && arg.Value.Kind != ast.BlockValue {
			return "", fmt.Errorf("%s@deprecated reason must be a string, got %s", locPrefix(d.Position), arg.Value.String())
		}
		return arg.Value.Raw, nil
	}
	return defaultDeprecationReason, nil
}
