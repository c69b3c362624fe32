// Package builder converts a parsed schema-definition-language document
// into a fully linked type-system graph (see pkg/typesystem).
//
// The build is a single synchronous pass: definitions are classified once,
// then each root and declared type is resolved on demand through a
// memoizing session. Forward references and cycles are handled by deferred
// type references and by caching composite type shells before their fields
// are populated, so the resulting graph is identical regardless of
// declaration order. Any failure aborts the whole build; no partial schema
// is ever returned.
package builder

import (
	"github.com/jensneuse/abstractlogger"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"

	"github.com/typegraph/typegraph/pkg/typesystem"
)

// Option configures a build.
type Option func(*options)

type options struct {
	log abstractlogger.Logger
}

// WithLogger sets the logger used for non-fatal diagnostics, such as
// skipped definitions the build does not understand. Defaults to a no-op
// logger.
func WithLogger(log abstractlogger.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

// Build converts a parsed schema document into a linked schema graph.
//
// The document must contain a schema definition declaring a query root;
// mutation and subscription roots are optional. Every declared type is
// resolved, even ones unreachable from the roots, so the schema's type
// list is complete.
func Build(doc *ast.SchemaDocument, opts ...Option) (*typesystem.Schema, error) {
	o := options{log: abstractlogger.Noop{}}
	for _, opt := range opts {
		opt(&o)
	}

	c := classify(doc, o.log)
	if c.schema == nil {
		return nil, ErrMissingSchemaDefinition
	}

	var query, mutation, subscription *ast.OperationTypeDefinition
	for _, op := range c.schema.OperationTypes {
		switch op.Operation {
		case ast.Query:
			query = op
		case ast.Mutation:
			mutation = op
		case ast.Subscription:
			subscription = op
		}
	}
	if query == nil {
		return nil, ErrMissingQueryRoot
	}

	s := newSession(c.defs, o.log)

	cfg := typesystem.SchemaConfig{}
	var err error
	if cfg.Query, err = s.objectType(query.Type, query.Position); err != nil {
		return nil, err
	}
	if mutation != nil {
		if cfg.Mutation, err = s.objectType(mutation.Type, mutation.Position); err != nil {
			return nil, err
		}
	}
	if subscription != nil {
		if cfg.Subscription, err = s.objectType(subscription.Type, subscription.Position); err != nil {
			return nil, err
		}
	}

	cfg.Types = make([]typesystem.NamedType, 0, len(c.types))
	for _, def := range c.types {
		t, err := s.namedType(def.Name, def.Position)
		if err != nil {
			return nil, err
		}
		cfg.Types = append(cfg.Types, t)
	}

	cfg.Directives = make([]*typesystem.Directive, 0, len(c.directives))
	for _, def := range c.directives {
		directive, err := s.constructDirective(def)
		if err != nil {
			return nil, err
		}
		cfg.Directives = append(cfg.Directives, directive)
	}

	// Default values are coerced only now, once every declared type is
	// complete, so an input object literal never sees a half-built shell.
	if err := s.coerceDefaults(); err != nil {
		return nil, err
	}

	return typesystem.NewSchema(cfg)
}

// BuildSchema parses the given SDL sources and builds the schema graph.
func BuildSchema(sources ...*ast.Source) (*typesystem.Schema, error) {
	return BuildSchemaWithOptions(nil, sources...)
}

// BuildSchemaWithOptions is BuildSchema with build options.
func BuildSchemaWithOptions(opts []Option, sources ...*ast.Source) (*typesystem.Schema, error) {
	doc, err := parser.ParseSchemas(sources...)
	if err != nil {
		return nil, err
	}
	return Build(doc, opts...)
}
