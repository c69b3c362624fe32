package builder_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/typegraph/typegraph/pkg/builder"
	"github.com/typegraph/typegraph/pkg/literal"
	"github.com/typegraph/typegraph/pkg/typesystem"
)

func buildSDL(t *testing.T, sdl string) *typesystem.Schema {
	t.Helper()
	schema, err := builder.BuildSchema(&ast.Source{Name: "schema.graphql", Input: sdl})
	require.NoError(t, err)
	return schema
}

func buildErr(t *testing.T, sdl string) error {
	t.Helper()
	_, err := builder.BuildSchema(&ast.Source{Name: "schema.graphql", Input: sdl})
	require.Error(t, err)
	return err
}

func objectType(t *testing.T, schema *typesystem.Schema, name string) *typesystem.Object {
	t.Helper()
	obj, ok := schema.Type(name).(*typesystem.Object)
	require.True(t, ok, "expected %s to be an object type", name)
	return obj
}

func TestBuild_SimpleSchema(t *testing.T) {
	schema := buildSDL(t, `
		schema {
			query: Query
			mutation: Mutation
		}

		type Query {
			user(id: ID!): User
		}

		type Mutation {
			rename(id: ID!, name: String!): User
		}

		"A registered user."
		type User {
			id: ID!
			name: String
		}
	`)

	require.NotNil(t, schema.Query())
	require.NotNil(t, schema.Mutation())
	assert.Nil(t, schema.Subscription())
	assert.Equal(t, "Query", schema.Query().TypeName())
	assert.Equal(t, "Mutation", schema.Mutation().TypeName())

	user := objectType(t, schema, "User")
	assert.Equal(t, "A registered user.", user.Description())
	require.Len(t, user.Fields(), 2)
	assert.Equal(t, "ID!", user.Fields().ForName("id").Type().String())
	assert.Equal(t, "String", user.Fields().ForName("name").Type().String())
}

func TestBuild_CycleClosure(t *testing.T) {
	schema := buildSDL(t, `
		schema { query: Query }

		type Query {
			posts: [Post]
		}

		type Post {
			author: Author
		}

		type Author {
			posts: [Post!]!
		}
	`)

	post := objectType(t, schema, "Post")
	author := objectType(t, schema, "Author")

	assert.Same(t, author, post.Fields().ForName("author").Type())

	// Author.posts is [Post!]!; the innermost named type must be the same
	// Post instance, not a duplicate.
	assert.Same(t, post, typesystem.NamedOf(author.Fields().ForName("posts").Type()))
}

func TestBuild_SelfReference(t *testing.T) {
	schema := buildSDL(t, `
		schema { query: Query }

		type Query {
			root: Node
		}

		type Node {
			parent: Node
			children: [Node]
		}
	`)

	node := objectType(t, schema, "Node")
	assert.Same(t, node, node.Fields().ForName("parent").Type())
	assert.Same(t, node, typesystem.NamedOf(node.Fields().ForName("children").Type()))
}

func TestBuild_SingleInstancePerName(t *testing.T) {
	schema := buildSDL(t, `
		schema { query: Query }

		type Query {
			a: User
			b: [User]
			c: User!
		}

		type User {
			friend: User
		}
	`)

	user := objectType(t, schema, "User")
	query := schema.Query()
	assert.Same(t, user, query.Fields().ForName("a").Type())
	assert.Same(t, user, typesystem.NamedOf(query.Fields().ForName("b").Type()))
	assert.Same(t, user, typesystem.NamedOf(query.Fields().ForName("c").Type()))
	assert.Same(t, user, user.Fields().ForName("friend").Type())
}

// summarize renders a schema's structure (names, kinds, field type
// strings) without identities, for order-independence comparison.
func summarize(schema *typesystem.Schema) map[string][]string {
	summary := make(map[string][]string)
	for _, named := range schema.Types() {
		var entries []string
		switch named := named.(type) {
		case *typesystem.Object:
			for _, f := range named.Fields() {
				entries = append(entries, f.Name()+": "+f.Type().String())
			}
		case *typesystem.Interface:
			for _, f := range named.Fields() {
				entries = append(entries, f.Name()+": "+f.Type().String())
			}
		case *typesystem.Union:
			for _, m := range named.Members() {
				entries = append(entries, m.TypeName())
			}
		case *typesystem.Enum:
			for _, v := range named.Values() {
				entries = append(entries, v.Name())
			}
		case *typesystem.InputObject:
			for _, f := range named.Fields() {
				entries = append(entries, f.Name()+": "+f.Type().String())
			}
		}
		summary[named.TypeName()] = entries
	}
	return summary
}

func TestBuild_OrderIndependence(t *testing.T) {
	forward := buildSDL(t, `
		schema { query: Query }
		type Query { node: Node }
		interface Named { name: String }
		type Node implements Named { name: String, link: Leaf }
		type Leaf implements Named { name: String, parent: Node }
	`)

	reversed := buildSDL(t, `
		type Leaf implements Named { name: String, parent: Node }
		type Node implements Named { name: String, link: Leaf }
		interface Named { name: String }
		type Query { node: Node }
		schema { query: Query }
	`)

	assert.Empty(t, cmp.Diff(summarize(forward), summarize(reversed)))

	// Identity invariants hold in both.
	for _, schema := range []*typesystem.Schema{forward, reversed} {
		node := objectType(t, schema, "Node")
		leaf := objectType(t, schema, "Leaf")
		assert.Same(t, leaf, node.Fields().ForName("link").Type())
		assert.Same(t, node, leaf.Fields().ForName("parent").Type())
	}
}

func TestBuild_BuiltinPrecedence(t *testing.T) {
	schema := buildSDL(t, `
		schema { query: Query }

		type Query {
			s: String
		}

		type String {
			value: Int
		}
	`)

	// A user definition never shadows a built-in scalar.
	assert.Same(t, typesystem.String, schema.Type("String"))
	assert.Same(t, typesystem.String, schema.Query().Fields().ForName("s").Type())
}

func TestBuild_MissingSchemaDefinition(t *testing.T) {
	err := buildErr(t, `
		type Query {
			ok: Boolean
		}
	`)
	assert.ErrorIs(t, err, builder.ErrMissingSchemaDefinition)
}

func TestBuild_MissingQueryRoot(t *testing.T) {
	err := buildErr(t, `
		schema { mutation: Mutation }

		type Mutation {
			noop: Boolean
		}
	`)
	assert.ErrorIs(t, err, builder.ErrMissingQueryRoot)
}

func TestBuild_UnknownTypeReference(t *testing.T) {
	err := buildErr(t, `
		schema { query: Query }

		type Query {
			name: Strng
		}
	`)

	var unknown *builder.UnknownTypeError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "Strng", unknown.Name)
	assert.Equal(t, "String", unknown.Suggestion)
	assert.Contains(t, err.Error(), "did you mean 'String'?")
}

func TestBuild_UnknownQueryRoot(t *testing.T) {
	err := buildErr(t, `
		schema { query: Missing }
	`)

	var unknown *builder.UnknownTypeError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "Missing", unknown.Name)
}

func TestBuild_QueryRootMustBeObject(t *testing.T) {
	err := buildErr(t, `
		schema { query: Query }

		interface Query {
			ok: Boolean
		}
	`)

	var mismatch *builder.KindMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "Query", mismatch.Name)
}

func TestBuild_UnionMemberMustBeObject(t *testing.T) {
	err := buildErr(t, `
		schema { query: Query }

		type Query {
			result: Result
		}

		scalar Weight

		union Result = Weight
	`)

	var mismatch *builder.KindMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "Weight", mismatch.Name)
	assert.Contains(t, err.Error(), "a scalar type")
}

func TestBuild_InputObjectNotUsableAsOutput(t *testing.T) {
	err := buildErr(t, `
		schema { query: Query }

		type Query {
			filter: Filter
		}

		input Filter {
			term: String
		}
	`)

	var mismatch *builder.KindMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "Filter", mismatch.Name)
}

func TestBuild_ObjectNotUsableAsArgument(t *testing.T) {
	err := buildErr(t, `
		schema { query: Query }

		type Query {
			search(by: User): String
		}

		type User {
			id: ID
		}
	`)

	var mismatch *builder.KindMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "User", mismatch.Name)
}

func TestBuild_Unions(t *testing.T) {
	schema := buildSDL(t, `
		schema { query: Query }

		type Query {
			search: SearchResult
		}

		type Post { title: String }
		type Comment { body: String }

		union SearchResult = Post | Comment
	`)

	union, ok := schema.Type("SearchResult").(*typesystem.Union)
	require.True(t, ok)
	require.Len(t, union.Members(), 2)
	assert.Same(t, schema.Type("Post"), union.Members()[0])
	assert.Same(t, schema.Type("Comment"), union.Members()[1])
}

func TestBuild_Interfaces(t *testing.T) {
	schema := buildSDL(t, `
		schema { query: Query }

		type Query {
			node: Node
		}

		interface Node {
			id: ID!
		}

		interface Timestamped implements Node {
			id: ID!
			createdAt: String
		}

		type Post implements Node & Timestamped {
			id: ID!
			createdAt: String
			title: String
		}
	`)

	post := objectType(t, schema, "Post")
	require.Len(t, post.Interfaces(), 2)
	assert.Same(t, schema.Type("Node"), post.Interfaces()[0])
	assert.Same(t, schema.Type("Timestamped"), post.Interfaces()[1])
	assert.True(t, post.Implements("Node"))

	stamped, ok := schema.Type("Timestamped").(*typesystem.Interface)
	require.True(t, ok)
	require.Len(t, stamped.Interfaces(), 1)
	assert.Same(t, schema.Type("Node"), stamped.Interfaces()[0])
}

func TestBuild_InterfaceFieldReferencesImplementor(t *testing.T) {
	schema := buildSDL(t, `
		schema { query: Query }

		type Query {
			node: Node
		}

		interface Node {
			owner: User
		}

		type User implements Node {
			owner: User
		}
	`)

	node, ok := schema.Type("Node").(*typesystem.Interface)
	require.True(t, ok)
	user := objectType(t, schema, "User")
	assert.Same(t, user, node.Fields().ForName("owner").Type())
}

func TestBuild_InputObjectCycle(t *testing.T) {
	schema := buildSDL(t, `
		schema { query: Query }

		type Query {
			search(filter: Filter): String
		}

		input Filter {
			term: String
			and: Nested
		}

		input Nested {
			inner: Filter
		}
	`)

	filter, ok := schema.Type("Filter").(*typesystem.InputObject)
	require.True(t, ok)
	nested, ok := schema.Type("Nested").(*typesystem.InputObject)
	require.True(t, ok)
	assert.Same(t, nested, filter.Fields().ForName("and").Type())
	assert.Same(t, filter, nested.Fields().ForName("inner").Type())
}

func TestBuild_Deprecation(t *testing.T) {
	schema := buildSDL(t, `
		schema { query: Query }

		type Query {
			old: String @deprecated(reason: "Use new instead.")
			bare: String @deprecated
			current: String
		}

		enum Status {
			ACTIVE
			LEGACY @deprecated(reason: "Gone.")
		}
	`)

	fields := schema.Query().Fields()
	assert.True(t, fields.ForName("old").IsDeprecated())
	assert.Equal(t, "Use new instead.", fields.ForName("old").DeprecationReason())
	assert.True(t, fields.ForName("bare").IsDeprecated())
	assert.Equal(t, "No longer supported", fields.ForName("bare").DeprecationReason())
	assert.False(t, fields.ForName("current").IsDeprecated())
	assert.Empty(t, fields.ForName("current").DeprecationReason())

	status, ok := schema.Type("Status").(*typesystem.Enum)
	require.True(t, ok)
	assert.False(t, status.Values().ForName("ACTIVE").IsDeprecated())
	assert.True(t, status.Values().ForName("LEGACY").IsDeprecated())
	assert.Equal(t, "Gone.", status.Values().ForName("LEGACY").DeprecationReason())
}

func TestBuild_DefaultValues(t *testing.T) {
	schema := buildSDL(t, `
		schema { query: Query }

		type Query {
			search(
				first: Int = 5
				term: String = "all"
				exact: Boolean = false
				ratio: Float = 0.5
				statuses: [Status] = [ACTIVE]
				filter: Filter = {term: "x"}
				cursor: ID
			): String
		}

		enum Status { ACTIVE, INACTIVE }

		input Filter {
			term: String
			limit: Int = 10
		}
	`)

	args := schema.Query().Fields().ForName("search").Arguments()

	first, ok := args.ForName("first").DefaultValue()
	require.True(t, ok)
	assert.Equal(t, int64(5), first)

	term, ok := args.ForName("term").DefaultValue()
	require.True(t, ok)
	assert.Equal(t, "all", term)

	exact, ok := args.ForName("exact").DefaultValue()
	require.True(t, ok)
	assert.Equal(t, false, exact)

	ratio, ok := args.ForName("ratio").DefaultValue()
	require.True(t, ok)
	assert.Equal(t, 0.5, ratio)

	statuses, ok := args.ForName("statuses").DefaultValue()
	require.True(t, ok)
	assert.Equal(t, []any{"ACTIVE"}, statuses)

	// Omitted input fields with defaults are filled in during coercion.
	filter, ok := args.ForName("filter").DefaultValue()
	require.True(t, ok)
	assert.Equal(t, map[string]any{"term": "x", "limit": int64(10)}, filter)

	_, ok = args.ForName("cursor").DefaultValue()
	assert.False(t, ok)
}

func TestBuild_InputObjectDefaultSeesCompleteTarget(t *testing.T) {
	// An input object literal default referencing another input type must
	// coerce against the complete target, whichever type is declared first.
	const forward = `
		schema { query: Query }
		type Query { search(by: B): String }
		input A { b: B }
		input B { a: A = {b: null} }
	`
	const reversed = `
		schema { query: Query }
		type Query { search(by: B): String }
		input B { a: A = {b: null} }
		input A { b: B }
	`

	for _, sdl := range []string{forward, reversed} {
		schema := buildSDL(t, sdl)
		b, ok := schema.Type("B").(*typesystem.InputObject)
		require.True(t, ok)
		def, declared := b.Fields().ForName("a").DefaultValue()
		require.True(t, declared)
		assert.Equal(t, map[string]any{"b": nil}, def)
	}
}

func TestBuild_DefaultFillInUsesNestedDefaults(t *testing.T) {
	schema := buildSDL(t, `
		schema { query: Query }

		type Query {
			search(filter: Filter = {}): String
		}

		input Filter {
			page: Page = {size: 10}
			sort: String = "asc"
		}

		input Page {
			size: Int
		}
	`)

	// The empty literal is filled in from Filter's field defaults, which
	// themselves must already be coerced.
	filter, ok := schema.Query().Fields().ForName("search").Arguments().ForName("filter").DefaultValue()
	require.True(t, ok)
	assert.Equal(t, map[string]any{
		"page": map[string]any{"size": int64(10)},
		"sort": "asc",
	}, filter)
}

func TestBuild_DefaultValueMismatch(t *testing.T) {
	err := buildErr(t, `
		schema { query: Query }

		type Query {
			search(first: Int = "five"): String
		}
	`)

	var coercion *literal.CoercionError
	require.ErrorAs(t, err, &coercion)
	assert.Contains(t, err.Error(), "default value of argument first")
}

func TestBuild_DeprecatedReasonMustBeString(t *testing.T) {
	err := buildErr(t, `
		schema { query: Query }

		type Query {
			old: String @deprecated(reason: 5)
		}
	`)
	assert.Contains(t, err.Error(), "@deprecated reason must be a string")
}

func TestBuild_Directives(t *testing.T) {
	schema := buildSDL(t, `
		schema { query: Query }

		type Query {
			ok: Boolean
		}

		"Restricts access to a role."
		directive @auth(role: String = "viewer") on FIELD_DEFINITION | OBJECT
	`)

	require.Len(t, schema.Directives(), 1)
	auth := schema.Directive("auth")
	require.NotNil(t, auth)
	assert.Equal(t, "Restricts access to a role.", auth.Description())
	assert.Equal(t, []typesystem.DirectiveLocation{
		typesystem.LocationFieldDefinition,
		typesystem.LocationObject,
	}, auth.Locations())

	role, ok := auth.Arguments().ForName("role").DefaultValue()
	require.True(t, ok)
	assert.Equal(t, "viewer", role)
}

func TestBuild_EmptyObjectRejected(t *testing.T) {
	err := buildErr(t, `
		schema { query: Query }

		type Query {
			e: Empty
		}

		type Empty
	`)
	assert.Contains(t, err.Error(), "must define one or more fields")
}

func TestBuild_ExtensionsSkipped(t *testing.T) {
	schema := buildSDL(t, `
		schema { query: Query }

		type Query {
			ok: Boolean
		}

		extend type Query {
			ignored: String
		}
	`)

	// Extensions are outside this build's scope: skipped, never fatal.
	assert.Nil(t, schema.Query().Fields().ForName("ignored"))
	assert.NotNil(t, schema.Query().Fields().ForName("ok"))
}

func TestBuild_DeclarationOrderPreserved(t *testing.T) {
	schema := buildSDL(t, `
		schema { query: Query }

		type Query {
			zebra: String
			apple: String
			mango: String
		}

		enum Fruit {
			PEAR
			APPLE
			LIME
		}
	`)

	var fieldNames []string
	for _, f := range schema.Query().Fields() {
		fieldNames = append(fieldNames, f.Name())
	}
	assert.Equal(t, []string{"zebra", "apple", "mango"}, fieldNames)

	fruit, ok := schema.Type("Fruit").(*typesystem.Enum)
	require.True(t, ok)
	var valueNames []string
	for _, v := range fruit.Values() {
		valueNames = append(valueNames, v.Name())
	}
	assert.Equal(t, []string{"PEAR", "APPLE", "LIME"}, valueNames)
}

func TestBuild_UnreachableTypesIncluded(t *testing.T) {
	schema := buildSDL(t, `
		schema { query: Query }

		type Query {
			ok: Boolean
		}

		type Orphan {
			alone: String
		}
	`)

	assert.NotNil(t, schema.Type("Orphan"))
}

func TestBuild_RuntimeBehaviorStubs(t *testing.T) {
	schema := buildSDL(t, `
		schema { query: Query }

		type Query {
			when: DateTime
			what: Thing
		}

		scalar DateTime

		type Post { title: String }
		union Thing = Post
	`)

	// Construction always succeeds structurally; invoking behavior that
	// cannot come from the AST is a distinct, deferred failure.
	scalar, ok := schema.Type("DateTime").(*typesystem.Scalar)
	require.True(t, ok)
	_, err := scalar.Serialize("2026-01-01")
	assert.ErrorIs(t, err, typesystem.ErrUnsupportedBehavior)

	union, ok := schema.Type("Thing").(*typesystem.Union)
	require.True(t, ok)
	_, err = union.ResolveType(struct{}{})
	assert.ErrorIs(t, err, typesystem.ErrUnsupportedBehavior)

	_, err = objectType(t, schema, "Post").IsTypeOf(struct{}{})
	assert.ErrorIs(t, err, typesystem.ErrUnsupportedBehavior)
}

func TestBuild_WrapperStructure(t *testing.T) {
	schema := buildSDL(t, `
		schema { query: Query }

		type Query {
			matrix: [[Int!]]!
		}
	`)

	typ := schema.Query().Fields().ForName("matrix").Type()
	assert.Equal(t, "[[Int!]]!", typ.String())

	outer, ok := typ.(*typesystem.NonNull)
	require.True(t, ok)
	list, ok := outer.OfType().(*typesystem.List)
	require.True(t, ok)
	inner, ok := list.OfType().(*typesystem.List)
	require.True(t, ok)
	leaf, ok := inner.OfType().(*typesystem.NonNull)
	require.True(t, ok)
	assert.Same(t, typesystem.Int, leaf.OfType())
}

func TestBuild_SubscriptionRoot(t *testing.T) {
	schema := buildSDL(t, `
		schema {
			query: Query
			subscription: Subscription
		}

		type Query { ok: Boolean }
		type Subscription { events: String }
	`)

	require.NotNil(t, schema.Subscription())
	assert.Equal(t, "Subscription", schema.Subscription().TypeName())
}

func TestBuild_ReferencedBuiltinsInTypeList(t *testing.T) {
	schema := buildSDL(t, `
		schema { query: Query }

		type Query {
			name: String
			ok: Boolean
		}
	`)

	assert.Same(t, typesystem.String, schema.Type("String"))
	assert.Same(t, typesystem.Boolean, schema.Type("Boolean"))
	assert.Nil(t, schema.Type("Float"), "unreferenced built-ins stay out of the type list")
}
