package cmd_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/typegraph/typegraph/cmd"
)

const fieldsTestSchema = `
schema {
  query: Query
}

type User {
  "The user's unique identifier"
  id: ID!
  name: String!
  email: String
  posts(first: Int, after: String): [Post!]!
  nickname: String @deprecated(reason: "Use name instead")
  legacyId: Int @deprecated
}

type Post {
  id: ID!
  title: String!
  author: User!
}

type Query {
  user(id: ID!): User
  posts: [Post!]!
}
`

func setupFieldsTestSchema(t *testing.T) string {
	t.Helper()
	return writeTestSchema(t, fieldsTestSchema)
}

func TestFields_SingleType(t *testing.T) {
	schemaPath := setupFieldsTestSchema(t)

	stdout, _, err := cmd.ExecuteWithArgs([]string{"fields", "User", "-s", schemaPath, "-f", "text"})
	require.NoError(t, err)

	assert.Contains(t, stdout, "id: ID!")
	assert.Contains(t, stdout, "name: String!")
	assert.Contains(t, stdout, "email: String")
	assert.Contains(t, stdout, "# The user's unique identifier")

	// Fields of other types are not listed
	assert.NotContains(t, stdout, "title")
}

func TestFields_ResolvedWrapperChain(t *testing.T) {
	schemaPath := setupFieldsTestSchema(t)

	stdout, _, err := cmd.ExecuteWithArgs([]string{"fields", "User", "-s", schemaPath, "-f", "text"})
	require.NoError(t, err)

	// The type column shows the full wrapper chain of the built type
	assert.Contains(t, stdout, "[Post!]!")
}

func TestFields_AllTypes(t *testing.T) {
	schemaPath := setupFieldsTestSchema(t)

	stdout, _, err := cmd.ExecuteWithArgs([]string{"fields", "-s", schemaPath, "-f", "text"})
	require.NoError(t, err)

	// Fields are prefixed with their type
	assert.Contains(t, stdout, "User.id")
	assert.Contains(t, stdout, "Post.title")
	assert.Contains(t, stdout, "Query.user")
}

func TestFields_JSONFormat(t *testing.T) {
	schemaPath := setupFieldsTestSchema(t)

	stdout, _, err := cmd.ExecuteWithArgs([]string{"fields", "User", "-s", schemaPath, "-f", "json"})
	require.NoError(t, err)

	var fields []struct {
		Name              string `json:"name"`
		Type              string `json:"type"`
		DeprecationReason string `json:"deprecationReason,omitempty"`
	}

	err = json.Unmarshal([]byte(stdout), &fields)
	require.NoError(t, err)

	fieldMap := make(map[string]struct {
		Type              string
		DeprecationReason string
	})
	for _, f := range fields {
		fieldMap[f.Name] = struct {
			Type              string
			DeprecationReason string
		}{f.Type, f.DeprecationReason}
	}

	assert.Equal(t, "ID!", fieldMap["id"].Type)
	assert.Equal(t, "[Post!]!", fieldMap["posts"].Type)
	assert.Equal(t, "Use name instead", fieldMap["nickname"].DeprecationReason)

	// @deprecated with no reason gets the default reason
	assert.Equal(t, "No longer supported", fieldMap["legacyId"].DeprecationReason)
}

func TestFields_DeprecatedFilter(t *testing.T) {
	schemaPath := setupFieldsTestSchema(t)

	stdout, _, err := cmd.ExecuteWithArgs([]string{"fields", "User", "-s", schemaPath, "-f", "text", "--deprecated"})
	require.NoError(t, err)

	assert.Contains(t, stdout, "nickname")
	assert.Contains(t, stdout, "legacyId")
	assert.NotContains(t, stdout, "email")
}

func TestFields_HasArgFilter(t *testing.T) {
	schemaPath := setupFieldsTestSchema(t)

	stdout, _, err := cmd.ExecuteWithArgs([]string{"fields", "-s", schemaPath, "-f", "text", "--has-arg", "first", "--has-arg", "after"})
	require.NoError(t, err)

	assert.Contains(t, stdout, "User.posts")
	assert.NotContains(t, stdout, "Query.user")
}

func TestFields_ReturnsFilter(t *testing.T) {
	schemaPath := setupFieldsTestSchema(t)

	stdout, _, err := cmd.ExecuteWithArgs([]string{"fields", "-s", schemaPath, "-f", "text", "--returns", "Post"})
	require.NoError(t, err)

	// Matches through list and non-null wrappers
	assert.Contains(t, stdout, "User.posts")
	assert.Contains(t, stdout, "Query.posts")
	assert.NotContains(t, stdout, "Query.user")
}

func TestFields_RequiredFilter(t *testing.T) {
	schemaPath := setupFieldsTestSchema(t)

	stdout, _, err := cmd.ExecuteWithArgs([]string{"fields", "User", "-s", schemaPath, "-f", "text", "--required"})
	require.NoError(t, err)

	assert.Contains(t, stdout, "id: ID!")
	assert.NotContains(t, stdout, "email")
}

func TestFields_NullableFilter(t *testing.T) {
	schemaPath := setupFieldsTestSchema(t)

	stdout, _, err := cmd.ExecuteWithArgs([]string{"fields", "User", "-s", schemaPath, "-f", "text", "--nullable"})
	require.NoError(t, err)

	assert.Contains(t, stdout, "email")
	assert.NotContains(t, stdout, "id: ID!")
}

func TestFields_RequiredAndNullableConflict(t *testing.T) {
	schemaPath := setupFieldsTestSchema(t)

	_, _, err := cmd.ExecuteWithArgs([]string{"fields", "User", "-s", schemaPath, "--required", "--nullable"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be used together")
}

func TestFields_NameGlobFilter(t *testing.T) {
	schemaPath := setupFieldsTestSchema(t)

	stdout, _, err := cmd.ExecuteWithArgs([]string{"fields", "-s", schemaPath, "-f", "text", "--name", "*Id"})
	require.NoError(t, err)

	assert.Contains(t, stdout, "legacyId")
	assert.NotContains(t, stdout, "name:")
}

func TestFields_NameRegexFilter(t *testing.T) {
	schemaPath := setupFieldsTestSchema(t)

	stdout, _, err := cmd.ExecuteWithArgs([]string{"fields", "User", "-s", schemaPath, "-f", "text", "--name-regex", "^(id|name)$"})
	require.NoError(t, err)

	assert.Contains(t, stdout, "id: ID!")
	assert.Contains(t, stdout, "name: String!")
	assert.NotContains(t, stdout, "email")
}

func TestFields_InvalidNameRegex(t *testing.T) {
	schemaPath := setupFieldsTestSchema(t)

	_, _, err := cmd.ExecuteWithArgs([]string{"fields", "User", "-s", schemaPath, "--name-regex", "["})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid regex")
}

func TestFields_TypeNotFound_DidYouMean(t *testing.T) {
	schemaPath := setupFieldsTestSchema(t)

	_, _, err := cmd.ExecuteWithArgs([]string{"fields", "Usr", "-s", schemaPath})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "did you mean")
	assert.Contains(t, err.Error(), "User")
}

func TestFields_FieldLessType(t *testing.T) {
	schemaPath := writeTestSchema(t, `
		schema {
			query: Query
		}

		enum Status {
			ACTIVE
		}

		type Query {
			status: Status
		}
	`)

	_, _, err := cmd.ExecuteWithArgs([]string{"fields", "Status", "-s", schemaPath})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "has no fields")
}

func TestFields_InterfaceFields(t *testing.T) {
	schemaPath := writeTestSchema(t, `
		schema {
			query: Query
		}

		interface Node {
			id: ID!
		}

		type User implements Node {
			id: ID!
		}

		type Query {
			node: Node
			user: User
		}
	`)

	stdout, _, err := cmd.ExecuteWithArgs([]string{"fields", "Node", "-s", schemaPath, "-f", "text"})
	require.NoError(t, err)

	assert.Contains(t, stdout, "id: ID!")
}
