package diagnostic

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderSnippet(t *testing.T) {
	result := RenderSnippet("name: Strng!", 3, 7, 5, "unknown type 'Strng'")

	assert.Contains(t, result, "name: Strng!")
	assert.Contains(t, result, "^^^^^")
	assert.Contains(t, result, "unknown type 'Strng'")
	assert.Contains(t, result, "3")
	assert.Contains(t, result, "|")
}

func TestRenderSnippet_NoMessage(t *testing.T) {
	result := RenderSnippet("query", 1, 1, 5, "")

	assert.Contains(t, result, "query")
	assert.Contains(t, result, "^^^^^")
}

func TestRenderSnippet_ClampsLengthAndColumn(t *testing.T) {
	result := RenderSnippet("test", 1, 0, 0, "")

	// Zero length and column fall back to a single caret at column one
	assert.Contains(t, result, "^")
}

func TestRenderSnippet_GutterAlignment(t *testing.T) {
	result := RenderSnippet("code", 1234, 1, 4, "")

	lines := strings.Split(result, "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, result, "1234")

	// The underline gutter pads to the line number's width:
	//   1234 | code
	//        | ^^^^
	assert.True(t, strings.HasPrefix(stripAnsi(lines[1]), "    "), "underline should have 4-space gutter")
}

func TestRenderLocation(t *testing.T) {
	result := RenderLocation("schema.graphql", 3, 9)
	assert.Contains(t, result, "-->")
	assert.Contains(t, result, "schema.graphql:3:9")
}

func TestRenderHelp(t *testing.T) {
	result := RenderHelp("did you mean `String`?")
	assert.Contains(t, result, "= help:")
	assert.Contains(t, result, "did you mean `String`?")
}

// stripAnsi removes ANSI escape codes for testing
func stripAnsi(s string) string {
	var result strings.Builder
	inEscape := false
	for _, r := range s {
		if r == '\x1b' {
			inEscape = true
			continue
		}
		if inEscape {
			if r == 'm' {
				inEscape = false
			}
			continue
		}
		result.WriteRune(r)
	}
	return result.String()
}
