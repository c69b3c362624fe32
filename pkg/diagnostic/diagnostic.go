// Package diagnostic renders compiler-style error output: a location
// header, the offending source line, and a caret underline with the
// message alongside.
package diagnostic

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	gutterStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	caretStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	messageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
)

// RenderLocation renders a location header like "--> schema.graphql:3:9".
func RenderLocation(filename string, line int, column int) string {
	arrow := gutterStyle.Render("-->")
	return arrow + " " + filename + ":" + strconv.Itoa(line) + ":" + strconv.Itoa(column)
}

// RenderSnippet renders a source line with its line number and a caret
// underline of the given length:
//
//	3 | name: Strng!
//	  |       ^^^^^ unknown type 'Strng'
func RenderSnippet(source string, lineNum int, column int, length int, message string) string {
	if length < 1 {
		length = 1
	}
	if column < 1 {
		column = 1
	}

	numStr := strconv.Itoa(lineNum)
	pipe := gutterStyle.Render("|")

	var b strings.Builder
	b.WriteString(gutterStyle.Render(numStr))
	b.WriteString(" ")
	b.WriteString(pipe)
	b.WriteString(" ")
	b.WriteString(source)
	b.WriteString("\n")

	b.WriteString(strings.Repeat(" ", len(numStr)))
	b.WriteString(" ")
	b.WriteString(pipe)
	b.WriteString(" ")
	b.WriteString(strings.Repeat(" ", column-1))
	b.WriteString(caretStyle.Render(strings.Repeat("^", length)))
	if message != "" {
		b.WriteString(" ")
		b.WriteString(messageStyle.Render(message))
	}

	return b.String()
}

// RenderHelp renders a help footer like "  = help: did you mean `String`?".
func RenderHelp(message string) string {
	return "  " + helpStyle.Render("= help:") + " " + message
}
