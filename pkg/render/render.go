// Package render turns command output into one of the CLI's three output
// formats: JSON for machines, line-oriented text for pipes, and lipgloss
// tables for terminals.
package render

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Format selects how a command renders its results.
type Format string

const (
	FormatJSON   Format = "json"
	FormatText   Format = "text"
	FormatPretty Format = "pretty"
)

// ValidFormats lists every accepted format, in help-text order.
var ValidFormats = []Format{FormatJSON, FormatText, FormatPretty}

// ParseFormat parses a --format flag value, case-insensitively.
func ParseFormat(s string) (Format, error) {
	normalized := Format(strings.ToLower(s))
	for _, f := range ValidFormats {
		if normalized == f {
			return f, nil
		}
	}
	return "", fmt.Errorf("invalid format: %s (valid: json, text, pretty)", s)
}

// Renderer renders a slice of result rows. JSON output marshals Data
// directly; the text and pretty formats delegate to the per-command
// formatting funcs.
type Renderer[T any] struct {
	Data         []T
	TextFormat   func(T) string
	PrettyFormat func([]T) string
}

// Render produces the output for the given format.
func (r Renderer[T]) Render(format Format) (string, error) {
	switch format {
	case FormatJSON:
		bytes, err := json.MarshalIndent(r.Data, "", "  ")
		if err != nil {
			return "", err
		}
		return string(bytes), nil

	case FormatText:
		if r.TextFormat == nil {
			return "", fmt.Errorf("text format not defined for this type")
		}
		lines := make([]string, 0, len(r.Data))
		for _, item := range r.Data {
			lines = append(lines, r.TextFormat(item))
		}
		return strings.Join(lines, "\n"), nil

	case FormatPretty:
		if r.PrettyFormat == nil {
			return "", fmt.Errorf("pretty format not defined for this type")
		}
		return r.PrettyFormat(r.Data), nil

	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}
