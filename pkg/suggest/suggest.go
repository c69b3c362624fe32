// Package suggest produces "did you mean" candidates for mistyped names.
package suggest

import (
	"github.com/agnivade/levenshtein"
)

// maxDistance bounds how far a candidate may be from the input before it
// stops being a plausible typo.
const maxDistance = 5

// Closest returns the candidate nearest to input by edit distance, or ""
// when there are no candidates or none is close enough. Ties go to the
// earliest candidate, so pass a sorted slice for deterministic output.
func Closest(input string, candidates []string) string {
	minDist := -1
	closest := ""
	for _, c := range candidates {
		dist := levenshtein.ComputeDistance(input, c)
		if minDist == -1 || dist < minDist {
			minDist = dist
			closest = c
		}
	}
	if minDist == -1 || minDist > maxDistance {
		return ""
	}
	return closest
}
