package match

import "github.com/agnivade/levenshtein"

// Similarity scores the closeness of two strings on a 0-1 scale derived
// from rune-wise Levenshtein distance: 1 - distance/maxLen. Inputs are
// compared as given; pass them through Normalize first when case and
// accent insensitivity is wanted.
func Similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	if a == "" || b == "" {
		return 0
	}
	la := len([]rune(a))
	lb := len([]rune(b))
	maxLen := la
	if lb > maxLen {
		maxLen = lb
	}
	d := levenshtein.ComputeDistance(a, b)
	return 1 - float64(d)/float64(maxLen)
}
