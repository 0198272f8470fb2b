package matching

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// Threshold is the minimum similarity for an offered category to satisfy a
// wanted category.
const Threshold = 0.7

// Similarity returns the Ratcliff/Obershelp ratio of two category labels in
// [0,1], case-insensitive. go-difflib is a direct port of Python's difflib,
// so near-miss labels score identically to the original matcher. An empty
// label never matches anything.
func Similarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	m := difflib.NewMatcher(
		strings.Split(strings.ToLower(a), ""),
		strings.Split(strings.ToLower(b), ""),
	)
	return m.Ratio()
}

func satisfies(offeredCategory, wantCategory string) bool {
	return Similarity(offeredCategory, wantCategory) >= Threshold
}
