//go:build unit

package matching_test

import (
	"testing"

	"campus-barter/internal/domain/matching"

	"github.com/stretchr/testify/assert"
)

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name     string
		a        string
		b        string
		expected float64
	}{
		{name: "identical labels", a: "books", b: "books", expected: 1.0},
		{name: "case insensitive", a: "Textbook", b: "textbook", expected: 1.0},
		{name: "mixed case", a: "ELECTRONICS", b: "electronics", expected: 1.0},
		{name: "singular vs plural", a: "books", b: "book", expected: 8.0 / 9.0},
		{name: "empty left", a: "", b: "books", expected: 0},
		{name: "empty right", a: "books", b: "", expected: 0},
		{name: "both empty", a: "", b: "", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, matching.Similarity(tt.a, tt.b), 1e-9)
		})
	}
}

func TestSimilarityThreshold(t *testing.T) {
	t.Run("near-miss labels clear the threshold", func(t *testing.T) {
		assert.GreaterOrEqual(t, matching.Similarity("books", "book"), matching.Threshold)
		assert.GreaterOrEqual(t, matching.Similarity("stationery", "stationary"), matching.Threshold)
	})

	t.Run("unrelated labels stay below the threshold", func(t *testing.T) {
		assert.Less(t, matching.Similarity("books", "electronics"), matching.Threshold)
		assert.Less(t, matching.Similarity("furniture", "sports"), matching.Threshold)
	})

	t.Run("similarity is symmetric", func(t *testing.T) {
		assert.InDelta(t, matching.Similarity("books", "book"), matching.Similarity("book", "books"), 1e-9)
	})
}
