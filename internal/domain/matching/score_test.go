//go:build unit

package matching_test

import (
	"testing"

	"campus-barter/internal/domain/matching"

	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	base := matching.Traits{Department: "CSE", Semester: 4, Hostel: "Ganga"}
	plain := matching.IntentView{}
	emergency := matching.IntentView{Emergency: true}

	tests := []struct {
		name      string
		a         matching.Traits
		b         matching.Traits
		intentA   matching.IntentView
		intentB   matching.IntentView
		emergency bool
		expected  float64
	}{
		{
			name:     "no shared traits",
			a:        base,
			b:        matching.Traits{Department: "ME", Semester: 7, Hostel: "Yamuna"},
			intentA:  plain,
			intentB:  plain,
			expected: 0,
		},
		{
			name:     "identical traits",
			a:        base,
			b:        base,
			intentA:  plain,
			intentB:  plain,
			expected: 4, // department 2 + semester 1 + hostel 1
		},
		{
			name:     "same department only",
			a:        base,
			b:        matching.Traits{Department: "CSE", Semester: 7, Hostel: "Yamuna"},
			intentA:  plain,
			intentB:  plain,
			expected: 2,
		},
		{
			name:     "adjacent semester counts as close",
			a:        base,
			b:        matching.Traits{Department: "ME", Semester: 5, Hostel: "Yamuna"},
			intentA:  plain,
			intentB:  plain,
			expected: 1,
		},
		{
			name:     "semester two apart scores nothing",
			a:        base,
			b:        matching.Traits{Department: "ME", Semester: 6, Hostel: "Yamuna"},
			intentA:  plain,
			intentB:  plain,
			expected: 0,
		},
		{
			name:      "same hostel weighs more under emergency",
			a:         base,
			b:         matching.Traits{Department: "ME", Semester: 7, Hostel: "Ganga"},
			intentA:   emergency,
			intentB:   plain,
			emergency: true,
			expected:  8, // hostel 3 + emergency 5
		},
		{
			name:     "emergency bonus applies from either side",
			a:        base,
			b:        matching.Traits{Department: "ME", Semester: 7, Hostel: "Yamuna"},
			intentA:  plain,
			intentB:  emergency,
			expected: 5,
		},
		{
			name:      "everything lines up under emergency",
			a:         base,
			b:         base,
			intentA:   emergency,
			intentB:   plain,
			emergency: true,
			expected:  11, // department 2 + semester 1 + hostel 3 + emergency 5
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := matching.Score(tt.a, tt.b, tt.intentA, tt.intentB, tt.emergency)
			assert.InDelta(t, tt.expected, got, 1e-9)
		})
	}
}
