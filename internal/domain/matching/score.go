package matching

// Traits are the user attributes the compatibility scorer looks at.
type Traits struct {
	Department string
	Semester   int
	Hostel     string
}

const (
	sameDepartmentBonus    = 2.0
	semesterProximityBonus = 1.0
	sameHostelEmergency    = 3.0
	sameHostelBonus        = 1.0
	emergencyBonus         = 5.0
)

// Score characterizes a discovered pair for display and ranking. It is
// additive with no upper bound and never gates whether a match is returned.
func Score(a, b Traits, intentA, intentB IntentView, emergencyContext bool) float64 {
	score := 0.0

	if a.Department == b.Department {
		score += sameDepartmentBonus
	}

	if semesterDistance(a.Semester, b.Semester) <= 1 {
		score += semesterProximityBonus
	}

	if a.Hostel == b.Hostel {
		if emergencyContext {
			score += sameHostelEmergency
		} else {
			score += sameHostelBonus
		}
	}

	if intentA.Emergency || intentB.Emergency {
		score += emergencyBonus
	}

	return score
}

func semesterDistance(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
