package user

import (
	"strings"
)

type Email struct {
	value string
}

func NewEmail(value string) (Email, error) {
	value = strings.TrimSpace(strings.ToLower(value))
	if value == "" {
		return Email{}, ErrInvalidEmail
	}

	at := strings.Index(value, "@")
	if at <= 0 || at == len(value)-1 {
		return Email{}, ErrInvalidEmail
	}
	if !strings.Contains(value[at+1:], ".") {
		return Email{}, ErrInvalidEmail
	}

	return Email{value: value}, nil
}

func (e Email) String() string { return e.value }

type Semester struct {
	value int
}

func NewSemester(value int) (Semester, error) {
	if value < MinSemester || value > MaxSemester {
		return Semester{}, ErrInvalidSemester
	}
	return Semester{value: value}, nil
}

func (s Semester) Value() int { return s.value }

// Distance is the absolute semester gap, used by the compatibility scorer.
func (s Semester) Distance(other Semester) int {
	d := s.value - other.value
	if d < 0 {
		d = -d
	}
	return d
}
