package user

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName       = errors.New("name cannot be empty")
	ErrInvalidEmail    = errors.New("invalid email")
	ErrInvalidSemester = errors.New("semester must be between 1 and 8")
	ErrEmptyDepartment = errors.New("department cannot be empty")
	ErrEmptyHostel     = errors.New("hostel cannot be empty")
)

const (
	MinSemester = 1
	MaxSemester = 8
)

type User struct {
	id         uuid.UUID
	name       string
	email      Email
	semester   Semester
	department string
	hostel     string
	isActive   bool
	createdAt  time.Time
	updatedAt  time.Time
}

func NewUser(name, email string, semester int, department, hostel string) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	emailVO, err := NewEmail(email)
	if err != nil {
		return nil, err
	}

	semesterVO, err := NewSemester(semester)
	if err != nil {
		return nil, err
	}

	department = strings.TrimSpace(department)
	if department == "" {
		return nil, ErrEmptyDepartment
	}

	hostel = strings.TrimSpace(hostel)
	if hostel == "" {
		return nil, ErrEmptyHostel
	}

	return &User{
		id:         uuid.New(),
		name:       name,
		email:      emailVO,
		semester:   semesterVO,
		department: department,
		hostel:     hostel,
		isActive:   true,
	}, nil
}

func ReconstructUser(
	id uuid.UUID,
	name string,
	email Email,
	semester Semester,
	department, hostel string,
	isActive bool,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:         id,
		name:       name,
		email:      email,
		semester:   semester,
		department: department,
		hostel:     hostel,
		isActive:   isActive,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Name() string         { return u.name }
func (u *User) Email() Email         { return u.email }
func (u *User) Semester() Semester   { return u.semester }
func (u *User) Department() string   { return u.department }
func (u *User) Hostel() string       { return u.hostel }
func (u *User) IsActive() bool       { return u.isActive }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }
