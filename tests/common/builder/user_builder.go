//go:build unit || e2e

package builder

import (
	"time"

	domuser "campus-barter/internal/domain/user"
	"campus-barter/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID         uuid.UUID
	Name       string
	Email      string
	Password   string
	Semester   int
	Department string
	Hostel     string
	IsActive   bool
	CreatedAt  time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:         uuid.New(),
		Name:       "Asha Verma",
		Email:      "asha@campus.edu",
		Password:   "password123",
		Semester:   4,
		Department: "CSE",
		Hostel:     "Ganga",
		IsActive:   true,
		CreatedAt:  time.Now(),
	}
}

func (b *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(b)
	return b
}

func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.Name = name
	return b
}

func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.Email = email
	return b
}

func (b *UserBuilder) WithSemester(semester int) *UserBuilder {
	b.Semester = semester
	return b
}

func (b *UserBuilder) WithDepartment(department string) *UserBuilder {
	b.Department = department
	return b
}

func (b *UserBuilder) WithHostel(hostel string) *UserBuilder {
	b.Hostel = hostel
	return b
}

func (b *UserBuilder) BuildDomain() (*domuser.User, error) {
	return domuser.NewUser(b.Name, b.Email, b.Semester, b.Department, b.Hostel)
}

func (b *UserBuilder) BuildView() *queries.UserView {
	return &queries.UserView{
		ID:         b.ID,
		Name:       b.Name,
		Email:      b.Email,
		Semester:   b.Semester,
		Department: b.Department,
		Hostel:     b.Hostel,
		CreatedAt:  b.CreatedAt,
	}
}

func (b *UserBuilder) BuildAuthView() *queries.AuthUserView {
	return &queries.AuthUserView{
		ID:       b.ID,
		Name:     b.Name,
		Email:    b.Email,
		IsActive: b.IsActive,
	}
}
