//go:build unit || e2e

package builder

import (
	reqdto "campus-barter/internal/handler/dto/request"
)

type AuthBuilder struct {
	Email    string
	Password string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Email:    "asha@campus.edu",
		Password: "password123",
	}
}

func (b *AuthBuilder) WithEmail(email string) *AuthBuilder {
	b.Email = email
	return b
}

func (b *AuthBuilder) WithPassword(password string) *AuthBuilder {
	b.Password = password
	return b
}

func (b *AuthBuilder) BuildDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    b.Email,
		Password: b.Password,
	}
}

func (b *AuthBuilder) BuildRegisterDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Name:       "Asha Verma",
		Email:      b.Email,
		Password:   b.Password,
		Semester:   4,
		Department: "CSE",
		Hostel:     "Ganga",
	}
}
