package response

import (
	"github.com/google/uuid"

	"campus-barter/internal/usecase/queries"
)

type RegisterResponse struct {
	UserID uuid.UUID `json:"user_id"`
}

type LoginResponse struct {
	AccessToken string                `json:"access_token"`
	User        *queries.AuthUserView `json:"user"`
}
