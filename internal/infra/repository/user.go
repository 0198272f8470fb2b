package repository

import (
	"context"

	"github.com/google/uuid"

	"campus-barter/internal/domain/user"
	"campus-barter/internal/infra"
	"campus-barter/internal/infra/db"
)

type UserRepository struct {
	db db.DBTX
}

func NewUserRepository(dbtx db.DBTX) *UserRepository {
	return &UserRepository{db: dbtx}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User, passwordHash string) (uuid.UUID, error) {
	const query = `
		INSERT INTO users (id, name, email, password_hash, semester, department, hostel, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query,
		u.ID(),
		u.Name(),
		u.Email().String(),
		passwordHash,
		u.Semester().Value(),
		u.Department(),
		u.Hostel(),
		u.IsActive(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}

	return id, nil
}
