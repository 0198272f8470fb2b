package readstore

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"campus-barter/internal/infra"
	"campus-barter/internal/infra/db"
	"campus-barter/internal/usecase/queries"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	const query = `
		SELECT id, name, email, semester, department, hostel, created_at
		FROM users
		WHERE id = $1`

	var v queries.UserView
	err := r.db.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.Name, &v.Email, &v.Semester, &v.Department, &v.Hostel, &v.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return &v, nil
}

func (r *UserReadStore) FindAuthByID(ctx context.Context, id uuid.UUID) (*queries.AuthUserView, error) {
	const query = `
		SELECT id, name, email, is_active
		FROM users
		WHERE id = $1`

	var v queries.AuthUserView
	err := r.db.QueryRow(ctx, query, id).Scan(&v.ID, &v.Name, &v.Email, &v.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return &v, nil
}

func (r *UserReadStore) FindAuthByEmail(ctx context.Context, email string) (*queries.AuthUserView, string, error) {
	const query = `
		SELECT id, name, email, is_active, password_hash
		FROM users
		WHERE email = $1`

	var (
		v    queries.AuthUserView
		hash string
	)
	err := r.db.QueryRow(ctx, query, email).Scan(&v.ID, &v.Name, &v.Email, &v.IsActive, &hash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return &v, hash, nil
}

func (r *UserReadStore) FindStats(ctx context.Context, userID uuid.UUID) (*queries.UserStatsView, error) {
	const query = `
		SELECT u.id,
		       u.name,
		       COALESCE((SELECT SUM(c.amount) FROM eco_credits c WHERE c.user_id = u.id), 0),
		       (SELECT COUNT(*) FROM matches m
		         WHERE m.status = 'completed'
		           AND m.participants @> jsonb_build_array(jsonb_build_object('user_id', u.id::text))),
		       (SELECT COUNT(*) FROM items i WHERE i.owner_id = u.id AND i.status = 'available'),
		       (SELECT COUNT(*) FROM matches m
		         WHERE m.status = 'pending'
		           AND m.participants @> jsonb_build_array(jsonb_build_object('user_id', u.id::text)))
		FROM users u
		WHERE u.id = $1`

	var v queries.UserStatsView
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&v.UserID, &v.UserName, &v.TotalCredits, &v.CompletedSwaps, &v.ActiveItems, &v.PendingMatches,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to load user stats", err)
	}
	return &v, nil
}
