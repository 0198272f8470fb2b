package readstore

import (
	"context"
	"errors"
	"strconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"campus-barter/internal/infra"
	"campus-barter/internal/infra/db"
	"campus-barter/internal/usecase/queries"
)

type LostFoundReadStore struct {
	db db.DBTX
}

func NewLostFoundReadStore(dbtx db.DBTX) *LostFoundReadStore {
	return &LostFoundReadStore{db: dbtx}
}

const lostFoundColumns = `id, user_id, item_name, category, description, kind, photo_url, active, created_at`

func (r *LostFoundReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.LostFoundView, error) {
	query := `SELECT ` + lostFoundColumns + ` FROM lost_found WHERE id = $1`

	var v queries.LostFoundView
	err := r.db.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.UserID, &v.ItemName, &v.Category, &v.Description,
		&v.Kind, &v.PhotoURL, &v.Active, &v.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("lost and found posting not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find lost and found posting", err)
	}
	return &v, nil
}

func (r *LostFoundReadStore) FindActive(ctx context.Context, filter queries.LostFoundFilter) ([]*queries.LostFoundView, error) {
	query := `SELECT ` + lostFoundColumns + ` FROM lost_found WHERE active`
	args := []any{}

	if filter.Kind != "" {
		args = append(args, filter.Kind)
		query += ` AND kind = $` + strconv.Itoa(len(args))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		query += ` AND category = $` + strconv.Itoa(len(args))
	}
	query += ` ORDER BY created_at DESC, id`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list lost and found postings", err)
	}
	defer rows.Close()

	var postings []*queries.LostFoundView
	for rows.Next() {
		var v queries.LostFoundView
		if err := rows.Scan(
			&v.ID, &v.UserID, &v.ItemName, &v.Category, &v.Description,
			&v.Kind, &v.PhotoURL, &v.Active, &v.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan lost and found row", err)
		}
		postings = append(postings, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read lost and found rows", err)
	}
	return postings, nil
}
