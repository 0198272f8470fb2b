package repository

import (
	"context"

	"github.com/google/uuid"

	"campus-barter/internal/domain/lostfound"
	"campus-barter/internal/infra"
	"campus-barter/internal/infra/db"
)

type LostFoundRepository struct {
	db db.DBTX
}

func NewLostFoundRepository(dbtx db.DBTX) *LostFoundRepository {
	return &LostFoundRepository{db: dbtx}
}

func (r *LostFoundRepository) Create(ctx context.Context, p *lostfound.Posting) (uuid.UUID, error) {
	const query = `
		INSERT INTO lost_found (id, user_id, item_name, category, description, kind, photo_url, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query,
		p.ID(),
		p.UserID(),
		p.ItemName(),
		p.Category(),
		p.Description(),
		string(p.Kind()),
		p.PhotoURL(),
		p.Active(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create lost and found posting", err)
	}

	return id, nil
}
