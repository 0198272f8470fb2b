package repository

import (
	"context"

	"github.com/google/uuid"

	"campus-barter/internal/domain/item"
	"campus-barter/internal/infra"
	"campus-barter/internal/infra/db"
)

type ItemRepository struct {
	db db.DBTX
}

func NewItemRepository(dbtx db.DBTX) *ItemRepository {
	return &ItemRepository{db: dbtx}
}

func (r *ItemRepository) Create(ctx context.Context, i *item.Item) (uuid.UUID, error) {
	const query = `
		INSERT INTO items (id, owner_id, name, category, condition, department, photo_url, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query,
		i.ID(),
		i.OwnerID(),
		i.Name(),
		i.Category(),
		i.Condition(),
		i.Department(),
		i.PhotoURL(),
		string(i.Status()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create item", err)
	}

	return id, nil
}

func (r *ItemRepository) SetStatus(ctx context.Context, itemID uuid.UUID, status item.Status) error {
	const query = `
		UPDATE items
		SET status = $2, updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, itemID, string(status))
	if err != nil {
		return infra.WrapRepoErr("failed to update item status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("item not found", nil, infra.KindNotFound)
	}
	return nil
}
