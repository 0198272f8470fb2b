package repository

import (
	"context"

	"github.com/google/uuid"

	"campus-barter/internal/domain/intent"
	"campus-barter/internal/infra"
	"campus-barter/internal/infra/db"
)

type IntentRepository struct {
	db db.DBTX
}

func NewIntentRepository(dbtx db.DBTX) *IntentRepository {
	return &IntentRepository{db: dbtx}
}

func (r *IntentRepository) Create(ctx context.Context, i *intent.Intent) (uuid.UUID, error) {
	const query = `
		INSERT INTO barter_intents (id, owner_id, item_id, want_category, want_description, emergency, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query,
		i.ID(),
		i.OwnerID(),
		i.ItemID(),
		i.WantCategory(),
		i.WantDescription(),
		i.Emergency(),
		i.Active(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create barter intent", err)
	}

	return id, nil
}

func (r *IntentRepository) DeactivateByItemIDs(ctx context.Context, itemIDs []uuid.UUID) error {
	if len(itemIDs) == 0 {
		return nil
	}

	const query = `
		UPDATE barter_intents
		SET active = false
		WHERE item_id = ANY($1) AND active`

	if _, err := r.db.Exec(ctx, query, itemIDs); err != nil {
		return infra.WrapRepoErr("failed to deactivate barter intents", err)
	}
	return nil
}
