package repository

import (
	"context"

	"campus-barter/internal/domain/credit"
	"campus-barter/internal/infra"
	"campus-barter/internal/infra/db"
)

type CreditRepository struct {
	db db.DBTX
}

func NewCreditRepository(dbtx db.DBTX) *CreditRepository {
	return &CreditRepository{db: dbtx}
}

// Append inserts one ledger entry. Entries are never updated or deleted.
func (r *CreditRepository) Append(ctx context.Context, e *credit.Entry) error {
	const query = `
		INSERT INTO eco_credits (id, user_id, amount, reason, match_id)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(ctx, query,
		e.ID(),
		e.UserID(),
		e.Amount(),
		e.Reason(),
		e.MatchID(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to append eco-credit entry", err)
	}
	return nil
}
