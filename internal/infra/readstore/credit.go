package readstore

import (
	"context"

	"github.com/google/uuid"

	"campus-barter/internal/infra"
	"campus-barter/internal/infra/db"
	"campus-barter/internal/usecase/queries"
)

type CreditReadStore struct {
	db db.DBTX
}

func NewCreditReadStore(dbtx db.DBTX) *CreditReadStore {
	return &CreditReadStore{db: dbtx}
}

func (r *CreditReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.CreditView, error) {
	const query = `
		SELECT id, user_id, amount, reason, match_id, created_at
		FROM eco_credits
		WHERE user_id = $1
		ORDER BY created_at DESC, id`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list eco-credit entries", err)
	}
	defer rows.Close()

	var entries []*queries.CreditView
	for rows.Next() {
		var v queries.CreditView
		if err := rows.Scan(&v.ID, &v.UserID, &v.Amount, &v.Reason, &v.MatchID, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan eco-credit row", err)
		}
		entries = append(entries, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read eco-credit rows", err)
	}
	return entries, nil
}

func (r *CreditReadStore) SumByUserID(ctx context.Context, userID uuid.UUID) (int, error) {
	const query = `
		SELECT COALESCE(SUM(amount), 0)
		FROM eco_credits
		WHERE user_id = $1`

	var total int
	if err := r.db.QueryRow(ctx, query, userID).Scan(&total); err != nil {
		return 0, infra.WrapRepoErr("failed to sum eco-credits", err)
	}
	return total, nil
}

func (r *CreditReadStore) FindLeaderboard(ctx context.Context, limit int) ([]*queries.LeaderboardEntry, error) {
	const query = `
		SELECT u.id, u.name, u.department, COALESCE(SUM(c.amount), 0) AS total
		FROM users u
		JOIN eco_credits c ON c.user_id = u.id
		GROUP BY u.id, u.name, u.department
		ORDER BY total DESC, u.name
		LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load leaderboard", err)
	}
	defer rows.Close()

	var entries []*queries.LeaderboardEntry
	rank := 0
	for rows.Next() {
		var v queries.LeaderboardEntry
		if err := rows.Scan(&v.UserID, &v.UserName, &v.Department, &v.TotalCredits); err != nil {
			return nil, infra.WrapRepoErr("failed to scan leaderboard row", err)
		}
		rank++
		v.Rank = rank
		entries = append(entries, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read leaderboard rows", err)
	}
	return entries, nil
}
