package queries

import (
	"context"

	"github.com/google/uuid"
)

type CreditQueries interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*CreditView, error)
	BalanceByUser(ctx context.Context, userID uuid.UUID) (int, error)
	Leaderboard(ctx context.Context, limit int) ([]*LeaderboardEntry, error)
}

type CreditReadStore interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*CreditView, error)
	SumByUserID(ctx context.Context, userID uuid.UUID) (int, error)
	FindLeaderboard(ctx context.Context, limit int) ([]*LeaderboardEntry, error)
}

type creditQueriesImpl struct {
	readStore CreditReadStore
}

func NewCreditQueries(readStore CreditReadStore) CreditQueries {
	return &creditQueriesImpl{
		readStore: readStore,
	}
}

func (q *creditQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*CreditView, error) {
	return q.readStore.FindByUserID(ctx, userID)
}

func (q *creditQueriesImpl) BalanceByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	return q.readStore.SumByUserID(ctx, userID)
}

func (q *creditQueriesImpl) Leaderboard(ctx context.Context, limit int) ([]*LeaderboardEntry, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	return q.readStore.FindLeaderboard(ctx, limit)
}
