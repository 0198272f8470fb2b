package queries

import (
	"context"

	"github.com/google/uuid"

	"campus-barter/internal/infra"
	"campus-barter/internal/pkg/errs"
)

var (
	ErrMatchNotFound = errs.New("match not found")
	ErrMatchAccess   = errs.New("match access denied")
)

type MatchQueries interface {
	GetByID(ctx context.Context, actor uuid.UUID, id uuid.UUID) (*MatchView, error)
	ListByParticipant(ctx context.Context, userID uuid.UUID) ([]*MatchView, error)
}

type MatchReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*MatchView, error)
	FindByParticipantID(ctx context.Context, userID uuid.UUID) ([]*MatchView, error)
}

type matchQueriesImpl struct {
	readStore MatchReadStore
}

func NewMatchQueries(readStore MatchReadStore) MatchQueries {
	return &matchQueriesImpl{
		readStore: readStore,
	}
}

// GetByID hides matches from users who are not part of them.
func (q *matchQueriesImpl) GetByID(ctx context.Context, actor uuid.UUID, id uuid.UUID) (*MatchView, error) {
	match, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}

	for _, p := range match.Participants {
		if p.UserID == actor {
			return match, nil
		}
	}
	return nil, ErrMatchAccess
}

func (q *matchQueriesImpl) ListByParticipant(ctx context.Context, userID uuid.UUID) ([]*MatchView, error) {
	return q.readStore.FindByParticipantID(ctx, userID)
}
