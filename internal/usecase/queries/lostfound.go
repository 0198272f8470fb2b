package queries

import (
	"context"

	"github.com/google/uuid"

	"campus-barter/internal/infra"
	"campus-barter/internal/pkg/errs"
)

var ErrPostingNotFound = errs.New("lost and found posting not found")

// LostFoundFilter narrows board results; zero values mean "no filter".
type LostFoundFilter struct {
	Kind     string
	Category string
}

type LostFoundQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*LostFoundView, error)
	List(ctx context.Context, filter LostFoundFilter) ([]*LostFoundView, error)
}

type LostFoundReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*LostFoundView, error)
	FindActive(ctx context.Context, filter LostFoundFilter) ([]*LostFoundView, error)
}

type lostFoundQueriesImpl struct {
	readStore LostFoundReadStore
}

func NewLostFoundQueries(readStore LostFoundReadStore) LostFoundQueries {
	return &lostFoundQueriesImpl{
		readStore: readStore,
	}
}

func (q *lostFoundQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*LostFoundView, error) {
	posting, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPostingNotFound
		}
		return nil, err
	}
	return posting, nil
}

func (q *lostFoundQueriesImpl) List(ctx context.Context, filter LostFoundFilter) ([]*LostFoundView, error) {
	return q.readStore.FindActive(ctx, filter)
}
