package queries

import (
	"context"

	"github.com/google/uuid"

	"campus-barter/internal/infra"
	"campus-barter/internal/pkg/errs"
)

var ErrItemNotFound = errs.New("item not found")

// ItemFilter narrows browse results; zero values mean "no filter".
type ItemFilter struct {
	Category   string
	Department string
	Status     string
}

type ItemQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ItemView, error)
	List(ctx context.Context, filter ItemFilter) ([]*ItemView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*ItemView, error)
}

type ItemReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ItemView, error)
	FindAll(ctx context.Context, filter ItemFilter) ([]*ItemView, error)
	FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*ItemView, error)
}

type itemQueriesImpl struct {
	readStore ItemReadStore
}

func NewItemQueries(readStore ItemReadStore) ItemQueries {
	return &itemQueriesImpl{
		readStore: readStore,
	}
}

func (q *itemQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ItemView, error) {
	item, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return item, nil
}

func (q *itemQueriesImpl) List(ctx context.Context, filter ItemFilter) ([]*ItemView, error) {
	return q.readStore.FindAll(ctx, filter)
}

func (q *itemQueriesImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*ItemView, error) {
	return q.readStore.FindByOwnerID(ctx, ownerID)
}
