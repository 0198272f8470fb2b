package queries

import (
	"context"

	"github.com/google/uuid"

	"campus-barter/internal/infra"
	"campus-barter/internal/pkg/errs"
)

var ErrIntentNotFound = errs.New("barter intent not found")

type IntentQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*IntentView, error)
	ListActiveByOwner(ctx context.Context, ownerID uuid.UUID) ([]*IntentView, error)
}

type IntentReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*IntentView, error)
	FindActiveByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*IntentView, error)
}

type intentQueriesImpl struct {
	readStore IntentReadStore
}

func NewIntentQueries(readStore IntentReadStore) IntentQueries {
	return &intentQueriesImpl{
		readStore: readStore,
	}
}

func (q *intentQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*IntentView, error) {
	intent, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrIntentNotFound
		}
		return nil, err
	}
	return intent, nil
}

func (q *intentQueriesImpl) ListActiveByOwner(ctx context.Context, ownerID uuid.UUID) ([]*IntentView, error) {
	return q.readStore.FindActiveByOwnerID(ctx, ownerID)
}
