package shared

import (
	"context"

	"campus-barter/internal/domain/credit"
	"campus-barter/internal/domain/intent"
	"campus-barter/internal/domain/item"
	"campus-barter/internal/domain/lostfound"
	"campus-barter/internal/domain/match"
	"campus-barter/internal/domain/user"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Users() UserRepository
	Items() ItemRepository
	Intents() IntentRepository
	Matches() MatchRepository
	Credits() CreditRepository
	LostFound() LostFoundRepository
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User, passwordHash string) (uuid.UUID, error)
}

type ItemRepository interface {
	Create(ctx context.Context, i *item.Item) (uuid.UUID, error)
	SetStatus(ctx context.Context, itemID uuid.UUID, status item.Status) error
}

type IntentRepository interface {
	Create(ctx context.Context, i *intent.Intent) (uuid.UUID, error)
	// DeactivateByItemIDs retires every active intent offering one of the
	// given items; used by the completion transaction.
	DeactivateByItemIDs(ctx context.Context, itemIDs []uuid.UUID) error
}

type MatchRepository interface {
	Create(ctx context.Context, m *match.Match) (uuid.UUID, error)
	// FindByIDForUpdate row-locks the match so concurrent accepts on the
	// same match serialize; the completion transaction depends on this.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*match.Match, error)
	UpdateAcceptance(ctx context.Context, m *match.Match) error
}

type CreditRepository interface {
	Append(ctx context.Context, e *credit.Entry) error
}

type LostFoundRepository interface {
	Create(ctx context.Context, p *lostfound.Posting) (uuid.UUID, error)
}
