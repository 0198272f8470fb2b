package credit

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNonPositiveAmount = errors.New("credit amount must be positive")
	ErrEmptyReason       = errors.New("credit reason cannot be empty")
)

// SwapRewardAmount is granted to every participant of a completed match.
const SwapRewardAmount = 10

// Entry is one append-only eco-credit grant. A user's balance is the sum of
// their entries; entries are never updated or deleted.
type Entry struct {
	id        uuid.UUID
	userID    uuid.UUID
	amount    int
	reason    string
	matchID   *uuid.UUID
	createdAt time.Time
}

func NewEntry(userID uuid.UUID, amount int, reason string, matchID *uuid.UUID) (*Entry, error) {
	if amount <= 0 {
		return nil, ErrNonPositiveAmount
	}

	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, ErrEmptyReason
	}

	return &Entry{
		id:      uuid.New(),
		userID:  userID,
		amount:  amount,
		reason:  reason,
		matchID: matchID,
	}, nil
}

func ReconstructEntry(id, userID uuid.UUID, amount int, reason string, matchID *uuid.UUID, createdAt time.Time) *Entry {
	return &Entry{
		id:        id,
		userID:    userID,
		amount:    amount,
		reason:    reason,
		matchID:   matchID,
		createdAt: createdAt,
	}
}

func (e *Entry) ID() uuid.UUID        { return e.id }
func (e *Entry) UserID() uuid.UUID    { return e.userID }
func (e *Entry) Amount() int          { return e.amount }
func (e *Entry) Reason() string       { return e.reason }
func (e *Entry) MatchID() *uuid.UUID  { return e.matchID }
func (e *Entry) CreatedAt() time.Time { return e.createdAt }
