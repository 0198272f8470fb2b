package intent

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrEmptyWantCategory = errors.New("want category cannot be empty")

// Intent declares "I offer this item, I want something in that category".
// Several intents may be simultaneously active for one owner; an intent is
// deactivated when a match consuming its item completes, or by withdrawal.
type Intent struct {
	id              uuid.UUID
	ownerID         uuid.UUID
	itemID          uuid.UUID
	wantCategory    string
	wantDescription *string
	emergency       bool
	active          bool
	createdAt       time.Time
}

func NewIntent(ownerID, itemID uuid.UUID, wantCategory string, wantDescription *string, emergency bool) (*Intent, error) {
	wantCategory = strings.TrimSpace(wantCategory)
	if wantCategory == "" {
		return nil, ErrEmptyWantCategory
	}

	return &Intent{
		id:              uuid.New(),
		ownerID:         ownerID,
		itemID:          itemID,
		wantCategory:    wantCategory,
		wantDescription: wantDescription,
		emergency:       emergency,
		active:          true,
	}, nil
}

func ReconstructIntent(
	id, ownerID, itemID uuid.UUID,
	wantCategory string,
	wantDescription *string,
	emergency, active bool,
	createdAt time.Time,
) *Intent {
	return &Intent{
		id:              id,
		ownerID:         ownerID,
		itemID:          itemID,
		wantCategory:    wantCategory,
		wantDescription: wantDescription,
		emergency:       emergency,
		active:          active,
		createdAt:       createdAt,
	}
}

func (i *Intent) Deactivate() {
	i.active = false
}

func (i *Intent) ID() uuid.UUID            { return i.id }
func (i *Intent) OwnerID() uuid.UUID       { return i.ownerID }
func (i *Intent) ItemID() uuid.UUID        { return i.itemID }
func (i *Intent) WantCategory() string     { return i.wantCategory }
func (i *Intent) WantDescription() *string { return i.wantDescription }
func (i *Intent) Emergency() bool          { return i.emergency }
func (i *Intent) Active() bool             { return i.active }
func (i *Intent) CreatedAt() time.Time     { return i.createdAt }
