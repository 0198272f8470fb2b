package lostfound

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyItemName = errors.New("item name cannot be empty")
	ErrEmptyCategory = errors.New("category cannot be empty")
	ErrInvalidKind   = errors.New("kind must be lost or found")
)

type Kind string

const (
	KindLost  Kind = "lost"
	KindFound Kind = "found"
)

func NewKind(value string) (Kind, error) {
	switch k := Kind(value); k {
	case KindLost, KindFound:
		return k, nil
	default:
		return "", ErrInvalidKind
	}
}

type Posting struct {
	id          uuid.UUID
	userID      uuid.UUID
	itemName    string
	category    string
	description *string
	kind        Kind
	photoURL    *string
	active      bool
	createdAt   time.Time
}

func NewPosting(userID uuid.UUID, itemName, category string, description *string, kind Kind, photoURL *string) (*Posting, error) {
	itemName = strings.TrimSpace(itemName)
	if itemName == "" {
		return nil, ErrEmptyItemName
	}

	category = strings.TrimSpace(category)
	if category == "" {
		return nil, ErrEmptyCategory
	}

	if _, err := NewKind(string(kind)); err != nil {
		return nil, err
	}

	return &Posting{
		id:          uuid.New(),
		userID:      userID,
		itemName:    itemName,
		category:    category,
		description: description,
		kind:        kind,
		photoURL:    photoURL,
		active:      true,
	}, nil
}

func ReconstructPosting(
	id, userID uuid.UUID,
	itemName, category string,
	description *string,
	kind Kind,
	photoURL *string,
	active bool,
	createdAt time.Time,
) *Posting {
	return &Posting{
		id:          id,
		userID:      userID,
		itemName:    itemName,
		category:    category,
		description: description,
		kind:        kind,
		photoURL:    photoURL,
		active:      active,
		createdAt:   createdAt,
	}
}

func (p *Posting) ID() uuid.UUID        { return p.id }
func (p *Posting) UserID() uuid.UUID    { return p.userID }
func (p *Posting) ItemName() string     { return p.itemName }
func (p *Posting) Category() string     { return p.category }
func (p *Posting) Description() *string { return p.description }
func (p *Posting) Kind() Kind           { return p.kind }
func (p *Posting) PhotoURL() *string    { return p.photoURL }
func (p *Posting) Active() bool         { return p.active }
func (p *Posting) CreatedAt() time.Time { return p.createdAt }
