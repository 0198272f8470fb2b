package item

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName         = errors.New("item name cannot be empty")
	ErrEmptyCategory     = errors.New("item category cannot be empty")
	ErrEmptyCondition    = errors.New("item condition cannot be empty")
	ErrInvalidStatus     = errors.New("invalid item status")
	ErrBackwardMovement  = errors.New("item status cannot move backward")
)

// Status is the swap lifecycle of an item. Transitions only move forward:
// available -> in_swap -> swapped.
type Status string

const (
	StatusAvailable Status = "available"
	StatusInSwap    Status = "in_swap"
	StatusSwapped   Status = "swapped"
)

var statusOrder = map[Status]int{
	StatusAvailable: 0,
	StatusInSwap:    1,
	StatusSwapped:   2,
}

func NewStatus(value string) (Status, error) {
	s := Status(value)
	if _, ok := statusOrder[s]; !ok {
		return "", ErrInvalidStatus
	}
	return s, nil
}

func (s Status) String() string { return string(s) }

func (s Status) CanTransitionTo(next Status) bool {
	from, ok := statusOrder[s]
	if !ok {
		return false
	}
	to, ok := statusOrder[next]
	if !ok {
		return false
	}
	return to >= from
}

type Item struct {
	id         uuid.UUID
	ownerID    uuid.UUID
	name       string
	category   string
	condition  string
	department *string
	photoURL   *string
	status     Status
	createdAt  time.Time
	updatedAt  time.Time
}

func NewItem(ownerID uuid.UUID, name, category, condition string, department, photoURL *string) (*Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	category = strings.TrimSpace(category)
	if category == "" {
		return nil, ErrEmptyCategory
	}

	condition = strings.TrimSpace(condition)
	if condition == "" {
		return nil, ErrEmptyCondition
	}

	return &Item{
		id:         uuid.New(),
		ownerID:    ownerID,
		name:       name,
		category:   category,
		condition:  condition,
		department: department,
		photoURL:   photoURL,
		status:     StatusAvailable,
	}, nil
}

func ReconstructItem(
	id, ownerID uuid.UUID,
	name, category, condition string,
	department, photoURL *string,
	status Status,
	createdAt, updatedAt time.Time,
) *Item {
	return &Item{
		id:         id,
		ownerID:    ownerID,
		name:       name,
		category:   category,
		condition:  condition,
		department: department,
		photoURL:   photoURL,
		status:     status,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (i *Item) TransitionTo(next Status) error {
	if !i.status.CanTransitionTo(next) {
		return ErrBackwardMovement
	}
	i.status = next
	return nil
}

func (i *Item) IsOwnedBy(userID uuid.UUID) bool {
	return i.ownerID == userID
}

func (i *Item) ID() uuid.UUID        { return i.id }
func (i *Item) OwnerID() uuid.UUID   { return i.ownerID }
func (i *Item) Name() string         { return i.name }
func (i *Item) Category() string     { return i.category }
func (i *Item) Condition() string    { return i.condition }
func (i *Item) Department() *string  { return i.department }
func (i *Item) PhotoURL() *string    { return i.photoURL }
func (i *Item) Status() Status       { return i.status }
func (i *Item) CreatedAt() time.Time { return i.createdAt }
func (i *Item) UpdatedAt() time.Time { return i.updatedAt }
