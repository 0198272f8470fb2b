//go:build unit || e2e

package builder

import (
	"time"

	domintent "campus-barter/internal/domain/intent"
	"campus-barter/internal/domain/matching"
	"campus-barter/internal/usecase/queries"

	"github.com/google/uuid"
)

type IntentBuilder struct {
	ID              uuid.UUID
	OwnerID         uuid.UUID
	OwnerName       string
	ItemID          uuid.UUID
	ItemName        string
	ItemCategory    string
	WantCategory    string
	WantDescription *string
	Emergency       bool
	Active          bool
	CreatedAt       time.Time
}

func NewIntentBuilder() *IntentBuilder {
	return &IntentBuilder{
		ID:           uuid.New(),
		OwnerID:      uuid.New(),
		OwnerName:    "Asha Verma",
		ItemID:       uuid.New(),
		ItemName:     "Engineering Mathematics Textbook",
		ItemCategory: "books",
		WantCategory: "electronics",
		Active:       true,
		CreatedAt:    time.Now(),
	}
}

func (b *IntentBuilder) With(mutate func(*IntentBuilder)) *IntentBuilder {
	mutate(b)
	return b
}

func (b *IntentBuilder) WithOwner(ownerID uuid.UUID, name string) *IntentBuilder {
	b.OwnerID = ownerID
	b.OwnerName = name
	return b
}

func (b *IntentBuilder) WithItem(itemID uuid.UUID, name, category string) *IntentBuilder {
	b.ItemID = itemID
	b.ItemName = name
	b.ItemCategory = category
	return b
}

func (b *IntentBuilder) WithWant(category string) *IntentBuilder {
	b.WantCategory = category
	return b
}

func (b *IntentBuilder) WithEmergency(emergency bool) *IntentBuilder {
	b.Emergency = emergency
	return b
}

func (b *IntentBuilder) WithCreatedAt(t time.Time) *IntentBuilder {
	b.CreatedAt = t
	return b
}

func (b *IntentBuilder) BuildDomain() (*domintent.Intent, error) {
	return domintent.NewIntent(b.OwnerID, b.ItemID, b.WantCategory, b.WantDescription, b.Emergency)
}

func (b *IntentBuilder) BuildView() *queries.IntentView {
	return &queries.IntentView{
		ID:              b.ID,
		OwnerID:         b.OwnerID,
		ItemID:          b.ItemID,
		WantCategory:    b.WantCategory,
		WantDescription: b.WantDescription,
		Emergency:       b.Emergency,
		Active:          b.Active,
		CreatedAt:       b.CreatedAt,
	}
}

// BuildEngineView produces the matching engine's read model for this intent.
func (b *IntentBuilder) BuildEngineView() matching.IntentView {
	return matching.IntentView{
		ID:           b.ID,
		OwnerID:      b.OwnerID,
		OwnerName:    b.OwnerName,
		ItemID:       b.ItemID,
		ItemName:     b.ItemName,
		ItemCategory: b.ItemCategory,
		WantCategory: b.WantCategory,
		Emergency:    b.Emergency,
		CreatedAt:    b.CreatedAt,
	}
}
