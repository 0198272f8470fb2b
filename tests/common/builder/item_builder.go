//go:build unit || e2e

package builder

import (
	"time"

	domitem "campus-barter/internal/domain/item"
	"campus-barter/internal/usecase/queries"

	"github.com/google/uuid"
)

type ItemBuilder struct {
	ID         uuid.UUID
	OwnerID    uuid.UUID
	Name       string
	Category   string
	Condition  string
	Department *string
	PhotoURL   *string
	Status     string
	CreatedAt  time.Time
}

func NewItemBuilder() *ItemBuilder {
	return &ItemBuilder{
		ID:        uuid.New(),
		OwnerID:   uuid.New(),
		Name:      "Engineering Mathematics Textbook",
		Category:  "books",
		Condition: "good",
		Status:    string(domitem.StatusAvailable),
		CreatedAt: time.Now(),
	}
}

func (b *ItemBuilder) With(mutate func(*ItemBuilder)) *ItemBuilder {
	mutate(b)
	return b
}

func (b *ItemBuilder) WithOwner(ownerID uuid.UUID) *ItemBuilder {
	b.OwnerID = ownerID
	return b
}

func (b *ItemBuilder) WithName(name string) *ItemBuilder {
	b.Name = name
	return b
}

func (b *ItemBuilder) WithCategory(category string) *ItemBuilder {
	b.Category = category
	return b
}

func (b *ItemBuilder) WithStatus(status string) *ItemBuilder {
	b.Status = status
	return b
}

func (b *ItemBuilder) BuildDomain() (*domitem.Item, error) {
	return domitem.NewItem(b.OwnerID, b.Name, b.Category, b.Condition, b.Department, b.PhotoURL)
}

func (b *ItemBuilder) BuildView() *queries.ItemView {
	return &queries.ItemView{
		ID:         b.ID,
		OwnerID:    b.OwnerID,
		Name:       b.Name,
		Category:   b.Category,
		Condition:  b.Condition,
		Department: b.Department,
		PhotoURL:   b.PhotoURL,
		Status:     b.Status,
		CreatedAt:  b.CreatedAt,
	}
}
