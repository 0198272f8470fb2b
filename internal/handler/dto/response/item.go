package response

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"campus-barter/internal/usecase/queries"
)

type ItemResponse struct {
	ID         uuid.UUID `json:"id"`
	OwnerID    uuid.UUID `json:"owner_id"`
	Name       string    `json:"name"`
	Category   string    `json:"category"`
	Condition  string    `json:"condition"`
	Department *string   `json:"department,omitempty"`
	PhotoURL   *string   `json:"photo_url,omitempty"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

func FromItemView(v *queries.ItemView) *ItemResponse {
	var resp ItemResponse
	if err := copier.Copy(&resp, v); err != nil {
		slog.Error("failed to map item view", "error", err)
	}
	return &resp
}

func FromItemViews(views []*queries.ItemView) []*ItemResponse {
	resps := make([]*ItemResponse, len(views))
	for i, v := range views {
		resps[i] = FromItemView(v)
	}
	return resps
}
