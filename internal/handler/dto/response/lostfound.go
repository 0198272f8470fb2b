package response

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"campus-barter/internal/usecase/queries"
)

type LostFoundResponse struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	ItemName    string    `json:"item_name"`
	Category    string    `json:"category"`
	Description *string   `json:"description,omitempty"`
	Kind        string    `json:"kind"`
	PhotoURL    *string   `json:"photo_url,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromLostFoundView(v *queries.LostFoundView) *LostFoundResponse {
	var resp LostFoundResponse
	if err := copier.Copy(&resp, v); err != nil {
		slog.Error("failed to map lost-and-found view", "error", err)
	}
	return &resp
}

func FromLostFoundViews(views []*queries.LostFoundView) []*LostFoundResponse {
	resps := make([]*LostFoundResponse, len(views))
	for i, v := range views {
		resps[i] = FromLostFoundView(v)
	}
	return resps
}
