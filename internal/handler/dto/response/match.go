package response

import (
	"time"

	"github.com/google/uuid"

	"campus-barter/internal/usecase/commands"
	"campus-barter/internal/usecase/queries"
)

type MatchResponse struct {
	ID           uuid.UUID                 `json:"id"`
	Kind         string                    `json:"kind"`
	Participants []queries.ParticipantView `json:"participants"`
	Status       string                    `json:"status"`
	AcceptedBy   []uuid.UUID               `json:"accepted_by"`
	Score        *float64                  `json:"score,omitempty"`
	CreatedAt    time.Time                 `json:"created_at"`
}

type AcceptMatchResponse struct {
	MatchID    uuid.UUID   `json:"match_id"`
	Status     string      `json:"status"`
	AcceptedBy []uuid.UUID `json:"accepted_by"`
	Message    string      `json:"message"`
}

func FromMatchView(v *queries.MatchView) *MatchResponse {
	return &MatchResponse{
		ID:           v.ID,
		Kind:         v.Kind,
		Participants: v.Participants,
		Status:       v.Status,
		AcceptedBy:   v.AcceptedBy,
		Score:        v.Score,
		CreatedAt:    v.CreatedAt,
	}
}

func FromMatchViews(views []*queries.MatchView) []*MatchResponse {
	resps := make([]*MatchResponse, len(views))
	for i, v := range views {
		resps[i] = FromMatchView(v)
	}
	return resps
}

func FromAcceptMatchResult(result *commands.AcceptMatchResult) *AcceptMatchResponse {
	return &AcceptMatchResponse{
		MatchID:    result.MatchID,
		Status:     result.Status,
		AcceptedBy: result.AcceptedBy,
		Message:    result.Message,
	}
}
