package response

import (
	"time"

	"github.com/google/uuid"

	"campus-barter/internal/usecase/commands"
	"campus-barter/internal/usecase/queries"
)

type IntentResponse struct {
	ID              uuid.UUID `json:"id"`
	OwnerID         uuid.UUID `json:"owner_id"`
	ItemID          uuid.UUID `json:"item_id"`
	WantCategory    string    `json:"want_category"`
	WantDescription *string   `json:"want_description,omitempty"`
	Emergency       bool      `json:"emergency"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"created_at"`
}

type FoundMatchResponse struct {
	ID           uuid.UUID                 `json:"id"`
	Kind         string                    `json:"kind"`
	Participants []queries.ParticipantView `json:"participants"`
	Score        *float64                  `json:"score,omitempty"`
	Explanation  string                    `json:"explanation"`
	Flow         string                    `json:"flow"`
}

type SubmitIntentResponse struct {
	BarterIntent *IntentResponse     `json:"barter_intent"`
	MatchFound   bool                `json:"match_found"`
	Match        *FoundMatchResponse `json:"match,omitempty"`
	Message      string              `json:"message,omitempty"`
}

func FromIntentView(v *queries.IntentView) *IntentResponse {
	return &IntentResponse{
		ID:              v.ID,
		OwnerID:         v.OwnerID,
		ItemID:          v.ItemID,
		WantCategory:    v.WantCategory,
		WantDescription: v.WantDescription,
		Emergency:       v.Emergency,
		Active:          v.Active,
		CreatedAt:       v.CreatedAt,
	}
}

func FromIntentViews(views []*queries.IntentView) []*IntentResponse {
	resps := make([]*IntentResponse, len(views))
	for i, v := range views {
		resps[i] = FromIntentView(v)
	}
	return resps
}

func FromSubmitIntentResult(result *commands.SubmitIntentResult) *SubmitIntentResponse {
	resp := &SubmitIntentResponse{
		BarterIntent: FromIntentView(result.Intent),
	}

	if result.Match == nil {
		resp.Message = commands.NoMatchMessage
		return resp
	}

	resp.MatchFound = true
	resp.Match = &FoundMatchResponse{
		ID:           result.Match.ID,
		Kind:         result.Match.Kind,
		Participants: result.Match.Participants,
		Score:        result.Match.Score,
		Explanation:  result.Match.Explanation,
		Flow:         result.Match.Flow,
	}
	return resp
}
