package response

import (
	"github.com/google/uuid"

	"campus-barter/internal/usecase/queries"
)

type CreditBalanceResponse struct {
	UserID       uuid.UUID             `json:"user_id"`
	TotalCredits int                   `json:"total_eco_credits"`
	Entries      []*queries.CreditView `json:"entries"`
}

type LeaderboardResponse struct {
	Leaderboard []*queries.LeaderboardEntry `json:"leaderboard"`
}
