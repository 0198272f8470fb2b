package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type UserView struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Semester   int       `json:"semester"`
	Department string    `json:"department"`
	Hostel     string    `json:"hostel"`
	CreatedAt  time.Time `json:"created_at"`
}

type AuthUserView struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	IsActive bool      `json:"is_active"`
}

type UserStatsView struct {
	UserID         uuid.UUID `json:"user_id"`
	UserName       string    `json:"user_name"`
	TotalCredits   int       `json:"total_eco_credits"`
	CompletedSwaps int       `json:"total_swaps"`
	ActiveItems    int       `json:"active_items"`
	PendingMatches int       `json:"pending_matches"`
}

type ItemView struct {
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

type IntentView struct {
	ID              uuid.UUID `json:"id"`
	OwnerID         uuid.UUID `json:"owner_id"`
	ItemID          uuid.UUID `json:"item_id"`
	WantCategory    string    `json:"want_category"`
	WantDescription *string   `json:"want_description,omitempty"`
	Emergency       bool      `json:"emergency"`
	Active          bool      `json:"active"`
	CreatedAt       time.Time `json:"created_at"`
}

type ParticipantView struct {
	UserID       uuid.UUID `json:"user_id"`
	UserName     string    `json:"user_name"`
	ItemID       uuid.UUID `json:"item_id"`
	ItemName     string    `json:"item_name"`
	WantCategory string    `json:"wants"`
}

type MatchView struct {
	ID           uuid.UUID         `json:"id"`
	Kind         string            `json:"kind"`
	Participants []ParticipantView `json:"participants"`
	Status       string            `json:"status"`
	AcceptedBy   []uuid.UUID       `json:"accepted_by"`
	Score        *float64          `json:"score,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
}

type CreditView struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	Amount    int        `json:"amount"`
	Reason    string     `json:"reason"`
	MatchID   *uuid.UUID `json:"match_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type LeaderboardEntry struct {
	Rank         int       `json:"rank"`
	UserID       uuid.UUID `json:"user_id"`
	UserName     string    `json:"user_name"`
	Department   string    `json:"department"`
	TotalCredits int       `json:"total_eco_credits"`
}

type LostFoundView struct {
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
