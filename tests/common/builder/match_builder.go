//go:build unit || e2e

package builder

import (
	"time"

	dommatch "campus-barter/internal/domain/match"
	"campus-barter/internal/usecase/queries"

	"github.com/google/uuid"
)

type MatchBuilder struct {
	ID           uuid.UUID
	CreatedBy    uuid.UUID
	Kind         dommatch.Kind
	Participants []dommatch.Participant
	Status       dommatch.Status
	AcceptedBy   []uuid.UUID
	Score        *float64
	CreatedAt    time.Time
}

// NewMatchBuilder defaults to a pending direct match between two users.
func NewMatchBuilder() *MatchBuilder {
	score := 0.85
	a := dommatch.Participant{
		UserID:       uuid.New(),
		UserName:     "Asha Verma",
		ItemID:       uuid.New(),
		ItemName:     "Engineering Mathematics Textbook",
		WantCategory: "electronics",
	}
	b := dommatch.Participant{
		UserID:       uuid.New(),
		UserName:     "Rohan Iyer",
		ItemID:       uuid.New(),
		ItemName:     "Scientific Calculator",
		WantCategory: "books",
	}
	return &MatchBuilder{
		ID:           uuid.New(),
		CreatedBy:    a.UserID,
		Kind:         dommatch.KindDirect,
		Participants: []dommatch.Participant{a, b},
		Status:       dommatch.StatusPending,
		Score:        &score,
		CreatedAt:    time.Now(),
	}
}

func (b *MatchBuilder) With(mutate func(*MatchBuilder)) *MatchBuilder {
	mutate(b)
	return b
}

func (b *MatchBuilder) WithThreeWay(third dommatch.Participant) *MatchBuilder {
	b.Kind = dommatch.KindThreeWay
	b.Participants = append(b.Participants, third)
	b.Score = nil
	return b
}

func (b *MatchBuilder) WithParticipants(participants ...dommatch.Participant) *MatchBuilder {
	b.Participants = participants
	return b
}

func (b *MatchBuilder) WithStatus(status dommatch.Status) *MatchBuilder {
	b.Status = status
	return b
}

func (b *MatchBuilder) BuildDomain() (*dommatch.Match, error) {
	return dommatch.NewMatch(b.CreatedBy, b.Kind, b.Participants, b.Score)
}

// BuildReconstructed bypasses creation validation, for tests that need a
// match in an arbitrary state.
func (b *MatchBuilder) BuildReconstructed() *dommatch.Match {
	return dommatch.ReconstructMatch(
		b.ID,
		b.CreatedBy,
		b.Kind,
		b.Participants,
		b.Status,
		b.AcceptedBy,
		b.Score,
		b.CreatedAt,
		b.CreatedAt,
	)
}

func (b *MatchBuilder) BuildView() *queries.MatchView {
	participants := make([]queries.ParticipantView, len(b.Participants))
	for i, p := range b.Participants {
		participants[i] = queries.ParticipantView{
			UserID:       p.UserID,
			UserName:     p.UserName,
			ItemID:       p.ItemID,
			ItemName:     p.ItemName,
			WantCategory: p.WantCategory,
		}
	}
	acceptedBy := b.AcceptedBy
	if acceptedBy == nil {
		acceptedBy = []uuid.UUID{}
	}
	return &queries.MatchView{
		ID:           b.ID,
		Kind:         string(b.Kind),
		Participants: participants,
		Status:       string(b.Status),
		AcceptedBy:   acceptedBy,
		Score:        b.Score,
		CreatedAt:    b.CreatedAt,
	}
}
