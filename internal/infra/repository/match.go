package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"campus-barter/internal/domain/match"
	"campus-barter/internal/infra"
	"campus-barter/internal/infra/converter"
	"campus-barter/internal/infra/db"
)

type MatchRepository struct {
	db db.DBTX
}

func NewMatchRepository(dbtx db.DBTX) *MatchRepository {
	return &MatchRepository{db: dbtx}
}

func (r *MatchRepository) Create(ctx context.Context, m *match.Match) (uuid.UUID, error) {
	participants, err := converter.MarshalParticipants(m.Participants())
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to encode match participants", err)
	}
	acceptedBy, err := converter.MarshalAcceptedBy(m.AcceptedBy())
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to encode match acceptances", err)
	}

	const query = `
		INSERT INTO matches (id, created_by, kind, participants, status, accepted_by, score)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	var id uuid.UUID
	err = r.db.QueryRow(ctx, query,
		m.ID(),
		m.CreatedBy(),
		string(m.Kind()),
		participants,
		string(m.Status()),
		acceptedBy,
		m.Score(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create match", err)
	}

	return id, nil
}

// FindByIDForUpdate locks the match row until the surrounding transaction
// ends, so concurrent accepts on the same match run one at a time.
func (r *MatchRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*match.Match, error) {
	const query = `
		SELECT id, created_by, kind, participants, status, accepted_by, score, created_at, updated_at
		FROM matches
		WHERE id = $1
		FOR UPDATE`

	var (
		matchID, createdBy       uuid.UUID
		kind, status             string
		participantsRaw, accRaw  []byte
		score                    *float64
		createdAt, updatedAt     time.Time
	)
	err := r.db.QueryRow(ctx, query, id).Scan(
		&matchID, &createdBy, &kind, &participantsRaw, &status, &accRaw, &score, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("match not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find match", err)
	}

	participants, err := converter.UnmarshalParticipants(participantsRaw)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode match participants", err)
	}
	acceptedBy, err := converter.UnmarshalAcceptedBy(accRaw)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode match acceptances", err)
	}

	return match.ReconstructMatch(
		matchID, createdBy,
		match.Kind(kind),
		participants,
		match.Status(status),
		acceptedBy,
		score,
		createdAt, updatedAt,
	), nil
}

func (r *MatchRepository) UpdateAcceptance(ctx context.Context, m *match.Match) error {
	acceptedBy, err := converter.MarshalAcceptedBy(m.AcceptedBy())
	if err != nil {
		return infra.WrapRepoErr("failed to encode match acceptances", err)
	}

	const query = `
		UPDATE matches
		SET accepted_by = $2, status = $3, updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, m.ID(), acceptedBy, string(m.Status()))
	if err != nil {
		return infra.WrapRepoErr("failed to update match acceptance", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("match not found", nil, infra.KindNotFound)
	}
	return nil
}
