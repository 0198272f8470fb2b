package readstore

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"campus-barter/internal/infra"
	"campus-barter/internal/infra/converter"
	"campus-barter/internal/infra/db"
	"campus-barter/internal/usecase/queries"
)

type MatchReadStore struct {
	db db.DBTX
}

func NewMatchReadStore(dbtx db.DBTX) *MatchReadStore {
	return &MatchReadStore{db: dbtx}
}

const matchColumns = `id, kind, participants, status, accepted_by, score, created_at`

func (r *MatchReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.MatchView, error) {
	query := `SELECT ` + matchColumns + ` FROM matches WHERE id = $1`

	row := r.db.QueryRow(ctx, query, id)
	v, err := scanMatch(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("match not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find match by ID", err)
	}
	return v, nil
}

func (r *MatchReadStore) FindByParticipantID(ctx context.Context, userID uuid.UUID) ([]*queries.MatchView, error) {
	query := `SELECT ` + matchColumns + ` FROM matches
		WHERE participants @> jsonb_build_array(jsonb_build_object('user_id', $1::text))
		ORDER BY created_at DESC, id`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list matches by participant", err)
	}
	defer rows.Close()

	var matches []*queries.MatchView
	for rows.Next() {
		v, err := scanMatch(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan match row", err)
		}
		matches = append(matches, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read match rows", err)
	}
	return matches, nil
}

func scanMatch(row pgx.Row) (*queries.MatchView, error) {
	var (
		id                      uuid.UUID
		kind, status            string
		participantsRaw, accRaw []byte
		score                   *float64
		createdAt               time.Time
	)
	if err := row.Scan(&id, &kind, &participantsRaw, &status, &accRaw, &score, &createdAt); err != nil {
		return nil, err
	}

	participants, err := converter.UnmarshalParticipants(participantsRaw)
	if err != nil {
		return nil, err
	}
	acceptedBy, err := converter.UnmarshalAcceptedBy(accRaw)
	if err != nil {
		return nil, err
	}
	if acceptedBy == nil {
		acceptedBy = []uuid.UUID{}
	}

	views := make([]queries.ParticipantView, len(participants))
	for i, p := range participants {
		views[i] = queries.ParticipantView{
			UserID:       p.UserID,
			UserName:     p.UserName,
			ItemID:       p.ItemID,
			ItemName:     p.ItemName,
			WantCategory: p.WantCategory,
		}
	}

	return &queries.MatchView{
		ID:           id,
		Kind:         kind,
		Participants: views,
		Status:       status,
		AcceptedBy:   acceptedBy,
		Score:        score,
		CreatedAt:    createdAt,
	}, nil
}
