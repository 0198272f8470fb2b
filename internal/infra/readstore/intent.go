package readstore

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"campus-barter/internal/domain/matching"
	"campus-barter/internal/infra"
	"campus-barter/internal/infra/db"
	"campus-barter/internal/usecase/queries"
)

// IntentReadStore serves both the intent query API and the matching
// engine's Source. Creation order (created_at, then id as tie-breaker) is
// load-bearing for the engine: first-fit search must be deterministic.
type IntentReadStore struct {
	db db.DBTX
}

func NewIntentReadStore(dbtx db.DBTX) *IntentReadStore {
	return &IntentReadStore{db: dbtx}
}

const intentColumns = `id, owner_id, item_id, want_category, want_description, emergency, active, created_at`

func (r *IntentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.IntentView, error) {
	query := `SELECT ` + intentColumns + ` FROM barter_intents WHERE id = $1`

	var v queries.IntentView
	err := r.db.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.OwnerID, &v.ItemID, &v.WantCategory, &v.WantDescription,
		&v.Emergency, &v.Active, &v.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("barter intent not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find barter intent by ID", err)
	}
	return &v, nil
}

func (r *IntentReadStore) FindActiveByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*queries.IntentView, error) {
	query := `SELECT ` + intentColumns + ` FROM barter_intents
		WHERE owner_id = $1 AND active
		ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list barter intents by owner", err)
	}
	defer rows.Close()

	var intents []*queries.IntentView
	for rows.Next() {
		var v queries.IntentView
		if err := rows.Scan(
			&v.ID, &v.OwnerID, &v.ItemID, &v.WantCategory, &v.WantDescription,
			&v.Emergency, &v.Active, &v.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan barter intent row", err)
		}
		intents = append(intents, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read barter intent rows", err)
	}
	return intents, nil
}

const sourceQuery = `
	SELECT bi.id, bi.owner_id, u.name, bi.item_id, i.name, i.category,
	       bi.want_category, bi.emergency, bi.created_at
	FROM barter_intents bi
	JOIN users u ON u.id = bi.owner_id
	JOIN items i ON i.id = bi.item_id
	WHERE bi.active`

func (r *IntentReadStore) ActiveIntentsByOwner(ctx context.Context, ownerID uuid.UUID) ([]matching.IntentView, error) {
	query := sourceQuery + ` AND bi.owner_id = $1 ORDER BY bi.created_at, bi.id`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load active intents by owner", err)
	}
	defer rows.Close()

	return collectSourceViews(rows)
}

func (r *IntentReadStore) ActiveIntents(ctx context.Context) ([]matching.IntentView, error) {
	query := sourceQuery + ` ORDER BY bi.created_at, bi.id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load active intents", err)
	}
	defer rows.Close()

	return collectSourceViews(rows)
}

func (r *IntentReadStore) TraitsByUser(ctx context.Context, userID uuid.UUID) (matching.Traits, error) {
	const query = `SELECT department, semester, hostel FROM users WHERE id = $1`

	var t matching.Traits
	err := r.db.QueryRow(ctx, query, userID).Scan(&t.Department, &t.Semester, &t.Hostel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return matching.Traits{}, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return matching.Traits{}, infra.WrapRepoErr("failed to load user traits", err)
	}
	return t, nil
}

func collectSourceViews(rows pgx.Rows) ([]matching.IntentView, error) {
	var views []matching.IntentView
	for rows.Next() {
		var v matching.IntentView
		if err := rows.Scan(
			&v.ID, &v.OwnerID, &v.OwnerName, &v.ItemID, &v.ItemName, &v.ItemCategory,
			&v.WantCategory, &v.Emergency, &v.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan active intent row", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read active intent rows", err)
	}
	return views, nil
}
