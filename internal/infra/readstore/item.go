package readstore

import (
	"context"
	"errors"
	"strconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"campus-barter/internal/infra"
	"campus-barter/internal/infra/db"
	"campus-barter/internal/usecase/queries"
)

type ItemReadStore struct {
	db db.DBTX
}

func NewItemReadStore(dbtx db.DBTX) *ItemReadStore {
	return &ItemReadStore{db: dbtx}
}

const itemColumns = `id, owner_id, name, category, condition, department, photo_url, status, created_at`

func (r *ItemReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ItemView, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`

	row := r.db.QueryRow(ctx, query, id)
	v, err := scanItem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find item by ID", err)
	}
	return v, nil
}

func (r *ItemReadStore) FindAll(ctx context.Context, filter queries.ItemFilter) ([]*queries.ItemView, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE 1=1`
	args := []any{}

	if filter.Category != "" {
		args = append(args, filter.Category)
		query += ` AND category = $` + strconv.Itoa(len(args))
	}
	if filter.Department != "" {
		args = append(args, filter.Department)
		query += ` AND department = $` + strconv.Itoa(len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		query += ` AND status = $` + strconv.Itoa(len(args))
	}
	query += ` ORDER BY created_at DESC, id`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list items", err)
	}
	defer rows.Close()

	return collectItems(rows)
}

func (r *ItemReadStore) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*queries.ItemView, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE owner_id = $1 ORDER BY created_at DESC, id`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list items by owner", err)
	}
	defer rows.Close()

	return collectItems(rows)
}

func scanItem(row pgx.Row) (*queries.ItemView, error) {
	var v queries.ItemView
	err := row.Scan(
		&v.ID, &v.OwnerID, &v.Name, &v.Category, &v.Condition,
		&v.Department, &v.PhotoURL, &v.Status, &v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func collectItems(rows pgx.Rows) ([]*queries.ItemView, error) {
	var items []*queries.ItemView
	for rows.Next() {
		v, err := scanItem(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan item row", err)
		}
		items = append(items, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read item rows", err)
	}
	return items, nil
}
