package repository

import (
	"context"

	"github.com/deppfellow/realestate/internal/model"
	"github.com/jackc/pgx/v5"
)

const comparisonListColumns = `id, user_id, name, created_at`

const comparisonItemSelect = `
	SELECT c.comparison_list_id, c.property_id, c.added_at,
		p.title, p.property_type, p.listing_type, p.start_price, p.status
	FROM %s c
	JOIN properties p ON p.id = c.property_id`

type ComparisonRepository struct {
	db DBTX
}

func NewComparisonRepository(db DBTX) *ComparisonRepository {
	return &ComparisonRepository{db: db}
}

func scanComparisonList(row pgx.Row) (model.ComparisonList, error) {
	var l model.ComparisonList
	err := row.Scan(&l.ID, &l.UserID, &l.Name, &l.CreatedAt)
	return l, err
}

func scanComparisonItem(row pgx.Row) (model.ComparisonListItem, error) {
	var i model.ComparisonListItem
	err := row.Scan(
		&i.ComparisonListID, &i.PropertyID, &i.AddedAt,
		&i.Title, &i.PropertyType, &i.ListingType, &i.StartPrice, &i.Status,
	)
	return i, err
}

func (r *ComparisonRepository) ListByUser(ctx context.Context, userID int64, page model.Page) ([]model.ComparisonList, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+comparisonListColumns+`
		FROM comparison_lists
		WHERE user_id = $1
		ORDER BY id
		LIMIT $2 OFFSET $3`, userID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanComparisonList)
}

func (r *ComparisonRepository) GetByID(ctx context.Context, id int64) (*model.ComparisonList, error) {
	list, err := scanComparisonList(r.db.QueryRow(ctx, `SELECT `+comparisonListColumns+` FROM comparison_lists WHERE id = $1`, id))
	if err != nil {
		return nil, notFound("comparison_lists", err)
	}
	return &list, nil
}

func (r *ComparisonRepository) Create(ctx context.Context, payload *model.CreateComparisonListPayload) (*model.ComparisonList, error) {
	list, err := scanComparisonList(r.db.QueryRow(ctx, `
		INSERT INTO comparison_lists (user_id, name)
		VALUES ($1, $2)
		RETURNING `+comparisonListColumns,
		payload.UserID, payload.Name,
	))
	if err != nil {
		return nil, err
	}
	return &list, nil
}

func (r *ComparisonRepository) Rename(ctx context.Context, id int64, name string) (*model.ComparisonList, error) {
	list, err := scanComparisonList(r.db.QueryRow(ctx, `
		UPDATE comparison_lists SET name = $1
		WHERE id = $2
		RETURNING `+comparisonListColumns, name, id))
	if err != nil {
		return nil, notFound("comparison_lists", err)
	}
	return &list, nil
}

// Delete removes the list and its items.
func (r *ComparisonRepository) Delete(ctx context.Context, id int64) error {
	return execOne(ctx, r.db, "comparison_lists", `DELETE FROM comparison_lists WHERE id = $1`, id)
}

func (r *ComparisonRepository) ListItems(ctx context.Context, listID int64, page model.Page) ([]model.ComparisonListItem, error) {
	rows, err := r.db.Query(ctx, fromTable(comparisonItemSelect, "comparison_list_items")+`
		WHERE c.comparison_list_id = $1
		ORDER BY c.added_at, c.property_id
		LIMIT $2 OFFSET $3`, listID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanComparisonItem)
}

// AddItem returns the new entry joined with its property. Adding a property
// twice violates the primary key.
func (r *ComparisonRepository) AddItem(ctx context.Context, listID, propertyID int64) (*model.ComparisonListItem, error) {
	item, err := scanComparisonItem(r.db.QueryRow(ctx, `
		WITH written AS (
			INSERT INTO comparison_list_items (comparison_list_id, property_id)
			VALUES ($1, $2)
			RETURNING *
		)`+fromTable(comparisonItemSelect, "written"),
		listID, propertyID,
	))
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *ComparisonRepository) RemoveItem(ctx context.Context, listID, propertyID int64) error {
	return execOne(ctx, r.db, "comparison_list_items",
		`DELETE FROM comparison_list_items WHERE comparison_list_id = $1 AND property_id = $2`, listID, propertyID)
}
