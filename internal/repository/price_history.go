package repository

import (
	"context"

	"github.com/deppfellow/realestate/internal/model"
	"github.com/jackc/pgx/v5"
)

const priceHistoryColumns = `id, property_id, end_price, recorded_at`

type PriceHistoryRepository struct {
	db DBTX
}

func NewPriceHistoryRepository(db DBTX) *PriceHistoryRepository {
	return &PriceHistoryRepository{db: db}
}

func scanPriceHistory(row pgx.Row) (model.PriceHistory, error) {
	var p model.PriceHistory
	err := row.Scan(&p.ID, &p.PropertyID, &p.EndPrice, &p.RecordedAt)
	return p, err
}

// ListByProperty returns entries oldest first.
func (r *PriceHistoryRepository) ListByProperty(ctx context.Context, propertyID int64, page model.Page) ([]model.PriceHistory, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+priceHistoryColumns+`
		FROM price_history
		WHERE property_id = $1
		ORDER BY recorded_at, id
		LIMIT $2 OFFSET $3`, propertyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanPriceHistory)
}

func (r *PriceHistoryRepository) Create(ctx context.Context, payload *model.CreatePriceHistoryPayload) (*model.PriceHistory, error) {
	entry, err := scanPriceHistory(r.db.QueryRow(ctx, `
		INSERT INTO price_history (property_id, end_price)
		VALUES ($1, $2)
		RETURNING `+priceHistoryColumns,
		payload.PropertyID, payload.EndPrice,
	))
	if err != nil {
		return nil, err
	}
	return &entry, nil
}
