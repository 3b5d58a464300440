package repository

import (
	"context"

	"github.com/deppfellow/realestate/internal/model"
	"github.com/jackc/pgx/v5"
)

const bidColumns = `id, property_id, user_id, bid_amount, created_at`

type BidRepository struct {
	db DBTX
}

func NewBidRepository(db DBTX) *BidRepository {
	return &BidRepository{db: db}
}

func scanBid(row pgx.Row) (model.Bid, error) {
	var b model.Bid
	err := row.Scan(&b.ID, &b.PropertyID, &b.UserID, &b.BidAmount, &b.CreatedAt)
	return b, err
}

// ListByProperty returns the highest bids first.
func (r *BidRepository) ListByProperty(ctx context.Context, propertyID int64, page model.Page) ([]model.Bid, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+bidColumns+`
		FROM bids
		WHERE property_id = $1
		ORDER BY bid_amount DESC, created_at
		LIMIT $2 OFFSET $3`, propertyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanBid)
}

func (r *BidRepository) GetByID(ctx context.Context, id int64) (*model.Bid, error) {
	bid, err := scanBid(r.db.QueryRow(ctx, `SELECT `+bidColumns+` FROM bids WHERE id = $1`, id))
	if err != nil {
		return nil, notFound("bids", err)
	}
	return &bid, nil
}

func (r *BidRepository) Create(ctx context.Context, payload *model.CreateBidPayload) (*model.Bid, error) {
	bid, err := scanBid(r.db.QueryRow(ctx, `
		INSERT INTO bids (property_id, user_id, bid_amount)
		VALUES ($1, $2, $3)
		RETURNING `+bidColumns,
		payload.PropertyID, payload.UserID, payload.BidAmount,
	))
	if err != nil {
		return nil, err
	}
	return &bid, nil
}

func (r *BidRepository) Delete(ctx context.Context, id int64) error {
	return execOne(ctx, r.db, "bids", `DELETE FROM bids WHERE id = $1`, id)
}
