package repository

import (
	"context"

	"github.com/deppfellow/realestate/internal/model"
	"github.com/jackc/pgx/v5"
)

const offerColumns = `id, property_id, user_id, offer_amount, message, status, created_at`

type OfferRepository struct {
	db DBTX
}

func NewOfferRepository(db DBTX) *OfferRepository {
	return &OfferRepository{db: db}
}

func scanOffer(row pgx.Row) (model.Offer, error) {
	var o model.Offer
	err := row.Scan(&o.ID, &o.PropertyID, &o.UserID, &o.OfferAmount, &o.Message, &o.Status, &o.CreatedAt)
	return o, err
}

func (r *OfferRepository) ListByProperty(ctx context.Context, propertyID int64, page model.Page) ([]model.Offer, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+offerColumns+`
		FROM offers
		WHERE property_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3`, propertyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanOffer)
}

func (r *OfferRepository) GetByID(ctx context.Context, id int64) (*model.Offer, error) {
	offer, err := scanOffer(r.db.QueryRow(ctx, `SELECT `+offerColumns+` FROM offers WHERE id = $1`, id))
	if err != nil {
		return nil, notFound("offers", err)
	}
	return &offer, nil
}

func (r *OfferRepository) Create(ctx context.Context, payload *model.CreateOfferPayload) (*model.Offer, error) {
	offer, err := scanOffer(r.db.QueryRow(ctx, `
		INSERT INTO offers (property_id, user_id, offer_amount, message, status)
		VALUES ($1, $2, $3, $4, COALESCE($5, 'pending'))
		RETURNING `+offerColumns,
		payload.PropertyID, payload.UserID, payload.OfferAmount, payload.Message, payload.Status,
	))
	if err != nil {
		return nil, err
	}
	return &offer, nil
}

func (r *OfferRepository) UpdateStatus(ctx context.Context, id int64, status string) (*model.Offer, error) {
	offer, err := scanOffer(r.db.QueryRow(ctx, `
		UPDATE offers SET status = $1
		WHERE id = $2
		RETURNING `+offerColumns, status, id))
	if err != nil {
		return nil, notFound("offers", err)
	}
	return &offer, nil
}
