package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/deppfellow/realestate/internal/model"
	"github.com/jackc/pgx/v5"
)

const listingColumns = `id, property_id, owner_id, broker_id, listing_type, start_price,
	start_date, end_date, listing_status, created_at`

type ListingRepository struct {
	db DBTX
}

func NewListingRepository(db DBTX) *ListingRepository {
	return &ListingRepository{db: db}
}

func scanListing(row pgx.Row) (model.Listing, error) {
	var l model.Listing
	err := row.Scan(
		&l.ID, &l.PropertyID, &l.OwnerID, &l.BrokerID, &l.ListingType, &l.StartPrice,
		&l.StartDate, &l.EndDate, &l.ListingStatus, &l.CreatedAt,
	)
	return l, err
}

// List applies the optional status and property filters.
func (r *ListingRepository) List(ctx context.Context, payload *model.ListListingsPayload) ([]model.Listing, error) {
	var (
		where []string
		args  []any
	)
	if payload.Status != nil {
		args = append(args, *payload.Status)
		where = append(where, fmt.Sprintf("listing_status = $%d", len(args)))
	}
	if payload.PropertyID != nil {
		args = append(args, *payload.PropertyID)
		where = append(where, fmt.Sprintf("property_id = $%d", len(args)))
	}

	query := `SELECT ` + listingColumns + ` FROM listing_property`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	args = append(args, payload.Limit, payload.Offset)
	query += fmt.Sprintf(` ORDER BY id LIMIT $%d OFFSET $%d`, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanListing)
}

func (r *ListingRepository) GetByID(ctx context.Context, id int64) (*model.Listing, error) {
	listing, err := scanListing(r.db.QueryRow(ctx, `SELECT `+listingColumns+` FROM listing_property WHERE id = $1`, id))
	if err != nil {
		return nil, notFound("listing_property", err)
	}
	return &listing, nil
}

// Create relies on the table for the one-party check and for rejecting a
// second active listing of the same property by the same party.
func (r *ListingRepository) Create(ctx context.Context, payload *model.CreateListingPayload) (*model.Listing, error) {
	listing, err := scanListing(r.db.QueryRow(ctx, `
		INSERT INTO listing_property (property_id, owner_id, broker_id, listing_type, start_price,
			start_date, end_date, listing_status)
		VALUES ($1, $2, $3, $4, $5, COALESCE($6, CURRENT_TIMESTAMP), $7, COALESCE($8, 'Active'))
		RETURNING `+listingColumns,
		payload.PropertyID, payload.OwnerID, payload.BrokerID, payload.ListingType, payload.StartPrice,
		payload.StartDate, payload.EndDate, payload.ListingStatus,
	))
	if err != nil {
		return nil, err
	}
	return &listing, nil
}

func (r *ListingRepository) UpdateStatus(ctx context.Context, id int64, status string) (*model.Listing, error) {
	listing, err := scanListing(r.db.QueryRow(ctx, `
		UPDATE listing_property SET listing_status = $1
		WHERE id = $2
		RETURNING `+listingColumns, status, id))
	if err != nil {
		return nil, notFound("listing_property", err)
	}
	return &listing, nil
}

func (r *ListingRepository) Delete(ctx context.Context, id int64) error {
	return execOne(ctx, r.db, "listing_property", `DELETE FROM listing_property WHERE id = $1`, id)
}
