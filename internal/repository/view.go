package repository

import (
	"context"

	"github.com/deppfellow/realestate/internal/model"
	"github.com/jackc/pgx/v5"
)

const viewColumns = `user_id, property_id, view_count, last_viewed_at`

type ViewRepository struct {
	db DBTX
}

func NewViewRepository(db DBTX) *ViewRepository {
	return &ViewRepository{db: db}
}

func scanView(row pgx.Row) (model.PropertyView, error) {
	var v model.PropertyView
	err := row.Scan(&v.UserID, &v.PropertyID, &v.ViewCount, &v.LastViewedAt)
	return v, err
}

// ListByProperty returns every viewer, most recent first, with the summed count.
func (r *ViewRepository) ListByProperty(ctx context.Context, propertyID int64) (*model.PropertyViews, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+viewColumns+`
		FROM property_views
		WHERE property_id = $1
		ORDER BY last_viewed_at DESC`, propertyID)
	if err != nil {
		return nil, err
	}
	viewers, err := collect(rows, scanView)
	if err != nil {
		return nil, err
	}

	views := &model.PropertyViews{PropertyID: propertyID, Viewers: viewers}
	for _, v := range viewers {
		views.TotalViews += int64(v.ViewCount)
	}
	return views, nil
}

// Record counts one more view of the property by the user.
func (r *ViewRepository) Record(ctx context.Context, payload *model.RecordViewPayload) (*model.PropertyView, error) {
	view, err := scanView(r.db.QueryRow(ctx, `
		INSERT INTO property_views (user_id, property_id)
		VALUES ($1, $2)
		ON CONFLICT ON CONSTRAINT property_views_pkey DO UPDATE
		SET view_count = property_views.view_count + 1,
			last_viewed_at = CURRENT_TIMESTAMP
		RETURNING `+viewColumns,
		payload.UserID, payload.PropertyID,
	))
	if err != nil {
		return nil, err
	}
	return &view, nil
}
