package model

import (
	"time"

	"github.com/deppfellow/realestate/internal/validation"
)

// PropertyView counts how often one user looked at one property.
type PropertyView struct {
	UserID       int64     `json:"user_id"`
	PropertyID   int64     `json:"property_id"`
	ViewCount    int       `json:"view_count"`
	LastViewedAt time.Time `json:"last_viewed_at"`
}

// PropertyViews aggregates every viewer of a property.
type PropertyViews struct {
	PropertyID int64          `json:"property_id"`
	TotalViews int64          `json:"total_views"`
	Viewers    []PropertyView `json:"viewers"`
}

type RecordViewPayload struct {
	PropertyID int64 `param:"id" json:"-" validate:"required,gt=0"`
	UserID     int64 `json:"user_id" validate:"required,gt=0"`
}

func (p *RecordViewPayload) Validate() error {
	return validation.Struct(p)
}
