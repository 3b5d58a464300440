package model

import (
	"time"

	"github.com/deppfellow/realestate/internal/validation"
)

type PriceHistory struct {
	ID         int64     `json:"id"`
	PropertyID int64     `json:"property_id"`
	EndPrice   int64     `json:"end_price"`
	RecordedAt time.Time `json:"recorded_at"`
}

type CreatePriceHistoryPayload struct {
	PropertyID int64  `param:"id" json:"-" validate:"required,gt=0"`
	EndPrice   *int64 `json:"end_price" validate:"required,gte=0"`
}

func (p *CreatePriceHistoryPayload) Validate() error {
	return validation.Struct(p)
}
