package model

import (
	"time"

	"github.com/deppfellow/realestate/internal/validation"
)

type Bid struct {
	ID         int64     `json:"id"`
	PropertyID int64     `json:"property_id"`
	UserID     int64     `json:"user_id"`
	BidAmount  int64     `json:"bid_amount"`
	CreatedAt  time.Time `json:"created_at"`
}

type CreateBidPayload struct {
	PropertyID int64 `param:"id" json:"-" validate:"required,gt=0"`
	UserID     int64 `json:"user_id" validate:"required,gt=0"`
	BidAmount  int64 `json:"bid_amount" validate:"required,gt=0"`
}

func (p *CreateBidPayload) Validate() error {
	return validation.Struct(p)
}

// PropertyListPayload lists rows that belong to one property.
type PropertyListPayload struct {
	PropertyID int64 `param:"id" json:"-" validate:"required,gt=0"`
	Page
}

func (p *PropertyListPayload) Validate() error {
	if err := validation.Struct(p); err != nil {
		return err
	}
	p.Normalize()
	return nil
}
