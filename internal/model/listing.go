package model

import (
	"time"

	"github.com/deppfellow/realestate/internal/validation"
)

// Listing statuses.
const (
	ListingStatusActive  = "Active"
	ListingStatusPaused  = "Paused"
	ListingStatusExpired = "Expired"
	ListingStatusClosed  = "Closed"
)

// Listing offers a property for sale or rent through exactly one of
// its owner or a broker.
type Listing struct {
	ID            int64      `json:"id"`
	PropertyID    int64      `json:"property_id"`
	OwnerID       *int64     `json:"owner_id"`
	BrokerID      *int64     `json:"broker_id"`
	ListingType   string     `json:"listing_type"`
	StartPrice    int64      `json:"start_price"`
	StartDate     time.Time  `json:"start_date"`
	EndDate       *time.Time `json:"end_date"`
	ListingStatus string     `json:"listing_status"`
	CreatedAt     time.Time  `json:"created_at"`
}

type CreateListingPayload struct {
	PropertyID    int64      `json:"property_id" validate:"required,gt=0"`
	OwnerID       *int64     `json:"owner_id" validate:"omitempty,gt=0"`
	BrokerID      *int64     `json:"broker_id" validate:"omitempty,gt=0"`
	ListingType   string     `json:"listing_type" validate:"required,oneof=sale rent"`
	StartPrice    *int64     `json:"start_price" validate:"required,gte=0"`
	StartDate     *time.Time `json:"start_date"`
	EndDate       *time.Time `json:"end_date"`
	ListingStatus *string    `json:"listing_status" validate:"omitempty,oneof=Active Paused Expired Closed"`
}

func (p *CreateListingPayload) Validate() error {
	if err := validation.Struct(p); err != nil {
		return err
	}

	var errs validation.CustomValidationErrors
	if (p.OwnerID == nil) == (p.BrokerID == nil) {
		errs = append(errs, validation.CustomValidationError{
			Field:   "owner_id",
			Message: "exactly one of owner_id or broker_id is required",
		})
	}
	if p.EndDate != nil {
		start := time.Now()
		if p.StartDate != nil {
			start = *p.StartDate
		}
		if !p.EndDate.After(start) {
			errs = append(errs, validation.CustomValidationError{
				Field:   "end_date",
				Message: "must be after start_date",
			})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ListListingsPayload struct {
	Page
	Status     *string `query:"status" json:"-" validate:"omitempty,oneof=Active Paused Expired Closed"`
	PropertyID *int64  `query:"property_id" json:"-" validate:"omitempty,gt=0"`
}

func (p *ListListingsPayload) Validate() error {
	if err := validation.Struct(p); err != nil {
		return err
	}
	p.Normalize()
	return nil
}

type UpdateListingStatusPayload struct {
	ID            int64  `param:"id" json:"-" validate:"required,gt=0"`
	ListingStatus string `json:"listing_status" validate:"required,oneof=Active Paused Expired Closed"`
}

func (p *UpdateListingStatusPayload) Validate() error {
	return validation.Struct(p)
}
