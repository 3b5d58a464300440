package model

import (
	"time"

	"github.com/deppfellow/realestate/internal/validation"
)

// Offer statuses.
const (
	OfferStatusPending   = "pending"
	OfferStatusAccepted  = "accepted"
	OfferStatusRejected  = "rejected"
	OfferStatusWithdrawn = "withdrawn"
)

type Offer struct {
	ID          int64     `json:"id"`
	PropertyID  int64     `json:"property_id"`
	UserID      int64     `json:"user_id"`
	OfferAmount int64     `json:"offer_amount"`
	Message     *string   `json:"message"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateOfferPayload struct {
	PropertyID  int64   `param:"id" json:"-" validate:"required,gt=0"`
	UserID      int64   `json:"user_id" validate:"required,gt=0"`
	OfferAmount int64   `json:"offer_amount" validate:"required,gt=0"`
	Message     *string `json:"message" validate:"omitempty,max=500"`
	Status      *string `json:"status" validate:"omitempty,oneof=pending accepted rejected withdrawn"`
}

func (p *CreateOfferPayload) Validate() error {
	return validation.Struct(p)
}

type UpdateOfferStatusPayload struct {
	ID     int64  `param:"id" json:"-" validate:"required,gt=0"`
	Status string `json:"status" validate:"required,oneof=pending accepted rejected withdrawn"`
}

func (p *UpdateOfferStatusPayload) Validate() error {
	return validation.Struct(p)
}
