package model

import (
	"time"

	"github.com/deppfellow/realestate/internal/validation"
)

type Favorite struct {
	ID                 int64     `json:"id"`
	PropertyID         int64     `json:"property_id"`
	UserID             int64     `json:"user_id"`
	Notes              *string   `json:"notes"`
	IsContacted        bool      `json:"is_contacted"`
	NotifyPriceChange  bool      `json:"notify_price_change"`
	NotifyStatusChange bool      `json:"notify_status_change"`
	NotifyNewMessage   bool      `json:"notify_new_message"`
	CreatedAt          time.Time `json:"created_at"`
}

type CreateFavoritePayload struct {
	UserID             int64   `json:"user_id" validate:"required,gt=0"`
	PropertyID         int64   `json:"property_id" validate:"required,gt=0"`
	Notes              *string `json:"notes" validate:"omitempty,max=500"`
	IsContacted        bool    `json:"is_contacted"`
	NotifyPriceChange  bool    `json:"notify_price_change"`
	NotifyStatusChange bool    `json:"notify_status_change"`
	NotifyNewMessage   bool    `json:"notify_new_message"`
}

func (p *CreateFavoritePayload) Validate() error {
	return validation.Struct(p)
}

type UpdateFavoritePayload struct {
	ID                 int64   `param:"id" json:"-" validate:"required,gt=0"`
	Notes              *string `json:"notes" validate:"omitempty,max=500"`
	IsContacted        *bool   `json:"is_contacted"`
	NotifyPriceChange  *bool   `json:"notify_price_change"`
	NotifyStatusChange *bool   `json:"notify_status_change"`
	NotifyNewMessage   *bool   `json:"notify_new_message"`
}

func (p *UpdateFavoritePayload) Validate() error {
	return validation.Struct(p)
}

// UserListPayload lists rows that belong to one user.
type UserListPayload struct {
	UserID int64 `param:"id" json:"-" validate:"required,gt=0"`
	Page
}

func (p *UserListPayload) Validate() error {
	if err := validation.Struct(p); err != nil {
		return err
	}
	p.Normalize()
	return nil
}
