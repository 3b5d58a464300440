package model

import (
	"time"

	"github.com/deppfellow/realestate/internal/validation"
)

// Notification is a stored message for a user. Nothing is delivered.
type Notification struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	PropertyID *int64    `json:"property_id"`
	FavoriteID *int64    `json:"favorite_id"`
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	IsRead     bool      `json:"is_read"`
	CreatedAt  time.Time `json:"created_at"`
}

type CreateNotificationPayload struct {
	UserID     int64  `json:"user_id" validate:"required,gt=0"`
	PropertyID *int64 `json:"property_id" validate:"omitempty,gt=0"`
	FavoriteID *int64 `json:"favorite_id" validate:"omitempty,gt=0"`
	Title      string `json:"title" validate:"required,min=1,max=100"`
	Message    string `json:"message" validate:"required,min=1,max=500"`
}

func (p *CreateNotificationPayload) Validate() error {
	return validation.Struct(p)
}

type ListNotificationsPayload struct {
	UserID int64 `param:"id" json:"-" validate:"required,gt=0"`
	Unread bool  `query:"unread" json:"-"`
	Page
}

func (p *ListNotificationsPayload) Validate() error {
	if err := validation.Struct(p); err != nil {
		return err
	}
	p.Normalize()
	return nil
}
