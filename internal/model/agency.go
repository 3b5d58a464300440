package model

import (
	"time"

	"github.com/deppfellow/realestate/internal/validation"
)

// Agency is an organisation owned by a user with the agency role.
// OwnerName and OwnerEmail come from the owning user.
type Agency struct {
	ID                 int64     `json:"id"`
	UserID             int64     `json:"user_id"`
	OrganizationNumber string    `json:"organization_number"`
	History            *string   `json:"history"`
	CreatedAt          time.Time `json:"created_at"`
	OwnerName          string    `json:"owner_name"`
	OwnerEmail         string    `json:"owner_email"`
}

type CreateAgencyPayload struct {
	UserID             int64   `json:"user_id" validate:"required,gt=0"`
	OrganizationNumber string  `json:"organization_number" validate:"required,min=1,max=50"`
	History            *string `json:"history" validate:"omitempty,max=5000"`
}

func (p *CreateAgencyPayload) Validate() error {
	return validation.Struct(p)
}

type UpdateAgencyPayload struct {
	ID                 int64   `param:"id" json:"-" validate:"required,gt=0"`
	UserID             *int64  `json:"user_id" validate:"omitempty,gt=0"`
	OrganizationNumber *string `json:"organization_number" validate:"omitempty,min=1,max=50"`
	History            *string `json:"history" validate:"omitempty,max=5000"`
}

func (p *UpdateAgencyPayload) Validate() error {
	return validation.Struct(p)
}
