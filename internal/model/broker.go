package model

import (
	"time"

	"github.com/deppfellow/realestate/internal/validation"
)

// Broker extends a user; its id is the user's id.
type Broker struct {
	UserID            int64     `json:"user_id"`
	AgencyID          *int64    `json:"agency_id"`
	LicenseNumber     string    `json:"license_number"`
	YearsOfExperience int       `json:"years_of_experience"`
	Bio               string    `json:"bio"`
	CreatedAt         time.Time `json:"created_at"`
	FullName          string    `json:"full_name"`
	Email             string    `json:"email"`
}

type CreateBrokerPayload struct {
	UserID            int64  `json:"user_id" validate:"required,gt=0"`
	AgencyID          *int64 `json:"agency_id" validate:"omitempty,gt=0"`
	LicenseNumber     string `json:"license_number" validate:"required,min=1,max=50"`
	YearsOfExperience int    `json:"years_of_experience" validate:"gte=0,lte=80"`
	Bio               string `json:"bio" validate:"max=5000"`
}

func (p *CreateBrokerPayload) Validate() error {
	return validation.Struct(p)
}

type UpdateBrokerPayload struct {
	ID                int64   `param:"id" json:"-" validate:"required,gt=0"`
	AgencyID          *int64  `json:"agency_id" validate:"omitempty,gt=0"`
	LicenseNumber     *string `json:"license_number" validate:"omitempty,min=1,max=50"`
	YearsOfExperience *int    `json:"years_of_experience" validate:"omitempty,gte=0,lte=80"`
	Bio               *string `json:"bio" validate:"omitempty,max=5000"`
}

func (p *UpdateBrokerPayload) Validate() error {
	return validation.Struct(p)
}
