package model

import (
	"time"

	"github.com/deppfellow/realestate/internal/validation"
)

// User roles.
const (
	RoleBuyer  = "buyer"
	RoleOwner  = "owner"
	RoleBroker = "broker"
	RoleAgency = "agency"
)

// User is a marketplace account. The password hash never leaves the repository.
type User struct {
	ID             int64     `json:"id"`
	FullName       string    `json:"full_name"`
	Email          string    `json:"email"`
	PhoneNumber    string    `json:"phone_number"`
	Role           string    `json:"role"`
	ProfilePicture *string   `json:"profile_picture"`
	CreatedAt      time.Time `json:"created_at"`
}

type CreateUserPayload struct {
	FullName       string  `json:"full_name" validate:"required,min=1,max=100"`
	Email          string  `json:"email" validate:"required,email,max=255"`
	PhoneNumber    string  `json:"phone_number" validate:"required,min=3,max=20"`
	Password       string  `json:"password" validate:"required,min=8,max=72"`
	Role           string  `json:"role" validate:"required,oneof=buyer owner broker agency"`
	ProfilePicture *string `json:"profile_picture" validate:"omitempty,url,max=500"`
}

func (p *CreateUserPayload) Validate() error {
	return validation.Struct(p)
}

// UpdateUserPayload changes only the fields that are present.
type UpdateUserPayload struct {
	ID             int64   `param:"id" json:"-" validate:"required,gt=0"`
	FullName       *string `json:"full_name" validate:"omitempty,min=1,max=100"`
	Email          *string `json:"email" validate:"omitempty,email,max=255"`
	PhoneNumber    *string `json:"phone_number" validate:"omitempty,min=3,max=20"`
	Password       *string `json:"password" validate:"omitempty,min=8,max=72"`
	Role           *string `json:"role" validate:"omitempty,oneof=buyer owner broker agency"`
	ProfilePicture *string `json:"profile_picture" validate:"omitempty,url,max=500"`
}

func (p *UpdateUserPayload) Validate() error {
	return validation.Struct(p)
}
