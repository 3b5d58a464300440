package model

import (
	"time"

	"github.com/deppfellow/realestate/internal/validation"
)

type ComparisonList struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// ComparisonListItem is a list entry joined with a summary of its property.
type ComparisonListItem struct {
	ComparisonListID int64     `json:"comparison_list_id"`
	PropertyID       int64     `json:"property_id"`
	AddedAt          time.Time `json:"added_at"`
	Title            string    `json:"title"`
	PropertyType     string    `json:"property_type"`
	ListingType      string    `json:"listing_type"`
	StartPrice       int64     `json:"start_price"`
	Status           string    `json:"status"`
}

type CreateComparisonListPayload struct {
	UserID int64  `json:"user_id" validate:"required,gt=0"`
	Name   string `json:"name" validate:"required,min=1,max=100"`
}

func (p *CreateComparisonListPayload) Validate() error {
	return validation.Struct(p)
}

type RenameComparisonListPayload struct {
	ID   int64  `param:"id" json:"-" validate:"required,gt=0"`
	Name string `json:"name" validate:"required,min=1,max=100"`
}

func (p *RenameComparisonListPayload) Validate() error {
	return validation.Struct(p)
}

type ComparisonItemsPayload struct {
	ComparisonListID int64 `param:"id" json:"-" validate:"required,gt=0"`
	Page
}

func (p *ComparisonItemsPayload) Validate() error {
	if err := validation.Struct(p); err != nil {
		return err
	}
	p.Normalize()
	return nil
}

type AddComparisonItemPayload struct {
	ComparisonListID int64 `param:"id" json:"-" validate:"required,gt=0"`
	PropertyID       int64 `json:"property_id" validate:"required,gt=0"`
}

func (p *AddComparisonItemPayload) Validate() error {
	return validation.Struct(p)
}

type RemoveComparisonItemPayload struct {
	ComparisonListID int64 `param:"id" json:"-" validate:"required,gt=0"`
	PropertyID       int64 `param:"propertyId" json:"-" validate:"required,gt=0"`
}

func (p *RemoveComparisonItemPayload) Validate() error {
	return validation.Struct(p)
}
