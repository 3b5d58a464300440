// Package model holds the API's entities and request payloads.
//
// Entities mirror table rows and are what handlers serialise.
// Payloads are bound from path, query and body by the handler
// pipeline and validate themselves before reaching a service.
package model

import (
	"github.com/deppfellow/realestate/internal/validation"
)

// Pagination defaults shared by every list endpoint.
const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Page is embedded by list payloads.
type Page struct {
	Limit  int `query:"limit" json:"-" validate:"gte=0,lte=100"`
	Offset int `query:"offset" json:"-" validate:"gte=0"`
}

// Normalize fills in the default limit. Call it after validation.
func (p *Page) Normalize() {
	if p.Limit == 0 {
		p.Limit = DefaultLimit
	}
}

// IDPayload addresses a single row by its path id.
type IDPayload struct {
	ID int64 `param:"id" json:"-" validate:"required,gt=0"`
}

func (p *IDPayload) Validate() error {
	return validation.Struct(p)
}

// ListPayload is a plain paginated list.
type ListPayload struct {
	Page
}

func (p *ListPayload) Validate() error {
	if err := validation.Struct(p); err != nil {
		return err
	}
	p.Normalize()
	return nil
}
