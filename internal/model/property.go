package model

import (
	"time"

	"github.com/deppfellow/realestate/internal/validation"
)

// Property statuses.
const (
	PropertyStatusActive   = "Active"
	PropertyStatusInactive = "Inactive"
	PropertyStatusSold     = "Sold"
	PropertyStatusRented   = "Rented"
)

type Property struct {
	ID               int64     `json:"id"`
	UserID           *int64    `json:"user_id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	PropertyType     string    `json:"property_type"`
	ListingType      string    `json:"listing_type"`
	StartPrice       int64     `json:"start_price"`
	EndPrice         *int64    `json:"end_price"`
	PricePerSqrMeter *int64    `json:"price_per_sqr_meter"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
}

// Features holds the physical attributes of a property (1:1).
type Features struct {
	PropertyID    int64     `json:"property_id"`
	Rooms         int       `json:"rooms"`
	Bathrooms     int       `json:"bathrooms"`
	SizeSqm       int       `json:"size_sqm"`
	Floor         int       `json:"floor"`
	YearBuilt     int       `json:"year_built"`
	YearRenovated *int      `json:"year_renovated"`
	MonthlyRent   *int64    `json:"monthly_rent"`
	TotalFloors   int       `json:"total_floors"`
	HasGarden     bool      `json:"has_garden"`
	GardenSizeSqm *int      `json:"garden_size_sqm"`
	HasElevator   bool      `json:"has_elevator"`
	HasGarage     bool      `json:"has_garage"`
	HasParking    bool      `json:"has_parking"`
	HasPool       bool      `json:"has_pool"`
	HasBalcony    bool      `json:"has_balcony"`
	EnergyClass   string    `json:"energy_class"`
	CreatedAt     time.Time `json:"created_at"`
}

// Location holds the address and coordinates of a property (1:1).
// Geohash is derived from the coordinates on every write.
type Location struct {
	PropertyID int64     `json:"property_id"`
	Address    string    `json:"address"`
	City       string    `json:"city"`
	ZipCode    string    `json:"zip_code"`
	County     string    `json:"county"`
	State      *string   `json:"state"`
	Country    string    `json:"country"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Geohash    string    `json:"geohash"`
	MapURL     *string   `json:"map_url"`
	CreatedAt  time.Time `json:"created_at"`
}

type PropertyImage struct {
	ID         int64  `json:"id"`
	PropertyID int64  `json:"property_id"`
	ImageURL   string `json:"image_url"`
	ImageOrder int    `json:"image_order"`
}

type PropertyVideo struct {
	ID         int64  `json:"id"`
	PropertyID int64  `json:"property_id"`
	VideoURL   string `json:"video_url"`
	VideoOrder int    `json:"video_order"`
}

// PropertySummary is a list row: the property with its features and location.
type PropertySummary struct {
	Property
	Features *Features `json:"features"`
	Location *Location `json:"location"`
}

// PropertyDetail is a property with every dependent row.
type PropertyDetail struct {
	Property
	Features *Features       `json:"features"`
	Location *Location       `json:"location"`
	Images   []PropertyImage `json:"images"`
	Videos   []PropertyVideo `json:"videos"`
}

// ---- payloads ----

type PropertyFields struct {
	UserID           *int64  `json:"user_id" validate:"omitempty,gt=0"`
	Title            string  `json:"title" validate:"required,min=1,max=200"`
	Description      string  `json:"description" validate:"required"`
	PropertyType     string  `json:"property_type" validate:"required,min=1,max=50"`
	ListingType      string  `json:"listing_type" validate:"required,oneof=sale rent"`
	StartPrice       *int64  `json:"start_price" validate:"required,gte=0"`
	EndPrice         *int64  `json:"end_price" validate:"omitempty,gte=0"`
	PricePerSqrMeter *int64  `json:"price_per_sqr_meter" validate:"omitempty,gte=0"`
	Status           *string `json:"status" validate:"omitempty,oneof=Active Inactive Sold Rented"`
}

type FeaturesFields struct {
	Rooms         int    `json:"rooms" validate:"gte=0"`
	Bathrooms     int    `json:"bathrooms" validate:"gte=0"`
	SizeSqm       int    `json:"size_sqm" validate:"required,gt=0"`
	Floor         int    `json:"floor"`
	YearBuilt     int    `json:"year_built" validate:"required,gte=1000,lte=3000"`
	YearRenovated *int   `json:"year_renovated" validate:"omitempty,gtefield=YearBuilt,lte=3000"`
	MonthlyRent   *int64 `json:"monthly_rent" validate:"omitempty,gte=0"`
	TotalFloors   int    `json:"total_floors" validate:"gte=0"`
	HasGarden     bool   `json:"has_garden"`
	GardenSizeSqm *int   `json:"garden_size_sqm" validate:"omitempty,gte=0"`
	HasElevator   bool   `json:"has_elevator"`
	HasGarage     bool   `json:"has_garage"`
	HasParking    bool   `json:"has_parking"`
	HasPool       bool   `json:"has_pool"`
	HasBalcony    bool   `json:"has_balcony"`
	EnergyClass   string `json:"energy_class" validate:"required,max=5"`
}

type LocationFields struct {
	Address   string   `json:"address" validate:"required,max=255"`
	City      string   `json:"city" validate:"required,max=100"`
	ZipCode   string   `json:"zip_code" validate:"required,max=20"`
	County    string   `json:"county" validate:"required,max=100"`
	State     *string  `json:"state" validate:"omitempty,max=100"`
	Country   string   `json:"country" validate:"required,max=100"`
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
	MapURL    *string  `json:"map_url" validate:"omitempty,url,max=500"`
}

type ImageFields struct {
	ImageURL   string `json:"image_url" validate:"required,url,max=500"`
	ImageOrder int    `json:"image_order" validate:"gte=0"`
}

type VideoFields struct {
	VideoURL   string `json:"video_url" validate:"required,url,max=500"`
	VideoOrder int    `json:"video_order" validate:"gte=0"`
}

// CreatePropertyPayload creates a property and all its dependents at once.
type CreatePropertyPayload struct {
	Property PropertyFields `json:"property" validate:"required"`
	Features FeaturesFields `json:"features" validate:"required"`
	Location LocationFields `json:"location" validate:"required"`
	Images   []ImageFields  `json:"images" validate:"max=50,dive"`
	Videos   []VideoFields  `json:"videos" validate:"max=20,dive"`
}

func (p *CreatePropertyPayload) Validate() error {
	return validation.Struct(p)
}

type ListPropertiesPayload struct {
	Page
}

func (p *ListPropertiesPayload) Validate() error {
	if err := validation.Struct(p); err != nil {
		return err
	}
	p.Normalize()
	return nil
}

type UpdatePropertyPayload struct {
	ID               int64   `param:"id" json:"-" validate:"required,gt=0"`
	UserID           *int64  `json:"user_id" validate:"omitempty,gt=0"`
	Title            *string `json:"title" validate:"omitempty,min=1,max=200"`
	Description      *string `json:"description" validate:"omitempty,min=1"`
	PropertyType     *string `json:"property_type" validate:"omitempty,min=1,max=50"`
	ListingType      *string `json:"listing_type" validate:"omitempty,oneof=sale rent"`
	StartPrice       *int64  `json:"start_price" validate:"omitempty,gte=0"`
	EndPrice         *int64  `json:"end_price" validate:"omitempty,gte=0"`
	PricePerSqrMeter *int64  `json:"price_per_sqr_meter" validate:"omitempty,gte=0"`
	Status           *string `json:"status" validate:"omitempty,oneof=Active Inactive Sold Rented"`
}

func (p *UpdatePropertyPayload) Validate() error {
	return validation.Struct(p)
}

type UpdateFeaturesPayload struct {
	PropertyID    int64   `param:"id" json:"-" validate:"required,gt=0"`
	Rooms         *int    `json:"rooms" validate:"omitempty,gte=0"`
	Bathrooms     *int    `json:"bathrooms" validate:"omitempty,gte=0"`
	SizeSqm       *int    `json:"size_sqm" validate:"omitempty,gt=0"`
	Floor         *int    `json:"floor"`
	YearBuilt     *int    `json:"year_built" validate:"omitempty,gte=1000,lte=3000"`
	YearRenovated *int    `json:"year_renovated" validate:"omitempty,gte=1000,lte=3000"`
	MonthlyRent   *int64  `json:"monthly_rent" validate:"omitempty,gte=0"`
	TotalFloors   *int    `json:"total_floors" validate:"omitempty,gte=0"`
	HasGarden     *bool   `json:"has_garden"`
	GardenSizeSqm *int    `json:"garden_size_sqm" validate:"omitempty,gte=0"`
	HasElevator   *bool   `json:"has_elevator"`
	HasGarage     *bool   `json:"has_garage"`
	HasParking    *bool   `json:"has_parking"`
	HasPool       *bool   `json:"has_pool"`
	HasBalcony    *bool   `json:"has_balcony"`
	EnergyClass   *string `json:"energy_class" validate:"omitempty,min=1,max=5"`
}

func (p *UpdateFeaturesPayload) Validate() error {
	if err := validation.Struct(p); err != nil {
		return err
	}
	if p.YearBuilt != nil && p.YearRenovated != nil && *p.YearRenovated < *p.YearBuilt {
		return validation.CustomValidationErrors{
			{Field: "year_renovated", Message: "must be greater than or equal to year_built"},
		}
	}
	return nil
}

// UpdateLocationPayload moves coordinates as a pair so the geohash stays consistent.
type UpdateLocationPayload struct {
	PropertyID int64    `param:"id" json:"-" validate:"required,gt=0"`
	Address    *string  `json:"address" validate:"omitempty,min=1,max=255"`
	City       *string  `json:"city" validate:"omitempty,min=1,max=100"`
	ZipCode    *string  `json:"zip_code" validate:"omitempty,min=1,max=20"`
	County     *string  `json:"county" validate:"omitempty,min=1,max=100"`
	State      *string  `json:"state" validate:"omitempty,max=100"`
	Country    *string  `json:"country" validate:"omitempty,min=1,max=100"`
	Latitude   *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude  *float64 `json:"longitude" validate:"omitempty,longitude"`
	MapURL     *string  `json:"map_url" validate:"omitempty,url,max=500"`
}

func (p *UpdateLocationPayload) Validate() error {
	if err := validation.Struct(p); err != nil {
		return err
	}
	if (p.Latitude == nil) != (p.Longitude == nil) {
		return validation.CustomValidationErrors{
			{Field: "latitude", Message: "latitude and longitude must be updated together"},
		}
	}
	return nil
}

type PropertyMediaListPayload struct {
	PropertyID int64 `param:"id" json:"-" validate:"required,gt=0"`
}

func (p *PropertyMediaListPayload) Validate() error {
	return validation.Struct(p)
}

type AddImagePayload struct {
	PropertyID int64 `param:"id" json:"-" validate:"required,gt=0"`
	ImageFields
}

func (p *AddImagePayload) Validate() error {
	return validation.Struct(p)
}

type DeleteImagePayload struct {
	PropertyID int64 `param:"id" json:"-" validate:"required,gt=0"`
	ImageID    int64 `param:"imageId" json:"-" validate:"required,gt=0"`
}

func (p *DeleteImagePayload) Validate() error {
	return validation.Struct(p)
}

type AddVideoPayload struct {
	PropertyID int64 `param:"id" json:"-" validate:"required,gt=0"`
	VideoFields
}

func (p *AddVideoPayload) Validate() error {
	return validation.Struct(p)
}

type DeleteVideoPayload struct {
	PropertyID int64 `param:"id" json:"-" validate:"required,gt=0"`
	VideoID    int64 `param:"videoId" json:"-" validate:"required,gt=0"`
}

func (p *DeleteVideoPayload) Validate() error {
	return validation.Struct(p)
}
