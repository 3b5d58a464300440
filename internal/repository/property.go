package repository

import (
	"context"

	"github.com/deppfellow/realestate/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/mmcloughlin/geohash"
)

const (
	propertyColumns = `id, user_id, title, description, property_type, listing_type,
		start_price, end_price, price_per_sqr_meter, status, created_at`

	featuresColumns = `property_id, rooms, bathrooms, size_sqm, floor, year_built, year_renovated,
		monthly_rent, total_floors, has_garden, garden_size_sqm, has_elevator, has_garage,
		has_parking, has_pool, has_balcony, energy_class, created_at`

	locationColumns = `property_id, address, city, zip_code, county, state, country,
		latitude, longitude, geohash, map_url, created_at`

	imageColumns = `id, property_id, image_url, image_order`
	videoColumns = `id, property_id, video_url, video_order`
)

// Dependent rows are folded into the property row as jsonb so a read is a
// single statement.
const (
	propertySummarySelect = `
		SELECT p.id, p.user_id, p.title, p.description, p.property_type, p.listing_type,
			p.start_price, p.end_price, p.price_per_sqr_meter, p.status, p.created_at,
			to_jsonb(f), to_jsonb(l)
		FROM properties p
		LEFT JOIN features f ON f.property_id = p.id
		LEFT JOIN location l ON l.property_id = p.id`

	propertyDetailSelect = `
		SELECT p.id, p.user_id, p.title, p.description, p.property_type, p.listing_type,
			p.start_price, p.end_price, p.price_per_sqr_meter, p.status, p.created_at,
			to_jsonb(f), to_jsonb(l),
			COALESCE((
				SELECT jsonb_agg(to_jsonb(i) ORDER BY i.image_order, i.id)
				FROM property_images i WHERE i.property_id = p.id
			), '[]'::jsonb),
			COALESCE((
				SELECT jsonb_agg(to_jsonb(v) ORDER BY v.video_order, v.id)
				FROM property_videos v WHERE v.property_id = p.id
			), '[]'::jsonb)
		FROM properties p
		LEFT JOIN features f ON f.property_id = p.id
		LEFT JOIN location l ON l.property_id = p.id
		WHERE p.id = $1`
)

type PropertyRepository struct {
	db DBTX
}

func NewPropertyRepository(db DBTX) *PropertyRepository {
	return &PropertyRepository{db: db}
}

func propertyDest(p *model.Property) []any {
	return []any{
		&p.ID, &p.UserID, &p.Title, &p.Description, &p.PropertyType, &p.ListingType,
		&p.StartPrice, &p.EndPrice, &p.PricePerSqrMeter, &p.Status, &p.CreatedAt,
	}
}

func scanProperty(row pgx.Row) (model.Property, error) {
	var p model.Property
	err := row.Scan(propertyDest(&p)...)
	return p, err
}

func scanPropertySummary(row pgx.Row) (model.PropertySummary, error) {
	var s model.PropertySummary
	err := row.Scan(append(propertyDest(&s.Property), &s.Features, &s.Location)...)
	return s, err
}

func scanPropertyDetail(row pgx.Row) (model.PropertyDetail, error) {
	var d model.PropertyDetail
	err := row.Scan(append(propertyDest(&d.Property), &d.Features, &d.Location, &d.Images, &d.Videos)...)
	return d, err
}

func scanFeatures(row pgx.Row) (model.Features, error) {
	var f model.Features
	err := row.Scan(
		&f.PropertyID, &f.Rooms, &f.Bathrooms, &f.SizeSqm, &f.Floor, &f.YearBuilt, &f.YearRenovated,
		&f.MonthlyRent, &f.TotalFloors, &f.HasGarden, &f.GardenSizeSqm, &f.HasElevator, &f.HasGarage,
		&f.HasParking, &f.HasPool, &f.HasBalcony, &f.EnergyClass, &f.CreatedAt,
	)
	return f, err
}

func scanLocation(row pgx.Row) (model.Location, error) {
	var l model.Location
	err := row.Scan(
		&l.PropertyID, &l.Address, &l.City, &l.ZipCode, &l.County, &l.State, &l.Country,
		&l.Latitude, &l.Longitude, &l.Geohash, &l.MapURL, &l.CreatedAt,
	)
	return l, err
}

func scanImage(row pgx.Row) (model.PropertyImage, error) {
	var i model.PropertyImage
	err := row.Scan(&i.ID, &i.PropertyID, &i.ImageURL, &i.ImageOrder)
	return i, err
}

func scanVideo(row pgx.Row) (model.PropertyVideo, error) {
	var v model.PropertyVideo
	err := row.Scan(&v.ID, &v.PropertyID, &v.VideoURL, &v.VideoOrder)
	return v, err
}

// List returns active properties with their features and location.
func (r *PropertyRepository) List(ctx context.Context, page model.Page) ([]model.PropertySummary, error) {
	rows, err := r.db.Query(ctx, propertySummarySelect+`
		WHERE p.status = 'Active'
		ORDER BY p.id
		LIMIT $1 OFFSET $2`, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanPropertySummary)
}

func (r *PropertyRepository) GetByID(ctx context.Context, id int64) (*model.PropertyDetail, error) {
	detail, err := scanPropertyDetail(r.db.QueryRow(ctx, propertyDetailSelect, id))
	if err != nil {
		return nil, notFound("properties", err)
	}
	return &detail, nil
}

// Create writes the property and every dependent row in one transaction.
func (r *PropertyRepository) Create(ctx context.Context, payload *model.CreatePropertyPayload) (*model.PropertyDetail, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	p := payload.Property
	property, err := scanProperty(tx.QueryRow(ctx, `
		INSERT INTO properties (user_id, title, description, property_type, listing_type,
			start_price, end_price, price_per_sqr_meter, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, COALESCE($9, 'Active'))
		RETURNING `+propertyColumns,
		p.UserID, p.Title, p.Description, p.PropertyType, p.ListingType,
		p.StartPrice, p.EndPrice, p.PricePerSqrMeter, p.Status,
	))
	if err != nil {
		return nil, err
	}

	f := payload.Features
	features, err := scanFeatures(tx.QueryRow(ctx, `
		INSERT INTO features (property_id, rooms, bathrooms, size_sqm, floor, year_built,
			year_renovated, monthly_rent, total_floors, has_garden, garden_size_sqm, has_elevator,
			has_garage, has_parking, has_pool, has_balcony, energy_class)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING `+featuresColumns,
		property.ID, f.Rooms, f.Bathrooms, f.SizeSqm, f.Floor, f.YearBuilt,
		f.YearRenovated, f.MonthlyRent, f.TotalFloors, f.HasGarden, f.GardenSizeSqm, f.HasElevator,
		f.HasGarage, f.HasParking, f.HasPool, f.HasBalcony, f.EnergyClass,
	))
	if err != nil {
		return nil, err
	}

	l := payload.Location
	location, err := scanLocation(tx.QueryRow(ctx, `
		INSERT INTO location (property_id, address, city, zip_code, county, state, country,
			latitude, longitude, geohash, map_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING `+locationColumns,
		property.ID, l.Address, l.City, l.ZipCode, l.County, l.State, l.Country,
		*l.Latitude, *l.Longitude, geohash.Encode(*l.Latitude, *l.Longitude), l.MapURL,
	))
	if err != nil {
		return nil, err
	}

	images := make([]model.PropertyImage, 0, len(payload.Images))
	for _, in := range payload.Images {
		image, err := insertImage(ctx, tx, property.ID, in)
		if err != nil {
			return nil, err
		}
		images = append(images, image)
	}

	videos := make([]model.PropertyVideo, 0, len(payload.Videos))
	for _, in := range payload.Videos {
		video, err := insertVideo(ctx, tx, property.ID, in)
		if err != nil {
			return nil, err
		}
		videos = append(videos, video)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return &model.PropertyDetail{
		Property: property,
		Features: &features,
		Location: &location,
		Images:   images,
		Videos:   videos,
	}, nil
}

func (r *PropertyRepository) Update(ctx context.Context, payload *model.UpdatePropertyPayload) (*model.Property, error) {
	var set updateSet
	setIf(&set, "user_id", payload.UserID)
	setIf(&set, "title", payload.Title)
	setIf(&set, "description", payload.Description)
	setIf(&set, "property_type", payload.PropertyType)
	setIf(&set, "listing_type", payload.ListingType)
	setIf(&set, "start_price", payload.StartPrice)
	setIf(&set, "end_price", payload.EndPrice)
	setIf(&set, "price_per_sqr_meter", payload.PricePerSqrMeter)
	setIf(&set, "status", payload.Status)

	var (
		property model.Property
		err      error
	)
	if set.empty() {
		property, err = scanProperty(r.db.QueryRow(ctx, `SELECT `+propertyColumns+` FROM properties WHERE id = $1`, payload.ID))
	} else {
		query, args := set.statement("properties", "id", payload.ID, propertyColumns)
		property, err = scanProperty(r.db.QueryRow(ctx, query, args...))
	}
	if err != nil {
		return nil, notFound("properties", err)
	}
	return &property, nil
}

// Delete removes the property. Features, location, media, listings and
// every other dependent row cascade.
func (r *PropertyRepository) Delete(ctx context.Context, id int64) error {
	return execOne(ctx, r.db, "properties", `DELETE FROM properties WHERE id = $1`, id)
}

func (r *PropertyRepository) UpdateFeatures(ctx context.Context, payload *model.UpdateFeaturesPayload) (*model.Features, error) {
	var set updateSet
	setIf(&set, "rooms", payload.Rooms)
	setIf(&set, "bathrooms", payload.Bathrooms)
	setIf(&set, "size_sqm", payload.SizeSqm)
	setIf(&set, "floor", payload.Floor)
	setIf(&set, "year_built", payload.YearBuilt)
	setIf(&set, "year_renovated", payload.YearRenovated)
	setIf(&set, "monthly_rent", payload.MonthlyRent)
	setIf(&set, "total_floors", payload.TotalFloors)
	setIf(&set, "has_garden", payload.HasGarden)
	setIf(&set, "garden_size_sqm", payload.GardenSizeSqm)
	setIf(&set, "has_elevator", payload.HasElevator)
	setIf(&set, "has_garage", payload.HasGarage)
	setIf(&set, "has_parking", payload.HasParking)
	setIf(&set, "has_pool", payload.HasPool)
	setIf(&set, "has_balcony", payload.HasBalcony)
	setIf(&set, "energy_class", payload.EnergyClass)

	var (
		features model.Features
		err      error
	)
	if set.empty() {
		features, err = scanFeatures(r.db.QueryRow(ctx, `SELECT `+featuresColumns+` FROM features WHERE property_id = $1`, payload.PropertyID))
	} else {
		query, args := set.statement("features", "property_id", payload.PropertyID, featuresColumns)
		features, err = scanFeatures(r.db.QueryRow(ctx, query, args...))
	}
	if err != nil {
		return nil, notFound("features", err)
	}
	return &features, nil
}

// UpdateLocation rewrites the geohash whenever the coordinates move.
func (r *PropertyRepository) UpdateLocation(ctx context.Context, payload *model.UpdateLocationPayload) (*model.Location, error) {
	var set updateSet
	setIf(&set, "address", payload.Address)
	setIf(&set, "city", payload.City)
	setIf(&set, "zip_code", payload.ZipCode)
	setIf(&set, "county", payload.County)
	setIf(&set, "state", payload.State)
	setIf(&set, "country", payload.Country)
	setIf(&set, "map_url", payload.MapURL)
	if payload.Latitude != nil && payload.Longitude != nil {
		set.add("latitude", *payload.Latitude)
		set.add("longitude", *payload.Longitude)
		set.add("geohash", geohash.Encode(*payload.Latitude, *payload.Longitude))
	}

	var (
		location model.Location
		err      error
	)
	if set.empty() {
		location, err = scanLocation(r.db.QueryRow(ctx, `SELECT `+locationColumns+` FROM location WHERE property_id = $1`, payload.PropertyID))
	} else {
		query, args := set.statement("location", "property_id", payload.PropertyID, locationColumns)
		location, err = scanLocation(r.db.QueryRow(ctx, query, args...))
	}
	if err != nil {
		return nil, notFound("location", err)
	}
	return &location, nil
}

func (r *PropertyRepository) ListImages(ctx context.Context, propertyID int64) ([]model.PropertyImage, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+imageColumns+`
		FROM property_images
		WHERE property_id = $1
		ORDER BY image_order, id`, propertyID)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanImage)
}

func (r *PropertyRepository) AddImage(ctx context.Context, payload *model.AddImagePayload) (*model.PropertyImage, error) {
	image, err := insertImage(ctx, r.db, payload.PropertyID, payload.ImageFields)
	if err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *PropertyRepository) DeleteImage(ctx context.Context, propertyID, imageID int64) error {
	return execOne(ctx, r.db, "property_images",
		`DELETE FROM property_images WHERE id = $1 AND property_id = $2`, imageID, propertyID)
}

func (r *PropertyRepository) ListVideos(ctx context.Context, propertyID int64) ([]model.PropertyVideo, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+videoColumns+`
		FROM property_videos
		WHERE property_id = $1
		ORDER BY video_order, id`, propertyID)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanVideo)
}

func (r *PropertyRepository) AddVideo(ctx context.Context, payload *model.AddVideoPayload) (*model.PropertyVideo, error) {
	video, err := insertVideo(ctx, r.db, payload.PropertyID, payload.VideoFields)
	if err != nil {
		return nil, err
	}
	return &video, nil
}

func (r *PropertyRepository) DeleteVideo(ctx context.Context, propertyID, videoID int64) error {
	return execOne(ctx, r.db, "property_videos",
		`DELETE FROM property_videos WHERE id = $1 AND property_id = $2`, videoID, propertyID)
}

type queryRower interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func insertImage(ctx context.Context, db queryRower, propertyID int64, in model.ImageFields) (model.PropertyImage, error) {
	return scanImage(db.QueryRow(ctx, `
		INSERT INTO property_images (property_id, image_url, image_order)
		VALUES ($1, $2, $3)
		RETURNING `+imageColumns,
		propertyID, in.ImageURL, in.ImageOrder,
	))
}

func insertVideo(ctx context.Context, db queryRower, propertyID int64, in model.VideoFields) (model.PropertyVideo, error) {
	return scanVideo(db.QueryRow(ctx, `
		INSERT INTO property_videos (property_id, video_url, video_order)
		VALUES ($1, $2, $3)
		RETURNING `+videoColumns,
		propertyID, in.VideoURL, in.VideoOrder,
	))
}
