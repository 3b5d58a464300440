package service

import (
	"context"

	"github.com/deppfellow/realestate/internal/model"
	"github.com/deppfellow/realestate/internal/repository"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

type PropertyService struct {
	repo *repository.PropertyRepository
}

func NewPropertyService(repo *repository.PropertyRepository) *PropertyService {
	return &PropertyService{repo: repo}
}

func (s *PropertyService) List(ctx context.Context, page model.Page) ([]model.PropertySummary, error) {
	properties, err := s.repo.List(ctx, page)
	return properties, errors.Wrap(err, "list properties")
}

func (s *PropertyService) Get(ctx context.Context, id int64) (*model.PropertyDetail, error) {
	property, err := s.repo.GetByID(ctx, id)
	return property, errors.Wrap(err, "get property")
}

// Create stores the property with its features, location and media.
// Either everything is written or nothing is.
func (s *PropertyService) Create(ctx context.Context, payload *model.CreatePropertyPayload) (*model.PropertyDetail, error) {
	if payload.Property.PricePerSqrMeter == nil && payload.Features.SizeSqm > 0 {
		perSqm := *payload.Property.StartPrice / int64(payload.Features.SizeSqm)
		payload.Property.PricePerSqrMeter = &perSqm
	}

	property, err := s.repo.Create(ctx, payload)
	if err != nil {
		return nil, errors.Wrap(err, "create property")
	}

	zerolog.Ctx(ctx).Info().
		Int64("property_id", property.ID).
		Int("images", len(property.Images)).
		Int("videos", len(property.Videos)).
		Str("geohash", property.Location.Geohash).
		Msg("property created")

	return property, nil
}

func (s *PropertyService) Update(ctx context.Context, payload *model.UpdatePropertyPayload) (*model.Property, error) {
	property, err := s.repo.Update(ctx, payload)
	return property, errors.Wrap(err, "update property")
}

func (s *PropertyService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "delete property")
	}
	zerolog.Ctx(ctx).Info().Int64("property_id", id).Msg("property deleted")
	return nil
}

func (s *PropertyService) UpdateFeatures(ctx context.Context, payload *model.UpdateFeaturesPayload) (*model.Features, error) {
	features, err := s.repo.UpdateFeatures(ctx, payload)
	return features, errors.Wrap(err, "update features")
}

func (s *PropertyService) UpdateLocation(ctx context.Context, payload *model.UpdateLocationPayload) (*model.Location, error) {
	location, err := s.repo.UpdateLocation(ctx, payload)
	return location, errors.Wrap(err, "update location")
}

func (s *PropertyService) ListImages(ctx context.Context, propertyID int64) ([]model.PropertyImage, error) {
	images, err := s.repo.ListImages(ctx, propertyID)
	return images, errors.Wrap(err, "list images")
}

func (s *PropertyService) AddImage(ctx context.Context, payload *model.AddImagePayload) (*model.PropertyImage, error) {
	image, err := s.repo.AddImage(ctx, payload)
	return image, errors.Wrap(err, "add image")
}

func (s *PropertyService) DeleteImage(ctx context.Context, payload *model.DeleteImagePayload) error {
	return errors.Wrap(s.repo.DeleteImage(ctx, payload.PropertyID, payload.ImageID), "delete image")
}

func (s *PropertyService) ListVideos(ctx context.Context, propertyID int64) ([]model.PropertyVideo, error) {
	videos, err := s.repo.ListVideos(ctx, propertyID)
	return videos, errors.Wrap(err, "list videos")
}

func (s *PropertyService) AddVideo(ctx context.Context, payload *model.AddVideoPayload) (*model.PropertyVideo, error) {
	video, err := s.repo.AddVideo(ctx, payload)
	return video, errors.Wrap(err, "add video")
}

func (s *PropertyService) DeleteVideo(ctx context.Context, payload *model.DeleteVideoPayload) error {
	return errors.Wrap(s.repo.DeleteVideo(ctx, payload.PropertyID, payload.VideoID), "delete video")
}
