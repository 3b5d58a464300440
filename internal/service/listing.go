package service

import (
	"context"

	"github.com/deppfellow/realestate/internal/model"
	"github.com/deppfellow/realestate/internal/repository"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

type ListingService struct {
	repo *repository.ListingRepository
}

func NewListingService(repo *repository.ListingRepository) *ListingService {
	return &ListingService{repo: repo}
}

func (s *ListingService) List(ctx context.Context, payload *model.ListListingsPayload) ([]model.Listing, error) {
	listings, err := s.repo.List(ctx, payload)
	return listings, errors.Wrap(err, "list listings")
}

func (s *ListingService) Get(ctx context.Context, id int64) (*model.Listing, error) {
	listing, err := s.repo.GetByID(ctx, id)
	return listing, errors.Wrap(err, "get listing")
}

func (s *ListingService) Create(ctx context.Context, payload *model.CreateListingPayload) (*model.Listing, error) {
	listing, err := s.repo.Create(ctx, payload)
	if err != nil {
		return nil, errors.Wrap(err, "create listing")
	}
	zerolog.Ctx(ctx).Info().
		Int64("listing_id", listing.ID).
		Int64("property_id", listing.PropertyID).
		Msg("property listed")
	return listing, nil
}

func (s *ListingService) UpdateStatus(ctx context.Context, payload *model.UpdateListingStatusPayload) (*model.Listing, error) {
	listing, err := s.repo.UpdateStatus(ctx, payload.ID, payload.ListingStatus)
	return listing, errors.Wrap(err, "update listing status")
}

func (s *ListingService) Delete(ctx context.Context, id int64) error {
	return errors.Wrap(s.repo.Delete(ctx, id), "delete listing")
}
