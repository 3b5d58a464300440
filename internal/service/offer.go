package service

import (
	"context"

	"github.com/deppfellow/realestate/internal/model"
	"github.com/deppfellow/realestate/internal/repository"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

type OfferService struct {
	repo *repository.OfferRepository
}

func NewOfferService(repo *repository.OfferRepository) *OfferService {
	return &OfferService{repo: repo}
}

func (s *OfferService) ListByProperty(ctx context.Context, payload *model.PropertyListPayload) ([]model.Offer, error) {
	offers, err := s.repo.ListByProperty(ctx, payload.PropertyID, payload.Page)
	return offers, errors.Wrap(err, "list offers")
}

func (s *OfferService) Get(ctx context.Context, id int64) (*model.Offer, error) {
	offer, err := s.repo.GetByID(ctx, id)
	return offer, errors.Wrap(err, "get offer")
}

func (s *OfferService) Create(ctx context.Context, payload *model.CreateOfferPayload) (*model.Offer, error) {
	offer, err := s.repo.Create(ctx, payload)
	return offer, errors.Wrap(err, "make offer")
}

func (s *OfferService) UpdateStatus(ctx context.Context, payload *model.UpdateOfferStatusPayload) (*model.Offer, error) {
	offer, err := s.repo.UpdateStatus(ctx, payload.ID, payload.Status)
	if err != nil {
		return nil, errors.Wrap(err, "update offer status")
	}
	zerolog.Ctx(ctx).Info().Int64("offer_id", offer.ID).Str("status", offer.Status).Msg("offer status changed")
	return offer, nil
}
