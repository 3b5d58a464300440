package service

import (
	"context"

	"github.com/deppfellow/realestate/internal/model"
	"github.com/deppfellow/realestate/internal/repository"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

type AgencyService struct {
	repo *repository.AgencyRepository
}

func NewAgencyService(repo *repository.AgencyRepository) *AgencyService {
	return &AgencyService{repo: repo}
}

func (s *AgencyService) List(ctx context.Context, page model.Page) ([]model.Agency, error) {
	agencies, err := s.repo.List(ctx, page)
	return agencies, errors.Wrap(err, "list agencies")
}

func (s *AgencyService) Get(ctx context.Context, id int64) (*model.Agency, error) {
	agency, err := s.repo.GetByID(ctx, id)
	return agency, errors.Wrap(err, "get agency")
}

func (s *AgencyService) Create(ctx context.Context, payload *model.CreateAgencyPayload) (*model.Agency, error) {
	agency, err := s.repo.Create(ctx, payload)
	if err != nil {
		return nil, errors.Wrap(err, "create agency")
	}
	zerolog.Ctx(ctx).Info().Int64("agency_id", agency.ID).Int64("user_id", agency.UserID).Msg("agency created")
	return agency, nil
}

func (s *AgencyService) Update(ctx context.Context, payload *model.UpdateAgencyPayload) (*model.Agency, error) {
	agency, err := s.repo.Update(ctx, payload)
	return agency, errors.Wrap(err, "update agency")
}

func (s *AgencyService) Delete(ctx context.Context, id int64) error {
	return errors.Wrap(s.repo.Delete(ctx, id), "delete agency")
}
