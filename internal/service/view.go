package service

import (
	"context"

	"github.com/deppfellow/realestate/internal/model"
	"github.com/deppfellow/realestate/internal/repository"
	"github.com/pkg/errors"
)

type ViewService struct {
	repo *repository.ViewRepository
}

func NewViewService(repo *repository.ViewRepository) *ViewService {
	return &ViewService{repo: repo}
}

func (s *ViewService) ListByProperty(ctx context.Context, propertyID int64) (*model.PropertyViews, error) {
	views, err := s.repo.ListByProperty(ctx, propertyID)
	return views, errors.Wrap(err, "get property views")
}

func (s *ViewService) Record(ctx context.Context, payload *model.RecordViewPayload) (*model.PropertyView, error) {
	view, err := s.repo.Record(ctx, payload)
	return view, errors.Wrap(err, "record property view")
}
