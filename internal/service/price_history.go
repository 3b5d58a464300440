package service

import (
	"context"

	"github.com/deppfellow/realestate/internal/model"
	"github.com/deppfellow/realestate/internal/repository"
	"github.com/pkg/errors"
)

type PriceHistoryService struct {
	repo *repository.PriceHistoryRepository
}

func NewPriceHistoryService(repo *repository.PriceHistoryRepository) *PriceHistoryService {
	return &PriceHistoryService{repo: repo}
}

func (s *PriceHistoryService) ListByProperty(ctx context.Context, payload *model.PropertyListPayload) ([]model.PriceHistory, error) {
	history, err := s.repo.ListByProperty(ctx, payload.PropertyID, payload.Page)
	return history, errors.Wrap(err, "get price history")
}

func (s *PriceHistoryService) Record(ctx context.Context, payload *model.CreatePriceHistoryPayload) (*model.PriceHistory, error) {
	entry, err := s.repo.Create(ctx, payload)
	return entry, errors.Wrap(err, "record price history")
}
