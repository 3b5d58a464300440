package service

import (
	"context"

	"github.com/deppfellow/realestate/internal/model"
	"github.com/deppfellow/realestate/internal/repository"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

type BrokerService struct {
	repo *repository.BrokerRepository
}

func NewBrokerService(repo *repository.BrokerRepository) *BrokerService {
	return &BrokerService{repo: repo}
}

func (s *BrokerService) List(ctx context.Context, page model.Page) ([]model.Broker, error) {
	brokers, err := s.repo.List(ctx, page)
	return brokers, errors.Wrap(err, "list brokers")
}

func (s *BrokerService) Get(ctx context.Context, userID int64) (*model.Broker, error) {
	broker, err := s.repo.GetByID(ctx, userID)
	return broker, errors.Wrap(err, "get broker")
}

func (s *BrokerService) Create(ctx context.Context, payload *model.CreateBrokerPayload) (*model.Broker, error) {
	broker, err := s.repo.Create(ctx, payload)
	if err != nil {
		return nil, errors.Wrap(err, "create broker")
	}
	zerolog.Ctx(ctx).Info().Int64("user_id", broker.UserID).Msg("broker created")
	return broker, nil
}

func (s *BrokerService) Update(ctx context.Context, payload *model.UpdateBrokerPayload) (*model.Broker, error) {
	broker, err := s.repo.Update(ctx, payload)
	return broker, errors.Wrap(err, "update broker")
}

func (s *BrokerService) Delete(ctx context.Context, userID int64) error {
	return errors.Wrap(s.repo.Delete(ctx, userID), "delete broker")
}
