package service

import (
	"context"

	"github.com/deppfellow/realestate/internal/model"
	"github.com/deppfellow/realestate/internal/repository"
	"github.com/pkg/errors"
)

type BidService struct {
	repo *repository.BidRepository
}

func NewBidService(repo *repository.BidRepository) *BidService {
	return &BidService{repo: repo}
}

func (s *BidService) ListByProperty(ctx context.Context, payload *model.PropertyListPayload) ([]model.Bid, error) {
	bids, err := s.repo.ListByProperty(ctx, payload.PropertyID, payload.Page)
	return bids, errors.Wrap(err, "list bids")
}

func (s *BidService) Get(ctx context.Context, id int64) (*model.Bid, error) {
	bid, err := s.repo.GetByID(ctx, id)
	return bid, errors.Wrap(err, "get bid")
}

func (s *BidService) Create(ctx context.Context, payload *model.CreateBidPayload) (*model.Bid, error) {
	bid, err := s.repo.Create(ctx, payload)
	return bid, errors.Wrap(err, "place bid")
}

func (s *BidService) Delete(ctx context.Context, id int64) error {
	return errors.Wrap(s.repo.Delete(ctx, id), "delete bid")
}
