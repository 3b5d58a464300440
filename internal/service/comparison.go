package service

import (
	"context"

	"github.com/deppfellow/realestate/internal/model"
	"github.com/deppfellow/realestate/internal/repository"
	"github.com/pkg/errors"
)

type ComparisonService struct {
	repo *repository.ComparisonRepository
}

func NewComparisonService(repo *repository.ComparisonRepository) *ComparisonService {
	return &ComparisonService{repo: repo}
}

func (s *ComparisonService) ListByUser(ctx context.Context, payload *model.UserListPayload) ([]model.ComparisonList, error) {
	lists, err := s.repo.ListByUser(ctx, payload.UserID, payload.Page)
	return lists, errors.Wrap(err, "list comparison lists")
}

func (s *ComparisonService) Get(ctx context.Context, id int64) (*model.ComparisonList, error) {
	list, err := s.repo.GetByID(ctx, id)
	return list, errors.Wrap(err, "get comparison list")
}

func (s *ComparisonService) Create(ctx context.Context, payload *model.CreateComparisonListPayload) (*model.ComparisonList, error) {
	list, err := s.repo.Create(ctx, payload)
	return list, errors.Wrap(err, "create comparison list")
}

func (s *ComparisonService) Rename(ctx context.Context, payload *model.RenameComparisonListPayload) (*model.ComparisonList, error) {
	list, err := s.repo.Rename(ctx, payload.ID, payload.Name)
	return list, errors.Wrap(err, "rename comparison list")
}

func (s *ComparisonService) Delete(ctx context.Context, id int64) error {
	return errors.Wrap(s.repo.Delete(ctx, id), "delete comparison list")
}

func (s *ComparisonService) ListItems(ctx context.Context, payload *model.ComparisonItemsPayload) ([]model.ComparisonListItem, error) {
	items, err := s.repo.ListItems(ctx, payload.ComparisonListID, payload.Page)
	return items, errors.Wrap(err, "list comparison items")
}

func (s *ComparisonService) AddItem(ctx context.Context, payload *model.AddComparisonItemPayload) (*model.ComparisonListItem, error) {
	item, err := s.repo.AddItem(ctx, payload.ComparisonListID, payload.PropertyID)
	return item, errors.Wrap(err, "add comparison item")
}

func (s *ComparisonService) RemoveItem(ctx context.Context, payload *model.RemoveComparisonItemPayload) error {
	return errors.Wrap(s.repo.RemoveItem(ctx, payload.ComparisonListID, payload.PropertyID), "remove comparison item")
}
