package service

import (
	"context"

	"github.com/deppfellow/realestate/internal/model"
	"github.com/deppfellow/realestate/internal/repository"
	"github.com/pkg/errors"
)

type FavoriteService struct {
	repo *repository.FavoriteRepository
}

func NewFavoriteService(repo *repository.FavoriteRepository) *FavoriteService {
	return &FavoriteService{repo: repo}
}

func (s *FavoriteService) ListByUser(ctx context.Context, payload *model.UserListPayload) ([]model.Favorite, error) {
	favorites, err := s.repo.ListByUser(ctx, payload.UserID, payload.Page)
	return favorites, errors.Wrap(err, "list favorites")
}

func (s *FavoriteService) Create(ctx context.Context, payload *model.CreateFavoritePayload) (*model.Favorite, error) {
	favorite, err := s.repo.Create(ctx, payload)
	return favorite, errors.Wrap(err, "favorite property")
}

func (s *FavoriteService) Update(ctx context.Context, payload *model.UpdateFavoritePayload) (*model.Favorite, error) {
	favorite, err := s.repo.Update(ctx, payload)
	return favorite, errors.Wrap(err, "update favorite")
}

func (s *FavoriteService) Delete(ctx context.Context, id int64) error {
	return errors.Wrap(s.repo.Delete(ctx, id), "unfavorite property")
}
