package service

import (
	"context"

	"github.com/deppfellow/realestate/internal/model"
	"github.com/deppfellow/realestate/internal/repository"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	repo *repository.UserRepository
	cost int
}

// NewUserService hashes passwords with the given bcrypt cost.
func NewUserService(repo *repository.UserRepository, cost int) *UserService {
	return &UserService{repo: repo, cost: cost}
}

func (s *UserService) List(ctx context.Context, page model.Page) ([]model.User, error) {
	users, err := s.repo.List(ctx, page)
	return users, errors.Wrap(err, "list users")
}

func (s *UserService) Get(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	return user, errors.Wrap(err, "get user")
}

func (s *UserService) Create(ctx context.Context, payload *model.CreateUserPayload) (*model.User, error) {
	hash, err := s.hash(payload.Password)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.Create(ctx, payload, hash)
	if err != nil {
		return nil, errors.Wrap(err, "create user")
	}

	zerolog.Ctx(ctx).Info().
		Int64("user_id", user.ID).
		Str("role", user.Role).
		Msg("user created")

	return user, nil
}

// Update re-hashes the password when one is given.
func (s *UserService) Update(ctx context.Context, payload *model.UpdateUserPayload) (*model.User, error) {
	var hash *string
	if payload.Password != nil {
		h, err := s.hash(*payload.Password)
		if err != nil {
			return nil, err
		}
		hash = &h
	}

	user, err := s.repo.Update(ctx, payload, hash)
	return user, errors.Wrap(err, "update user")
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "delete user")
	}
	zerolog.Ctx(ctx).Info().Int64("user_id", id).Msg("user deleted")
	return nil
}

func (s *UserService) hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", errors.Wrap(err, "hash password")
	}
	return string(hash), nil
}
