package service

import (
	"context"

	"github.com/deppfellow/realestate/internal/model"
	"github.com/deppfellow/realestate/internal/repository"
	"github.com/pkg/errors"
)

// NotificationService stores notifications. Delivery happens elsewhere, if at all.
type NotificationService struct {
	repo *repository.NotificationRepository
}

func NewNotificationService(repo *repository.NotificationRepository) *NotificationService {
	return &NotificationService{repo: repo}
}

func (s *NotificationService) ListByUser(ctx context.Context, payload *model.ListNotificationsPayload) ([]model.Notification, error) {
	notifications, err := s.repo.ListByUser(ctx, payload.UserID, payload.Unread, payload.Page)
	return notifications, errors.Wrap(err, "list notifications")
}

func (s *NotificationService) Create(ctx context.Context, payload *model.CreateNotificationPayload) (*model.Notification, error) {
	notification, err := s.repo.Create(ctx, payload)
	return notification, errors.Wrap(err, "add notification")
}

func (s *NotificationService) MarkRead(ctx context.Context, id int64) (*model.Notification, error) {
	notification, err := s.repo.MarkRead(ctx, id)
	return notification, errors.Wrap(err, "mark notification read")
}

func (s *NotificationService) Delete(ctx context.Context, id int64) error {
	return errors.Wrap(s.repo.Delete(ctx, id), "delete notification")
}
