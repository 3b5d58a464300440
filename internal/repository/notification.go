package repository

import (
	"context"

	"github.com/deppfellow/realestate/internal/model"
	"github.com/jackc/pgx/v5"
)

const notificationColumns = `id, user_id, property_id, favorite_id, title, message, is_read, created_at`

type NotificationRepository struct {
	db DBTX
}

func NewNotificationRepository(db DBTX) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func scanNotification(row pgx.Row) (model.Notification, error) {
	var n model.Notification
	err := row.Scan(&n.ID, &n.UserID, &n.PropertyID, &n.FavoriteID, &n.Title, &n.Message, &n.IsRead, &n.CreatedAt)
	return n, err
}

// ListByUser returns the newest first. With unreadOnly set, read rows are skipped.
func (r *NotificationRepository) ListByUser(ctx context.Context, userID int64, unreadOnly bool, page model.Page) ([]model.Notification, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+notificationColumns+`
		FROM notifications
		WHERE user_id = $1 AND (NOT $2 OR is_read = FALSE)
		ORDER BY created_at DESC, id DESC
		LIMIT $3 OFFSET $4`, userID, unreadOnly, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanNotification)
}

func (r *NotificationRepository) Create(ctx context.Context, payload *model.CreateNotificationPayload) (*model.Notification, error) {
	notification, err := scanNotification(r.db.QueryRow(ctx, `
		INSERT INTO notifications (user_id, property_id, favorite_id, title, message)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+notificationColumns,
		payload.UserID, payload.PropertyID, payload.FavoriteID, payload.Title, payload.Message,
	))
	if err != nil {
		return nil, err
	}
	return &notification, nil
}

// MarkRead flips is_read once. A missing or already read notification is not found.
func (r *NotificationRepository) MarkRead(ctx context.Context, id int64) (*model.Notification, error) {
	notification, err := scanNotification(r.db.QueryRow(ctx, `
		UPDATE notifications SET is_read = TRUE
		WHERE id = $1 AND is_read = FALSE
		RETURNING `+notificationColumns, id))
	if err != nil {
		return nil, notFound("notifications", err)
	}
	return &notification, nil
}

func (r *NotificationRepository) Delete(ctx context.Context, id int64) error {
	return execOne(ctx, r.db, "notifications", `DELETE FROM notifications WHERE id = $1`, id)
}
