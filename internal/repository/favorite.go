package repository

import (
	"context"

	"github.com/deppfellow/realestate/internal/model"
	"github.com/jackc/pgx/v5"
)

const favoriteColumns = `id, property_id, user_id, notes, is_contacted, notify_price_change,
	notify_status_change, notify_new_message, created_at`

type FavoriteRepository struct {
	db DBTX
}

func NewFavoriteRepository(db DBTX) *FavoriteRepository {
	return &FavoriteRepository{db: db}
}

func scanFavorite(row pgx.Row) (model.Favorite, error) {
	var f model.Favorite
	err := row.Scan(
		&f.ID, &f.PropertyID, &f.UserID, &f.Notes, &f.IsContacted, &f.NotifyPriceChange,
		&f.NotifyStatusChange, &f.NotifyNewMessage, &f.CreatedAt,
	)
	return f, err
}

func (r *FavoriteRepository) ListByUser(ctx context.Context, userID int64, page model.Page) ([]model.Favorite, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+favoriteColumns+`
		FROM favorites
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3`, userID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	return collect(rows, scanFavorite)
}

func (r *FavoriteRepository) Create(ctx context.Context, payload *model.CreateFavoritePayload) (*model.Favorite, error) {
	favorite, err := scanFavorite(r.db.QueryRow(ctx, `
		INSERT INTO favorites (property_id, user_id, notes, is_contacted, notify_price_change,
			notify_status_change, notify_new_message)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+favoriteColumns,
		payload.PropertyID, payload.UserID, payload.Notes, payload.IsContacted, payload.NotifyPriceChange,
		payload.NotifyStatusChange, payload.NotifyNewMessage,
	))
	if err != nil {
		return nil, err
	}
	return &favorite, nil
}

func (r *FavoriteRepository) Update(ctx context.Context, payload *model.UpdateFavoritePayload) (*model.Favorite, error) {
	var set updateSet
	setIf(&set, "notes", payload.Notes)
	setIf(&set, "is_contacted", payload.IsContacted)
	setIf(&set, "notify_price_change", payload.NotifyPriceChange)
	setIf(&set, "notify_status_change", payload.NotifyStatusChange)
	setIf(&set, "notify_new_message", payload.NotifyNewMessage)

	var (
		favorite model.Favorite
		err      error
	)
	if set.empty() {
		favorite, err = scanFavorite(r.db.QueryRow(ctx, `SELECT `+favoriteColumns+` FROM favorites WHERE id = $1`, payload.ID))
	} else {
		query, args := set.statement("favorites", "id", payload.ID, favoriteColumns)
		favorite, err = scanFavorite(r.db.QueryRow(ctx, query, args...))
	}
	if err != nil {
		return nil, notFound("favorites", err)
	}
	return &favorite, nil
}

func (r *FavoriteRepository) Delete(ctx context.Context, id int64) error {
	return execOne(ctx, r.db, "favorites", `DELETE FROM favorites WHERE id = $1`, id)
}
