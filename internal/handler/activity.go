package handler

import (
	"net/http"

	"github.com/deppfellow/realestate/internal/model"
	"github.com/deppfellow/realestate/internal/server"
	"github.com/deppfellow/realestate/internal/service"
	"github.com/labstack/echo/v4"
)

// ActivityHandler serves what users do around properties: favorites,
// notifications and view tracking.
type ActivityHandler struct {
	Handler
	favoriteService     *service.FavoriteService
	notificationService *service.NotificationService
	viewService         *service.ViewService
}

func NewActivityHandler(
	s *server.Server,
	favoriteService *service.FavoriteService,
	notificationService *service.NotificationService,
	viewService *service.ViewService,
) *ActivityHandler {
	return &ActivityHandler{
		Handler:             NewHandler(s),
		favoriteService:     favoriteService,
		notificationService: notificationService,
		viewService:         viewService,
	}
}

func (h *ActivityHandler) ListFavorites(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *model.UserListPayload) ([]model.Favorite, error) {
			return h.favoriteService.ListByUser(c.Request().Context(), payload)
		},
		http.StatusOK,
		&model.UserListPayload{},
	)(c)
}

func (h *ActivityHandler) CreateFavorite(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *model.CreateFavoritePayload) (*model.Favorite, error) {
			return h.favoriteService.Create(c.Request().Context(), payload)
		},
		http.StatusCreated,
		&model.CreateFavoritePayload{},
	)(c)
}

func (h *ActivityHandler) UpdateFavorite(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *model.UpdateFavoritePayload) (*model.Favorite, error) {
			return h.favoriteService.Update(c.Request().Context(), payload)
		},
		http.StatusOK,
		&model.UpdateFavoritePayload{},
	)(c)
}

func (h *ActivityHandler) DeleteFavorite(c echo.Context) error {
	return HandleNoContent(
		h.Handler,
		func(c echo.Context, payload *model.IDPayload) error {
			return h.favoriteService.Delete(c.Request().Context(), payload.ID)
		},
		http.StatusNoContent,
		&model.IDPayload{},
	)(c)
}

func (h *ActivityHandler) ListNotifications(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *model.ListNotificationsPayload) ([]model.Notification, error) {
			return h.notificationService.ListByUser(c.Request().Context(), payload)
		},
		http.StatusOK,
		&model.ListNotificationsPayload{},
	)(c)
}

func (h *ActivityHandler) CreateNotification(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *model.CreateNotificationPayload) (*model.Notification, error) {
			return h.notificationService.Create(c.Request().Context(), payload)
		},
		http.StatusCreated,
		&model.CreateNotificationPayload{},
	)(c)
}

func (h *ActivityHandler) MarkNotificationRead(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *model.IDPayload) (*model.Notification, error) {
			return h.notificationService.MarkRead(c.Request().Context(), payload.ID)
		},
		http.StatusOK,
		&model.IDPayload{},
	)(c)
}

func (h *ActivityHandler) DeleteNotification(c echo.Context) error {
	return HandleNoContent(
		h.Handler,
		func(c echo.Context, payload *model.IDPayload) error {
			return h.notificationService.Delete(c.Request().Context(), payload.ID)
		},
		http.StatusNoContent,
		&model.IDPayload{},
	)(c)
}

func (h *ActivityHandler) ListViews(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *model.PropertyMediaListPayload) (*model.PropertyViews, error) {
			return h.viewService.ListByProperty(c.Request().Context(), payload.PropertyID)
		},
		http.StatusOK,
		&model.PropertyMediaListPayload{},
	)(c)
}

// RecordView answers 200 rather than 201: repeat views update the same row.
func (h *ActivityHandler) RecordView(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *model.RecordViewPayload) (*model.PropertyView, error) {
			return h.viewService.Record(c.Request().Context(), payload)
		},
		http.StatusOK,
		&model.RecordViewPayload{},
	)(c)
}
