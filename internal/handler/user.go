package handler

import (
	"net/http"

	"github.com/deppfellow/realestate/internal/model"
	"github.com/deppfellow/realestate/internal/server"
	"github.com/deppfellow/realestate/internal/service"
	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	Handler
	userService *service.UserService
}

func NewUserHandler(s *server.Server, userService *service.UserService) *UserHandler {
	return &UserHandler{
		Handler:     NewHandler(s),
		userService: userService,
	}
}

func (h *UserHandler) ListUsers(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *model.ListPayload) ([]model.User, error) {
			return h.userService.List(c.Request().Context(), payload.Page)
		},
		http.StatusOK,
		&model.ListPayload{},
	)(c)
}

func (h *UserHandler) GetUser(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *model.IDPayload) (*model.User, error) {
			return h.userService.Get(c.Request().Context(), payload.ID)
		},
		http.StatusOK,
		&model.IDPayload{},
	)(c)
}

func (h *UserHandler) CreateUser(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *model.CreateUserPayload) (*model.User, error) {
			return h.userService.Create(c.Request().Context(), payload)
		},
		http.StatusCreated,
		&model.CreateUserPayload{},
	)(c)
}

func (h *UserHandler) UpdateUser(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *model.UpdateUserPayload) (*model.User, error) {
			return h.userService.Update(c.Request().Context(), payload)
		},
		http.StatusOK,
		&model.UpdateUserPayload{},
	)(c)
}

func (h *UserHandler) DeleteUser(c echo.Context) error {
	return HandleNoContent(
		h.Handler,
		func(c echo.Context, payload *model.IDPayload) error {
			return h.userService.Delete(c.Request().Context(), payload.ID)
		},
		http.StatusNoContent,
		&model.IDPayload{},
	)(c)
}
