package handler

import (
	"net/http"

	"github.com/deppfellow/realestate/internal/model"
	"github.com/deppfellow/realestate/internal/server"
	"github.com/deppfellow/realestate/internal/service"
	"github.com/labstack/echo/v4"
)

type ComparisonHandler struct {
	Handler
	comparisonService *service.ComparisonService
}

func NewComparisonHandler(s *server.Server, comparisonService *service.ComparisonService) *ComparisonHandler {
	return &ComparisonHandler{
		Handler:           NewHandler(s),
		comparisonService: comparisonService,
	}
}

func (h *ComparisonHandler) ListComparisonLists(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *model.UserListPayload) ([]model.ComparisonList, error) {
			return h.comparisonService.ListByUser(c.Request().Context(), payload)
		},
		http.StatusOK,
		&model.UserListPayload{},
	)(c)
}

func (h *ComparisonHandler) GetComparisonList(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *model.IDPayload) (*model.ComparisonList, error) {
			return h.comparisonService.Get(c.Request().Context(), payload.ID)
		},
		http.StatusOK,
		&model.IDPayload{},
	)(c)
}

func (h *ComparisonHandler) CreateComparisonList(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *model.CreateComparisonListPayload) (*model.ComparisonList, error) {
			return h.comparisonService.Create(c.Request().Context(), payload)
		},
		http.StatusCreated,
		&model.CreateComparisonListPayload{},
	)(c)
}

func (h *ComparisonHandler) RenameComparisonList(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *model.RenameComparisonListPayload) (*model.ComparisonList, error) {
			return h.comparisonService.Rename(c.Request().Context(), payload)
		},
		http.StatusOK,
		&model.RenameComparisonListPayload{},
	)(c)
}

func (h *ComparisonHandler) DeleteComparisonList(c echo.Context) error {
	return HandleNoContent(
		h.Handler,
		func(c echo.Context, payload *model.IDPayload) error {
			return h.comparisonService.Delete(c.Request().Context(), payload.ID)
		},
		http.StatusNoContent,
		&model.IDPayload{},
	)(c)
}

func (h *ComparisonHandler) ListItems(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *model.ComparisonItemsPayload) ([]model.ComparisonListItem, error) {
			return h.comparisonService.ListItems(c.Request().Context(), payload)
		},
		http.StatusOK,
		&model.ComparisonItemsPayload{},
	)(c)
}

func (h *ComparisonHandler) AddItem(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *model.AddComparisonItemPayload) (*model.ComparisonListItem, error) {
			return h.comparisonService.AddItem(c.Request().Context(), payload)
		},
		http.StatusCreated,
		&model.AddComparisonItemPayload{},
	)(c)
}

func (h *ComparisonHandler) RemoveItem(c echo.Context) error {
	return HandleNoContent(
		h.Handler,
		func(c echo.Context, payload *model.RemoveComparisonItemPayload) error {
			return h.comparisonService.RemoveItem(c.Request().Context(), payload)
		},
		http.StatusNoContent,
		&model.RemoveComparisonItemPayload{},
	)(c)
}
