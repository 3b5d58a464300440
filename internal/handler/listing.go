package handler

import (
	"net/http"

	"github.com/deppfellow/realestate/internal/model"
	"github.com/deppfellow/realestate/internal/server"
	"github.com/deppfellow/realestate/internal/service"
	"github.com/labstack/echo/v4"
)

type ListingHandler struct {
	Handler
	listingService *service.ListingService
}

func NewListingHandler(s *server.Server, listingService *service.ListingService) *ListingHandler {
	return &ListingHandler{
		Handler:        NewHandler(s),
		listingService: listingService,
	}
}

func (h *ListingHandler) ListListings(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *model.ListListingsPayload) ([]model.Listing, error) {
			return h.listingService.List(c.Request().Context(), payload)
		},
		http.StatusOK,
		&model.ListListingsPayload{},
	)(c)
}

func (h *ListingHandler) GetListing(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *model.IDPayload) (*model.Listing, error) {
			return h.listingService.Get(c.Request().Context(), payload.ID)
		},
		http.StatusOK,
		&model.IDPayload{},
	)(c)
}

func (h *ListingHandler) CreateListing(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *model.CreateListingPayload) (*model.Listing, error) {
			return h.listingService.Create(c.Request().Context(), payload)
		},
		http.StatusCreated,
		&model.CreateListingPayload{},
	)(c)
}

func (h *ListingHandler) UpdateListingStatus(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *model.UpdateListingStatusPayload) (*model.Listing, error) {
			return h.listingService.UpdateStatus(c.Request().Context(), payload)
		},
		http.StatusOK,
		&model.UpdateListingStatusPayload{},
	)(c)
}

func (h *ListingHandler) DeleteListing(c echo.Context) error {
	return HandleNoContent(
		h.Handler,
		func(c echo.Context, payload *model.IDPayload) error {
			return h.listingService.Delete(c.Request().Context(), payload.ID)
		},
		http.StatusNoContent,
		&model.IDPayload{},
	)(c)
}
