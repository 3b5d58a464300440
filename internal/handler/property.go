package handler

import (
	"net/http"

	"github.com/deppfellow/realestate/internal/model"
	"github.com/deppfellow/realestate/internal/server"
	"github.com/deppfellow/realestate/internal/service"
	"github.com/labstack/echo/v4"
)

// PropertyHandler serves properties and their 1:1 and 1:N dependents.
type PropertyHandler struct {
	Handler
	propertyService *service.PropertyService
}

func NewPropertyHandler(s *server.Server, propertyService *service.PropertyService) *PropertyHandler {
	return &PropertyHandler{
		Handler:         NewHandler(s),
		propertyService: propertyService,
	}
}

func (h *PropertyHandler) ListProperties(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *model.ListPropertiesPayload) ([]model.PropertySummary, error) {
			return h.propertyService.List(c.Request().Context(), payload.Page)
		},
		http.StatusOK,
		&model.ListPropertiesPayload{},
	)(c)
}

func (h *PropertyHandler) GetProperty(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *model.IDPayload) (*model.PropertyDetail, error) {
			return h.propertyService.Get(c.Request().Context(), payload.ID)
		},
		http.StatusOK,
		&model.IDPayload{},
	)(c)
}

func (h *PropertyHandler) CreateProperty(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *model.CreatePropertyPayload) (*model.PropertyDetail, error) {
			return h.propertyService.Create(c.Request().Context(), payload)
		},
		http.StatusCreated,
		&model.CreatePropertyPayload{},
	)(c)
}

func (h *PropertyHandler) UpdateProperty(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *model.UpdatePropertyPayload) (*model.Property, error) {
			return h.propertyService.Update(c.Request().Context(), payload)
		},
		http.StatusOK,
		&model.UpdatePropertyPayload{},
	)(c)
}

func (h *PropertyHandler) DeleteProperty(c echo.Context) error {
	return HandleNoContent(
		h.Handler,
		func(c echo.Context, payload *model.IDPayload) error {
			return h.propertyService.Delete(c.Request().Context(), payload.ID)
		},
		http.StatusNoContent,
		&model.IDPayload{},
	)(c)
}

func (h *PropertyHandler) UpdateFeatures(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *model.UpdateFeaturesPayload) (*model.Features, error) {
			return h.propertyService.UpdateFeatures(c.Request().Context(), payload)
		},
		http.StatusOK,
		&model.UpdateFeaturesPayload{},
	)(c)
}

func (h *PropertyHandler) UpdateLocation(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *model.UpdateLocationPayload) (*model.Location, error) {
			return h.propertyService.UpdateLocation(c.Request().Context(), payload)
		},
		http.StatusOK,
		&model.UpdateLocationPayload{},
	)(c)
}

func (h *PropertyHandler) ListImages(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *model.PropertyMediaListPayload) ([]model.PropertyImage, error) {
			return h.propertyService.ListImages(c.Request().Context(), payload.PropertyID)
		},
		http.StatusOK,
		&model.PropertyMediaListPayload{},
	)(c)
}

func (h *PropertyHandler) AddImage(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *model.AddImagePayload) (*model.PropertyImage, error) {
			return h.propertyService.AddImage(c.Request().Context(), payload)
		},
		http.StatusCreated,
		&model.AddImagePayload{},
	)(c)
}

func (h *PropertyHandler) DeleteImage(c echo.Context) error {
	return HandleNoContent(
		h.Handler,
		func(c echo.Context, payload *model.DeleteImagePayload) error {
			return h.propertyService.DeleteImage(c.Request().Context(), payload)
		},
		http.StatusNoContent,
		&model.DeleteImagePayload{},
	)(c)
}

func (h *PropertyHandler) ListVideos(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *model.PropertyMediaListPayload) ([]model.PropertyVideo, error) {
			return h.propertyService.ListVideos(c.Request().Context(), payload.PropertyID)
		},
		http.StatusOK,
		&model.PropertyMediaListPayload{},
	)(c)
}

func (h *PropertyHandler) AddVideo(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *model.AddVideoPayload) (*model.PropertyVideo, error) {
			return h.propertyService.AddVideo(c.Request().Context(), payload)
		},
		http.StatusCreated,
		&model.AddVideoPayload{},
	)(c)
}

func (h *PropertyHandler) DeleteVideo(c echo.Context) error {
	return HandleNoContent(
		h.Handler,
		func(c echo.Context, payload *model.DeleteVideoPayload) error {
			return h.propertyService.DeleteVideo(c.Request().Context(), payload)
		},
		http.StatusNoContent,
		&model.DeleteVideoPayload{},
	)(c)
}
