package handler

import (
	"net/http"

	"github.com/deppfellow/realestate/internal/model"
	"github.com/deppfellow/realestate/internal/server"
	"github.com/deppfellow/realestate/internal/service"
	"github.com/labstack/echo/v4"
)

type AgencyHandler struct {
	Handler
	agencyService *service.AgencyService
	brokerService *service.BrokerService
}

// NewAgencyHandler serves agencies and the brokers that work for them.
func NewAgencyHandler(s *server.Server, agencyService *service.AgencyService, brokerService *service.BrokerService) *AgencyHandler {
	return &AgencyHandler{
		Handler:       NewHandler(s),
		agencyService: agencyService,
		brokerService: brokerService,
	}
}

func (h *AgencyHandler) ListAgencies(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *model.ListPayload) ([]model.Agency, error) {
			return h.agencyService.List(c.Request().Context(), payload.Page)
		},
		http.StatusOK,
		&model.ListPayload{},
	)(c)
}

func (h *AgencyHandler) GetAgency(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *model.IDPayload) (*model.Agency, error) {
			return h.agencyService.Get(c.Request().Context(), payload.ID)
		},
		http.StatusOK,
		&model.IDPayload{},
	)(c)
}

func (h *AgencyHandler) CreateAgency(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *model.CreateAgencyPayload) (*model.Agency, error) {
			return h.agencyService.Create(c.Request().Context(), payload)
		},
		http.StatusCreated,
		&model.CreateAgencyPayload{},
	)(c)
}

func (h *AgencyHandler) UpdateAgency(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *model.UpdateAgencyPayload) (*model.Agency, error) {
			return h.agencyService.Update(c.Request().Context(), payload)
		},
		http.StatusOK,
		&model.UpdateAgencyPayload{},
	)(c)
}

func (h *AgencyHandler) DeleteAgency(c echo.Context) error {
	return HandleNoContent(
		h.Handler,
		func(c echo.Context, payload *model.IDPayload) error {
			return h.agencyService.Delete(c.Request().Context(), payload.ID)
		},
		http.StatusNoContent,
		&model.IDPayload{},
	)(c)
}

func (h *AgencyHandler) ListBrokers(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *model.ListPayload) ([]model.Broker, error) {
			return h.brokerService.List(c.Request().Context(), payload.Page)
		},
		http.StatusOK,
		&model.ListPayload{},
	)(c)
}

func (h *AgencyHandler) GetBroker(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *model.IDPayload) (*model.Broker, error) {
			return h.brokerService.Get(c.Request().Context(), payload.ID)
		},
		http.StatusOK,
		&model.IDPayload{},
	)(c)
}

func (h *AgencyHandler) CreateBroker(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *model.CreateBrokerPayload) (*model.Broker, error) {
			return h.brokerService.Create(c.Request().Context(), payload)
		},
		http.StatusCreated,
		&model.CreateBrokerPayload{},
	)(c)
}

func (h *AgencyHandler) UpdateBroker(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *model.UpdateBrokerPayload) (*model.Broker, error) {
			return h.brokerService.Update(c.Request().Context(), payload)
		},
		http.StatusOK,
		&model.UpdateBrokerPayload{},
	)(c)
}

func (h *AgencyHandler) DeleteBroker(c echo.Context) error {
	return HandleNoContent(
		h.Handler,
		func(c echo.Context, payload *model.IDPayload) error {
			return h.brokerService.Delete(c.Request().Context(), payload.ID)
		},
		http.StatusNoContent,
		&model.IDPayload{},
	)(c)
}
