package handler

import (
	"net/http"

	"github.com/deppfellow/realestate/internal/model"
	"github.com/deppfellow/realestate/internal/server"
	"github.com/deppfellow/realestate/internal/service"
	"github.com/labstack/echo/v4"
)

// MarketHandler serves the pricing side of a property: bids, offers and
// the recorded price history.
type MarketHandler struct {
	Handler
	bidService          *service.BidService
	offerService        *service.OfferService
	priceHistoryService *service.PriceHistoryService
}

func NewMarketHandler(
	s *server.Server,
	bidService *service.BidService,
	offerService *service.OfferService,
	priceHistoryService *service.PriceHistoryService,
) *MarketHandler {
	return &MarketHandler{
		Handler:             NewHandler(s),
		bidService:          bidService,
		offerService:        offerService,
		priceHistoryService: priceHistoryService,
	}
}

func (h *MarketHandler) ListBids(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *model.PropertyListPayload) ([]model.Bid, error) {
			return h.bidService.ListByProperty(c.Request().Context(), payload)
		},
		http.StatusOK,
		&model.PropertyListPayload{},
	)(c)
}

func (h *MarketHandler) PlaceBid(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *model.CreateBidPayload) (*model.Bid, error) {
			return h.bidService.Create(c.Request().Context(), payload)
		},
		http.StatusCreated,
		&model.CreateBidPayload{},
	)(c)
}

func (h *MarketHandler) GetBid(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *model.IDPayload) (*model.Bid, error) {
			return h.bidService.Get(c.Request().Context(), payload.ID)
		},
		http.StatusOK,
		&model.IDPayload{},
	)(c)
}

func (h *MarketHandler) DeleteBid(c echo.Context) error {
	return HandleNoContent(
		h.Handler,
		func(c echo.Context, payload *model.IDPayload) error {
			return h.bidService.Delete(c.Request().Context(), payload.ID)
		},
		http.StatusNoContent,
		&model.IDPayload{},
	)(c)
}

func (h *MarketHandler) ListOffers(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *model.PropertyListPayload) ([]model.Offer, error) {
			return h.offerService.ListByProperty(c.Request().Context(), payload)
		},
		http.StatusOK,
		&model.PropertyListPayload{},
	)(c)
}

func (h *MarketHandler) MakeOffer(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *model.CreateOfferPayload) (*model.Offer, error) {
			return h.offerService.Create(c.Request().Context(), payload)
		},
		http.StatusCreated,
		&model.CreateOfferPayload{},
	)(c)
}

func (h *MarketHandler) GetOffer(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *model.IDPayload) (*model.Offer, error) {
			return h.offerService.Get(c.Request().Context(), payload.ID)
		},
		http.StatusOK,
		&model.IDPayload{},
	)(c)
}

func (h *MarketHandler) UpdateOfferStatus(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *model.UpdateOfferStatusPayload) (*model.Offer, error) {
			return h.offerService.UpdateStatus(c.Request().Context(), payload)
		},
		http.StatusOK,
		&model.UpdateOfferStatusPayload{},
	)(c)
}

func (h *MarketHandler) ListPriceHistory(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *model.PropertyListPayload) ([]model.PriceHistory, error) {
			return h.priceHistoryService.ListByProperty(c.Request().Context(), payload)
		},
		http.StatusOK,
		&model.PropertyListPayload{},
	)(c)
}

func (h *MarketHandler) RecordPrice(c echo.Context) error {
	return Handle(
		h.Handler,
		func(c echo.Context, payload *model.CreatePriceHistoryPayload) (*model.PriceHistory, error) {
			return h.priceHistoryService.Record(c.Request().Context(), payload)
		},
		http.StatusCreated,
		&model.CreatePriceHistoryPayload{},
	)(c)
}
