package handler

import (
	"github.com/deppfellow/realestate/internal/server"
	"github.com/deppfellow/realestate/internal/service"
)

// Handlers is a container that groups all HTTP handlers.
type Handlers struct {
	Health     *HealthHandler
	OpenAPI    *OpenAPIHandler
	Users      *UserHandler
	Agencies   *AgencyHandler
	Properties *PropertyHandler
	Listings   *ListingHandler
	Market     *MarketHandler
	Activity   *ActivityHandler
	Comparison *ComparisonHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:     NewHealthHandler(s),
		OpenAPI:    NewOpenAPIHandler(s),
		Users:      NewUserHandler(s, services.Users),
		Agencies:   NewAgencyHandler(s, services.Agencies, services.Brokers),
		Properties: NewPropertyHandler(s, services.Properties),
		Listings:   NewListingHandler(s, services.Listings),
		Market:     NewMarketHandler(s, services.Bids, services.Offers, services.PriceHistory),
		Activity:   NewActivityHandler(s, services.Favorites, services.Notifications, services.Views),
		Comparison: NewComparisonHandler(s, services.Comparisons),
	}
}
