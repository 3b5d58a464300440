package service

import (
	"github.com/deppfellow/realestate/internal/repository"
	"github.com/deppfellow/realestate/internal/server"
	"golang.org/x/crypto/bcrypt"
)

type Services struct {
	Users         *UserService
	Agencies      *AgencyService
	Brokers       *BrokerService
	Properties    *PropertyService
	Listings      *ListingService
	Bids          *BidService
	Offers        *OfferService
	Favorites     *FavoriteService
	Notifications *NotificationService
	PriceHistory  *PriceHistoryService
	Views         *ViewService
	Comparisons   *ComparisonService
}

func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	cost := bcrypt.DefaultCost
	if s.Config.Primary.Env == "local" {
		cost = bcrypt.MinCost
	}

	return &Services{
		Users:         NewUserService(repos.Users, cost),
		Agencies:      NewAgencyService(repos.Agencies),
		Brokers:       NewBrokerService(repos.Brokers),
		Properties:    NewPropertyService(repos.Properties),
		Listings:      NewListingService(repos.Listings),
		Bids:          NewBidService(repos.Bids),
		Offers:        NewOfferService(repos.Offers),
		Favorites:     NewFavoriteService(repos.Favorites),
		Notifications: NewNotificationService(repos.Notifications),
		PriceHistory:  NewPriceHistoryService(repos.PriceHistory),
		Views:         NewViewService(repos.Views),
		Comparisons:   NewComparisonService(repos.Comparisons),
	}, nil
}
