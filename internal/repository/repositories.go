package repository

// Repositories is a container for all repository instances.
// Each one shares the same DBTX, normally the server's pgx pool.
type Repositories struct {
	Users         *UserRepository
	Agencies      *AgencyRepository
	Brokers       *BrokerRepository
	Properties    *PropertyRepository
	Listings      *ListingRepository
	Bids          *BidRepository
	Offers        *OfferRepository
	Favorites     *FavoriteRepository
	Notifications *NotificationRepository
	PriceHistory  *PriceHistoryRepository
	Views         *ViewRepository
	Comparisons   *ComparisonRepository
}

// NewRepositories constructs the repository container.
func NewRepositories(db DBTX) *Repositories {
	return &Repositories{
		Users:         NewUserRepository(db),
		Agencies:      NewAgencyRepository(db),
		Brokers:       NewBrokerRepository(db),
		Properties:    NewPropertyRepository(db),
		Listings:      NewListingRepository(db),
		Bids:          NewBidRepository(db),
		Offers:        NewOfferRepository(db),
		Favorites:     NewFavoriteRepository(db),
		Notifications: NewNotificationRepository(db),
		PriceHistory:  NewPriceHistoryRepository(db),
		Views:         NewViewRepository(db),
		Comparisons:   NewComparisonRepository(db),
	}
}
