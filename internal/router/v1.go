package router

import (
	"github.com/deppfellow/realestate/internal/handler"
	"github.com/labstack/echo/v4"
)

func registerUserRoutes(r *echo.Group, h *handler.Handlers) {
	users := r.Group("/users")
	users.GET("", h.Users.ListUsers)
	users.POST("", h.Users.CreateUser)
	users.GET("/:id", h.Users.GetUser)
	users.PUT("/:id", h.Users.UpdateUser)
	users.DELETE("/:id", h.Users.DeleteUser)

	users.GET("/:id/favorites", h.Activity.ListFavorites)
	users.GET("/:id/notifications", h.Activity.ListNotifications)
	users.GET("/:id/comparison-lists", h.Comparison.ListComparisonLists)
}

func registerAgencyRoutes(r *echo.Group, h *handler.Handlers) {
	agencies := r.Group("/agencies")
	agencies.GET("", h.Agencies.ListAgencies)
	agencies.POST("", h.Agencies.CreateAgency)
	agencies.GET("/:id", h.Agencies.GetAgency)
	agencies.PUT("/:id", h.Agencies.UpdateAgency)
	agencies.DELETE("/:id", h.Agencies.DeleteAgency)

	// Brokers are keyed by their user id.
	brokers := r.Group("/brokers")
	brokers.GET("", h.Agencies.ListBrokers)
	brokers.POST("", h.Agencies.CreateBroker)
	brokers.GET("/:id", h.Agencies.GetBroker)
	brokers.PUT("/:id", h.Agencies.UpdateBroker)
	brokers.DELETE("/:id", h.Agencies.DeleteBroker)
}

func registerPropertyRoutes(r *echo.Group, h *handler.Handlers) {
	properties := r.Group("/properties")
	properties.GET("", h.Properties.ListProperties)
	properties.POST("", h.Properties.CreateProperty)
	properties.GET("/:id", h.Properties.GetProperty)
	properties.PUT("/:id", h.Properties.UpdateProperty)
	properties.DELETE("/:id", h.Properties.DeleteProperty)

	properties.PUT("/:id/features", h.Properties.UpdateFeatures)
	properties.PUT("/:id/location", h.Properties.UpdateLocation)

	properties.GET("/:id/images", h.Properties.ListImages)
	properties.POST("/:id/images", h.Properties.AddImage)
	properties.DELETE("/:id/images/:imageId", h.Properties.DeleteImage)

	properties.GET("/:id/videos", h.Properties.ListVideos)
	properties.POST("/:id/videos", h.Properties.AddVideo)
	properties.DELETE("/:id/videos/:videoId", h.Properties.DeleteVideo)

	properties.GET("/:id/bids", h.Market.ListBids)
	properties.POST("/:id/bids", h.Market.PlaceBid)
	properties.GET("/:id/offers", h.Market.ListOffers)
	properties.POST("/:id/offers", h.Market.MakeOffer)
	properties.GET("/:id/price-history", h.Market.ListPriceHistory)
	properties.POST("/:id/price-history", h.Market.RecordPrice)

	properties.GET("/:id/views", h.Activity.ListViews)
	properties.POST("/:id/views", h.Activity.RecordView)
}

func registerListingRoutes(r *echo.Group, h *handler.Handlers) {
	listings := r.Group("/listings")
	listings.GET("", h.Listings.ListListings)
	listings.POST("", h.Listings.CreateListing)
	listings.GET("/:id", h.Listings.GetListing)
	listings.PATCH("/:id/status", h.Listings.UpdateListingStatus)
	listings.DELETE("/:id", h.Listings.DeleteListing)
}

func registerMarketRoutes(r *echo.Group, h *handler.Handlers) {
	bids := r.Group("/bids")
	bids.GET("/:id", h.Market.GetBid)
	bids.DELETE("/:id", h.Market.DeleteBid)

	offers := r.Group("/offers")
	offers.GET("/:id", h.Market.GetOffer)
	offers.PATCH("/:id/status", h.Market.UpdateOfferStatus)
}

func registerActivityRoutes(r *echo.Group, h *handler.Handlers) {
	favorites := r.Group("/favorites")
	favorites.POST("", h.Activity.CreateFavorite)
	favorites.PATCH("/:id", h.Activity.UpdateFavorite)
	favorites.DELETE("/:id", h.Activity.DeleteFavorite)

	notifications := r.Group("/notifications")
	notifications.POST("", h.Activity.CreateNotification)
	notifications.PATCH("/:id/read", h.Activity.MarkNotificationRead)
	notifications.DELETE("/:id", h.Activity.DeleteNotification)
}

func registerComparisonRoutes(r *echo.Group, h *handler.Handlers) {
	lists := r.Group("/comparison-lists")
	lists.POST("", h.Comparison.CreateComparisonList)
	lists.GET("/:id", h.Comparison.GetComparisonList)
	lists.PATCH("/:id", h.Comparison.RenameComparisonList)
	lists.DELETE("/:id", h.Comparison.DeleteComparisonList)

	lists.GET("/:id/items", h.Comparison.ListItems)
	lists.POST("/:id/items", h.Comparison.AddItem)
	lists.DELETE("/:id/items/:propertyId", h.Comparison.RemoveItem)
}
