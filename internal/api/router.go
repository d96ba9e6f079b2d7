package api

import (
	"time"

	"github.com/SherClockHolmes/webpush-go"
	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"rental-listing-backend/config"
	"rental-listing-backend/internal/assets"
	"rental-listing-backend/internal/mw"
	"rental-listing-backend/internal/notification"
	"rental-listing-backend/internal/store"
)

// NewRouter creates and configures a new Gin router. Public reads (viewing
// slots, communities, schools) skip authentication and get response caching;
// everything else requires the upstream-verified username header.
func NewRouter(cfg *config.ServerConfig, s store.Store, a *assets.Store, n *notification.WorkerPool, webpushOptions *webpush.Options) *gin.Engine {
	r := gin.Default()

	handler := NewHandler(s, a, n, webpushOptions)

	rateLimiter := mw.RateLimiter(rate.Limit(cfg.RateLimitPerSec), cfg.RateLimitBurst)

	cacheTTL := time.Duration(cfg.CacheTTLSeconds) * time.Second
	cacheStore := cache.New(cacheTTL, 2*cacheTTL)
	caching := mw.Cache(cacheStore, cacheTTL)

	auth := mw.Auth(cfg.AuthUsernameHeader)

	api := r.Group("/api")
	api.Use(rateLimiter)
	{
		// Public reads.
		api.GET("/apartments/:id/reserve_choices", caching, handler.ListSlots)
		api.GET("/reserve_choices/:id", handler.GetSlot)
		api.GET("/communities", caching, handler.ListCommunities)
		api.GET("/communities/:id", handler.GetCommunity)
		api.GET("/communities/search", handler.SearchCommunities)
		api.GET("/schools", caching, handler.ListSchools)
		api.GET("/schools/search", handler.SearchSchools)
		api.GET("/vapid_public_key", handler.GetVAPIDPublicKey)

		authed := api.Group("")
		authed.Use(auth)
		{
			authed.POST("/apartments", handler.PostApartment)
			authed.GET("/apartments", handler.ListApartments)
			authed.GET("/apartments/search", handler.SearchApartments)
			authed.GET("/apartments/:id", handler.GetApartment)
			authed.PUT("/apartments/:id", handler.PutApartment)
			authed.DELETE("/apartments/:id", handler.DeleteApartment)
			authed.POST("/apartments/:id/photos", handler.PostApartmentPhotos)
			authed.POST("/apartments/:id/reserve_choices", handler.PostSlot)
			authed.POST("/apartments/:id/fav", handler.PostFavorite)
			authed.DELETE("/apartments/:id/fav", handler.DeleteFavorite)
			authed.GET("/favorites", handler.ListFavorites)

			authed.POST("/reserves", handler.PostReserve)
			authed.GET("/reserves", handler.ListReserves)
			authed.GET("/reserves/:id", handler.GetReserve)
			authed.PUT("/reserves/:id", handler.PutReserve)

			authed.POST("/rents", handler.PostRent)
			authed.GET("/rents", handler.ListRents)
			authed.GET("/rents/:id", handler.GetRent)
			authed.GET("/rooms/:id/status", handler.GetRoomStatus)

			authed.GET("/subscriptions", handler.GetSubscriptions)
			authed.PUT("/subscriptions", handler.PutSubscription)
			authed.DELETE("/subscriptions", handler.DeleteSubscription)
		}
	}

	return r
}
