package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/digitalax/dlx-indexer/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Garment endpoints (public read access)
		v1.GET("/garments", handler.ListGarments)
		v1.GET("/garments/:token_id", handler.GetGarment)

		// Collector endpoints (public read access)
		v1.GET("/collectors", handler.ListCollectors)
		v1.GET("/collectors/:address", handler.GetCollector)

		// Guild staking endpoints (public read access)
		v1.GET("/guilds/:guild/stakers", handler.ListStakers)
		v1.GET("/guilds/:guild/stakers/:address", handler.GetStaker)
		v1.GET("/guilds/:guild/stakers/:address/snapshots", handler.ListWeightSnapshots)
		v1.GET("/guilds/:guild/stakers/:address/claps", handler.ListClapHistory)

		// Whitelisted token registry (public read access)
		v1.GET("/whitelisted-tokens", handler.ListWhitelistedTokens)

		// Operational endpoints (requires authentication)
		v1.GET("/ops/cursor/:chain", middleware.Auth(authCfg), handler.GetBlockCursor)
	}
}
