package router

import (
	"societyBackend/internal/middleware"
	"societyBackend/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetRecommendationRoutes(api *echo.Group, handler *rest.RecommendationHandler) {
	reco := api.Group("/recommendations", middleware.AuthMiddleware())
	reco.GET("/for-you", handler.ForYou)
	reco.GET("/for-you/teaser", handler.Teaser)
	reco.POST("/interactions", handler.TrackInteraction)
	reco.POST("/refresh", handler.Refresh)
}

func SetFavoriteRoutes(api *echo.Group, handler *rest.FavoriteHandler) {
	favorites := api.Group("/favorites", middleware.AuthMiddleware())
	favorites.GET("", handler.List)
	favorites.POST("", handler.Add)
	favorites.DELETE("/:companionId", handler.Remove)
}
