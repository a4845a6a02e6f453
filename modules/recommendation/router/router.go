package router

import (
	"campus-recommender/core/constants"
	"campus-recommender/core/middleware"
	"campus-recommender/modules/recommendation/controller"

	"github.com/labstack/echo/v4"
)

// RecommendationRouter handles recommendation routes
type RecommendationRouter struct {
	RecommendationController *controller.RecommendationController
}

func NewRecommendationRouter(recommendationController *controller.RecommendationController) *RecommendationRouter {
	return &RecommendationRouter{
		RecommendationController: recommendationController,
	}
}

// Setup registers recommendation routes (students only)
func (r *RecommendationRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private")

	recRoutes := privateRoutes.Group("/recommendations", mw.AuthMiddleware(), mw.RequireRole(constants.RoleStudent))
	recRoutes.GET("", r.RecommendationController.GetRecommendations)
}
