package router

import (
	"campus-recommender/core/constants"
	"campus-recommender/core/middleware"
	"campus-recommender/modules/profile/controller"

	"github.com/labstack/echo/v4"
)

// ProfileRouter handles profile routes
type ProfileRouter struct {
	ProfileController *controller.ProfileController
}

func NewProfileRouter(profileController *controller.ProfileController) *ProfileRouter {
	return &ProfileRouter{
		ProfileController: profileController,
	}
}

// Setup registers profile routes (students only)
func (r *ProfileRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private")

	profileRoutes := privateRoutes.Group("/profile", mw.AuthMiddleware(), mw.RequireRole(constants.RoleStudent))
	profileRoutes.POST("", r.ProfileController.UpsertProfile)
	profileRoutes.GET("", r.ProfileController.GetProfile)
}
