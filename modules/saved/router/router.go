package router

import (
	"campus-recommender/core/constants"
	"campus-recommender/core/middleware"
	"campus-recommender/modules/saved/controller"

	"github.com/labstack/echo/v4"
)

// SavedRouter handles saved-event routes
type SavedRouter struct {
	SavedController *controller.SavedController
}

func NewSavedRouter(savedController *controller.SavedController) *SavedRouter {
	return &SavedRouter{
		SavedController: savedController,
	}
}

// Setup registers saved-event routes (students only)
func (r *SavedRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private")

	savedRoutes := privateRoutes.Group("/saved-events", mw.AuthMiddleware(), mw.RequireRole(constants.RoleStudent))
	savedRoutes.GET("", r.SavedController.ListSavedIDs)
	savedRoutes.GET("/full", r.SavedController.ListSavedEvents)
	savedRoutes.GET("/export", r.SavedController.ExportICS)
	savedRoutes.POST("/:event_id", r.SavedController.SaveEvent)
	savedRoutes.DELETE("/:event_id", r.SavedController.UnsaveEvent)
}
