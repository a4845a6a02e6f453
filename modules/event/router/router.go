package router

import (
	"campus-recommender/core/constants"
	"campus-recommender/core/middleware"
	"campus-recommender/modules/event/controller"

	"github.com/labstack/echo/v4"
)

// EventRouter handles event routes
type EventRouter struct {
	EventController *controller.EventController
}

func NewEventRouter(eventController *controller.EventController) *EventRouter {
	return &EventRouter{
		EventController: eventController,
	}
}

// Setup registers event routes; reads are open to any authenticated
// user, writes are admin only
func (r *EventRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private")

	eventRoutes := privateRoutes.Group("/events", mw.AuthMiddleware())
	eventRoutes.GET("", r.EventController.ListEvents)
	eventRoutes.GET("/:id", r.EventController.GetEvent)

	adminRoutes := privateRoutes.Group("/events", mw.AuthMiddleware(), mw.RequireRole(constants.RoleAdmin))
	adminRoutes.POST("", r.EventController.CreateEvent)
	adminRoutes.PUT("/:id", r.EventController.UpdateEvent)
	adminRoutes.DELETE("/:id", r.EventController.DeleteEvent)
	adminRoutes.POST("/:id/poster", r.EventController.UploadPoster)
}
