package event

import (
	"campus-recommender/core/ai"
	"campus-recommender/core/database"
	"campus-recommender/core/middleware"
	"campus-recommender/core/storage"
	"campus-recommender/modules/event/controller"
	"campus-recommender/modules/event/repository"
	"campus-recommender/modules/event/router"
	"campus-recommender/modules/event/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the event module and registers routes
func Init(e *echo.Echo, db database.Database, aiCli ai.Client, store storage.Storage, mw *middleware.Middleware) {
	repo := repository.NewEventRepository(db)
	svc := service.NewEventService(repo, aiCli, store)
	ctrl := controller.NewEventController(svc)
	rtr := router.NewEventRouter(ctrl)

	rtr.Setup(e, mw)
}
