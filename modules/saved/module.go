package saved

import (
	"campus-recommender/core/database"
	"campus-recommender/core/middleware"
	"campus-recommender/core/worker"
	eventRepository "campus-recommender/modules/event/repository"
	"campus-recommender/modules/saved/controller"
	"campus-recommender/modules/saved/repository"
	"campus-recommender/modules/saved/router"
	"campus-recommender/modules/saved/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the saved-events module and registers routes
func Init(e *echo.Echo, db database.Database, enqueuer worker.Enqueuer, mw *middleware.Middleware) {
	repo := repository.NewSavedRepository(db)
	eventRepo := eventRepository.NewEventRepository(db)
	svc := service.NewSavedService(repo, eventRepo, enqueuer)
	ctrl := controller.NewSavedController(svc)
	rtr := router.NewSavedRouter(ctrl)

	rtr.Setup(e, mw)
}
