package recommendation

import (
	"campus-recommender/core/ai"
	"campus-recommender/core/database"
	"campus-recommender/core/middleware"
	eventRepo "campus-recommender/modules/event/repository"
	profileRepo "campus-recommender/modules/profile/repository"
	"campus-recommender/modules/recommendation/controller"
	"campus-recommender/modules/recommendation/router"
	"campus-recommender/modules/recommendation/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the recommendation module and registers routes
func Init(e *echo.Echo, db database.Database, aiCli ai.Client, mw *middleware.Middleware) {
	profiles := profileRepo.NewProfileRepository(db)
	events := eventRepo.NewEventRepository(db)
	svc := service.NewRecommendationService(profiles, events, aiCli)
	ctrl := controller.NewRecommendationController(svc)
	rtr := router.NewRecommendationRouter(ctrl)

	rtr.Setup(e, mw)
}
