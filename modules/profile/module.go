package profile

import (
	"campus-recommender/core/database"
	"campus-recommender/core/middleware"
	"campus-recommender/modules/profile/controller"
	"campus-recommender/modules/profile/repository"
	"campus-recommender/modules/profile/router"
	"campus-recommender/modules/profile/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the profile module and registers routes
func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware) {
	repo := repository.NewProfileRepository(db)
	svc := service.NewProfileService(repo)
	ctrl := controller.NewProfileController(svc)
	rtr := router.NewProfileRouter(ctrl)

	rtr.Setup(e, mw)
}
