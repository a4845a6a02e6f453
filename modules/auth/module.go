package auth

import (
	"campus-recommender/core/cache"
	"campus-recommender/core/database"
	"campus-recommender/core/middleware"
	"campus-recommender/modules/auth/controller"
	"campus-recommender/modules/auth/repository"
	"campus-recommender/modules/auth/router"
	"campus-recommender/modules/auth/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the auth module and registers routes
func Init(e *echo.Echo, db database.Database, cache cache.Cache, mw *middleware.Middleware) {
	repo := repository.NewUserRepository(db)
	svc := service.NewAuthService(repo, cache)
	ctrl := controller.NewAuthController(svc)
	rtr := router.NewAuthRouter(ctrl)

	rtr.Setup(e, mw)
}
