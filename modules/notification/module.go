package notification

import (
	"campus-recommender/core/database"
	"campus-recommender/core/middleware"
	"campus-recommender/modules/notification/controller"
	"campus-recommender/modules/notification/repository"
	"campus-recommender/modules/notification/router"
	"campus-recommender/modules/notification/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the notification module and registers routes. The
// returned service doubles as the reminder sink for the background
// worker.
func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware) *service.NotificationService {
	repo := repository.NewNotificationRepository(db)
	svc := service.NewNotificationService(repo)
	ctrl := controller.NewNotificationController(svc)
	rtr := router.NewNotificationRouter(ctrl)

	rtr.Setup(e, mw)

	return svc
}
