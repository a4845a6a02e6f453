package router

import (
	"campus-recommender/core/middleware"
	"campus-recommender/modules/auth/controller"

	"github.com/labstack/echo/v4"
)

// AuthRouter handles auth routes
type AuthRouter struct {
	AuthController *controller.AuthController
}

func NewAuthRouter(authController *controller.AuthController) *AuthRouter {
	return &AuthRouter{
		AuthController: authController,
	}
}

// Setup registers auth routes
func (r *AuthRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	authRoutes := v1.Group("/auth")

	authRoutes.POST("/register", r.AuthController.Register)
	authRoutes.POST("/login", r.AuthController.Login)
	authRoutes.POST("/logout", r.AuthController.Logout, mw.AuthMiddleware())

	authRoutes.GET("/google", r.AuthController.GoogleAuth)
	authRoutes.POST("/google/callback", r.AuthController.GoogleCallback)
}
