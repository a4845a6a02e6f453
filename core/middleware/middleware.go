package middleware

import (
	"net/http"
	"strings"
	"time"

	"campus-recommender/core/cache"
	"campus-recommender/core/constants"
	"campus-recommender/core/controller"
	"campus-recommender/core/errors"
	"campus-recommender/core/logger"
	"campus-recommender/core/utils"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// Middleware holds the dependencies behind route-level middleware
type Middleware struct {
	cache cache.Cache
}

func NewMiddleware(cache cache.Cache) *Middleware {
	return &Middleware{cache: cache}
}

// AuthMiddleware validates the bearer token, rejects blacklisted
// tokens and stores the decoded claims on the request context
func (m *Middleware) AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := extractBearerToken(c)
			if err != nil {
				return controller.NewErrorResponse(http.StatusUnauthorized, errors.ErrMissingAuthorizationHeader, "Missing or malformed Authorization header")
			}

			blacklisted, err := m.cache.IsTokenBlacklisted(c.Request().Context(), token)
			if err != nil {
				logger.Error("Middleware:Auth:IsTokenBlacklisted", "error", err)
				return controller.NewErrorResponse(http.StatusInternalServerError, errors.ErrInternalServer, "Failed to verify token")
			}
			if blacklisted {
				return controller.NewErrorResponse(http.StatusUnauthorized, errors.ErrUnauthorized, "Token has been revoked")
			}

			claims, err := utils.ValidateAndParseToken(token)
			if err != nil {
				return controller.NewErrorResponse(http.StatusUnauthorized, errors.ErrInvalidTokenFormat, "Invalid or expired token")
			}

			c.Set(constants.ContextTokenData, claims)
			return next(c)
		}
	}
}

// RequireRole gates a route group to a single role; must run after
// AuthMiddleware
func (m *Middleware) RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get(constants.ContextTokenData).(*utils.TokenClaims)
			if !ok {
				return controller.NewErrorResponse(http.StatusUnauthorized, errors.ErrUnauthorized, "User not authenticated")
			}
			if claims.Role != role {
				return controller.NewErrorResponse(http.StatusForbidden, errors.ErrForbidden, role+" only")
			}
			return next(c)
		}
	}
}

// CORS builds the CORS middleware from configured origins
func CORS(origins []string) echo.MiddlewareFunc {
	return echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     origins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
		AllowCredentials: true,
	})
}

// RequestLogger logs one line per request
func RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			logger.Info("request",
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"status", c.Response().Status,
				"duration_ms", time.Since(start).Milliseconds(),
			)
			return err
		}
	}
}

func extractBearerToken(c echo.Context) (string, error) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return "", echo.ErrUnauthorized
	}
	return strings.TrimPrefix(header, "Bearer "), nil
}
