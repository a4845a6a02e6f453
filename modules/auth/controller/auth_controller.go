package controller

import (
	"strings"

	"campus-recommender/core/controller"
	"campus-recommender/core/errors"
	"campus-recommender/modules/auth/dto"
	"campus-recommender/modules/auth/service"

	"github.com/labstack/echo/v4"
)

// AuthController handles authentication HTTP requests
type AuthController struct {
	controller.BaseController
	AuthService service.AuthServiceInterface
}

func NewAuthController(svc service.AuthServiceInterface) *AuthController {
	return &AuthController{
		BaseController: controller.NewBaseController(),
		AuthService:    svc,
	}
}

// Register handles POST /auth/register
// @Summary Register a new account
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Account details"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} errors.AppError
// @Failure 409 {object} errors.AppError
// @Router /auth/register [post]
func (c *AuthController) Register(ctx echo.Context) error {
	requestData := new(dto.RegisterRequest)
	if err := ctx.Bind(requestData); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}
	if err := ctx.Validate(requestData); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, err.Error())
	}

	result, appErr := c.AuthService.Register(ctx.Request().Context(), requestData)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Registered successfully")
}

// Login handles POST /auth/login
// @Summary Login with email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.TokenResponse
// @Failure 401 {object} errors.AppError
// @Router /auth/login [post]
func (c *AuthController) Login(ctx echo.Context) error {
	requestData := new(dto.LoginRequest)
	if err := ctx.Bind(requestData); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}
	if err := ctx.Validate(requestData); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, err.Error())
	}

	result, appErr := c.AuthService.Login(ctx.Request().Context(), requestData)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Login successful")
}

// Logout handles POST /auth/logout
// @Summary Revoke the current access token
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} controller.SuccessResponse
// @Failure 401 {object} errors.AppError
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx echo.Context) error {
	header := ctx.Request().Header.Get(echo.HeaderAuthorization)
	token := strings.TrimPrefix(header, "Bearer ")
	if token == "" || token == header {
		return c.Unauthorized(errors.ErrMissingAuthorizationHeader, "Missing bearer token")
	}

	if appErr := c.AuthService.Logout(ctx.Request().Context(), token); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Logged out")
}

// GoogleAuth handles GET /auth/google
// @Summary Get the Google OAuth consent URL
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /auth/google [get]
func (c *AuthController) GoogleAuth(ctx echo.Context) error {
	url, appErr := c.AuthService.GoogleAuthURL(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, map[string]string{"auth_url": url}, "Success")
}

// GoogleCallback handles POST /auth/google/callback
// @Summary Complete Google OAuth sign-in
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.GoogleCallbackRequest true "Code and state"
// @Success 200 {object} dto.TokenResponse
// @Failure 401 {object} errors.AppError
// @Router /auth/google/callback [post]
func (c *AuthController) GoogleCallback(ctx echo.Context) error {
	requestData := new(dto.GoogleCallbackRequest)
	if err := ctx.Bind(requestData); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}
	if err := ctx.Validate(requestData); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, err.Error())
	}

	result, appErr := c.AuthService.GoogleCallback(ctx.Request().Context(), requestData)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Login successful")
}
