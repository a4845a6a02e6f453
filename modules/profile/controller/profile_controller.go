package controller

import (
	"campus-recommender/core/constants"
	"campus-recommender/core/controller"
	"campus-recommender/core/errors"
	"campus-recommender/core/utils"
	"campus-recommender/modules/profile/dto"
	"campus-recommender/modules/profile/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ProfileController handles student profile HTTP requests
type ProfileController struct {
	controller.BaseController
	ProfileService service.ProfileServiceInterface
}

func NewProfileController(svc service.ProfileServiceInterface) *ProfileController {
	return &ProfileController{
		BaseController: controller.NewBaseController(),
		ProfileService: svc,
	}
}

func (c *ProfileController) getUserIDFromContext(ctx echo.Context) (uuid.UUID, error) {
	tokenData := ctx.Get(constants.ContextTokenData)
	if tokenData == nil {
		return uuid.Nil, errors.NewAppError(errors.ErrUnauthorized, "User not authenticated", nil)
	}

	claims, ok := tokenData.(*utils.TokenClaims)
	if !ok {
		return uuid.Nil, errors.NewAppError(errors.ErrUnauthorized, "Invalid token data", nil)
	}

	return claims.UserID, nil
}

// UpsertProfile handles POST /profile
// @Summary Save interests and weekly availability
// @Description Replaces the whole profile: interests and the full slot set
// @Tags Profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.ProfileRequest true "Profile"
// @Success 200 {object} controller.SuccessResponse
// @Failure 400 {object} errors.AppError
// @Router /private/profile [post]
func (c *ProfileController) UpsertProfile(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	var req dto.ProfileRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, err.Error())
	}

	if appErr := c.ProfileService.UpsertProfile(ctx.Request().Context(), userID, &req); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, map[string]bool{"ok": true}, "Profile saved")
}

// GetProfile handles GET /profile
// @Summary Get the current student's profile
// @Tags Profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.ProfileResponse
// @Router /private/profile [get]
func (c *ProfileController) GetProfile(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	result, appErr := c.ProfileService.GetProfile(ctx.Request().Context(), userID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}
