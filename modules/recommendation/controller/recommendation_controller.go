package controller

import (
	"campus-recommender/core/constants"
	"campus-recommender/core/controller"
	"campus-recommender/core/errors"
	"campus-recommender/core/utils"
	"campus-recommender/modules/recommendation/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RecommendationController handles recommendation HTTP requests
type RecommendationController struct {
	controller.BaseController
	RecommendationService service.RecommendationServiceInterface
}

func NewRecommendationController(svc service.RecommendationServiceInterface) *RecommendationController {
	return &RecommendationController{
		BaseController:        controller.NewBaseController(),
		RecommendationService: svc,
	}
}

func (c *RecommendationController) getUserIDFromContext(ctx echo.Context) (uuid.UUID, error) {
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

// GetRecommendations handles GET /recommendations
// @Summary Get ranked event recommendations
// @Description Events fitting the student's availability, ranked by interest similarity, capped at 10
// @Tags Recommendation
// @Security BearerAuth
// @Produce json
// @Success 200 {array} dto.RecommendationResponse
// @Failure 404 {object} errors.AppError
// @Failure 502 {object} errors.AppError
// @Router /private/recommendations [get]
func (c *RecommendationController) GetRecommendations(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	result, appErr := c.RecommendationService.Recommend(ctx.Request().Context(), userID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}
