package controller

import (
	"fmt"
	"net/http"

	"campus-recommender/core/constants"
	"campus-recommender/core/controller"
	"campus-recommender/core/errors"
	"campus-recommender/core/utils"
	"campus-recommender/modules/saved/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// SavedController handles saved-event HTTP requests
type SavedController struct {
	controller.BaseController
	SavedService service.SavedServiceInterface
}

func NewSavedController(svc service.SavedServiceInterface) *SavedController {
	return &SavedController{
		BaseController: controller.NewBaseController(),
		SavedService:   svc,
	}
}

func (c *SavedController) getUserIDFromContext(ctx echo.Context) (uuid.UUID, error) {
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

// SaveEvent handles POST /saved-events/:event_id
// @Summary Bookmark an event
// @Tags Saved
// @Security BearerAuth
// @Produce json
// @Param event_id path string true "Event ID"
// @Success 200 {object} controller.SuccessResponse
// @Failure 404 {object} errors.AppError
// @Failure 409 {object} errors.AppError
// @Router /private/saved-events/{event_id} [post]
func (c *SavedController) SaveEvent(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	eventID, err := uuid.Parse(ctx.Param("event_id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	if appErr := c.SavedService.SaveEvent(ctx.Request().Context(), userID, eventID); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, map[string]bool{"ok": true}, "Event saved")
}

// ListSavedIDs handles GET /saved-events
// @Summary List bookmarked event IDs
// @Tags Saved
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.SavedIDsResponse
// @Router /private/saved-events [get]
func (c *SavedController) ListSavedIDs(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	result, appErr := c.SavedService.ListSavedIDs(ctx.Request().Context(), userID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// ListSavedEvents handles GET /saved-events/full
// @Summary List bookmarked events in full
// @Tags Saved
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.SavedEventsResponse
// @Router /private/saved-events/full [get]
func (c *SavedController) ListSavedEvents(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	result, appErr := c.SavedService.ListSavedEvents(ctx.Request().Context(), userID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// UnsaveEvent handles DELETE /saved-events/:event_id
// @Summary Remove a bookmark
// @Tags Saved
// @Security BearerAuth
// @Produce json
// @Param event_id path string true "Event ID"
// @Success 200 {object} controller.SuccessResponse
// @Failure 404 {object} errors.AppError
// @Router /private/saved-events/{event_id} [delete]
func (c *SavedController) UnsaveEvent(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	eventID, err := uuid.Parse(ctx.Param("event_id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event ID")
	}

	if appErr := c.SavedService.UnsaveEvent(ctx.Request().Context(), userID, eventID); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, map[string]bool{"ok": true}, "Event unsaved")
}

// ExportICS handles GET /saved-events/export
// @Summary Download saved events as an iCalendar file
// @Tags Saved
// @Security BearerAuth
// @Produce text/calendar
// @Success 200 {file} file
// @Router /private/saved-events/export [get]
func (c *SavedController) ExportICS(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	buf, filename, appErr := c.SavedService.ExportICS(ctx.Request().Context(), userID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	ctx.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", filename))
	return ctx.Blob(http.StatusOK, "text/calendar; charset=utf-8", buf.Bytes())
}
