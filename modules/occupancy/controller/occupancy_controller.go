package controller

import (
	"net/http"

	"roomboard/core/constants"
	"roomboard/core/controller"
	"roomboard/core/errors"
	occupancyservice "roomboard/modules/occupancy/service"
	userentity "roomboard/modules/user/entity"

	"github.com/labstack/echo/v4"
)

// OccupancyController handles the room display HTTP requests
type OccupancyController struct {
	controller.BaseController
	OccupancyService occupancyservice.OccupancyServiceInterface
}

// NewOccupancyController creates a new controller
func NewOccupancyController(svc occupancyservice.OccupancyServiceInterface) *OccupancyController {
	return &OccupancyController{
		BaseController:   controller.NewBaseController(),
		OccupancyService: svc,
	}
}

// GetMeeting handles GET /meeting. The Basic auth middleware has already
// verified the credentials and stored the room assignment; the response is
// the bare {"now": ..., "next": ...} body the displays expect.
func (c *OccupancyController) GetMeeting(ctx echo.Context) error {
	assignment, ok := ctx.Get(constants.ContextRoomAssignment).(*userentity.RoomAssignment)
	if !ok || assignment == nil {
		return c.Unauthorized(errors.ErrUnauthorized, "not authenticated")
	}

	result, appErr := c.OccupancyService.CurrentAndNext(ctx.Request().Context(), assignment.Room)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return ctx.JSON(http.StatusOK, result)
}
