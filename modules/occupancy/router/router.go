package router

import (
	"roomboard/core/middleware"
	"roomboard/modules/occupancy/controller"

	"github.com/labstack/echo/v4"
)

// OccupancyRouter handles the room display routes
type OccupancyRouter struct {
	OccupancyController *controller.OccupancyController
}

// NewOccupancyRouter creates a new router
func NewOccupancyRouter(occupancyController *controller.OccupancyController) *OccupancyRouter {
	return &OccupancyRouter{
		OccupancyController: occupancyController,
	}
}

// Setup registers the display routes
func (r *OccupancyRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	e.GET("/meeting", r.OccupancyController.GetMeeting, mw.BasicAuth())
}
