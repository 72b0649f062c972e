package occupancy

import (
	"time"

	"roomboard/core/database"
	"roomboard/core/middleware"
	"roomboard/modules/occupancy/controller"
	"roomboard/modules/occupancy/repository"
	"roomboard/modules/occupancy/router"
	"roomboard/modules/occupancy/service"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// Init initializes the occupancy module and registers routes. rdb is
// optional; when present the schedule reads go through the Redis cache.
func Init(e *echo.Echo, db database.IDatabase, rdb *redis.Client, cacheTTL int, loc *time.Location, mw *middleware.Middleware) {
	var repo repository.ScheduleRepositoryInterface = repository.NewScheduleRepository(db)
	if rdb != nil {
		repo = repository.NewScheduleCache(repo, rdb, cacheTTL)
	}

	svc := service.NewOccupancyService(repo, loc)
	ctrl := controller.NewOccupancyController(svc)
	rtr := router.NewOccupancyRouter(ctrl)

	rtr.Setup(e, mw)
}
