package repository

import (
	"context"

	"roomboard/core/database"
	"roomboard/core/logger"
	"roomboard/modules/occupancy/entity"
)

// ScheduleRepository reads the day's intervals for a room from the
// meeting_room view.
type ScheduleRepository struct {
	DB database.IDatabase
}

// ScheduleRepositoryInterface defines the repository contract
type ScheduleRepositoryInterface interface {
	// IntervalsForRoomOnDay returns the intervals starting within
	// [from, to] (epoch seconds) for one room, deduplicated and in
	// ascending start order.
	IntervalsForRoomOnDay(ctx context.Context, room string, from int64, to int64) ([]entity.Interval, error)
}

// NewScheduleRepository creates a new repository instance
func NewScheduleRepository(db database.IDatabase) *ScheduleRepository {
	return &ScheduleRepository{DB: db}
}

func (r *ScheduleRepository) IntervalsForRoomOnDay(ctx context.Context, room string, from int64, to int64) ([]entity.Interval, error) {
	query := `
		SELECT DISTINCT start, "end", room, uid
		FROM meeting_room
		WHERE room = $1 AND start BETWEEN $2 AND $3
		ORDER BY start ASC
	`

	var intervals []entity.Interval
	err := r.DB.SelectContext(ctx, &intervals, query, room, from, to)
	if err != nil {
		logger.Error("ScheduleRepository:IntervalsForRoomOnDay", err)
		return nil, err
	}

	return intervals, nil
}
