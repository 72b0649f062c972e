package service

import (
	"context"
	"time"

	"roomboard/core/errors"
	"roomboard/modules/occupancy/dto"
	"roomboard/modules/occupancy/repository"
)

// OccupancyService answers "what is happening in this room now, and what
// comes next" against the day-bounded schedule.
type OccupancyService struct {
	repo repository.ScheduleRepositoryInterface
	loc  *time.Location
	now  func() time.Time
}

// OccupancyServiceInterface defines the service contract
type OccupancyServiceInterface interface {
	CurrentAndNext(ctx context.Context, room string) (*dto.MeetingResponse, *errors.AppError)
}

// NewOccupancyService creates a new occupancy service. The reference
// instant comes from the real clock; tests swap it via WithClock.
func NewOccupancyService(repo repository.ScheduleRepositoryInterface, loc *time.Location) *OccupancyService {
	return &OccupancyService{
		repo: repo,
		loc:  loc,
		now:  time.Now,
	}
}

// WithClock overrides the clock the service resolves against.
func (s *OccupancyService) WithClock(now func() time.Time) *OccupancyService {
	s.now = now
	return s
}

// CurrentAndNext fetches the room's candidates for the reference instant's
// calendar day, resolves the current and next occupancy and renders them.
// Absent occupancies render as empty strings.
func (s *OccupancyService) CurrentAndNext(ctx context.Context, room string) (*dto.MeetingResponse, *errors.AppError) {
	now := s.now().In(s.loc)

	// Bounds by calendar, not by adding 24h: DST days are 23 or 25 hours long
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc)
	dayEnd := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, s.loc)

	candidates, err := s.repo.IntervalsForRoomOnDay(ctx, room, dayStart.Unix(), dayEnd.Unix())
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCatalogUnavailable, "failed to load schedule", err)
	}

	resolved := Resolve(candidates, now.Unix())

	resp := &dto.MeetingResponse{}
	if resolved.Current != nil {
		resp.Now = FormatInterval(*resolved.Current, s.loc)
	}
	if resolved.Next != nil {
		resp.Next = FormatInterval(*resolved.Next, s.loc)
	}

	return resp, nil
}
