package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"roomboard/core/logger"
	"roomboard/modules/occupancy/entity"

	"github.com/redis/go-redis/v9"
)

// ScheduleCache is a read-through Redis cache in front of a schedule
// repository. Room displays poll continuously, so the same day query is
// served over and over; a short TTL keeps results fresh enough while
// sparing the database. Cache failures fall through to the inner
// repository and are only logged.
type ScheduleCache struct {
	inner ScheduleRepositoryInterface
	rdb   *redis.Client
	ttl   time.Duration
}

// NewScheduleCache wraps repo with a Redis cache. ttlSeconds <= 0 disables
// caching on writes but still attempts reads (treated as always-miss).
func NewScheduleCache(repo ScheduleRepositoryInterface, rdb *redis.Client, ttlSeconds int) *ScheduleCache {
	return &ScheduleCache{
		inner: repo,
		rdb:   rdb,
		ttl:   time.Duration(ttlSeconds) * time.Second,
	}
}

func (c *ScheduleCache) IntervalsForRoomOnDay(ctx context.Context, room string, from int64, to int64) ([]entity.Interval, error) {
	key := cacheKey(room, from, to)

	payload, err := c.rdb.Get(ctx, key).Bytes()
	if err == nil {
		var intervals []entity.Interval
		if jsonErr := json.Unmarshal(payload, &intervals); jsonErr == nil {
			return intervals, nil
		}
		// Corrupt entry, fall through and overwrite
		logger.Warn("ScheduleCache:IntervalsForRoomOnDay:BadPayload", "key", key)
	} else if err != redis.Nil {
		logger.Warn("ScheduleCache:IntervalsForRoomOnDay:Get", "key", key, "error", err)
	}

	intervals, err := c.inner.IntervalsForRoomOnDay(ctx, room, from, to)
	if err != nil {
		return nil, err
	}

	if c.ttl > 0 {
		payload, jsonErr := json.Marshal(intervals)
		if jsonErr == nil {
			if setErr := c.rdb.Set(ctx, key, payload, c.ttl).Err(); setErr != nil {
				logger.Warn("ScheduleCache:IntervalsForRoomOnDay:Set", "key", key, "error", setErr)
			}
		}
	}

	return intervals, nil
}

func cacheKey(room string, from int64, to int64) string {
	return fmt.Sprintf("roomboard:schedule:%s:%d:%d", room, from, to)
}
