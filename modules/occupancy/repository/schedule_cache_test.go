package repository

import (
	"context"
	"testing"
	"time"

	"roomboard/modules/occupancy/entity"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	intervals []entity.Interval
	calls     int
}

func (f *fakeRepo) IntervalsForRoomOnDay(ctx context.Context, room string, from int64, to int64) ([]entity.Interval, error) {
	f.calls++
	return f.intervals, nil
}

// unreachableRedis returns a client that fails fast on every command.
func unreachableRedis() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
}

func TestScheduleCache_FallsThroughOnRedisFailure(t *testing.T) {
	inner := &fakeRepo{
		intervals: []entity.Interval{
			{Start: 100, End: 200, Room: "A-101", Owner: "A"},
		},
	}
	cache := NewScheduleCache(inner, unreachableRedis(), 30)

	intervals, err := cache.IntervalsForRoomOnDay(context.Background(), "A-101", 0, 1000)

	require.NoError(t, err)
	assert.Equal(t, inner.intervals, intervals)
	assert.Equal(t, 1, inner.calls)

	// A second read still serves from the inner repository
	_, err = cache.IntervalsForRoomOnDay(context.Background(), "A-101", 0, 1000)
	require.NoError(t, err)
	assert.Equal(t, 2, inner.calls)
}

func TestCacheKey_DistinguishesRoomAndWindow(t *testing.T) {
	assert.NotEqual(t, cacheKey("A-101", 0, 1000), cacheKey("B-202", 0, 1000))
	assert.NotEqual(t, cacheKey("A-101", 0, 1000), cacheKey("A-101", 1000, 2000))
}
