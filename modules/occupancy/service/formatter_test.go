package service

import (
	"testing"
	"time"

	"roomboard/modules/occupancy/entity"

	"github.com/stretchr/testify/assert"
)

func TestFormatInterval(t *testing.T) {
	t.Run("renders zero-padded clock range and owner", func(t *testing.T) {
		interval := entity.Interval{
			Start: time.Date(2024, 4, 29, 9, 0, 0, 0, time.UTC).Unix(),
			End:   time.Date(2024, 4, 29, 10, 30, 0, 0, time.UTC).Unix(),
			Owner: "X",
		}

		assert.Equal(t, "09:00-10:30- X", FormatInterval(interval, time.UTC))
	})

	t.Run("pads single-digit hours and minutes", func(t *testing.T) {
		interval := entity.Interval{
			Start: time.Date(2024, 4, 29, 8, 5, 0, 0, time.UTC).Unix(),
			End:   time.Date(2024, 4, 29, 9, 7, 0, 0, time.UTC).Unix(),
			Owner: "prof42",
		}

		assert.Equal(t, "08:05-09:07- prof42", FormatInterval(interval, time.UTC))
	})

	t.Run("drops seconds", func(t *testing.T) {
		interval := entity.Interval{
			Start: time.Date(2024, 4, 29, 13, 45, 59, 0, time.UTC).Unix(),
			End:   time.Date(2024, 4, 29, 15, 0, 30, 0, time.UTC).Unix(),
			Owner: "Y",
		}

		assert.Equal(t, "13:45-15:00- Y", FormatInterval(interval, time.UTC))
	})

	t.Run("renders in the given zone", func(t *testing.T) {
		berlin, err := time.LoadLocation("Europe/Berlin")
		if err != nil {
			t.Skip("tzdata unavailable")
		}

		// 07:00 UTC on a summer date is 09:00 in Berlin
		interval := entity.Interval{
			Start: time.Date(2024, 4, 29, 7, 0, 0, 0, time.UTC).Unix(),
			End:   time.Date(2024, 4, 29, 8, 30, 0, 0, time.UTC).Unix(),
			Owner: "Z",
		}

		assert.Equal(t, "09:00-10:30- Z", FormatInterval(interval, berlin))
	})
}
