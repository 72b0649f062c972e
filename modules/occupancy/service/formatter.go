package service

import (
	"fmt"
	"time"

	"roomboard/modules/occupancy/entity"
)

// FormatInterval renders an interval as the fixed clock range shown on the
// displays: a zero-padded 24-hour "HH:MM-HH:MM" in the given zone, then
// "- " and the owner label, e.g. "09:00-10:30- X".
func FormatInterval(iv entity.Interval, loc *time.Location) string {
	start := time.Unix(iv.Start, 0).In(loc)
	end := time.Unix(iv.End, 0).In(loc)
	return fmt.Sprintf("%02d:%02d-%02d:%02d- %s",
		start.Hour(), start.Minute(), end.Hour(), end.Minute(), iv.Owner)
}
