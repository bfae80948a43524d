package calc

import (
	"math"
	"time"

	"github.com/spetersoncode/timecalc/internal/models"
)

// MaxOffsetMillis bounds offsets to the range of an ECMAScript time value
// (±100,000,000 days around the epoch).
const MaxOffsetMillis = 8.64e15

// RoundMillis rounds a millisecond offset to a whole number of
// milliseconds. Offsets are always applied in whole milliseconds so that
// shifting forward and back by the same offset returns the original instant.
func RoundMillis(offsetMs float64) int64 {
	return int64(math.Round(offsetMs))
}

// Shift moves base by offsetMs: earlier for DirectionBefore, later for
// DirectionAfter. A fractional offset is rounded to the nearest millisecond
// (half away from zero) first, not truncated, so 0.5 ms moves base by 1 ms
// in either direction. The result is in the local zone and carries base's
// sub-millisecond remainder unchanged.
func Shift(base time.Time, offsetMs float64, dir models.Direction) time.Time {
	delta := RoundMillis(offsetMs)
	if dir == models.DirectionBefore {
		delta = -delta
	}
	ms := base.UnixMilli() + delta
	sub := time.Duration(base.Nanosecond() % int(time.Millisecond))
	return time.UnixMilli(ms).Add(sub).Local()
}
