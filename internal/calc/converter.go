// Package calc implements the time offset arithmetic and display formatting
// behind every timecalc surface. All functions are pure.
package calc

import "github.com/spetersoncode/timecalc/internal/models"

// Milliseconds per unit. Months and years are fixed averages, not calendar
// lengths: a month is 30.44 days and a year 365.25 days.
const (
	MillisPerMinute = 60_000
	MillisPerHour   = 60 * MillisPerMinute
	MillisPerDay    = 24 * MillisPerHour
	MillisPerWeek   = 7 * MillisPerDay
	MillisPerMonth  = 30.44 * MillisPerDay
	MillisPerYear   = 365.25 * MillisPerDay
)

// UnitMillis returns the millisecond length of one unit, or 0 for an
// unknown unit.
func UnitMillis(u models.Unit) float64 {
	switch u {
	case models.UnitMinutes:
		return MillisPerMinute
	case models.UnitHours:
		return MillisPerHour
	case models.UnitDays:
		return MillisPerDay
	case models.UnitWeeks:
		return MillisPerWeek
	case models.UnitMonths:
		return MillisPerMonth
	case models.UnitYears:
		return MillisPerYear
	}
	return 0
}

// ToMilliseconds converts amount units into milliseconds. The amount is not
// validated here.
func ToMilliseconds(amount float64, u models.Unit) float64 {
	return amount * UnitMillis(u)
}
