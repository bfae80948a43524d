// Package models defines the domain models for timecalc.
package models

import (
	"fmt"
	"strings"
)

// Unit is the unit an offset amount is expressed in.
type Unit string

const (
	UnitMinutes Unit = "minutes"
	UnitHours   Unit = "hours"
	UnitDays    Unit = "days"
	UnitWeeks   Unit = "weeks"
	UnitMonths  Unit = "months"
	UnitYears   Unit = "years"
)

// Units lists every unit in display order.
var Units = []Unit{UnitMinutes, UnitHours, UnitDays, UnitWeeks, UnitMonths, UnitYears}

// IsValid returns true if the unit is one of the supported units.
func (u Unit) IsValid() bool {
	switch u {
	case UnitMinutes, UnitHours, UnitDays, UnitWeeks, UnitMonths, UnitYears:
		return true
	}
	return false
}

// Index returns the position of the unit in Units, or -1.
func (u Unit) Index() int {
	for i, v := range Units {
		if v == u {
			return i
		}
	}
	return -1
}

var unitAliases = map[string]Unit{
	"m":       UnitMinutes,
	"min":     UnitMinutes,
	"mins":    UnitMinutes,
	"minute":  UnitMinutes,
	"minutes": UnitMinutes,
	"h":       UnitHours,
	"hr":      UnitHours,
	"hrs":     UnitHours,
	"hour":    UnitHours,
	"hours":   UnitHours,
	"d":       UnitDays,
	"day":     UnitDays,
	"days":    UnitDays,
	"w":       UnitWeeks,
	"wk":      UnitWeeks,
	"week":    UnitWeeks,
	"weeks":   UnitWeeks,
	"mo":      UnitMonths,
	"month":   UnitMonths,
	"months":  UnitMonths,
	"y":       UnitYears,
	"yr":      UnitYears,
	"year":    UnitYears,
	"years":   UnitYears,
}

// ParseUnit parses a unit name, accepting singular, plural and short forms
// case-insensitively. "M" is treated as months, "m" as minutes.
func ParseUnit(s string) (Unit, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "M" {
		return UnitMonths, nil
	}
	if u, ok := unitAliases[strings.ToLower(trimmed)]; ok {
		return u, nil
	}
	return "", fmt.Errorf("invalid unit %q (valid: %s)", s, joinValues(Units))
}

// Direction is whether an offset is subtracted from or added to the target.
type Direction string

const (
	// DirectionBefore subtracts the offset ("time ago").
	DirectionBefore Direction = "before"
	// DirectionAfter adds the offset ("time after").
	DirectionAfter Direction = "after"
)

// IsValid returns true if the direction is before or after.
func (d Direction) IsValid() bool {
	return d == DirectionBefore || d == DirectionAfter
}

// Opposite returns the other direction.
func (d Direction) Opposite() Direction {
	if d == DirectionBefore {
		return DirectionAfter
	}
	return DirectionBefore
}

// ParseDirection parses a direction. The form's mode names
// (backward/forward, ago) are accepted as aliases.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "before", "ago", "backward", "back", "-":
		return DirectionBefore, nil
	case "after", "later", "forward", "+":
		return DirectionAfter, nil
	}
	return "", fmt.Errorf("invalid direction %q (valid: before, after)", s)
}

// Language selects the display language.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageChinese Language = "zh"
)

// IsValid returns true if the language is supported.
func (l Language) IsValid() bool {
	return l == LanguageEnglish || l == LanguageChinese
}

// Toggle returns the other language.
func (l Language) Toggle() Language {
	if l == LanguageChinese {
		return LanguageEnglish
	}
	return LanguageChinese
}

// ParseLanguage parses a language code or name. Region suffixes such as
// zh-CN or en_US are accepted.
func ParseLanguage(s string) (Language, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	if i := strings.IndexAny(v, "-_"); i > 0 {
		v = v[:i]
	}
	switch v {
	case "en", "english":
		return LanguageEnglish, nil
	case "zh", "cn", "chinese", "中文":
		return LanguageChinese, nil
	}
	return "", fmt.Errorf("invalid language %q (valid: en, zh)", s)
}

func joinValues[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}
