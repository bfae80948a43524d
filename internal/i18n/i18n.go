// Package i18n holds the English and Chinese string tables used by every
// timecalc surface.
package i18n

import (
	"time"

	"github.com/spetersoncode/timecalc/internal/models"
)

// Strings is the full set of user-facing text for one language.
type Strings struct {
	Title             string
	Subtitle          string
	SwitchLabel       string
	DateLabel         string
	AmountLabel       string
	UnitLabel         string
	AmountPlaceholder string
	CalculateText     string
	ClearText         string
	ResultTitle       string
	ExampleTitle      string
	ExampleLines      []string
	TargetTime        string
	ResultTime        string
	DateText          string
	TimeText          string
	Difference        string

	// MissingTarget and InvalidAmount are the blocking notices shown when
	// input validation fails.
	MissingTarget string
	InvalidAmount string

	Units      map[models.Unit]string
	Modes      map[models.Direction]string
	Directions map[models.Direction]string
	Weekdays   [7]string
	Presets    [6]string
}

var english = &Strings{
	Title:             "Advanced Time Calculator",
	Subtitle:          "Calculate time forwards or backwards with precision",
	SwitchLabel:       "中文",
	DateLabel:         "Target Date & Time:",
	AmountLabel:       "Time Amount:",
	UnitLabel:         "Unit:",
	AmountPlaceholder: "e.g., 36",
	CalculateText:     "Calculate Time",
	ClearText:         "Clear",
	ResultTitle:       "Calculation Result:",
	ExampleTitle:      "Usage Examples:",
	ExampleLines: []string{
		"Time Ago: Find out when it was 36 hours before December 25, 2024 3:00 PM",
		"Time After: Calculate what time it will be 36 hours after December 25, 2024 3:00 PM",
		"Supports various units: minutes, hours, days, weeks, months, and years",
	},
	TargetTime:    "Target Time:",
	ResultTime:    "Result Time:",
	DateText:      "Date:",
	TimeText:      "Time:",
	Difference:    "Difference:",
	MissingTarget: "Please select a target date and time!",
	InvalidAmount: "Please enter a valid time amount!",
	Units: map[models.Unit]string{
		models.UnitMinutes: "Minutes",
		models.UnitHours:   "Hours",
		models.UnitDays:    "Days",
		models.UnitWeeks:   "Weeks",
		models.UnitMonths:  "Months",
		models.UnitYears:   "Years",
	},
	Modes: map[models.Direction]string{
		models.DirectionBefore: "Time Ago",
		models.DirectionAfter:  "Time After",
	},
	Directions: map[models.Direction]string{
		models.DirectionBefore: "before",
		models.DirectionAfter:  "after",
	},
	Weekdays: [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
	Presets:  [6]string{"1 Hour", "1 Day", "2 Days", "1 Week", "1 Month", "1 Year"},
}

var chinese = &Strings{
	Title:             "高级时间计算器",
	Subtitle:          "精确计算向前或向后的时间",
	SwitchLabel:       "English",
	DateLabel:         "目标日期时间：",
	AmountLabel:       "时间数量：",
	UnitLabel:         "单位：",
	AmountPlaceholder: "例如：36",
	CalculateText:     "计算时间",
	ClearText:         "清空",
	ResultTitle:       "计算结果：",
	ExampleTitle:      "使用示例：",
	ExampleLines: []string{
		"时间前：计算2024年12月25日下午3点的36小时前是什么时候",
		"时间后：计算2024年12月25日下午3点的36小时后是什么时候",
		"支持多种单位：分钟、小时、天、周、月、年",
	},
	TargetTime:    "目标时间：",
	ResultTime:    "结果时间：",
	DateText:      "日期：",
	TimeText:      "时间：",
	Difference:    "时间差：",
	MissingTarget: "请选择目标日期时间！",
	InvalidAmount: "请输入有效的时间数量！",
	Units: map[models.Unit]string{
		models.UnitMinutes: "分钟",
		models.UnitHours:   "小时",
		models.UnitDays:    "天",
		models.UnitWeeks:   "周",
		models.UnitMonths:  "月",
		models.UnitYears:   "年",
	},
	Modes: map[models.Direction]string{
		models.DirectionBefore: "时间前",
		models.DirectionAfter:  "时间后",
	},
	Directions: map[models.Direction]string{
		models.DirectionBefore: "前",
		models.DirectionAfter:  "后",
	},
	Weekdays: [7]string{"星期日", "星期一", "星期二", "星期三", "星期四", "星期五", "星期六"},
	Presets:  [6]string{"1小时", "1天", "2天", "1周", "1月", "1年"},
}

// For returns the string table for lang. Unknown languages fall back to
// English.
func For(lang models.Language) *Strings {
	if lang == models.LanguageChinese {
		return chinese
	}
	return english
}

// UnitName returns the localized label for a unit.
func UnitName(lang models.Language, u models.Unit) string {
	if s, ok := For(lang).Units[u]; ok {
		return s
	}
	return string(u)
}

// WeekdayName returns the localized name of a day of the week.
func WeekdayName(lang models.Language, d time.Weekday) string {
	return For(lang).Weekdays[int(d)%7]
}

// DirectionWord returns "before"/"after" or "前"/"后".
func DirectionWord(lang models.Language, d models.Direction) string {
	return For(lang).Directions[d]
}

// ModeName returns the mode button label for a direction.
func ModeName(lang models.Language, d models.Direction) string {
	return For(lang).Modes[d]
}
