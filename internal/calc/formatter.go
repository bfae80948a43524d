package calc

import (
	"fmt"
	"time"

	"github.com/spetersoncode/timecalc/internal/i18n"
	"github.com/spetersoncode/timecalc/internal/models"
)

// Format renders ts in the local zone as the four display fields for lang.
//
//	en: full "MM/DD/YYYY HH:MM:SS", date "MM/DD/YYYY"
//	zh: full "YYYY年MM月DD日 HH:MM:SS", date "YYYY-MM-DD"
//
// time is "HH:MM:SS" for both languages.
func Format(ts time.Time, lang models.Language) models.DisplayFields {
	ts = ts.Local()
	year, month, day := ts.Date()
	clock := fmt.Sprintf("%02d:%02d:%02d", ts.Hour(), ts.Minute(), ts.Second())

	var full, date string
	switch lang {
	case models.LanguageChinese:
		full = fmt.Sprintf("%04d年%02d月%02d日 %s", year, int(month), day, clock)
		date = fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
	default:
		date = fmt.Sprintf("%02d/%02d/%04d", int(month), day, year)
		full = date + " " + clock
	}

	return models.DisplayFields{
		Full:    full,
		Date:    date,
		Time:    clock,
		Weekday: i18n.WeekdayName(lang, ts.Weekday()),
	}
}
