package calc

import (
	"time"

	"github.com/spetersoncode/timecalc/internal/common"
	"github.com/spetersoncode/timecalc/internal/i18n"
	"github.com/spetersoncode/timecalc/internal/models"
)

// Calculate shifts req.Target by the requested offset and renders both
// instants. The request must already be validated.
func Calculate(req models.Request) *models.Result {
	offset := ToMilliseconds(req.Amount, req.Unit)
	result := Shift(req.Target, offset, req.Direction)

	return &models.Result{
		Target:       Format(req.Target, req.Language),
		Result:       Format(result, req.Language),
		Amount:       req.Amount,
		Unit:         req.Unit,
		UnitLabel:    i18n.UnitName(req.Language, req.Unit),
		Direction:    req.Direction,
		Language:     req.Language,
		Headline:     Headline(req.Amount, req.Unit, req.Direction, req.Language),
		OffsetMillis: RoundMillis(offset),
		TargetISO:    req.Target.Local().Format(time.RFC3339),
		ResultISO:    result.Format(time.RFC3339),
		TargetTime:   req.Target.Local(),
		ResultTime:   result,
	}
}

// Headline describes the offset: "36 Hours before" in English,
// "36小时前" in Chinese.
func Headline(amount float64, u models.Unit, dir models.Direction, lang models.Language) string {
	a := common.FormatAmount(amount)
	unit := i18n.UnitName(lang, u)
	word := i18n.DirectionWord(lang, dir)
	if lang == models.LanguageChinese {
		return a + unit + word
	}
	return a + " " + unit + " " + word
}
