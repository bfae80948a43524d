package i18n

import (
	"testing"
	"time"

	"github.com/spetersoncode/timecalc/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTablesAreComplete(t *testing.T) {
	for _, lang := range []models.Language{models.LanguageEnglish, models.LanguageChinese} {
		s := For(lang)
		for _, u := range models.Units {
			assert.NotEmpty(t, s.Units[u], "%s unit %s", lang, u)
		}
		for _, d := range []models.Direction{models.DirectionBefore, models.DirectionAfter} {
			assert.NotEmpty(t, s.Modes[d])
			assert.NotEmpty(t, s.Directions[d])
		}
		for i, w := range s.Weekdays {
			assert.NotEmpty(t, w, "%s weekday %d", lang, i)
		}
	}
}

func TestFor_FallsBackToEnglish(t *testing.T) {
	assert.Same(t, For(models.LanguageEnglish), For(models.Language("fr")))
}

func TestWeekdayName(t *testing.T) {
	assert.Equal(t, "Sunday", WeekdayName(models.LanguageEnglish, time.Sunday))
	assert.Equal(t, "Wednesday", WeekdayName(models.LanguageEnglish, time.Wednesday))
	assert.Equal(t, "星期日", WeekdayName(models.LanguageChinese, time.Sunday))
	assert.Equal(t, "星期六", WeekdayName(models.LanguageChinese, time.Saturday))
}

func TestUnitName(t *testing.T) {
	assert.Equal(t, "Hours", UnitName(models.LanguageEnglish, models.UnitHours))
	assert.Equal(t, "小时", UnitName(models.LanguageChinese, models.UnitHours))
	assert.Equal(t, "fortnights", UnitName(models.LanguageEnglish, models.Unit("fortnights")))
}

func TestDirectionWord(t *testing.T) {
	assert.Equal(t, "before", DirectionWord(models.LanguageEnglish, models.DirectionBefore))
	assert.Equal(t, "后", DirectionWord(models.LanguageChinese, models.DirectionAfter))
}

func TestFindPreset(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantAmount float64
		wantUnit   models.Unit
		wantErr    bool
	}{
		{"hour key", "1h", 1, models.UnitHours, false},
		{"day is 24 hours", "1d", 24, models.UnitHours, false},
		{"two days is 48 hours", "2d", 48, models.UnitHours, false},
		{"english label", "1 Week", 1, models.UnitWeeks, false},
		{"month key", "1MO", 1, models.UnitMonths, false},
		{"year with whitespace", "  1y ", 1, models.UnitYears, false},
		{"unknown", "3d", 0, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := FindPreset(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "valid:")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantAmount, p.Amount)
			assert.Equal(t, tt.wantUnit, p.Unit)
		})
	}
}

func TestPresetLabel(t *testing.T) {
	assert.Equal(t, "2 Days", PresetLabel(models.LanguageEnglish, 2))
	assert.Equal(t, "1年", PresetLabel(models.LanguageChinese, 5))
	assert.Equal(t, "", PresetLabel(models.LanguageEnglish, 6))
}
