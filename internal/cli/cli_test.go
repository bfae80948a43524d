package cli

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/spetersoncode/timecalc/internal/calc"
	"github.com/spetersoncode/timecalc/internal/config"
	werrors "github.com/spetersoncode/timecalc/internal/errors"
	"github.com/spetersoncode/timecalc/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult(lang models.Language) *models.Result {
	return calc.Calculate(models.Request{
		Target:    time.Date(2024, 12, 25, 15, 0, 0, 0, time.Local),
		Amount:    36,
		Unit:      models.UnitHours,
		Direction: models.DirectionBefore,
		Language:  lang,
	})
}

func TestRenderCard_AlignsValues(t *testing.T) {
	for _, lang := range []models.Language{models.LanguageEnglish, models.LanguageChinese} {
		t.Run(string(lang), func(t *testing.T) {
			card := renderCard(sampleResult(lang), false)
			lines := strings.Split(strings.TrimSuffix(card, "\n"), "\n")
			require.Len(t, lines, 7)

			// Every row after the title starts its value in the same column.
			var col int
			for i, line := range lines[1:] {
				value := strings.TrimLeft(line[strings.Index(line, "  "):], " ")
				c := runewidth.StringWidth(line) - runewidth.StringWidth(value)
				if i == 0 {
					col = c
					continue
				}
				assert.Equal(t, col, c, "line %q", line)
			}
		})
	}
}

func TestRenderCard_Content(t *testing.T) {
	card := renderCard(sampleResult(models.LanguageChinese), false)

	assert.Contains(t, card, "计算结果：")
	assert.Contains(t, card, "目标时间：  2024年12月25日 15:00:00")
	assert.Contains(t, card, "36小时前")
	assert.Contains(t, card, "2024-12-24 (星期二)")
	assert.Contains(t, card, "36 小时 (1d 12h)")
	assert.NotContains(t, card, "\x1b[")
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil", nil, ExitSuccess},
		{"invalid args", ErrInvalidArgs("bad"), ExitInvalidArgs},
		{"missing target", werrors.MissingBaseTimestamp("no target"), ExitMissingBaseTimestamp},
		{"invalid amount", werrors.InvalidAmount("negative"), ExitInvalidAmount},
		{"internal", ErrInternal(errors.New("disk"), "write failed"), ExitInternal},
		{"plain error", errors.New("boom"), ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExitCode(tt.err))
		})
	}
}

func TestFormatErrorMessage(t *testing.T) {
	err := ErrInvalidArgsWithSuggestion(SuggestUnits, "invalid unit %q", "fortnights")
	msg := FormatErrorMessage(err)

	assert.True(t, strings.HasPrefix(msg, `Error: invalid unit "fortnights"`))
	assert.Contains(t, msg, "\n\nSuggestion: Use one of: minutes, hours, days, weeks, months, years.")

	assert.Equal(t, "Error: boom", FormatErrorMessage(errors.New("boom")))
}

func TestGetOutputFormat(t *testing.T) {
	origConfig := globalConfig
	defer func() {
		globalConfig = origConfig
		resetGlobalFlags()
	}()

	resetGlobalFlags()
	globalConfig = &config.Config{Output: config.OutputYAML}
	assert.Equal(t, config.OutputYAML, GetOutputFormat())

	outputFlag = config.OutputText
	assert.Equal(t, config.OutputText, GetOutputFormat())

	jsonOut = true
	assert.Equal(t, config.OutputJSON, GetOutputFormat())
}

func TestGetLanguage(t *testing.T) {
	origConfig := globalConfig
	defer func() {
		globalConfig = origConfig
		resetGlobalFlags()
	}()

	resetGlobalFlags()
	globalConfig = &config.Config{Language: "zh"}
	assert.Equal(t, models.LanguageChinese, GetLanguage())

	langFlag = "en-US"
	assert.Equal(t, models.LanguageEnglish, GetLanguage())
}

func TestIsNoColor_WithConfig(t *testing.T) {
	origConfig := globalConfig
	origNoColor := noColor
	defer func() {
		globalConfig = origConfig
		noColor = origNoColor
	}()

	// Test with config value
	globalConfig = &config.Config{NoColor: true}
	noColor = false
	assert.True(t, IsNoColor())

	// Test flag overrides config
	globalConfig = &config.Config{NoColor: false}
	noColor = true
	assert.True(t, IsNoColor())

	// Test config false, flag false
	globalConfig = &config.Config{NoColor: false}
	noColor = false
	assert.False(t, IsNoColor())
}
