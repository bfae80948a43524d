package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/spetersoncode/timecalc/internal/common"
	"github.com/spetersoncode/timecalc/internal/config"
	"github.com/spetersoncode/timecalc/internal/i18n"
	"github.com/spetersoncode/timecalc/internal/models"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5A56E0"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	resultStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#36CFC9"))
)

// useColor reports whether stdout should get ANSI styling.
func useColor() bool {
	return !IsNoColor() && term.IsTerminal(int(os.Stdout.Fd()))
}

// printStructured writes v as JSON or YAML. It reports false for text output.
func printStructured(v interface{}) (bool, error) {
	switch GetOutputFormat() {
	case config.OutputJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return true, ErrInternal(err, "failed to marshal JSON")
		}
		fmt.Println(string(data))
		return true, nil
	case config.OutputYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return true, ErrInternal(err, "failed to marshal YAML")
		}
		fmt.Print(string(data))
		return true, nil
	}
	return false, nil
}

// printResult writes a calculation result in the requested format.
func printResult(res *models.Result) error {
	if done, err := printStructured(res); done {
		return err
	}
	if quiet {
		fmt.Println(res.Result.Full)
		return nil
	}
	fmt.Print(renderCard(res, useColor()))
	return nil
}

// renderCard lays a result out like the form's result panel:
//
//	Calculation Result:
//	Target Time:  12/25/2024 15:00:00
//	              36 Hours before
//	Result Time:  12/24/2024 03:00:00
//	Date:         12/24/2024 (Tuesday)
//	Time:         03:00:00
//	Difference:   36 Hours (1d 12h)
func renderCard(res *models.Result, color bool) string {
	t := i18n.For(res.Language)

	style := func(s lipgloss.Style, text string) string {
		if !color {
			return text
		}
		return s.Render(text)
	}

	rows := [][2]string{
		{t.TargetTime, res.Target.Full},
		{"", res.Headline},
		{t.ResultTime, style(resultStyle, res.Result.Full)},
		{t.DateText, fmt.Sprintf("%s (%s)", res.Result.Date, res.Result.Weekday)},
		{t.TimeText, res.Result.Time},
		{t.Difference, fmt.Sprintf("%s %s (%s)", common.FormatAmount(res.Amount), res.UnitLabel, common.FormatSpan(res.OffsetMillis))},
	}

	width := 0
	for _, row := range rows {
		if w := runewidth.StringWidth(row[0]); w > width {
			width = w
		}
	}

	var b strings.Builder
	b.WriteString(style(titleStyle, t.ResultTitle))
	b.WriteString("\n")
	for _, row := range rows {
		b.WriteString(style(labelStyle, runewidth.FillRight(row[0], width)))
		b.WriteString("  ")
		b.WriteString(row[1])
		b.WriteString("\n")
	}
	return b.String()
}

// padRight pads s to a display width of n columns.
func padRight(s string, n int) string {
	return runewidth.FillRight(s, n)
}
