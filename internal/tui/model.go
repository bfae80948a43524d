// Package tui implements the interactive terminal calculator form.
package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spetersoncode/timecalc/internal/common"
	"github.com/spetersoncode/timecalc/internal/errors"
	"github.com/spetersoncode/timecalc/internal/i18n"
	"github.com/spetersoncode/timecalc/internal/logger"
	"github.com/spetersoncode/timecalc/internal/models"
	"github.com/spetersoncode/timecalc/internal/service"
)

type field int

const (
	fieldTarget field = iota
	fieldAmount
	fieldUnit
	fieldCount
)

// Options configures the form's initial state.
type Options struct {
	Language  models.Language
	Direction models.Direction
	Unit      models.Unit

	// Logger receives debug traces (default: discard).
	Logger *slog.Logger

	// Clipboard writes text to the system clipboard (default: atotto/clipboard).
	Clipboard func(string) error
}

// Model is the Bubble Tea model for the calculator form.
type Model struct {
	calc      *service.Calculator
	logger    *slog.Logger
	clipboard func(string) error

	lang models.Language
	dir  models.Direction
	unit int

	target textinput.Model
	amount textinput.Model
	focus  field

	// result is nil until a calculation succeeds; last is the input that
	// produced it
	result *models.Result
	last   service.Input
	notice string
	status string

	keys  keyMap
	help  help.Model
	width int
}

// New creates the form model.
func New(calc *service.Calculator, opts Options) *Model {
	if opts.Language == "" {
		opts.Language = models.LanguageEnglish
	}
	if opts.Direction == "" {
		opts.Direction = models.DirectionBefore
	}
	if opts.Logger == nil {
		opts.Logger = logger.Discard()
	}
	if opts.Clipboard == nil {
		opts.Clipboard = writeClipboard
	}

	unit := opts.Unit.Index()
	if unit < 0 {
		unit = models.UnitHours.Index()
	}

	target := textinput.New()
	target.Prompt = "› "
	target.Placeholder = "YYYY-MM-DDTHH:MM"
	target.CharLimit = 40
	target.SetValue(common.FormatDateTimeLocal(calc.DefaultTarget()))
	target.Focus()

	amount := textinput.New()
	amount.Prompt = "› "
	amount.CharLimit = 24

	m := &Model{
		calc:      calc,
		logger:    logger.WithComponent(opts.Logger, "tui"),
		clipboard: opts.Clipboard,
		lang:      opts.Language,
		dir:       opts.Direction,
		unit:      unit,
		target:    target,
		amount:    amount,
		focus:     fieldTarget,
		keys:      newKeyMap(len(i18n.Presets)),
		help:      help.New(),
	}
	m.amount.Placeholder = i18n.For(m.lang).AmountPlaceholder
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, m.updateInputs(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Next):
		return m, m.setFocus((m.focus + 1) % fieldCount)
	case key.Matches(msg, m.keys.Prev):
		return m, m.setFocus((m.focus + fieldCount - 1) % fieldCount)
	case key.Matches(msg, m.keys.Mode):
		m.dir = m.dir.Opposite()
		m.refresh()
		return m, nil
	case key.Matches(msg, m.keys.Language):
		m.lang = m.lang.Toggle()
		m.amount.Placeholder = i18n.For(m.lang).AmountPlaceholder
		m.refresh()
		return m, nil
	case key.Matches(msg, m.keys.Calculate):
		m.calculate()
		return m, nil
	case key.Matches(msg, m.keys.Clear):
		m.clear()
		return m, nil
	case key.Matches(msg, m.keys.Copy):
		m.copyResult()
		return m, nil
	case m.focus == fieldUnit && key.Matches(msg, m.keys.UnitLeft):
		m.unit = (m.unit + len(models.Units) - 1) % len(models.Units)
		return m, nil
	case m.focus == fieldUnit && key.Matches(msg, m.keys.UnitRight):
		m.unit = (m.unit + 1) % len(models.Units)
		return m, nil
	}

	for i, binding := range m.keys.Presets {
		if key.Matches(msg, binding) {
			m.applyPreset(i)
			return m, nil
		}
	}

	return m, m.updateInputs(msg)
}

// updateInputs forwards msg to the focused text input.
func (m *Model) updateInputs(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.focus {
	case fieldTarget:
		m.target, cmd = m.target.Update(msg)
	case fieldAmount:
		m.amount, cmd = m.amount.Update(msg)
	}
	return cmd
}

func (m *Model) setFocus(f field) tea.Cmd {
	m.focus = f
	m.target.Blur()
	m.amount.Blur()
	switch f {
	case fieldTarget:
		return m.target.Focus()
	case fieldAmount:
		return m.amount.Focus()
	}
	return nil
}

func (m *Model) input() service.Input {
	return service.Input{
		Target:    m.target.Value(),
		Amount:    m.amount.Value(),
		Unit:      models.Units[m.unit],
		Direction: m.dir,
		Language:  m.lang,
	}
}

// calculate validates the fields and shows either the result or a notice.
func (m *Model) calculate() {
	in := m.input()
	res, err := m.calc.Calculate(in)
	if err != nil {
		m.result = nil
		m.notice = err.Error()
		if e, ok := errors.As(err); ok {
			m.notice = e.Message
		}
		m.logger.Debug("calculation rejected", "error", err)
		return
	}
	m.result = res
	m.last = in
	m.notice = ""
	m.logger.Debug("calculated", "headline", res.Headline, "result", res.ResultISO)
}

// refresh re-renders a visible result after the mode or language changes.
// It reuses the input of the last calculation, so edits made to the form
// since then wait for the next Enter.
func (m *Model) refresh() {
	if m.result == nil {
		return
	}
	in := m.last
	in.Direction = m.dir
	in.Language = m.lang
	res, err := m.calc.Calculate(in)
	if err != nil {
		m.logger.Debug("refresh skipped", "error", err)
		return
	}
	m.result = res
	m.last = in
}

func (m *Model) applyPreset(i int) {
	p := i18n.Presets[i]
	m.amount.SetValue(common.FormatAmount(p.Amount))
	m.unit = p.Unit.Index()
	m.logger.Debug("preset applied", "key", p.Key)
}

// clear resets the target to the current minute, empties the amount,
// selects hours and hides the result.
func (m *Model) clear() {
	m.target.SetValue(common.FormatDateTimeLocal(m.calc.DefaultTarget()))
	m.amount.SetValue("")
	m.unit = models.UnitHours.Index()
	m.result = nil
	m.notice = ""
}

func (m *Model) copyResult() {
	if m.result == nil {
		return
	}
	line := m.result.Headline + ": " + m.result.Result.Full
	if err := m.clipboard(line); err != nil {
		m.logger.Debug("clipboard write failed", "error", err)
		m.status = "clipboard unavailable"
		return
	}
	m.status = "copied"
}

// View implements tea.Model.
func (m *Model) View() string {
	t := i18n.For(m.lang)
	var b strings.Builder

	b.WriteString(titleStyle.Render(t.Title))
	b.WriteString("  ")
	b.WriteString(mutedStyle.Render("ctrl+l " + t.SwitchLabel))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render(t.Subtitle))
	b.WriteString("\n\n")

	b.WriteString(m.viewModes(t))
	b.WriteString("\n\n")

	b.WriteString(m.label(fieldTarget, t.DateLabel))
	b.WriteString("\n")
	b.WriteString(m.target.View())
	b.WriteString("\n")
	b.WriteString(m.label(fieldAmount, t.AmountLabel))
	b.WriteString("\n")
	b.WriteString(m.amount.View())
	b.WriteString("\n")
	b.WriteString(m.label(fieldUnit, t.UnitLabel))
	b.WriteString("\n")
	b.WriteString(m.viewUnit(t))
	b.WriteString("\n")
	b.WriteString(m.viewPresets())
	b.WriteString("\n")

	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(noticeStyle.Render(m.notice))
		b.WriteString("\n")
	}

	if m.result != nil {
		b.WriteString("\n")
		b.WriteString(m.viewResult(t))
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m *Model) label(f field, text string) string {
	if m.focus == f {
		return focusedLabelStyle.Render(text)
	}
	return labelStyle.Render(text)
}

func (m *Model) viewModes(t *i18n.Strings) string {
	modes := make([]string, 0, 2)
	for _, d := range []models.Direction{models.DirectionBefore, models.DirectionAfter} {
		style := modeInactiveStyle
		if d == m.dir {
			style = modeActiveStyle
		}
		modes = append(modes, style.Render(t.Modes[d]))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, modes...) + "  " + mutedStyle.Render("ctrl+t")
}

func (m *Model) viewUnit(t *i18n.Strings) string {
	name := t.Units[models.Units[m.unit]]
	if m.focus == fieldUnit {
		return focusedLabelStyle.Render("‹ " + name + " ›")
	}
	return "  " + name
}

func (m *Model) viewPresets() string {
	labels := make([]string, len(i18n.Presets))
	for i := range i18n.Presets {
		labels[i] = i18n.PresetLabel(m.lang, i)
	}
	return mutedStyle.Render(fmt.Sprintf("alt+1…%d: %s", len(labels), strings.Join(labels, " · ")))
}

func (m *Model) viewResult(t *i18n.Strings) string {
	r := m.result
	lines := []string{
		labelStyle.Render(t.ResultTitle),
		t.TargetTime + " " + r.Target.Full,
		r.Headline,
		t.ResultTime + " " + resultValueStyle.Render(r.Result.Full),
		t.DateText + " " + r.Result.Date + " (" + r.Result.Weekday + ")",
		t.TimeText + " " + r.Result.Time,
	}
	return resultBoxStyle.Render(strings.Join(lines, "\n"))
}
