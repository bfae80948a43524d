// Package service provides the validation boundary between user input and
// the pure calculation core. The CLI, the terminal form and the HTTP API all
// go through it.
package service

import (
	"log/slog"
	"math"
	"time"

	"github.com/spetersoncode/timecalc/internal/calc"
	"github.com/spetersoncode/timecalc/internal/common"
	"github.com/spetersoncode/timecalc/internal/errors"
	"github.com/spetersoncode/timecalc/internal/i18n"
	"github.com/spetersoncode/timecalc/internal/logger"
	"github.com/spetersoncode/timecalc/internal/models"
)

// Suggestions attached to validation errors.
const (
	SuggestTargetFormat = "Use YYYY-MM-DDTHH:MM (e.g. 2024-12-25T15:00), YYYY-MM-DD HH:MM, or \"now\"."
	SuggestAmount       = "Enter a number greater than or equal to 0, e.g. 36 or 1.5."
)

// Input is a calculation request as typed by a user. Target and Amount are
// raw text; empty Unit, Direction and Language fall back to hours, before
// and English, the form's initial state.
type Input struct {
	Target    string
	Amount    string
	Unit      models.Unit
	Direction models.Direction
	Language  models.Language
}

// Calculator validates input and runs the calculation.
type Calculator struct {
	now    func() time.Time
	logger *slog.Logger
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithClock sets the clock used to resolve "now".
func WithClock(now func() time.Time) Option {
	return func(c *Calculator) { c.now = now }
}

// WithLogger sets the logger for debug traces.
func WithLogger(l *slog.Logger) Option {
	return func(c *Calculator) { c.logger = l }
}

// NewCalculator creates a new Calculator.
func NewCalculator(opts ...Option) *Calculator {
	c := &Calculator{
		now:    time.Now,
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DefaultTarget returns the value the form starts with: the current local
// time truncated to the minute.
func (c *Calculator) DefaultTarget() time.Time {
	return common.CurrentMinute(c.now())
}

// Validate checks input in the same order the form does (target, then
// amount) and returns a request ready for calc.Calculate. Failures are
// *errors.Error values of kind MissingBaseTimestamp, InvalidAmount or
// InvalidArgs, with the message in the requested language.
func (c *Calculator) Validate(in Input) (models.Request, error) {
	lang := in.Language
	if lang == "" {
		lang = models.LanguageEnglish
	}
	if !lang.IsValid() {
		return models.Request{}, errors.InvalidArgs("invalid language %q (valid: en, zh)", in.Language)
	}
	unit := in.Unit
	if unit == "" {
		unit = models.UnitHours
	}
	if !unit.IsValid() {
		return models.Request{}, errors.InvalidArgs("invalid unit %q", in.Unit)
	}
	dir := in.Direction
	if dir == "" {
		dir = models.DirectionBefore
	}
	if !dir.IsValid() {
		return models.Request{}, errors.InvalidArgs("invalid direction %q (valid: before, after)", in.Direction)
	}

	text := i18n.For(lang)

	target, err := common.ParseTarget(in.Target, c.now())
	if err != nil {
		e := errors.MissingBaseTimestamp("%s", text.MissingTarget).
			WithDetails("target", in.Target).
			WithSuggestion(SuggestTargetFormat)
		if in.Target != "" {
			e.Cause = err
		}
		return models.Request{}, e
	}

	amount, err := common.ParseAmount(in.Amount)
	if err != nil || amount < 0 {
		return models.Request{}, errors.InvalidAmount("%s", text.InvalidAmount).
			WithDetails("amount", in.Amount).
			WithSuggestion(SuggestAmount)
	}

	offset := calc.ToMilliseconds(amount, unit)
	if offset > calc.MaxOffsetMillis {
		return models.Request{}, errors.InvalidAmount("%s (amount out of range)", text.InvalidAmount).
			WithDetails("amount", in.Amount).
			WithDetails("offset_ms", offset)
	}
	shifted := float64(target.UnixMilli())
	if dir == models.DirectionBefore {
		shifted -= offset
	} else {
		shifted += offset
	}
	if math.Abs(shifted) > calc.MaxOffsetMillis {
		return models.Request{}, errors.InvalidAmount("%s (result out of range)", text.InvalidAmount).
			WithDetails("amount", in.Amount)
	}

	return models.Request{
		Target:    target,
		Amount:    amount,
		Unit:      unit,
		Direction: dir,
		Language:  lang,
	}, nil
}

// Calculate validates input and returns the calculation result.
func (c *Calculator) Calculate(in Input) (*models.Result, error) {
	req, err := c.Validate(in)
	if err != nil {
		c.logger.Debug("calculation rejected", "kind", errors.GetKind(err).String(), "error", err)
		return nil, err
	}

	res := calc.Calculate(req)
	c.logger.Debug("calculated",
		"target", res.TargetISO,
		"amount", req.Amount,
		"unit", string(req.Unit),
		"direction", string(req.Direction),
		"result", res.ResultISO,
	)
	return res, nil
}
