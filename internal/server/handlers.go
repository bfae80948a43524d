package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/spetersoncode/timecalc/internal/calc"
	"github.com/spetersoncode/timecalc/internal/errors"
	"github.com/spetersoncode/timecalc/internal/i18n"
	"github.com/spetersoncode/timecalc/internal/models"
	"github.com/spetersoncode/timecalc/internal/service"
)

// API Response types

// ErrorResponse represents an API error.
type ErrorResponse struct {
	Error      string `json:"error"`
	Code       int    `json:"code"`
	Kind       string `json:"kind,omitempty"`
	Message    string `json:"message,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

// UnitResponse describes one selectable unit.
type UnitResponse struct {
	Unit   models.Unit `json:"unit"`
	Label  string      `json:"label"`
	Millis float64     `json:"millis"`
}

// PresetResponse describes one quick preset button.
type PresetResponse struct {
	Key    string      `json:"key"`
	Amount float64     `json:"amount"`
	Unit   models.Unit `json:"unit"`
	Label  string      `json:"label"`
}

// StringsResponse is the text the web form needs for one language.
type StringsResponse struct {
	Language      models.Language   `json:"language"`
	Title         string            `json:"title"`
	Subtitle      string            `json:"subtitle"`
	SwitchLabel   string            `json:"switch_label"`
	DateLabel     string            `json:"date_label"`
	AmountLabel   string            `json:"amount_label"`
	Placeholder   string            `json:"placeholder"`
	CalculateText string            `json:"calculate_text"`
	ClearText     string            `json:"clear_text"`
	ResultTitle   string            `json:"result_title"`
	ExampleTitle  string            `json:"example_title"`
	ExampleLines  []string          `json:"example_lines"`
	TargetTime    string            `json:"target_time"`
	DateText      string            `json:"date_text"`
	TimeText      string            `json:"time_text"`
	Difference    string            `json:"difference"`
	Modes         map[string]string `json:"modes"`
}

// calculateRequest is the POST /api/calculate body. Amount may be sent as a
// JSON number or string.
type calculateRequest struct {
	Target    string       `json:"target"`
	Amount    amountString `json:"amount"`
	Unit      string       `json:"unit"`
	Direction string       `json:"direction"`
	Language  string       `json:"language"`
}

type amountString string

func (a *amountString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = amountString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*a = amountString(n.String())
	return nil
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{
		Error:   http.StatusText(status),
		Code:    status,
		Message: message,
	})
}

// writeSharedError writes an error response using the shared error type.
// It automatically maps the error kind to the appropriate HTTP status code.
func writeSharedError(w http.ResponseWriter, err *errors.Error) {
	writeJSON(w, err.HTTPStatus(), ErrorResponse{
		Error:      http.StatusText(err.HTTPStatus()),
		Code:       err.HTTPStatus(),
		Kind:       err.Kind.String(),
		Message:    err.Message,
		Suggestion: err.Suggestion,
	})
}

func (s *Server) writeServiceError(w http.ResponseWriter, err error) {
	if sharedErr, ok := errors.As(err); ok {
		writeSharedError(w, sharedErr)
		return
	}
	s.logger.Error("calculation failed", "error", err)
	writeError(w, http.StatusInternalServerError, err.Error())
}

// language resolves a language parameter, falling back to the server
// default when it is empty.
func (s *Server) language(raw string) (models.Language, error) {
	if strings.TrimSpace(raw) == "" {
		return s.config.DefaultLanguage, nil
	}
	lang, err := models.ParseLanguage(raw)
	if err != nil {
		return "", errors.InvalidArgs("%v", err)
	}
	return lang, nil
}

// buildInput turns loosely typed request fields into a service.Input.
// Empty unit and direction are left for the service defaults.
func (s *Server) buildInput(req calculateRequest) (service.Input, error) {
	lang, err := s.language(req.Language)
	if err != nil {
		return service.Input{}, err
	}
	in := service.Input{
		Target:   req.Target,
		Amount:   string(req.Amount),
		Language: lang,
	}
	if strings.TrimSpace(req.Unit) != "" {
		u, err := models.ParseUnit(req.Unit)
		if err != nil {
			return service.Input{}, errors.InvalidArgs("%v", err)
		}
		in.Unit = u
	}
	if strings.TrimSpace(req.Direction) != "" {
		d, err := models.ParseDirection(req.Direction)
		if err != nil {
			return service.Input{}, errors.InvalidArgs("%v", err)
		}
		in.Direction = d
	}
	return in, nil
}

func (s *Server) calculate(w http.ResponseWriter, req calculateRequest) {
	in, err := s.buildInput(req)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	result, err := s.config.Calculator.Calculate(in)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Calculation handlers

func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	var req calculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	s.calculate(w, req)
}

func (s *Server) handleCalculateQuery(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	lang := q.Get("lang")
	if lang == "" {
		lang = q.Get("language")
	}
	s.calculate(w, calculateRequest{
		Target:    q.Get("target"),
		Amount:    amountString(q.Get("amount")),
		Unit:      q.Get("unit"),
		Direction: q.Get("direction"),
		Language:  lang,
	})
}

// Lookup handlers

func (s *Server) handleListUnits(w http.ResponseWriter, r *http.Request) {
	lang, err := s.language(r.URL.Query().Get("lang"))
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	response := make([]UnitResponse, 0, len(models.Units))
	for _, u := range models.Units {
		response = append(response, UnitResponse{
			Unit:   u,
			Label:  i18n.UnitName(lang, u),
			Millis: calc.UnitMillis(u),
		})
	}

	writeJSON(w, http.StatusOK, response)
}

func (s *Server) handleListPresets(w http.ResponseWriter, r *http.Request) {
	lang, err := s.language(r.URL.Query().Get("lang"))
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	response := make([]PresetResponse, 0, len(i18n.Presets))
	for i, p := range i18n.Presets {
		response = append(response, PresetResponse{
			Key:    p.Key,
			Amount: p.Amount,
			Unit:   p.Unit,
			Label:  i18n.PresetLabel(lang, i),
		})
	}

	writeJSON(w, http.StatusOK, response)
}

func (s *Server) handleStrings(w http.ResponseWriter, r *http.Request) {
	lang, err := s.language(r.URL.Query().Get("lang"))
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	t := i18n.For(lang)
	writeJSON(w, http.StatusOK, StringsResponse{
		Language:      lang,
		Title:         t.Title,
		Subtitle:      t.Subtitle,
		SwitchLabel:   t.SwitchLabel,
		DateLabel:     t.DateLabel,
		AmountLabel:   t.AmountLabel,
		Placeholder:   t.AmountPlaceholder,
		CalculateText: t.CalculateText,
		ClearText:     t.ClearText,
		ResultTitle:   t.ResultTitle,
		ExampleTitle:  t.ExampleTitle,
		ExampleLines:  t.ExampleLines,
		TargetTime:    t.TargetTime,
		DateText:      t.DateText,
		TimeText:      t.TimeText,
		Difference:    t.Difference,
		Modes: map[string]string{
			string(models.DirectionBefore): t.Modes[models.DirectionBefore],
			string(models.DirectionAfter):  t.Modes[models.DirectionAfter],
		},
	})
}
