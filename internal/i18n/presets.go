package i18n

import (
	"fmt"
	"strings"

	"github.com/spetersoncode/timecalc/internal/models"
)

// Preset is one of the quick amount/unit shortcuts offered by the form.
type Preset struct {
	Key    string      `json:"key" yaml:"key"`
	Amount float64     `json:"amount" yaml:"amount"`
	Unit   models.Unit `json:"unit" yaml:"unit"`
}

// Presets are ordered to line up with Strings.Presets labels.
var Presets = []Preset{
	{Key: "1h", Amount: 1, Unit: models.UnitHours},
	{Key: "1d", Amount: 24, Unit: models.UnitHours},
	{Key: "2d", Amount: 48, Unit: models.UnitHours},
	{Key: "1w", Amount: 1, Unit: models.UnitWeeks},
	{Key: "1mo", Amount: 1, Unit: models.UnitMonths},
	{Key: "1y", Amount: 1, Unit: models.UnitYears},
}

// PresetLabel returns the localized button label for the preset at index i.
func PresetLabel(lang models.Language, i int) string {
	if i < 0 || i >= len(Presets) {
		return ""
	}
	return For(lang).Presets[i]
}

// FindPreset looks a preset up by key ("1d") or by its English label
// ("1 day"), case-insensitively.
func FindPreset(name string) (Preset, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, p := range Presets {
		if n == p.Key || n == strings.ToLower(english.Presets[i]) {
			return p, nil
		}
	}
	keys := make([]string, len(Presets))
	for i, p := range Presets {
		keys[i] = p.Key
	}
	return Preset{}, fmt.Errorf("unknown preset %q (valid: %s)", name, strings.Join(keys, ", "))
}
