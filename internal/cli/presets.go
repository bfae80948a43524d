package cli

import (
	"github.com/spetersoncode/timecalc/internal/common"
	"github.com/spetersoncode/timecalc/internal/i18n"
	"github.com/spetersoncode/timecalc/internal/models"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(presetsCmd)
}

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the quick presets",
	Long: `List the quick presets accepted by --preset and offered by the form.

Examples:
  timecalc presets
  timecalc presets --lang zh
  timecalc ago --preset 2d`,
	Args: validArgs(cobra.NoArgs),
	RunE: runPresets,
}

type presetInfo struct {
	Key    string      `json:"key" yaml:"key"`
	Label  string      `json:"label" yaml:"label"`
	Amount float64     `json:"amount" yaml:"amount"`
	Unit   models.Unit `json:"unit" yaml:"unit"`
}

func runPresets(cmd *cobra.Command, args []string) error {
	lang := GetLanguage()

	presets := make([]presetInfo, len(i18n.Presets))
	for i, p := range i18n.Presets {
		presets[i] = presetInfo{
			Key:    p.Key,
			Label:  i18n.PresetLabel(lang, i),
			Amount: p.Amount,
			Unit:   p.Unit,
		}
	}

	if done, err := printStructured(presets); done {
		return err
	}

	for _, p := range presets {
		OutputLine("%-4s %s %s %s", p.Key, padRight(p.Label, 8),
			common.FormatAmount(p.Amount), i18n.UnitName(lang, p.Unit))
	}
	return nil
}
