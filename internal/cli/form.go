package cli

import (
	"os"

	"github.com/spetersoncode/timecalc/internal/models"
	"github.com/spetersoncode/timecalc/internal/tui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var formAfter bool

func init() {
	formCmd.Flags().BoolVar(&formAfter, "after", false, "Start in \"time after\" mode")
	rootCmd.AddCommand(formCmd)
}

var formCmd = &cobra.Command{
	Use:   "form",
	Short: "Open the interactive calculator",
	Long: `Open the interactive calculator in the terminal.

Keys:
  tab / shift+tab   Move between target, amount and unit
  ←/→               Change the unit (unit field)
  alt+1 … alt+6     Quick presets: 1 hour, 1 day, 2 days, 1 week, 1 month, 1 year
  ctrl+t            Switch between "time ago" and "time after"
  ctrl+l            Switch between English and Chinese
  enter             Calculate
  esc               Clear the form
  ctrl+y            Copy the result
  ctrl+c            Quit

Set TIMECALC_DEBUG=1 to write debug logs to the temp directory.`,
	Args: validArgs(cobra.NoArgs),
	RunE: runForm,
}

func runForm(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return ErrInvalidArgsWithSuggestion("Use 'timecalc ago', 'timecalc after' or 'timecalc calc' in scripts.",
			"the form needs an interactive terminal")
	}

	dir := GetConfig().DefaultDirection()
	if formAfter {
		dir = models.DirectionAfter
	}

	err := tui.Run(newCalculator(), tui.Options{
		Language:  GetLanguage(),
		Direction: dir,
		Unit:      GetConfig().DefaultUnit(),
	}, IsNoColor())
	if err != nil {
		return ErrInternal(err, "form failed")
	}
	return nil
}
