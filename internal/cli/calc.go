package cli

import (
	"github.com/spetersoncode/timecalc/internal/common"
	"github.com/spetersoncode/timecalc/internal/i18n"
	"github.com/spetersoncode/timecalc/internal/models"
	"github.com/spetersoncode/timecalc/internal/service"
	"github.com/spf13/cobra"
)

// Shift command flags
var (
	shiftFrom   string
	shiftPreset string
)

// Calc command flags
var (
	calcFrom      string
	calcAmount    string
	calcUnit      string
	calcDirection string
)

func init() {
	for _, cmd := range []*cobra.Command{agoCmd, afterCmd} {
		cmd.Flags().StringVarP(&shiftFrom, "from", "f", "now", "Target date and time (YYYY-MM-DDTHH:MM, YYYY-MM-DD HH:MM, RFC 3339 or now)")
		cmd.Flags().StringVar(&shiftPreset, "preset", "", "Use a quick preset instead of <amount> [unit] (1h, 1d, 2d, 1w, 1mo, 1y)")
		rootCmd.AddCommand(cmd)
	}

	calcCmd.Flags().StringVarP(&calcFrom, "from", "f", "", "Target date and time (required)")
	calcCmd.Flags().StringVarP(&calcAmount, "amount", "a", "", "Time amount, >= 0 (required)")
	calcCmd.Flags().StringVarP(&calcUnit, "unit", "u", "", "Unit: minutes, hours, days, weeks, months, years (default from config)")
	calcCmd.Flags().StringVarP(&calcDirection, "direction", "d", "", "before or after (default from config)")
	rootCmd.AddCommand(calcCmd)
}

var agoCmd = &cobra.Command{
	Use:   "ago <amount> [unit]",
	Short: "Show the time an amount before a moment",
	Long: `Show the time an amount before the target (default: now).

The unit defaults to the configured unit (hours unless changed).

Examples:
  timecalc ago 36                                 # 36 hours ago
  timecalc ago 2 weeks
  timecalc ago 36 hours --from "2024-12-25T15:00"
  timecalc ago --preset 1d --lang zh`,
	Args: validArgs(cobra.RangeArgs(0, 2)),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShift(args, models.DirectionBefore)
	},
}

var afterCmd = &cobra.Command{
	Use:   "after <amount> [unit]",
	Short: "Show the time an amount after a moment",
	Long: `Show the time an amount after the target (default: now).

The unit defaults to the configured unit (hours unless changed).

Examples:
  timecalc after 90 minutes
  timecalc after 1 year --from 2024-01-01
  timecalc after 1.5 days -o json`,
	Args: validArgs(cobra.RangeArgs(0, 2)),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShift(args, models.DirectionAfter)
	},
}

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Run a calculation with every field given as a flag",
	Long: `Run a calculation the way the form does, with each field as a flag.

Validation matches the form: a missing or unreadable target is reported
first, then a missing, negative or non-numeric amount.

Examples:
  timecalc calc --from "2024-12-25T15:00" --amount 36 --unit hours --direction before
  timecalc calc -f 2024-01-01 -a 1 -u weeks -d after -o yaml`,
	Args: validArgs(cobra.NoArgs),
	RunE: runCalc,
}

func runShift(args []string, dir models.Direction) error {
	in := service.Input{
		Target:    shiftFrom,
		Unit:      GetConfig().DefaultUnit(),
		Direction: dir,
		Language:  GetLanguage(),
	}

	switch {
	case shiftPreset != "" && len(args) > 0:
		return ErrInvalidArgs("--preset cannot be combined with an amount")
	case shiftPreset != "":
		p, err := i18n.FindPreset(shiftPreset)
		if err != nil {
			return ErrInvalidArgsWithSuggestion(SuggestListPresets, "%v", err)
		}
		in.Amount = common.FormatAmount(p.Amount)
		in.Unit = p.Unit
	case len(args) == 0:
		return ErrInvalidArgsWithSuggestion(SuggestAmountArg, "missing amount")
	default:
		in.Amount = args[0]
		if len(args) == 2 {
			u, err := models.ParseUnit(args[1])
			if err != nil {
				return ErrInvalidArgsWithSuggestion(SuggestUnits, "%v", err)
			}
			in.Unit = u
		}
	}

	return calculateAndPrint(in)
}

func runCalc(cmd *cobra.Command, args []string) error {
	in := service.Input{
		Target:    calcFrom,
		Amount:    calcAmount,
		Unit:      GetConfig().DefaultUnit(),
		Direction: GetConfig().DefaultDirection(),
		Language:  GetLanguage(),
	}

	if calcUnit != "" {
		u, err := models.ParseUnit(calcUnit)
		if err != nil {
			return ErrInvalidArgsWithSuggestion(SuggestUnits, "%v", err)
		}
		in.Unit = u
	}
	if calcDirection != "" {
		d, err := models.ParseDirection(calcDirection)
		if err != nil {
			return ErrInvalidArgs("%v", err)
		}
		in.Direction = d
	}

	return calculateAndPrint(in)
}

func calculateAndPrint(in service.Input) error {
	log.Debug("calculating", "target", in.Target, "amount", in.Amount, "unit", in.Unit, "direction", in.Direction)

	res, err := newCalculator().Calculate(in)
	if err != nil {
		return err
	}

	log.Debug("calculated", "offset_ms", res.OffsetMillis, "result", res.ResultISO)
	return printResult(res)
}
