package cli

import (
	"os"
	"strconv"
	"strings"

	"github.com/spetersoncode/timecalc/internal/errors"
	"github.com/spetersoncode/timecalc/internal/models"
	"github.com/spetersoncode/timecalc/internal/service"
	"github.com/spf13/cobra"
)

// ExitCode returns the exit code for any error.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	return errors.GetCLIExitCode(err)
}

// FormatErrorMessage returns formatted error with suggestion if available.
func FormatErrorMessage(err error) string {
	var b strings.Builder
	b.WriteString("Error: ")
	b.WriteString(err.Error())
	if e, ok := errors.As(err); ok && e.Suggestion != "" {
		b.WriteString("\n\nSuggestion: ")
		b.WriteString(e.Suggestion)
	}
	return b.String()
}

// ErrInvalidArgs creates an error for invalid arguments (exit code 2)
func ErrInvalidArgs(format string, args ...interface{}) error {
	return errors.InvalidArgs(format, args...)
}

// ErrInvalidArgsWithSuggestion creates an error for invalid arguments with a suggestion
func ErrInvalidArgsWithSuggestion(suggestion, format string, args ...interface{}) error {
	return errors.InvalidArgs(format, args...).WithSuggestion(suggestion)
}

// ErrInternal creates an error for failures outside the user's control (exit code 5)
func ErrInternal(cause error, format string, args ...interface{}) error {
	return errors.WrapInternal(cause, format, args...)
}

// Common suggestions
const (
	SuggestOutputFormat = "Use one of: text, json, yaml."
	SuggestConfigInit   = "Run 'timecalc config init' to create a config file, or drop --config."
	SuggestListPresets  = "Run 'timecalc presets' to see available presets."
	SuggestAmountArg    = "Pass an amount such as 'timecalc ago 36 hours', or use --preset."
)

// SuggestUnits lists the accepted unit names.
var SuggestUnits = "Use one of: " + unitList() + "."

func unitList() string {
	names := make([]string, len(models.Units))
	for i, u := range models.Units {
		names[i] = string(u)
	}
	return strings.Join(names, ", ")
}

// validArgs turns cobra's positional argument errors into InvalidArgs.
func validArgs(fn cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := fn(cmd, args); err != nil {
			return errors.InvalidArgs("%v", err).
				WithSuggestion("Run 'timecalc " + cmd.Name() + " --help' for usage.")
		}
		return nil
	}
}

// flagError turns flag parsing errors into InvalidArgs. A negative amount
// given to ago or after without "--" reaches here as an unknown shorthand
// flag; it is reported as the InvalidAmount the calculator would return.
func flagError(cmd *cobra.Command, err error) error {
	if cmd == agoCmd || cmd == afterCmd {
		if raw, ok := numericFlagToken(err); ok {
			if _, verr := newCalculator().Validate(service.Input{
				Target:   "now",
				Amount:   raw,
				Language: flagErrorLanguage(),
			}); verr != nil {
				return verr
			}
		}
	}
	return errors.InvalidArgs("%v", err).
		WithSuggestion("Run 'timecalc " + cmd.Name() + " --help' for usage.")
}

// numericFlagToken extracts the rejected argument from a pflag error such
// as "unknown shorthand flag: '1' in -1" and reports whether it is a number.
func numericFlagToken(err error) (string, bool) {
	msg := err.Error()
	i := strings.LastIndex(msg, " in ")
	if i < 0 {
		return "", false
	}
	raw := strings.TrimSpace(msg[i+len(" in "):])
	if !strings.HasPrefix(raw, "-") {
		return "", false
	}
	if _, perr := strconv.ParseFloat(raw, 64); perr != nil {
		return "", false
	}
	return raw, true
}

// flagErrorLanguage resolves the display language while flags are still
// being parsed, before setup has loaded the config.
func flagErrorLanguage() models.Language {
	if globalConfig == nil && langFlag == "" {
		path := configPath
		if path == "" {
			path = os.Getenv("TIMECALC_CONFIG")
		}
		if cfg, err := loadConfig(path); err == nil {
			return cfg.Lang()
		}
	}
	return GetLanguage()
}
