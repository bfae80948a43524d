package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spetersoncode/timecalc/internal/config"
	"github.com/spetersoncode/timecalc/internal/errors"
	"github.com/spetersoncode/timecalc/internal/logger"
	"github.com/spetersoncode/timecalc/internal/models"
	"github.com/spetersoncode/timecalc/internal/service"
	"github.com/spf13/cobra"
)

// Version information (set at build time via ldflags)
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Global flags
var (
	configPath string
	langFlag   string
	outputFlag string
	jsonOut    bool
	quiet      bool
	verbose    bool
	noColor    bool
)

// Global configuration (loaded before every command runs)
var globalConfig *config.Config

// Diagnostic logger, configured from [log] and --verbose
var log = logger.Discard()

// Exit codes
const (
	ExitSuccess              = 0
	ExitGeneralError         = 1
	ExitInvalidArgs          = 2
	ExitMissingBaseTimestamp = 3
	ExitInvalidAmount        = 4
	ExitInternal             = 5
)

var rootCmd = &cobra.Command{
	Use:   "timecalc",
	Short: "Calculate the time a given amount before or after a moment",
	Long: `Timecalc shifts a target date and time backwards or forwards by an
amount of minutes, hours, days, weeks, months or years, and shows the
result in English or Chinese.

Months are a fixed 30.44 days and years a fixed 365.25 days, so results
do not follow calendar month or year boundaries.

Use "timecalc ago 36" to see what time it was 36 hours ago.
Use "timecalc form" for the interactive calculator.
Use "timecalc --help" to see all available commands.`,
	Version:           Version,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default ~/.timecalc/config.toml)")
	rootCmd.PersistentFlags().StringVarP(&langFlag, "lang", "l", "", "Display language: en or zh")
	rootCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "", "Output format: text, json or yaml")
	rootCmd.PersistentFlags().BoolVarP(&jsonOut, "json", "j", false, "Output in JSON format (same as -o json)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Print only the result time")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.SetFlagErrorFunc(flagError)

	// Set version template for --version flag
	rootCmd.SetVersionTemplate(fmt.Sprintf("timecalc %s (%s, %s)\n", Version, shortCommit(), shortDate()))

	rootCmd.AddCommand(versionCmd)
}

// setup loads configuration, checks the global flags and configures the
// diagnostic logger.
func setup(cmd *cobra.Command, args []string) error {
	path := configPath
	if path == "" {
		path = os.Getenv("TIMECALC_CONFIG")
	}

	cfg, err := loadConfig(path)
	if err != nil {
		return err
	}
	globalConfig = cfg

	if outputFlag != "" && !config.IsValidOutput(outputFlag) {
		return errors.InvalidArgs("invalid output format %q", outputFlag).
			WithSuggestion(SuggestOutputFormat)
	}
	if langFlag != "" {
		if _, err := models.ParseLanguage(langFlag); err != nil {
			return errors.InvalidArgs("%v", err)
		}
	}

	logCfg := globalConfig.LoggerConfig()
	if verbose {
		logCfg.Level = "debug"
	}
	log = logger.New(logCfg, os.Stderr)

	return nil
}

// loadConfig reads the config file. A broken default file only produces a
// warning; a broken file named with --config is an error.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to load config file: %v\n", err)
			return config.DefaultConfig(), nil
		}
		return cfg, nil
	}

	if _, err := os.Stat(path); err != nil {
		return nil, errors.InvalidArgs("config file %s not found", path).
			WithSuggestion(SuggestConfigInit)
	}
	cfg, err := config.LoadFromPath(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.KindInvalidArgs, "invalid config file %s", path)
	}
	return cfg, nil
}

// shortCommit returns the first 7 characters of the git commit hash
func shortCommit() string {
	if len(GitCommit) >= 7 {
		return GitCommit[:7]
	}
	return GitCommit
}

// shortDate returns just the date portion of BuildDate (YYYY-MM-DD)
func shortDate() string {
	if len(BuildDate) >= 10 {
		return BuildDate[:10]
	}
	return BuildDate
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// GetConfig returns the global configuration.
func GetConfig() *config.Config {
	if globalConfig != nil {
		return globalConfig
	}
	return config.DefaultConfig()
}

// GetLanguage returns the display language.
// Priority: flag > env > config file > default
func GetLanguage() models.Language {
	if langFlag != "" {
		if lang, err := models.ParseLanguage(langFlag); err == nil {
			return lang
		}
	}
	return GetConfig().Lang()
}

// GetOutputFormat returns the requested output format.
// Priority: --json > --output > env > config file > default
func GetOutputFormat() string {
	if jsonOut {
		return config.OutputJSON
	}
	if outputFlag != "" {
		return outputFlag
	}
	return GetConfig().Output
}

// IsNoColor returns whether colored output should be disabled.
// Priority: flag > env > config file > default
func IsNoColor() bool {
	if noColor {
		return true
	}
	return GetConfig().NoColor
}

// IsQuiet returns whether quiet mode is enabled
func IsQuiet() bool {
	return quiet
}

// IsVerbose returns whether verbose mode is enabled
func IsVerbose() bool {
	return verbose
}

// Logger returns the diagnostic logger.
func Logger() *slog.Logger {
	return log
}

// newCalculator builds the calculator shared by the commands.
func newCalculator() *service.Calculator {
	return service.NewCalculator(service.WithLogger(log))
}

// Output prints to stdout unless quiet mode is enabled
func Output(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// OutputLine prints a line to stdout unless quiet mode is enabled
func OutputLine(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format+"\n", args...)
	}
}

// VerboseOutput prints to stdout only in verbose mode
func VerboseOutput(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// ErrorOutput prints to stderr
func ErrorOutput(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
}
