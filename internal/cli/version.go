package cli

import (
	"fmt"
	"runtime"

	"github.com/spetersoncode/timecalc/internal/calc"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  `Display the version of timecalc, build date, Go version, and the month and year constants in use.`,
	RunE:  runVersion,
}

type versionInfo struct {
	Version     string `json:"version" yaml:"version"`
	GitCommit   string `json:"git_commit" yaml:"git_commit"`
	BuildDate   string `json:"build_date" yaml:"build_date"`
	GoVersion   string `json:"go_version" yaml:"go_version"`
	Platform    string `json:"platform" yaml:"platform"`
	MonthMillis int64  `json:"month_ms" yaml:"month_ms"`
	YearMillis  int64  `json:"year_ms" yaml:"year_ms"`
}

func runVersion(cmd *cobra.Command, args []string) error {
	info := versionInfo{
		Version:     Version,
		GitCommit:   GitCommit,
		BuildDate:   BuildDate,
		GoVersion:   runtime.Version(),
		Platform:    fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
		MonthMillis: int64(calc.MillisPerMonth),
		YearMillis:  int64(calc.MillisPerYear),
	}

	if done, err := printStructured(info); done {
		return err
	}

	// Compact format matching --version: timecalc v0.1.0 (9f61316, 2026-02-02)
	fmt.Printf("timecalc %s (%s, %s)\n", info.Version, shortCommit(), shortDate())
	fmt.Printf("Go: %s\n", info.GoVersion)
	fmt.Printf("Platform: %s\n", info.Platform)
	fmt.Printf("Month: %d ms (30.44 days)\n", info.MonthMillis)
	fmt.Printf("Year: %d ms (365.25 days)\n", info.YearMillis)

	return nil
}
