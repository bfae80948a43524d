package cli

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/spetersoncode/timecalc/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// captureOutput captures stdout and stderr during function execution
func captureOutput(fn func()) (string, string) {
	// Save original stdout and stderr
	oldStdout := os.Stdout
	oldStderr := os.Stderr

	// Create pipes
	rOut, wOut, _ := os.Pipe()
	rErr, wErr, _ := os.Pipe()

	os.Stdout = wOut
	os.Stderr = wErr

	// Read captured output concurrently so large outputs don't block
	var wg sync.WaitGroup
	var stdout, stderr string

	wg.Add(2)
	go func() {
		defer wg.Done()
		out, _ := io.ReadAll(rOut)
		stdout = string(out)
	}()
	go func() {
		defer wg.Done()
		out, _ := io.ReadAll(rErr)
		stderr = string(out)
	}()

	// Run the function
	fn()

	// Close writers and restore originals
	wOut.Close()
	wErr.Close()
	os.Stdout = oldStdout
	os.Stderr = oldStderr

	wg.Wait()

	return stdout, stderr
}

// resetGlobalFlags resets all global CLI flags to their default values.
// This is necessary because cobra keeps state between test runs.
// Default values must match the flag defaults defined in the init() functions.
func resetGlobalFlags() {
	// Root command flags
	configPath = ""
	langFlag = ""
	outputFlag = ""
	jsonOut = false
	quiet = false
	verbose = false
	noColor = false
	globalConfig = nil

	// Shift command flags
	shiftFrom = "now"
	shiftPreset = ""

	// Calc command flags
	calcFrom = ""
	calcAmount = ""
	calcUnit = ""
	calcDirection = ""

	// Other command flags
	servePort = 0
	serveHost = ""
	serveNoBrowser = false
	configForce = false
	formAfter = false
}

// isolateEnv points HOME at a temp dir and clears TIMECALC_* variables so
// the developer's own config never leaks into a test.
func isolateEnv(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, key := range []string{
		"TIMECALC_CONFIG", "TIMECALC_LANGUAGE", "TIMECALC_LANG", "TIMECALC_UNIT",
		"TIMECALC_DIRECTION", "TIMECALC_OUTPUT", "TIMECALC_NO_COLOR", "NO_COLOR",
		"TIMECALC_HOST", "TIMECALC_PORT", "TIMECALC_LOG_LEVEL", "TIMECALC_LOG_FORMAT",
	} {
		t.Setenv(key, "") // restores the original value on cleanup
		os.Unsetenv(key)
	}
	return home
}

// runCmd executes a command with the given args and returns stdout and error.
func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetGlobalFlags()

	var err error
	stdout, _ := captureOutput(func() {
		rootCmd.SetArgs(args)
		err = rootCmd.Execute()
	})
	return stdout, err
}

// runCmdJSON executes a command with --json and unmarshals stdout.
func runCmdJSON(t *testing.T, result interface{}, args ...string) error {
	t.Helper()
	stdout, err := runCmd(t, append(args, "--json")...)
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(stdout), result)
}

func TestAgoCommand(t *testing.T) {
	isolateEnv(t)

	t.Run("text card", func(t *testing.T) {
		out, err := runCmd(t, "ago", "36", "hours", "--from", "2024-12-25T15:00", "--no-color")
		require.NoError(t, err)

		assert.Contains(t, out, "Calculation Result:")
		assert.Contains(t, out, "Target Time:  12/25/2024 15:00:00")
		assert.Contains(t, out, "36 Hours before")
		assert.Contains(t, out, "Result Time:  12/24/2024 03:00:00")
		assert.Contains(t, out, "Date:         12/24/2024 (Tuesday)")
		assert.Contains(t, out, "Difference:   36 Hours (1d 12h)")
	})

	t.Run("unit defaults to hours", func(t *testing.T) {
		out, err := runCmd(t, "ago", "36", "-f", "2024-12-25T15:00", "-q")
		require.NoError(t, err)
		assert.Equal(t, "12/24/2024 03:00:00\n", out)
	})

	t.Run("unit alias", func(t *testing.T) {
		out, err := runCmd(t, "ago", "90", "min", "-f", "2024-12-25T15:00", "-q")
		require.NoError(t, err)
		assert.Equal(t, "12/25/2024 13:30:00\n", out)
	})

	t.Run("chinese", func(t *testing.T) {
		out, err := runCmd(t, "ago", "36", "-f", "2024-12-25T15:00", "--lang", "zh", "--no-color")
		require.NoError(t, err)
		assert.Contains(t, out, "计算结果：")
		assert.Contains(t, out, "结果时间：  2024年12月24日 03:00:00")
		assert.Contains(t, out, "36小时前")
		assert.Contains(t, out, "星期二")
	})

	t.Run("json", func(t *testing.T) {
		var result map[string]interface{}
		err := runCmdJSON(t, &result, "ago", "36", "-f", "2024-12-25T15:00")
		require.NoError(t, err)

		assert.Equal(t, "36 Hours before", result["headline"])
		assert.Equal(t, float64(129_600_000), result["offset_ms"])
		assert.Equal(t, "12/24/2024 03:00:00", result["result"].(map[string]interface{})["full"])
	})

	t.Run("yaml", func(t *testing.T) {
		out, err := runCmd(t, "ago", "36", "-f", "2024-12-25T15:00", "-o", "yaml")
		require.NoError(t, err)

		var result map[string]interface{}
		require.NoError(t, yaml.Unmarshal([]byte(out), &result))
		assert.Equal(t, "before", result["direction"])
		assert.Equal(t, "12/24/2024 03:00:00", result["result"].(map[string]interface{})["full"])
	})
}

func TestAfterCommand(t *testing.T) {
	isolateEnv(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"hours", []string{"36", "-f", "2024-12-25T15:00"}, "12/27/2024 03:00:00\n"},
		{"one week", []string{"1", "week", "-f", "2024-01-01T00:00"}, "01/08/2024 00:00:00\n"},
		{"fractional days", []string{"1.5", "days", "-f", "2024-01-01"}, "01/02/2024 12:00:00\n"},
		{"zero is identity", []string{"0", "-f", "2024-12-25 15:00"}, "12/25/2024 15:00:00\n"},
		{"preset", []string{"--preset", "2d", "-f", "2024-12-25T15:00"}, "12/27/2024 15:00:00\n"},
		{"preset by label", []string{"--preset", "1 week", "-f", "2024-01-01T00:00"}, "01/08/2024 00:00:00\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCmd(t, append([]string{"after", "-q"}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestCalcCommand(t *testing.T) {
	isolateEnv(t)

	t.Run("all flags", func(t *testing.T) {
		out, err := runCmd(t, "calc", "--from", "2024-12-25T15:00", "--amount", "36", "--unit", "hours", "--direction", "after", "-q")
		require.NoError(t, err)
		assert.Equal(t, "12/27/2024 03:00:00\n", out)
	})

	t.Run("direction defaults to before", func(t *testing.T) {
		out, err := runCmd(t, "calc", "-f", "2024-12-25T15:00", "-a", "36", "-q")
		require.NoError(t, err)
		assert.Equal(t, "12/24/2024 03:00:00\n", out)
	})
}

func TestCommandErrors(t *testing.T) {
	isolateEnv(t)

	tests := []struct {
		name     string
		args     []string
		exitCode int
	}{
		{"negative amount", []string{"ago", "-f", "2024-12-25T15:00", "--", "-1"}, ExitInvalidAmount},
		{"negative amount bare", []string{"ago", "-1", "hours", "-f", "2024-12-25T15:00"}, ExitInvalidAmount},
		{"negative fraction bare", []string{"after", "-2.5", "days"}, ExitInvalidAmount},
		{"non-numeric amount", []string{"ago", "abc", "-f", "2024-12-25T15:00"}, ExitInvalidAmount},
		{"missing target", []string{"calc", "--amount", "36"}, ExitMissingBaseTimestamp},
		{"unreadable target", []string{"ago", "36", "-f", "christmas"}, ExitMissingBaseTimestamp},
		{"target before amount", []string{"calc", "--amount", "-1"}, ExitMissingBaseTimestamp},
		{"missing amount", []string{"ago"}, ExitInvalidArgs},
		{"invalid unit", []string{"ago", "3", "fortnights"}, ExitInvalidArgs},
		{"invalid direction", []string{"calc", "-f", "now", "-a", "1", "-d", "sideways"}, ExitInvalidArgs},
		{"unknown preset", []string{"ago", "--preset", "3d"}, ExitInvalidArgs},
		{"preset with amount", []string{"ago", "1", "--preset", "1d"}, ExitInvalidArgs},
		{"too many args", []string{"ago", "1", "hours", "extra"}, ExitInvalidArgs},
		{"unknown flag", []string{"ago", "1", "--bogus"}, ExitInvalidArgs},
		{"invalid output", []string{"ago", "1", "-o", "xml"}, ExitInvalidArgs},
		{"invalid language", []string{"ago", "1", "-l", "fr"}, ExitInvalidArgs},
		{"out of range", []string{"after", "1e12", "years", "-f", "2024-01-01"}, ExitInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCmd(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.exitCode, ExitCode(err), "error: %v", err)
		})
	}
}

func TestCommandErrors_LocalizedMessage(t *testing.T) {
	isolateEnv(t)

	_, err := runCmd(t, "calc", "--amount", "36", "--lang", "zh")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "请选择目标日期时间！")
	assert.True(t, errors.Is(err, errors.KindMissingBaseTimestamp))
}

func TestCommandErrors_BareNegativeAmount(t *testing.T) {
	isolateEnv(t)

	_, err := runCmd(t, "ago", "-l", "zh", "-1", "hours")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.KindInvalidAmount))
	assert.Contains(t, err.Error(), "请输入有效的时间数量！")

	t.Setenv("TIMECALC_LANG", "zh")
	_, err = runCmd(t, "after", "-3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "请输入有效的时间数量！")

	// other unknown shorthands stay usage errors
	_, err = runCmd(t, "ago", "1", "-z")
	require.Error(t, err)
	assert.Equal(t, ExitInvalidArgs, ExitCode(err))
}

func TestPresetsCommand(t *testing.T) {
	isolateEnv(t)

	var presets []presetInfo
	require.NoError(t, runCmdJSON(t, &presets, "presets", "--lang", "zh"))
	require.Len(t, presets, 6)
	assert.Equal(t, "1d", presets[1].Key)
	assert.Equal(t, "1天", presets[1].Label)
	assert.Equal(t, float64(24), presets[1].Amount)

	out, err := runCmd(t, "presets")
	require.NoError(t, err)
	assert.Contains(t, out, "2 Days")
	assert.Contains(t, out, "48 Hours")
}

func TestVersionCommand(t *testing.T) {
	isolateEnv(t)

	var info versionInfo
	require.NoError(t, runCmdJSON(t, &info, "version"))
	assert.Equal(t, Version, info.Version)
	assert.Equal(t, int64(2_630_016_000), info.MonthMillis)
	assert.Equal(t, int64(31_557_600_000), info.YearMillis)

	out, err := runCmd(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "timecalc "+Version)
}

func TestConfigCommands(t *testing.T) {
	home := isolateEnv(t)
	want := filepath.Join(home, ".timecalc", "config.toml")

	out, err := runCmd(t, "config", "path")
	require.NoError(t, err)
	assert.Equal(t, want+"\n", out)

	_, err = runCmd(t, "config", "init")
	require.NoError(t, err)
	assert.FileExists(t, want)

	_, err = runCmd(t, "config", "init")
	require.Error(t, err)
	assert.Equal(t, ExitInvalidArgs, ExitCode(err))

	_, err = runCmd(t, "config", "init", "--force")
	require.NoError(t, err)

	// The sample file only has comments, so defaults apply.
	var cfg map[string]interface{}
	require.NoError(t, runCmdJSON(t, &cfg, "config", "show"))
	assert.Equal(t, "en", cfg["language"])
	assert.Equal(t, "hours", cfg["unit"])

	out, err = runCmd(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, `language = "en"`)
}

func TestConfigFile(t *testing.T) {
	home := isolateEnv(t)

	path := filepath.Join(home, "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte("language = \"zh\"\nunit = \"days\"\n"), 0644))

	t.Run("settings apply", func(t *testing.T) {
		out, err := runCmd(t, "ago", "1", "-f", "2024-12-25T15:00", "--config", path, "-q")
		require.NoError(t, err)
		assert.Equal(t, "2024年12月24日 15:00:00\n", out)
	})

	t.Run("flag beats file", func(t *testing.T) {
		out, err := runCmd(t, "ago", "1", "-f", "2024-12-25T15:00", "--config", path, "-l", "en", "-q")
		require.NoError(t, err)
		assert.Equal(t, "12/24/2024 15:00:00\n", out)
	})

	t.Run("env beats file", func(t *testing.T) {
		t.Setenv("TIMECALC_UNIT", "hours")
		out, err := runCmd(t, "ago", "1", "-f", "2024-12-25T15:00", "--config", path, "-q")
		require.NoError(t, err)
		assert.Equal(t, "2024年12月25日 14:00:00\n", out)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := runCmd(t, "ago", "1", "--config", filepath.Join(home, "nope.toml"))
		require.Error(t, err)
		assert.Equal(t, ExitInvalidArgs, ExitCode(err))
	})

	t.Run("invalid file", func(t *testing.T) {
		bad := filepath.Join(home, "bad.toml")
		require.NoError(t, os.WriteFile(bad, []byte("unit = \"fortnights\"\n"), 0644))
		_, err := runCmd(t, "ago", "1", "--config", bad)
		require.Error(t, err)
		assert.Equal(t, ExitInvalidArgs, ExitCode(err))
	})
}
