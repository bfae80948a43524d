package tui

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spetersoncode/timecalc/internal/logger"
	"github.com/spetersoncode/timecalc/internal/service"
)

// DebugEnv enables the debug log file when set to "1".
const DebugEnv = "TIMECALC_DEBUG"

// DebugLogPath is where debug traces go while the form owns the terminal.
func DebugLogPath() string {
	return filepath.Join(os.TempDir(), "timecalc-debug.log")
}

// Run shows the form until the user quits.
func Run(calc *service.Calculator, opts Options, noColor bool) error {
	if noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	if os.Getenv(DebugEnv) == "1" {
		f, err := os.OpenFile(DebugLogPath(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open debug log: %w", err)
		}
		defer f.Close()
		opts.Logger = logger.New(logger.Config{Level: "debug", Format: "text"}, f)
	}

	p := tea.NewProgram(New(calc, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func writeClipboard(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("no clipboard utility available")
	}
	return clipboard.WriteAll(text)
}
