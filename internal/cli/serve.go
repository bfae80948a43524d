package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spetersoncode/timecalc/internal/server"
	"github.com/spf13/cobra"
)

// Serve command flags
var (
	servePort      int
	serveHost      string
	serveNoBrowser bool
)

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to listen on (default from config, 18090)")
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Host address to bind to (default from config, localhost)")
	serveCmd.Flags().BoolVar(&serveNoBrowser, "no-browser", false, "Don't auto-open browser")

	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the web form and JSON API",
	Long: `Start an HTTP server with the calculator form and a JSON API.

Endpoints:
  GET  /                 Calculator form
  POST /api/calculate    {"target", "amount", "unit", "direction", "language"}
  GET  /api/calculate    Same fields as query parameters (lang for language)
  GET  /api/units        Units with localized labels
  GET  /api/presets      Quick presets
  GET  /api/health       Health check

The server runs on localhost by default and auto-opens your browser.

Examples:
  timecalc serve                    # Start on default port 18090
  timecalc serve --port 8080        # Start on custom port
  timecalc serve --no-browser       # Don't auto-open browser
  timecalc serve --host 0.0.0.0     # Bind to all interfaces`,
	Args: validArgs(cobra.NoArgs),
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	port := cfg.Server.Port
	if servePort != 0 {
		port = servePort
	}
	host := cfg.Server.Host
	if serveHost != "" {
		host = serveHost
	}
	openBrowser := cfg.Server.OpenBrowser && !serveNoBrowser

	srv, err := server.New(server.Config{
		Port:            port,
		Host:            host,
		Calculator:      newCalculator(),
		DefaultLanguage: GetLanguage(),
		AutoOpenBrowser: openBrowser,
		Logger:          log,
	})
	if err != nil {
		return ErrInvalidArgs("failed to create server: %v", err)
	}

	// Handle graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start server in goroutine
	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	url := fmt.Sprintf("http://%s", srv.Address())
	OutputLine("Timecalc server starting at %s", url)
	if openBrowser {
		OutputLine("Opening browser...")
	}
	OutputLine("Press Ctrl+C to stop")

	// Wait for shutdown signal or error
	select {
	case err := <-errChan:
		if err != nil {
			return ErrInternal(err, "server error")
		}
	case <-ctx.Done():
		OutputLine("\nShutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return ErrInternal(err, "shutdown error")
		}
	}

	OutputLine("Server stopped")
	return nil
}
