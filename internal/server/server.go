// Package server provides the HTTP server for the timecalc web form and API.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os/exec"
	"runtime"
	"time"

	"github.com/spetersoncode/timecalc/internal/logger"
	"github.com/spetersoncode/timecalc/internal/models"
	"github.com/spetersoncode/timecalc/internal/service"
)

// Config holds the server configuration.
type Config struct {
	// Port is the TCP port to listen on (default 18090).
	Port int

	// Host is the address to bind to (default "localhost").
	Host string

	// Calculator validates and runs calculations (default: a new one).
	Calculator *service.Calculator

	// DefaultLanguage is used when a request names no language.
	DefaultLanguage models.Language

	// AutoOpenBrowser opens the browser on start if true.
	AutoOpenBrowser bool

	// Logger for server events (optional).
	Logger *slog.Logger
}

// Server is the HTTP server for the timecalc web form.
type Server struct {
	config     Config
	httpServer *http.Server
	router     *http.ServeMux
	logger     *slog.Logger
}

// New creates a new Server with the given configuration.
func New(config Config) (*Server, error) {
	if config.Port < 0 || config.Port > 65535 {
		return nil, fmt.Errorf("invalid port %d", config.Port)
	}
	if config.Port == 0 {
		config.Port = 18090
	}
	if config.Host == "" {
		config.Host = "localhost"
	}
	if config.DefaultLanguage == "" {
		config.DefaultLanguage = models.LanguageEnglish
	}
	if !config.DefaultLanguage.IsValid() {
		return nil, fmt.Errorf("invalid default language %q", config.DefaultLanguage)
	}

	log := config.Logger
	if log == nil {
		log = logger.Discard()
	}
	if config.Calculator == nil {
		config.Calculator = service.NewCalculator(service.WithLogger(log))
	}

	s := &Server{
		config: config,
		router: http.NewServeMux(),
		logger: logger.WithComponent(log, "server"),
	}

	s.setupRoutes()

	s.httpServer = &http.Server{
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Handler returns the root handler with request IDs and access logging.
func (s *Server) Handler() http.Handler {
	return s.withRequestLogging(s.router)
}

// Start starts the HTTP server. It blocks until the server stops.
func (s *Server) Start() error {
	addr := net.JoinHostPort(s.config.Host, fmt.Sprint(s.config.Port))

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}
	return s.Serve(listener)
}

// Serve accepts connections on listener. It blocks until the server stops.
func (s *Server) Serve(listener net.Listener) error {
	url := fmt.Sprintf("http://%s", listener.Addr())

	s.logger.Info("starting server", "url", url)

	if s.config.AutoOpenBrowser {
		go func() {
			// Small delay to ensure server is ready
			time.Sleep(100 * time.Millisecond)
			if err := openBrowser(url); err != nil {
				s.logger.Warn("failed to open browser", "error", err)
			}
		}()
	}

	err := s.httpServer.Serve(listener)
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down server")
	return s.httpServer.Shutdown(ctx)
}

// Address returns the configured server address (e.g., "localhost:18090").
func (s *Server) Address() string {
	return net.JoinHostPort(s.config.Host, fmt.Sprint(s.config.Port))
}

// openBrowser opens the default browser to the given URL.
func openBrowser(url string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	return cmd.Start()
}
