// Package sshserver serves the portfolio TUI over SSH.
package sshserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/charmbracelet/wish/logging"
	"github.com/hanaburkart/portfolio/internal/config"
	"github.com/hanaburkart/portfolio/internal/content"
	"github.com/hanaburkart/portfolio/internal/prefs"
	"github.com/hanaburkart/portfolio/internal/theme"
	"github.com/hanaburkart/portfolio/internal/tui"
)

const shutdownTimeout = 10 * time.Second

// Runtime wires config, middleware and the wish server as a testable unit.
type Runtime struct {
	cfg     *config.Config
	profile content.Profile
	logger  *slog.Logger
	server  *ssh.Server
}

// New creates the SSH runtime. The host key is generated at
// cfg.SSHHostKeyPath when missing.
func New(cfg *config.Config, profile content.Profile, logger *slog.Logger) (*Runtime, error) {
	r := &Runtime{
		cfg:     cfg,
		profile: profile,
		logger:  logger,
	}

	server, err := wish.NewServer(
		wish.WithAddress(net.JoinHostPort(cfg.SSHHost, cfg.SSHPort)),
		wish.WithHostKeyPath(cfg.SSHHostKeyPath),
		wish.WithIdleTimeout(cfg.SSHIdleTimeout),
		// Last middleware runs first.
		wish.WithMiddleware(
			bubbletea.Middleware(r.teaHandler),
			activeterm.Middleware(),
			MaxSessionsMiddleware(cfg.SSHMaxSessions, logger),
			logging.MiddlewareWithLogger(slog.NewLogLogger(logger.Handler(), slog.LevelInfo)),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create ssh server: %w", err)
	}
	r.server = server

	return r, nil
}

// Address returns the listen address.
func (r *Runtime) Address() string {
	return r.server.Addr
}

// Run serves until ctx is cancelled or the process is interrupted.
func (r *Runtime) Run(ctx context.Context) error {
	ctx, stopSignals := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := r.server.Shutdown(shutdownCtx); err != nil {
			r.logger.Error("SSH server shutdown failed", "error", err)
		}
	}()

	r.logger.Info("SSH server listening",
		"address", r.Address(),
		"host_key_path", r.cfg.SSHHostKeyPath,
		"idle_timeout", r.cfg.SSHIdleTimeout,
		"max_sessions", r.cfg.SSHMaxSessions,
	)

	err := r.server.ListenAndServe()
	if err == nil || errors.Is(err, ssh.ErrServerClosed) {
		return nil
	}
	return fmt.Errorf("ssh server failed: %w", err)
}

func (r *Runtime) teaHandler(s ssh.Session) (tea.Model, []tea.ProgramOption) {
	logger := r.logger.With("user", s.User(), "remote", s.RemoteAddr().String())
	sess := r.newSession(bubbletea.MakeRenderer(s), s.Context().Done(), logger)

	return sess.model, []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}
}

// session is the per-connection state.
type session struct {
	model      tui.Model
	controller *theme.Controller
	signal     *theme.ValueSignal
}

// newSession builds a controller and model for one client. Remote clients
// cannot persist a preference, so the override lives in memory for the
// session. The subscription is released when done closes.
func (r *Runtime) newSession(renderer *lipgloss.Renderer, done <-chan struct{}, logger *slog.Logger) session {
	signal := theme.NewValueSignal(renderer.HasDarkBackground())
	events := make(chan theme.Mode, 1)

	controller := theme.NewController(prefs.NewMemory(), signal,
		theme.WithLogger(logger),
		theme.WithApplier(tui.ThemeApplier(events)),
	)
	release := controller.Watch()

	go func() {
		<-done
		release()
		close(events)
		logger.Debug("SSH session closed")
	}()

	model := tui.New(tui.Config{
		Profile:     r.profile,
		Controller:  controller,
		Renderer:    renderer,
		ThemeEvents: events,
	})

	return session{model: model, controller: controller, signal: signal}
}

// MaxSessionsMiddleware rejects sessions beyond limit concurrent ones.
func MaxSessionsMiddleware(limit int, logger *slog.Logger) wish.Middleware {
	if limit < 1 {
		limit = 1
	}
	slots := make(chan struct{}, limit)

	return func(next ssh.Handler) ssh.Handler {
		return func(s ssh.Session) {
			select {
			case slots <- struct{}{}:
			default:
				logger.Warn("Rejecting SSH session, limit reached", "limit", limit)
				wish.Fatalln(s, "too many sessions, try again later")
				return
			}
			defer func() { <-slots }()

			next(s)
		}
	}
}
