package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hanaburkart/portfolio/internal/config"
	"github.com/hanaburkart/portfolio/internal/content"
	"github.com/hanaburkart/portfolio/internal/logger"
	"github.com/hanaburkart/portfolio/internal/platform/workdir"
	"github.com/hanaburkart/portfolio/internal/prefs"
	"github.com/hanaburkart/portfolio/internal/sshserver"
	"github.com/hanaburkart/portfolio/internal/theme"
	"github.com/hanaburkart/portfolio/internal/tui"
	"github.com/hanaburkart/portfolio/internal/tui/style"
	"github.com/hanaburkart/portfolio/internal/typewriter"
	"golang.org/x/term"
)

// Globals are flags shared by every command.
type Globals struct {
	LogLevel string `flag:"" default:"info" env:"LOG_LEVEL" help:"Log level (debug, info, warn, error)"`
}

// CLI defines the portfolio command structure.
type CLI struct {
	Globals

	// Default TUI command (runs when no subcommand given)
	TUI TUICmd `cmd:"" default:"withargs" help:"Browse the portfolio in the terminal"`

	// Subcommands
	SSH   SSHCmd   `cmd:"" name:"ssh" help:"Serve the portfolio TUI over SSH"`
	Theme ThemeCmd `cmd:"" help:"Manage the stored theme preference"`
	Type  TypeCmd  `cmd:"" help:"Run the phrase typewriter on a single terminal line"`
}

// PrefsFlags select where the theme preference is stored.
type PrefsFlags struct {
	PrefsBackend string `flag:"" default:"file" enum:"file,sqlite,keyring,memory" env:"PREFS_BACKEND" help:"Preference store: file, sqlite, keyring or memory"`
	PrefsPath    string `flag:"" optional:"" env:"PREFS_PATH" help:"Preference file (default: prefs.json or prefs.db in the work dir)"`
}

// ThemeFlags configure how the theme is resolved.
type ThemeFlags struct {
	PrefsFlags  `embed:""`
	SystemTheme string `flag:"" default:"auto" enum:"auto,dark,light" env:"SYSTEM_THEME" help:"System theme source: auto (desktop portal or terminal), dark or light"`
}

// open builds a controller over the configured store and system signal.
// The returned cleanup releases both.
func (f ThemeFlags) open(log *slog.Logger, opts ...theme.Option) (*theme.Controller, func(), error) {
	store, closer, err := openStore(f.PrefsBackend, f.PrefsPath)
	if err != nil {
		return nil, nil, err
	}

	sig, closeSignal := theme.DetectSignal(f.SystemTheme, log)

	opts = append([]theme.Option{theme.WithLogger(log)}, opts...)
	controller := theme.NewController(store, sig, opts...)

	cleanup := func() {
		if err := closeSignal(); err != nil {
			log.Debug("Failed to close system theme signal", "error", err)
		}
		if err := closer.Close(); err != nil {
			log.Warn("Failed to close preference store", "error", err)
		}
	}

	return controller, cleanup, nil
}

// TUICmd is the default command that runs the TUI.
type TUICmd struct {
	ThemeFlags `embed:""`
	Content    string `flag:"" optional:"" env:"CONTENT_PATH" help:"Profile YAML (default: built-in profile)"`
}

// Run executes the TUI command.
func (c *TUICmd) Run(g *Globals) error {
	// Ensure working directory exists
	if err := workdir.Prep(); err != nil {
		return fmt.Errorf("failed to prepare working directory: %w", err)
	}

	// bubbletea owns the terminal, so logs go to a file
	logPath, err := workdir.FilePath(workdir.LogFile)
	if err != nil {
		return fmt.Errorf("failed to determine log path: %w", err)
	}
	//nolint:gosec // Path is built from the user's config dir
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer logFile.Close()

	log := logger.SetupCLILogger(logFile, g.LogLevel)

	profile, err := loadProfile(c.Content)
	if err != nil {
		return err
	}

	events := make(chan theme.Mode, 1)
	controller, cleanup, err := c.open(log,
		theme.WithApplier(tui.ThemeApplier(events)),
		theme.WithApplier(func(mode theme.Mode) {
			log.Info("Theme applied", "mode", mode.String())
		}),
	)
	if err != nil {
		return err
	}
	defer cleanup()

	release := controller.Watch()
	defer release()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer cancel()

	p := tea.NewProgram(
		tui.New(tui.Config{
			Profile:     profile,
			Controller:  controller,
			ThemeEvents: events,
			Cancel:      cancel,
		}),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}

// SSHCmd serves the TUI over SSH, configured from the environment.
type SSHCmd struct{}

// Run executes the ssh command.
func (c *SSHCmd) Run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logger.SetupLogger(cfg)

	profile, err := loadProfile(cfg.ContentPath)
	if err != nil {
		return err
	}

	runtime, err := sshserver.New(cfg, profile, log)
	if err != nil {
		return err
	}

	return runtime.Run(context.Background())
}

// ThemeCmd groups theme preference subcommands.
type ThemeCmd struct {
	Show   ThemeShowCmd   `cmd:"" help:"Show how the theme resolves"`
	Set    ThemeSetCmd    `cmd:"" help:"Store an explicit theme"`
	Toggle ThemeToggleCmd `cmd:"" help:"Flip the theme and store it"`
	Clear  ThemeClearCmd  `cmd:"" help:"Forget the stored theme and follow the system"`
}

// ThemeShowCmd prints the resolved preference.
type ThemeShowCmd struct {
	ThemeFlags `embed:""`
}

// Run executes the show command.
func (c *ThemeShowCmd) Run(g *Globals) error {
	controller, cleanup, err := c.open(logger.SetupCLILogger(os.Stderr, g.LogLevel))
	if err != nil {
		return err
	}
	defer cleanup()

	printPreference(os.Stdout, controller.Initialize())

	return nil
}

// ThemeSetCmd stores an explicit theme.
type ThemeSetCmd struct {
	ThemeFlags `embed:""`
	Mode       string `arg:"" enum:"light,dark" help:"Theme to store (light or dark)"`
}

// Run executes the set command.
func (c *ThemeSetCmd) Run(g *Globals) error {
	mode, err := theme.ParseMode(c.Mode)
	if err != nil {
		return err
	}

	controller, cleanup, err := c.open(logger.SetupCLILogger(os.Stderr, g.LogLevel))
	if err != nil {
		return err
	}
	defer cleanup()

	pref, err := controller.Set(mode)
	if err != nil {
		return fmt.Errorf("failed to set theme: %w", err)
	}
	printPreference(os.Stdout, pref)

	return nil
}

// ThemeToggleCmd flips the stored theme.
type ThemeToggleCmd struct {
	ThemeFlags `embed:""`
}

// Run executes the toggle command.
func (c *ThemeToggleCmd) Run(g *Globals) error {
	controller, cleanup, err := c.open(logger.SetupCLILogger(os.Stderr, g.LogLevel))
	if err != nil {
		return err
	}
	defer cleanup()

	printPreference(os.Stdout, controller.Toggle())

	return nil
}

// ThemeClearCmd removes the stored theme.
type ThemeClearCmd struct {
	ThemeFlags `embed:""`
}

// Run executes the clear command.
func (c *ThemeClearCmd) Run(g *Globals) error {
	controller, cleanup, err := c.open(logger.SetupCLILogger(os.Stderr, g.LogLevel))
	if err != nil {
		return err
	}
	defer cleanup()

	printPreference(os.Stdout, controller.Clear())

	return nil
}

// TypeCmd runs the typewriter on one terminal line.
type TypeCmd struct {
	ThemeFlags `embed:""`
	Content    string        `flag:"" optional:"" env:"CONTENT_PATH" help:"Profile YAML (default: built-in profile)"`
	Duration   time.Duration `flag:"" default:"0s" help:"Stop after this long (0 runs until interrupted)"`
	Typing     time.Duration `flag:"" default:"100ms" help:"Delay per typed character"`
	Deleting   time.Duration `flag:"" default:"50ms" help:"Delay per deleted character"`
	Pause      time.Duration `flag:"" default:"2s" help:"Pause on the complete phrase"`
}

// Run executes the type command.
func (c *TypeCmd) Run(g *Globals) error {
	log := logger.SetupCLILogger(os.Stderr, g.LogLevel)

	profile, err := loadProfile(c.Content)
	if err != nil {
		return err
	}
	if len(profile.Phrases) == 0 {
		fmt.Println("no phrases to type")
		return nil
	}

	controller, cleanup, err := c.open(log)
	if err != nil {
		return err
	}
	defer cleanup()
	styles := style.New(nil, controller.Initialize().Effective)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if c.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Duration)
		defer cancel()
	}

	var mu sync.Mutex
	tty := term.IsTerminal(int(os.Stdout.Fd()))
	prefix := styles.Text.Render(profile.Tagline + " ")
	draw := func(text string) {
		mu.Lock()
		defer mu.Unlock()
		if !tty {
			fmt.Println(profile.Tagline + " " + text)
			return
		}
		// \r plus erase-line redraws in place
		fmt.Printf("\r\x1b[K%s%s%s", prefix, styles.Accent.Render(text), styles.Cursor.Render("|"))
	}

	draw("")
	runner := typewriter.Start(profile.Phrases,
		typewriter.WithSpeeds(typewriter.Speeds{Typing: c.Typing, Deleting: c.Deleting, Pause: c.Pause}),
		typewriter.WithOnChange(draw),
	)

	<-ctx.Done()
	runner.Stop()

	mu.Lock()
	if tty {
		fmt.Println()
	}
	mu.Unlock()

	return nil
}

func main() {
	cli := &CLI{} //nolint:exhaustruct // Kong fills in command fields
	ctx := kong.Parse(cli,
		kong.Name("portfolio"),
		kong.Description("Hana Burkart's portfolio in the terminal."),
		kong.UsageOnError(),
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
	os.Exit(0)
}

// openStore opens the preference store, defaulting file-backed stores to
// the work dir.
func openStore(backend, path string) (prefs.Store, io.Closer, error) {
	if path == "" {
		var name string
		switch backend {
		case prefs.BackendFile, "":
			name = workdir.PrefsFile
		case prefs.BackendSQLite:
			name = workdir.PrefsDB
		}

		if name != "" {
			if err := workdir.Prep(); err != nil {
				return nil, nil, fmt.Errorf("failed to prepare working directory: %w", err)
			}
			p, err := workdir.FilePath(name)
			if err != nil {
				return nil, nil, err
			}
			path = p
		}
	}

	store, closer, err := prefs.Open(backend, path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open preference store: %w", err)
	}
	return store, closer, nil
}

// loadProfile loads and checks the profile. Missing phrases are allowed:
// the typewriter then renders nothing.
func loadProfile(path string) (content.Profile, error) {
	profile, err := content.Load(path)
	if err != nil {
		return content.Profile{}, err
	}
	if err := profile.Validate(); err != nil && !errors.Is(err, content.ErrNoPhrases) {
		return content.Profile{}, fmt.Errorf("invalid profile: %w", err)
	}
	return profile, nil
}

func printPreference(w io.Writer, p theme.Preference) {
	explicit := "none"
	if p.HasExplicit() {
		explicit = p.Explicit.String()
	}
	system := "light"
	if p.SystemPrefersDark {
		system = "dark"
	}

	fmt.Fprintf(w, "theme:    %s\n", p.Effective)
	fmt.Fprintf(w, "explicit: %s\n", explicit)
	fmt.Fprintf(w, "system:   %s\n", system)
}
