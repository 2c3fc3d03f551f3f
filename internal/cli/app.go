// Package cli wires the Sparkle services into an interactive terminal
// client: a command loop for auth, profile, matches, and settings, plus the
// full-screen swipe view.
package cli

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/mkravets/sparkle/internal/api"
	"github.com/mkravets/sparkle/internal/config"
	"github.com/mkravets/sparkle/internal/discovery"
	"github.com/mkravets/sparkle/internal/logging"
	"github.com/mkravets/sparkle/internal/matches"
	"github.com/mkravets/sparkle/internal/profile"
	"github.com/mkravets/sparkle/internal/session"
	"github.com/mkravets/sparkle/internal/settings"
	"github.com/mkravets/sparkle/internal/token"
)

// App owns every service and the terminal I/O for the command loop.
type App struct {
	config   *config.Config
	log      logging.Logger
	session  *session.Manager
	engine   *discovery.Engine
	profiles *profile.Service
	matches  *matches.Service
	settings *settings.Service

	reader *bufio.Reader
	out    io.Writer
}

// NewApp builds the full object graph: token store, API client, services,
// and the global 401 handler that drops the session from any component's
// request.
func NewApp(cfg *config.Config) (*App, error) {
	logLevel := parseLogLevel(cfg.LogLevel)
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})))

	tokens := token.NewMemoryStore()
	client := api.New(cfg.APIBaseURL, cfg.RequestTimeout, tokens, log)

	sess := session.NewManager(client, tokens, log)
	client.SetUnauthorizedHook(sess.HandleUnauthorized)

	engine := discovery.NewEngine(client, cfg.FeedPageSize, log)

	return &App{
		config:   cfg,
		log:      log,
		session:  sess,
		engine:   engine,
		profiles: profile.NewService(client, log),
		matches:  matches.NewService(client, log),
		settings: settings.NewService(client, engine, log),
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}, nil
}

func parseLogLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Run hydrates the session once and enters the command loop. It returns
// when the user exits or stdin closes.
func (a *App) Run(ctx context.Context) {
	a.session.Hydrate(ctx)
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}
