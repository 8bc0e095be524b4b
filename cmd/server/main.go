package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/securecookie"

	specpkg "github.com/ligafc/matchday/api"
	"github.com/ligafc/matchday/internal/api"
	"github.com/ligafc/matchday/internal/config"
	"github.com/ligafc/matchday/internal/league"
	"github.com/ligafc/matchday/internal/session"
	"github.com/ligafc/matchday/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	setupLogger(cfg.LogLevel)

	sessionKey, err := loadKey("SESSION_KEY", cfg.SessionKey, 64)
	if err != nil {
		slog.Error("invalid session key", "error", err)
		os.Exit(1)
	}

	var csrfKey []byte
	if cfg.CSRFEnabled {
		csrfKey, err = loadKey("CSRF_KEY", cfg.CSRFKey, 32)
		if err != nil {
			slog.Error("invalid CSRF key", "error", err)
			os.Exit(1)
		}
		csrfKey = csrfKey[:32]
	} else {
		slog.Warn("CSRF protection disabled")
	}

	notice, err := web.RenderMarkdown(cfg.LeagueNotice)
	if err != nil {
		slog.Error("failed to render league notice", "error", err)
		os.Exit(1)
	}

	views, err := web.NewRenderer(web.Site{Title: cfg.LeagueTitle, Notice: notice})
	if err != nil {
		slog.Error("failed to load page templates", "error", err)
		os.Exit(1)
	}

	sentinel := league.Team{
		Name:    cfg.SentinelName,
		City:    cfg.SentinelCity,
		Contact: cfg.SentinelContact,
	}
	sessions := session.NewManager(
		func() *league.State { return league.NewState(sentinel) },
		session.WithTTL(cfg.SessionTTL),
		session.WithMaxSessions(cfg.SessionMax),
	)

	cookies := securecookie.New(sessionKey, nil)
	cookies.MaxAge(int(cfg.SessionTTL / time.Second))

	router := api.NewRouter(api.RouterDeps{
		Sessions:     sessions,
		Cookies:      cookies,
		CookieSecure: cfg.CookieSecure,
		CSRFKey:      csrfKey,
		Views:        views,
		Clock:        time.Now,
		Version:      cfg.Version,
		OpenAPISpec:  specpkg.OpenAPISpec,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go sessions.Start(ctx, cfg.SessionSweepInterval)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting matchday server", "port", cfg.Port, "version", cfg.Version, "sentinel", sentinel.Name)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutting down server", "signal", sig.String())
	case err := <-serverErr:
		slog.Error("server error", "error", err)
		os.Exit(1)
	}

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully", "sessionsDiscarded", sessions.Count())
}

func setupLogger(level string) {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}

// loadKey decodes a hex key from configuration. An empty value yields a random
// key of the given length, so sessions do not survive a restart.
func loadKey(name, value string, length int) ([]byte, error) {
	if value == "" {
		slog.Info("no key configured; generating a random one", "key", name)
		key := securecookie.GenerateRandomKey(length)
		if key == nil {
			return nil, fmt.Errorf("generating %s", name)
		}
		return key, nil
	}

	key, err := hex.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", name, err)
	}
	if len(key) < 32 {
		return nil, fmt.Errorf("%s must be at least 32 bytes, got %d", name, len(key))
	}
	return key, nil
}
