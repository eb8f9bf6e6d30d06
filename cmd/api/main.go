// Package main is the entrypoint for the journal API server.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"regexp"
	"strings"

	"github.com/journalapp/journal/internal/auth"
	"github.com/journalapp/journal/internal/config"
	"github.com/journalapp/journal/internal/handler"
	"github.com/journalapp/journal/internal/metrics"
	"github.com/journalapp/journal/internal/repository"
	"github.com/journalapp/journal/internal/server"
	"github.com/journalapp/journal/internal/service"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := initLogger(cfg)

	signer, err := auth.NewSigner(cfg.TokenSecret, cfg.TokenTTL)
	if err != nil {
		logger.Error("invalid token configuration", "error", err)
		os.Exit(1)
	}

	repo, err := repository.New(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error(
			"failed to connect to database",
			slog.String("error", sanitizeError(err, cfg.DatabaseURL)),
			slog.String("database_url", redactURL(cfg.DatabaseURL)),
		)
		os.Exit(1)
	}
	logger.Info("connected to database")

	if cfg.MigrateOnStart {
		applied, err := repo.Migrate(ctx)
		if err != nil {
			logger.Error("failed to apply migrations", slog.String("error", sanitizeError(err, cfg.DatabaseURL)))
			repo.Close()
			os.Exit(1)
		}
		for _, m := range applied {
			logger.Info("migration applied", "version", m.Version, "source", m.Source)
		}
	}

	var (
		recorder metrics.Recorder = metrics.NewNoop()
		exporter http.Handler
	)
	if cfg.MetricsEnabled {
		prom := metrics.NewPrometheus()
		recorder, exporter = prom, prom.Handler()
	}

	accounts := service.NewAccountService(repo, auth.NewHasher(auth.DefaultArgon2Params()), signer, recorder)
	entries := service.NewEntryService(repo, cfg.EntriesScoped, recorder)

	r := handler.NewRouter(handler.RouterConfig{
		Logger:             logger,
		Version:            version,
		Accounts:           accounts,
		Entries:            entries,
		Verifier:           signer,
		DB:                 repo,
		IsDevelopment:      cfg.IsDevelopment(),
		CORSAllowedOrigins: cfg.GetCORSAllowedOrigins(),
		MaxRequestBodySize: cfg.MaxRequestBodySize,
		Recorder:           recorder,
		MetricsExporter:    exporter,
	})

	srv := server.New(r, server.Options{
		Port:            cfg.AppPort,
		ReadTimeout:     cfg.ReadTimeout,
		WriteTimeout:    cfg.WriteTimeout,
		ShutdownTimeout: cfg.ShutdownTimeout,
	}, logger)
	srv.OnShutdown("postgres", func(ctx context.Context) error {
		repo.Close()
		return nil
	})

	logger.Info("starting server",
		"port", cfg.AppPort,
		"env", cfg.AppEnv,
		"entries_scoped", cfg.EntriesScoped,
		"metrics_enabled", cfg.MetricsEnabled,
	)

	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// initLogger initializes the slog logger based on configuration.
func initLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLogLevel(cfg.LogLevel)}

	var h slog.Handler
	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(h).With("service", "journal-api")
	slog.SetDefault(logger)
	return logger
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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

var passwordPattern = regexp.MustCompile(`(?i)password=[^\s]+`)

// redactURL drops the password from a connection URL.
func redactURL(raw string) string {
	if raw == "" {
		return ""
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "[redacted]"
	}

	if parsed.User != nil {
		username := parsed.User.Username()
		if username == "" {
			username = "redacted"
		}
		parsed.User = url.User(username)
	}

	return parsed.String()
}

// sanitizeError replaces any secret that appears in err with its redacted form.
func sanitizeError(err error, secrets ...string) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	for _, secret := range secrets {
		if secret == "" {
			continue
		}
		redacted := redactURL(secret)
		if redacted == "" {
			redacted = "[redacted]"
		}
		msg = strings.ReplaceAll(msg, secret, redacted)
	}

	return passwordPattern.ReplaceAllString(msg, "password=redacted")
}
