// Package main is the entry point for the Campus Connect terminal dashboard.
//
// The architecture follows Clean Architecture and DDD:
// - Domain: session, risk, and view logic without external dependencies
// - Application: commands, queries, and event handlers
// - Infrastructure: Campus API client, session stores, event bus
// - Interface: the terminal event loop and presenters
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/krrish-maji/Campus-Connect/config"
	"github.com/krrish-maji/Campus-Connect/internal/application/eventhandler"
	"github.com/krrish-maji/Campus-Connect/internal/domain/session"
	"github.com/krrish-maji/Campus-Connect/internal/domain/view"
	"github.com/krrish-maji/Campus-Connect/internal/infrastructure/external/campus"
	"github.com/krrish-maji/Campus-Connect/internal/infrastructure/messaging"
	"github.com/krrish-maji/Campus-Connect/internal/infrastructure/persistence/memory"
	redisstore "github.com/krrish-maji/Campus-Connect/internal/infrastructure/persistence/redis"
	"github.com/krrish-maji/Campus-Connect/internal/interface/term"
	"github.com/krrish-maji/Campus-Connect/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// MAIN
// ══════════════════════════════════════════════════════════════════════════════

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// ─────────────────────────────────────────────────────────────────────────
	// 1. CONFIGURATION
	// ─────────────────────────────────────────────────────────────────────────
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 2. LOGGING
	// Logs go to stderr; stdout belongs to the dashboard itself.
	// ─────────────────────────────────────────────────────────────────────────
	log := logger.New(logger.Options{
		Output: os.Stderr,
		Level:  logger.ParseLevel(cfg.Observability.LogLevel),
	})
	log.Info("starting Campus Connect dashboard",
		logger.String("env", string(cfg.App.Environment)),
		logger.String("version", cfg.App.Version),
		logger.Policy(cfg.Campus.FallbackPolicy),
	)

	// ─────────────────────────────────────────────────────────────────────────
	// 3. SESSION STORE (Redis, with in-memory fallback)
	// ─────────────────────────────────────────────────────────────────────────
	store, closeStore := buildSessionStore(cfg, log)
	defer closeStore()

	// ─────────────────────────────────────────────────────────────────────────
	// 4. EVENT BUS AND DIAGNOSTIC SUBSCRIBERS
	// ─────────────────────────────────────────────────────────────────────────
	bus := messaging.NewEventBus(log)
	eventhandler.NewOnSessionLifecycleHandler(log).Subscribe(bus)
	eventhandler.NewOnFallbackEngagedHandler(log).Subscribe(bus)
	eventhandler.NewOnViewChangedHandler(log).Subscribe(bus)

	// ─────────────────────────────────────────────────────────────────────────
	// 5. CAMPUS API GATEWAY
	// ─────────────────────────────────────────────────────────────────────────
	client := campus.NewClient(campus.ClientConfig{
		BaseURL: cfg.Campus.BaseURL,
		Timeout: cfg.Campus.RequestTimeout,
		Logger:  log,
	})
	gateway := campus.NewGateway(client, campus.ParseFallbackPolicy(cfg.Campus.FallbackPolicy), log, bus)

	if healthy, err := gateway.Health(ctx); err != nil || !healthy {
		log.Warn("campus API is unreachable, dashboards will use demo data",
			logger.String("base_url", cfg.Campus.BaseURL),
			logger.Err(err),
		)
	}

	// ─────────────────────────────────────────────────────────────────────────
	// 6. APPLICATION STATE AND EVENT LOOP
	// ─────────────────────────────────────────────────────────────────────────
	app := term.NewApp(term.Deps{
		Logger:  log,
		In:      os.Stdin,
		Out:     os.Stdout,
		Session: session.New(session.ThemeLight),
		State:   view.NewState(),
		Store:   store,
		Gateway: gateway,
		Bus:     bus,
		Flags:   cfg.Features,
	})

	log.Info("dashboard ready")
	err = app.Run(ctx)

	log.Info("shutting down")
	return err
}

// buildSessionStore connects to Redis, or falls back to the in-memory store
// when Redis is disabled or unreachable. The dashboard must start either way;
// without Redis the session simply does not survive a restart.
func buildSessionStore(cfg *config.Config, log *logger.Logger) (session.Store, func()) {
	if cfg.Redis.Disabled {
		log.Info("redis disabled, using in-memory session store")
		return memory.NewSessionStore(), func() {}
	}

	store, err := redisstore.NewSessionStore(redisstore.Config{
		Host:         cfg.Redis.Host,
		Port:         cfg.Redis.Port,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
	})
	if err != nil {
		log.Warn("redis unavailable, sessions will not survive restarts", logger.Err(err))
		return memory.NewSessionStore(), func() {}
	}

	log.Info("redis session store connected",
		logger.String("addr", fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port)))
	return store, func() {
		if err := store.Close(); err != nil {
			log.Warn("closing redis connection failed", logger.Err(err))
		}
	}
}
