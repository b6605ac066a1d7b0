package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"callscreen_backend/internal/callevent"
	"callscreen_backend/internal/directory"
	"callscreen_backend/internal/events"
	apphttp "callscreen_backend/internal/http"
	"callscreen_backend/internal/ingest"
	"callscreen_backend/internal/notify"
	"callscreen_backend/platform/config"
	"callscreen_backend/platform/logger"
	"callscreen_backend/platform/validator"

	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	// Event bus for decoupled communication between modules
	eventBus := events.NewInMemoryBus(log)

	// Shared validator instance for dependency injection
	val := validator.New()

	// The client directory is the only application state; it lives in
	// memory and is rebuilt wholesale on each upload.
	dir := directory.New()

	sender, err := notify.NewSender(cfg, log)
	if err != nil {
		log.Error("failed to initialize telegram sender", "error", err)
		panic("failed to initialize telegram sender: " + err.Error())
	}
	if !sender.Configured() {
		log.Warn("telegram channel not configured, notifications disabled")
	} else {
		log.Info("telegram channel initialized", "chat_id", cfg.TelegramChatID)
	}

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	notifyModule := notify.NewModule(sender, dir, cfg, val, log)
	notifyModule.RegisterHandlers(eventBus)

	app := &apphttp.App{
		Config:    cfg,
		Logger:    log,
		Directory: dir,
		Notifier:  sender,
		Modules: []apphttp.Module{
			callevent.NewModule(dir, eventBus, log),
			ingest.NewModule(dir, eventBus, cfg, val, log),
			notifyModule,
		},
	}

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           apphttp.NewRouter(app),
		ReadHeaderTimeout: 10 * time.Second,
	}

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		log.Info("http server listening", "addr", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if cfg.KeepAlive {
		group.Go(func() error {
			return keepAlive(groupCtx, log, cfg.KeepAlivePing)
		})
	}

	if err := group.Wait(); err != nil {
		log.Error("server exited with error", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

// keepAlive logs a heartbeat so the hosting platform's idle detection
// never puts the instance to sleep between calls.
func keepAlive(ctx context.Context, log *logger.Logger, interval time.Duration) error {
	if interval <= 0 {
		interval = 10 * time.Minute
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			log.Info("keep-alive ping")
		}
	}
}
