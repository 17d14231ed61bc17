package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bloglist/internal/blog"
	"bloglist/internal/config"
	"bloglist/internal/logger"

	"github.com/getsentry/sentry-go"
)

func main() {
	config.LoadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", slog.Any("err", err))
		os.Exit(1)
	}

	log := logger.New("api", cfg.LogLevel, cfg.LogFile)

	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.SentryDSN,
			Environment: cfg.Environment,
		}); err != nil {
			log.Warn("sentry init failed", slog.Any("err", err))
		}
		defer sentry.Flush(2 * time.Second)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	openCtx, cancel := context.WithTimeout(ctx, cfg.Store.Timeout)
	repo, err := blog.OpenStore(openCtx, cfg.Store)
	cancel()
	if err != nil {
		log.Error("open store",
			slog.String("driver", cfg.Store.Driver),
			slog.String("location", blog.Location(cfg.Store)),
			slog.Any("err", err))
		os.Exit(1)
	}
	log.Info("store connection OK",
		slog.String("driver", cfg.Store.Driver),
		slog.String("location", blog.Location(cfg.Store)))

	service := blog.NewService(repo)

	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           newRouter(ctx, cfg, log, service),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("api server starting", slog.String("addr", cfg.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", slog.Any("err", err))
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown", slog.Any("err", err))
	}
	if err := repo.Close(shutdownCtx); err != nil {
		log.Error("close store", slog.Any("err", err))
	}
}
