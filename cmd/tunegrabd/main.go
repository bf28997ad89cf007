package main

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tunegrab/tunegrab/internal/logger"
	"github.com/tunegrab/tunegrab/internal/server"
	"github.com/tunegrab/tunegrab/internal/youtube"
)

func main() {
	cfg := server.MustLoad()

	log := logger.NewLogger()

	lookup := youtube.NewClient(cfg.YouTube.APIKey)

	s := server.NewService(lookup, cfg, log)

	h := server.NewHandler(s, log)

	r := server.NewRouter(h)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	log.Info("start server", slog.String("host", cfg.Server.Host), slog.String("port", cfg.Server.Port))

	sigint := make(chan os.Signal, 1)
	signal.Notify(sigint, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("failed to start server", slog.String("error", err.Error()))

			os.Exit(1)
		}
	}()

	sig := <-sigint
	log.Info("received signal", slog.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Info("failed to stop server", slog.String("error", err.Error()))
	}
}
