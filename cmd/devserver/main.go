package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"parcel/internal/config"
	"parcel/internal/devserver"
	"parcel/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger, err := logging.New(cfg.IsProduction())
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	stub := devserver.New(devserver.Options{StatusStepEvery: 10 * time.Second})

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: stub.Router(),
	}

	go func() {
		logger.Info("devserver listening", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("forced shutdown", zap.Error(err))
	}
	logger.Info("devserver exited")
}
