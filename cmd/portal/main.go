package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"wifi-access-portal/internal/config"
	"wifi-access-portal/internal/logger"
	"wifi-access-portal/internal/metrics"
	"wifi-access-portal/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zl := logger.New(cfg)
	defer func() { _ = zl.Sync() }()

	m := metrics.New(prometheus.DefaultRegisterer)
	srv := server.New(cfg, zl, m)

	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()
	go srv.Sessions().Sweep(sweepCtx)

	httpSrv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      srv.Router(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	zl.Info("wifi access portal listening", zap.String("addr", cfg.Addr()))

	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(ctx); err != nil {
		zl.Fatal("graceful shutdown failed", zap.Error(err))
	}
}
