package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/daehokimm/point-service/internal/api"
	"github.com/daehokimm/point-service/internal/config"
	"github.com/daehokimm/point-service/internal/db"
	"github.com/daehokimm/point-service/internal/logger"
	"github.com/daehokimm/point-service/internal/metrics"
	"github.com/daehokimm/point-service/internal/point"
	"github.com/daehokimm/point-service/internal/repository"
	"github.com/daehokimm/point-service/internal/repository/memory"
	"github.com/daehokimm/point-service/internal/repository/postgres"
	"github.com/daehokimm/point-service/internal/seed"
	"github.com/daehokimm/point-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", "err", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		balances  repository.Balances
		histories repository.Histories
	)
	if cfg.DatabaseURL != "" {
		pool, err := db.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Error("db connect", "err", err)
			os.Exit(1)
		}
		defer pool.Close()

		if cfg.Migrate {
			if err := db.RunMigrations(ctx, pool); err != nil {
				log.Error("migrations", "err", err)
				os.Exit(1)
			}
		}

		repos := postgres.NewRepositories(pool)
		balances, histories = repos.Balances, repos.Histories
		log.Info("using postgres stores")
	} else {
		balances, histories = memory.NewBalances(), memory.NewHistories()
		log.Info("using in-memory stores")
	}

	metrics.Init()
	svc := point.NewService(balances, histories, log)

	wp := worker.NewPool(4)
	defer wp.Stop()

	if cfg.SeedDemoData {
		if err := seed.Run(ctx, svc, wp, log); err != nil {
			log.Error("seed", "err", err)
			os.Exit(1)
		}
	}

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           api.NewRouter(cfg, svc, log),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server", "err", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}
