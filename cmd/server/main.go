package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/maxviazov/fantasy-stats-service/internal/config"
	"github.com/maxviazov/fantasy-stats-service/internal/handler"
	"github.com/maxviazov/fantasy-stats-service/internal/logger"
	"github.com/maxviazov/fantasy-stats-service/internal/repository"
	"github.com/maxviazov/fantasy-stats-service/internal/repository/postgres"
	"github.com/maxviazov/fantasy-stats-service/internal/service"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	flag.Parse()

	// Load application config
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("❌ Config loading failed: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(&cfg.Logger)
	if err != nil {
		log.Fatalf("❌ Logger initialization failed: %v", err)
	}

	if err := run(cfg, appLogger); err != nil {
		appLogger.Error().Err(err).Msg("service stopped with error")
		os.Exit(1)
	}
}

func run(cfg *config.Config, appLogger zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo, err := repository.New(ctx, cfg, &appLogger)
	if err != nil {
		return fmt.Errorf("postgres connection failed: %w", err)
	}
	defer repo.Close()
	pool := repo.Pool()

	if cfg.App.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, appLogger); err != nil {
			return err
		}
	}

	tx := postgres.NewTxManager(pool)
	svcs := handler.Services{
		Players:      service.NewPlayerService(tx, postgres.NewPlayerRepository(pool), appLogger),
		Performances: service.NewPerformanceService(tx, postgres.NewPerformanceRepository(pool), appLogger),
		Leagues:      service.NewLeagueService(tx, postgres.NewLeagueRepository(pool), appLogger),
		Teams:        service.NewTeamService(tx, postgres.NewTeamRepository(pool), appLogger),
		Weeks:        service.NewWeekService(tx, postgres.NewWeekRepository(pool), appLogger),
		Counts:       service.NewCountsService(tx, postgres.NewCountsRepository(pool), appLogger),
	}

	if cfg.App.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := handler.NewRouter(appLogger, postgres.NewPinger(pool), svcs, cfg.App.QueryTimeout)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		appLogger.Info().Str("addr", srv.Addr).Msg("🚀 HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		appLogger.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	appLogger.Info().Msg("✅ Service stopped")
	return nil
}
