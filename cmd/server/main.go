package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aristath/options-sentinel/internal/config"
	"github.com/aristath/options-sentinel/internal/database"
	"github.com/aristath/options-sentinel/internal/domain"
	"github.com/aristath/options-sentinel/internal/modules/classification"
	"github.com/aristath/options-sentinel/internal/modules/market"
	"github.com/aristath/options-sentinel/internal/modules/portfolio"
	"github.com/aristath/options-sentinel/internal/modules/positions"
	"github.com/aristath/options-sentinel/internal/modules/strategy"
	"github.com/aristath/options-sentinel/internal/modules/triage"
	"github.com/aristath/options-sentinel/internal/rules"
	"github.com/aristath/options-sentinel/internal/scheduler"
	"github.com/aristath/options-sentinel/internal/server"
	"github.com/aristath/options-sentinel/pkg/logger"
)

func main() {
	// Load configuration first so the logger honors LOG_LEVEL
	cfg, err := config.Load()
	if err != nil {
		fallback := logger.New(logger.Config{Level: "info", Pretty: true})
		fallback.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.DevMode,
	})

	log.Info().Msg("Starting Options Sentinel")

	// Trading rules (YAML overrides, defaults otherwise)
	tradingRules, err := rules.Load(cfg.RulesPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load trading rules")
	}

	// Metrics snapshot store
	db, err := database.New(cfg.MetricsDBPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open metrics database")
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("Failed to run migrations")
	}

	// Pipeline wiring: chains are built once and shared read-only
	provider := market.NewProvider(db, market.NewHistoryDB(cfg.HistoryDir, log), log)
	service := portfolio.NewService(
		classification.NewDefaultChain(log),
		strategy.NewResolver(log),
		triage.NewDefaultChain(log, tradingRules),
		provider,
		domain.PortfolioContext{
			NetLiquidity:      cfg.NetLiquidity,
			BetaWeightedDelta: cfg.BetaWeightedDelta,
		},
		log,
	)

	cache := portfolio.NewReportCache()
	refresh := portfolio.NewRefreshJob(positions.NewLoader(log), cfg.PositionsPath, service, cache, log)

	// Scheduler
	sched := scheduler.New(log)
	sched.Start()
	defer sched.Stop()

	if err := sched.AddJob(cfg.RefreshSchedule, refresh); err != nil {
		log.Fatal().Err(err).Msg("Failed to register refresh job")
	}
	if err := sched.RunNow(refresh); err != nil {
		log.Warn().Err(err).Msg("Initial triage run failed; serving without a report")
	}

	// HTTP server
	srv := server.New(server.Config{
		Port:      cfg.Port,
		Log:       log,
		Cache:     cache,
		Refresher: refresh,
		DevMode:   cfg.DevMode,
	})

	go func() {
		if err := srv.Start(); err != nil {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	log.Info().Int("port", cfg.Port).Msg("Server started successfully")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server stopped")
}
