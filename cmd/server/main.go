package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"advisorqa/internal/catalog"
	"advisorqa/internal/config"
	"advisorqa/internal/db"
	"advisorqa/internal/jobs"
	"advisorqa/internal/logging"
	"advisorqa/internal/metrics"
	"advisorqa/internal/models"
	"advisorqa/internal/qa"
	"advisorqa/internal/server"
	"advisorqa/internal/store"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.Load()
	logging.Setup(logging.Config{
		Level: cfg.LogLevel,
		File:  cfg.LogFile,
		JSON:  !cfg.IsDev(),
	})
	log := logging.ForComponent(logging.CompServer)

	seed, err := loadCatalog(cfg)
	if err != nil {
		fatal(log, "failed to load answer catalog", err)
	}

	st, err := openStore(ctx, cfg, seed)
	if err != nil {
		fatal(log, "failed to open store", err)
	}
	defer st.Close()

	metrics.Init(st)

	svc := qa.NewService(st)

	srv := server.New(cfg)
	if err := srv.RegisterRoutes(ctx, st, svc); err != nil {
		fatal(log, "failed to register routes", err)
	}

	go jobs.NewReviewMonitor(st, cfg.ReviewMonitorInterval, cfg.ReviewQueueAlert).Start(ctx)

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			log.Error("server error", slog.String("error", err.Error()))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	cancel()
	if err := srv.Shutdown(); err != nil {
		log.Error("server forced to shutdown", slog.String("error", err.Error()))
	}
	log.Info("server exited")
}

func loadCatalog(cfg *config.Config) ([]models.Answer, error) {
	answers, err := config.LoadCatalogFile(cfg.CatalogFile)
	if err != nil {
		return nil, err
	}
	if answers == nil {
		return catalog.Default(), nil
	}
	return answers, nil
}

// openStore returns the Postgres store when DATABASE_URL is set, otherwise
// an in-memory store. Either way the catalog is seeded.
func openStore(ctx context.Context, cfg *config.Config, seed []models.Answer) (store.Store, error) {
	log := logging.ForComponent(logging.CompStore)

	if !cfg.UsesDatabase() {
		log.Info("using in-memory store", slog.Int("answers", len(seed)))
		mem, err := store.NewMemory(seed)
		if err != nil {
			return nil, err
		}
		return mem, nil
	}

	database, err := db.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		database.Close()
		return nil, err
	}
	log.Info("migrations completed successfully")

	if err := database.SeedAnswers(ctx, seed); err != nil {
		database.Close()
		return nil, err
	}
	log.Info("using postgres store", slog.Int("seed_answers", len(seed)))
	return database, nil
}

func fatal(log *slog.Logger, msg string, err error) {
	log.Error(msg, slog.String("error", err.Error()))
	os.Exit(1)
}
