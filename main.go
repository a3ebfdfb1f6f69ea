package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"finboard/internal/api"
	"finboard/internal/catalog"
	"finboard/internal/portfolio"
	"finboard/pkg/config"
	"finboard/pkg/db"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		logger.Fatal("catalog", zap.Error(err))
	}
	logger.Info("catalog loaded", zap.Int("symbols", cat.Len()))

	var database *db.Database
	if cfg.Storage.Backend == portfolio.BackendSQLite {
		database, err = db.New(cfg.Storage.DBPath)
		if err != nil {
			logger.Fatal("db", zap.Error(err))
		}
		defer database.Close()
		if err := db.ApplyMigrations(database); err != nil {
			logger.Fatal("db migrations", zap.Error(err))
		}
	}

	store, err := portfolio.NewStore(portfolio.Options{
		Backend:  cfg.Storage.Backend,
		FilePath: cfg.Storage.PortfolioPath,
		Database: database,
	})
	if err != nil {
		logger.Fatal("portfolio store", zap.Error(err))
	}
	logger.Info("portfolio store ready", zap.String("backend", cfg.Storage.Backend))

	server := api.NewServer(cat, store, logger, api.Options{
		StaticDir:       cfg.StaticDir,
		MaxBodyBytes:    cfg.HTTP.MaxBodyBytes,
		RateLimitPerSec: cfg.HTTP.RateLimitPerSec,
		RateLimitBurst:  cfg.HTTP.RateLimitBurst,
	})

	httpServer := &http.Server{Addr: ":" + cfg.Port, Handler: server.Router}
	go func() {
		logger.Info("http listening", zap.String("port", cfg.Port))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("http", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = lvl
	return zcfg.Build()
}
