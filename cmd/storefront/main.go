package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Skotchmaster/storefront/internal/config"
	"github.com/Skotchmaster/storefront/internal/db"
	"github.com/Skotchmaster/storefront/internal/es"
	"github.com/Skotchmaster/storefront/internal/httpserver"
	"github.com/Skotchmaster/storefront/internal/logging"
	"github.com/Skotchmaster/storefront/internal/mykafka"
	"github.com/Skotchmaster/storefront/internal/repo"
	"github.com/Skotchmaster/storefront/internal/seed"
	"github.com/Skotchmaster/storefront/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("storefront: %v", err)
	}
}

func run() error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	started := time.Now()

	store, closeStore, err := openStore(cfg)
	if err != nil {
		return fmt.Errorf("store: %w", err)
	}
	defer closeStore()

	catalog := service.NewCatalogService(store)

	seedCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	_, err = seed.Run(seedCtx, catalog, seed.Fixtures(), logger)
	cancel()
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	if cfg.ESURL != "" {
		mirrorCatalog(cfg, catalog, logger)
	}

	contact := &service.ContactService{PublishTimeout: 5 * time.Second}
	var producer *mykafka.Producer
	if len(cfg.KafkaBrokers) > 0 {
		producer = mykafka.NewProducer(cfg.KafkaBrokers, cfg.ContactTopic)
		contact.Publisher = producer
		logger.Info("kafka_enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.ContactTopic)
	}
	defer func() {
		contact.Wait()
		if producer != nil {
			if err := producer.Close(); err != nil {
				logger.Warn("kafka_close_failed", "error", err)
			}
		}
	}()

	e := httpserver.NewEcho(logger, cfg.CORSOrigins)
	httpserver.Register(e, &httpserver.Deps{
		CatalogHandler: &httpserver.CatalogHTTP{Svc: catalog},
		ContactHandler: &httpserver.ContactHTTP{Svc: contact},
		HealthHandler:  &httpserver.HealthHTTP{Started: started},
		StaticDir:      cfg.StaticDir,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           e,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		ReadHeaderTimeout: 3 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server_listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	select {
	case err := <-serveErr:
		return fmt.Errorf("listen: %w", err)
	case <-stop:
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server_shutdown_failed", "error", err)
	}
	logger.Info("server_stopped")
	return nil
}

// openStore picks the memory store unless DATABASE_URL is set.
func openStore(cfg config.Config) (repo.Repository, func(), error) {
	if cfg.DatabaseURL == "" {
		slog.Info("store_selected", "kind", "memory")
		return repo.NewMemoryRepo(), func() {}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	gdb, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	closeDB := func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	r := &repo.GormRepo{DB: gdb}
	if err := r.Migrate(ctx); err != nil {
		closeDB()
		return nil, nil, fmt.Errorf("migrate: %w", err)
	}

	slog.Info("store_selected", "kind", gdb.Dialector.Name())
	return r, closeDB, nil
}

// mirrorCatalog indexes the catalog into Elasticsearch. Failures are logged and ignored.
func mirrorCatalog(cfg config.Config, catalog *service.CatalogService, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client, err := es.NewClient(ctx, cfg.ESURL, cfg.ESUser, cfg.ESPassword)
	if err != nil {
		logger.Warn("es_unavailable", "error", err)
		return
	}

	items, err := catalog.AllServices(ctx)
	if err != nil {
		logger.Warn("es_mirror_failed", "error", err)
		return
	}

	m := &es.Mirror{Client: client, Index: cfg.ESIndex}
	n, err := m.IndexServices(ctx, items)
	if err != nil {
		logger.Warn("es_mirror_failed", "indexed", n, "error", err)
		return
	}
	logger.Info("es_mirror_completed", "index", cfg.ESIndex, "indexed", n)
}
