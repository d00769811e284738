package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/jwanderson/weddingsite/internal/api"
	"github.com/jwanderson/weddingsite/internal/config"
	"github.com/jwanderson/weddingsite/internal/repository"
	"github.com/jwanderson/weddingsite/internal/repository/mem"
	"github.com/jwanderson/weddingsite/internal/repository/postgres"
	"github.com/jwanderson/weddingsite/internal/repository/sheets"
	"github.com/jwanderson/weddingsite/internal/service"
	"github.com/jwanderson/weddingsite/pkg/logger"
)

func main() {
	// A local .env is a convenience, not a requirement; hosted
	// environments inject real variables.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Could not load .env file: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	l := logger.New(cfg.LogLevel)
	l.Info("Starting wedding site API...")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	parties, responses, cleanup, err := buildStores(ctx, cfg, l)
	if err != nil {
		l.Fatalf("Failed to initialize %s store: %v", cfg.StoreBackend, err)
	}
	defer cleanup()

	svc := service.New(l, parties, responses)
	server := api.NewServer(svc, l)

	httpServer := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: server.Handler(),
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		l.Info("Received shutdown signal...")
		cancel()
	}()

	go func() {
		l.Infof("HTTP server listening on :%s (store=%s, write_mode=%s)",
			cfg.Port, cfg.StoreBackend, cfg.WriteMode)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			l.Errorf("HTTP server error: %v", err)
			cancel()
		}
	}()

	<-ctx.Done()

	l.Info("Shutting down HTTP server...")
	httpServer.Close()

	l.Info("Wedding site API stopped")
}

// buildStores constructs the party and response stores for the
// configured backend. The returned cleanup releases any held
// connections; it is a no-op for backends without them.
func buildStores(ctx context.Context, cfg *config.Config, l *logrus.Logger) (repository.PartyStore, repository.ResponseStore, func(), error) {
	switch cfg.StoreBackend {
	case config.StoreSheets:
		client, err := sheets.NewClient(ctx, sheets.Config{
			SpreadsheetID: cfg.SpreadsheetID,
			ClientEmail:   cfg.SheetsClientEmail,
			PrivateKey:    cfg.SheetsPrivateKey,
			WriteMode:     cfg.WriteMode,
		})
		if err != nil {
			return nil, nil, nil, err
		}
		return client, client, func() {}, nil

	case config.StorePostgres:
		db, err := config.NewDatabase(cfg.DatabaseURL, l)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := db.Migrate("migrations"); err != nil {
			db.Close()
			return nil, nil, nil, err
		}
		return postgres.NewPartyStore(db.DB), postgres.NewResponseStore(db.DB, cfg.WriteMode), func() { db.Close() }, nil

	case config.StoreMem:
		store := mem.NewStore(cfg.WriteMode, mem.Seed()...)
		return store, store, func() {}, nil
	}

	return nil, nil, nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
}
