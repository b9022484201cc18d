package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/clubdesk/clubdesk/go/internal/notify"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	cfg, err := loadConfig(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	database, err := setupDatabase()
	if err != nil {
		log.Fatalf("Failed to setup database: %v", err)
	}
	defer database.Close()

	if err := runMigrations(database); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	services := setupServices(database, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Outbox relay: NATS JetStream when configured, log-only otherwise.
	var publisher notify.Publisher = notify.LogPublisher{}
	if cfg.Nats.Enabled {
		jsCfg := notify.DefaultJetStreamConfig()
		jsCfg.URL = cfg.Nats.URL
		js, err := notify.NewJetStreamPublisher(jsCfg)
		if err != nil {
			log.Fatalf("Failed to connect to NATS: %v", err)
		}
		defer js.Close()
		publisher = js
	}

	workerCfg := notify.DefaultWorkerConfig()
	workerCfg.PollInterval = cfg.Outbox.PollInterval
	workerCfg.BatchSize = cfg.Outbox.BatchSize
	worker := notify.NewWorker(database, publisher, workerCfg)
	if err := worker.Start(ctx); err != nil {
		log.Fatalf("Failed to start notification worker: %v", err)
	}
	defer func() {
		if err := worker.Stop(); err != nil {
			log.Printf("Failed to stop notification worker: %v", err)
		}
	}()

	server := setupServer(services, cfg)
	go func() {
		log.Printf("Server listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	<-ctx.Done()
	log.Printf("Shutting down")
	if err := server.Shutdown(context.Background()); err != nil {
		log.Printf("Failed to shut down server: %v", err)
	}
}
