package notify

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	notifydb "github.com/clubdesk/clubdesk/go/internal/notify/db"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// WorkerConfig tunes the outbox polling loop
type WorkerConfig struct {
	PollInterval time.Duration
	BatchSize    int32
}

// DefaultWorkerConfig returns the polling defaults
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		PollInterval: 5 * time.Second,
		BatchSize:    100,
	}
}

// Worker drains the notification outbox to a Publisher. Claiming and
// marking happen in one transaction per batch, so a crashed worker leaves
// its batch unclaimed for the next poll.
type Worker struct {
	db        *sql.DB
	publisher Publisher
	config    WorkerConfig

	mu       sync.Mutex
	running  bool
	stopChan chan struct{}
	wg       sync.WaitGroup
}

// NewWorker creates an outbox worker over a shared database handle
func NewWorker(database *sql.DB, publisher Publisher, cfg WorkerConfig) *Worker {
	return &Worker{
		db:        database,
		publisher: publisher,
		config:    cfg,
		stopChan:  make(chan struct{}),
	}
}

// Start launches the polling loop
func (w *Worker) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return fmt.Errorf("outbox worker already running")
	}
	w.running = true
	w.mu.Unlock()

	w.wg.Add(1)
	go w.run(ctx)

	log.Info().
		Dur("poll_interval", w.config.PollInterval).
		Int32("batch_size", w.config.BatchSize).
		Msg("notification worker started")
	return nil
}

// Stop halts the polling loop and waits for the in-flight batch
func (w *Worker) Stop() error {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return fmt.Errorf("outbox worker not running")
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopChan)
	w.wg.Wait()

	log.Info().Msg("notification worker stopped")
	return nil
}

func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	ticker := time.NewTicker(w.config.PollInterval)
	defer ticker.Stop()

	// Drain immediately on start
	w.processBatch(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopChan:
			return
		case <-ticker.C:
			w.processBatch(ctx)
		}
	}
}

func (w *Worker) processBatch(ctx context.Context) {
	tx, err := w.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error().Err(err).Msg("failed to begin outbox transaction")
		return
	}
	defer func() {
		_ = tx.Rollback()
	}()

	repo := NewRepository(notifydb.New(w.db)).WithTx(tx)
	batch, err := repo.FetchUnsent(ctx, w.config.BatchSize)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch unsent notifications")
		return
	}
	if len(batch) == 0 {
		return
	}

	sent := make([]uuid.UUID, 0, len(batch))
	for _, n := range batch {
		if err := w.publisher.Publish(ctx, n); err != nil {
			log.Error().Err(err).
				Str("notification_id", n.ID.String()).
				Msg("failed to publish notification")
			// Unsent rows stay claimed until the tx ends, then retry on
			// the next poll.
			break
		}
		sent = append(sent, n.ID)
	}
	if len(sent) == 0 {
		return
	}

	if err := repo.MarkSent(ctx, sent); err != nil {
		log.Error().Err(err).Msg("failed to mark notifications sent")
		return
	}
	if err := tx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit outbox batch")
		return
	}

	log.Info().Int("count", len(sent)).Msg("published notifications")
}
