package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-keep-vault/internal/logger"
)

type saveJob struct {
	vaultService VaultService
	logger       *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewSaveJob creates a saveJob that flushes the vault to disk on a ticker
// whenever the service reports unsaved changes. Bursts of mutations between
// ticks coalesce into a single save. The job is idle until Start is called.
func NewSaveJob(vaultService VaultService, log *logger.Logger) SaveJob {
	return &saveJob{vaultService: vaultService, logger: log}
}

// Run implements [SaveJob] (and workers.Worker) by starting the job with
// its default interval.
func (j *saveJob) Run() {
	j.Start(context.Background(), 0)
}

// Start implements [SaveJob]. It stops any previously running job, then
// launches a background goroutine that saves on every tick where the vault
// is dirty. If interval is zero or negative it defaults to 30 seconds. The
// goroutine exits when ctx is cancelled or Stop is called; a pending dirty
// state is flushed once on the way out.
func (j *saveJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 30 * time.Second
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				j.flush(context.Background())
				return
			case <-t.C:
				j.flush(jobCtx)
			}
		}
	}()
}

// Stop implements [SaveJob]. It cancels the background goroutine's context
// and blocks until the goroutine has fully exited, flushing unsaved changes
// first. Safe to call when the job is not running (no-op in that case).
func (j *saveJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// flush saves once if there are unsaved changes. Contention with a
// foreground save is not an error: the other save carries the changes.
func (j *saveJob) flush(ctx context.Context) {
	if !j.vaultService.Dirty() {
		return
	}
	if err := j.vaultService.Save(ctx); err != nil && !errors.Is(err, ErrLockContention) {
		j.logger.Warn().Err(err).Msg("background save failed, will retry on next tick")
	}
}
