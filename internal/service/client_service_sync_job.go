package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-budget-sync/internal/logger"
	"github.com/MKhiriev/go-budget-sync/models"
)

type clientDrainJob struct {
	queue  SyncQueue
	modes  ModeResolver
	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientDrainJob creates a clientDrainJob that replays the deferred sync
// queue on a ticker. The job is idle until Start is called.
func NewClientDrainJob(queue SyncQueue, modes ModeResolver, log *logger.Logger) ClientDrainJob {
	if log == nil {
		log = logger.Nop()
	}
	return &clientDrainJob{queue: queue, modes: modes, logger: log}
}

// Start implements ClientDrainJob. It stops any previously running job, then
// launches a background goroutine that drains the queue every interval while
// the client is in online mode. If interval is zero or negative it defaults
// to 5 minutes. The goroutine exits when ctx is cancelled or Stop is called.
func (j *clientDrainJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
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
				return
			case <-t.C:
				j.drainOnce(jobCtx)
			}
		}
	}()
}

// Stop implements ClientDrainJob. It cancels the background goroutine's context
// and blocks until the goroutine has fully exited. Safe to call when the job is
// not running (no-op in that case).
func (j *clientDrainJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// drainOnce drains the queue when the client is online and there is at least
// one pending action. Failures are logged, never fatal: the next tick tries
// again with whatever accumulated since.
func (j *clientDrainJob) drainOnce(ctx context.Context) {
	log := j.logger.With().Str("func", "clientDrainJob.drainOnce").Logger()

	mode, err := j.modes.Mode(ctx)
	if err != nil {
		log.Error().Err(err).Msg("resolve mode")
		return
	}
	if mode != models.ModeOnline {
		return
	}

	pending, err := j.queue.Pending(ctx)
	if err != nil {
		log.Error().Err(err).Msg("read pending actions")
		return
	}
	if len(pending) == 0 {
		return
	}

	if err := j.queue.Drain(ctx); err != nil {
		log.Error().Err(err).Int("pending", len(pending)).Msg("drain sync queue")
		return
	}
	log.Info().Int("replayed", len(pending)).Msg("sync queue drained")
}
