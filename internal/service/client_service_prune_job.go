package service

import (
	"context"
	"sync"
	"time"
)

type clientPruneJob struct {
	historyService ClientHistoryService

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientPruneJob creates a clientPruneJob that calls historyService.Prune
// on a ticker. The job is idle until Start is called.
func NewClientPruneJob(historyService ClientHistoryService) ClientPruneJob {
	return &clientPruneJob{historyService: historyService}
}

// Start implements ClientPruneJob. It stops any previously running job, then
// launches a background goroutine that prunes every interval. If interval is
// zero or negative it defaults to 10 minutes. The goroutine exits when ctx is
// cancelled or Stop is called.
func (j *clientPruneJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 10 * time.Minute
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
				_, _ = j.historyService.Prune(jobCtx)
			}
		}
	}()
}

// Stop implements ClientPruneJob. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call when
// the job is not running (no-op in that case).
func (j *clientPruneJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
