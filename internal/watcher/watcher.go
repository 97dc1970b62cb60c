package watcher

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Tick is one unit of periodic work. Errors are logged and retried on the
// next tick, the runner itself never stops on a failing tick.
type Tick func(ctx context.Context) error

// Runner invokes a tick on a fixed interval with single-flight guarding:
// a tick still in flight suppresses the next one instead of stacking. Stop
// waits for the in-flight tick to finish.
type Runner struct {
	name     string
	interval time.Duration
	tick     Tick
	logs     *zap.SugaredLogger

	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

func NewRunner(name string, interval time.Duration, tick Tick, logger *zap.SugaredLogger) *Runner {
	return &Runner{
		name:     name,
		interval: interval,
		tick:     tick,
		logs:     logger,
	}
}

// Start launches the periodic loop. The first tick fires immediately so a
// restart does not wait a full interval to catch up.
func (r *Runner) Start(ctx context.Context) {
	ctx, r.cancel = context.WithCancel(ctx)
	r.done = make(chan struct{})

	go r.run(ctx)

	r.logs.Infow("runner started", "name", r.name, "interval", r.interval)
}

// Stop cancels the loop and blocks until the in-flight tick returns.
func (r *Runner) Stop() {
	r.once.Do(func() {
		if r.cancel == nil {
			return
		}
		r.cancel()
		<-r.done
		r.logs.Infow("runner stopped", "name", r.name)
	})
}

func (r *Runner) run(ctx context.Context) {
	defer close(r.done)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.runOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.runOnce(ctx)
		}
	}
}

func (r *Runner) runOnce(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	if err := r.tick(ctx); err != nil {
		r.logs.Errorw("tick failed, retrying on next interval", "name", r.name, "error", err)
	}
}
