package services

import (
	"context"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Worker fans n independent tasks out over a bounded number of goroutines
// and returns once every task has finished.
type Worker interface {
	Run(ctx context.Context, n int, task func(ctx context.Context, index int))
	Concurrency() int
}

type worker struct {
	concurrency int
}

func NewWorker(concurrency int) Worker {
	if concurrency < 1 {
		concurrency = 1
	}
	return &worker{concurrency: concurrency}
}

func (w *worker) Concurrency() int {
	return w.concurrency
}

// Run implements Worker. Tasks report their own failures; one failing task
// never cancels the others. Tasks not yet started when ctx is cancelled are
// skipped.
func (w *worker) Run(ctx context.Context, n int, task func(ctx context.Context, index int)) {
	var g errgroup.Group
	g.SetLimit(w.concurrency)

	for i := 0; i < n; i++ {
		if ctx.Err() != nil {
			log.Warn().Int("skipped", n-i).Msg("🛑 context cancelled, not starting remaining tasks")
			break
		}
		index := i
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			task(ctx, index)
			return nil
		})
	}

	_ = g.Wait()
}
