package loadtest

import (
	"context"
	"time"

	"docloadgen/record"
	"docloadgen/report"
)

// RunReadTest performs one concurrent read pass: cfg.ReadCount find-by-key
// lookups on a pool of cfg.Threads workers. Results are discarded; the pass
// measures latency, not content.
func RunReadTest(ctx context.Context, cfg ScenarioConfig, p Params) error {
	client, err := p.Store.Open(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close(context.Background()) }()

	rec := record.NewRecorder(p.Log, record.OpRead, p.OnTask)
	pool := NewPool(cfg.Threads, p.RateLimit)

	err = pool.Run(ctx, cfg.ReadCount, func(ctx context.Context, worker, index int) error {
		key := TargetKey(index)

		start := time.Now()
		_, findErr := client.FindByKey(ctx, key)
		rec.Task(worker, time.Since(start))
		return findErr
	})
	if err != nil {
		return err
	}

	report.DisplaySummary(rec.Finish())
	return nil
}
