package loadtest

import (
	"context"
	"time"

	"docloadgen/record"
	"docloadgen/report"
)

// RunUpdateTest performs one concurrent update pass: cfg.UpdateCount
// field-merge updates on a pool of cfg.Threads workers. Keys use the same
// fold-back scheme as reads, so an update may match nothing; that is a silent
// no-op, not a failure.
func RunUpdateTest(ctx context.Context, cfg ScenarioConfig, p Params) error {
	client, err := p.Store.Open(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close(context.Background()) }()

	rec := record.NewRecorder(p.Log, record.OpUpdate, p.OnTask)
	pool := NewPool(cfg.Threads, p.RateLimit)

	err = pool.Run(ctx, cfg.UpdateCount, func(ctx context.Context, worker, index int) error {
		key := TargetKey(index)

		start := time.Now()
		_, updateErr := client.UpdateByKey(ctx, key)
		rec.Task(worker, time.Since(start))
		return updateErr
	})
	if err != nil {
		return err
	}

	report.DisplaySummary(rec.Finish())
	return nil
}
