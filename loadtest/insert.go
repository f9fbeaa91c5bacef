package loadtest

import (
	"context"
	"errors"
	"time"

	"docloadgen/record"
	"docloadgen/report"
	"docloadgen/store"
)

// ErrNoTemplates reports a write run invoked before any template document was
// loaded. It surfaces before a single task is submitted.
var ErrNoTemplates = errors.New("template documents are not loaded")

// RunInsertTest performs one concurrent write pass: cfg.InsertCount
// single-document inserts on a pool of cfg.Threads workers, each payload a
// clone of the first template under a freshly generated key.
func RunInsertTest(ctx context.Context, cfg ScenarioConfig, p Params) error {
	if p.Templates.Empty() {
		return ErrNoTemplates
	}

	client, err := p.Store.Open(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close(context.Background()) }()

	rec := record.NewRecorder(p.Log, record.OpInsert, p.OnTask)
	pool := NewPool(cfg.Threads, p.RateLimit)

	err = pool.Run(ctx, cfg.InsertCount, func(ctx context.Context, worker, _ int) error {
		doc, cloneErr := p.Templates.CloneFirst()
		if cloneErr != nil {
			return cloneErr
		}
		doc[store.KeyField] = WriteKey()

		start := time.Now()
		insertErr := client.Insert(ctx, doc)
		rec.Task(worker, time.Since(start))
		return insertErr
	})
	if err != nil {
		return err
	}

	report.DisplaySummary(rec.Finish())
	return nil
}
