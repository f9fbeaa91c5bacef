package loadtest

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"docloadgen/progress"
)

// Runner traverses the scenario ladder exactly once, strictly in order.
type Runner struct {
	Params

	// Ladder overrides the default scenario table when non-nil.
	Ladder []ScenarioConfig

	// SeedFiles are loaded and inserted before the ladder to give the read
	// and update passes data to hit.
	SeedFiles []string

	// BaseFiles provide the template cloned by every insert task.
	BaseFiles []string

	// ShowProgress renders one progress bar per scenario step.
	ShowProgress bool
}

// Execute performs the full triggered flow: seed data for the read/update
// passes, load the base insert template, then traverse the ladder. The caller
// blocks for the whole run. On success it returns the completion message for
// the trigger response.
func (r *Runner) Execute(ctx context.Context) (string, error) {
	if err := r.SeedReadUpdateData(ctx); err != nil {
		return "", err
	}
	if err := r.Templates.Load(r.BaseFiles); err != nil {
		return "", err
	}
	if err := r.Run(ctx); err != nil {
		return "", err
	}
	return "Load test completed!", nil
}

// Run walks the ladder. Each step launches the three operation runs
// concurrently, each with its own pool and store session, and waits for all
// three before advancing. The first failure aborts the remaining steps; there
// is no retry and no partial re-run.
func (r *Runner) Run(ctx context.Context) error {
	ladder := r.Ladder
	if ladder == nil {
		ladder = DefaultLadder()
	}

	runID := uuid.NewString()
	r.Log.Infow("starting load test run", "run_id", runID, "steps", len(ladder))
	start := time.Now()

	for step, cfg := range ladder {
		r.Log.Infow("starting scenario",
			"run_id", runID,
			"step", step,
			"reads", cfg.ReadCount,
			"inserts", cfg.InsertCount,
			"updates", cfg.UpdateCount,
			"threads", cfg.Threads,
		)

		p := r.Params
		var bar *progress.Bar
		if r.ShowProgress {
			total := int64(cfg.InsertCount + cfg.ReadCount + cfg.UpdateCount)
			bar = progress.NewStepBar(step, total)
			base := r.Params.OnTask
			p.OnTask = func() {
				bar.Tick()
				if base != nil {
					base()
				}
			}
		}

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error { return RunInsertTest(gctx, cfg, p) })
		g.Go(func() error { return RunUpdateTest(gctx, cfg, p) })
		g.Go(func() error { return RunReadTest(gctx, cfg, p) })
		err := g.Wait()

		if bar != nil {
			bar.Finish()
		}
		if err != nil {
			return fmt.Errorf("scenario %d: %w", step, err)
		}

		r.Log.Infof("All Operations completed in %.2f seconds", time.Since(start).Seconds())
	}

	r.Log.Infof("total completion in %.2f seconds", time.Since(start).Seconds())
	return nil
}
