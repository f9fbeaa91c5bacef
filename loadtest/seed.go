package loadtest

import (
	"context"

	"docloadgen/store"
)

// SeedReadUpdateData pre-populates the store for the read and update passes.
// It loads the seed template files, inserts one clone of the first template
// per cache entry under a freshly generated write key, then clears the cache
// so the base insert template can be loaded afterwards. Individual insert
// failures are logged and skipped; seeding itself still succeeds.
func (r *Runner) SeedReadUpdateData(ctx context.Context) error {
	if err := r.Templates.Load(r.SeedFiles); err != nil {
		return err
	}

	client, err := r.Store.Open(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close(context.Background()) }()

	r.Log.Info("storing documents for read and update tests")
	for i := 0; i < r.Templates.Len(); i++ {
		doc, cloneErr := r.Templates.CloneFirst()
		if cloneErr != nil {
			return cloneErr
		}
		doc[store.KeyField] = WriteKey()

		if insertErr := client.Insert(ctx, doc); insertErr != nil {
			r.Log.Errorw("seed insert failed", "error", insertErr)
			continue
		}
	}
	r.Templates.Clear()
	r.Log.Info("stored all documents for read and update tests")
	return nil
}
