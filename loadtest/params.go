package loadtest

import (
	"go.uber.org/zap"

	"docloadgen/store"
	"docloadgen/templates"
)

// ScenarioConfig is one step of the load ladder. It is immutable once built.
type ScenarioConfig struct {
	ReadCount   int // Number of read operations to perform
	InsertCount int // Number of insert (write) operations to perform
	UpdateCount int // Number of update operations to perform
	Threads     int // Pool size for each of the three operation runs
}

// DefaultLadder returns the escalating scenario table traversed by a run.
// A fresh slice is returned so callers can substitute their own ladder
// without touching the default.
func DefaultLadder() []ScenarioConfig {
	return []ScenarioConfig{
		{ReadCount: 1500, InsertCount: 3000, UpdateCount: 1500, Threads: 4},
		{ReadCount: 2000, InsertCount: 4000, UpdateCount: 2000, Threads: 6},
		{ReadCount: 2500, InsertCount: 5000, UpdateCount: 2500, Threads: 8},
		{ReadCount: 5000, InsertCount: 10000, UpdateCount: 5000, Threads: 12},
		{ReadCount: 10000, InsertCount: 20000, UpdateCount: 10000, Threads: 14},
		{ReadCount: 25000, InsertCount: 50000, UpdateCount: 25000, Threads: 18},
	}
}

// Params carries the collaborators shared by the operation runs.
type Params struct {
	Store     store.Dialer
	Templates *templates.Cache
	Log       *zap.SugaredLogger
	RateLimit int    // Max store operations per second per run, 0 means no limit
	OnTask    func() // Optional hook invoked once per completed task
}
