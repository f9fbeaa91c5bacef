package record

import (
	"sync"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
	"go.uber.org/zap"
)

// Op is an operation kind as it appears on the wire.
type Op string

const (
	OpInsert Op = "Insert"
	OpRead   Op = "Read"
	OpUpdate Op = "Update"
)

// Recorder emits one line per completed task and one summary line per
// operation run. The line shapes are a wire contract with the offline log
// analyzer; do not reword them.
type Recorder struct {
	log    *zap.SugaredLogger
	op     Op
	start  time.Time
	onTask func()

	mu    sync.Mutex
	hist  *hdrhistogram.Histogram
	count int
}

// NewRecorder starts the run clock for one operation run. onTask, when not
// nil, is invoked once per recorded task.
func NewRecorder(log *zap.SugaredLogger, op Op, onTask func()) *Recorder {
	return &Recorder{
		log:    log,
		op:     op,
		start:  time.Now(),
		onTask: onTask,
		// 1ms to 5min, 3 significant figures
		hist: hdrhistogram.New(1, int64(5*time.Minute/time.Millisecond), 3),
	}
}

// Task records one finished task. The second bucket counts from the start of
// the containing operation run, not from the scenario start.
func (r *Recorder) Task(worker int, d time.Duration) {
	ms := d.Milliseconds()
	second := int64(time.Since(r.start).Seconds())
	r.log.Infof("[Second %d] worker-%d: %s completed in %d ms", second, worker, r.op, ms)

	r.mu.Lock()
	_ = r.hist.RecordValue(ms)
	r.count++
	r.mu.Unlock()

	if r.onTask != nil {
		r.onTask()
	}
}

// Summary describes one finished operation run.
type Summary struct {
	Op      Op
	Count   int
	Elapsed time.Duration
	Hist    *hdrhistogram.Histogram
}

// Finish emits the run's summary line and returns its summary.
func (r *Recorder) Finish() Summary {
	elapsed := time.Since(r.start)

	r.mu.Lock()
	count := r.count
	hist := r.hist
	r.mu.Unlock()

	switch r.op {
	case OpInsert:
		r.log.Infof("All %d documents inserted in %.2f seconds", count, elapsed.Seconds())
	case OpRead:
		r.log.Infof("All %d reads completed in %.2f seconds", count, elapsed.Seconds())
	case OpUpdate:
		r.log.Infof("All %d updates completed in %.2f seconds", count, elapsed.Seconds())
	}

	return Summary{Op: r.op, Count: count, Elapsed: elapsed, Hist: hist}
}
