package progress

import (
	"fmt"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/fatih/color"
	"github.com/minio/pkg/console"
)

// Bar tracks task completions for one scenario step. All three operation runs
// of a step increment the same bar; pb handles concurrent increments.
type Bar struct {
	*pb.ProgressBar
}

// NewStepBar instantiates a progress bar sized to a scenario step's total
// task count across all three operation kinds.
func NewStepBar(step int, total int64) *Bar {
	// Progress bar specific theme customization.
	console.SetColor("Bar", color.New(color.FgGreen, color.Bold))

	bar := pb.New64(total)

	// Customize the refresh rate and behavior
	bar.SetRefreshRate(time.Millisecond * 125)
	bar.SetTemplateString(`{{string . "prefix"}} {{counters . }} {{bar . }} {{percent . }} {{speed . }}`)
	bar.Set("prefix", fmt.Sprintf("Scenario %d", step))

	bar.Start()

	return &Bar{ProgressBar: bar}
}

// Tick records one completed task.
func (b *Bar) Tick() {
	b.ProgressBar.Increment()
}
