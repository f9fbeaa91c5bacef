package report

import (
	"fmt"
	"sync"
	"time"

	"github.com/fatih/color"

	"docloadgen/record"
)

// Mutex to keep summaries from the three concurrent runs from interleaving
var printMu sync.Mutex

// DisplaySummary shows the latency summary of one finished operation run
func DisplaySummary(s record.Summary) {
	printMu.Lock()
	defer printMu.Unlock()

	color.New(color.FgCyan, color.Bold).Printf("\n%s Results:\n", s.Op)
	fmt.Printf("Duration: %s\n", s.Elapsed.Round(time.Millisecond))
	fmt.Printf("Total Operations: %d\n", s.Count)
	if s.Elapsed > 0 {
		fmt.Printf("Throughput: %.2f ops/s\n", float64(s.Count)/s.Elapsed.Seconds())
	}
	if s.Hist != nil && s.Hist.TotalCount() > 0 {
		fmt.Printf("Latency p50/p90/p99/max: %d/%d/%d/%d ms\n",
			s.Hist.ValueAtQuantile(50),
			s.Hist.ValueAtQuantile(90),
			s.Hist.ValueAtQuantile(99),
			s.Hist.Max())
	}
}
