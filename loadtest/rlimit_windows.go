//go:build windows
// +build windows

package loadtest

import (
	"runtime/debug"
)

// SetMaxResources adjusts system resource limits on Windows systems.
func SetMaxResources() error {
	// Only set Go runtime's max threads on Windows, as there is no equivalent
	// for open file limits as on Unix systems.
	maxThreads := 8000
	debug.SetMaxThreads(maxThreads)
	return nil
}
