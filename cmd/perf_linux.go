//go:build linux
// +build linux

package cmd

import (
	"fmt"

	perf "github.com/hodgesds/perf-utils"
)

// reportPerf runs f under a hardware instruction counter. Counter access needs perf_event
// support and sufficient privileges; failure to instrument falls back to a plain run.
func reportPerf(f func()) {
	var ran bool
	profileValue, err := perf.CPUInstructions(func() error {
		ran = true
		f()
		return nil
	})
	if err != nil {
		fmt.Printf("perf instrumentation unavailable (%s), running without counters\n", err)
		if !ran {
			f()
		}
		return
	}
	fmt.Printf("Instructions = %d (enabled %dns, running %dns)\n",
		profileValue.Value, profileValue.TimeEnabled, profileValue.TimeRunning)
}
