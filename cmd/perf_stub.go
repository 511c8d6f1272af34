//go:build !linux
// +build !linux

package cmd

import "fmt"

func reportPerf(f func()) {
	fmt.Println("perf counters are only available on linux, running without instrumentation")
	f()
}
