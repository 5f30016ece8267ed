// Package profile provides optional runtime profiling for the shlog
// command.
//
// This package integrates [github.com/pkg/profile] with conditional
// compilation support. Profiling is optional and must be enabled at
// build time using the "pprof" build tag; without it, all operations are
// no-ops with zero runtime overhead.
//
// When built with the pprof tag, the following modes are supported:
// allocs, block, clock, cpu, goroutine, heap, mem, mutex, thread, and
// trace. Use [Modes] to retrieve the list programmatically. Profile
// files are written to the configured directory with names matching the
// profiling mode (e.g., cpu.pprof) and can be analyzed with
//
//	go tool pprof ./shlog cpu.pprof
package profile
