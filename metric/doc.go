// Package metric implements the individual status-line widgets: clock, CPU,
// power, audio volume, wired network, wireless link and virtual screen.
//
// Each widget owns its own private state, populated only by its own Update
// call; no two widgets share mutable state, so the single-threaded polling
// loop needs no locking. Widgets are constructed once at startup and live
// for the lifetime of the process.
//
// Data sources (pseudo-file paths, glob patterns, external commands) are
// struct fields with production defaults, so tests redirect them to fixture
// directories and canned command output instead of the live system.
package metric
