// Package source reads the loosely structured text inputs that metrics are
// derived from: pseudo-filesystem files, glob-enumerated sensor files and
// the standard output of short-lived external commands.
//
// Every reader in this package is tolerant by design. A missing file, a
// failed spawn or a command that exits non-zero all degrade to an empty
// line sequence; callers see a short stream, never an error. This is what
// keeps the polling loop alive on machines that lack a battery, a fan or a
// wireless card.
package source

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// Runner spawns a command and returns its standard output as lines.
//
// Runner exists as a function type so that metric widgets can have their
// external commands substituted in tests with canned output. The production
// implementation is [RunCommand].
type Runner func(ctx context.Context, argv ...string) []string

// ReadLines reads a file and returns its content as a slice of lines.
//
// A path that does not exist (or cannot be read) yields nil. Callers must
// tolerate an empty sequence; absence of a pseudo-file is an expected state,
// not a fault. A trailing newline does not produce an empty final line.
func ReadLines(path string) []string {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	return splitLines(string(data))
}

// ReadInt reads a file expected to hold a single integer, returning def if
// the file is absent or does not parse.
func ReadInt(path string, def int64) int64 {
	lines := ReadLines(path)
	if len(lines) == 0 {
		return def
	}
	n, err := strconv.ParseInt(strings.TrimSpace(lines[0]), 10, 64)
	if err != nil {
		return def
	}
	return n
}

// GlobInts enumerates every path matching pattern and reads each as a
// single integer, skipping files that are absent or malformed.
//
// Zero matches returns an empty slice: the caller decides what an absent
// sensor means. Plural matches are all returned, in glob order.
func GlobInts(pattern string) []int64 {
	paths, err := filepath.Glob(pattern)
	if err != nil {
		return nil
	}
	values := make([]int64, 0, len(paths))
	for _, p := range paths {
		lines := ReadLines(p)
		if len(lines) == 0 {
			continue
		}
		n, err := strconv.ParseInt(strings.TrimSpace(lines[0]), 10, 64)
		if err != nil {
			continue
		}
		values = append(values, n)
	}
	return values
}

// RunCommand spawns argv and returns its standard output as lines.
//
// Spawn failures and non-zero exits are not distinguished from "no output":
// whatever was written to stdout before the failure is still returned, and
// extraction downstream simply sees a short or empty stream. Exit codes are
// never inspected. Each call spawns a fresh process; there is no pooling.
func RunCommand(ctx context.Context, argv ...string) []string {
	if len(argv) == 0 {
		return nil
	}
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	out, _ := cmd.Output()
	if len(out) == 0 {
		return nil
	}
	return splitLines(string(out))
}

// ProcessRunning reports whether a process with exactly the given name is
// currently running, probed via pgrep. Any output line counts as presence.
func ProcessRunning(ctx context.Context, run Runner, name string) bool {
	return len(run(ctx, "pgrep", "-x", name)) > 0
}

// splitLines splits on newlines, dropping a trailing empty line produced by
// a terminating newline but keeping interior empty lines.
func splitLines(s string) []string {
	lines := strings.Split(s, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
