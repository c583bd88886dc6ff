// Package trace provides optional execution tracing for flint function
// calls: which builtin or plugin ran, with what arguments, for how long,
// and with what outcome. It has no effect on evaluation semantics --
// wrapping a registry's functions in trace.Wrap changes only what gets
// written to the tracer's writer.
package trace

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"flint/registry"
	"flint/types"
)

// Tracer writes one line per traced function call to an io.Writer,
// optionally restricted to a set of glob filters over function names.
type Tracer struct {
	enabled bool
	filters []string
	writer  io.Writer
	mu      sync.Mutex
}

// Global tracer instance, mirroring the teacher's single-process tracer:
// a CLI has one tracer for its whole run, not one per call site.
var globalTracer *Tracer

// Init installs the global tracer. writer defaults to os.Stderr when nil.
func Init(enabled bool, filters []string, writer io.Writer) {
	if writer == nil {
		writer = os.Stderr
	}
	globalTracer = &Tracer{enabled: enabled, filters: filters, writer: writer}
}

// IsEnabled reports whether a global tracer has been installed and
// enabled.
func IsEnabled() bool {
	return globalTracer != nil && globalTracer.enabled
}

func (t *Tracer) matchesFilter(name string) bool {
	if len(t.filters) == 0 {
		return true
	}
	for _, pattern := range t.filters {
		if matched, _ := filepath.Match(pattern, name); matched {
			return true
		}
	}
	return false
}

// Call logs one function invocation: its name, arguments, and either its
// result or its error, along with how long it took.
func (t *Tracer) Call(name string, args []types.Value, result types.Value, callErr error, dur time.Duration) {
	if !t.enabled || !t.matchesFilter(name) {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	if callErr != nil {
		fmt.Fprintf(t.writer, "[trace] %s(%s) -> error: %v (%s)\n", name, formatArgs(args), callErr, dur)
		return
	}
	fmt.Fprintf(t.writer, "[trace] %s(%s) -> %s (%s)\n", name, formatArgs(args), result.String(), dur)
}

func formatArgs(args []types.Value) string {
	s := ""
	for i, a := range args {
		if i > 0 {
			s += ", "
		}
		s += a.String()
	}
	return s
}

// Wrap instruments a single FunctionImpl's Invoke with a call to the
// global tracer, if one is installed. Functions registered without
// calling Init first run untraced, at zero overhead beyond the
// IsEnabled() check.
func Wrap(fn registry.FunctionImpl) registry.FunctionImpl {
	inner := fn.Invoke
	fn.Invoke = func(args []types.Value) (types.Value, error) {
		if !IsEnabled() {
			return inner(args)
		}
		start := time.Now()
		result, err := inner(args)
		globalTracer.Call(fn.Name, args, result, err, time.Since(start))
		return result, err
	}
	return fn
}

// WrapAll instruments every function in funcs, used to trace a whole
// builtin pack (or plugin list) in one call.
func WrapAll(funcs []registry.FunctionImpl) []registry.FunctionImpl {
	wrapped := make([]registry.FunctionImpl, len(funcs))
	for i, fn := range funcs {
		wrapped[i] = Wrap(fn)
	}
	return wrapped
}
