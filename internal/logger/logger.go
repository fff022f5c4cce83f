// Package logger provides verbose logging for ts-app.
// When verbose mode is enabled via the --verbose flag or the log.verbose
// setting, messages are printed to stderr to show each store operation.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer for verbose logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

func write(level, scope, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if !verbose {
		return
	}
	if scope != "" {
		format = scope + ": " + format
	}
	fmt.Fprintf(output, "["+level+"] "+format+"\n", args...)
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	write("DEBUG", "", format, args...)
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	write("INFO", "", format, args...)
}

// Warn prints a warning message if verbose mode is enabled.
func Warn(format string, args ...any) {
	write("WARN", "", format, args...)
}

// Scoped prefixes every message with a scope name, e.g. the entity kind.
type Scoped struct {
	scope string
}

// For returns a logger whose messages are prefixed with scope.
func For(scope string) Scoped {
	return Scoped{scope: scope}
}

// Debug prints a scoped message if verbose mode is enabled.
func (s Scoped) Debug(format string, args ...any) {
	write("DEBUG", s.scope, format, args...)
}

// Info prints a scoped informational message if verbose mode is enabled.
func (s Scoped) Info(format string, args ...any) {
	write("INFO", s.scope, format, args...)
}

// Warn prints a scoped warning if verbose mode is enabled.
func (s Scoped) Warn(format string, args ...any) {
	write("WARN", s.scope, format, args...)
}
