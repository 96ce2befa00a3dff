//go:build debug

// Package debug provides step-by-step tracing for the Splitter/Filler/Grapher pipeline,
// adapted from the teacher's `log_debug.go` (a build-tag-gated `log.Logger`). Unlike the
// teacher, this package also ships a `!debug` fallback (debug_off.go) so split, fill, and
// graph can call Printf unconditionally without two build configurations of their own callers.
package debug

import (
	"log"
	"os"
)

var logger = log.New(os.Stderr, "[overlay2d DEBUG] ", log.LstdFlags)

// Printf logs a trace message when the module is built with the debug tag.
func Printf(format string, v ...any) {
	logger.Printf(format, v...)
}

func init() {
	Printf("debug logging enabled")
}
