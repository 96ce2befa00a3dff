//go:build !debug

package debug

// Printf is a no-op in the default (non-debug) build, so split, fill, and graph can trace
// unconditionally without their own build tags.
func Printf(format string, v ...any) {}
