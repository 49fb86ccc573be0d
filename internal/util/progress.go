// Package util provides shared utility functions across the CLI and the sync engine.
package util

import (
	"fmt"
	"io"
)

// Subsystem tags prefixed to user-facing progress lines.
const (
	TagPackageSync = "PACKAGE-SYNC"
	TagVersionSync = "VERSION-SYNC"
	TagError       = "ERROR"
	TagWarn        = "WARN"
	TagSuccess     = "SUCCESS"
)

// Progress writes a progress message if w is not nil.
func Progress(w io.Writer, format string, args ...any) {
	if w != nil {
		_, _ = fmt.Fprintf(w, format, args...)
	}
}

// ProgressDone writes a progress message with ✓ prefix (step completed).
func ProgressDone(w io.Writer, format string, args ...any) {
	Progress(w, "✓ "+format, args...)
}

// Tagged writes a single line prefixed with [tag].
func Tagged(w io.Writer, tag, format string, args ...any) {
	Progress(w, "["+tag+"] "+format+"\n", args...)
}
