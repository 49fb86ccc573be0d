package util

import (
	"io"
	"log/slog"

	"github.com/spf13/afero"
)

// Env contains environment dependencies that can be mocked for testing.
type Env struct {
	// Fs is the filesystem used for every manifest and config read/write.
	Fs afero.Fs
	// Log receives diagnostic output. Never nil after NewEnv.
	Log *slog.Logger
}

// NewEnv creates an Env with the given filesystem and a logger that discards output.
// For dry runs, pass transact.New() so writes are staged instead of applied.
func NewEnv(fs afero.Fs) *Env {
	return &Env{Fs: fs, Log: DiscardLogger()}
}

// NewOsEnv creates an Env backed by the real filesystem.
func NewOsEnv() *Env {
	return NewEnv(afero.NewOsFs())
}

// NewTestEnv creates an Env with an in-memory filesystem (for testing).
func NewTestEnv() *Env {
	return NewEnv(afero.NewMemMapFs())
}

// WithLogger returns a copy with the given logger.
func (e *Env) WithLogger(log *slog.Logger) *Env {
	if log == nil {
		log = DiscardLogger()
	}
	return &Env{Fs: e.Fs, Log: log}
}

// NewLogger returns a text logger writing to w. Verbose lowers the level to Debug.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// DiscardLogger returns a logger that drops every record.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
