// Package transact provides transactional file system operations.
// It stages file changes in memory on top of the real filesystem, computes
// the resulting operations, and commits them with callback-based execution.
package transact

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"
)

// =============================================================================
// Commit Types
// =============================================================================

// CommitContext contains all information needed for commit callback.
type CommitContext struct {
	// BaseFs is the actual filesystem to write to.
	BaseFs afero.Fs
	// Ops is the list of operations to perform.
	Ops []FileOp
}

// CommitResult is the result returned by Commit.
type CommitResult struct {
	// Ops are the operations handed to the callback.
	Ops []FileOp
}

// CommitFunc is the callback type for Commit.
type CommitFunc func(ctx CommitContext) error

// =============================================================================
// TransactFs
// =============================================================================

// Compile-time check: TransactFs implements afero.Fs
var _ afero.Fs = (*TransactFs)(nil)

// TransactFs layers an in-memory filesystem over the actual one.
//
// Semantics:
//   - writes, renames and removals of new files only touch the staged layer
//   - reads see staged content first, then actual
//   - Diff compares staged vs actual
//   - Commit applies staged changes via callback, then resets staged
type TransactFs struct {
	// Fs is the copy-on-write view every afero call goes through.
	afero.Fs

	// staged is the in-memory filesystem for staging changes
	staged afero.Fs
	// actual is the real filesystem (typically OsFs, MemMapFs for tests)
	actual afero.Fs
	mu     sync.Mutex
}

// Option configures a TransactFs.
type Option func(*TransactFs)

// WithActualFs sets the actual filesystem (default: OsFs).
// Useful for testing with a mock filesystem.
func WithActualFs(fs afero.Fs) Option {
	return func(t *TransactFs) {
		t.actual = fs
	}
}

// New creates a new TransactFs with default OsFs for the actual filesystem.
func New(opts ...Option) *TransactFs {
	t := &TransactFs{actual: afero.NewOsFs()}
	for _, opt := range opts {
		opt(t)
	}
	t.reset()
	return t
}

func (t *TransactFs) reset() {
	t.staged = afero.NewMemMapFs()
	t.Fs = afero.NewCopyOnWriteFs(t.actual, t.staged)
}

// Name returns the filesystem name.
func (t *TransactFs) Name() string {
	return "TransactFs"
}

// Diff returns the operations that would bring actual in line with staged,
// sorted by path.
func (t *TransactFs) Diff() ([]FileOp, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.diffLocked()
}

func (t *TransactFs) diffLocked() ([]FileOp, error) {
	paths, err := stagedFiles(t.staged)
	if err != nil {
		return nil, err
	}
	return ComputeDiff(t.staged, t.actual, paths)
}

// Commit applies all pending changes via the provided callback.
// On success, staged is reset.
// On failure, staged is preserved for retry.
func (t *TransactFs) Commit(fn CommitFunc) (*CommitResult, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	ops, err := t.diffLocked()
	if err != nil {
		return nil, err
	}

	if err := fn(CommitContext{BaseFs: t.actual, Ops: ops}); err != nil {
		return nil, err
	}

	t.reset()
	return &CommitResult{Ops: ops}, nil
}

// stagedFiles lists every regular file in the staged layer.
func stagedFiles(staged afero.Fs) ([]string, error) {
	var paths []string
	err := afero.Walk(staged, string(filepath.Separator), func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if info.Mode().IsRegular() {
			paths = append(paths, path)
		}
		return nil
	})
	return paths, err
}

func parentDir(path string) string {
	return filepath.Dir(path)
}
