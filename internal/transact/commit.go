package transact

import (
	"fmt"

	"github.com/spf13/afero"
)

// ExecuteOp executes a single file operation on the given filesystem.
// Useful for implementing commit callbacks.
func ExecuteOp(fs afero.Fs, op FileOp) error {
	switch op.Op {
	case OpCreate, OpUpdate:
		if err := fs.MkdirAll(parentDir(op.Path), 0755); err != nil {
			return err
		}
		return afero.WriteFile(fs, op.Path, op.Content, op.Mode)

	default:
		return fmt.Errorf("unknown operation type: %d", op.Op)
	}
}

// ExecuteOps executes multiple file operations on the given filesystem.
func ExecuteOps(fs afero.Fs, ops []FileOp) error {
	for _, op := range ops {
		if err := ExecuteOp(fs, op); err != nil {
			return fmt.Errorf("failed to execute %s on %s: %w", op.Op, op.Path, err)
		}
	}
	return nil
}
