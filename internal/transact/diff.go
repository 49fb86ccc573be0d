package transact

import (
	"bytes"
	"os"

	"github.com/spf13/afero"
)

// OpType represents the type of file operation.
type OpType int

const (
	// OpCreate indicates a new file creation.
	OpCreate OpType = iota
	// OpUpdate indicates updating an existing file's content.
	OpUpdate
)

// String returns a human-readable string for the operation type.
func (o OpType) String() string {
	switch o {
	case OpCreate:
		return "create"
	case OpUpdate:
		return "update"
	default:
		return "unknown"
	}
}

// FileOp represents a single file operation to be committed.
type FileOp struct {
	Path string
	Op   OpType
	// Previous is the actual content; nil for OpCreate.
	Previous []byte
	Content  []byte
	Mode     os.FileMode
}

// ComputeDiff compares staged vs actual filesystem and returns operations needed.
// Files whose staged content equals the actual content produce no operation.
// Updates keep the actual file's permissions; the copy-on-write layer does not.
func ComputeDiff(staged, actual afero.Fs, paths []string) ([]FileOp, error) {
	var ops []FileOp

	for _, path := range paths {
		stagedInfo, err := staged.Stat(path)
		if err != nil {
			continue
		}
		content, err := afero.ReadFile(staged, path)
		if err != nil {
			return nil, err
		}

		actualInfo, err := actual.Stat(path)
		if err != nil {
			ops = append(ops, FileOp{
				Path:    path,
				Op:      OpCreate,
				Content: content,
				Mode:    stagedInfo.Mode().Perm(),
			})
			continue
		}

		previous, err := afero.ReadFile(actual, path)
		if err != nil {
			return nil, err
		}
		if bytes.Equal(content, previous) {
			continue
		}
		ops = append(ops, FileOp{
			Path:     path,
			Op:       OpUpdate,
			Previous: previous,
			Content:  content,
			Mode:     actualInfo.Mode().Perm(),
		})
	}

	return ops, nil
}
