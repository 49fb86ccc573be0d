package manifest

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/afero"
)

// File is a manifest together with the bytes it was read from.
type File struct {
	Path     string
	Raw      []byte
	Manifest *Manifest
}

// ReadFile reads and parses the manifest at path.
func ReadFile(fs afero.Fs, path string) (*File, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &File{Path: path, Raw: data, Manifest: m}, nil
}

// Save writes m to f.Path when its encoding differs from f.Raw.
// It reports whether the file was (or, on a staged fs, would be) changed.
func (f *File) Save(fs afero.Fs, m *Manifest) (bool, error) {
	data, err := m.Bytes()
	if err != nil {
		return false, fmt.Errorf("failed to encode %s: %w", f.Path, err)
	}
	if f.Raw != nil && bytes.Equal(data, f.Raw) {
		return false, nil
	}
	if err := WriteAtomic(fs, f.Path, data); err != nil {
		return false, err
	}
	f.Raw = data
	f.Manifest = m
	return true, nil
}

// WriteIfChanged writes m to path unless the file already holds identical bytes.
// A missing file is created; its directory must already exist.
func WriteIfChanged(fs afero.Fs, path string, m *Manifest) (bool, error) {
	existing, err := afero.ReadFile(fs, path)
	if err != nil && !os.IsNotExist(err) {
		return false, fmt.Errorf("failed to read %s: %w", path, err)
	}
	f := &File{Path: path, Raw: existing}
	return f.Save(fs, m)
}

// WriteAtomic replaces path with data via a temp file and rename, so readers
// never observe a partially written manifest. The parent directory must exist.
func WriteAtomic(fs afero.Fs, path string, data []byte) error {
	dir := filepath.Dir(path)
	ok, err := afero.DirExists(fs, dir)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", dir, err)
	}
	if !ok {
		return fmt.Errorf("directory does not exist: %s", dir)
	}

	perm := os.FileMode(0644)
	if info, err := fs.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	tmpPath := filepath.Join(dir, "."+filepath.Base(path)+"."+uuid.NewString()+".tmp")
	tmp, err := fs.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = fs.Remove(tmpPath)
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		_ = fs.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := fs.Rename(tmpPath, path); err != nil {
		_ = fs.Remove(tmpPath)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
