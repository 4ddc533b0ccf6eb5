// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	"github.com/MKhiriev/go-safe-vault/models"
)

const (
	filePerm = 0o600
	dirPerm  = 0o700
)

// fileContainerStorage keeps the vault container in a single JSON file.
//
// Writes never modify the existing file in place: the new content goes to a
// temporary file in the same directory which then replaces the target with a
// rename, so a failed save leaves the previous file intact.
type fileContainerStorage struct {
	path string
}

// NewFileContainerStorage constructs a [ContainerStorage] for the file at path.
func NewFileContainerStorage(path string) (ContainerStorage, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	return &fileContainerStorage{path: filepath.Clean(path)}, nil
}

func (f *fileContainerStorage) Path() string {
	return f.path
}

// Exists returns false only when the file does not exist. Any other stat
// failure (permissions, a broken parent) is returned as an error.
func (f *fileContainerStorage) Exists(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	_, err := os.Stat(f.path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("stat vault file: %w", err)
	}
}

// Load reads the whole file and decodes it.
//
// Returns ErrContainerNotFound when the file is missing, ErrContainerMalformed
// when it is not a JSON object, and the wrapped read error otherwise.
func (f *fileContainerStorage) Load(ctx context.Context) (models.VaultContainer, error) {
	var container models.VaultContainer
	if err := ctx.Err(); err != nil {
		return container, err
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return container, fmt.Errorf("%w: %s", ErrContainerNotFound, f.path)
		}
		return container, fmt.Errorf("read vault file: %w", err)
	}

	if err := json.Unmarshal(data, &container); err != nil {
		return models.VaultContainer{}, fmt.Errorf("%w: %w", ErrContainerMalformed, err)
	}
	return container, nil
}

// Save writes container to a temporary sibling, syncs it, restricts it to
// the owner, renames it over the target and syncs the parent directory. The
// parent directory is created when missing.
func (f *fileContainerStorage) Save(ctx context.Context, container models.VaultContainer) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(container, "", "  ")
	if err != nil {
		return fmt.Errorf("encode vault container: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("create vault directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(f.path)+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp vault file: %w", err)
	}
	tmpPath := tmp.Name()

	fail := func(step string, err error) error {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("%s temp vault file: %w", step, err)
	}

	if _, err := tmp.Write(data); err != nil {
		return fail("write", err)
	}
	if err := tmp.Sync(); err != nil {
		return fail("sync", err)
	}
	if err := tmp.Chmod(filePerm); err != nil {
		return fail("chmod", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp vault file: %w", err)
	}

	if err := os.Rename(tmpPath, f.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace vault file: %w", err)
	}
	if err := syncDir(dir); err != nil {
		return fmt.Errorf("sync vault directory: %w", err)
	}
	return nil
}

// syncDir flushes the directory entry written by the rename.
var syncDir = func(dir string) error {
	// Windows cannot fsync a directory handle.
	if runtime.GOOS == "windows" {
		return nil
	}
	d, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer d.Close()
	return d.Sync()
}
