package ioutils

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
)

// LockFileName is created in the root of a locked output tree.
const LockFileName = ".nospoiler.lock"

var (
	// ErrLocked is returned by Lock when another process holds the tree.
	ErrLocked = errors.New("output directory is locked by another run")

	// ErrOutsideRoot is returned for paths that would leave the tree.
	ErrOutsideRoot = errors.New("path escapes output directory")
)

// OutputTree writes and copies files below a root directory.
//
// Paths passed to its methods are relative to Root and use forward slashes,
// e.g. "2020/qat.html".
type OutputTree struct {
	Root string
}

// NewOutputTree returns an OutputTree rooted at root.
func NewOutputTree(root string) *OutputTree {
	return &OutputTree{Root: root}
}

// Path returns the file system path of rel.
//
// Returns an error wrapping ErrOutsideRoot if rel is absolute or resolves
// to a location outside Root.
func (t *OutputTree) Path(rel string) (string, error) {
	if rel == "" || filepath.IsAbs(filepath.FromSlash(rel)) {
		return "", fmt.Errorf("%w: %q", ErrOutsideRoot, rel)
	}

	full := filepath.Join(t.Root, filepath.FromSlash(rel))
	back, err := filepath.Rel(t.Root, full)
	if err != nil || back == "." || back == ".." || strings.HasPrefix(back, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q", ErrOutsideRoot, rel)
	}
	return full, nil
}

// WriteFile writes data to rel, creating parent directories on demand.
func (t *OutputTree) WriteFile(ctx context.Context, rel string, data []byte) error {
	path, err := t.Path(rel)
	if err != nil {
		return err
	}
	return WriteFile(ctx, path, data)
}

// CopyFile copies src to dst, both relative to the root. A missing src
// yields an error for which errors.Is(err, fs.ErrNotExist) holds.
func (t *OutputTree) CopyFile(ctx context.Context, src, dst string) error {
	srcPath, err := t.Path(src)
	if err != nil {
		return err
	}
	dstPath, err := t.Path(dst)
	if err != nil {
		return err
	}
	return CopyFile(ctx, srcPath, dstPath)
}

// Lock takes an exclusive advisory lock on the tree so that two generators
// never write the same output at once. The returned function releases the
// lock and removes the lock file.
//
// Returns ErrLocked if another process already holds the lock.
func (t *OutputTree) Lock() (func() error, error) {
	if err := EnsureDir(t.Root); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	lockPath := filepath.Join(t.Root, LockFileName)
	fl := flock.New(lockPath)

	locked, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock output directory: %w", err)
	}
	if !locked {
		return nil, ErrLocked
	}

	return func() error {
		if err := fl.Unlock(); err != nil {
			return err
		}
		if err := os.Remove(lockPath); err != nil && !errors.Is(err, os.ErrNotExist) {
			return err
		}
		return nil
	}, nil
}
