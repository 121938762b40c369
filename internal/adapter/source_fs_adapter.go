// Package adapter contains the OS-facing adapters used by the scanner: the
// filesystem, the external verifier process and the failed-list store.
package adapter

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	m "github.com/mouse-blink/flacscan/internal/model"
)

// SourceFSAdapter abstracts filesystem-specific operations that the domain
// layer relies on when scanning a music library. It hides direct `os` access
// so the walker can be tested without touching the disk.
type SourceFSAdapter interface {
	// ResolveRoot expands and absolutizes root and checks that it is a
	// readable directory.
	ResolveRoot(root m.Path) (m.Path, error)

	// Walk traverses root in lexical order. Errors for unreadable entries are
	// handed to fn, which decides whether to skip or abort.
	Walk(root m.Path, fn FilepathWalkFunc) error

	// FileInfo returns metadata for a path, following symlinks.
	FileInfo(path m.Path) (os.FileInfo, error)
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type directly into the
// domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// ErrSkipDir tells Walk to skip the directory passed to the callback.
var ErrSkipDir = filepath.SkipDir

// LocalSourceFSAdapter is the disk-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// ResolveRoot returns the absolute form of root after checking that it exists,
// is a directory and can be listed.
func (a *LocalSourceFSAdapter) ResolveRoot(root m.Path) (m.Path, error) {
	rootPath, err := normalizeRootPath(string(root))
	if err != nil {
		return "", err
	}

	info, err := a.FileInfo(m.Path(rootPath))
	if err != nil {
		return "", fmt.Errorf("root path error: %w", err)
	}

	if !info.IsDir() {
		return "", fmt.Errorf("root path error: %s is not a directory", rootPath)
	}

	dir, err := os.Open(rootPath)
	if err != nil {
		return "", fmt.Errorf("root path error: %w", err)
	}

	defer func() {
		_ = dir.Close()
	}()

	if _, err := dir.Readdirnames(1); err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("root path error: %w", err)
	}

	return m.Path(rootPath), nil
}

// Walk iterates over every entry under root, descending into subdirectories.
// Symlinked directories below root are reported but not followed; a
// symlinked root itself is followed.
func (a *LocalSourceFSAdapter) Walk(root m.Path, fn FilepathWalkFunc) error {
	rootStr := string(root)

	if info, err := os.Lstat(rootStr); err == nil && info.Mode()&os.ModeSymlink != 0 {
		// a trailing separator makes Lstat resolve the link
		rootStr += string(os.PathSeparator)
	}

	return filepath.Walk(rootStr, filepath.WalkFunc(fn))
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

func normalizeRootPath(root string) (string, error) {
	rootStr := root

	if strings.HasPrefix(rootStr, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}

		suffix := strings.TrimPrefix(rootStr, "~")
		suffix = strings.TrimPrefix(suffix, string(os.PathSeparator))
		rootStr = filepath.Join(home, suffix)
	}

	if rootStr == "" {
		rootStr = "."
	}

	return filepath.Abs(rootStr)
}
