package domain

import (
	"context"
	"fmt"
	"os"

	"github.com/mouse-blink/flacscan/internal/adapter"
	m "github.com/mouse-blink/flacscan/internal/model"
	"go.uber.org/zap"
)

// Walker enumerates the candidate files under a scan root.
type Walker interface {
	Enumerate(ctx context.Context, root m.Path) (m.Enumeration, error)
}

type walker struct {
	fsAdapter  adapter.SourceFSAdapter
	extensions ExtensionSet
	log        *zap.Logger
}

// NewWalker creates a Walker selecting files by extension.
func NewWalker(fsAdapter adapter.SourceFSAdapter, extensions ExtensionSet, log *zap.Logger) Walker {
	if log == nil {
		log = zap.NewNop()
	}

	return &walker{
		fsAdapter:  fsAdapter,
		extensions: extensions,
		log:        log,
	}
}

// Enumerate walks root recursively. Every regular file counts towards Total;
// files with a matching extension become candidates. Unreadable directories
// and entries are logged, recorded as skipped and left out; they never fail
// the walk. Only an unusable root or a cancelled ctx is an error.
func (w *walker) Enumerate(ctx context.Context, root m.Path) (m.Enumeration, error) {
	info, err := w.fsAdapter.FileInfo(root)
	if err != nil {
		return m.Enumeration{}, fmt.Errorf("root path error: %w", err)
	}

	if !info.IsDir() {
		return m.Enumeration{}, fmt.Errorf("root path error: %s is not a directory", root)
	}

	enumeration := m.Enumeration{
		Root:       root,
		Candidates: []m.Path{},
	}

	w.log.Info("walking directory tree", zap.String("root", string(root)))

	err = w.fsAdapter.Walk(root, func(path string, info os.FileInfo, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		if err != nil {
			return w.skip(&enumeration, path, info, err)
		}

		if info.IsDir() {
			w.log.Debug("entering directory", zap.String("path", path))
			return nil
		}

		if info.Mode()&os.ModeSymlink != 0 {
			target, statErr := w.fsAdapter.FileInfo(m.Path(path))
			if statErr != nil {
				return w.skip(&enumeration, path, nil, statErr)
			}

			if !target.Mode().IsRegular() {
				w.log.Debug("not following symlink", zap.String("path", path))
				return nil
			}

			info = target
		}

		if !info.Mode().IsRegular() {
			return nil
		}

		enumeration.Total++

		if !w.extensions.Match(path) {
			w.log.Debug("ignoring file", zap.String("path", path))
			return nil
		}

		w.log.Debug("queueing file", zap.String("path", path))
		enumeration.Candidates = append(enumeration.Candidates, m.Path(path))

		return nil
	})
	if err != nil {
		return m.Enumeration{}, fmt.Errorf("walk %s: %w", root, err)
	}

	w.log.Info("directory tree walked",
		zap.Int("total", enumeration.Total),
		zap.Int("candidates", len(enumeration.Candidates)),
		zap.Int("skipped", len(enumeration.Skipped)),
	)

	return enumeration, nil
}

func (w *walker) skip(enumeration *m.Enumeration, path string, info os.FileInfo, err error) error {
	w.log.Warn("skipping unreadable path", zap.String("path", path), zap.Error(err))
	enumeration.Skipped = append(enumeration.Skipped, m.Path(path))

	if info != nil && info.IsDir() {
		return adapter.ErrSkipDir
	}

	return nil
}
