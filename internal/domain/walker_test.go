package domain

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/mouse-blink/flacscan/internal/adapter"
	adaptermocks "github.com/mouse-blink/flacscan/internal/adapter/mocks"
	m "github.com/mouse-blink/flacscan/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, root string, names ...string) {
	t.Helper()

	for _, name := range names {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(name), 0o644))
	}
}

func newLocalWalker(exts ...string) Walker {
	return NewWalker(adapter.NewLocalSourceFSAdapter(), NewExtensionSet(exts...), nil)
}

func TestWalker_Enumerate(t *testing.T) {
	t.Run("selects matching files in walk order", func(t *testing.T) {
		root := t.TempDir()
		writeFiles(t, root, "b.flac", "a.flac", "c.txt", filepath.Join("disc1", "01.FLAC"), filepath.Join("disc1", "cover.jpg"))

		enumeration, err := newLocalWalker().Enumerate(context.Background(), m.Path(root))
		require.NoError(t, err)

		assert.Equal(t, m.Path(root), enumeration.Root)
		assert.Equal(t, 5, enumeration.Total)
		assert.Equal(t, []m.Path{
			m.Path(filepath.Join(root, "a.flac")),
			m.Path(filepath.Join(root, "b.flac")),
			m.Path(filepath.Join(root, "disc1", "01.FLAC")),
		}, enumeration.Candidates)
		assert.Equal(t, 2, enumeration.NonMatching())
		assert.Empty(t, enumeration.Skipped)
	})

	t.Run("empty tree yields no candidates", func(t *testing.T) {
		enumeration, err := newLocalWalker().Enumerate(context.Background(), m.Path(t.TempDir()))
		require.NoError(t, err)

		assert.Zero(t, enumeration.Total)
		assert.NotNil(t, enumeration.Candidates)
		assert.Empty(t, enumeration.Candidates)
	})

	t.Run("custom extension set", func(t *testing.T) {
		root := t.TempDir()
		writeFiles(t, root, "a.flac", "b.wav", "c.txt")

		enumeration, err := newLocalWalker(".wav", "flac").Enumerate(context.Background(), m.Path(root))
		require.NoError(t, err)

		assert.Equal(t, 3, enumeration.Total)
		assert.Len(t, enumeration.Candidates, 2)
	})

	t.Run("is idempotent", func(t *testing.T) {
		root := t.TempDir()
		writeFiles(t, root, "a.flac", filepath.Join("x", "b.flac"), filepath.Join("x", "y", "c.flac"))

		walker := newLocalWalker()

		first, err := walker.Enumerate(context.Background(), m.Path(root))
		require.NoError(t, err)

		second, err := walker.Enumerate(context.Background(), m.Path(root))
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("root errors", func(t *testing.T) {
		root := t.TempDir()
		writeFiles(t, root, "a.flac")

		_, err := newLocalWalker().Enumerate(context.Background(), m.Path(filepath.Join(root, "missing")))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "root path error")

		_, err = newLocalWalker().Enumerate(context.Background(), m.Path(filepath.Join(root, "a.flac")))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a directory")
	})

	t.Run("cancelled context stops the walk", func(t *testing.T) {
		root := t.TempDir()
		writeFiles(t, root, "a.flac")

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := newLocalWalker().Enumerate(ctx, m.Path(root))
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestWalker_Enumerate_UnreadableSubdirectory(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permissions are not enforced")
	}

	root := t.TempDir()
	writeFiles(t, root, "a.flac", filepath.Join("locked", "hidden.flac"), filepath.Join("open", "b.flac"))

	locked := filepath.Join(root, "locked")
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	enumeration, err := newLocalWalker().Enumerate(context.Background(), m.Path(root))
	require.NoError(t, err)

	assert.Equal(t, []m.Path{
		m.Path(filepath.Join(root, "a.flac")),
		m.Path(filepath.Join(root, "open", "b.flac")),
	}, enumeration.Candidates)
	assert.Equal(t, []m.Path{m.Path(locked)}, enumeration.Skipped)
	assert.Equal(t, 2, enumeration.Total)
}

func TestWalker_Enumerate_Symlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}

	root := t.TempDir()
	outside := t.TempDir()
	writeFiles(t, outside, "target.flac", filepath.Join("dir", "deep.flac"))

	require.NoError(t, os.Symlink(filepath.Join(outside, "target.flac"), filepath.Join(root, "link.flac")))
	require.NoError(t, os.Symlink(filepath.Join(outside, "dir"), filepath.Join(root, "linkdir")))
	require.NoError(t, os.Symlink(filepath.Join(outside, "gone.flac"), filepath.Join(root, "dangling.flac")))

	enumeration, err := newLocalWalker().Enumerate(context.Background(), m.Path(root))
	require.NoError(t, err)

	assert.Equal(t, []m.Path{m.Path(filepath.Join(root, "link.flac"))}, enumeration.Candidates)
	assert.Equal(t, 1, enumeration.Total)
	assert.Equal(t, []m.Path{m.Path(filepath.Join(root, "dangling.flac"))}, enumeration.Skipped)
}

func TestWalker_Enumerate_WalkCallbackErrors(t *testing.T) {
	fsAdapter := adaptermocks.NewMockSourceFSAdapter(t)

	root := t.TempDir()
	rootInfo, err := os.Stat(root)
	require.NoError(t, err)

	fileDir := t.TempDir()
	writeFiles(t, fileDir, "a.flac")
	fileInfo, err := os.Stat(filepath.Join(fileDir, "a.flac"))
	require.NoError(t, err)

	fsAdapter.EXPECT().FileInfo(m.Path("/music")).Return(rootInfo, nil)
	fsAdapter.EXPECT().Walk(m.Path("/music"), mock.Anything).
		RunAndReturn(func(_ m.Path, fn adapter.FilepathWalkFunc) error {
			if err := fn("/music", rootInfo, nil); err != nil {
				return err
			}

			if err := fn("/music/broken", rootInfo, os.ErrPermission); !errors.Is(err, adapter.ErrSkipDir) {
				return errors.New("unreadable directory was not skipped")
			}

			if err := fn("/music/vanished.flac", nil, os.ErrNotExist); err != nil {
				return err
			}

			return fn("/music/a.flac", fileInfo, nil)
		})

	walker := NewWalker(fsAdapter, NewExtensionSet(), nil)

	enumeration, err := walker.Enumerate(context.Background(), "/music")
	require.NoError(t, err)

	assert.Equal(t, []m.Path{"/music/a.flac"}, enumeration.Candidates)
	assert.Equal(t, []m.Path{"/music/broken", "/music/vanished.flac"}, enumeration.Skipped)
	assert.Equal(t, 1, enumeration.Total)
}

func TestWalker_Enumerate_WalkFailure(t *testing.T) {
	fsAdapter := adaptermocks.NewMockSourceFSAdapter(t)

	root := t.TempDir()
	rootInfo, err := os.Stat(root)
	require.NoError(t, err)

	fsAdapter.EXPECT().FileInfo(m.Path("/music")).Return(rootInfo, nil)
	fsAdapter.EXPECT().Walk(m.Path("/music"), mock.Anything).Return(errors.New("device gone"))

	_, err = NewWalker(fsAdapter, NewExtensionSet(), nil).Enumerate(context.Background(), "/music")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "device gone")
}
