package adapter

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/flacscan/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalReportStore_SaveFailed_WritesOnePathPerLine(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "out.txt")
	rs := NewReportStore()

	require.NoError(t, rs.SaveFailed(m.Path(out), []m.Path{"/x/y/bad.flac"}))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "/x/y/bad.flac\n", string(data))
}

func TestLocalReportStore_SaveFailed_OverwritesExistingContent(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, os.WriteFile(out, []byte("/old/one.flac\n/old/two.flac\n/old/three.flac\n"), 0o644))

	rs := NewReportStore()
	require.NoError(t, rs.SaveFailed(m.Path(out), []m.Path{"/new/a.flac", "/new/b.flac"}))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "/new/a.flac\n/new/b.flac\n", string(data))
}

func TestLocalReportStore_SaveFailed_EmptyListTruncates(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, os.WriteFile(out, []byte("stale\n"), 0o644))

	require.NoError(t, NewReportStore().SaveFailed(m.Path(out), nil))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestLocalReportStore_SaveFailed_WriteError(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "missing-dir", "out.txt")

	err := NewReportStore().SaveFailed(m.Path(out), []m.Path{"/x/bad.flac"})
	require.Error(t, err)

	var writeErr *m.OutputWriteError
	require.True(t, errors.As(err, &writeErr))
	assert.Equal(t, m.Path(out), writeErr.Path)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLocalReportStore_SaveReport_WritesYAML(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "report.yaml")
	report := m.Report{
		RunID: "run-1",
		Root:  "/music",
		Summary: m.Summary{
			Total: 3, Scanned: 2, Passed: 1, Failed: 1, Elapsed: 1500 * time.Millisecond,
		},
		Passed:  []m.Outcome{{Path: "/music/a.flac", Passed: true}},
		Failed:  []m.Outcome{{Path: "/music/b.flac", Diagnostic: "ERROR while decoding data", Duration: time.Second}},
		Skipped: []m.Path{"/music/locked"},
	}

	require.NoError(t, NewReportStore().SaveReport(m.Path(out), report))

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var decoded reportYAML
	require.NoError(t, yaml.Unmarshal(data, &decoded))

	assert.Equal(t, "run-1", decoded.RunID)
	assert.Equal(t, "/music", decoded.Root)
	assert.Equal(t, summaryYAML{Total: 3, Scanned: 2, Passed: 1, Failed: 1, Elapsed: "1.5s"}, decoded.Summary)
	require.Len(t, decoded.Failed, 1)
	assert.Equal(t, "/music/b.flac", decoded.Failed[0].Path)
	assert.Equal(t, "ERROR while decoding data", decoded.Failed[0].Diagnostic)
	assert.Equal(t, "1s", decoded.Failed[0].Duration)
	assert.Equal(t, []string{"/music/a.flac"}, decoded.Passed)
	assert.Equal(t, []string{"/music/locked"}, decoded.Skipped)
}
