package model

import (
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToolNotFoundError(t *testing.T) {
	err := fmt.Errorf("identify: %w", &ToolNotFoundError{Binary: "flac", Err: exec.ErrNotFound})

	assert.ErrorIs(t, err, ErrToolNotFound)
	assert.ErrorIs(t, err, exec.ErrNotFound)
	assert.Contains(t, err.Error(), `"flac"`)

	var target *ToolNotFoundError
	assert.True(t, errors.As(err, &target))
	assert.Equal(t, "flac", target.Binary)

	assert.Equal(t, `verifier tool "flac" not found`, (&ToolNotFoundError{Binary: "flac"}).Error())
}

func TestOutputWriteError(t *testing.T) {
	err := &OutputWriteError{Path: "/tmp/out.txt", Err: fs.ErrPermission}

	assert.ErrorIs(t, err, fs.ErrPermission)
	assert.NotErrorIs(t, err, ErrToolNotFound)
	assert.Contains(t, err.Error(), "/tmp/out.txt")
}

func TestReport_FailedPaths(t *testing.T) {
	report := Report{
		Failed: []Outcome{{Path: "/x/b.flac"}, {Path: "/x/d.flac"}},
	}

	assert.Equal(t, []Path{"/x/b.flac", "/x/d.flac"}, report.FailedPaths())
	assert.Empty(t, Report{}.FailedPaths())
}

func TestEnumeration_NonMatching(t *testing.T) {
	e := Enumeration{Candidates: []Path{"a.flac", "b.flac"}, Total: 3}

	assert.Equal(t, 1, e.NonMatching())
}
