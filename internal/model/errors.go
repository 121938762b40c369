package model

import (
	"errors"
	"fmt"
)

// ErrToolNotFound is matched by every ToolNotFoundError.
var ErrToolNotFound = errors.New("verifier tool not found")

// ToolNotFoundError reports that the external verifier cannot be executed.
// It is a fatal configuration error, never a verification failure.
type ToolNotFoundError struct {
	Binary string
	Err    error
}

func (e *ToolNotFoundError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("verifier tool %q not found", e.Binary)
	}

	return fmt.Sprintf("verifier tool %q not found: %v", e.Binary, e.Err)
}

func (e *ToolNotFoundError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrToolNotFound) true for any ToolNotFoundError.
func (e *ToolNotFoundError) Is(target error) bool {
	return target == ErrToolNotFound
}

// OutputWriteError reports a failure to write the failed-file list.
type OutputWriteError struct {
	Path Path
	Err  error
}

func (e *OutputWriteError) Error() string {
	return fmt.Sprintf("failed to write output file %s: %v", e.Path, e.Err)
}

func (e *OutputWriteError) Unwrap() error {
	return e.Err
}
