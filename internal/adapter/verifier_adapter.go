package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"strings"
	"time"

	m "github.com/mouse-blink/flacscan/internal/model"
	"go.uber.org/zap"
)

const (
	defaultDiagnosticBytes = 4 << 10
	identifyTimeout        = 10 * time.Second
	// waitDelay bounds how long a killed check may hold its output pipes.
	waitDelay = 2 * time.Second
)

// VerifierAdapter is the capability of checking that a file decodes cleanly
// with an external decoder.
type VerifierAdapter interface {
	// Identify runs the decoder's version command. It fails with a
	// *model.ToolNotFoundError when the decoder cannot be executed.
	Identify(ctx context.Context) (string, error)

	// TestFile runs the decoder in test mode against path. A file that does
	// not decode is a failed verdict, not an error.
	TestFile(ctx context.Context, path m.Path) (m.Verdict, error)
}

// VerifierOptions describes the decoder invocation.
type VerifierOptions struct {
	Binary       string
	IdentifyArgs []string
	TestArgs     []string
	// Timeout bounds a single TestFile call; zero disables it.
	Timeout time.Duration
	// MaxDiagnosticBytes caps the stderr kept per failed file.
	MaxDiagnosticBytes int
}

// LocalVerifierAdapter runs the decoder as a child process.
type LocalVerifierAdapter struct {
	opts VerifierOptions
	log  *zap.Logger
}

// NewLocalVerifierAdapter constructs a LocalVerifierAdapter.
func NewLocalVerifierAdapter(opts VerifierOptions, log *zap.Logger) *LocalVerifierAdapter {
	if opts.MaxDiagnosticBytes <= 0 {
		opts.MaxDiagnosticBytes = defaultDiagnosticBytes
	}

	if log == nil {
		log = zap.NewNop()
	}

	return &LocalVerifierAdapter{opts: opts, log: log}
}

// Identify returns the first line of the decoder's version output.
func (v *LocalVerifierAdapter) Identify(ctx context.Context) (string, error) {
	binary, err := v.lookup()
	if err != nil {
		return "", err
	}

	runCtx, cancel := context.WithTimeout(ctx, identifyTimeout)
	defer cancel()

	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(runCtx, binary, v.opts.IdentifyArgs...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = waitDelay

	v.log.Debug("identifying verifier", zap.String("binary", binary), zap.Strings("args", v.opts.IdentifyArgs))

	if err := cmd.Run(); err != nil {
		if missing := v.toolError(err); missing != nil {
			return "", missing
		}

		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			detail = err.Error()
		}

		return "", &m.ToolNotFoundError{
			Binary: v.opts.Binary,
			Err:    fmt.Errorf("identify command failed: %s", detail),
		}
	}

	version, _, _ := strings.Cut(strings.TrimSpace(stdout.String()), "\n")

	return strings.TrimSpace(version), nil
}

// TestFile runs the decoder in test mode on path. Cancelling ctx does not
// kill a running check; only the configured timeout does.
func (v *LocalVerifierAdapter) TestFile(ctx context.Context, path m.Path) (m.Verdict, error) {
	binary, err := v.lookup()
	if err != nil {
		return m.Verdict{}, err
	}

	runCtx := context.WithoutCancel(ctx)

	if v.opts.Timeout > 0 {
		var cancel context.CancelFunc

		runCtx, cancel = context.WithTimeout(runCtx, v.opts.Timeout)
		defer cancel()
	}

	args := make([]string, 0, len(v.opts.TestArgs)+1)
	args = append(args, v.opts.TestArgs...)
	args = append(args, string(path))

	stderr := &cappedBuffer{max: v.opts.MaxDiagnosticBytes}

	// #nosec G204 - binary and args come from configuration
	cmd := exec.CommandContext(runCtx, binary, args...)
	cmd.Stderr = stderr
	cmd.WaitDelay = waitDelay

	err = cmd.Run()

	var exitErr *exec.ExitError

	switch {
	case err == nil:
		return m.Verdict{Passed: true}, nil

	case errors.Is(runCtx.Err(), context.DeadlineExceeded):
		return m.Verdict{
			Passed:     false,
			Diagnostic: fmt.Sprintf("timed out after %s", v.opts.Timeout),
		}, nil

	case errors.As(err, &exitErr):
		diagnostic := strings.TrimSpace(stderr.String())
		if diagnostic == "" {
			diagnostic = exitErr.Error()
		}

		return m.Verdict{Passed: false, Diagnostic: diagnostic}, nil
	}

	if missing := v.toolError(err); missing != nil {
		return m.Verdict{}, missing
	}

	return m.Verdict{}, fmt.Errorf("failed to run %s on %s: %w", v.opts.Binary, path, err)
}

func (v *LocalVerifierAdapter) lookup() (string, error) {
	binary, err := exec.LookPath(v.opts.Binary)
	if err != nil {
		return "", &m.ToolNotFoundError{Binary: v.opts.Binary, Err: err}
	}

	return binary, nil
}

// toolError maps a start failure caused by a missing or non-executable binary
// to a ToolNotFoundError. It returns nil for every other error.
func (v *LocalVerifierAdapter) toolError(err error) error {
	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
		return &m.ToolNotFoundError{Binary: v.opts.Binary, Err: err}
	}

	return nil
}

// cappedBuffer keeps the first max bytes written and discards the rest.
type cappedBuffer struct {
	buf       bytes.Buffer
	max       int
	truncated bool
}

func (c *cappedBuffer) Write(p []byte) (int, error) {
	remaining := c.max - c.buf.Len()
	if remaining <= 0 {
		c.truncated = true
		return len(p), nil
	}

	if len(p) > remaining {
		c.buf.Write(p[:remaining])
		c.truncated = true

		return len(p), nil
	}

	return c.buf.Write(p)
}

func (c *cappedBuffer) String() string {
	if c.truncated {
		return c.buf.String() + " …(truncated)"
	}

	return c.buf.String()
}
