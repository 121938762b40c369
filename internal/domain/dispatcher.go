package domain

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/mouse-blink/flacscan/internal/adapter"
	m "github.com/mouse-blink/flacscan/internal/model"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ProgressObserver receives per-file progress from the dispatcher. Methods
// are called concurrently from worker goroutines.
type ProgressObserver interface {
	DisplayStartingCheck(path m.Path, workerID int)
	DisplayCompletedCheck(outcome m.Outcome, workerID int)
}

// Dispatcher verifies candidate files on a bounded pool of workers.
type Dispatcher interface {
	// Run checks every candidate exactly once and returns the outcomes in
	// candidate order. A missing verifier aborts the run with the
	// *model.ToolNotFoundError. Cancelling ctx stops new checks, waits for
	// the running ones and returns the outcomes gathered so far together
	// with an error wrapping ctx.Err().
	Run(ctx context.Context, candidates []m.Path, workers int) ([]m.Outcome, error)
}

type dispatcher struct {
	verifier adapter.VerifierAdapter
	observer ProgressObserver
	log      *zap.Logger
}

// NewDispatcher creates a Dispatcher backed by verifier. observer may be nil.
func NewDispatcher(verifier adapter.VerifierAdapter, observer ProgressObserver, log *zap.Logger) Dispatcher {
	if log == nil {
		log = zap.NewNop()
	}

	if observer == nil {
		observer = noopObserver{}
	}

	return &dispatcher{
		verifier: verifier,
		observer: observer,
		log:      log,
	}
}

// check is a unit of work: the candidate and its position in the input.
type check struct {
	index int
	path  m.Path
}

// checkResult holds the outcome of a single check.
type checkResult struct {
	index   int
	outcome m.Outcome
}

// WorkerCount resolves the pool size for a number of candidates: non-positive
// values mean one worker per CPU, and the pool never exceeds the work.
func WorkerCount(workers, candidates int) int {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	if candidates > 0 && workers > candidates {
		workers = candidates
	}

	return max(workers, 1)
}

func (d *dispatcher) Run(ctx context.Context, candidates []m.Path, workers int) ([]m.Outcome, error) {
	if len(candidates) == 0 {
		return []m.Outcome{}, nil
	}

	workers = WorkerCount(workers, len(candidates))

	d.log.Info("dispatching checks", zap.Int("files", len(candidates)), zap.Int("workers", workers))

	outcomes := make([]m.Outcome, len(candidates))
	completed := make([]bool, len(candidates))

	jobs := make(chan check)
	results := make(chan checkResult, workers)

	g, gctx := errgroup.WithContext(ctx)

	// Feed jobs until done or aborted.
	g.Go(func() error {
		defer close(jobs)

		for i, path := range candidates {
			select {
			case <-gctx.Done():
				return nil
			case jobs <- check{index: i, path: path}:
			}
		}

		return nil
	})

	for workerID := range workers {
		g.Go(func() error {
			return d.work(gctx, workerID, jobs, results)
		})
	}

	// Single collector, so outcomes needs no locking.
	collected := make(chan int)

	go func() {
		count := 0

		for res := range results {
			outcomes[res.index] = res.outcome
			completed[res.index] = true
			count++
		}

		collected <- count
	}()

	err := g.Wait()

	close(results)

	count := <-collected

	if err != nil {
		return nil, err
	}

	if count < len(candidates) {
		partial := make([]m.Outcome, 0, count)

		for i, outcome := range outcomes {
			if completed[i] {
				partial = append(partial, outcome)
			}
		}

		cause := ctx.Err()
		if cause == nil {
			cause = context.Canceled
		}

		return partial, fmt.Errorf("scan interrupted after %d of %d files: %w", count, len(candidates), cause)
	}

	return outcomes, nil
}

// work consumes checks until the jobs channel closes or the group is
// cancelled.
func (d *dispatcher) work(ctx context.Context, workerID int, jobs <-chan check, results chan<- checkResult) error {
	for job := range jobs {
		if ctx.Err() != nil {
			return nil
		}

		outcome, err := d.verify(ctx, workerID, job.path)
		if err != nil {
			return err
		}

		results <- checkResult{index: job.index, outcome: outcome}
	}

	return nil
}

func (d *dispatcher) verify(ctx context.Context, workerID int, path m.Path) (m.Outcome, error) {
	d.observer.DisplayStartingCheck(path, workerID)
	d.log.Debug("checking file", zap.String("path", string(path)), zap.Int("worker", workerID))

	start := time.Now()
	verdict, err := d.verifier.TestFile(ctx, path)
	elapsed := time.Since(start)

	if err != nil {
		if errors.Is(err, m.ErrToolNotFound) {
			d.log.Error("verifier disappeared, aborting", zap.String("path", string(path)), zap.Error(err))
			return m.Outcome{}, err
		}

		d.log.Warn("check could not run", zap.String("path", string(path)), zap.Error(err))
		verdict = m.Verdict{Passed: false, Diagnostic: err.Error()}
	}

	outcome := m.Outcome{
		Path:       path,
		Passed:     verdict.Passed,
		Diagnostic: verdict.Diagnostic,
		Duration:   elapsed,
	}

	if outcome.Passed {
		d.log.Debug("file passed", zap.String("path", string(path)), zap.Duration("elapsed", elapsed))
	} else {
		d.log.Warn("file failed",
			zap.String("path", string(path)),
			zap.Duration("elapsed", elapsed),
			zap.String("diagnostic", outcome.Diagnostic),
		)
	}

	d.observer.DisplayCompletedCheck(outcome, workerID)

	return outcome, nil
}

type noopObserver struct{}

func (noopObserver) DisplayStartingCheck(m.Path, int)     {}
func (noopObserver) DisplayCompletedCheck(m.Outcome, int) {}
