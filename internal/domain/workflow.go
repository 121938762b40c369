package domain

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mouse-blink/flacscan/internal/adapter"
	"github.com/mouse-blink/flacscan/internal/controller"
	m "github.com/mouse-blink/flacscan/internal/model"
	"go.uber.org/zap"
)

// ListArgs contains the arguments for listing candidate files.
type ListArgs struct {
	Root m.Path
}

// ScanArgs contains the arguments for verifying a directory tree.
type ScanArgs struct {
	ListArgs
	// Output receives the failed paths, one per line. Empty prints them.
	Output m.Path
	// Report receives the full run report as YAML. Empty skips it.
	Report  m.Path
	Workers int
}

// Workflow runs the scan pipeline: walk, verify, summarize, report.
type Workflow interface {
	List(ctx context.Context, args ListArgs) error
	Scan(ctx context.Context, args ScanArgs) (m.Report, error)
}

type workflow struct {
	walker      Walker
	verifier    adapter.VerifierAdapter
	dispatcher  Dispatcher
	reportStore adapter.ReportStore
	ui          controller.UI
	log         *zap.Logger
}

// NewWorkflow creates a new Workflow instance with the provided collaborators.
func NewWorkflow(
	walker Walker,
	verifier adapter.VerifierAdapter,
	dispatcher Dispatcher,
	reportStore adapter.ReportStore,
	ui controller.UI,
	log *zap.Logger,
) Workflow {
	if log == nil {
		log = zap.NewNop()
	}

	return &workflow{
		walker:      walker,
		verifier:    verifier,
		dispatcher:  dispatcher,
		reportStore: reportStore,
		ui:          ui,
		log:         log,
	}
}

// List enumerates the candidates under the root without verifying them.
func (w *workflow) List(ctx context.Context, args ListArgs) error {
	if err := w.ui.Start(controller.WithListMode()); err != nil {
		return fmt.Errorf("failed to start UI: %w", err)
	}
	defer w.ui.Close()

	enumeration, err := w.walker.Enumerate(ctx, args.Root)
	if err != nil {
		return err
	}

	return w.ui.DisplayCandidates(enumeration)
}

// Scan verifies every candidate under the root. Files that fail to decode
// are data in the report, never an error. A missing verifier, a failed
// output write or an interruption is.
func (w *workflow) Scan(ctx context.Context, args ScanArgs) (m.Report, error) {
	runID := uuid.NewString()
	log := w.log.With(zap.String("run_id", runID))

	version, err := w.verifier.Identify(ctx)
	if err != nil {
		log.Error("verifier unavailable", zap.Error(err))
		return m.Report{}, err
	}

	log.Info("verifier found", zap.String("version", version))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := w.ui.Start(controller.WithScanMode(), controller.WithCancel(cancel)); err != nil {
		return m.Report{}, fmt.Errorf("failed to start UI: %w", err)
	}
	defer w.ui.Close()

	w.ui.DisplayToolInfo(version)

	enumeration, err := w.walker.Enumerate(ctx, args.Root)
	if err != nil {
		return m.Report{}, err
	}

	w.ui.DisplayEnumeration(enumeration)

	workers := WorkerCount(args.Workers, len(enumeration.Candidates))
	w.ui.DisplayConcurrencyInfo(workers, len(enumeration.Candidates))

	start := time.Now()
	outcomes, dispatchErr := w.dispatcher.Run(ctx, enumeration.Candidates, workers)
	elapsed := time.Since(start)

	if dispatchErr != nil && outcomes == nil {
		return m.Report{}, dispatchErr
	}

	report := Summarize(enumeration, outcomes, elapsed)
	report.RunID = runID

	log.Info("scan finished",
		zap.Int("total", report.Summary.Total),
		zap.Int("scanned", report.Summary.Scanned),
		zap.Int("passed", report.Summary.Passed),
		zap.Int("failed", report.Summary.Failed),
		zap.Duration("elapsed", elapsed),
	)

	if dispatchErr != nil {
		log.Warn("scan interrupted, no files written", zap.Error(dispatchErr))

		if err := w.ui.DisplaySummary(report, ""); err != nil {
			log.Warn("failed to display summary", zap.Error(err))
		}

		return report, dispatchErr
	}

	if err := w.save(log, args, report); err != nil {
		if displayErr := w.ui.DisplaySummary(report, ""); displayErr != nil {
			log.Warn("failed to display summary", zap.Error(displayErr))
		}

		return report, err
	}

	if err := w.ui.DisplaySummary(report, args.Output); err != nil {
		return report, err
	}

	return report, nil
}

func (w *workflow) save(log *zap.Logger, args ScanArgs, report m.Report) error {
	if args.Output != "" {
		if err := w.reportStore.SaveFailed(args.Output, report.FailedPaths()); err != nil {
			log.Error("failed to write output file", zap.String("path", string(args.Output)), zap.Error(err))
			return err
		}

		log.Info("failed files written", zap.String("path", string(args.Output)), zap.Int("count", report.Summary.Failed))
	}

	if args.Report != "" {
		if err := w.reportStore.SaveReport(args.Report, report); err != nil {
			log.Error("failed to write report", zap.String("path", string(args.Report)), zap.Error(err))
			return err
		}

		log.Info("report written", zap.String("path", string(args.Report)))
	}

	return nil
}
