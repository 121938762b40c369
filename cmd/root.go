// Package cmd provides the root command and CLI setup for flacscan.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mouse-blink/flacscan/internal/adapter"
	"github.com/mouse-blink/flacscan/internal/config"
	"github.com/mouse-blink/flacscan/internal/controller"
	"github.com/mouse-blink/flacscan/internal/domain"
	"github.com/mouse-blink/flacscan/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var quietFlag bool
var configFlag string

var fsAdapter adapter.SourceFSAdapter = adapter.NewLocalSourceFSAdapter()

// newWorkflow assembles the pipeline for one command run.
var newWorkflow = buildWorkflow

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flacscan",
		Short: "Verify the integrity of FLAC files",
		Long: `flacscan walks a directory tree, decodes every FLAC file it finds with the
reference decoder in test mode and reports the files that fail to decode.

Checks run in parallel on a bounded pool of workers. Files that fail are
printed or written to a file; the exit code only reflects whether the scan
itself completed.`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false, "disable logging")
	cmd.PersistentFlags().StringVar(&configFlag, "config", "", "path to a YAML configuration file")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}

func newLogger(cmd *cobra.Command, cfg config.Config) (*zap.Logger, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}

	return logging.New(logging.Options{
		Quiet:  quietFlag,
		Level:  level,
		Output: cmd.ErrOrStderr(),
	}), nil
}

func buildWorkflow(cmd *cobra.Command, cfg config.Config, log *zap.Logger) (domain.Workflow, error) {
	timeout, err := cfg.Timeout()
	if err != nil {
		return nil, err
	}

	// the live display would fight with log lines for the terminal
	ui := controller.NewUI(cmd, quietFlag && controller.IsTTY(cmd.OutOrStdout()))

	verifier := adapter.NewLocalVerifierAdapter(adapter.VerifierOptions{
		Binary:       cfg.Verifier.Binary,
		IdentifyArgs: cfg.Verifier.IdentifyArgs,
		TestArgs:     cfg.Verifier.TestArgs,
		Timeout:      timeout,
	}, log.Named("verifier"))

	walker := domain.NewWalker(fsAdapter, domain.NewExtensionSet(cfg.Extensions...), log.Named("walker"))
	dispatcher := domain.NewDispatcher(verifier, ui, log.Named("dispatcher"))

	if timeout > 0 {
		log.Debug("per-check timeout enabled", zap.Duration("timeout", timeout))
	}

	return domain.NewWorkflow(walker, verifier, dispatcher, adapter.NewReportStore(), ui, log), nil
}

func loadConfig() (config.Config, error) {
	cfg, err := config.Load(configFlag)
	if err != nil {
		return config.Config{}, fmt.Errorf("configuration error: %w", err)
	}

	return cfg, nil
}
