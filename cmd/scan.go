package cmd

import (
	"fmt"

	"github.com/mouse-blink/flacscan/internal/config"
	"github.com/mouse-blink/flacscan/internal/domain"
	m "github.com/mouse-blink/flacscan/internal/model"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var scanOutputFlag string
var scanReportFlag string
var scanWorkersFlag int
var scanExtFlags []string
var scanTimeoutFlag string
var scanToolFlag string
var scanListFlag bool

// scanCmd represents the scan command.
var scanCmd = newScanCmd()

func newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan <base_path>",
		Short: "Verify every FLAC file under a directory",
		Long: `Scan recursively collects the files under base_path whose extension
matches (flac by default) and checks each one with "flac -t -s".

Examples:
  flacscan scan ~/Music
  flacscan scan /srv/music --workers 4 --output failed.txt
  flacscan --quiet scan /srv/music --report run.yaml
  flacscan scan /srv/music --list`,
		Args: cobra.ExactArgs(1),
		RunE: runScan,
	}
	cmd.Flags().StringVarP(&scanOutputFlag, "output", "o", "", "write failed file paths to this file instead of printing them")
	cmd.Flags().StringVar(&scanReportFlag, "report", "", "write a YAML report of the run to this file")
	cmd.Flags().IntVarP(&scanWorkersFlag, "workers", "w", 0, "number of concurrent checks (default: number of CPUs)")
	cmd.Flags().StringArrayVarP(&scanExtFlags, "ext", "e", nil, "file extension to check (can be repeated)")
	cmd.Flags().StringVar(&scanTimeoutFlag, "timeout", "", "maximum duration of a single check (e.g. 2m)")
	cmd.Flags().StringVar(&scanToolFlag, "tool", "", "decoder binary name or path")
	cmd.Flags().BoolVarP(&scanListFlag, "list", "l", false, "only list the files that would be checked")

	return cmd
}

func init() {
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	cfg, err = applyScanFlags(cmd, cfg)
	if err != nil {
		return err
	}

	log, err := newLogger(cmd, cfg)
	if err != nil {
		return err
	}

	defer func() { _ = log.Sync() }()

	root, err := fsAdapter.ResolveRoot(m.Path(args[0]))
	if err != nil {
		return err
	}

	workflow, err := newWorkflow(cmd, cfg, log)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	listArgs := domain.ListArgs{Root: root}

	if scanListFlag {
		return workflow.List(ctx, listArgs)
	}

	log.Debug("starting scan",
		zap.String("root", string(root)),
		zap.Int("workers", cfg.Workers),
		zap.Strings("extensions", cfg.Extensions),
	)

	_, err = workflow.Scan(ctx, domain.ScanArgs{
		ListArgs: listArgs,
		Output:   m.Path(scanOutputFlag),
		Report:   m.Path(scanReportFlag),
		Workers:  cfg.Workers,
	})

	return err
}

// applyScanFlags overlays the flags the user set on top of cfg.
func applyScanFlags(cmd *cobra.Command, cfg config.Config) (config.Config, error) {
	flags := cmd.Flags()

	if flags.Changed("workers") {
		cfg.Workers = scanWorkersFlag
	}

	if flags.Changed("ext") {
		cfg.Extensions = scanExtFlags
	}

	if flags.Changed("timeout") {
		cfg.Verifier.Timeout = scanTimeoutFlag
	}

	if flags.Changed("tool") {
		cfg.Verifier.Binary = scanToolFlag
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid flags: %w", err)
	}

	return cfg, nil
}
