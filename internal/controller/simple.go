package controller

import (
	"bytes"
	"fmt"
	"time"

	m "github.com/mouse-blink/flacscan/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI using plain text on the command's output. Per-file
// progress is left to the log stream.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(_ ...StartOption) error {
	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {}

// Wait returns immediately; nothing renders asynchronously.
func (s *SimpleUI) Wait() {}

// DisplayToolInfo prints the verifier version.
func (s *SimpleUI) DisplayToolInfo(version string) {
	s.printf("Verifier: %s\n", version)
}

// DisplayEnumeration is a no-op; totals are part of the summary.
func (s *SimpleUI) DisplayEnumeration(_ m.Enumeration) {}

// DisplayConcurrencyInfo shows how the checks are dispatched.
func (s *SimpleUI) DisplayConcurrencyInfo(workers int, candidates int) {
	s.printf("Checking %d file(s) with %d worker(s)\n", candidates, workers)
}

// DisplayStartingCheck is a no-op.
func (s *SimpleUI) DisplayStartingCheck(_ m.Path, _ int) {}

// DisplayCompletedCheck is a no-op.
func (s *SimpleUI) DisplayCompletedCheck(_ m.Outcome, _ int) {}

// DisplayCandidates prints the files a scan would verify.
func (s *SimpleUI) DisplayCandidates(enumeration m.Enumeration) error {
	if len(enumeration.Candidates) == 0 {
		s.printf("No matching files found (%d files traversed)\n", enumeration.Total)
		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT})

	for _, path := range enumeration.Candidates {
		table.Append([]string{string(path)})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Candidates %d of %d files", len(enumeration.Candidates), enumeration.Total),
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplaySummary prints the counters followed by the failed files, or the
// name of the file they were written to.
func (s *SimpleUI) DisplaySummary(report m.Report, output m.Path) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Result", "Count"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT})

	summary := report.Summary
	table.AppendBulk([][]string{
		{"Total files", fmt.Sprintf("%d", summary.Total)},
		{"Scanned", fmt.Sprintf("%d", summary.Scanned)},
		{"Passed", fmt.Sprintf("%d", summary.Passed)},
		{"Failed", fmt.Sprintf("%d", summary.Failed)},
		{"Elapsed", summary.Elapsed.Round(time.Millisecond).String()},
	})

	table.Render()
	s.printf("\n%s\n", tableBuffer.String())

	if len(report.Skipped) > 0 {
		s.printf("Skipped %d unreadable path(s)\n", len(report.Skipped))
	}

	if output != "" {
		s.printf("Failed files written to %s\n", output)
		return nil
	}

	if len(report.Failed) == 0 {
		s.printf("No failed files\n")
		return nil
	}

	s.printf("Failed files:\n")

	for _, outcome := range report.Failed {
		s.printf("%s\n", outcome.Path)
	}

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
