package controller

import (
	"fmt"
	"io"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	m "github.com/mouse-blink/flacscan/internal/model"
)

// TUI implements UI using Bubble Tea for a live progress display.
type TUI struct {
	output io.Writer

	mu      sync.Mutex
	program *tea.Program
	started bool
	done    chan struct{}
	// summarized reports whether the program rendered the summary itself
	summarized bool
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the progress display. List mode renders statically and
// starts nothing.
func (t *TUI) Start(options ...StartOption) error {
	cfg := newStartConfig(options)
	if cfg.mode == ModeList {
		return nil
	}

	return t.startWithModel(newScanModel(cfg.cancel))
}

func (t *TUI) startWithModel(model tea.Model) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.started {
		return nil
	}

	program := tea.NewProgram(model, tea.WithOutput(t.output))
	done := make(chan struct{})
	t.program = program
	t.done = done
	t.started = true

	go func() {
		defer close(done)

		final, _ := program.Run()
		if model, ok := final.(scanModel); ok && model.finished {
			t.mu.Lock()
			t.summarized = true
			t.mu.Unlock()
		}
	}()

	return nil
}

func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	program := t.program
	started := t.started
	t.mu.Unlock()

	if !started || program == nil {
		return
	}

	program.Send(msg)
}

// Wait blocks until the program exits.
func (t *TUI) Wait() {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()

	if done == nil {
		return
	}

	<-done
}

// Close stops the program and waits for it to exit.
func (t *TUI) Close() {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Quit()
	t.Wait()
}

// DisplayToolInfo shows the verifier version.
func (t *TUI) DisplayToolInfo(version string) {
	t.send(toolMsg{version: version})
}

// DisplayEnumeration shows the walk totals.
func (t *TUI) DisplayEnumeration(enumeration m.Enumeration) {
	t.send(enumerationMsg{
		total:      enumeration.Total,
		candidates: len(enumeration.Candidates),
		skipped:    len(enumeration.Skipped),
	})
}

// DisplayConcurrencyInfo shows the worker pool size.
func (t *TUI) DisplayConcurrencyInfo(workers int, candidates int) {
	t.send(concurrencyMsg{workers: workers, candidates: candidates})
}

// DisplayStartingCheck marks a worker busy with path.
func (t *TUI) DisplayStartingCheck(path m.Path, workerID int) {
	t.send(startCheckMsg{worker: workerID, path: string(path)})
}

// DisplayCompletedCheck records a finished check.
func (t *TUI) DisplayCompletedCheck(outcome m.Outcome, workerID int) {
	t.send(completedCheckMsg{worker: workerID, path: string(outcome.Path), passed: outcome.Passed})
}

// DisplayCandidates prints the candidate list.
func (t *TUI) DisplayCandidates(enumeration m.Enumeration) error {
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	pathStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	var b strings.Builder

	b.WriteString(titleStyle.Render("flacscan candidates"))
	b.WriteString("\n")

	for _, path := range enumeration.Candidates {
		b.WriteString("  ")
		b.WriteString(pathStyle.Render(string(path)))
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\n%s of %s files selected\n",
		accentStyle.Render(fmt.Sprintf("%d", len(enumeration.Candidates))),
		accentStyle.Render(fmt.Sprintf("%d", enumeration.Total)),
	)

	_, err := fmt.Fprint(t.output, b.String())

	return err
}

// DisplaySummary lets the progress display render the final counters, then
// prints the failed files below it.
func (t *TUI) DisplaySummary(report m.Report, output m.Path) error {
	t.send(summaryMsg{summary: report.Summary})
	t.Wait()

	t.mu.Lock()
	summarized := t.summarized
	t.mu.Unlock()

	var b strings.Builder

	if !summarized {
		b.WriteString(renderSummary(report.Summary, 0))
		b.WriteString("\n")
	}

	failStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	pathStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	diagStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	okStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)

	if len(report.Skipped) > 0 {
		fmt.Fprintf(&b, "Skipped %d unreadable path(s)\n", len(report.Skipped))
	}

	switch {
	case output != "":
		fmt.Fprintf(&b, "Failed files written to %s\n", pathStyle.Render(string(output)))
	case len(report.Failed) == 0:
		b.WriteString(okStyle.Render("No failed files"))
		b.WriteString("\n")
	default:
		b.WriteString(failStyle.Render("Failed files:"))
		b.WriteString("\n")

		for _, outcome := range report.Failed {
			b.WriteString(pathStyle.Render(string(outcome.Path)))
			b.WriteString("\n")

			if line := firstLine(outcome.Diagnostic); line != "" {
				b.WriteString("    ")
				b.WriteString(diagStyle.Render(line))
				b.WriteString("\n")
			}
		}
	}

	_, err := fmt.Fprint(t.output, b.String())

	return err
}

func firstLine(text string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(text), "\n")

	return strings.TrimSpace(line)
}
