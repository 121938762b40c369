package controller

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	m "github.com/mouse-blink/flacscan/internal/model"
)

const defaultWidth = 80

type tickMsg time.Time

// scanModel renders live progress while files are being verified.
type scanModel struct {
	width           int
	progressBar     progress.Model
	cancel          context.CancelFunc
	version         string
	total           int
	candidates      int
	skipped         int
	workers         int
	completedCount  int
	passedCount     int
	failedCount     int
	progressPercent float64
	workerFiles     map[int]string
	started         time.Time
	elapsed         time.Duration
	rendered        bool
	finished        bool
	cancelled       bool
	summary         m.Summary
}

func newScanModel(cancel context.CancelFunc) scanModel {
	prog := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(40),
		progress.WithoutPercentage(),
	)

	return scanModel{
		width:       defaultWidth,
		progressBar: prog,
		cancel:      cancel,
		workerFiles: make(map[int]string),
		started:     time.Now(),
	}
}

func tick() tea.Cmd {
	return tea.Tick(time.Millisecond*100, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (s scanModel) Init() tea.Cmd {
	return tick()
}

func (s scanModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width

	case tea.KeyMsg:
		return s.handleKeyMsg(msg)

	case tickMsg:
		if s.finished {
			return s, nil
		}

		s.elapsed = time.Since(s.started)

		return s, tick()

	case toolMsg:
		s.version = msg.version
		s.rendered = true

	case enumerationMsg:
		s.total = msg.total
		s.candidates = msg.candidates
		s.skipped = msg.skipped
		s.rendered = true

	case concurrencyMsg:
		s.workers = msg.workers
		s.candidates = msg.candidates
		s.completedCount = 0
		s.progressPercent = 0

	case startCheckMsg:
		s = s.handleStartCheck(msg)

	case completedCheckMsg:
		s = s.handleCompletedCheck(msg)

	case summaryMsg:
		s.summary = msg.summary
		s.finished = true
		s.rendered = true

		return s, tea.Quit
	}

	return s, nil
}

func (s scanModel) handleKeyMsg(msg tea.KeyMsg) (scanModel, tea.Cmd) {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		s.cancelled = true
		if s.cancel != nil {
			s.cancel()
		}

		return s, tea.Quit
	}

	return s, nil
}

func (s scanModel) handleStartCheck(msg startCheckMsg) scanModel {
	s.workerFiles[msg.worker] = msg.path
	s.rendered = true

	return s
}

func (s scanModel) handleCompletedCheck(msg completedCheckMsg) scanModel {
	s.completedCount++
	if msg.passed {
		s.passedCount++
	} else {
		s.failedCount++
	}

	if s.workerFiles[msg.worker] == msg.path {
		delete(s.workerFiles, msg.worker)
	}

	if s.candidates > 0 {
		s.progressPercent = float64(s.completedCount) / float64(s.candidates)
	}

	return s
}

func (s scanModel) View() string {
	if s.finished {
		return renderSummary(s.summary, s.width) + "\n"
	}

	if !s.rendered {
		return "Scanning…\n"
	}

	return s.viewProgress()
}

func (s scanModel) viewProgress() string {
	accentColor := lipgloss.Color("6")

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(accentColor)

	title := titleStyle.Render("flacscan")
	if s.version != "" {
		title = titleStyle.Render("flacscan  " + s.version)
	}

	summary := summaryStyle.Render(fmt.Sprintf(
		"Progress: %s / %s  •  Passed: %s  •  Failed: %s  •  Workers: %s  •  %s",
		accentStyle.Render(fmt.Sprintf("%d", s.completedCount)),
		accentStyle.Render(fmt.Sprintf("%d", s.candidates)),
		accentStyle.Render(fmt.Sprintf("%d", s.passedCount)),
		accentStyle.Render(fmt.Sprintf("%d", s.failedCount)),
		accentStyle.Render(fmt.Sprintf("%d", s.workers)),
		s.elapsed.Round(time.Second),
	))

	progressView := lipgloss.NewStyle().
		Padding(0, 2).
		Render(s.progressBar.ViewAs(s.progressPercent))

	footer := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Padding(1, 0, 0, 2).
		Render("Press q to cancel")

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		summary,
		progressView,
		s.renderWorkerBox(accentColor),
		footer,
	)
}

func (s scanModel) renderWorkerBox(accentColor lipgloss.Color) string {
	contentStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentColor).
		Padding(0, 1).
		Margin(1, 1, 0, 0).
		Width(s.width - 4)

	fileStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14"))

	// width minus border and padding
	availableWidth := s.width - 4 - 2 - 2

	workers := max(s.workers, 1)
	digits := len(fmt.Sprintf("%d", workers-1))
	labelFormat := fmt.Sprintf("Worker %%%dd: %%s", digits)
	prefixWidth := 7 + digits + 2

	lines := make([]string, 0, workers)

	for i := range workers {
		content := "idle"
		if file, ok := s.workerFiles[i]; ok {
			content = fileStyle.Render(truncatePath(file, max(availableWidth-prefixWidth, 10)))
		}

		if workers > 1 {
			lines = append(lines, fmt.Sprintf(labelFormat, i, content))
		} else {
			lines = append(lines, content)
		}
	}

	return contentStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func renderSummary(summary m.Summary, width int) string {
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	passStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	failStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("6")).
		Padding(0, 1)

	if width > 4 {
		box = box.Width(width - 4)
	}

	return box.Render(fmt.Sprintf(
		"Total: %s  •  Scanned: %s  •  Passed: %s  •  Failed: %s  •  Elapsed: %s",
		accentStyle.Render(fmt.Sprintf("%d", summary.Total)),
		accentStyle.Render(fmt.Sprintf("%d", summary.Scanned)),
		passStyle.Render(fmt.Sprintf("%d", summary.Passed)),
		failStyle.Render(fmt.Sprintf("%d", summary.Failed)),
		accentStyle.Render(summary.Elapsed.Round(time.Millisecond).String()),
	))
}

// truncatePath keeps the tail of a path, which carries the file name.
func truncatePath(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	ellipsis := "…"
	if width <= 1 {
		return ellipsis
	}

	maxWidth := width - lipgloss.Width(ellipsis)
	runes := []rune(text)
	currentWidth := 0
	start := len(runes)

	for start > 0 {
		rWidth := lipgloss.Width(string(runes[start-1]))
		if currentWidth+rWidth > maxWidth {
			break
		}

		currentWidth += rWidth
		start--
	}

	return ellipsis + string(runes[start:])
}
