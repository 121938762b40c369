package controller

import (
	"bytes"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	m "github.com/mouse-blink/flacscan/internal/model"
)

type quitModel struct{}

func (q quitModel) Init() tea.Cmd { return tea.Quit }
func (q quitModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return q, tea.Quit
}
func (q quitModel) View() string { return "" }

func waitWithTimeout(t *testing.T, name string, fn func()) {
	t.Helper()

	done := make(chan struct{})
	go func() {
		fn()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("%s timed out", name)
	}
}

func TestTUI_StartWithModel_WaitAndClose(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	if err := tui.startWithModel(quitModel{}); err != nil {
		t.Fatalf("startWithModel error = %v", err)
	}

	// second start is ignored
	if err := tui.startWithModel(quitModel{}); err != nil {
		t.Fatalf("startWithModel error = %v", err)
	}

	tui.send(toolMsg{version: "flac 1.4.3"})

	waitWithTimeout(t, "Wait()", tui.Wait)
	waitWithTimeout(t, "Close()", tui.Close)
}

func TestTUI_SendBeforeStart_NoPanic(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	tui.send(toolMsg{version: "flac 1.4.3"})
	tui.DisplayConcurrencyInfo(2, 4)

	if buf.Len() != 0 {
		t.Fatalf("expected no output before start, got %q", buf.String())
	}
}

func TestTUI_MultipleClose(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	tui.Close()
	tui.Close()

	tui2 := NewTUI(&buf)
	tui2.Wait()
}

func TestTUI_StartListMode_DoesNotLaunchProgram(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	if err := tui.Start(WithListMode()); err != nil {
		t.Fatalf("Start error = %v", err)
	}

	if tui.started || tui.program != nil {
		t.Fatalf("list mode started a program")
	}

	enumeration := m.Enumeration{
		Candidates: []m.Path{"/music/a.flac", "/music/b.flac"},
		Total:      4,
	}

	if err := tui.DisplayCandidates(enumeration); err != nil {
		t.Fatalf("DisplayCandidates error = %v", err)
	}

	output := buf.String()
	for _, want := range []string{"/music/a.flac", "/music/b.flac", "of", "files selected"} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}
}

func TestTUI_ScanLifecycle_RendersSummaryAndFailures(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	if err := tui.Start(WithScanMode()); err != nil {
		t.Fatalf("Start error = %v", err)
	}

	report := m.Report{
		Summary: m.Summary{Total: 2, Scanned: 2, Passed: 1, Failed: 1},
		Failed: []m.Outcome{{
			Path:       "/music/b.flac",
			Diagnostic: "b.flac: ERROR while decoding data\nstate = FRAME_CRC_MISMATCH",
		}},
	}

	tui.DisplayToolInfo("flac 1.4.3")
	tui.DisplayEnumeration(m.Enumeration{Total: 2, Candidates: []m.Path{"/music/a.flac", "/music/b.flac"}})
	tui.DisplayConcurrencyInfo(1, 2)
	tui.DisplayStartingCheck("/music/a.flac", 0)
	tui.DisplayCompletedCheck(m.Outcome{Path: "/music/a.flac", Passed: true}, 0)
	tui.DisplayStartingCheck("/music/b.flac", 0)
	tui.DisplayCompletedCheck(report.Failed[0], 0)

	waitWithTimeout(t, "DisplaySummary()", func() {
		if err := tui.DisplaySummary(report, ""); err != nil {
			t.Errorf("DisplaySummary error = %v", err)
		}
	})
	waitWithTimeout(t, "Close()", tui.Close)

	output := buf.String()
	for _, want := range []string{"Failed files:", "/music/b.flac", "b.flac: ERROR while decoding data"} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}

	if strings.Contains(output, "FRAME_CRC_MISMATCH") {
		t.Fatalf("only the first diagnostic line should be shown\noutput:\n%s", output)
	}
}

func TestTUI_DisplaySummary_WithoutProgram(t *testing.T) {
	var buf bytes.Buffer
	tui := NewTUI(&buf)

	report := m.Report{Summary: m.Summary{Total: 1, Scanned: 1, Passed: 1}}

	if err := tui.DisplaySummary(report, "/tmp/failed.txt"); err != nil {
		t.Fatalf("DisplaySummary error = %v", err)
	}

	output := buf.String()
	for _, want := range []string{"Scanned", "Failed files written to", "/tmp/failed.txt"} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}
}

func TestFirstLine(t *testing.T) {
	if got := firstLine("  one\ntwo\n"); got != "one" {
		t.Fatalf("firstLine() = %q, want %q", got, "one")
	}

	if got := firstLine(""); got != "" {
		t.Fatalf("firstLine(empty) = %q", got)
	}
}
