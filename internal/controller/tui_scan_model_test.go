package controller

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	m "github.com/mouse-blink/flacscan/internal/model"
)

func TestTruncatePath(t *testing.T) {
	if got := truncatePath("hello", 0); got != "" {
		t.Fatalf("truncatePath width 0 = %q", got)
	}
	if got := truncatePath("hello", 1); got != "…" {
		t.Fatalf("truncatePath width 1 = %q", got)
	}
	if got := truncatePath("hello", 10); got != "hello" {
		t.Fatalf("truncatePath no truncation = %q", got)
	}
	if got := truncatePath("/music/album/track.flac", 11); got != "…track.flac" {
		t.Fatalf("truncatePath keeps tail = %q", got)
	}
}

func TestScanModel_ProgressCounters(t *testing.T) {
	model := newScanModel(nil)

	updated, _ := model.Update(concurrencyMsg{workers: 2, candidates: 2})
	model = updated.(scanModel)

	updated, _ = model.Update(startCheckMsg{worker: 0, path: "/music/a.flac"})
	model = updated.(scanModel)

	if model.workerFiles[0] != "/music/a.flac" || !model.rendered {
		t.Fatalf("start check not tracked")
	}

	updated, _ = model.Update(completedCheckMsg{worker: 0, path: "/music/a.flac", passed: true})
	model = updated.(scanModel)
	updated, _ = model.Update(completedCheckMsg{worker: 1, path: "/music/b.flac", passed: false})
	model = updated.(scanModel)

	if model.completedCount != 2 || model.passedCount != 1 || model.failedCount != 1 {
		t.Fatalf("counters = %d/%d/%d", model.completedCount, model.passedCount, model.failedCount)
	}

	if model.progressPercent != 1 {
		t.Fatalf("progressPercent = %v, want 1", model.progressPercent)
	}

	if _, busy := model.workerFiles[0]; busy {
		t.Fatalf("worker 0 still marked busy")
	}

	view := model.View()
	if !strings.Contains(view, "Worker 0: idle") || !strings.Contains(view, "Press q to cancel") {
		t.Fatalf("unexpected view:\n%s", view)
	}
}

func TestScanModel_SummaryQuits(t *testing.T) {
	model := newScanModel(nil)

	updated, cmd := model.Update(summaryMsg{summary: m.Summary{Total: 3, Scanned: 3, Passed: 2, Failed: 1}})
	model = updated.(scanModel)

	if !model.finished {
		t.Fatalf("summary did not finish the model")
	}

	if cmd == nil {
		t.Fatalf("summary did not return a command")
	}

	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("summary command is not quit")
	}

	if !strings.Contains(model.View(), "Scanned") {
		t.Fatalf("finished view missing summary:\n%s", model.View())
	}
}

func TestScanModel_QuitKeyCancels(t *testing.T) {
	cancelled := false
	model := newScanModel(func() { cancelled = true })

	updated, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	model = updated.(scanModel)

	if !cancelled || !model.cancelled {
		t.Fatalf("quit key did not cancel the scan")
	}

	if cmd == nil {
		t.Fatalf("quit key did not return a command")
	}

	updated, cmd = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if cmd != nil || updated.(scanModel).finished {
		t.Fatalf("unrelated key changed state")
	}
}

func TestScanModel_InitialView(t *testing.T) {
	model := newScanModel(nil)

	if model.Init() == nil {
		t.Fatalf("Init() returned nil command")
	}

	if !strings.Contains(model.View(), "Scanning") {
		t.Fatalf("initial view = %q", model.View())
	}

	updated, _ := model.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	if updated.(scanModel).width != 120 {
		t.Fatalf("window size not applied")
	}
}
