// Package controller provides output adapters for displaying scan progress
// and results.
package controller

import (
	"context"

	m "github.com/mouse-blink/flacscan/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeScan StartMode = iota
	ModeList
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode   StartMode
	cancel context.CancelFunc
}

// WithScanMode sets the UI to live verification mode.
func WithScanMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeScan
	}
}

// WithListMode sets the UI to candidate listing mode.
func WithListMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeList
	}
}

// WithCancel lets an interactive UI stop the scan when the user quits.
func WithCancel(cancel context.CancelFunc) StartOption {
	return func(c *StartConfig) {
		c.cancel = cancel
	}
}

func newStartConfig(options []StartOption) StartConfig {
	cfg := StartConfig{mode: ModeScan}
	for _, option := range options {
		option(&cfg)
	}

	return cfg
}

// UI defines the interface for displaying a scan.
// Implementations can use different output methods (simple text, TUI, etc).
// Display*Check methods are called concurrently from worker goroutines.
type UI interface {
	Start(options ...StartOption) error
	Close()
	Wait() // Wait for UI to finish rendering
	DisplayToolInfo(version string)
	DisplayEnumeration(enumeration m.Enumeration)
	DisplayConcurrencyInfo(workers int, candidates int)
	DisplayStartingCheck(path m.Path, workerID int)
	DisplayCompletedCheck(outcome m.Outcome, workerID int)
	DisplayCandidates(enumeration m.Enumeration) error
	DisplaySummary(report m.Report, output m.Path) error
}
