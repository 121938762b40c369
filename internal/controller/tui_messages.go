package controller

import (
	m "github.com/mouse-blink/flacscan/internal/model"
)

// Message types.
type toolMsg struct {
	version string
}

type enumerationMsg struct {
	total      int
	candidates int
	skipped    int
}

type concurrencyMsg struct {
	workers    int
	candidates int
}

type startCheckMsg struct {
	worker int
	path   string
}

type completedCheckMsg struct {
	worker int
	path   string
	passed bool
}

type summaryMsg struct {
	summary m.Summary
}
