package domain

import (
	"time"

	m "github.com/mouse-blink/flacscan/internal/model"
)

// Summarize partitions outcomes into passed and failed, keeping their order,
// and derives the scan counters.
func Summarize(enumeration m.Enumeration, outcomes []m.Outcome, elapsed time.Duration) m.Report {
	report := m.Report{
		Root:    enumeration.Root,
		Passed:  []m.Outcome{},
		Failed:  []m.Outcome{},
		Skipped: enumeration.Skipped,
	}

	for _, outcome := range outcomes {
		if outcome.Passed {
			report.Passed = append(report.Passed, outcome)
		} else {
			report.Failed = append(report.Failed, outcome)
		}
	}

	report.Summary = m.Summary{
		Total:   enumeration.Total,
		Scanned: len(outcomes),
		Passed:  len(report.Passed),
		Failed:  len(report.Failed),
		Elapsed: elapsed,
	}

	return report
}
