package model

import "time"

// Verdict is what the external verifier says about a single file.
type Verdict struct {
	Passed     bool
	Diagnostic string // captured stderr or failure reason, empty when passed
}

// Outcome represents the result of verifying one candidate file.
type Outcome struct {
	Path       Path
	Passed     bool
	Diagnostic string
	Duration   time.Duration
}

// Summary holds the counters of a finished scan.
type Summary struct {
	Total   int // files traversed
	Scanned int // candidates submitted for verification
	Passed  int
	Failed  int
	Elapsed time.Duration // wall-clock time of the verification phase
}

// Report is the full result of a scan run.
type Report struct {
	RunID   string
	Root    Path
	Summary Summary
	Passed  []Outcome
	Failed  []Outcome
	Skipped []Path
}

// FailedPaths returns the paths of the failed outcomes in report order.
func (r Report) FailedPaths() []Path {
	paths := make([]Path, 0, len(r.Failed))
	for _, outcome := range r.Failed {
		paths = append(paths, outcome.Path)
	}

	return paths
}
