package adapter

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/flacscan/internal/model"
)

const reportFileMode = 0o644

// ReportStore persists the results of a scan.
type ReportStore interface {
	// SaveFailed writes one failed path per line to path, replacing any
	// previous content. Failures are returned as *model.OutputWriteError.
	SaveFailed(path m.Path, failed []m.Path) error

	// SaveReport writes the full report, including diagnostics, as YAML.
	SaveReport(path m.Path, report m.Report) error
}

// LocalReportStore writes reports to the local filesystem.
type LocalReportStore struct{}

// NewReportStore constructs a ReportStore implementation.
func NewReportStore() ReportStore {
	return &LocalReportStore{}
}

// SaveFailed writes the failed-file list.
func (rs *LocalReportStore) SaveFailed(path m.Path, failed []m.Path) error {
	var buf bytes.Buffer
	for _, p := range failed {
		buf.WriteString(string(p))
		buf.WriteByte('\n')
	}

	return rs.write(path, buf.Bytes())
}

type reportYAML struct {
	RunID   string        `yaml:"run_id"`
	Root    string        `yaml:"root"`
	Summary summaryYAML   `yaml:"summary"`
	Failed  []outcomeYAML `yaml:"failed"`
	Passed  []string      `yaml:"passed"`
	Skipped []string      `yaml:"skipped,omitempty"`
}

type summaryYAML struct {
	Total   int    `yaml:"total"`
	Scanned int    `yaml:"scanned"`
	Passed  int    `yaml:"passed"`
	Failed  int    `yaml:"failed"`
	Elapsed string `yaml:"elapsed"`
}

type outcomeYAML struct {
	Path       string `yaml:"path"`
	Diagnostic string `yaml:"diagnostic,omitempty"`
	Duration   string `yaml:"duration"`
}

// SaveReport writes the report as YAML.
func (rs *LocalReportStore) SaveReport(path m.Path, report m.Report) error {
	doc := reportYAML{
		RunID: report.RunID,
		Root:  string(report.Root),
		Summary: summaryYAML{
			Total:   report.Summary.Total,
			Scanned: report.Summary.Scanned,
			Passed:  report.Summary.Passed,
			Failed:  report.Summary.Failed,
			Elapsed: report.Summary.Elapsed.String(),
		},
		Failed: make([]outcomeYAML, 0, len(report.Failed)),
		Passed: make([]string, 0, len(report.Passed)),
	}

	for _, outcome := range report.Failed {
		doc.Failed = append(doc.Failed, outcomeYAML{
			Path:       string(outcome.Path),
			Diagnostic: outcome.Diagnostic,
			Duration:   outcome.Duration.String(),
		})
	}

	for _, outcome := range report.Passed {
		doc.Passed = append(doc.Passed, string(outcome.Path))
	}

	for _, skipped := range report.Skipped {
		doc.Skipped = append(doc.Skipped, string(skipped))
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return &m.OutputWriteError{Path: path, Err: fmt.Errorf("marshal report: %w", err)}
	}

	return rs.write(path, data)
}

func (rs *LocalReportStore) write(path m.Path, data []byte) error {
	if err := os.WriteFile(string(path), data, reportFileMode); err != nil {
		return &m.OutputWriteError{Path: path, Err: err}
	}

	return nil
}
