package framework

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// SummaryReport is the content of the short JSON report written at the end of a run.
type SummaryReport struct {
	Summary SummaryCounts       `json:"summary"`
	Tests   []SummaryTestResult `json:"tests"`
}

type SummaryCounts struct {
	Total    int     `json:"total"`
	Passed   int     `json:"passed"`
	Failed   int     `json:"failed"`
	Errors   int     `json:"errors"`
	Skipped  int     `json:"skipped"`
	Duration float64 `json:"duration"`
	ExitCode int     `json:"exitCode"`
}

type SummaryTestResult struct {
	Name     string  `json:"name"`
	Status   Status  `json:"status"`
	Duration float64 `json:"duration"`
	Error    string  `json:"error,omitempty"`
}

// NewSummaryReport converts the results of a run into the summary report format. Durations
// are in seconds.
func NewSummaryReport(results Results) SummaryReport {
	s := results.Summary()
	report := SummaryReport{
		Summary: SummaryCounts{
			Total:    s.Total,
			Passed:   s.Passed,
			Failed:   s.Failed,
			Errors:   s.Errors,
			Skipped:  s.Skipped,
			Duration: s.Duration.Seconds(),
			ExitCode: s.ExitCode,
		},
		Tests: make([]SummaryTestResult, 0, len(results.Tests)),
	}
	for _, t := range results.Tests {
		report.Tests = append(report.Tests, SummaryTestResult{
			Name:     t.TestID.String(),
			Status:   t.Status,
			Duration: t.Duration.Seconds(),
			Error:    t.ErrorMessage(),
		})
	}
	return report
}

// WriteSummaryReport writes the summary report for a run to the given path, creating the
// parent directory if necessary.
func WriteSummaryReport(path string, results Results) error {
	return writeJSONFile(path, NewSummaryReport(results))
}

// ReadSummaryReport loads a summary report written by a previous run.
func ReadSummaryReport(path string) (SummaryReport, error) {
	var report SummaryReport
	data, err := os.ReadFile(path)
	if err != nil {
		return report, fmt.Errorf("read summary report: %w", err)
	}
	if err := json.Unmarshal(data, &report); err != nil {
		return report, fmt.Errorf("malformed summary report %s: %w", path, err)
	}
	return report, nil
}

func writeJSONFile(path string, content interface{}) error {
	data, err := json.MarshalIndent(content, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create report directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}
	return nil
}
