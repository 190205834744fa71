package framework

import (
	"time"
)

const detailedReportTimeFormat = "2006-01-02T15:04:05.000Z07:00"

// ReportMetadata describes the environment of a test run for the detailed report.
type ReportMetadata struct {
	// SuiteTitle is the title of the top-level suite that every test belongs to.
	SuiteTitle string
	// ProjectName identifies the browser configuration, for instance "chromium".
	ProjectName string
	BaseURL     string
	// Version identifies the browser that produced the results.
	Version string
	// Timeout is the per-element wait budget.
	Timeout time.Duration
}

// The types below follow the layout of the Playwright JSON reporter, so that the detailed
// report can be read by the same tooling that reads Playwright's own reports.

type detailedReport struct {
	Config detailedConfig  `json:"config"`
	Suites []detailedSuite `json:"suites"`
	Errors []detailedError `json:"errors"`
	Stats  detailedStats   `json:"stats"`
}

type detailedConfig struct {
	Version  string            `json:"version"`
	Workers  int               `json:"workers"`
	Projects []detailedProject `json:"projects"`
}

type detailedProject struct {
	Name    string            `json:"name"`
	Timeout int64             `json:"timeout"`
	Use     map[string]string `json:"use,omitempty"`
}

type detailedSuite struct {
	Title string         `json:"title"`
	File  string         `json:"file"`
	Specs []detailedSpec `json:"specs"`
}

type detailedSpec struct {
	Title string         `json:"title"`
	OK    bool           `json:"ok"`
	Tags  []string       `json:"tags"`
	Tests []detailedTest `json:"tests"`
}

type detailedTest struct {
	ProjectName    string           `json:"projectName"`
	ExpectedStatus string           `json:"expectedStatus"`
	Status         string           `json:"status"`
	Annotations    []detailedNote   `json:"annotations"`
	Results        []detailedResult `json:"results"`
}

type detailedNote struct {
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
}

type detailedResult struct {
	WorkerIndex int                  `json:"workerIndex"`
	Status      string               `json:"status"`
	Duration    int64                `json:"duration"`
	StartTime   string               `json:"startTime"`
	Retry       int                  `json:"retry"`
	Error       *detailedError       `json:"error,omitempty"`
	Errors      []detailedError      `json:"errors"`
	Stdout      []detailedStdio      `json:"stdout"`
	Stderr      []detailedStdio      `json:"stderr"`
	Attachments []detailedAttachment `json:"attachments"`
}

type detailedError struct {
	Message string `json:"message"`
}

type detailedStdio struct {
	Text string `json:"text"`
}

type detailedAttachment struct {
	Name        string `json:"name"`
	ContentType string `json:"contentType"`
	Path        string `json:"path"`
}

type detailedStats struct {
	StartTime  string  `json:"startTime"`
	Duration   float64 `json:"duration"`
	Expected   int     `json:"expected"`
	Skipped    int     `json:"skipped"`
	Unexpected int     `json:"unexpected"`
	Flaky      int     `json:"flaky"`
}

// WriteDetailedReport writes a detailed report of the run, including debug output and
// attachments for every test, to the given path.
func WriteDetailedReport(path string, results Results, meta ReportMetadata) error {
	return writeJSONFile(path, newDetailedReport(results, meta))
}

func newDetailedReport(results Results, meta ReportMetadata) detailedReport {
	project := detailedProject{
		Name:    meta.ProjectName,
		Timeout: meta.Timeout.Milliseconds(),
	}
	if meta.BaseURL != "" {
		project.Use = map[string]string{"baseURL": meta.BaseURL}
	}
	suite := detailedSuite{
		Title: meta.SuiteTitle,
		File:  meta.SuiteTitle,
		Specs: []detailedSpec{},
	}
	summary := results.Summary()

	for _, t := range results.Tests {
		suite.Specs = append(suite.Specs, detailedSpec{
			Title: t.TestID.String(),
			OK:    t.Status == StatusPass,
			Tags:  []string{},
			Tests: []detailedTest{newDetailedTest(t, meta.ProjectName)},
		})
	}
	for _, s := range results.Skipped {
		note := detailedNote{Type: "skip", Description: s.Reason}
		suite.Specs = append(suite.Specs, detailedSpec{
			Title: s.TestID.String(),
			OK:    true,
			Tags:  []string{},
			Tests: []detailedTest{{
				ProjectName:    meta.ProjectName,
				ExpectedStatus: "skipped",
				Status:         "skipped",
				Annotations:    []detailedNote{note},
				Results:        []detailedResult{},
			}},
		})
	}

	return detailedReport{
		Config: detailedConfig{
			Version:  meta.Version,
			Workers:  1,
			Projects: []detailedProject{project},
		},
		Suites: []detailedSuite{suite},
		Errors: []detailedError{},
		Stats: detailedStats{
			StartTime:  results.StartTime.UTC().Format(detailedReportTimeFormat),
			Duration:   float64(results.Duration.Microseconds()) / 1000,
			Expected:   summary.Passed,
			Skipped:    summary.Skipped,
			Unexpected: summary.Failed,
		},
	}
}

func newDetailedTest(t TestResult, projectName string) detailedTest {
	r := detailedResult{
		Status:      "passed",
		Duration:    t.Duration.Milliseconds(),
		StartTime:   t.StartTime.UTC().Format(detailedReportTimeFormat),
		Errors:      []detailedError{},
		Stdout:      []detailedStdio{},
		Stderr:      []detailedStdio{},
		Attachments: []detailedAttachment{},
	}
	for _, e := range t.Errors {
		r.Errors = append(r.Errors, detailedError{Message: e.Error()})
	}
	if len(r.Errors) > 0 {
		r.Status = "failed"
		r.Error = &r.Errors[0]
	}
	for _, line := range t.DebugOutput.Lines() {
		r.Stdout = append(r.Stdout, detailedStdio{Text: line + "\n"})
	}
	for _, a := range t.Attachments {
		r.Attachments = append(r.Attachments, detailedAttachment(a))
	}

	status := "expected"
	if t.Status != StatusPass {
		status = "unexpected"
		r.Status = "failed"
	}
	return detailedTest{
		ProjectName:    projectName,
		ExpectedStatus: "passed",
		Status:         status,
		Annotations:    []detailedNote{},
		Results:        []detailedResult{r},
	}
}
