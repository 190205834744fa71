package framework

import (
	"strings"
	"time"
)

// Status is the outcome of a single executed test.
type Status string

const (
	// StatusPass means the test ran to completion without any failures.
	StatusPass Status = "pass"
	// StatusFail means an assertion or a page interaction failed.
	StatusFail Status = "fail"
	// StatusError means the test could not run properly: it panicked, or a resource it
	// depends on could not be acquired or released.
	StatusError Status = "error"
)

type Results struct {
	Tests     []TestResult
	Failures  []TestResult
	Skipped   []SkippedTest
	StartTime time.Time
	Duration  time.Duration
}

type TestResult struct {
	TestID      TestID
	Status      Status
	StartTime   time.Time
	Duration    time.Duration
	Errors      []error
	DebugOutput CapturedOutput
	Attachments []Attachment
}

type SkippedTest struct {
	TestID TestID
	Reason string
}

// Attachment is a file produced by a test, such as a screenshot taken after a failure.
type Attachment struct {
	Name        string
	ContentType string
	Path        string
}

// Summary is the aggregate view of a test run.
type Summary struct {
	Total    int
	Passed   int
	Failed   int
	Errors   int
	Skipped  int
	Duration time.Duration
	ExitCode int
}

func (r Results) OK() bool {
	return len(r.Failures) == 0
}

// ExitCode returns the process exit status that reflects these results: 0 if every
// executed test passed, 1 otherwise.
func (r Results) ExitCode() int {
	if r.OK() {
		return 0
	}
	return 1
}

func (r Results) Summary() Summary {
	s := Summary{
		Total:    len(r.Tests),
		Skipped:  len(r.Skipped),
		Duration: r.Duration,
		ExitCode: r.ExitCode(),
	}
	for _, t := range r.Tests {
		switch t.Status {
		case StatusPass:
			s.Passed++
		case StatusError:
			s.Errors++
			s.Failed++
		default:
			s.Failed++
		}
	}
	return s
}

// ErrorMessage joins all of the errors recorded for the test, one per line. It returns
// an empty string if the test passed.
func (t TestResult) ErrorMessage() string {
	var lines []string
	for _, e := range t.Errors {
		lines = append(lines, e.Error())
	}
	return strings.Join(lines, "\n")
}

type TestID struct {
	Path []string
}

func (t TestID) String() string {
	return strings.Join(t.Path, "/")
}

// Name returns the last component of the test path.
func (t TestID) Name() string {
	if len(t.Path) == 0 {
		return ""
	}
	return t.Path[len(t.Path)-1]
}
