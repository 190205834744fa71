package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/banking-e2e/banking-tests/framework"

	"github.com/fatih/color"
)

var (
	passColor  = color.New(color.FgGreen)
	failColor  = color.New(color.FgRed)
	errorColor = color.New(color.FgRed, color.Bold)
	skipColor  = color.New(color.FgYellow)
)

type ConsoleTestLogger struct {
	Out                  io.Writer
	DebugOutputOnFailure bool
	DebugOutputOnSuccess bool
}

func (c *ConsoleTestLogger) out() io.Writer {
	if c.Out == nil {
		return color.Output
	}
	return c.Out
}

func (c *ConsoleTestLogger) TestStarted(id framework.TestID) {
	fmt.Fprintf(c.out(), "[%s]\n", id)
}

func (c *ConsoleTestLogger) TestError(id framework.TestID, err error) {
	for _, line := range strings.Split(err.Error(), "\n") {
		failColor.Fprintf(c.out(), "  %s\n", line)
	}
}

func (c *ConsoleTestLogger) TestFinished(id framework.TestID, result framework.TestResult) {
	duration := formatDuration(result.Duration)
	switch result.Status {
	case framework.StatusPass:
		passColor.Fprintf(c.out(), "  PASSED (%s)\n", duration)
	case framework.StatusError:
		errorColor.Fprintf(c.out(), "  ERROR: %s (%s)\n", id, duration)
	default:
		failColor.Fprintf(c.out(), "  FAILED: %s (%s)\n", id, duration)
	}
	for _, a := range result.Attachments {
		fmt.Fprintf(c.out(), "  %s: %s\n", a.Name, a.Path)
	}
	failed := result.Status != framework.StatusPass
	if len(result.DebugOutput) > 0 &&
		((failed && c.DebugOutputOnFailure) || (!failed && c.DebugOutputOnSuccess)) {
		result.DebugOutput.Dump(c.out(), "    DEBUG ")
	}
}

func (c *ConsoleTestLogger) TestSkipped(id framework.TestID, reason string) {
	if reason == "" {
		skipColor.Fprintf(c.out(), "  SKIPPED: %s\n", id)
	} else {
		skipColor.Fprintf(c.out(), "  SKIPPED: %s (%s)\n", id, reason)
	}
}

func formatDuration(d time.Duration) string {
	return d.Round(time.Millisecond).String()
}

func printResults(out io.Writer, results framework.Results) {
	s := results.Summary()
	fmt.Fprintln(out, "Test run summary:")
	fmt.Fprintf(out, "  total:    %d\n", s.Total)
	passColor.Fprintf(out, "  passed:   %d\n", s.Passed)
	if s.Failed > 0 {
		failColor.Fprintf(out, "  failed:   %d (%d errors)\n", s.Failed, s.Errors)
	} else {
		fmt.Fprintf(out, "  failed:   0\n")
	}
	if s.Skipped > 0 {
		skipColor.Fprintf(out, "  skipped:  %d\n", s.Skipped)
	}
	fmt.Fprintf(out, "  duration: %s\n", formatDuration(s.Duration))

	if len(results.Failures) > 0 {
		fmt.Fprintln(out)
		failColor.Fprintln(out, "FAILED TESTS:")
		for _, f := range results.Failures {
			fmt.Fprintf(out, "  %s (%s)\n", f.TestID, f.Status)
		}
	} else {
		passColor.Fprintln(out, "All tests passed")
	}
}
