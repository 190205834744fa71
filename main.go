package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/banking-e2e/banking-tests/bankingtests"
	"github.com/banking-e2e/banking-tests/browser"
	"github.com/banking-e2e/banking-tests/framework"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const (
	preflightTimeout   = time.Second * 30
	detailedReportName = "playwright_report.json"
	screenshotDirName  = "screenshots"
	suiteTitle         = "banking application"
)

var errTestsFailed = errors.New("some tests failed")

func main() {
	if err := loadDotEnv(dotEnvFile); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %s\n", err)
		os.Exit(1)
	}
	params := newCommandParams()
	if err := params.readEnvironment(os.LookupEnv); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %s\n", err)
		os.Exit(1)
	}

	err := newRootCommand(params).Execute()
	switch {
	case err == nil:
	case errors.Is(err, errTestsFailed):
		os.Exit(1)
	default:
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func newRootCommand(params *commandParams) *cobra.Command {
	root := &cobra.Command{
		Use:           "banking-tests",
		Short:         "Run end-to-end tests against the XYZ Bank demo application",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := params.validate(); err != nil {
				_ = cmd.Usage()
				return err
			}
			return runTestSuite(params)
		},
	}
	params.addFilterFlags(root.PersistentFlags())
	params.addRunFlags(root.Flags())

	root.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the scenarios that would run",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range bankingtests.ScenarioNames(params.filters.AsFilter) {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	})
	return root
}

func runTestSuite(params *commandParams) error {
	mainDebugLogger := framework.NullLogger()
	if params.debugAll {
		mainDebugLogger = log.New(os.Stdout, "", log.LstdFlags)
	}

	browserOpts, err := params.browserOptions()
	if err != nil {
		return err
	}
	if params.install {
		fmt.Printf("Installing Playwright driver and %s\n", browserOpts.Browser)
		if err := browser.Install(browserOpts.Browser); err != nil {
			return fmt.Errorf("could not install browser: %w", err)
		}
	}

	var sessions bankingtests.SessionFactory
	version := browserOpts.Browser
	if err := preflight(params, preflightTimeout, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", err)
		sessions = bankingtests.UnavailableSessions{Err: err}
	} else {
		launcher, err := browser.Launch(browserOpts, mainDebugLogger)
		if err != nil {
			return err
		}
		defer func() {
			if err := launcher.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: %s\n", err)
			}
		}()
		sessions = bankingtests.BrowserSessions{
			Launcher:      launcher,
			BaseURL:       params.baseURL,
			ScreenshotDir: filepath.Join(params.resultsDir, screenshotDirName),
		}
		version = launcher.Version()
	}

	fmt.Println()
	framework.PrintFilterDescription(os.Stdout, params.filters)

	fmt.Printf("Running test suite with %s\n", version)

	testLogger := &ConsoleTestLogger{
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}
	results, err := runAndReport(params, sessions, testLogger, version)
	if err != nil {
		return err
	}

	fmt.Println()
	printResults(color.Output, results)
	if !results.OK() {
		fmt.Println()
		fmt.Println("To rerun only the failed tests:")
		fmt.Printf("  %s\n", params.rerunCommand(os.Args[0], results.Failures))
		return errTestsFailed
	}
	return nil
}

// preflight checks that the application is reachable, unless that check was turned off.
func preflight(params *commandParams, timeout time.Duration, out io.Writer) error {
	if params.skipPreflight {
		return nil
	}
	if err := framework.AwaitTarget(params.baseURL, timeout, out); err != nil {
		return fmt.Errorf("application under test is not reachable: %w", err)
	}
	return nil
}

// runAndReport runs the selected scenarios and writes both reports. Only a failure to write
// a report is returned as an error; everything else is recorded in the results.
func runAndReport(
	params *commandParams,
	sessions bankingtests.SessionFactory,
	testLogger framework.TestLogger,
	version string,
) (framework.Results, error) {
	config := bankingtests.Config{ScreenshotOnFailure: true}
	results := bankingtests.RunTestSuite(sessions, config, params.filters.AsFilter, testLogger)
	return results, writeReports(params, results, version)
}

func writeReports(params *commandParams, results framework.Results, version string) error {
	if err := framework.WriteSummaryReport(params.summaryFile, results); err != nil {
		return err
	}
	fmt.Printf("Summary report written to %s\n", params.summaryFile)

	detailedPath := filepath.Join(params.resultsDir, detailedReportName)
	meta := framework.ReportMetadata{
		SuiteTitle:  suiteTitle,
		ProjectName: params.browserName,
		BaseURL:     params.baseURL,
		Version:     version,
		Timeout:     params.timeout,
	}
	if err := framework.WriteDetailedReport(detailedPath, results, meta); err != nil {
		return err
	}
	fmt.Printf("Detailed report written to %s\n", detailedPath)
	return nil
}
