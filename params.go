package main

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/banking-e2e/banking-tests/browser"
	"github.com/banking-e2e/banking-tests/framework"

	"github.com/alessio/shellescape"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

const (
	defaultBaseURL     = "https://www.globalsqa.com/angularJs-protractor/BankingProject/#/login"
	defaultResultsDir  = "results"
	defaultSummaryFile = "test_results.json"
	dotEnvFile         = ".env"

	envBaseURL    = "BANKING_BASE_URL"
	envBrowser    = "BANKING_BROWSER"
	envHeadless   = "BANKING_HEADLESS"
	envTimeoutMS  = "BANKING_TIMEOUT_MS"
	envSlowMoMS   = "BANKING_SLOW_MO_MS"
	envResultsDir = "BANKING_RESULTS_DIR"
)

var viewportPattern = regexp.MustCompile(`^(\d+)x(\d+)$`)

type commandParams struct {
	baseURL       string
	browserName   string
	headless      bool
	timeout       time.Duration
	slowMoMS      int
	viewport      string
	filters       framework.RegexFilters
	debug         bool
	debugAll      bool
	resultsDir    string
	summaryFile   string
	skipPreflight bool
	install       bool
}

func newCommandParams() *commandParams {
	return &commandParams{
		baseURL:     defaultBaseURL,
		browserName: browser.Chromium,
		headless:    true,
		timeout:     browser.DefaultTimeout,
		resultsDir:  defaultResultsDir,
		summaryFile: defaultSummaryFile,
	}
}

// loadDotEnv adds the variables in a .env file, if there is one, to the environment.
// Variables that are already set take precedence.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("could not load %s: %w", path, err)
	}
	return nil
}

// readEnvironment overrides the defaults with any values set in the environment. It must be
// called before the flags are defined, so that the flags can override it in turn.
func (c *commandParams) readEnvironment(lookup func(string) (string, bool)) error {
	if v, ok := lookup(envBaseURL); ok && v != "" {
		c.baseURL = v
	}
	if v, ok := lookup(envBrowser); ok && v != "" {
		c.browserName = v
	}
	if v, ok := lookup(envResultsDir); ok && v != "" {
		c.resultsDir = v
	}
	if v, ok := lookup(envHeadless); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", envHeadless, err)
		}
		c.headless = b
	}
	if v, ok := lookup(envTimeoutMS); ok && v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", envTimeoutMS, err)
		}
		c.timeout = time.Duration(ms) * time.Millisecond
	}
	if v, ok := lookup(envSlowMoMS); ok && v != "" {
		ms, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", envSlowMoMS, err)
		}
		c.slowMoMS = ms
	}
	return nil
}

func (c *commandParams) addFilterFlags(fs *pflag.FlagSet) {
	fs.Var(&c.filters.MustMatch, "run", "regex pattern(s) to select scenarios to run")
	fs.Var(&c.filters.MustNotMatch, "skip", "regex pattern(s) to select scenarios not to run")
}

func (c *commandParams) addRunFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.baseURL, "url", c.baseURL, "URL of the banking application's login page")
	fs.StringVar(&c.browserName, "browser", c.browserName, "browser to use: chromium, firefox, or webkit")
	fs.BoolVar(&c.headless, "headless", c.headless, "run the browser without a visible window")
	fs.DurationVar(&c.timeout, "timeout", c.timeout, "how long to wait for any element to appear")
	fs.IntVar(&c.slowMoMS, "slow-mo", c.slowMoMS, "delay in milliseconds between browser operations")
	fs.StringVar(&c.viewport, "viewport", c.viewport, "browser viewport size as WIDTHxHEIGHT")
	fs.BoolVar(&c.debug, "debug", false, "enable debug logging for failed scenarios")
	fs.BoolVar(&c.debugAll, "debug-all", false, "enable debug logging for all scenarios")
	fs.StringVar(&c.resultsDir, "results-dir", c.resultsDir, "directory for the detailed report and screenshots")
	fs.StringVar(&c.summaryFile, "summary-file", c.summaryFile, "path of the JSON summary report")
	fs.BoolVar(&c.skipPreflight, "skip-preflight", false, "do not check that the application is reachable before running")
	fs.BoolVar(&c.install, "install", false, "install the Playwright driver and browser before running")
}

// browserOptions validates the browser-related parameters.
func (c *commandParams) browserOptions() (browser.Options, error) {
	opts := browser.Options{
		Browser:  c.browserName,
		Headless: c.headless,
		Timeout:  c.timeout,
	}
	if c.timeout <= 0 {
		return opts, fmt.Errorf("--timeout must be greater than zero")
	}
	if c.slowMoMS < 0 {
		return opts, fmt.Errorf("--slow-mo cannot be negative")
	}
	if c.slowMoMS > 0 {
		opts.SlowMoMS = ldvalue.NewOptionalInt(c.slowMoMS)
	}
	if c.viewport != "" {
		m := viewportPattern.FindStringSubmatch(c.viewport)
		if m == nil {
			return opts, fmt.Errorf("--viewport must be in the form WIDTHxHEIGHT, not %q", c.viewport)
		}
		width, _ := strconv.Atoi(m[1])
		height, _ := strconv.Atoi(m[2])
		opts.ViewportWidth = ldvalue.NewOptionalInt(width)
		opts.ViewportHeight = ldvalue.NewOptionalInt(height)
	}
	return opts, opts.Validate()
}

func (c *commandParams) validate() error {
	if c.baseURL == "" {
		return fmt.Errorf("--url is required")
	}
	if c.summaryFile == "" {
		return fmt.Errorf("--summary-file cannot be empty")
	}
	_, err := c.browserOptions()
	return err
}

// rerunCommand builds a shell command line that repeats the run for only the given tests,
// with every option that differs from its built-in default.
func (c *commandParams) rerunCommand(program string, failures []framework.TestResult) string {
	defaults := newCommandParams()
	var b commandBuilder
	b.add(program)
	if c.baseURL != defaults.baseURL {
		b.add("--url", c.baseURL)
	}
	if c.browserName != defaults.browserName {
		b.add("--browser", c.browserName)
	}
	if c.headless != defaults.headless {
		b.add("--headless=" + strconv.FormatBool(c.headless))
	}
	if c.timeout != defaults.timeout {
		b.add("--timeout", c.timeout.String())
	}
	if c.slowMoMS != defaults.slowMoMS {
		b.add("--slow-mo", strconv.Itoa(c.slowMoMS))
	}
	if c.viewport != defaults.viewport {
		b.add("--viewport", c.viewport)
	}
	if c.resultsDir != defaults.resultsDir {
		b.add("--results-dir", c.resultsDir)
	}
	if c.summaryFile != defaults.summaryFile {
		b.add("--summary-file", c.summaryFile)
	}
	if c.skipPreflight {
		b.add("--skip-preflight")
	}
	names := make([]string, 0, len(failures))
	for _, f := range failures {
		names = append(names, regexp.QuoteMeta(f.TestID.String()))
	}
	b.add("--run", "^("+strings.Join(names, "|")+")$")
	if c.debugAll {
		b.add("--debug-all")
	} else if c.debug {
		b.add("--debug")
	}
	return b.String()
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}
