// Package browser manages the Playwright driver and the browser sessions that scenarios run
// in. One browser process is shared by the whole run; every session gets its own browser
// context, so cookies and local storage never leak from one scenario to the next.
package browser

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/banking-e2e/banking-tests/framework"

	"github.com/playwright-community/playwright-go"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

const (
	Chromium = "chromium"
	Firefox  = "firefox"
	WebKit   = "webkit"

	DefaultTimeout = time.Second * 5
)

var AllBrowsers = []string{Chromium, Firefox, WebKit}

// Options configures the browser used for a test run.
type Options struct {
	// Browser is one of Chromium, Firefox, or WebKit.
	Browser  string
	Headless bool
	// Timeout is the wait budget for every element lookup, applied to each session.
	Timeout        time.Duration
	SlowMoMS       ldvalue.OptionalInt
	ViewportWidth  ldvalue.OptionalInt
	ViewportHeight ldvalue.OptionalInt
}

// Validate checks the options and fills in defaults.
func (o *Options) Validate() error {
	if o.Browser == "" {
		o.Browser = Chromium
	}
	if !isKnownBrowser(o.Browser) {
		return fmt.Errorf("unknown browser %q, must be one of: %s", o.Browser, strings.Join(AllBrowsers, ", "))
	}
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
	if o.ViewportWidth.IsDefined() != o.ViewportHeight.IsDefined() {
		return fmt.Errorf("viewport width and height must be set together")
	}
	return nil
}

func isKnownBrowser(name string) bool {
	for _, b := range AllBrowsers {
		if b == name {
			return true
		}
	}
	return false
}

// Launcher owns the Playwright driver and a running browser.
type Launcher struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	opts    Options
	logger  framework.Logger
	lock    sync.Mutex
	closed  bool
}

// Install downloads the Playwright driver and the specified browser if they are missing.
func Install(browserName string) error {
	return playwright.Install(&playwright.RunOptions{Browsers: []string{browserName}})
}

// Launch starts the Playwright driver and the browser described by opts.
func Launch(opts Options, logger framework.Logger) (*Launcher, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = framework.NullLogger()
	}

	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("could not start Playwright: %w", err)
	}
	launchOpts := playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(opts.Headless),
	}
	if opts.SlowMoMS.IsDefined() {
		launchOpts.SlowMo = playwright.Float(float64(opts.SlowMoMS.IntValue()))
	}
	browser, err := browserType(pw, opts.Browser).Launch(launchOpts)
	if err != nil {
		_ = pw.Stop()
		return nil, fmt.Errorf("could not launch %s: %w", opts.Browser, err)
	}
	logger.Printf("Launched %s %s (headless=%t)", opts.Browser, browser.Version(), opts.Headless)

	return &Launcher{
		pw:      pw,
		browser: browser,
		opts:    opts,
		logger:  logger,
	}, nil
}

func browserType(pw *playwright.Playwright, name string) playwright.BrowserType {
	switch name {
	case Firefox:
		return pw.Firefox
	case WebKit:
		return pw.WebKit
	default:
		return pw.Chromium
	}
}

func (l *Launcher) Options() Options {
	return l.opts
}

// Version returns the name and version of the running browser.
func (l *Launcher) Version() string {
	return l.opts.Browser + " " + l.browser.Version()
}

// NewSession opens a new, isolated browser context with a single page. Messages about the
// session, including any dialogs it raises, are sent to logger.
func (l *Launcher) NewSession(name string, logger framework.Logger) (*Session, error) {
	l.lock.Lock()
	closed := l.closed
	l.lock.Unlock()
	if closed {
		return nil, fmt.Errorf("browser has already been closed")
	}
	if logger == nil {
		logger = l.logger
	}

	contextOpts := playwright.BrowserNewContextOptions{}
	if l.opts.ViewportWidth.IsDefined() {
		contextOpts.Viewport = &playwright.Size{
			Width:  l.opts.ViewportWidth.IntValue(),
			Height: l.opts.ViewportHeight.IntValue(),
		}
	}
	browserContext, err := l.browser.NewContext(contextOpts)
	if err != nil {
		return nil, fmt.Errorf("could not create browser context: %w", err)
	}
	browserContext.SetDefaultTimeout(float64(l.opts.Timeout.Milliseconds()))

	page, err := browserContext.NewPage()
	if err != nil {
		_ = browserContext.Close()
		return nil, fmt.Errorf("could not open page: %w", err)
	}
	logger.Printf("Opened browser session for %q", name)
	return newSession(name, browserContext, page, logger), nil
}

// Close shuts down the browser and the Playwright driver.
func (l *Launcher) Close() error {
	l.lock.Lock()
	defer l.lock.Unlock()
	if l.closed {
		return nil
	}
	l.closed = true
	browserErr := l.browser.Close()
	stopErr := l.pw.Stop()
	if browserErr != nil {
		return fmt.Errorf("could not close browser: %w", browserErr)
	}
	if stopErr != nil {
		return fmt.Errorf("could not stop Playwright: %w", stopErr)
	}
	return nil
}
