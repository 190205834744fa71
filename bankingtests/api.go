package bankingtests

import (
	"fmt"

	"github.com/banking-e2e/banking-tests/framework"
	"github.com/banking-e2e/banking-tests/pages"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Session is one isolated browser session, scoped to a single scenario.
type Session interface {
	Site() pages.Site
	// Screenshot captures the current state of the page and returns the path of the image.
	Screenshot(label string) (string, error)
	Close() error
}

// SessionFactory opens a new session for the named scenario. Messages about the session are
// written to logger.
type SessionFactory interface {
	OpenSession(name string, logger framework.Logger) (Session, error)
}

// Config holds settings for the scenarios that do not depend on the browser.
type Config struct {
	// UniqueID returns a value used to make the names of created customers unique. It
	// defaults to a short random identifier.
	UniqueID func() string
	// ScreenshotOnFailure controls whether a screenshot is attached to a failed scenario.
	ScreenshotOnFailure bool
}

func (c Config) uniqueID() string {
	if c.UniqueID != nil {
		return c.UniqueID()
	}
	return uuid.NewString()[:8]
}

type environment struct {
	sessions SessionFactory
	config   Config
}

// T represents a scenario, or a group of scenarios, in the banking test suite.
//
// It implements the same basic functionality as Go's testing.T, but in an environment that is outside
// of the Go test runner, with extra features such as debug logging that are provided by our
// lower-level framework package.
//
// It also owns the browser session for the scenario. The session is opened on the first call to
// Site, which also navigates to the application's home screen, and it is closed when the scenario
// exits however it exits. If the scenario failed, a screenshot is attached to its result first.
//
// To make test assertions, you can use the assert and require packages, passing the *T as if it were
// a *testing.T.
type T struct {
	context *framework.Context
	env     *environment
	session Session
}

func newTestScope(context *framework.Context, env *environment) *T {
	return &T{context: context, env: env}
}

// Errorf is called by assertions to log a test failure. It does not cause an immediate exit.
func (t *T) Errorf(format string, args ...interface{}) {
	t.context.Errorf(format, args...)
}

// FailNow is called by assertions when a test should fail and immediately exit. The methods in
// the require package call FailNow.
func (t *T) FailNow() {
	t.context.FailNow()
}

// Run runs a subtest. This is equivalent to the Run method of testing.T.
//
// The specified function receives a new T instance, which will open its own browser session.
func (t *T) Run(name string, action func(*T)) {
	t.context.Run(name, func(c *framework.Context) {
		action(newTestScope(c, t.env))
	})
}

// Debug logs some debug output for the test. The output will be passed to the test logger at
// the end of the test.
func (t *T) Debug(format string, args ...interface{}) {
	t.context.Debug(format, args...)
}

// Skip exits the test without recording a result for it.
func (t *T) Skip(reason string) {
	t.context.SkipWithReason(reason)
}

// Config returns the suite configuration.
func (t *T) Config() Config {
	return t.env.config
}

// Site returns the page objects for this test's browser session, opening the session and
// navigating to the home screen if that has not already been done. If the session cannot be
// opened, the test exits with an error status.
func (t *T) Site() pages.Site {
	if t.session != nil {
		return t.session.Site()
	}
	session, err := t.env.sessions.OpenSession(t.context.ID().String(), t.context.DebugLogger())
	if err != nil {
		t.context.ErrorNow(fmt.Errorf("could not open browser session: %w", err))
	}
	t.session = session
	t.context.Defer(t.closeSession)

	require.NoError(t, session.Site().Home())
	return session.Site()
}

func (t *T) closeSession() {
	if t.context.Failed() && t.env.config.ScreenshotOnFailure {
		if path, err := t.session.Screenshot("failure"); err != nil {
			t.Debug("Could not capture failure screenshot: %s", err)
		} else {
			t.context.Attach("screenshot", "image/png", path)
		}
	}
	if err := t.session.Close(); err != nil {
		t.context.ErrorNow(fmt.Errorf("could not close browser session: %w", err))
	}
}

// LoginAsCustomer goes to the home screen's customer login and logs in as the named customer.
// It fails and exits the test if that is not possible.
func (t *T) LoginAsCustomer(name string) pages.AccountPage {
	site := t.Site()
	t.Debug("Logging in as customer %q", name)
	require.NoError(t, site.Login().CustomerLogin(name))
	return site.Account()
}

// LoginAsManager logs in as the bank manager. It fails and exits the test if that is not
// possible.
func (t *T) LoginAsManager() pages.ManagerPage {
	site := t.Site()
	t.Debug("Logging in as bank manager")
	require.NoError(t, site.Login().ManagerLogin())
	return site.Manager()
}

// RequireBalance returns the balance of the currently selected account, failing and exiting
// the test if it cannot be read.
func (t *T) RequireBalance() int {
	balance, err := t.Site().Account().Balance()
	require.NoError(t, err)
	t.Debug("Balance is %d", balance)
	return balance
}

// RequireAccountNumber returns the number of the currently selected account, failing and
// exiting the test if it cannot be read or is empty.
func (t *T) RequireAccountNumber() string {
	number, err := t.Site().Account().AccountNumber()
	require.NoError(t, err)
	require.NotEmpty(t, number, "account number should be shown")
	return number
}
