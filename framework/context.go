package framework

import (
	"errors"
	"fmt"
	"runtime/debug"
	"strings"
	"time"
)

type environment struct {
	results    Results
	testLogger TestLogger
	filter     Filter
}

type Context struct {
	env         *environment
	id          TestID
	debugLogger CapturingLogger
	started     time.Time
	hasChildren bool
	failed      bool
	errored     bool
	skipped     bool
	skipReason  string
	errors      []error
	attachments []Attachment
	cleanups    []func()
}

// Run executes the action as the root scope of a test run and returns the accumulated
// results of every test started with Context.Run inside it.
func Run(
	filter Filter,
	testLogger TestLogger,
	action func(*Context),
) Results {
	if testLogger == nil {
		testLogger = nullTestLogger{}
	}
	env := &environment{
		filter:     filter,
		testLogger: testLogger,
	}
	c := &Context{env: env}
	c.run(action)
	env.results.StartTime = c.started
	env.results.Duration = time.Since(c.started)
	return env.results
}

func (c *Context) run(action func(*Context)) {
	c.started = time.Now()
	c.protect(func() { action(c) })
	c.runCleanups()
}

func (c *Context) protect(f func()) {
	defer func() {
		if r := recover(); r != nil {
			c.recovered(r)
		}
	}()
	f()
}

func (c *Context) recovered(r interface{}) {
	if c.skipped {
		return
	}
	c.failed = true
	var addError error
	if _, ok := r.(*Context); ok {
		if len(c.errors) == 0 {
			addError = errors.New("test failed with no failure message")
		}
	} else {
		c.errored = true
		addError = fmt.Errorf("unexpected panic in test: %+v\n%s", r, string(debug.Stack()))
	}
	if addError != nil {
		c.errors = append(c.errors, addError)
		c.env.testLogger.TestError(c.id, addError)
	}
}

// Cleanups run last-in first-out. A cleanup that fails or panics marks the test as failed
// but does not prevent the remaining cleanups from running.
func (c *Context) runCleanups() {
	for len(c.cleanups) > 0 {
		last := len(c.cleanups) - 1
		f := c.cleanups[last]
		c.cleanups = c.cleanups[:last]
		c.protect(f)
	}
}

func (c *Context) result() TestResult {
	status := StatusPass
	switch {
	case c.errored:
		status = StatusError
	case c.failed:
		status = StatusFail
	}
	return TestResult{
		TestID:      c.id,
		Status:      status,
		StartTime:   c.started,
		Duration:    time.Since(c.started),
		Errors:      c.errors,
		DebugOutput: c.debugLogger.Output(),
		Attachments: c.attachments,
	}
}

func (c *Context) skip(id TestID, reason string) {
	c.env.results.Skipped = append(c.env.results.Skipped, SkippedTest{TestID: id, Reason: reason})
	c.env.testLogger.TestSkipped(id, reason)
}

func (c *Context) ID() TestID {
	return c.id
}

// Run runs a subtest. A subtest that itself starts subtests is treated as a group: it only
// produces a result of its own if something failed outside of its children.
func (c *Context) Run(name string, action func(*Context)) {
	id := TestID{Path: append(append([]string(nil), c.id.Path...), name)}
	c.hasChildren = true

	c.env.testLogger.TestStarted(id)
	if c.env.filter != nil && !c.env.filter(id) {
		c.skip(id, "excluded by filter parameters")
		return
	}
	c1 := &Context{
		id:  id,
		env: c.env,
	}
	c1.run(action)
	if c1.skipped {
		c.skip(id, c1.skipReason)
		return
	}
	result := c1.result()
	if !c1.hasChildren || c1.failed {
		c.env.results.Tests = append(c.env.results.Tests, result)
		if c1.failed {
			c.env.results.Failures = append(c.env.results.Failures, result)
		}
	}
	c.env.testLogger.TestFinished(id, result)
}

func (c *Context) Errorf(format string, args ...interface{}) {
	c.failed = true
	err := reformatError(fmt.Errorf(format, args...))
	c.errors = append(c.errors, err)
	c.env.testLogger.TestError(c.id, err)
}

func (c *Context) FailNow() {
	panic(c)
}

// ErrorNow records an error that prevented the test from running properly, such as a
// resource that could not be acquired, and immediately exits the test. The test's status
// will be StatusError rather than StatusFail.
func (c *Context) ErrorNow(err error) {
	c.failed = true
	c.errored = true
	c.errors = append(c.errors, err)
	c.env.testLogger.TestError(c.id, err)
	panic(c)
}

func (c *Context) Failed() bool {
	return c.failed
}

func (c *Context) Skip() {
	c.skipped = true
	panic(c)
}

func (c *Context) SkipWithReason(reason string) {
	c.skipReason = reason
	c.Skip()
}

// Defer schedules a function to run when the test exits, whether or not it succeeded.
// Deferred functions run in reverse order of registration, before the test result is
// recorded.
func (c *Context) Defer(cleanup func()) {
	c.cleanups = append(c.cleanups, cleanup)
}

// Attach associates a file with the test result.
func (c *Context) Attach(name, contentType, path string) {
	c.attachments = append(c.attachments, Attachment{Name: name, ContentType: contentType, Path: path})
}

func (c *Context) Debug(message string, args ...interface{}) {
	c.debugLogger.Printf(message, args...)
}

func (c *Context) DebugLogger() Logger {
	return &c.debugLogger
}

// testify reports assertion failures as a multi-line block that starts with a newline and
// indents every line with tabs; console output is easier to read without that.
func reformatError(err error) error {
	lines := strings.Split(strings.TrimLeft(err.Error(), "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimPrefix(line, "\t")
	}
	return errors.New(strings.Join(lines, "\n"))
}
