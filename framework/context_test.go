package framework

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingTestLogger struct {
	started  []string
	finished []string
	skipped  []string
	errors   []string
}

func (l *recordingTestLogger) TestStarted(id TestID) { l.started = append(l.started, id.String()) }

func (l *recordingTestLogger) TestError(id TestID, err error) {
	l.errors = append(l.errors, err.Error())
}

func (l *recordingTestLogger) TestFinished(id TestID, result TestResult) {
	l.finished = append(l.finished, id.String()+":"+string(result.Status))
}

func (l *recordingTestLogger) TestSkipped(id TestID, reason string) {
	l.skipped = append(l.skipped, id.String())
}

func TestRunRecordsOneResultPerExecutedTest(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Run("a", func(c *Context) {})
		c.Run("b", func(c *Context) { c.Errorf("bad") })
		c.Run("c", func(c *Context) {})
	})
	require.Len(t, results.Tests, 3)
	assert.Equal(t, "a", results.Tests[0].TestID.String())
	assert.Equal(t, StatusPass, results.Tests[0].Status)
	assert.Equal(t, StatusFail, results.Tests[1].Status)
	assert.Equal(t, StatusPass, results.Tests[2].Status)
	assert.Len(t, results.Failures, 1)
	assert.False(t, results.OK())
	assert.Equal(t, 1, results.ExitCode())
}

func TestFailNowStopsOnlyTheCurrentTest(t *testing.T) {
	var reachedAfterFailure, ranNext bool
	results := Run(nil, nil, func(c *Context) {
		c.Run("fails", func(c *Context) {
			require.Equal(c, 600, 601)
			reachedAfterFailure = true
		})
		c.Run("next", func(c *Context) { ranNext = true })
	})
	assert.False(t, reachedAfterFailure)
	assert.True(t, ranNext)
	require.Len(t, results.Tests, 2)
	assert.Equal(t, StatusFail, results.Tests[0].Status)
	assert.Contains(t, results.Tests[0].ErrorMessage(), "601")
	assert.Equal(t, StatusPass, results.Tests[1].Status)
}

func TestPanicIsRecordedAsError(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Run("panics", func(c *Context) { panic("boom") })
	})
	require.Len(t, results.Tests, 1)
	assert.Equal(t, StatusError, results.Tests[0].Status)
	assert.Contains(t, results.Tests[0].ErrorMessage(), "boom")
}

func TestErrorNowIsRecordedAsError(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Run("setup", func(c *Context) {
			c.ErrorNow(errors.New("could not open session"))
		})
	})
	require.Len(t, results.Tests, 1)
	assert.Equal(t, StatusError, results.Tests[0].Status)
	assert.Equal(t, "could not open session", results.Tests[0].ErrorMessage())
	assert.Equal(t, 1, results.Summary().Errors)
	assert.Equal(t, 1, results.Summary().Failed)
}

func TestTestFailedWithNoMessage(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Run("silent", func(c *Context) { c.FailNow() })
	})
	require.Len(t, results.Tests, 1)
	assert.Equal(t, StatusFail, results.Tests[0].Status)
	assert.Equal(t, "test failed with no failure message", results.Tests[0].ErrorMessage())
}

func TestDeferredFunctionsRunInReverseOrderOnEveryExitPath(t *testing.T) {
	var calls []string
	Run(nil, nil, func(c *Context) {
		c.Run("passes", func(c *Context) {
			c.Defer(func() { calls = append(calls, "pass-1") })
			c.Defer(func() { calls = append(calls, "pass-2") })
		})
		c.Run("fails", func(c *Context) {
			c.Defer(func() { calls = append(calls, "fail-1") })
			c.FailNow()
		})
		c.Run("panics", func(c *Context) {
			c.Defer(func() { calls = append(calls, "panic-1") })
			panic("boom")
		})
		c.Run("skips", func(c *Context) {
			c.Defer(func() { calls = append(calls, "skip-1") })
			c.Skip()
		})
	})
	assert.Equal(t, []string{"pass-2", "pass-1", "fail-1", "panic-1", "skip-1"}, calls)
}

func TestDeferredFunctionCanSeeFailure(t *testing.T) {
	var sawFailure bool
	Run(nil, nil, func(c *Context) {
		c.Run("fails", func(c *Context) {
			c.Defer(func() { sawFailure = c.Failed() })
			c.Errorf("bad")
		})
	})
	assert.True(t, sawFailure)
}

func TestFailingDeferredFunctionFailsTest(t *testing.T) {
	var secondRan bool
	results := Run(nil, nil, func(c *Context) {
		c.Run("cleanup fails", func(c *Context) {
			c.Defer(func() { secondRan = true })
			c.Defer(func() { c.ErrorNow(errors.New("could not close session")) })
		})
	})
	assert.True(t, secondRan)
	require.Len(t, results.Tests, 1)
	assert.Equal(t, StatusError, results.Tests[0].Status)
}

func TestSkippedTestsAreCountedButNotRecordedAsResults(t *testing.T) {
	logger := &recordingTestLogger{}
	filter := func(id TestID) bool { return id.Name() != "filtered" }
	results := Run(filter, logger, func(c *Context) {
		c.Run("filtered", func(c *Context) { t.Error("should not have run") })
		c.Run("skipped", func(c *Context) { c.SkipWithReason("not today") })
		c.Run("runs", func(c *Context) {})
	})
	require.Len(t, results.Tests, 1)
	assert.Equal(t, "runs", results.Tests[0].TestID.String())
	require.Len(t, results.Skipped, 2)
	assert.Equal(t, "excluded by filter parameters", results.Skipped[0].Reason)
	assert.Equal(t, "not today", results.Skipped[1].Reason)
	assert.True(t, results.OK())
	assert.Equal(t, []string{"filtered", "skipped"}, logger.skipped)
	assert.Equal(t, []string{"runs:pass"}, logger.finished)
}

func TestGroupsOnlyRecordTheirChildren(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Run("group", func(c *Context) {
			c.Run("one", func(c *Context) {})
			c.Run("two", func(c *Context) {})
		})
	})
	require.Len(t, results.Tests, 2)
	assert.Equal(t, "group/one", results.Tests[0].TestID.String())
	assert.Equal(t, "group/two", results.Tests[1].TestID.String())
}

func TestDebugOutputAndAttachmentsAreKeptWithResult(t *testing.T) {
	results := Run(nil, nil, func(c *Context) {
		c.Run("debug", func(c *Context) {
			c.Debug("balance is %d", 500)
			c.Attach("screenshot", "image/png", "results/debug.png")
		})
	})
	require.Len(t, results.Tests, 1)
	r := results.Tests[0]
	require.Len(t, r.DebugOutput, 1)
	assert.Equal(t, "balance is 500", r.DebugOutput[0].Message)
	assert.Equal(t, []Attachment{{Name: "screenshot", ContentType: "image/png", Path: "results/debug.png"}}, r.Attachments)
}

func TestSameTestsProduceSameStatuses(t *testing.T) {
	suite := func(c *Context) {
		c.Run("ok", func(c *Context) { assert.Equal(c, 600, 500+100) })
		c.Run("mismatch", func(c *Context) { assert.Equal(c, 601, 500+100) })
	}
	first, second := Run(nil, nil, suite), Run(nil, nil, suite)
	require.Len(t, second.Tests, len(first.Tests))
	for i := range first.Tests {
		assert.Equal(t, first.Tests[i].Status, second.Tests[i].Status)
	}
}
