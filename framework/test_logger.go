package framework

// TestLogger receives progress notifications while a test run is in progress.
type TestLogger interface {
	TestStarted(id TestID)
	TestError(id TestID, err error)
	TestFinished(id TestID, result TestResult)
	TestSkipped(id TestID, reason string)
}

type nullTestLogger struct{}

func (n nullTestLogger) TestStarted(TestID)              {}
func (n nullTestLogger) TestError(TestID, error)         {}
func (n nullTestLogger) TestFinished(TestID, TestResult) {}
func (n nullTestLogger) TestSkipped(TestID, string)      {}
