// Package framework contains the low-level implementation of test harness infrastructure
// that does not know anything about the banking application.
//
// The general model is:
//
// 1. There is a notion of a test context which is similar to Go's *testing.T, allowing
// pieces of test logic to be associated with a test identifier and to accumulate
// pass/fail/error results, durations, debug output, and attachments.
//
// 2. Tests run sequentially. Each test may register cleanup functions with Context.Defer;
// they always run before the test's result is recorded, including when the test failed,
// panicked, or was skipped.
//
// 3. Once a run is complete, the Results can be written out as a short JSON summary and
// as a detailed report in the layout used by the Playwright JSON reporter.
//
// The domain-specific code that knows what is being tested is responsible for acquiring
// whatever resources a test needs (such as a browser session) and for providing a
// domain-specific test API on top of the test context.
package framework
