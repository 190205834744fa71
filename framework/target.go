package framework

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const targetPollInterval = time.Millisecond * 250

// AwaitTarget verifies that the application under test is responding before any tests are
// run, by polling its base URL until it returns a response or the timeout elapses. Any
// fragment in the URL is ignored, since it is only meaningful to the browser.
//
// Progress is written to output.
func AwaitTarget(targetURL string, timeout time.Duration, output io.Writer) error {
	u, err := url.Parse(targetURL)
	if err != nil {
		return fmt.Errorf("invalid target URL %q: %w", targetURL, err)
	}
	u.Fragment = ""
	pollURL := u.String()

	client := &http.Client{Timeout: timeout}
	fmt.Fprintf(output, "Connecting to application under test at %s", pollURL)

	deadline := time.Now().Add(timeout)
	for {
		fmt.Fprintf(output, ".")
		resp, err := client.Get(pollURL)
		if err == nil {
			_, _ = io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			fmt.Fprintln(output)
			if resp.StatusCode >= 400 {
				return fmt.Errorf("application under test returned status code %d", resp.StatusCode)
			}
			return nil
		}
		if !time.Now().Before(deadline) {
			fmt.Fprintln(output)
			return fmt.Errorf("timed out, result of last query was: %w", err)
		}
		time.Sleep(targetPollInterval)
	}
}
