package browser

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/banking-e2e/banking-tests/framework"

	"github.com/playwright-community/playwright-go"
)

const dialogBufferSize = 10

var unsafeFileNameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// Session is one browser context with a single page. Every dialog the page raises is
// accepted immediately and its message made available on Dialogs.
type Session struct {
	name      string
	context   playwright.BrowserContext
	page      playwright.Page
	dialogs   chan string
	logger    framework.Logger
	closeOnce sync.Once
	closeErr  error
}

func newSession(name string, browserContext playwright.BrowserContext, page playwright.Page, logger framework.Logger) *Session {
	s := &Session{
		name:    name,
		context: browserContext,
		page:    page,
		dialogs: make(chan string, dialogBufferSize),
		logger:  logger,
	}
	page.OnDialog(s.handleDialog)
	return s
}

func (s *Session) handleDialog(dialog playwright.Dialog) {
	message := dialog.Message()
	s.logger.Printf("Accepting %s dialog: %q", dialog.Type(), message)
	if err := dialog.Accept(); err != nil {
		s.logger.Printf("Could not accept dialog: %s", err)
	}
	select { // non-blocking push
	case s.dialogs <- message:
	default:
		s.logger.Printf("Dialog buffer was full, dropped message %q", message)
	}
}

func (s *Session) Name() string {
	return s.name
}

func (s *Session) Page() playwright.Page {
	return s.page
}

// Dialogs delivers the messages of dialogs raised by the page, in order.
func (s *Session) Dialogs() <-chan string {
	return s.dialogs
}

// Screenshot saves a full-page screenshot into dir and returns its path. The file name is
// derived from the session name and the label.
func (s *Session) Screenshot(dir, label string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("could not create screenshot directory: %w", err)
	}
	path := filepath.Join(dir, ScreenshotFileName(s.name, label))
	if _, err := s.page.Screenshot(playwright.PageScreenshotOptions{
		Path:     playwright.String(path),
		FullPage: playwright.Bool(true),
	}); err != nil {
		return "", fmt.Errorf("could not take screenshot: %w", err)
	}
	s.logger.Printf("Screenshot saved: %s", path)
	return path, nil
}

// Close closes the browser context and everything in it. It is safe to call more than once.
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		if err := s.context.Close(); err != nil {
			s.closeErr = fmt.Errorf("could not close browser context: %w", err)
			return
		}
		s.logger.Printf("Closed browser session for %q", s.name)
	})
	return s.closeErr
}

// ScreenshotFileName builds a file name that is safe on every platform from a test name and
// a label.
func ScreenshotFileName(name, label string) string {
	base := strings.Trim(unsafeFileNameChars.ReplaceAllString(name+"-"+label, "-"), "-")
	if base == "" {
		base = "screenshot"
	}
	return base + ".png"
}
