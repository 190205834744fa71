package bankingtests

import (
	"github.com/banking-e2e/banking-tests/browser"
	"github.com/banking-e2e/banking-tests/framework"
	"github.com/banking-e2e/banking-tests/pages"
)

// BrowserSessions opens sessions in a real browser through Playwright.
type BrowserSessions struct {
	Launcher      *browser.Launcher
	BaseURL       string
	ScreenshotDir string
}

func (b BrowserSessions) OpenSession(name string, logger framework.Logger) (Session, error) {
	s, err := b.Launcher.NewSession(name, logger)
	if err != nil {
		return nil, err
	}
	site := pages.NewSite(s.Page(), s.Dialogs(), pages.SiteOptions{
		BaseURL: b.BaseURL,
		Timeout: b.Launcher.Options().Timeout,
		Logger:  logger,
	})
	return &browserSession{session: s, site: site, screenshotDir: b.ScreenshotDir}, nil
}

type browserSession struct {
	session       *browser.Session
	site          pages.Site
	screenshotDir string
}

func (s *browserSession) Site() pages.Site {
	return s.site
}

func (s *browserSession) Screenshot(label string) (string, error) {
	return s.session.Screenshot(s.screenshotDir, label)
}

func (s *browserSession) Close() error {
	return s.session.Close()
}

// UnavailableSessions fails every session with the same error. It is used when the
// application cannot be reached, so that each scenario is still run and recorded as an error.
type UnavailableSessions struct {
	Err error
}

func (u UnavailableSessions) OpenSession(name string, logger framework.Logger) (Session, error) {
	logger.Printf("Not opening a browser session: %s", u.Err)
	return nil, u.Err
}
