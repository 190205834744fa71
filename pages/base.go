package pages

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"
)

// Logger is satisfied by the harness's debug loggers.
type Logger interface {
	Printf(message string, args ...interface{})
}

// basePage holds what every page object needs: the browser page, the stream of dialog
// messages for the session, and the wait budget.
type basePage struct {
	page    playwright.Page
	dialogs <-chan string
	timeout time.Duration
	logger  Logger
}

func (b *basePage) timeoutMS() *float64 {
	return playwright.Float(float64(b.timeout.Milliseconds()))
}

func (b *basePage) locator(selector string) playwright.Locator {
	return b.page.Locator(selector)
}

func (b *basePage) navigate(url string) error {
	b.logger.Printf("Navigating to %s", url)
	_, err := b.page.Goto(url, playwright.PageGotoOptions{Timeout: b.timeoutMS()})
	return actionError("navigate to "+url, "", err)
}

func (b *basePage) waitVisible(selector string) error {
	err := b.locator(selector).WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: b.timeoutMS(),
	})
	return actionError("wait for element", selector, err)
}

// visibleWithin is like waitVisible, but treats a timeout as a negative answer rather than
// an error.
func (b *basePage) visibleWithin(selector string) (bool, error) {
	err := b.waitVisible(selector)
	if err != nil {
		if IsTimeout(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (b *basePage) click(selector string) error {
	b.logger.Printf("Clicking %s", selector)
	return actionError("click", selector, b.locator(selector).Click())
}

func (b *basePage) fill(selector, value string) error {
	b.logger.Printf("Filling %s with %q", selector, value)
	return actionError("fill", selector, b.locator(selector).Fill(value))
}

func (b *basePage) selectLabel(selector, label string) error {
	b.logger.Printf("Selecting %q in %s", label, selector)
	_, err := b.locator(selector).SelectOption(playwright.SelectOptionValues{
		Labels: playwright.StringSlice(label),
	})
	return actionError("select option", selector, err)
}

func (b *basePage) text(selector string) (string, error) {
	if err := b.waitVisible(selector); err != nil {
		return "", err
	}
	s, err := b.locator(selector).TextContent()
	if err != nil {
		return "", actionError("read text", selector, err)
	}
	return strings.TrimSpace(s), nil
}

func (b *basePage) number(selector string) (int, error) {
	s, err := b.text(selector)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, actionError("read number", selector, fmt.Errorf("%q is not a number", s))
	}
	return n, nil
}

func (b *basePage) isVisible(selector string) (bool, error) {
	visible, err := b.locator(selector).IsVisible()
	return visible, actionError("check visibility", selector, err)
}

func (b *basePage) assertions() playwright.PlaywrightAssertions {
	return playwright.NewPlaywrightAssertions(float64(b.timeout.Milliseconds()))
}

func (b *basePage) expectText(selector, text string) error {
	return actionError(fmt.Sprintf("expect text %q", text), selector,
		b.assertions().Locator(b.locator(selector)).ToContainText(text))
}

func (b *basePage) expectEditable(selector string) error {
	return actionError("expect editable", selector,
		b.assertions().Locator(b.locator(selector)).ToBeEditable())
}

func (b *basePage) expectValue(selector, value string) error {
	return actionError(fmt.Sprintf("expect value %q", value), selector,
		b.assertions().Locator(b.locator(selector)).ToHaveValue(value))
}

// fillVerified fills an input and waits until it holds the value, filling it once more if
// the value did not stick.
func (b *basePage) fillVerified(selector, value string) error {
	return fillWithRetry(
		func() error { return b.fill(selector, value) },
		func() error { return b.expectValue(selector, value) },
	)
}

func fillWithRetry(fill, verify func() error) error {
	var err error
	for attempt := 0; attempt < 2; attempt++ {
		if err = fill(); err != nil {
			return err
		}
		if err = verify(); err == nil {
			return nil
		}
	}
	return err
}

func (b *basePage) allTexts(selector string) ([]string, error) {
	texts, err := b.locator(selector).AllTextContents()
	if err != nil {
		return nil, actionError("read texts", selector, err)
	}
	for i, t := range texts {
		texts[i] = strings.TrimSpace(t)
	}
	return texts, nil
}

// awaitDialog waits for the next dialog raised in the session. Dialogs are accepted by the
// session as soon as they appear; this only delivers the message.
func (b *basePage) awaitDialog(action string) (string, error) {
	deadline := time.NewTimer(b.timeout)
	defer deadline.Stop()
	select {
	case message := <-b.dialogs:
		b.logger.Printf("Dialog after %s: %q", action, message)
		return message, nil
	case <-deadline.C:
		return "", actionError(action, "", ErrNoDialog)
	}
}

// drainDialogs discards dialog messages left over from earlier actions.
func (b *basePage) drainDialogs() {
	for {
		select {
		case <-b.dialogs:
		default:
			return
		}
	}
}
