package pages

import (
	"errors"
	"fmt"

	"github.com/playwright-community/playwright-go"
)

// ErrNoDialog means that an action which should have produced a browser dialog did not.
var ErrNoDialog = errors.New("no dialog appeared")

// ActionError describes a page interaction that could not be completed, typically because an
// expected element did not appear within the wait budget.
type ActionError struct {
	Action   string
	Selector string
	Err      error
}

func (e *ActionError) Error() string {
	if e.Selector == "" {
		return fmt.Sprintf("%s: %s", e.Action, e.Err)
	}
	return fmt.Sprintf("%s (%s): %s", e.Action, e.Selector, e.Err)
}

func (e *ActionError) Unwrap() error {
	return e.Err
}

// IsTimeout returns true if the error was caused by waiting too long for an element or a
// dialog.
func IsTimeout(err error) bool {
	return errors.Is(err, playwright.ErrTimeout) || errors.Is(err, ErrNoDialog)
}

func actionError(action, selector string, err error) error {
	if err == nil {
		return nil
	}
	return &ActionError{Action: action, Selector: selector, Err: err}
}
