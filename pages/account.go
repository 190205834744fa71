package pages

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var digitsPattern = regexp.MustCompile(`\d+`)

type accountPage struct {
	*basePage
}

func (p *accountPage) WelcomeName() (string, error) {
	return p.text(welcomeMessage)
}

func (p *accountPage) AccountNumber() (string, error) {
	s, err := p.text(accountNumberText)
	if err != nil {
		return "", err
	}
	if m := digitsPattern.FindString(s); m != "" {
		return m, nil
	}
	return s, nil
}

func (p *accountPage) Balance() (int, error) {
	return p.number(balanceText)
}

func (p *accountPage) Currency() (string, error) {
	return p.text(currencyText)
}

func (p *accountPage) Deposit(amount int) error {
	if err := p.click(depositTab); err != nil {
		return err
	}
	if err := p.waitVisible(depositButton); err != nil {
		return err
	}
	if err := p.fill(amountInput, strconv.Itoa(amount)); err != nil {
		return err
	}
	return p.click(depositButton)
}

func (p *accountPage) Withdraw(amount int) error {
	if err := p.click(withdrawTab); err != nil {
		return err
	}
	if err := p.waitVisible(withdrawButton); err != nil {
		return err
	}
	// The withdrawal form reuses the deposit form's input, and a value typed while the
	// form is still switching can be lost.
	if err := p.expectEditable(amountInput); err != nil {
		return err
	}
	if err := actionError("clear", amountInput, p.locator(amountInput).Clear()); err != nil {
		return err
	}
	if err := p.fillVerified(amountInput, strconv.Itoa(amount)); err != nil {
		return err
	}
	return p.click(withdrawButton)
}

func (p *accountPage) Message() (string, error) {
	visible, err := p.isVisible(resultMessage)
	if err != nil || !visible {
		return "", err
	}
	return p.text(resultMessage)
}

func (p *accountPage) ExpectMessage(text string) error {
	return p.expectText(resultMessage, text)
}

func (p *accountPage) AccountNumbers() ([]string, error) {
	if err := p.waitVisible(accountSelect); err != nil {
		return nil, err
	}
	texts, err := p.allTexts(accountOptions)
	if err != nil {
		return nil, err
	}
	return accountNumbersFrom(texts), nil
}

// accountNumbersFrom drops the blank placeholder options of the account drop-down.
func accountNumbersFrom(optionTexts []string) []string {
	var numbers []string
	for _, t := range optionTexts {
		if t = strings.TrimSpace(t); t != "" {
			numbers = append(numbers, t)
		}
	}
	return numbers
}

func (p *accountPage) SelectAccount(number string) error {
	if err := p.selectLabel(accountSelect, number); err != nil {
		return err
	}
	return p.expectText(accountNumberText, number)
}

func (p *accountPage) SelectOtherAccount() (string, error) {
	current, err := p.AccountNumber()
	if err != nil {
		return "", err
	}
	numbers, err := p.AccountNumbers()
	if err != nil {
		return "", err
	}
	other, err := otherAccount(current, numbers)
	if err != nil {
		return "", err
	}
	return other, p.SelectAccount(other)
}

func otherAccount(current string, numbers []string) (string, error) {
	for _, n := range numbers {
		if n != current {
			return n, nil
		}
	}
	return "", actionError("select other account", accountSelect,
		fmt.Errorf("no account other than %s is available", current))
}

func (p *accountPage) OpenTransactions() error {
	if err := p.click(transactionsTab); err != nil {
		return err
	}
	return p.waitVisible(transactionsTable)
}

func (p *accountPage) Logout() error {
	return p.click(logoutButton)
}
