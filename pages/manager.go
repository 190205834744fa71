package pages

import (
	"fmt"
	"regexp"
)

var accountCreatedPattern = regexp.MustCompile(`Account created successfully with account Number :\s*(\d+)`)

type managerPage struct {
	*basePage
}

func (p *managerPage) AddCustomer(customer Customer) (string, error) {
	if err := p.click(addCustomerTab); err != nil {
		return "", err
	}
	if err := p.waitVisible(firstNameInput); err != nil {
		return "", err
	}
	if err := p.fill(firstNameInput, customer.FirstName); err != nil {
		return "", err
	}
	if err := p.fill(lastNameInput, customer.LastName); err != nil {
		return "", err
	}
	if err := p.fill(postCodeInput, customer.PostCode); err != nil {
		return "", err
	}
	p.drainDialogs()
	if err := p.click(addCustomerButton); err != nil {
		return "", err
	}
	return p.awaitDialog("add customer")
}

func (p *managerPage) OpenAccount(customerName, currency string) (string, error) {
	if err := p.click(openAccountTab); err != nil {
		return "", err
	}
	if err := p.waitVisible(accountCustomer); err != nil {
		return "", err
	}
	if err := p.selectLabel(accountCustomer, customerName); err != nil {
		return "", err
	}
	if err := p.selectLabel(currencySelect, currency); err != nil {
		return "", err
	}
	p.drainDialogs()
	if err := p.click(processButton); err != nil {
		return "", err
	}
	message, err := p.awaitDialog("open account")
	if err != nil {
		return "", err
	}
	return ParseAccountNumber(message)
}

func (p *managerPage) IsAddCustomerFormVisible() (bool, error) {
	return p.isVisible(firstNameInput)
}

// ParseAccountNumber extracts the account number from the dialog shown after opening an
// account.
func ParseAccountNumber(dialogMessage string) (string, error) {
	m := accountCreatedPattern.FindStringSubmatch(dialogMessage)
	if m == nil {
		return "", actionError("open account", "", fmt.Errorf("unexpected dialog message %q", dialogMessage))
	}
	return m[1], nil
}
