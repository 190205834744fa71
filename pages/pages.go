// Package pages is the page object model for the XYZ Bank demo application.
//
// Every screen of the application has an interface describing what a test can do on it
// (action methods) and what it can observe (query methods). Scenarios depend only on these
// interfaces. NewSite returns the implementation that drives a real browser page through
// Playwright.
//
// Methods assume that the relevant screen is already showing; it is the caller's
// responsibility to get there first. Any element that does not become visible within the
// configured wait budget causes an *ActionError.
package pages

import "strings"

// Site is the entry point to the application for one browser session.
type Site interface {
	// Home navigates to the application's login screen.
	Home() error
	Login() LoginPage
	Manager() ManagerPage
	Customers() CustomerListPage
	Account() AccountPage
	Transactions() TransactionsPage
}

// LoginPage is the application's landing screen, plus the customer selection screen that
// follows it.
type LoginPage interface {
	CustomerLogin(name string) error
	ManagerLogin() error
	IsAtCustomerSelection() (bool, error)
	IsAtHome() (bool, error)
}

// ManagerPage is the bank manager's screen with the "Add Customer" and "Open Account" tabs.
type ManagerPage interface {
	// AddCustomer fills in and submits the "Add Customer" form, returning the text of the
	// confirmation dialog.
	AddCustomer(customer Customer) (string, error)
	// OpenAccount opens an account in the given currency for an existing customer and
	// returns the number of the new account.
	OpenAccount(customerName, currency string) (string, error)
	IsAddCustomerFormVisible() (bool, error)
}

// CustomerListPage is the bank manager's "Customers" tab.
type CustomerListPage interface {
	Search(term string) error
	IsCustomerListed(fullName string) (bool, error)
	// DeleteCustomer deletes the first listed customer matching the name. It returns false
	// if there was no such customer.
	DeleteCustomer(fullName string) (bool, error)
}

// AccountPage is the screen a customer sees after logging in.
type AccountPage interface {
	WelcomeName() (string, error)
	AccountNumber() (string, error)
	Balance() (int, error)
	Currency() (string, error)
	Deposit(amount int) error
	Withdraw(amount int) error
	// Message returns the result message shown after a deposit or withdrawal, if any.
	Message() (string, error)
	// ExpectMessage waits until the result message contains the given text.
	ExpectMessage(text string) error
	AccountNumbers() ([]string, error)
	SelectAccount(number string) error
	// SelectOtherAccount switches to the first account that is not currently selected and
	// returns its number.
	SelectOtherAccount() (string, error)
	OpenTransactions() error
	Logout() error
}

// TransactionsPage is the customer's transaction history.
type TransactionsPage interface {
	SortByDate() error
	Count() (int, error)
	Rows() ([]Transaction, error)
	Amounts() ([]int, error)
	Back() error
}

type Customer struct {
	FirstName string
	LastName  string
	PostCode  string
}

func (c Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}

// Transaction is one row of the transaction history table.
type Transaction struct {
	DateTime string
	Amount   int
	Type     string
}

const (
	TransactionCredit = "Credit"
	TransactionDebit  = "Debit"
)

// SplitName splits a full name into first name and the rest. If there is no space, the
// whole name is returned as the first name.
func SplitName(fullName string) (first, last string) {
	parts := strings.SplitN(strings.TrimSpace(fullName), " ", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}
