package bankingtests

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/banking-e2e/banking-tests/framework"
	"github.com/banking-e2e/banking-tests/pages"

	"github.com/playwright-community/playwright-go"
)

// fakeBank is an in-memory stand-in for the banking application behind one browser session.
// Each session gets its own bank, seeded with the same customers the real application has.

type screen string

const (
	screenNone              screen = ""
	screenHome              screen = "home"
	screenCustomerSelection screen = "customer selection"
	screenAccount           screen = "account"
	screenTransactions      screen = "transactions"
	screenManager           screen = "manager"
	screenCustomers         screen = "customers"
)

type fakeAccount struct {
	number       string
	currency     string
	balance      int
	transactions []pages.Transaction
}

type fakeCustomer struct {
	customer pages.Customer
	accounts []*fakeAccount
}

type fakeBank struct {
	screen         screen
	customers      []*fakeCustomer
	current        *fakeCustomer
	account        *fakeAccount
	message        string
	sortDescending bool
	nextAccount    int
	homeCount      int

	// fault injection
	timeoutActions map[string]bool
	depositBonus   int
	allowOverdraw  bool
	debitsAsCredit bool
	stuckOnLoad    bool
}

func newFakeBank() *fakeBank {
	b := &fakeBank{nextAccount: 1016, timeoutActions: map[string]bool{}}
	b.addSeedCustomer("Hermoine", "Granger", "E859AB", "1001:Dollar:5096", "1002:Pound:0", "1003:Rupee:0")
	b.addSeedCustomer("Harry", "Potter", "E725JB", "1004:Dollar:0", "1005:Pound:0", "1006:Rupee:0")
	b.addSeedCustomer("Ron", "Weasly", "E55555", "1007:Dollar:0", "1008:Pound:0", "1009:Rupee:0")
	b.addSeedCustomer("Albus", "Dumbledore", "E55656", "1010:Dollar:0", "1011:Pound:0", "1012:Rupee:0")
	b.addSeedCustomer("Neville", "Longbottom", "E89898", "1013:Dollar:0", "1014:Pound:0", "1015:Rupee:0")
	return b
}

func (b *fakeBank) addSeedCustomer(first, last, postCode string, accounts ...string) {
	c := &fakeCustomer{customer: pages.Customer{FirstName: first, LastName: last, PostCode: postCode}}
	for _, a := range accounts {
		fields := strings.Split(a, ":")
		balance, _ := strconv.Atoi(fields[2])
		c.accounts = append(c.accounts, &fakeAccount{number: fields[0], currency: fields[1], balance: balance})
	}
	b.customers = append(b.customers, c)
}

func (b *fakeBank) findCustomer(fullName string) (int, *fakeCustomer) {
	for i, c := range b.customers {
		if c.customer.FullName() == fullName {
			return i, c
		}
	}
	return -1, nil
}

func (b *fakeBank) setBalance(fullName string, balance int) {
	_, c := b.findCustomer(fullName)
	c.accounts[0].balance = balance
}

func (b *fakeBank) setCurrency(fullName, currency string) {
	_, c := b.findCustomer(fullName)
	c.accounts[0].currency = currency
}

// check returns the error the real page objects would return if the action is attempted on
// the wrong screen, or if a timeout was injected for it.
func (b *fakeBank) check(action string, on ...screen) error {
	if b.timeoutActions[action] {
		return &pages.ActionError{Action: action, Selector: "#" + action, Err: playwright.ErrTimeout}
	}
	for _, s := range on {
		if b.screen == s {
			return nil
		}
	}
	return &pages.ActionError{Action: action, Err: fmt.Errorf("%w: not on %v (on %q)", playwright.ErrTimeout, on, b.screen)}
}

func (b *fakeBank) Home() error {
	if err := b.check("home", screenNone, screenHome, screenCustomerSelection, screenAccount,
		screenTransactions, screenManager, screenCustomers); err != nil {
		return err
	}
	b.homeCount++
	b.screen = screenHome
	if b.stuckOnLoad {
		b.screen = screenNone
	}
	b.current, b.account, b.message = nil, nil, ""
	return nil
}

func (b *fakeBank) Login() pages.LoginPage               { return fakeLoginPage{b} }
func (b *fakeBank) Manager() pages.ManagerPage           { return fakeManagerPage{b} }
func (b *fakeBank) Customers() pages.CustomerListPage    { return fakeCustomerListPage{b} }
func (b *fakeBank) Account() pages.AccountPage           { return fakeAccountPage{b} }
func (b *fakeBank) Transactions() pages.TransactionsPage { return fakeTransactionsPage{b} }

type fakeLoginPage struct{ *fakeBank }

func (p fakeLoginPage) CustomerLogin(name string) error {
	if err := p.check("customer login", screenHome, screenCustomerSelection); err != nil {
		return err
	}
	_, c := p.findCustomer(name)
	if c == nil {
		return &pages.ActionError{Action: "select option", Selector: "#userSelect",
			Err: fmt.Errorf("no option %q", name)}
	}
	p.current, p.account, p.message = c, c.accounts[0], ""
	p.screen = screenAccount
	return nil
}

func (p fakeLoginPage) ManagerLogin() error {
	if err := p.check("manager login", screenHome); err != nil {
		return err
	}
	p.screen = screenManager
	return nil
}

func (p fakeLoginPage) IsAtCustomerSelection() (bool, error) {
	return p.screen == screenCustomerSelection, nil
}

func (p fakeLoginPage) IsAtHome() (bool, error) {
	return p.screen == screenHome, nil
}

type fakeManagerPage struct{ *fakeBank }

func (p fakeManagerPage) AddCustomer(customer pages.Customer) (string, error) {
	if err := p.check("add customer", screenManager, screenCustomers); err != nil {
		return "", err
	}
	p.screen = screenManager
	if _, c := p.findCustomer(customer.FullName()); c != nil {
		return "Please check the details. Customer may be duplicate.", nil
	}
	p.customers = append(p.customers, &fakeCustomer{customer: customer})
	return fmt.Sprintf("Customer added successfully with customer id :%d", len(p.customers)), nil
}

func (p fakeManagerPage) OpenAccount(customerName, currency string) (string, error) {
	if err := p.check("open account", screenManager, screenCustomers); err != nil {
		return "", err
	}
	p.screen = screenManager
	_, c := p.findCustomer(customerName)
	if c == nil {
		return "", &pages.ActionError{Action: "select option", Selector: "#userSelect",
			Err: fmt.Errorf("no option %q", customerName)}
	}
	number := strconv.Itoa(p.nextAccount)
	p.nextAccount++
	c.accounts = append(c.accounts, &fakeAccount{number: number, currency: currency})
	return pages.ParseAccountNumber("Account created successfully with account Number :" + number)
}

func (p fakeManagerPage) IsAddCustomerFormVisible() (bool, error) {
	return p.screen == screenManager, nil
}

type fakeCustomerListPage struct{ *fakeBank }

func (p fakeCustomerListPage) Search(term string) error {
	return p.check("search", screenCustomers)
}

func (p fakeCustomerListPage) IsCustomerListed(fullName string) (bool, error) {
	if err := p.check("list customers", screenManager, screenCustomers); err != nil {
		return false, err
	}
	p.screen = screenCustomers
	i, _ := p.findCustomer(fullName)
	return i >= 0, nil
}

func (p fakeCustomerListPage) DeleteCustomer(fullName string) (bool, error) {
	listed, err := p.IsCustomerListed(fullName)
	if err != nil || !listed {
		return false, err
	}
	i, _ := p.findCustomer(fullName)
	p.customers = append(p.customers[:i], p.customers[i+1:]...)
	return true, nil
}

type fakeAccountPage struct{ *fakeBank }

func (p fakeAccountPage) WelcomeName() (string, error) {
	if err := p.check("welcome", screenAccount); err != nil {
		return "", err
	}
	return p.current.customer.FullName(), nil
}

func (p fakeAccountPage) AccountNumber() (string, error) {
	if err := p.check("account number", screenAccount); err != nil {
		return "", err
	}
	return p.account.number, nil
}

func (p fakeAccountPage) Balance() (int, error) {
	if err := p.check("balance", screenAccount); err != nil {
		return 0, err
	}
	return p.account.balance, nil
}

func (p fakeAccountPage) Currency() (string, error) {
	if err := p.check("currency", screenAccount); err != nil {
		return "", err
	}
	return p.account.currency, nil
}

func (p fakeAccountPage) Deposit(amount int) error {
	if err := p.check("deposit", screenAccount); err != nil {
		return err
	}
	p.account.balance += amount + p.depositBonus
	p.record(amount, pages.TransactionCredit)
	p.message = depositSuccessMessage
	return nil
}

func (p fakeAccountPage) Withdraw(amount int) error {
	if err := p.check("withdraw", screenAccount); err != nil {
		return err
	}
	if amount > p.account.balance && !p.allowOverdraw {
		p.message = withdrawFailedMessage
		return nil
	}
	p.account.balance -= amount
	if p.debitsAsCredit {
		p.record(amount, pages.TransactionCredit)
	} else {
		p.record(amount, pages.TransactionDebit)
	}
	p.message = withdrawSuccessMessage
	return nil
}

func (p fakeAccountPage) record(amount int, kind string) {
	p.account.transactions = append(p.account.transactions, pages.Transaction{
		DateTime: fmt.Sprintf("Oct 18, 2026 10:%02d:00 AM", len(p.account.transactions)),
		Amount:   amount,
		Type:     kind,
	})
}

func (p fakeAccountPage) Message() (string, error) {
	if err := p.check("message", screenAccount); err != nil {
		return "", err
	}
	return p.message, nil
}

func (p fakeAccountPage) ExpectMessage(text string) error {
	if err := p.check("expect message", screenAccount); err != nil {
		return err
	}
	if !strings.Contains(p.message, text) {
		return &pages.ActionError{Action: fmt.Sprintf("expect text %q", text), Selector: "span.error",
			Err: fmt.Errorf("%w: message was %q", playwright.ErrTimeout, p.message)}
	}
	return nil
}

func (p fakeAccountPage) AccountNumbers() ([]string, error) {
	if err := p.check("account numbers", screenAccount); err != nil {
		return nil, err
	}
	var numbers []string
	for _, a := range p.current.accounts {
		numbers = append(numbers, a.number)
	}
	return numbers, nil
}

func (p fakeAccountPage) SelectAccount(number string) error {
	if err := p.check("select account", screenAccount); err != nil {
		return err
	}
	for _, a := range p.current.accounts {
		if a.number == number {
			p.account, p.message = a, ""
			return nil
		}
	}
	return &pages.ActionError{Action: "select option", Selector: "#accountSelect", Err: fmt.Errorf("no option %q", number)}
}

func (p fakeAccountPage) SelectOtherAccount() (string, error) {
	if err := p.check("select other account", screenAccount); err != nil {
		return "", err
	}
	for _, a := range p.current.accounts {
		if a != p.account {
			return a.number, p.SelectAccount(a.number)
		}
	}
	return "", &pages.ActionError{Action: "select other account", Err: fmt.Errorf("no other account")}
}

func (p fakeAccountPage) OpenTransactions() error {
	if err := p.check("transactions", screenAccount); err != nil {
		return err
	}
	p.screen = screenTransactions
	p.sortDescending = false
	return nil
}

func (p fakeAccountPage) Logout() error {
	if err := p.check("logout", screenAccount, screenTransactions); err != nil {
		return err
	}
	p.current, p.account, p.message = nil, nil, ""
	p.screen = screenCustomerSelection
	return nil
}

type fakeTransactionsPage struct{ *fakeBank }

func (p fakeTransactionsPage) SortByDate() error {
	if err := p.check("sort by date", screenTransactions); err != nil {
		return err
	}
	p.sortDescending = !p.sortDescending
	return nil
}

func (p fakeTransactionsPage) Count() (int, error) {
	rows, err := p.Rows()
	return len(rows), err
}

func (p fakeTransactionsPage) Rows() ([]pages.Transaction, error) {
	if err := p.check("transaction rows", screenTransactions); err != nil {
		return nil, err
	}
	rows := append([]pages.Transaction(nil), p.account.transactions...)
	if p.sortDescending {
		for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
			rows[i], rows[j] = rows[j], rows[i]
		}
	}
	return rows, nil
}

func (p fakeTransactionsPage) Amounts() ([]int, error) {
	rows, err := p.Rows()
	if err != nil {
		return nil, err
	}
	amounts := make([]int, 0, len(rows))
	for _, r := range rows {
		amounts = append(amounts, r.Amount)
	}
	return amounts, nil
}

func (p fakeTransactionsPage) Back() error {
	if err := p.check("back", screenTransactions); err != nil {
		return err
	}
	p.screen = screenAccount
	return nil
}

type fakeSession struct {
	name        string
	bank        *fakeBank
	screenshots []string
	closed      bool
	closeErr    error
}

func (s *fakeSession) Site() pages.Site {
	return s.bank
}

func (s *fakeSession) Screenshot(label string) (string, error) {
	path := "results/" + strings.ReplaceAll(s.name, " ", "-") + "-" + label + ".png"
	s.screenshots = append(s.screenshots, path)
	return path, nil
}

func (s *fakeSession) Close() error {
	s.closed = true
	return s.closeErr
}

// fakeSessions opens a session with a freshly seeded bank for every scenario.
type fakeSessions struct {
	configure func(*fakeBank)
	openErr   error
	closeErr  error

	lock     sync.Mutex
	sessions []*fakeSession
}

func (f *fakeSessions) OpenSession(name string, logger framework.Logger) (Session, error) {
	if f.openErr != nil {
		return nil, f.openErr
	}
	bank := newFakeBank()
	if f.configure != nil {
		f.configure(bank)
	}
	logger.Printf("Opened fake session for %q", name)
	s := &fakeSession{name: name, bank: bank, closeErr: f.closeErr}
	f.lock.Lock()
	f.sessions = append(f.sessions, s)
	f.lock.Unlock()
	return s, nil
}

func (f *fakeSessions) session(name string) *fakeSession {
	f.lock.Lock()
	defer f.lock.Unlock()
	for _, s := range f.sessions {
		if s.name == name {
			return s
		}
	}
	return nil
}
