package pages

import (
	"time"

	"github.com/playwright-community/playwright-go"
)

const defaultTimeout = time.Second * 5

// SiteOptions configures the Playwright-backed page objects.
type SiteOptions struct {
	BaseURL string
	// Timeout is the wait budget applied to every element lookup and dialog.
	Timeout time.Duration
	Logger  Logger
}

type site struct {
	base         *basePage
	baseURL      string
	login        *loginPage
	manager      *managerPage
	customers    *customerListPage
	account      *accountPage
	transactions *transactionsPage
}

// NewSite returns page objects bound to a Playwright page. The dialogs channel must deliver
// the message of every dialog raised by the page, in order; the owner of the page is
// responsible for accepting the dialogs.
func NewSite(page playwright.Page, dialogs <-chan string, opts SiteOptions) Site {
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	if opts.Logger == nil {
		opts.Logger = nullLogger{}
	}
	b := &basePage{
		page:    page,
		dialogs: dialogs,
		timeout: opts.Timeout,
		logger:  opts.Logger,
	}
	return &site{
		base:         b,
		baseURL:      opts.BaseURL,
		login:        &loginPage{b},
		manager:      &managerPage{b},
		customers:    &customerListPage{b},
		account:      &accountPage{b},
		transactions: &transactionsPage{b},
	}
}

func (s *site) Home() error {
	if err := s.base.navigate(s.baseURL); err != nil {
		return err
	}
	return s.base.waitVisible(customerLoginButton)
}

func (s *site) Login() LoginPage               { return s.login }
func (s *site) Manager() ManagerPage           { return s.manager }
func (s *site) Customers() CustomerListPage    { return s.customers }
func (s *site) Account() AccountPage           { return s.account }
func (s *site) Transactions() TransactionsPage { return s.transactions }

type nullLogger struct{}

func (nullLogger) Printf(string, ...interface{}) {}
