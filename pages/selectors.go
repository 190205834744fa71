package pages

// Login screen
const (
	customerLoginButton = "button[ng-click='customer()']"
	managerLoginButton  = "button[ng-click='manager()']"
	userSelect          = "#userSelect"
	yourNameLabel       = "text='Your Name :'"
	loginButton         = "button:text('Login')"
)

// Bank manager screens
const (
	addCustomerTab      = "button[ng-click='addCust()']"
	openAccountTab      = "button[ng-click='openAccount()']"
	customersTab        = "button[ng-click='showCust()']"
	firstNameInput      = "input[placeholder='First Name']"
	lastNameInput       = "input[placeholder='Last Name']"
	postCodeInput       = "input[placeholder='Post Code']"
	addCustomerButton   = "button[type='submit']"
	accountCustomer     = "#userSelect"
	currencySelect      = "#currency"
	processButton       = "button:text('Process')"
	customersTable      = "table.table.table-bordered.table-striped"
	customerRows        = "table.table tbody tr"
	deleteButton        = "button:text('Delete')"
	searchCustomerInput = "input[placeholder='Search Customer']"
)

// Customer account screens
const (
	welcomeMessage      = "span.fontBig"
	accountNumberText   = "div.center strong:nth-child(1)"
	balanceText         = "div.center strong:nth-child(2)"
	currencyText        = "div.center strong:nth-child(3)"
	logoutButton        = "button:text('Logout')"
	depositTab          = "button[ng-click='deposit()']"
	withdrawTab         = "button[ng-click='withdrawl()']"
	transactionsTab     = "button[ng-click='transactions()']"
	amountInput         = "input[placeholder='amount']"
	depositButton       = "form button[type='submit']:text('Deposit')"
	withdrawButton      = "form button.btn.btn-default:text('Withdraw')"
	resultMessage       = "span.error"
	accountSelect       = "#accountSelect"
	accountOptions      = "#accountSelect option"
	transactionsTable   = "table.table"
	transactionRows     = "table.table tbody tr"
	transactionAmounts  = "table.table tbody tr td:nth-child(2)"
	sortByDateLink      = `a[ng-click*="sortType = 'date'"]`
	transactionsBackBtn = "button[ng-click='back()']"
)
