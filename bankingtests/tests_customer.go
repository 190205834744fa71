package bankingtests

import (
	"github.com/banking-e2e/banking-tests/pages"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Customers that exist in the application's seed data.
const (
	customerHarry    = "Harry Potter"
	customerHermoine = "Hermoine Granger"
	customerRon      = "Ron Weasly"
)

const (
	depositSuccessMessage  = "Deposit Successful"
	withdrawSuccessMessage = "Transaction successful"
	withdrawFailedMessage  = "Transaction Failed. You can not withdraw amount more than the balance."

	recentTransactionCount = 10
)

var accountCurrencies = []string{"Dollar", "Pound", "Rupee"}

func DoCustomerLoginLogoutTest(t *T) {
	atHome, err := t.Site().Login().IsAtHome()
	require.NoError(t, err)
	require.True(t, atHome, "login options should be shown on the home screen")

	account := t.LoginAsCustomer(customerHarry)

	welcome, err := account.WelcomeName()
	require.NoError(t, err)
	assert.Contains(t, welcome, customerHarry)
	t.RequireAccountNumber()
	currency, err := account.Currency()
	require.NoError(t, err)
	assert.Contains(t, accountCurrencies, currency)

	require.NoError(t, account.Logout())
	atSelection, err := t.Site().Login().IsAtCustomerSelection()
	require.NoError(t, err)
	assert.True(t, atSelection, "customer selection should be shown after logout")
}

func DoDepositWithdrawalTest(t *T) {
	account := t.LoginAsCustomer(customerHermoine)
	initial := t.RequireBalance()

	require.NoError(t, account.Deposit(100))
	require.NoError(t, account.ExpectMessage(depositSuccessMessage))
	afterDeposit := t.RequireBalance()
	assert.Equal(t, initial+100, afterDeposit, "balance after deposit")

	require.NoError(t, account.Withdraw(100))
	require.NoError(t, account.ExpectMessage(withdrawSuccessMessage))
	assert.LessOrEqual(t, t.RequireBalance(), afterDeposit, "balance after withdrawal")

	require.NoError(t, account.OpenTransactions())
	count, err := t.Site().Transactions().Count()
	require.NoError(t, err)
	assert.Greater(t, count, 0, "transaction history should not be empty")
}

func DoInvalidWithdrawalTest(t *T) {
	account := t.LoginAsCustomer(customerRon)
	initial := t.RequireBalance()

	require.NoError(t, account.Withdraw(initial+1000))
	require.NoError(t, account.ExpectMessage(withdrawFailedMessage))
	message, err := account.Message()
	require.NoError(t, err)
	assert.Equal(t, withdrawFailedMessage, message)
	assert.Equal(t, initial, t.RequireBalance(), "balance should be unchanged by a rejected withdrawal")
}

func DoMultipleAccountsTest(t *T) {
	account := t.LoginAsCustomer(customerHarry)

	numbers, err := account.AccountNumbers()
	require.NoError(t, err)
	require.Greater(t, len(numbers), 1, "customer should have more than one account")

	first := t.RequireAccountNumber()
	other, err := account.SelectOtherAccount()
	require.NoError(t, err)
	assert.NotEqual(t, first, other)
	assert.Equal(t, other, t.RequireAccountNumber(), "selected account should be shown")
}

func DoTransactionHistoryTest(t *T) {
	account := t.LoginAsCustomer(customerHermoine)

	require.NoError(t, account.Deposit(50))
	require.NoError(t, account.ExpectMessage(depositSuccessMessage))
	require.NoError(t, account.Withdraw(50))
	require.NoError(t, account.ExpectMessage(withdrawSuccessMessage))

	require.NoError(t, account.OpenTransactions())
	history := t.Site().Transactions()
	count, err := history.Count()
	require.NoError(t, err)
	require.Greater(t, count, 0, "transaction history should not be empty")

	amounts, err := history.Amounts()
	require.NoError(t, err)
	if len(amounts) > recentTransactionCount {
		amounts = amounts[len(amounts)-recentTransactionCount:]
	}
	t.Debug("Most recent amounts: %v", amounts)
	assert.Contains(t, amounts, 50)

	rows, err := history.Rows()
	require.NoError(t, err)
	if len(rows) > recentTransactionCount {
		rows = rows[len(rows)-recentTransactionCount:]
	}
	assert.True(t, hasTransaction(rows, 50, pages.TransactionCredit), "recent transactions should include a credit of 50")
	assert.True(t, hasTransaction(rows, 50, pages.TransactionDebit), "recent transactions should include a debit of 50")

	require.NoError(t, history.SortByDate())
	sortedCount, err := history.Count()
	require.NoError(t, err)
	assert.Equal(t, count, sortedCount, "sorting should not change the number of transactions")

	require.NoError(t, history.Back())
	t.RequireAccountNumber()
}

func hasTransaction(rows []pages.Transaction, amount int, kind string) bool {
	for _, r := range rows {
		if r.Amount == amount && r.Type == kind {
			return true
		}
	}
	return false
}
