package bankingtests

import (
	"github.com/banking-e2e/banking-tests/pages"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const customerAddedMessage = "Customer added successfully"

func DoManagerAddCustomerTest(t *T) {
	manager := t.LoginAsManager()

	message, err := manager.AddCustomer(pages.Customer{FirstName: "John", LastName: "Smith", PostCode: "12345"})
	require.NoError(t, err)
	assert.Contains(t, message, customerAddedMessage)

	visible, err := manager.IsAddCustomerFormVisible()
	require.NoError(t, err)
	assert.True(t, visible, "add customer form should still be shown")
}

func DoCustomerLifecycleTest(t *T) {
	id := t.Config().uniqueID()
	customer := pages.Customer{FirstName: "Test", LastName: "User" + id, PostCode: "E2E" + id}
	t.Debug("Creating customer %q", customer.FullName())

	manager := t.LoginAsManager()
	message, err := manager.AddCustomer(customer)
	require.NoError(t, err)
	assert.Contains(t, message, customerAddedMessage)

	accountNumber, err := manager.OpenAccount(customer.FullName(), "Dollar")
	require.NoError(t, err)
	assert.Regexp(t, `^\d+$`, accountNumber)

	customers := t.Site().Customers()
	listed, err := customers.IsCustomerListed(customer.FullName())
	require.NoError(t, err)
	require.True(t, listed, "new customer should be listed")

	deleted, err := customers.DeleteCustomer(customer.FullName())
	require.NoError(t, err)
	assert.True(t, deleted)

	listed, err = customers.IsCustomerListed(customer.FullName())
	require.NoError(t, err)
	assert.False(t, listed, "deleted customer should no longer be listed")
}
