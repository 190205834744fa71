package bankingtests

import (
	"github.com/banking-e2e/banking-tests/framework"
)

// Scenario is one end-to-end user flow.
type Scenario struct {
	Name string
	Run  func(*T)
}

// Scenarios is the full suite, in the order it runs.
var Scenarios = []Scenario{
	{"customer login and logout", DoCustomerLoginLogoutTest},
	{"bank manager add customer", DoManagerAddCustomerTest},
	{"deposit and withdrawal", DoDepositWithdrawalTest},
	{"invalid withdrawal amount", DoInvalidWithdrawalTest},
	{"multiple accounts navigation", DoMultipleAccountsTest},
	{"transaction history", DoTransactionHistoryTest},
	{"customer lifecycle", DoCustomerLifecycleTest},
}

func RunTestSuite(
	sessions SessionFactory,
	config Config,
	filter framework.Filter,
	testLogger framework.TestLogger,
) framework.Results {
	return RunScenarios(sessions, config, Scenarios, filter, testLogger)
}

// RunScenarios runs the given scenarios one after another, each in its own browser session.
func RunScenarios(
	sessions SessionFactory,
	config Config,
	scenarios []Scenario,
	filter framework.Filter,
	testLogger framework.TestLogger,
) framework.Results {
	return framework.Run(filter, testLogger, func(c *framework.Context) {
		t := newTestScope(c, &environment{sessions: sessions, config: config})

		for _, s := range scenarios {
			t.Run(s.Name, s.Run)
		}
	})
}

// ScenarioNames returns the names of the scenarios that the filter selects.
func ScenarioNames(filter framework.Filter) []string {
	var names []string
	for _, s := range Scenarios {
		if filter == nil || filter(framework.TestID{Path: []string{s.Name}}) {
			names = append(names, s.Name)
		}
	}
	return names
}
